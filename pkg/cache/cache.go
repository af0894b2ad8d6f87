// Package cache provides byte-oriented caching for rendered output and
// generated font tables.
//
// Rendering a small graph is cheap, but in-process Graphviz layout and
// font-table generation are not; both are pure functions of their inputs,
// which makes them natural cache candidates. Keys are content-addressed
// (SHA-256 over the inputs and options), so stale entries are impossible
// by construction and expiry is optional.
//
// Two backends are provided: [FileCache] for CLI usage and [NullCache] for
// tests or --no-cache runs.
package cache

import (
	"context"
	"time"
)

// Cache stores opaque byte values under string keys.
type Cache interface {
	// Get retrieves a value. The second result reports whether the key
	// was present and unexpired.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A zero ttl means the entry never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// RenderKeyOpts captures everything besides the input bytes that changes
// rendered output.
type RenderKeyOpts struct {
	Width  float64
	ScaleX float64
	ScaleY float64
	Debug  bool
	Font   string // font table hash, empty for the embedded default
}

// RenderKey builds a content-addressed key for rendered canvas output.
func RenderKey(inputHash string, opts RenderKeyOpts) string {
	return hashKey("render", inputHash, opts)
}

// TableKey builds a content-addressed key for a generated font table,
// derived from the serialized reference charset.
func TableKey(charsetHash string) string {
	return hashKey("table", charsetHash)
}
