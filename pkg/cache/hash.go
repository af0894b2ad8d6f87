package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// hashKey builds a namespaced cache key, "prefix:hex(sha256(parts))".
// The parts are JSON-encoded before hashing so structured option sets
// (like RenderKeyOpts) key deterministically field by field. The full
// 256-bit digest is kept; truncating would trade collision margin for
// nothing, since keys are hashed again into file names anyway.
func hashKey(prefix string, parts ...any) string {
	encoded, _ := json.Marshal(parts)
	sum := sha256.Sum256(encoded)
	return fmt.Sprintf("%s:%s", prefix, hex.EncodeToString(sum[:]))
}

// Hash returns hex(sha256(data)), the content address used for graph
// input bytes and font table files.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
