package glyph

import (
	_ "embed"
	"fmt"
	"sync"
)

// Embedded table artifact, generated from DefaultCharset by the fontgen
// command. Exactly 32768 characters, index = cell bit value.
//
//go:embed table.txt
var embeddedTable string

var (
	defaultOnce  sync.Once
	defaultTable *Table
)

// Default returns the table embedded at build time. The artifact is decoded
// once and shared; the returned table is immutable and safe for concurrent
// use. Panics only if the embedded artifact is corrupt, which is a build
// defect rather than a runtime condition.
func Default() *Table {
	defaultOnce.Do(func() {
		t, err := Deserialize(embeddedTable)
		if err != nil {
			panic(fmt.Sprintf("glyph: embedded table invalid: %v", err))
		}
		defaultTable = t
	})
	return defaultTable
}
