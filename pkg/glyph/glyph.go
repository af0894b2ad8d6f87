// Package glyph maps 3x5 pixel cells to their best-matching display
// characters.
//
// The mapping is a precomputed lookup table with one entry for every
// possible cell bit pattern (2^15 = 32768 entries). Building the table is an
// exhaustive similarity search against a small hand-authored reference set
// and is far too slow for per-render use, so it happens offline once (the
// fontgen command) and the resulting artifact is embedded into the binary.
//
// # Artifact Format
//
// A serialized table is exactly 32768 characters, one per bit pattern in
// index order, with no delimiters, header, or length marker. Consumers must
// validate the length before use; [Deserialize] returns a structured error
// for any other length.
//
// # Lifecycle
//
// Tables have two states: under construction (inside [Generate]) and
// immutable-ready (anything a caller can hold). A ready table is safe to
// share across any number of concurrent renders.
package glyph

import (
	"math"
	"sync"
	"unicode/utf8"

	"github.com/dotplain/dotplain/pkg/bitmap"
	"github.com/dotplain/dotplain/pkg/errors"
)

// TableSize is the number of entries in a table, one per possible cell
// bit pattern.
const TableSize = bitmap.Patterns

// progressStride is how many patterns are scanned between progress reports.
const progressStride = 100

// Reference pairs a display character with the cell bitmap it depicts.
// Several references may share the same character (e.g. the three vertical
// bar positions all display as '|').
type Reference struct {
	Char rune
	Cell bitmap.Cell
}

// Table is a complete mapping from every possible cell bit pattern to its
// best-matching display character. A Table is immutable once returned by
// [Generate], [GenerateConcurrent], or [Deserialize].
type Table struct {
	data [TableSize]rune
}

// Lookup returns the display character for a cell. It is a total function:
// construction guarantees every index has an assigned character.
func (t *Table) Lookup(c bitmap.Cell) rune {
	return t.data[c]
}

// Serialize concatenates all 32768 table characters in index order.
func (t *Table) Serialize() string {
	b := make([]byte, 0, TableSize)
	for _, r := range t.data {
		b = utf8.AppendRune(b, r)
	}
	return string(b)
}

// Deserialize reconstructs a table from its serialized form. The input must
// be exactly 32768 characters; any other length yields an INVALID_TABLE
// error.
func Deserialize(data string) (*Table, error) {
	if n := utf8.RuneCountInString(data); n != TableSize {
		return nil, errors.New(errors.ErrCodeInvalidTable,
			"font table has %d characters, want %d", n, TableSize)
	}
	t := &Table{}
	i := 0
	for _, r := range data {
		t.data[i] = r
		i++
	}
	return t, nil
}

// bestMatch scans refs in order and returns the character of the
// minimum-distance entry. Ties resolve to the first entry achieving the
// minimum.
func bestMatch(target bitmap.Cell, refs []Reference) rune {
	bestSim := math.Inf(1)
	best := '?'
	for _, ref := range refs {
		sim := bitmap.Similarity(target, ref.Cell)
		if sim < bestSim {
			bestSim = sim
			best = ref.Char
		}
	}
	return best
}

// Generate builds a table by exhaustive search: every one of the 32768
// possible bit patterns is scored against every reference, and the
// minimum-distance character wins. The result is deterministic for a given
// reference set.
//
// progress, if non-nil, is called with a fraction in [0,1] every few hundred
// patterns so callers can display generation progress. It is purely
// observational.
func Generate(refs []Reference, progress func(float64)) *Table {
	t := &Table{}
	for index := 0; index < TableSize; index++ {
		t.data[index] = bestMatch(bitmap.Cell(index), refs)
		if progress != nil && index%progressStride == 0 {
			progress(float64(index) / float64(TableSize-1))
		}
	}
	if progress != nil {
		progress(1)
	}
	return t
}

// GenerateConcurrent is [Generate] spread across the given number of worker
// goroutines. Pattern computations are independent and each worker owns a
// disjoint index range, so the output is identical to the sequential
// version. Progress reports an aggregate count and is monotonically
// non-decreasing across workers.
func GenerateConcurrent(refs []Reference, workers int, progress func(float64)) *Table {
	if workers <= 1 {
		return Generate(refs, progress)
	}

	t := &Table{}
	var wg sync.WaitGroup

	// The count update and the callback happen under one lock so a
	// preempted worker cannot deliver a stale, smaller fraction after a
	// larger one.
	var mu sync.Mutex
	scanned := 0

	chunk := (TableSize + workers - 1) / workers
	for w := 0; w < workers; w++ {
		lo := w * chunk
		hi := min(lo+chunk, TableSize)
		if lo >= hi {
			break
		}
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			for index := lo; index < hi; index++ {
				t.data[index] = bestMatch(bitmap.Cell(index), refs)
				if n := index - lo + 1; n%progressStride == 0 || index == hi-1 {
					batch := progressStride
					if n%progressStride != 0 {
						batch = n % progressStride
					}
					mu.Lock()
					scanned += batch
					if progress != nil {
						progress(float64(scanned) / float64(TableSize))
					}
					mu.Unlock()
				}
			}
		}(lo, hi)
	}
	wg.Wait()
	return t
}
