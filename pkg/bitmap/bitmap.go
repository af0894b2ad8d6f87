// Package bitmap provides the 3x5 monochrome pixel cell that backs every
// character position on a canvas, plus the similarity metric used to match
// arbitrary cells against a reference glyph set.
//
// A [Cell] packs its 15 pixels into a uint16; only the low 15 bits are
// meaningful. Pixel (0,0) is the top-left corner, (2,4) the bottom-right.
package bitmap

import "math"

// Cell dimensions in pixels.
const (
	Width  = 3
	Height = 5
)

// PixelCount is the number of pixels in a cell.
const PixelCount = Width * Height

// Patterns is the number of distinct cell bit patterns (2^15).
const Patterns = 1 << PixelCount

// Cell is a 3x5 monochrome pixel block packed into the low 15 bits of a
// uint16. Bit i holds pixel (i%3, i/3). The zero value has all pixels off.
type Cell uint16

// FromBits converts a human-authored bit literal into a Cell. The literal
// is written row-major, top row first, most significant bit first, so that
// e.g. 0b000_000_000_000_111 reads as an underscore and
// 0b011_010_010_010_011 as a '['. The internal ordering is the reverse, so
// the value is shifted up one bit and then bit-reversed as a full 16-bit
// word. Generated tables are indexed by the internal ordering; this exact
// conversion keeps them bit-compatible with externally authored literals.
func FromBits(bits uint16) Cell {
	bits <<= 1
	bits = (bits >> 8) | (bits << 8)
	bits = ((bits >> 4) & 0x0F0F) | ((bits << 4) & 0xF0F0)
	bits = ((bits >> 2) & 0x3333) | ((bits << 2) & 0xCCCC)
	bits = ((bits >> 1) & 0x5555) | ((bits << 1) & 0xAAAA)
	return Cell(bits)
}

// Peek reports the pixel at (x, y), where (0,0) is top-left and (2,4) is
// bottom-right. Out-of-range coordinates read as false.
func (c Cell) Peek(x, y int) bool {
	return x >= 0 && y >= 0 && x < Width && y < Height && c&(1<<(x+y*Width)) != 0
}

// Poke sets or clears the pixel at (x, y). Out-of-range coordinates are
// ignored.
func (c *Cell) Poke(x, y int, value bool) {
	if x < 0 || y < 0 || x >= Width || y >= Height {
		return
	}
	mask := Cell(1) << (x + y*Width)
	if value {
		*c |= mask
	} else {
		*c &^= mask
	}
}

// noNeighborPenalty is charged per set pixel that has no counterpart
// anywhere in the other cell's 3x3 neighborhood.
const noNeighborPenalty = 2.0

// similarityAsym sums, for every set pixel of c, the distance to the
// nearest set pixel of other within a one-pixel neighborhood.
func (c Cell) similarityAsym(other Cell) float64 {
	var sim float64
	for x := 0; x < Width; x++ {
		for y := 0; y < Height; y++ {
			if !c.Peek(x, y) {
				continue
			}
			pixelMin := noNeighborPenalty
			for sx := -1; sx <= 1; sx++ {
				for sy := -1; sy <= 1; sy++ {
					if other.Peek(x+sx, y+sy) {
						pixelMin = math.Min(pixelMin, math.Sqrt(float64(sx*sx+sy*sy)))
					}
				}
			}
			sim += pixelMin
		}
	}
	return sim
}

// Similarity scores how visually close two cells are. Zero means
// pixel-identical; higher values mean less similar. The metric is symmetric
// and intentionally local (one-pixel neighborhood), which makes it cheap per
// pair but still far too slow for per-render use. It exists to build lookup
// tables offline.
func Similarity(a, b Cell) float64 {
	return a.similarityAsym(b) + b.similarityAsym(a)
}
