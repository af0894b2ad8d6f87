package glyph

import "github.com/dotplain/dotplain/pkg/bitmap"

// DefaultCharset is the reference set the embedded table was generated
// from. Bitmaps are written row-major, top row first, so the literals read
// like the glyphs they depict. Order matters: ties during generation
// resolve to the earliest entry.
//
// Changing the font is a matter of editing this list and re-running the
// fontgen command.
var DefaultCharset = []Reference{
	{' ', bitmap.FromBits(0b000_000_000_000_000)},
	{'_', bitmap.FromBits(0b000_000_000_000_111)},
	{'.', bitmap.FromBits(0b000_000_000_111_000)},
	{'-', bitmap.FromBits(0b000_000_111_000_000)},
	{'\'', bitmap.FromBits(0b000_111_000_000_000)},
	{'`', bitmap.FromBits(0b111_000_000_000_000)},
	{'|', bitmap.FromBits(0b001_001_001_001_001)},
	{'|', bitmap.FromBits(0b010_010_010_010_010)},
	{'|', bitmap.FromBits(0b100_100_100_100_100)},
	{'+', bitmap.FromBits(0b010_010_111_010_010)},
	{'.', bitmap.FromBits(0b000_000_100_100_100)},
	{'.', bitmap.FromBits(0b000_000_010_010_010)},
	{'.', bitmap.FromBits(0b000_000_001_001_001)},
	{'\'', bitmap.FromBits(0b100_100_100_000_000)},
	{'\'', bitmap.FromBits(0b010_010_010_000_000)},
	{'\'', bitmap.FromBits(0b001_001_001_000_000)},
	{'\\', bitmap.FromBits(0b100_110_010_011_001)},
	{'/', bitmap.FromBits(0b001_011_010_110_100)},
	{'[', bitmap.FromBits(0b011_010_010_010_011)},
	{']', bitmap.FromBits(0b110_010_010_010_110)},
	{'(', bitmap.FromBits(0b001_010_010_010_001)},
	{')', bitmap.FromBits(0b100_010_010_010_100)},
	{'{', bitmap.FromBits(0b011_010_110_010_011)},
	{'}', bitmap.FromBits(0b110_010_011_010_110)},
	{'<', bitmap.FromBits(0b001_010_100_010_001)},
	{'>', bitmap.FromBits(0b100_010_001_010_100)},
	{'.', bitmap.FromBits(0b000_000_000_010_000)},
	{',', bitmap.FromBits(0b000_000_000_010_100)},
	{'=', bitmap.FromBits(0b000_111_000_111_000)},
	{'\'', bitmap.FromBits(0b010_010_000_000_000)},
	{'"', bitmap.FromBits(0b101_101_000_000_000)},
	{'`', bitmap.FromBits(0b100_010_000_000_000)},
	{'+', bitmap.FromBits(0b000_010_111_010_000)},
	{'#', bitmap.FromBits(0b101_111_101_111_101)},
}
