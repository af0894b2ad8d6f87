package bitmap

import (
	"math"
	"testing"
)

func TestPeekPokeRoundTrip(t *testing.T) {
	var c Cell
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			if c.Peek(x, y) {
				t.Fatalf("zero cell has pixel set at (%d,%d)", x, y)
			}
			c.Poke(x, y, true)
			if !c.Peek(x, y) {
				t.Fatalf("pixel (%d,%d) not set after Poke", x, y)
			}
			c.Poke(x, y, false)
			if c.Peek(x, y) {
				t.Fatalf("pixel (%d,%d) still set after clear", x, y)
			}
		}
	}
}

func TestPeekOutOfRange(t *testing.T) {
	c := Cell(0x7FFF) // every pixel on
	coords := [][2]int{
		{-1, 0}, {0, -1}, {3, 0}, {0, 5}, {3, 5}, {-1, -1}, {100, 100},
	}
	for _, xy := range coords {
		if c.Peek(xy[0], xy[1]) {
			t.Errorf("Peek(%d,%d) = true, want false", xy[0], xy[1])
		}
	}
}

func TestPokeOutOfRangeIgnored(t *testing.T) {
	var c Cell
	c.Poke(-1, 2, true)
	c.Poke(3, 2, true)
	c.Poke(1, 5, true)
	c.Poke(1, -1, true)
	if c != 0 {
		t.Errorf("out-of-range Poke mutated cell: %015b", c)
	}
}

func TestFromBits(t *testing.T) {
	tests := []struct {
		name string
		bits uint16
		on   [][2]int // pixels expected set
	}{
		{"empty", 0b000_000_000_000_000, nil},
		{"underscore", 0b000_000_000_000_111, [][2]int{{0, 4}, {1, 4}, {2, 4}}},
		{"top row", 0b111_000_000_000_000, [][2]int{{0, 0}, {1, 0}, {2, 0}}},
		{"center bar", 0b010_010_010_010_010, [][2]int{{1, 0}, {1, 1}, {1, 2}, {1, 3}, {1, 4}}},
		{"left bar", 0b100_100_100_100_100, [][2]int{{0, 0}, {0, 1}, {0, 2}, {0, 3}, {0, 4}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := FromBits(tt.bits)
			want := map[[2]int]bool{}
			for _, xy := range tt.on {
				want[xy] = true
			}
			for y := 0; y < Height; y++ {
				for x := 0; x < Width; x++ {
					if got := c.Peek(x, y); got != want[[2]int{x, y}] {
						t.Errorf("pixel (%d,%d) = %v, want %v", x, y, got, !got)
					}
				}
			}
		})
	}
}

func TestFromBitsLow15(t *testing.T) {
	// Converted literals always fit the table index space.
	for _, bits := range []uint16{0, 1, 0x7FFF, 0x5555, 0x2AAA} {
		if c := FromBits(bits); c >= Patterns {
			t.Errorf("FromBits(%#x) = %#x, exceeds 15 bits", bits, uint16(c))
		}
	}
}

func TestSimilarityIdentical(t *testing.T) {
	c := FromBits(0b010_010_111_010_010)
	if d := Similarity(c, c); d != 0 {
		t.Errorf("Similarity(c, c) = %v, want 0", d)
	}
}

func TestSimilaritySymmetric(t *testing.T) {
	a := FromBits(0b011_010_010_010_011)
	b := FromBits(0b110_010_010_010_110)
	if da, db := Similarity(a, b), Similarity(b, a); da != db {
		t.Errorf("Similarity not symmetric: %v vs %v", da, db)
	}
}

func TestSimilarityPenalty(t *testing.T) {
	// A single pixel with no counterpart anywhere nearby is charged the
	// fixed penalty in both directions.
	a := FromBits(0b100_000_000_000_000) // top-left
	b := FromBits(0b000_000_000_000_001) // bottom-right
	if d := Similarity(a, b); d != 4.0 {
		t.Errorf("Similarity(corner, corner) = %v, want 4.0", d)
	}
}

func TestSimilarityDiagonalNeighbor(t *testing.T) {
	a := FromBits(0b100_000_000_000_000) // (0,0)
	b := FromBits(0b000_010_000_000_000) // (1,1)
	want := 2 * math.Sqrt(2)
	if d := Similarity(a, b); d != want {
		t.Errorf("Similarity = %v, want %v", d, want)
	}
}

func TestSimilarityOrdering(t *testing.T) {
	target := FromBits(0b010_010_010_010_010)
	near := FromBits(0b100_100_100_100_100)
	far := FromBits(0b000_000_000_000_000)
	if Similarity(target, near) >= Similarity(target, far) {
		t.Errorf("adjacent bar should score closer than empty cell")
	}
}
