// Package canvas implements a character-grid drawing surface with
// sub-character pixel resolution.
//
// # Coordinate Model
//
// Three coordinate systems compose. Continuous input coordinates are
// arbitrary floats; they scale per axis into integer pixel coordinates
// (truncating toward zero). Pixel coordinates decompose into a character
// cell plus a sub-cell offset: each cell is 3 pixels wide and 5 tall.
//
//   - column = floor(x * scale.X / 3)
//   - row    = floor(y * scale.Y / 5)
//
// Negative pixel coordinates address no cell; drawing there is a silent
// no-op, as is drawing past the declared column width. Partially off-canvas
// shapes are a normal usage pattern, never an error.
//
// # Cell Content
//
// Every cell is either a 3x5 pixel bitmap accumulating line art, or a
// literal text character. Writing text to a cell permanently discards its
// bitmap; a cell never returns to bitmap mode.
//
// # Rendering
//
// Two output strategies share the grid: heuristic mode substitutes each
// bitmap cell with its best-matching character from a [glyph.Table], and
// debug mode depicts the exact pixel state with half-block characters. See
// [Canvas.Render] and [Canvas.RenderDebug].
//
// A Canvas is exclusively owned by its caller; concurrent drawing into the
// same Canvas is unsupported.
package canvas

import (
	"unicode"

	"github.com/dotplain/dotplain/pkg/bitmap"
)

// Point is a continuous input coordinate.
type Point struct {
	X, Y float64
}

// pixelPoint is an integer coordinate at one-pixel granularity.
type pixelPoint struct {
	x, y int64
}

// cellPoint addresses one character position on the grid.
type cellPoint struct {
	x, y int
}

// cellKind discriminates the two cases of cell content.
type cellKind uint8

const (
	kindBitmap cellKind = iota // line-art accumulator (default)
	kindText                   // literal character, permanent
)

// cell is the content of one character position: a closed two-case variant.
// The zero value is an empty bitmap.
type cell struct {
	kind cellKind
	bits bitmap.Cell
	text rune
}

// Canvas is a row-major, lazily growing grid of cells with a fixed column
// count. The cell buffer and footnote list are exclusively owned by the
// Canvas; input coordinates are copied, never aliased.
type Canvas struct {
	cells     []cell
	width     int // column count, fixed at construction
	scale     Point
	footnotes []string
}

// New creates a canvas wide enough for targetPixelWidth pixels. The column
// count is floor(targetPixelWidth/3)+1; rows grow as content is written.
// scale is applied per axis to all continuous input coordinates.
func New(targetPixelWidth float64, scale Point) *Canvas {
	return &Canvas{
		width: int(targetPixelWidth/bitmap.Width) + 1,
		scale: scale,
	}
}

// Width returns the fixed column count.
func (c *Canvas) Width() int { return c.width }

// Rows returns the number of character rows written so far.
func (c *Canvas) Rows() int {
	return (len(c.cells) + c.width - 1) / c.width
}

// AddFootnote appends a footnote and returns its 1-based reference number,
// suitable for a "[n]" marker drawn elsewhere on the canvas. Footnotes are
// emitted by heuristic-mode rendering; no drawing primitive populates them.
func (c *Canvas) AddFootnote(text string) int {
	c.footnotes = append(c.footnotes, text)
	return len(c.footnotes)
}

// cellIndex returns the buffer offset for a cell coordinate, or false when
// the column lies beyond the declared width. Row offsets are unbounded:
// rows grow on write.
func (c *Canvas) cellIndex(p cellPoint) (int, bool) {
	if p.x < 0 || p.y < 0 || p.x >= c.width {
		return 0, false
	}
	return p.x + c.width*p.y, true
}

// cellAt reads the cell at p. Unwritten or unaddressable cells read as the
// default empty bitmap.
func (c *Canvas) cellAt(p cellPoint) cell {
	i, ok := c.cellIndex(p)
	if !ok || i >= len(c.cells) {
		return cell{}
	}
	return c.cells[i]
}

// cellRef returns a mutable reference to the cell at p, growing the buffer
// with empty cells as needed. Returns nil when the column is out of range;
// columns never grow.
func (c *Canvas) cellRef(p cellPoint) *cell {
	i, ok := c.cellIndex(p)
	if !ok {
		return nil
	}
	for len(c.cells) <= i {
		c.cells = append(c.cells, cell{})
	}
	return &c.cells[i]
}

// toPixel scales a continuous coordinate into pixel space, truncating
// toward zero.
func (c *Canvas) toPixel(p Point) pixelPoint {
	return pixelPoint{
		x: int64(p.X * c.scale.X),
		y: int64(p.Y * c.scale.Y),
	}
}

// splitPixel decomposes a pixel coordinate into its cell and sub-cell
// offset. Negative coordinates address no cell.
func (c *Canvas) splitPixel(p pixelPoint) (cellPoint, int, int, bool) {
	if p.x < 0 || p.y < 0 {
		return cellPoint{}, 0, 0, false
	}
	return cellPoint{
		x: int(p.x / bitmap.Width),
		y: int(p.y / bitmap.Height),
	}, int(p.x % bitmap.Width), int(p.y % bitmap.Height), true
}

// pixelAt reads a pixel. Text cells, unaddressable coordinates and
// unwritten cells all read as off.
func (c *Canvas) pixelAt(p pixelPoint) bool {
	cp, px, py, ok := c.splitPixel(p)
	if !ok {
		return false
	}
	if cl := c.cellAt(cp); cl.kind == kindBitmap {
		return cl.bits.Peek(px, py)
	}
	return false
}

// setPixel turns a pixel on or off. Writes to text cells, negative
// coordinates or columns past the width are silently dropped.
func (c *Canvas) setPixel(p pixelPoint, value bool) {
	cp, px, py, ok := c.splitPixel(p)
	if !ok {
		return
	}
	if cl := c.cellRef(cp); cl != nil && cl.kind == kindBitmap {
		cl.bits.Poke(px, py, value)
	}
}

// setText overwrites the cell at p with a literal character, discarding any
// accumulated bitmap. The cell stays text forever after.
func (c *Canvas) setText(p cellPoint, r rune) {
	if cl := c.cellRef(p); cl != nil {
		*cl = cell{kind: kindText, text: r}
	}
}

// DrawString writes text starting at the cell containing origin; the
// sub-cell offset is discarded, so strings always start on a cell boundary.
// Each character advances one column. A newline returns to the starting
// column and advances one row; other control characters are skipped without
// consuming a cell. Writing past the declared width drops characters
// per cell, with no wrapping. An unaddressable origin drops the whole
// string.
func (c *Canvas) DrawString(origin Point, text string) {
	topLeft, _, _, ok := c.splitPixel(c.toPixel(origin))
	if !ok {
		return
	}
	pos := topLeft
	for _, r := range text {
		switch {
		case r == '\n':
			pos.x = topLeft.x
			pos.y++
		case unicode.IsControl(r):
			// consumes no cell
		default:
			c.setText(pos, r)
			pos.x++
		}
	}
}

// DrawRect draws the four border lines of the axis-aligned box with corners
// a and b, inclusive of both corner pixels. Corners are not normalized: if
// a is not componentwise <= b the iteration ranges are empty and nothing is
// drawn. Callers wanting a reversed box must swap the corners themselves.
func (c *Canvas) DrawRect(a, b Point) {
	pa := c.toPixel(a)
	pb := c.toPixel(b)
	for x := pa.x; x <= pb.x; x++ {
		c.setPixel(pixelPoint{x, pa.y}, true)
		c.setPixel(pixelPoint{x, pb.y}, true)
	}
	for y := pa.y; y <= pb.y; y++ {
		c.setPixel(pixelPoint{pa.x, y}, true)
		c.setPixel(pixelPoint{pb.x, y}, true)
	}
}

// DrawLine rasterizes the line from a to b with Bresenham's algorithm,
// setting every pixel on the path inclusive of both endpoints. A degenerate
// line (a == b) sets exactly one pixel.
func (c *Canvas) DrawLine(a, b Point) {
	p0 := c.toPixel(a)
	p1 := c.toPixel(b)

	dx := abs64(p1.x - p0.x)
	dy := abs64(p1.y - p0.y)
	sx := int64(-1)
	if p0.x < p1.x {
		sx = 1
	}
	sy := int64(-1)
	if p0.y < p1.y {
		sy = 1
	}

	err := dx - dy
	for {
		c.setPixel(p0, true)
		if p0.x == p1.x && p0.y == p1.y {
			return
		}
		e2 := err * 2
		if e2 > -dy {
			err -= dy
			p0.x += sx
		}
		if e2 < dx {
			err += dx
			p0.y += sy
		}
	}
}

func abs64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}
