package canvas

import (
	"fmt"
	"io"
	"strings"

	"github.com/dotplain/dotplain/pkg/bitmap"
	"github.com/dotplain/dotplain/pkg/glyph"
)

// Half-block characters used by debug rendering. Two pixel rows map onto
// one output row.
const (
	blockNone  = ' '
	blockFull  = '█'
	blockUpper = '▀'
	blockLower = '▄'
)

// Render writes the canvas in heuristic mode: text cells emit their literal
// character and bitmap cells are substituted with their best match from
// table. Trailing whitespace is trimmed per line. If footnotes were added,
// a blank line and the numbered footnote list follow the grid.
func (c *Canvas) Render(w io.Writer, table *glyph.Table) error {
	var line strings.Builder
	for row := 0; row < c.Rows(); row++ {
		line.Reset()
		end := min((row+1)*c.width, len(c.cells))
		for i := row * c.width; i < end; i++ {
			switch cl := c.cells[i]; cl.kind {
			case kindText:
				line.WriteRune(cl.text)
			case kindBitmap:
				line.WriteRune(table.Lookup(cl.bits))
			}
		}
		if _, err := fmt.Fprintln(w, strings.TrimRight(line.String(), " \t")); err != nil {
			return err
		}
	}

	if len(c.footnotes) > 0 {
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
		for i, footnote := range c.footnotes {
			if _, err := fmt.Fprintf(w, "[%d]: %s\n", i+1, footnote); err != nil {
				return err
			}
		}
	}
	return nil
}

// RenderDebug writes the canvas at triple horizontal and two-pixels-per-row
// vertical resolution using half-block characters, depicting the true pixel
// state without glyph-matching distortion. One exception keeps labels
// legible: at each cell's middle column, on output rows sampling the
// cell's middle pixel row, a text cell shows its literal character instead
// of blocks. Trailing whitespace is trimmed per line; footnotes are not
// emitted in this mode.
func (c *Canvas) RenderDebug(w io.Writer) error {
	rows := c.Rows()
	outWidth := c.width * bitmap.Width
	outHeight := rows*2 + (rows+1)/2

	var line strings.Builder
	for y := 0; y < outHeight; y++ {
		line.Reset()
		for x := 0; x < outWidth; x++ {
			upper := pixelPoint{x: int64(x), y: int64(y * 2)}
			lower := pixelPoint{x: int64(x), y: int64(y*2 + 1)}

			if x%bitmap.Width == 1 && (upper.y%bitmap.Height == 2 || lower.y%bitmap.Height == 2) {
				if cp, _, _, ok := c.splitPixel(upper); ok {
					if cl := c.cellAt(cp); cl.kind == kindText {
						line.WriteRune(cl.text)
						continue
					}
				}
			}

			switch up, lo := c.pixelAt(upper), c.pixelAt(lower); {
			case up && lo:
				line.WriteRune(blockFull)
			case up:
				line.WriteRune(blockUpper)
			case lo:
				line.WriteRune(blockLower)
			default:
				line.WriteRune(blockNone)
			}
		}
		if _, err := fmt.Fprintln(w, strings.TrimRight(line.String(), " \t")); err != nil {
			return err
		}
	}
	return nil
}

// String renders the canvas in heuristic mode against the default embedded
// table. Intended for debugging and tests.
func (c *Canvas) String() string {
	var b strings.Builder
	_ = c.Render(&b, glyph.Default())
	return b.String()
}
