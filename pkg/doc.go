// Package pkg provides the core libraries for dotplain text rendering.
//
// # Overview
//
// Dotplain turns Graphviz graphs into text art that fits in READMEs, code
// comments, and terminals. The pkg directory is organized by pipeline stage:
//
//  1. [plain] - Graphviz layout and "dot -Tplain" parsing
//  2. [canvas] - Dual-resolution drawing surface (pixels and text cells)
//  3. [bitmap] - 3x5 pixel cells and the similarity metric
//  4. [glyph] - Bitmap-to-character font tables
//  5. [cache], [errors], [buildinfo] - Supporting infrastructure
//
// # Architecture
//
// The typical data flow through dotplain:
//
//	DOT source
//	     ↓
//	[plain] package (Graphviz layout, plain-format parsing)
//	     ↓
//	[canvas] package (rects, lines, strings on a pixel grid)
//	     ↓
//	[glyph] package (pixel cells to best-matching characters)
//	     ↓
//	text output
//
// # Quick Start
//
// Lay out a graph and render it as text:
//
//	import (
//	    "context"
//	    "os"
//
//	    "github.com/dotplain/dotplain/pkg/canvas"
//	    "github.com/dotplain/dotplain/pkg/glyph"
//	    "github.com/dotplain/dotplain/pkg/plain"
//	)
//
//	// 1. Lay out DOT source with Graphviz and parse the result
//	g, _ := plain.LayoutAndParse(context.Background(), []byte("digraph { a -> b }"))
//
//	// 2. Draw onto a canvas, in layout units
//	c := canvas.New(200, canvas.Point{X: 50, Y: 50})
//	for _, n := range g.Nodes {
//	    c.DrawRect(
//	        canvas.Point{X: n.Pos.X - n.Size.X/2, Y: n.Pos.Y - n.Size.Y/2},
//	        canvas.Point{X: n.Pos.X + n.Size.X/2, Y: n.Pos.Y + n.Size.Y/2},
//	    )
//	}
//
//	// 3. Render with the embedded font
//	c.Render(os.Stdout, glyph.Default())
//
// # Main Packages
//
// [bitmap] - The 3x5 pixel cell type and the pixel-distance similarity
// metric that scores how well two cells resemble each other.
//
// [glyph] - Font tables mapping every possible cell bitmap to its
// best-matching character. Includes the embedded default font, table
// generation from a reference character set, and (de)serialization.
//
// [canvas] - The drawing surface. Continuous coordinates are scaled to a
// pixel grid; pixels group into 3x5 cells that render as one character
// each. Text placed on the canvas permanently claims its cells. A debug
// mode renders the raw pixel grid with Unicode half blocks.
//
// [plain] - Graphviz integration: running layout in-process and parsing
// the "dot -Tplain" output format into nodes, edges, and labels.
//
// [cache] - Content-addressed byte caching for rendered output and
// generated font tables, with file-backed and no-op implementations.
//
// [errors] - Structured errors with stable codes for user-facing messages.
//
// [buildinfo] - Version metadata injected at build time.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...          # All tests
//	go test ./pkg/canvas/...   # Specific package
//
// [bitmap]: https://pkg.go.dev/github.com/dotplain/dotplain/pkg/bitmap
// [glyph]: https://pkg.go.dev/github.com/dotplain/dotplain/pkg/glyph
// [canvas]: https://pkg.go.dev/github.com/dotplain/dotplain/pkg/canvas
// [plain]: https://pkg.go.dev/github.com/dotplain/dotplain/pkg/plain
// [cache]: https://pkg.go.dev/github.com/dotplain/dotplain/pkg/cache
// [errors]: https://pkg.go.dev/github.com/dotplain/dotplain/pkg/errors
// [buildinfo]: https://pkg.go.dev/github.com/dotplain/dotplain/pkg/buildinfo
package pkg
