package cli

import (
	"fmt"
	"sort"
	"unicode/utf8"

	"github.com/dotplain/dotplain/pkg/canvas"
	"github.com/dotplain/dotplain/pkg/plain"
)

// drawGraph draws a laid-out graph onto the canvas: a box per node, a
// polyline per edge, then labels on top. Labels go last so their text cells
// cover the line work beneath them.
func drawGraph(cv *canvas.Canvas, g *plain.Graph, scaleX, scaleY float64) {
	names := make([]string, 0, len(g.Nodes))
	for name := range g.Nodes {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		node := g.Nodes[name]
		half := plain.Coord{X: node.Size.X / 2, Y: node.Size.Y / 2}
		cv.DrawRect(
			canvas.Point{X: node.Pos.X - half.X, Y: node.Pos.Y - half.Y},
			canvas.Point{X: node.Pos.X + half.X, Y: node.Pos.Y + half.Y},
		)
	}

	for _, edge := range g.Edges {
		for i := 1; i < len(edge.Points); i++ {
			a, b := edge.Points[i-1], edge.Points[i]
			cv.DrawLine(canvas.Point{X: a.X, Y: a.Y}, canvas.Point{X: b.X, Y: b.Y})
		}
	}

	for _, name := range names {
		node := g.Nodes[name]
		label := node.Label
		if label == "" {
			label = name
		}
		drawLabelCentered(cv, plain.Coord{X: node.Pos.X, Y: node.Pos.Y}, label, scaleX, scaleY)
	}

	for _, edge := range g.Edges {
		if edge.Label == nil || edge.Label.Text == "" {
			continue
		}
		text := edge.Label.Text
		if labelFits(cv, edge.Label.Pos, text, scaleX) {
			drawLabelCentered(cv, edge.Label.Pos, text, scaleX, scaleY)
			continue
		}
		// Long edge labels would run off the canvas or smother the
		// drawing around them. Park the text in a footnote and drop a
		// short marker at the label position instead.
		marker := fmt.Sprintf("[%d]", cv.AddFootnote(text))
		drawLabelCentered(cv, edge.Label.Pos, marker, scaleX, scaleY)
	}
}

// drawLabelCentered places text so that its middle lands on pos. A character
// cell is 3 pixels wide and 5 tall, so the origin backs up by half the text
// width and half a cell height in pixel space before converting back to
// layout units.
func drawLabelCentered(cv *canvas.Canvas, pos plain.Coord, text string, scaleX, scaleY float64) {
	n := float64(utf8.RuneCountInString(text))
	origin := canvas.Point{
		X: pos.X - 1.5*n/scaleX,
		Y: pos.Y - 2.5/scaleY,
	}
	cv.DrawString(origin, text)
}

// labelFits reports whether text centered at pos stays inside the canvas
// columns.
func labelFits(cv *canvas.Canvas, pos plain.Coord, text string, scaleX float64) bool {
	n := float64(utf8.RuneCountInString(text))
	centerPx := pos.X * scaleX
	startPx := centerPx - 1.5*n
	endCell := int((centerPx + 1.5*n) / 3)
	return startPx >= 0 && endCell < cv.Width()
}
