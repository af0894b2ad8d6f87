// Package plain parses the Graphviz "plain" output format into graph
// records ready for canvas drawing.
//
// The plain format is line-oriented: one graph statement with the overall
// scale and dimensions, one node statement per node, one edge statement per
// edge with polyline control points and an optional label, and a stop
// statement. Tokens may be double-quoted and use backslash escapes.
// See https://graphviz.org/docs/outputs/plain/ for the format definition.
//
// The graph-level scale factor is applied to every coordinate during
// parsing, so downstream consumers work in a single normalized coordinate
// space and never see the raw scale.
package plain

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dotplain/dotplain/pkg/errors"
)

// Coord is a position or extent in the normalized coordinate space.
type Coord struct {
	X, Y float64
}

// Node is a named graph entity with a center position and a size.
type Node struct {
	Name      string
	Pos       Coord // center of the node
	Size      Coord // width and height
	Label     string
	Style     string
	Shape     string
	Color     string
	FillColor string
}

// Label is edge label text anchored at a position.
type Label struct {
	Text string
	Pos  Coord
}

// Edge connects two nodes through a polyline of control points.
type Edge struct {
	Tail   string
	Head   string
	Points []Coord
	Label  *Label // nil when the edge has no label
	Style  string
	Color  string
}

// Graph is a parsed plain-format document with scale already applied.
type Graph struct {
	Width  float64
	Height float64
	Nodes  map[string]Node
	Edges  []Edge
}

// Parse reads a plain-format document. Coordinates in the result are
// normalized by the graph statement's scale factor. Malformed statements,
// duplicate node names and edges referencing unknown nodes produce
// INVALID_INPUT errors carrying the offending line number.
func Parse(r io.Reader) (*Graph, error) {
	g := &Graph{Nodes: make(map[string]Node)}
	scale := 1.0

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		words := splitWords(strings.TrimSuffix(sc.Text(), "\r"))
		if len(words) == 0 {
			continue
		}
		st := stmt{words: words, line: lineNo}

		switch words[0] {
		case "graph":
			if len(words) != 4 {
				return nil, st.errorf("expected 3 arguments for graph statement")
			}
			var err error
			if scale, err = st.float(1); err != nil {
				return nil, err
			}
			if g.Width, err = st.float(2); err != nil {
				return nil, err
			}
			if g.Height, err = st.float(3); err != nil {
				return nil, err
			}

		case "node":
			node, err := parseNode(st)
			if err != nil {
				return nil, err
			}
			if _, dup := g.Nodes[node.Name]; dup {
				return nil, st.errorf("duplicate node name %s", node.Name)
			}
			g.Nodes[node.Name] = node

		case "edge":
			edge, err := parseEdge(st, g.Nodes)
			if err != nil {
				return nil, err
			}
			g.Edges = append(g.Edges, edge)

		case "stop":
			if len(words) != 1 {
				return nil, st.errorf("expected zero arguments for stop statement")
			}

		default:
			return nil, st.errorf("unrecognized statement %q", words[0])
		}
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "read input")
	}

	g.applyScale(scale)
	return g, nil
}

func parseNode(st stmt) (Node, error) {
	if len(st.words) != 11 {
		return Node{}, st.errorf("expected 10 arguments for node statement")
	}
	var (
		node Node
		err  error
	)
	node.Name = st.words[1]
	if node.Pos, err = st.coord(2); err != nil {
		return Node{}, err
	}
	if node.Size, err = st.coord(4); err != nil {
		return Node{}, err
	}
	node.Label = st.words[6]
	node.Style = st.words[7]
	node.Shape = st.words[8]
	node.Color = st.words[9]
	node.FillColor = st.words[10]
	return node, nil
}

func parseEdge(st stmt, nodes map[string]Node) (Edge, error) {
	if len(st.words) < 4 {
		return Edge{}, st.errorf("expected at least 3 arguments for edge statement")
	}
	edge := Edge{Tail: st.words[1], Head: st.words[2]}
	if _, ok := nodes[edge.Tail]; !ok {
		return Edge{}, st.errorf("unknown node %s used for edge", edge.Tail)
	}
	if _, ok := nodes[edge.Head]; !ok {
		return Edge{}, st.errorf("unknown node %s used for edge", edge.Head)
	}

	n, err := st.count(3)
	if err != nil {
		return Edge{}, err
	}

	// The count comes from the input; check it against the statement
	// arity before trusting it as an allocation size.
	labelled := false
	switch len(st.words) {
	case 6 + n*2: // unlabelled
	case 9 + n*2: // labelled edge: label text, label position
		labelled = true
	default:
		return Edge{}, st.errorf("unexpected number of arguments for edge statement")
	}

	edge.Points = make([]Coord, 0, n)
	for i := 0; i < n; i++ {
		pt, err := st.coord(4 + i*2)
		if err != nil {
			return Edge{}, err
		}
		edge.Points = append(edge.Points, pt)
	}

	if labelled {
		pos, err := st.coord(5 + n*2)
		if err != nil {
			return Edge{}, err
		}
		edge.Label = &Label{Text: st.words[4+n*2], Pos: pos}
	}

	edge.Style = st.words[len(st.words)-2]
	edge.Color = st.words[len(st.words)-1]
	return edge, nil
}

// applyScale multiplies every stored coordinate by the graph scale factor
// so callers never need to track it.
func (g *Graph) applyScale(scale float64) {
	g.Width *= scale
	g.Height *= scale
	for name, node := range g.Nodes {
		node.Pos.X *= scale
		node.Pos.Y *= scale
		node.Size.X *= scale
		node.Size.Y *= scale
		g.Nodes[name] = node
	}
	for i := range g.Edges {
		for j := range g.Edges[i].Points {
			g.Edges[i].Points[j].X *= scale
			g.Edges[i].Points[j].Y *= scale
		}
		if g.Edges[i].Label != nil {
			g.Edges[i].Label.Pos.X *= scale
			g.Edges[i].Label.Pos.Y *= scale
		}
	}
}

// stmt is one tokenized statement with its source line, shared by the
// argument accessors below so every parse error carries a position.
type stmt struct {
	words []string
	line  int
}

func (s stmt) errorf(format string, args ...any) error {
	return errors.New(errors.ErrCodeInvalidInput,
		"line %d: %s", s.line, fmt.Sprintf(format, args...))
}

func (s stmt) float(i int) (float64, error) {
	if i >= len(s.words) {
		return 0, s.errorf("argument index %d out of range", i)
	}
	v, err := strconv.ParseFloat(s.words[i], 64)
	if err != nil {
		return 0, s.errorf("argument %d is not a number (%q)", i, s.words[i])
	}
	return v, nil
}

func (s stmt) count(i int) (int, error) {
	if i >= len(s.words) {
		return 0, s.errorf("argument index %d out of range", i)
	}
	v, err := strconv.Atoi(s.words[i])
	if err != nil || v < 0 {
		return 0, s.errorf("argument %d is not a list length (%q)", i, s.words[i])
	}
	return v, nil
}

func (s stmt) coord(i int) (Coord, error) {
	x, err := s.float(i)
	if err != nil {
		return Coord{}, err
	}
	y, err := s.float(i + 1)
	if err != nil {
		return Coord{}, err
	}
	return Coord{X: x, Y: y}, nil
}

// splitWords tokenizes one statement line. Double quotes group words and
// may appear mid-token; inside quotes, backslash escapes \n, \r and \t,
// and any other escaped character stands for itself. Empty tokens are
// dropped.
func splitWords(line string) []string {
	var words []string
	var cur strings.Builder
	inString := false
	escaping := false

	flush := func() {
		if cur.Len() > 0 {
			words = append(words, cur.String())
			cur.Reset()
		}
	}

	for _, r := range line {
		switch {
		case escaping:
			switch r {
			case 'n':
				cur.WriteRune('\n')
			case 'r':
				cur.WriteRune('\r')
			case 't':
				cur.WriteRune('\t')
			default:
				cur.WriteRune(r)
			}
			escaping = false
		case r == '"':
			inString = !inString
		case r == '\\' && inString:
			escaping = true
		case r == ' ' && !inString:
			flush()
		default:
			cur.WriteRune(r)
		}
	}
	flush()
	return words
}
