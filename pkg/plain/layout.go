package plain

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"
)

// FormatPlain is the Graphviz output format this package consumes.
const FormatPlain = graphviz.Format("plain")

// LayoutDOT runs the Graphviz dot layout engine in-process on DOT source
// and returns the resulting plain-format text, ready for [Parse]. This lets
// callers feed raw .dot files without shelling out to an external dot
// binary.
func LayoutDOT(ctx context.Context, src []byte) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes(src)
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, FormatPlain, &buf); err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}
	return buf.Bytes(), nil
}

// LayoutAndParse composes [LayoutDOT] and [Parse].
func LayoutAndParse(ctx context.Context, src []byte) (*Graph, error) {
	plainText, err := LayoutDOT(ctx, src)
	if err != nil {
		return nil, err
	}
	return Parse(bytes.NewReader(plainText))
}
