package cli

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/dotplain/dotplain/pkg/cache"
	"github.com/dotplain/dotplain/pkg/canvas"
	"github.com/dotplain/dotplain/pkg/errors"
	"github.com/dotplain/dotplain/pkg/glyph"
	"github.com/dotplain/dotplain/pkg/plain"
)

const (
	formatDOT   = "dot"   // Graphviz source, needs a layout pass
	formatPlain = "plain" // already laid out (dot -Tplain output)

	// renderTTL bounds how long rendered output stays cached. Keys are
	// content-addressed so entries can never be stale, but unbounded
	// growth is not worth the disk.
	renderTTL = 30 * 24 * time.Hour
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output  string  // output file path, empty for stdout
	format  string  // input format: "dot", "plain", or "" to infer from extension
	font    string  // path to an external font table, empty for the embedded default
	width   float64 // target canvas width in pixels
	scaleX  float64 // horizontal layout-unit to pixel factor
	scaleY  float64 // vertical layout-unit to pixel factor
	debug   bool    // render the raw pixel grid with half blocks
	noCache bool    // bypass the render cache
}

// renderCommand creates the render command for turning graphs into text.
func (c *CLI) renderCommand() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a DOT or plain-format graph as text",
		Long: `Render lays out a Graphviz DOT graph (or consumes existing "dot -Tplain"
output) and draws it as text art: node boxes, edge polylines, and labels.

Reads from stdin when file is "-" or omitted. The input format is inferred
from the file extension (.plain and .txt mean plain format, anything else is
DOT source) and can be forced with --format.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := "-"
			if len(args) == 1 {
				input = args[0]
			}
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			applyConfig(cmd, &opts, cfg)
			if err := validateFormat(opts.format); err != nil {
				return err
			}
			return c.runRender(cmd.Context(), input, &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "input format: dot or plain (default inferred)")
	cmd.Flags().StringVar(&opts.font, "font", "", "font table file (default embedded font)")
	cmd.Flags().Float64VarP(&opts.width, "width", "w", defaultWidth, "canvas width in pixels")
	cmd.Flags().Float64Var(&opts.scaleX, "scale-x", defaultScaleX, "horizontal scale (layout units to pixels)")
	cmd.Flags().Float64Var(&opts.scaleY, "scale-y", defaultScaleY, "vertical scale (layout units to pixels)")
	cmd.Flags().BoolVar(&opts.debug, "debug", false, "render the pixel grid with half blocks instead of the font")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "bypass the render cache")

	return cmd
}

// applyConfig fills option values from the config file for flags the user
// did not set explicitly.
func applyConfig(cmd *cobra.Command, opts *renderOpts, cfg Config) {
	flags := cmd.Flags()
	if !flags.Changed("width") {
		opts.width = cfg.Width
	}
	if !flags.Changed("scale-x") {
		opts.scaleX = cfg.ScaleX
	}
	if !flags.Changed("scale-y") {
		opts.scaleY = cfg.ScaleY
	}
	if !flags.Changed("debug") {
		opts.debug = cfg.Debug
	}
	if !flags.Changed("font") {
		opts.font = cfg.Font
	}
	if !flags.Changed("no-cache") {
		opts.noCache = cfg.NoCache
	}
}

// validateFormat checks that the format is empty, "dot", or "plain".
func validateFormat(f string) error {
	if f != "" && f != formatDOT && f != formatPlain {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %s (must be 'dot' or 'plain')", f)
	}
	return nil
}

// inferFormat picks the input format from the file extension.
// Stdin defaults to DOT source.
func inferFormat(input string) string {
	switch filepath.Ext(input) {
	case ".plain", ".txt":
		return formatPlain
	default:
		return formatDOT
	}
}

// runRender reads the input graph, renders it, and writes the result.
func (c *CLI) runRender(ctx context.Context, input string, opts *renderOpts) error {
	logger := loggerFromContext(ctx)
	track := newProgress(logger)

	data, err := readInput(input)
	if err != nil {
		return err
	}

	format := opts.format
	if format == "" {
		format = inferFormat(input)
	}
	logger.Debugf("Input: %d bytes (%s)", len(data), format)

	table, fontHash, err := loadFont(opts.font)
	if err != nil {
		return err
	}

	store, err := newCache(opts.noCache)
	if err != nil {
		return err
	}
	defer store.Close()

	key := cache.RenderKey(cache.Hash(data), cache.RenderKeyOpts{
		Width:  opts.width,
		ScaleX: opts.scaleX,
		ScaleY: opts.scaleY,
		Debug:  opts.debug,
		Font:   fontHash,
	})

	if out, hit, err := store.Get(ctx, key); err == nil && hit {
		logger.Debug("Render cache hit")
		return writeOutput(opts.output, out, 0, 0, true)
	}

	g, err := loadGraph(ctx, data, format)
	if err != nil {
		return err
	}
	logger.Debugf("Graph: %.1fx%.1f units, %d nodes, %d edges",
		g.Width, g.Height, len(g.Nodes), len(g.Edges))

	cv := canvas.New(opts.width, canvas.Point{X: opts.scaleX, Y: opts.scaleY})
	drawGraph(cv, g, opts.scaleX, opts.scaleY)

	var buf bytes.Buffer
	if opts.debug {
		err = cv.RenderDebug(&buf)
	} else {
		err = cv.Render(&buf, table)
	}
	if err != nil {
		return err
	}

	if err := store.Set(ctx, key, buf.Bytes(), renderTTL); err != nil {
		logger.Warnf("Cache write failed: %v", err)
	}

	track.done("Rendered graph")
	return writeOutput(opts.output, buf.Bytes(), len(g.Nodes), len(g.Edges), false)
}

// loadGraph turns input bytes into a parsed graph, running Graphviz layout
// for DOT source.
func loadGraph(ctx context.Context, data []byte, format string) (*plain.Graph, error) {
	if format == formatPlain {
		return plain.Parse(bytes.NewReader(data))
	}

	spinner := newSpinnerWithContext(ctx, "Laying out graph...")
	spinner.Start()
	g, err := plain.LayoutAndParse(ctx, data)
	if err != nil {
		spinner.StopWithError("Layout failed")
		return nil, err
	}
	spinner.Stop()
	return g, nil
}

// readInput reads the graph source from a file or stdin ("-").
func readInput(input string) ([]byte, error) {
	if input == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read stdin")
		}
		return data, nil
	}
	data, err := os.ReadFile(input)
	if os.IsNotExist(err) {
		return nil, errors.New(errors.ErrCodeFileNotFound, "no such file: %s", input)
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

// loadFont loads an external font table, or the embedded default when path
// is empty. The returned hash keys the render cache; it is empty for the
// embedded font.
func loadFont(path string) (*glyph.Table, string, error) {
	if path == "" {
		return glyph.Default(), "", nil
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, "", errors.New(errors.ErrCodeFileNotFound, "no such font table: %s", path)
	}
	if err != nil {
		return nil, "", err
	}
	table, err := glyph.Deserialize(strings.TrimSuffix(string(data), "\n"))
	if err != nil {
		return nil, "", err
	}
	return table, cache.Hash(data), nil
}

// writeOutput writes the rendered text to a file or stdout. Status lines are
// only printed when writing to a file, so stdout stays pipeable.
func writeOutput(output string, data []byte, nodes, edges int, cached bool) error {
	if output == "" {
		_, err := os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(output, data, 0644); err != nil {
		return err
	}
	printSuccess("Rendered graph")
	printFile(output)
	printStats(nodes, edges, cached)
	return nil
}
