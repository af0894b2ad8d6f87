package cli

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"runtime"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/dotplain/dotplain/pkg/cache"
	"github.com/dotplain/dotplain/pkg/errors"
	"github.com/dotplain/dotplain/pkg/glyph"
)

// fontgenOpts holds the command-line flags for the fontgen command.
type fontgenOpts struct {
	output  string // output file path
	workers int    // number of generation workers
	plain   bool   // log progress lines instead of the interactive bar
	noCache bool   // bypass the table cache
}

// fontgenCommand creates the fontgen command for regenerating the font table.
// The similarity metric is slow, which is why the table is generated offline
// and shipped as an artifact rather than computed at render time.
func (c *CLI) fontgenCommand() *cobra.Command {
	opts := fontgenOpts{
		workers: runtime.NumCPU(),
	}

	cmd := &cobra.Command{
		Use:   "fontgen",
		Short: "Generate the bitmap-to-character font table",
		Long: `Fontgen builds the lookup table that maps every possible 3x5 pixel bitmap
to its best-matching character. One character per bitmap, 32768 in total.

The table shipped with dotplain was produced by this command; rerun it after
changing the reference character set.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runFontgen(cmd.Context(), &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "font.txt", "output file for the serialized table")
	cmd.Flags().IntVar(&opts.workers, "workers", opts.workers, "number of generation workers")
	cmd.Flags().BoolVar(&opts.plain, "plain", false, "log progress lines instead of the interactive bar")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "bypass the table cache")

	return cmd
}

// runFontgen generates the font table and writes it to the output file.
func (c *CLI) runFontgen(ctx context.Context, opts *fontgenOpts) error {
	logger := loggerFromContext(ctx)
	track := newProgress(logger)
	refs := glyph.DefaultCharset

	store, err := newCache(opts.noCache)
	if err != nil {
		return err
	}
	defer store.Close()

	key := cache.TableKey(cache.Hash(charsetFingerprint(refs)))
	if data, hit, err := store.Get(ctx, key); err == nil && hit {
		logger.Debug("Table cache hit")
		if err := os.WriteFile(opts.output, data, 0644); err != nil {
			return err
		}
		printSuccess("Font table written (cached)")
		printFile(opts.output)
		return nil
	}

	workers := opts.workers
	if workers < 1 {
		workers = 1
	}
	logger.Debugf("Generating %d patterns with %d workers", glyph.TableSize, workers)

	var table *glyph.Table
	if opts.plain {
		table = generateLogged(logger.Infof, refs, workers)
	} else {
		table, err = generateInteractive(ctx, refs, workers)
		if err != nil {
			return err
		}
	}

	serialized := []byte(table.Serialize())
	if err := os.WriteFile(opts.output, serialized, 0644); err != nil {
		return err
	}
	if err := store.Set(ctx, key, serialized, 0); err != nil {
		printWarning("Cache write failed: %v", err)
	}

	track.done(fmt.Sprintf("Generated %d patterns", glyph.TableSize))
	printSuccess("Font table written")
	printFile(opts.output)
	return nil
}

// generateLogged runs generation with periodic progress log lines.
// Progress callbacks arrive from multiple workers, hence the lock.
func generateLogged(logf func(string, ...any), refs []glyph.Reference, workers int) *glyph.Table {
	var mu sync.Mutex
	lastDecile := -1
	return glyph.GenerateConcurrent(refs, workers, func(v float64) {
		decile := int(v * 10)
		mu.Lock()
		defer mu.Unlock()
		if decile > lastDecile {
			lastDecile = decile
			logf("Generating... %d%%", decile*10)
		}
	})
}

// generateInteractive runs generation behind a full-screen-free progress bar.
func generateInteractive(ctx context.Context, refs []glyph.Reference, workers int) (*glyph.Table, error) {
	p := tea.NewProgram(newFontgenModel(), tea.WithContext(ctx), tea.WithOutput(os.Stderr))

	go func() {
		table := glyph.GenerateConcurrent(refs, workers, func(v float64) {
			p.Send(progressMsg(v))
		})
		p.Send(generatedMsg{table: table})
	}()

	final, err := p.Run()
	if err != nil {
		return nil, err
	}
	m, ok := final.(fontgenModel)
	if !ok || m.table == nil {
		return nil, errors.New(errors.ErrCodeInternal, "font generation cancelled")
	}
	return m.table, nil
}

// charsetFingerprint produces a stable byte encoding of the reference set
// for cache keying.
func charsetFingerprint(refs []glyph.Reference) []byte {
	var b bytes.Buffer
	for _, r := range refs {
		fmt.Fprintf(&b, "%c:%04x\n", r.Char, uint16(r.Cell))
	}
	return b.Bytes()
}
