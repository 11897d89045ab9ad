// Package batch parses many saved curl commands concurrently.
package batch

import (
	"context"
	"io"
	"runtime"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/shapestone/shape-curl/pkg/curl"
)

// Options configures an Importer.
type Options struct {
	Workers int         // parallel parses; <= 0 means GOMAXPROCS
	Strict  bool        // see curl.Options.Strict
	Logger  *zap.Logger // nil means no logging
}

// Entry is the outcome for one command. Exactly one of Request and Err is
// set.
type Entry struct {
	ID      uuid.UUID           `json:"id" yaml:"id"`
	Line    int                 `json:"line" yaml:"line"`
	Request *curl.ParsedRequest `json:"request,omitempty" yaml:"request,omitempty"`
	Error   string              `json:"error,omitempty" yaml:"error,omitempty"`
	Err     error               `json:"-" yaml:"-"`
}

// Importer parses batches of commands. It holds no per-batch state and may
// be shared.
type Importer struct {
	workers int
	opts    curl.Options
	logger  *zap.Logger
}

// NewImporter creates an Importer.
func NewImporter(opts Options) *Importer {
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Importer{
		workers: workers,
		opts:    curl.Options{Strict: opts.Strict},
		logger:  logger,
	}
}

// Import parses cmds with up to Workers goroutines. Entries come back in
// input order. A command that fails to parse is recorded in its Entry and
// does not stop the batch; only context cancellation does.
func (im *Importer) Import(ctx context.Context, cmds []Command) ([]Entry, error) {
	entries := make([]Entry, len(cmds))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(im.workers)

	for i, cmd := range cmds {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			entries[i] = im.parse(cmd)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	ok, failed := Summarize(entries)
	im.logger.Info("import finished",
		zap.Int("commands", len(cmds)),
		zap.Int("parsed", ok),
		zap.Int("failed", failed))
	return entries, nil
}

// ImportReader splits r into commands and imports them.
func (im *Importer) ImportReader(ctx context.Context, r io.Reader) ([]Entry, error) {
	cmds, err := SplitCommands(r)
	if err != nil {
		return nil, err
	}
	return im.Import(ctx, cmds)
}

func (im *Importer) parse(cmd Command) Entry {
	entry := Entry{ID: uuid.New(), Line: cmd.Line}

	req, err := curl.ParseWithOptions(cmd.Text, im.opts)
	if err != nil {
		entry.Err = err
		entry.Error = err.Error()
		im.logger.Warn("command rejected", zap.Int("line", cmd.Line), zap.Error(err))
		return entry
	}

	entry.Request = req
	im.logger.Debug("command parsed",
		zap.Int("line", cmd.Line),
		zap.String("name", req.SuggestedName),
		zap.Strings("warnings", req.Warnings))
	return entry
}

// Summarize counts parsed and failed entries.
func Summarize(entries []Entry) (parsed, failed int) {
	for _, e := range entries {
		if e.Err != nil || e.Error != "" {
			failed++
		} else if e.Request != nil {
			parsed++
		}
	}
	return parsed, failed
}
