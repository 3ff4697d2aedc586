// Package script loads scene scripts from source text or files into decoded
// timelines.
package script

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/specialistvlad/scenescript/internal/ctxlog"
	"github.com/specialistvlad/scenescript/internal/decoder"
	"github.com/specialistvlad/scenescript/internal/fsutil"
	"github.com/specialistvlad/scenescript/internal/model"
	"github.com/specialistvlad/scenescript/internal/value"
)

// DefaultExtension selects the evaluator for names without an extension.
const DefaultExtension = ".lua"

// ErrUnsupportedScript is returned for names no evaluator is registered for.
var ErrUnsupportedScript = errors.New("unsupported script type")

// Loader evaluates scripts with the evaluator registered for their extension
// and decodes the result.
type Loader struct {
	decoder    *decoder.Decoder
	evaluators map[string]Evaluator
	strict     bool
}

// Option configures a Loader.
type Option func(*Loader)

// WithEvaluator registers e for file names ending in ext, e.g. ".lua".
func WithEvaluator(ext string, e Evaluator) Option {
	return func(l *Loader) {
		l.evaluators[strings.ToLower(ext)] = e
	}
}

// WithStrictEvaluation makes evaluation failures errors. By default a script
// that fails to evaluate is logged and loads as an empty timeline.
func WithStrictEvaluation() Option {
	return func(l *Loader) {
		l.strict = true
	}
}

// NewLoader creates a Loader that decodes with dec.
func NewLoader(dec *decoder.Decoder, opts ...Option) *Loader {
	l := &Loader{decoder: dec, evaluators: make(map[string]Evaluator)}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Extensions returns the registered extensions in lexical order.
func (l *Loader) Extensions() []string {
	exts := make([]string, 0, len(l.evaluators))
	for ext := range l.evaluators {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}

// Evaluate runs the script without decoding it.
func (l *Loader) Evaluate(ctx context.Context, name string, src []byte) (value.Value, error) {
	ext := strings.ToLower(filepath.Ext(name))
	if ext == "" {
		ext = DefaultExtension
	}
	ev, ok := l.evaluators[ext]
	if !ok {
		return value.Nil, fmt.Errorf("%s: %w %q", name, ErrUnsupportedScript, ext)
	}
	return ev.Evaluate(ctx, name, src)
}

// Load evaluates and decodes one script.
func (l *Loader) Load(ctx context.Context, name string, src []byte) (*model.Timeline, error) {
	ctx = ctxlog.With(ctx, "script", name)
	logger := ctxlog.FromContext(ctx)

	root, err := l.Evaluate(ctx, name, src)
	if err != nil {
		if !l.strict && errors.Is(err, ErrEvaluation) && ctx.Err() == nil {
			logger.Warn("Script evaluation failed, loading an empty timeline.", "error", err)
			return model.NewTimeline(), nil
		}
		return nil, err
	}

	timeline, err := l.decoder.Decode(WithName(ctx, name), root)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	logger.Debug("Script loaded.", "actors", len(timeline.Actors))
	return timeline, nil
}

// LoadFile reads and loads the script at path.
func (l *Loader) LoadFile(ctx context.Context, path string) (*model.Timeline, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return l.Load(ctx, path, src)
}

// Result is the outcome of loading one file in a batch.
type Result struct {
	Path     string
	Timeline *model.Timeline
	Err      error
}

// LoadAll loads every script named by paths, searching directories for the
// registered extensions. At most workers files are loaded at once; zero means
// one per CPU. Results follow the order files were found in, and a failing
// script never stops the others. The returned error only reports problems
// finding the files or a cancelled context.
func (l *Loader) LoadAll(ctx context.Context, paths []string, workers int) ([]Result, error) {
	logger := ctxlog.FromContext(ctx)

	exts := l.Extensions()
	if len(exts) == 0 {
		return nil, fmt.Errorf("%w: no evaluators registered", ErrUnsupportedScript)
	}
	files, err := fsutil.FindFilesByExtension(paths, exts...)
	if err != nil {
		return nil, err
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	logger.Debug("Loading scripts.", "files", len(files), "workers", workers)

	results := make([]Result, len(files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, file := range files {
		g.Go(func() error {
			timeline, err := l.LoadFile(gctx, file)
			results[i] = Result{Path: file, Timeline: timeline, Err: err}
			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return results, err
	}
	return results, nil
}
