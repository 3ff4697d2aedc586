package app

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/specialistvlad/scenescript/internal/ctxlog"
	"github.com/specialistvlad/scenescript/internal/export"
	"github.com/specialistvlad/scenescript/internal/model"
	"github.com/specialistvlad/scenescript/internal/scenepath"
	"github.com/specialistvlad/scenescript/internal/script"
	"github.com/specialistvlad/scenescript/internal/watch"
)

// Decode loads the scripts at paths and writes them in the configured format.
// Scripts that fail are still listed in the output with their error.
func (a *App) Decode(ctx context.Context, paths []string) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Decode method started.", "paths", paths)

	results, err := a.load(ctx, paths)
	if err != nil {
		return err
	}

	doc := export.Document{Scripts: make([]export.Script, 0, len(results))}
	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
			a.logger.Error("Script failed to decode.", "path", r.Path, "error", r.Err)
		}
		doc.Scripts = append(doc.Scripts, export.NewScript(r.Path, r.Timeline, r.Err))
	}

	if err := a.writeDocument(doc); err != nil {
		return err
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d scripts failed to decode", failed, len(results))
	}
	a.logger.Debug("App.Decode method finished.")
	return nil
}

// Validate loads the scripts at paths and prints one OK or FAIL line per
// script, followed by the property kinds it skipped.
func (a *App) Validate(ctx context.Context, paths []string) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)

	results, err := a.load(ctx, paths)
	if err != nil {
		return err
	}

	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
		}
		a.report(r.Path, r.Timeline, r.Err)
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d scripts are invalid", failed, len(results))
	}
	return nil
}

// Inspect evaluates file and prints the raw value found at the logical path
// expr, e.g. actors.Bob.properties.Fade.events[1].
func (a *App) Inspect(ctx context.Context, file, expr string) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)

	p, err := scenepath.Parse(expr)
	if err != nil {
		return fmt.Errorf("invalid path: %w", err)
	}
	src, err := os.ReadFile(file)
	if err != nil {
		return err
	}
	root, err := a.loader.Evaluate(ctx, file, src)
	if err != nil {
		return err
	}
	v, err := scenepath.Resolve(root, p)
	if err != nil {
		return fmt.Errorf("%s: %w", file, err)
	}
	fmt.Fprintln(a.outW, v.String())
	return nil
}

// Watch reloads scripts in dirs whenever they change and reports each result
// until ctx is cancelled.
func (a *App) Watch(ctx context.Context, dirs []string) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)

	w, err := watch.New(a.loader, watch.WithExtensions(a.loader.Extensions()...))
	if err != nil {
		return err
	}
	for _, dir := range dirs {
		if err := w.Add(dir); err != nil {
			w.Close()
			return err
		}
	}
	a.logger.Info("Watching for script changes.", "dirs", dirs)

	return w.Run(ctx, func(_ context.Context, ev watch.Event) {
		a.report(ev.Path, ev.Timeline, ev.Err)
	})
}

func (a *App) load(ctx context.Context, paths []string) ([]script.Result, error) {
	results, err := a.loader.LoadAll(ctx, paths, a.config.WorkerCount)
	if err != nil {
		return nil, fmt.Errorf("failed to load scripts: %w", err)
	}
	if len(results) == 0 {
		a.logger.Warn("No scripts found.", "paths", paths)
	}
	return results, nil
}

func (a *App) report(path string, timeline *model.Timeline, err error) {
	if err != nil {
		fmt.Fprintf(a.outW, "FAIL %s: %v\n", path, err)
		return
	}
	fmt.Fprintf(a.outW, "OK   %s (%d actors)\n", path, len(timeline.Actors))
	if kinds := a.skipped.forScript(path); len(kinds) > 0 {
		fmt.Fprintf(a.outW, "     skipped properties: %s\n", strings.Join(kinds, ", "))
	}
}

func (a *App) writeDocument(doc export.Document) (err error) {
	format := export.Format(a.config.Format)
	if a.config.Output == "" {
		return export.Encode(a.outW, doc, format)
	}

	f, err := os.Create(a.config.Output)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	if err := export.Encode(f, doc, format); err != nil {
		return fmt.Errorf("failed to write %s: %w", a.config.Output, err)
	}
	a.logger.Info("Output written.", "path", a.config.Output, "format", format, "scripts", len(doc.Scripts))
	return nil
}
