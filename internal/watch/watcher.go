// Package watch reloads scene scripts as they change on disk.
package watch

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/specialistvlad/scenescript/internal/ctxlog"
	"github.com/specialistvlad/scenescript/internal/fsutil"
	"github.com/specialistvlad/scenescript/internal/model"
)

// DefaultDebounce is how long a file must stay quiet before it is reloaded.
const DefaultDebounce = 200 * time.Millisecond

// Loader loads a single script file.
type Loader interface {
	LoadFile(ctx context.Context, path string) (*model.Timeline, error)
}

// Event is the outcome of reloading one file.
type Event struct {
	Path     string
	Timeline *model.Timeline
	Err      error
}

// Handler receives every reload outcome. It is called from the Run goroutine.
type Handler func(ctx context.Context, ev Event)

// Watcher reloads scripts in watched directories when they are written or
// created.
type Watcher struct {
	loader     Loader
	notify     *fsnotify.Watcher
	debounce   time.Duration
	extensions []string
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithDebounce sets the quiet period before a changed file is reloaded.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) {
		w.debounce = d
	}
}

// WithExtensions limits reloading to files with one of the given extensions.
// Without it every file is reloaded.
func WithExtensions(exts ...string) Option {
	return func(w *Watcher) {
		w.extensions = exts
	}
}

// New creates a Watcher. Close releases it; Run closes it on return.
func New(loader Loader, opts ...Option) (*Watcher, error) {
	notify, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}
	w := &Watcher{loader: loader, notify: notify, debounce: DefaultDebounce}
	for _, opt := range opts {
		opt(w)
	}
	return w, nil
}

// Add starts watching dir. Subdirectories are not watched.
func (w *Watcher) Add(dir string) error {
	if err := w.notify.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}
	return nil
}

// Close stops watching.
func (w *Watcher) Close() error {
	return w.notify.Close()
}

// Run reloads changed files and reports them to handle until ctx is done.
func (w *Watcher) Run(ctx context.Context, handle Handler) error {
	logger := ctxlog.FromContext(ctx)
	defer w.Close()

	timers := make(map[string]*time.Timer)
	defer func() {
		for _, t := range timers {
			t.Stop()
		}
	}()
	ready := make(chan string)

	logger.Debug("Watcher started.", "dirs", w.notify.WatchList())
	for {
		select {
		case <-ctx.Done():
			logger.Debug("Watcher stopped.")
			return nil

		case ev, ok := <-w.notify.Events:
			if !ok {
				return nil
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			if len(w.extensions) > 0 && !fsutil.HasExtension(ev.Name, w.extensions...) {
				continue
			}
			path := filepath.Clean(ev.Name)
			if t, ok := timers[path]; ok {
				t.Reset(w.debounce)
				continue
			}
			timers[path] = time.AfterFunc(w.debounce, func() {
				select {
				case ready <- path:
				case <-ctx.Done():
				}
			})

		case path := <-ready:
			delete(timers, path)
			logger.Debug("Reloading script.", "path", path)
			timeline, err := w.loader.LoadFile(ctx, path)
			handle(ctx, Event{Path: path, Timeline: timeline, Err: err})

		case err, ok := <-w.notify.Errors:
			if !ok {
				return nil
			}
			if errors.Is(err, fsnotify.ErrEventOverflow) {
				logger.Warn("File events were dropped.", "error", err)
				continue
			}
			return fmt.Errorf("file watcher failed: %w", err)
		}
	}
}
