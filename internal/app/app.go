package app

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"github.com/specialistvlad/scenescript/internal/decoder"
	"github.com/specialistvlad/scenescript/internal/hclscript"
	"github.com/specialistvlad/scenescript/internal/luascript"
	"github.com/specialistvlad/scenescript/internal/script"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW    io.Writer
	logger  *slog.Logger
	config  *Config
	loader  *script.Loader
	skipped *skipLog
}

// NewApp is the constructor for the main application. Command output goes to
// outW; logs and diagnostic dumps go to logW.
func NewApp(outW, logW io.Writer, cfg *Config) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	logger.Debug("Logger configured successfully.")

	skipped := &skipLog{}
	decOpts := []decoder.Option{decoder.WithSkipHandler(skipped.record)}
	if cfg.Verbose {
		decOpts = append(decOpts, decoder.WithDiagnostics(logW))
	}
	if cfg.DecimalSeparator != "" {
		sep := []rune(cfg.DecimalSeparator)[0]
		decOpts = append(decOpts, decoder.WithNumberFormat(decoder.NumberFormat{DecimalSeparator: sep}))
	}

	loadOpts := []script.Option{
		script.WithEvaluator(".lua", luascript.New()),
		script.WithEvaluator(".hcl", hclscript.New()),
	}
	if cfg.StrictEval {
		loadOpts = append(loadOpts, script.WithStrictEvaluation())
	}
	loader := script.NewLoader(decoder.New(decOpts...), loadOpts...)
	logger.Debug("Script loader configured.", "extensions", loader.Extensions(), "strict", cfg.StrictEval)

	return &App{
		outW:    outW,
		logger:  logger,
		config:  cfg,
		loader:  loader,
		skipped: skipped,
	}
}

// Loader returns the application's script loader. This is primarily for testing.
func (a *App) Loader() *script.Loader {
	return a.loader
}

// skipLog remembers which property kinds each script skipped.
type skipLog struct {
	mu    sync.Mutex
	kinds map[string][]string
}

func (s *skipLog) record(ctx context.Context, e *decoder.UnhandledPropertyError) {
	name := script.NameFromContext(ctx)
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.kinds == nil {
		s.kinds = make(map[string][]string)
	}
	for _, kind := range s.kinds[name] {
		if kind == e.Name {
			return
		}
	}
	s.kinds[name] = append(s.kinds[name], e.Name)
}

// forScript returns the kinds skipped while loading name, in the order they
// were first seen.
func (s *skipLog) forScript(name string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.kinds[name]...)
}
