package cli

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/specialistvlad/scenescript/internal/app"
	"github.com/specialistvlad/scenescript/internal/export"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

func usageError(err error) error {
	return &ExitError{Code: 2, Message: err.Error()}
}

// options holds the values of the global flags.
type options struct {
	configFile       string
	logLevel         string
	logFormat        string
	workers          int
	verbose          bool
	strictEval       bool
	decimalSeparator string
	format           string
	output           string

	outW io.Writer
	errW io.Writer
}

// Execute parses args and runs the selected command. Usage problems are
// returned as an ExitError with code 2, command failures with code 1.
func Execute(ctx context.Context, args []string, outW, errW io.Writer) error {
	slog.Debug("CLI parser started.")
	root := NewRootCommand(outW, errW)
	root.SetArgs(args)

	err := root.ExecuteContext(ctx)
	if err == nil {
		return nil
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr
	}
	return usageError(err)
}

// NewRootCommand builds the scenescript command tree.
func NewRootCommand(outW, errW io.Writer) *cobra.Command {
	return newRootCommand(&options{outW: outW, errW: errW})
}

func newRootCommand(o *options) *cobra.Command {
	root := &cobra.Command{
		Use:   "scenescript",
		Short: "Decode scene scripts into typed timelines",
		Long: `scenescript evaluates scene scripts (.lua or .hcl) and decodes the actor
tables they describe into a timeline of typed property events.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(o.outW)
	root.SetErr(o.errW)
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError(err)
	})

	flags := root.PersistentFlags()
	flags.StringVar(&o.configFile, "config", "", "Path to a YAML config file.")
	flags.StringVar(&o.logLevel, "log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	flags.StringVar(&o.logFormat, "log-format", "text", "Log output format. Options: 'text' or 'json'.")
	flags.IntVar(&o.workers, "workers", 0, "Number of scripts decoded concurrently. 0 uses one per CPU.")
	flags.BoolVarP(&o.verbose, "verbose", "v", false, "Dump the events of properties that are skipped.")
	flags.BoolVar(&o.strictEval, "strict-eval", false, "Fail scripts that cannot be evaluated instead of loading them empty.")
	flags.StringVar(&o.decimalSeparator, "decimal-separator", "", "Decimal separator of numbers written as text. Defaults to '.'.")

	root.AddCommand(
		newDecodeCommand(o),
		newValidateCommand(o),
		newInspectCommand(o),
		newWatchCommand(o),
	)
	return root
}

func newDecodeCommand(o *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decode PATH...",
		Short: "Decode scripts and print their timelines",
		Args:  usageArgs(cobra.MinimumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := o.newApp(cmd)
			if err != nil {
				return err
			}
			return failure(a.Decode(cmd.Context(), args))
		},
	}
	cmd.Flags().StringVarP(&o.format, "format", "f", string(export.FormatJSON), "Output format. Options: 'json', 'yaml', 'cbor', 'summary'.")
	cmd.Flags().StringVarP(&o.output, "output", "o", "", "Write the output to a file instead of stdout.")
	return cmd
}

func newValidateCommand(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "validate PATH...",
		Short: "Check that scripts decode and list skipped properties",
		Args:  usageArgs(cobra.MinimumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := o.newApp(cmd)
			if err != nil {
				return err
			}
			return failure(a.Validate(cmd.Context(), args))
		},
	}
}

func newInspectCommand(o *options) *cobra.Command {
	return &cobra.Command{
		Use:     "inspect FILE PATH",
		Short:   "Print the raw value at a logical path of a script",
		Example: "  scenescript inspect scene.lua 'actors.Bob.properties.Fade.events[1]'",
		Args:    usageArgs(cobra.ExactArgs(2)),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := o.newApp(cmd)
			if err != nil {
				return err
			}
			return failure(a.Inspect(cmd.Context(), args[0], args[1]))
		},
	}
}

func newWatchCommand(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "watch DIR...",
		Short: "Re-validate scripts whenever they change",
		Args:  usageArgs(cobra.MinimumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := o.newApp(cmd)
			if err != nil {
				return err
			}
			return failure(a.Watch(cmd.Context(), args))
		},
	}
}

// newApp merges defaults, the config file and the flags set on the command
// line, in that order, and builds the App.
func (o *options) newApp(cmd *cobra.Command) (*app.App, error) {
	cfg, err := o.config(cmd)
	if err != nil {
		return nil, err
	}
	return app.NewApp(o.outW, o.errW, cfg), nil
}

func (o *options) config(cmd *cobra.Command) (*app.Config, error) {
	cfg := app.DefaultConfig()
	if o.configFile != "" {
		fc, err := app.LoadConfigFile(o.configFile)
		if err != nil {
			return nil, usageError(err)
		}
		cfg = fc.Apply(cfg)
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.LogLevel = o.logLevel
	}
	if flags.Changed("log-format") {
		cfg.LogFormat = o.logFormat
	}
	if flags.Changed("workers") {
		cfg.WorkerCount = o.workers
	}
	if flags.Changed("verbose") {
		cfg.Verbose = o.verbose
	}
	if flags.Changed("strict-eval") {
		cfg.StrictEval = o.strictEval
	}
	if flags.Changed("decimal-separator") {
		cfg.DecimalSeparator = o.decimalSeparator
	}
	if flags.Changed("format") {
		cfg.Format = o.format
	}
	if flags.Changed("output") {
		cfg.Output = o.output
	}

	config, err := app.NewConfig(cfg)
	if err != nil {
		return nil, usageError(err)
	}
	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, nil
}

func usageArgs(check cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := check(cmd, args); err != nil {
			return usageError(err)
		}
		return nil
	}
}

func failure(err error) error {
	if err == nil {
		return nil
	}
	return &ExitError{Code: 1, Message: err.Error()}
}
