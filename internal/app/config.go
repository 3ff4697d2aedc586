package app

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/specialistvlad/scenescript/internal/export"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	LogFormat   string
	LogLevel    string
	WorkerCount int // 0 means one per CPU

	Verbose    bool // dump skipped properties
	StrictEval bool

	Format string // export format of decode
	Output string // decode output file, stdout when empty

	// DecimalSeparator is used when numbers arrive as text. Empty means '.'.
	DecimalSeparator string
}

// DefaultConfig returns the configuration used when neither a config file nor
// flags say otherwise.
func DefaultConfig() Config {
	return Config{
		LogFormat: "text",
		LogLevel:  "info",
		Format:    string(export.FormatJSON),
	}
}

// NewConfig normalizes and validates cfg.
func NewConfig(cfg Config) (*Config, error) {
	cfg.LogFormat = strings.ToLower(cfg.LogFormat)
	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return nil, errors.New("invalid log-format: must be 'text' or 'json'")
	}

	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, errors.New("invalid log-level: must be 'debug', 'info', 'warn', or 'error'")
	}

	if cfg.WorkerCount < 0 {
		return nil, fmt.Errorf("invalid workers: %d is negative", cfg.WorkerCount)
	}

	format, err := export.ParseFormat(cfg.Format)
	if err != nil {
		return nil, err
	}
	cfg.Format = string(format)

	if cfg.DecimalSeparator != "" && utf8.RuneCountInString(cfg.DecimalSeparator) != 1 {
		return nil, fmt.Errorf("invalid decimal-separator %q: must be a single character", cfg.DecimalSeparator)
	}

	return &cfg, nil
}

// FileConfig is the YAML config file. Only the keys present in the file
// override the configuration it is applied to.
type FileConfig struct {
	LogFormat        *string `yaml:"log_format"`
	LogLevel         *string `yaml:"log_level"`
	Workers          *int    `yaml:"workers"`
	Verbose          *bool   `yaml:"verbose"`
	StrictEval       *bool   `yaml:"strict_eval"`
	Format           *string `yaml:"format"`
	Output           *string `yaml:"output"`
	DecimalSeparator *string `yaml:"decimal_separator"`
}

// LoadConfigFile reads a YAML config file. Unknown keys are rejected.
func LoadConfigFile(path string) (*FileConfig, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer f.Close()

	var fc FileConfig
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&fc); err != nil {
		if errors.Is(err, io.EOF) {
			return &fc, nil
		}
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return &fc, nil
}

// Apply returns cfg with the values set in the file.
func (fc *FileConfig) Apply(cfg Config) Config {
	set(&cfg.LogFormat, fc.LogFormat)
	set(&cfg.LogLevel, fc.LogLevel)
	set(&cfg.WorkerCount, fc.Workers)
	set(&cfg.Verbose, fc.Verbose)
	set(&cfg.StrictEval, fc.StrictEval)
	set(&cfg.Format, fc.Format)
	set(&cfg.Output, fc.Output)
	set(&cfg.DecimalSeparator, fc.DecimalSeparator)
	return cfg
}

func set[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
