package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/rshade/proxygrid/internal/layout"
)

// Environment variables read by New.
const (
	EnvHome      = "PROXYGRID_HOME"
	EnvLogLevel  = "PROXYGRID_LOG_LEVEL"
	EnvLogFormat = "PROXYGRID_LOG_FORMAT"
	EnvVariant   = "PROXYGRID_VARIANT"
)

const configFileName = "config.yaml"

// Variant names accepted in OutputConfig.Variant.
const (
	VariantDetail  = "detail"
	VariantSummary = "summary"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config is the on-disk configuration of proxygrid.
type Config struct {
	Grid    GridConfig    `yaml:"grid"`
	Logging LoggingConfig `yaml:"logging"`
	Output  OutputConfig  `yaml:"output"`
}

// GridConfig holds the sizing presets of both list variants.
type GridConfig struct {
	Detail   layout.Sizing `yaml:"detail"`
	Summary  layout.Sizing `yaml:"summary"`
	Overscan int           `yaml:"overscan"`
}

// LoggingConfig controls log level, format and destination.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file"`
}

// OutputConfig controls how lists are presented.
type OutputConfig struct {
	Variant    string `yaml:"variant"`
	Selectable bool   `yaml:"selectable"`
	ShowHelp   bool   `yaml:"show_help"`
}

// Default returns the built-in configuration.
func Default() *Config {
	logFile := ""
	if dir, err := GetConfigDir(); err == nil {
		logFile = filepath.Join(dir, "logs", "proxygrid.log")
	}
	return &Config{
		Grid: GridConfig{
			Detail:   layout.DetailTerminal,
			Summary:  layout.SummaryTerminal,
			Overscan: 1,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			File:   logFile,
		},
		Output: OutputConfig{
			Variant:    VariantDetail,
			Selectable: true,
			ShowHelp:   true,
		},
	}
}

// New loads the configuration: defaults, then the user config file if it
// exists, then environment overrides. A broken config file is ignored so the
// CLI keeps working; "proxygrid config validate" reports it.
func New() *Config {
	cfg := Default()
	if path, err := ConfigFilePath(); err == nil {
		if _, statErr := os.Stat(path); statErr == nil {
			merged := Default()
			if mergeErr := ShallowMergeYAML(merged, path); mergeErr == nil {
				cfg = merged
			}
		}
	}
	cfg.applyEnv()
	return cfg
}

// Load reads defaults merged with the file at path. Unlike New it returns
// parse errors.
func Load(path string) (*Config, error) {
	cfg := Default()
	if err := ShallowMergeYAML(cfg, path); err != nil {
		return nil, err
	}
	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		c.Logging.Format = v
	}
	if v := os.Getenv(EnvVariant); v != "" {
		c.Output.Variant = strings.ToLower(v)
	}
}

// Sizing returns the preset for a variant name, defaulting to detail.
func (c *Config) Sizing(variant string) layout.Sizing {
	if strings.EqualFold(variant, VariantSummary) {
		return c.Grid.Summary
	}
	return c.Grid.Detail
}

// Validate checks presets and enumerations.
func (c *Config) Validate() error {
	var errs []error
	if err := c.Grid.Detail.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("grid.detail: %w", err))
	}
	if err := c.Grid.Summary.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("grid.summary: %w", err))
	}
	if c.Grid.Overscan < 0 {
		errs = append(errs, fmt.Errorf("grid.overscan must be >= 0, got %d", c.Grid.Overscan))
	}
	switch strings.ToLower(c.Output.Variant) {
	case VariantDetail, VariantSummary:
	default:
		errs = append(errs, fmt.Errorf("output.variant must be %q or %q, got %q",
			VariantDetail, VariantSummary, c.Output.Variant))
	}
	switch strings.ToLower(c.Logging.Format) {
	case "", "json", "console":
	default:
		errs = append(errs, fmt.Errorf("logging.format must be json or console, got %q", c.Logging.Format))
	}
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
}

// Save writes the configuration as YAML, creating parent directories.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err = os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing config %s: %w", path, err)
	}
	return nil
}

// ConfigFilePath returns $PROXYGRID_HOME/config.yaml.
func ConfigFilePath() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFileName), nil
}
