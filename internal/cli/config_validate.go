package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rshade/proxygrid/internal/config"
	"github.com/rshade/proxygrid/internal/layout"
)

// NewConfigValidateCmd creates the config validate command for validating configuration.
func NewConfigValidateCmd() *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate configuration file",
		Long: `Validates the active configuration (--config or $PROXYGRID_HOME/config.yaml).

This includes:
- Grid presets: positive cell sizes, non-negative threshold and viewport
- Overscan is not negative
- Output variant is detail or summary
- Logging format is json or console`,
		Example: `  # Validate current configuration
  proxygrid config validate

  # Validate and show detailed information
  proxygrid config validate --verbose`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigValidate(cmd, verbose)
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "show detailed validation information")

	return cmd
}

// runConfigValidate executes the configuration validation logic.
// Without --config the default file is loaded again here, because the
// global config silently falls back to defaults when it does not parse.
func runConfigValidate(cmd *cobra.Command, verbose bool) error {
	cfg := config.GetGlobalConfig()
	if path, _ := cmd.Flags().GetString("config"); path == "" {
		loaded, err := loadDefaultConfigFile(cfg)
		if err != nil {
			return fmt.Errorf("configuration validation failed: %w", err)
		}
		cfg = loaded
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	cmd.Printf("✅ Configuration is valid\n")

	if verbose {
		printVerboseDetails(cmd, cfg)
	}

	return nil
}

// loadDefaultConfigFile parses $PROXYGRID_HOME/config.yaml, returning
// fallback when the file does not exist.
func loadDefaultConfigFile(fallback *config.Config) (*config.Config, error) {
	path, err := config.ConfigFilePath()
	if err != nil {
		return nil, err
	}
	if _, statErr := os.Stat(path); statErr != nil {
		return fallback, nil
	}
	return config.Load(path)
}

// printVerboseDetails prints detailed configuration information.
func printVerboseDetails(cmd *cobra.Command, cfg *config.Config) {
	cmd.Println()
	cmd.Println("Configuration details:")
	printSizing(cmd, "Detail", cfg.Grid.Detail)
	printSizing(cmd, "Summary", cfg.Grid.Summary)
	cmd.Printf("  Overscan rows: %d\n", cfg.Grid.Overscan)
	cmd.Printf("  Variant: %s\n", cfg.Output.Variant)
	cmd.Printf("  Selectable: %t\n", cfg.Output.Selectable)
	cmd.Printf("  Logging level: %s\n", cfg.Logging.Level)
	cmd.Printf("  Log file: %s\n", cfg.Logging.File)
}

func printSizing(cmd *cobra.Command, name string, s layout.Sizing) {
	cmd.Printf("  %s cell: %dx%d, virtualize above %d, viewport up to %d\n",
		name, s.ColumnWidth, s.RowHeight, s.VirtualizeThreshold, s.MaxViewportHeight)
}
