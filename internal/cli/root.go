package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/rshade/proxygrid/internal/config"
	"github.com/rshade/proxygrid/internal/logging"
)

// isTerminal checks if the given file is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// NewRootCmd creates the root Cobra command for the proxygrid CLI.
// It loads configuration, wires logging and tracing, and registers the
// view, render, plan and config subcommands.
func NewRootCmd(ver string) *cobra.Command {
	var logResult *logging.LogPathResult

	cmd := &cobra.Command{
		Use:     "proxygrid",
		Short:   "Responsive grid viewer for proxy groups",
		Long:    "proxygrid: browse large proxy groups in a virtualized terminal grid",
		Version: ver,
		Example: rootCmdExample,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := loadConfig(cmd); err != nil {
				return err
			}
			result := setupLogging(cmd)
			logResult = &result
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			return cleanupLogging(cmd, logResult)
		},
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging on stderr")
	cmd.PersistentFlags().String("config", "", "config file (default $PROXYGRID_HOME/config.yaml)")
	cmd.AddCommand(NewViewCmd(), NewRenderCmd(), NewPlanCmd(), newConfigCmd())

	return cmd
}

// loadConfig installs the global configuration. An explicit --config file
// must parse; the default file is best-effort.
func loadConfig(cmd *cobra.Command) error {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		config.InitGlobalConfig()
		return nil
	}
	cfg, err := config.Load(path)
	if err != nil {
		return fmt.Errorf("loading config %s: %w", path, err)
	}
	config.SetGlobalConfig(cfg)
	return nil
}

const rootCmdExample = `  # Browse a proxy group interactively
  proxygrid view global.yaml

  # Pick a proxy and print its name
  proxygrid view --pick --now hk-01 nodes.txt

  # Render a group once, e.g. into a pager
  proxygrid render --width 120 global.yaml | less -R

  # Inspect the layout decision for 5000 proxies at 160 columns
  proxygrid plan --items 5000 --width 160 --output json

  # Initialize configuration
  proxygrid config init`

// newConfigCmd creates the config command group.
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "config", Short: "Configuration management commands"}
	cmd.AddCommand(NewConfigInitCmd(), NewConfigValidateCmd())
	return cmd
}
