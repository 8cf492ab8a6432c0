package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/rshade/proxygrid/internal/config"
)

// NewConfigInitCmd creates the config init command for initializing configuration.
// It writes the default configuration to $PROXYGRID_HOME/config.yaml and a
// .gitignore that keeps logs out of version control.
func NewConfigInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize configuration file with default values",
		Long: `Creates a new configuration file with default values at
$PROXYGRID_HOME/config.yaml (default ~/.proxygrid/config.yaml), together with a
.gitignore for the logs directory.

The file may be trimmed to the settings you want to change: any key left out,
including single fields inside a section, keeps its default value.`,
		Example: `  # Create configuration
  proxygrid config init

  # Create configuration, overwriting existing
  proxygrid config init --force`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return initConfig(cmd, force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite existing configuration file")

	return cmd
}

func initConfig(cmd *cobra.Command, force bool) error {
	configPath, err := config.ConfigFilePath()
	if err != nil {
		return err
	}

	// Check if config already exists and force isn't set
	if !force {
		_, statErr := os.Stat(configPath)
		if statErr == nil {
			return errors.New("configuration file already exists, use --force to overwrite")
		}
		if !os.IsNotExist(statErr) {
			return fmt.Errorf("cannot access config path %s: %w", configPath, statErr)
		}
	}

	if err = config.EnsureConfigDir(); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err = config.Default().Save(configPath); err != nil {
		return fmt.Errorf("failed to save configuration: %w", err)
	}

	// Create .gitignore (never overwrites existing)
	created, err := config.EnsureGitignore(filepath.Dir(configPath), config.GetLoggingConfig().File)
	if err != nil {
		return fmt.Errorf("failed to create .gitignore: %w", err)
	}

	cmd.Printf("Configuration initialized at %s\n", configPath)
	if created {
		cmd.Printf("Created .gitignore to keep logs out of version control\n")
	}

	return nil
}
