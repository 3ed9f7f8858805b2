package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rshade/houselist/internal/config"
)

// NewConfigInitCmd creates the config init command for initializing configuration.
func NewConfigInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize configuration file with default values",
		Long: `Creates $HOUSELIST_HOME/config.yaml (default ~/.houselist/config.yaml)
with default values.`,
		Example: `  # Create configuration
  houselist config init

  # Create configuration, overwriting existing
  houselist config init --force`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			dir, err := config.GetConfigDir()
			if err != nil {
				return err
			}
			cfg := config.Default()
			cfg.SetConfigPath(configFilePath(cmd, dir))

			if !force {
				if _, statErr := os.Stat(cfg.ConfigPath()); statErr == nil {
					return errors.New("configuration file already exists, use --force to overwrite")
				} else if !os.IsNotExist(statErr) {
					return fmt.Errorf("cannot access config path %s: %w", cfg.ConfigPath(), statErr)
				}
			}

			if err = cfg.Save(); err != nil {
				return fmt.Errorf("failed to save configuration: %w", err)
			}

			cmd.Printf("Configuration initialized successfully\n")
			cmd.Printf("Configuration file: %s\n", cfg.ConfigPath())
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite existing configuration file")

	return cmd
}
