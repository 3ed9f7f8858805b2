package cli

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/rshade/houselist/internal/config"
	"github.com/rshade/houselist/internal/logging"
)

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// NewRootCmd creates the root Cobra command for the houselist CLI.
// It loads configuration, wires up logging and registers the subcommands.
func NewRootCmd(ver string) *cobra.Command {
	var logResult *logging.LogPathResult

	cmd := &cobra.Command{
		Use:           "houselist",
		Short:         "Browse houses currently on the market",
		Long:          "houselist shows real-estate listings in a table and appends a house with the Add House action.",
		Version:       ver,
		Example:       rootCmdExample,
		SilenceUsage:  true,
		SilenceErrors: true,
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

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().String("config", "", "path to a config file (default $HOUSELIST_HOME/config.yaml)")
	cmd.PersistentFlags().String("currency", "", "ISO 4217 currency code used to format prices (overrides config)")

	cmd.AddCommand(NewListCmd(), NewBrowseCmd(), newSeedCmd(), newConfigCmd())
	return cmd
}

const rootCmdExample = `  # Show the built-in houses
  houselist list

  # Show houses from a seed file after pressing Add House twice
  houselist list --seed houses.yaml --add 2

  # Print the houses as JSON
  houselist list --output json

  # Browse houses interactively (press 'a' to add a house)
  houselist browse --seed houses.yaml

  # Write the default seed file
  houselist seed init

  # Initialize configuration
  houselist config init`

// loadConfig replaces the global config when --config is given and applies
// CLI flag overrides.
func loadConfig(cmd *cobra.Command) error {
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		cfg, err := config.NewWithPath(path)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		if err = config.LoadDotEnv(""); err != nil {
			return err
		}
		cfg.ApplyEnvOverrides(lookupEnv)
		config.SetGlobalConfig(cfg)
	}

	cfg := config.GetGlobalConfig()
	if cmd.Flags().Changed("currency") {
		cfg.Display.Currency, _ = cmd.Flags().GetString("currency")
	}
	return nil
}

// newSeedCmd creates the seed command group.
func newSeedCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "seed", Short: "Seed file commands"}
	cmd.AddCommand(NewSeedInitCmd())
	return cmd
}

// newConfigCmd creates the config command group with configuration subcommands.
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "config", Short: "Configuration management commands"}
	cmd.AddCommand(
		NewConfigInitCmd(), NewConfigSetCmd(), NewConfigGetCmd(), NewConfigListCmd(),
		NewConfigValidateCmd(),
	)
	return cmd
}
