package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/houselist/internal/config"
	"github.com/rshade/houselist/internal/listing"
)

// NewConfigValidateCmd creates the config validate command for validating configuration.
func NewConfigValidateCmd() *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate configuration and seed file",
		Long: `Validates the effective configuration.

This includes:
- Output format and currency code checks
- Parsing the configured seed file (if set)`,
		Example: `  # Validate current configuration
  houselist config validate

  # Validate and show detailed information
  houselist config validate --verbose`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigValidate(cmd, verbose)
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "show detailed validation information")

	return cmd
}

func runConfigValidate(cmd *cobra.Command, verbose bool) error {
	cfg := config.GetGlobalConfig()

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}
	if _, err := newFormatter(cfg); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	seeded := -1
	if cfg.Seed.File != "" {
		records, err := listing.LoadSeed(cfg.Seed.File)
		if err != nil {
			return fmt.Errorf("seed file validation failed: %w", err)
		}
		seeded = len(records)
	}

	cmd.Printf("Configuration is valid\n")

	if verbose {
		printVerboseDetails(cmd, cfg, seeded)
	}
	return nil
}

// printVerboseDetails prints the settings that shape the listing. seeded is -1
// when the built-in houses are used.
func printVerboseDetails(cmd *cobra.Command, cfg *config.Config, seeded int) {
	cmd.Println()
	cmd.Println("Configuration details:")
	cmd.Printf("  Config file: %s\n", cfg.ConfigPath())
	cmd.Printf("  Output format: %s\n", cfg.Output.DefaultFormat)
	cmd.Printf("  Currency: %s (%s)\n", cfg.Display.Currency, cfg.Display.Locale)
	cmd.Printf("  Logging level: %s\n", cfg.Logging.Level)
	if cfg.Logging.File != "" {
		cmd.Printf("  Log file: %s\n", cfg.Logging.File)
	}

	if seeded < 0 {
		cmd.Println("  Seed: built-in houses")
		return
	}
	cmd.Printf("  Seed: %s (%d houses)\n", cfg.Seed.File, seeded)
}
