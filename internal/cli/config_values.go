package cli

import (
	"fmt"
	"path/filepath"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/rshade/houselist/internal/config"
)

// configFilePath returns the --config path when given, otherwise dir/config.yaml.
func configFilePath(cmd *cobra.Command, dir string) string {
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		return path
	}
	return filepath.Join(dir, "config.yaml")
}

// NewConfigGetCmd creates the config get command.
func NewConfigGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "get <key>",
		Short:   "Print the effective value of a configuration key",
		Example: `  houselist config get display.currency`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := config.GetGlobalConfig().Get(args[0])
			if err != nil {
				return err
			}
			cmd.Println(value)
			return nil
		},
	}
}

// NewConfigSetCmd creates the config set command, which updates the config file.
func NewConfigSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration value in the config file",
		Example: `  houselist config set display.currency EUR
  houselist config set seed.file ~/houses.yaml`,
		Args: cobra.ExactArgs(2), //nolint:mnd // key and value
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := config.GetConfigDir()
			if err != nil {
				return err
			}

			cfg, err := config.NewWithPath(configFilePath(cmd, dir))
			if err != nil {
				return err
			}
			if err = cfg.Set(args[0], args[1]); err != nil {
				return err
			}
			if err = cfg.Validate(); err != nil {
				return fmt.Errorf("invalid value for %s: %w", args[0], err)
			}
			if err = cfg.Save(); err != nil {
				return fmt.Errorf("failed to save configuration: %w", err)
			}

			cmd.Printf("Set %s = %s\n", args[0], args[1])
			return nil
		},
	}
}

// NewConfigListCmd creates the config list command.
func NewConfigListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all effective configuration values",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.GetGlobalConfig()

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0) //nolint:mnd // tabwriter layout
			for _, key := range cfg.Keys() {
				value, _ := cfg.Get(key)
				fmt.Fprintf(tw, "%s\t%s\n", key, value)
			}
			return tw.Flush()
		},
	}
}
