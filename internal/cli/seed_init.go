package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rshade/houselist/internal/config"
	"github.com/rshade/houselist/internal/listing"
)

// NewSeedInitCmd creates the seed init command, which writes the built-in
// houses to a YAML seed file.
func NewSeedInitCmd() *cobra.Command {
	var (
		path  string
		force bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the built-in houses to a seed file",
		Example: `  # Write $HOUSELIST_HOME/houses.yaml
  houselist seed init

  # Write a seed file next to the project
  houselist seed init --path ./houses.yaml --force`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if path == "" {
				defaultPath, err := config.DefaultSeedPath()
				if err != nil {
					return err
				}
				path = defaultPath
			}

			if !force {
				_, err := os.Stat(path)
				if err == nil {
					return errors.New("seed file already exists, use --force to overwrite")
				}
				if !os.IsNotExist(err) {
					return fmt.Errorf("cannot access seed path %s: %w", path, err)
				}
			}

			houses := listing.DefaultHouses()
			if err := listing.WriteSeed(path, houses); err != nil {
				return err
			}

			cmd.Printf("Seed file written: %s (%d houses)\n", path, len(houses))
			return nil
		},
	}

	cmd.Flags().StringVar(&path, "path", "", "seed file to write (default $HOUSELIST_HOME/houses.yaml)")
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing seed file")

	return cmd
}
