package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/houselist/internal/config"
	"github.com/rshade/houselist/internal/tui"
)

// NewListCmd creates the list command, which renders the houses once.
func NewListCmd() *cobra.Command {
	var (
		seedPath string
		output   string
		adds     int
		plain    bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the houses currently on the market",
		Long: `Prints the listing table once.

--add N presses Add House N times before printing, appending the fixed house
(ID 4, 32 Valley Way, New York) each time.`,
		Example: `  # Print the built-in houses
  houselist list

  # Print a seed file after adding two houses
  houselist list --seed houses.yaml --add 2

  # Print as JSON
  houselist list --output json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if adds < 0 {
				return fmt.Errorf("--add must be >= 0, got %d", adds)
			}

			ctx := cmd.Context()
			list, err := newHouseList(ctx, seedPath)
			if err != nil {
				return err
			}
			defer list.Close()

			for range adds {
				list.AddHouse()
			}

			out := cmd.OutOrStdout()
			switch format := config.GetOutputFormat(output); format {
			case config.FormatJSON:
				return tui.RenderJSON(out, list.Records())
			case config.FormatPlain:
				return tui.RenderPlain(out, list.Title(), list.Records(), list.Formatter())
			case config.FormatTable:
				if tui.DetectOutputMode(false, true, plain) == tui.OutputModeStyled {
					return tui.RenderStyled(out, list)
				}
				return tui.RenderPlain(out, list.Title(), list.Records(), list.Formatter())
			default:
				return fmt.Errorf("unsupported output format: %s", format)
			}
		},
	}

	cmd.Flags().StringVar(&seedPath, "seed", "", "YAML or JSON file with the initial houses (overrides seed.file)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output format: table, plain or json (default from config)")
	cmd.Flags().IntVar(&adds, "add", 0, "number of times to press Add House before printing")
	cmd.Flags().BoolVar(&plain, "plain", false, "disable styling for table output")

	return cmd
}
