package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/rshade/houselist/internal/tui"
)

// NewBrowseCmd creates the browse command, which runs the interactive listing.
// When stdout is not a terminal it prints the table once instead.
func NewBrowseCmd() *cobra.Command {
	var seedPath string

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse houses interactively",
		Long: `Opens the interactive listing table.

Keys:
  a, enter, space  Add House
  up/down, k/j     move the selection
  q, ctrl+c        quit`,
		Example: `  houselist browse
  houselist browse --seed houses.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			if logsToTerminal(cmd) {
				// Log lines on stderr would tear the full-screen view.
				ctx = zerolog.Nop().WithContext(ctx)
			}

			list, err := newHouseList(ctx, seedPath)
			if err != nil {
				return err
			}
			defer list.Close()

			if tui.DetectOutputMode(false, false, false) != tui.OutputModeInteractive {
				return tui.RenderPlain(cmd.OutOrStdout(), list.Title(), list.Records(), list.Formatter())
			}

			p := tea.NewProgram(list,
				tea.WithContext(ctx),
				tea.WithAltScreen(),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()),
			)
			if _, err = p.Run(); err != nil {
				return fmt.Errorf("failed to run interactive TUI: %w", err)
			}

			logger.Info().Ctx(ctx).
				Int("record_count", list.Len()).
				Int("renders", list.Renders()).
				Msg("browse session ended")
			return nil
		},
	}

	cmd.Flags().StringVar(&seedPath, "seed", "", "YAML or JSON file with the initial houses (overrides seed.file)")

	return cmd
}
