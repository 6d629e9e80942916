package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newWatchCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Live view of the running session",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.interactive() {
				return fmt.Errorf("watch requires an interactive terminal")
			}

			p := tea.NewProgram(newWatchModel(app))
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("running watch view: %w", err)
			}
			return nil
		},
	}
}
