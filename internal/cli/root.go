package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/nkondratyk93/mvp-punchclock/internal/domain"
	"github.com/nkondratyk93/mvp-punchclock/internal/track"
)

// EntryStore is the store surface the CLI commands consume.
type EntryStore interface {
	ListAll() []domain.TimeEntry
	ClockIn() domain.TimeEntry
	ClockOut(note string) *domain.TimeEntry
	Active() *domain.TimeEntry
	Update(id string, u domain.EntryUpdate) error
}

// App holds the collaborators used by CLI commands.
type App struct {
	Entries EntryStore
	Tracker track.Collector
	Now     func() time.Time

	// IsInteractive reports whether stdin is a terminal; the edit
	// command only offers its form when it is.
	IsInteractive func() bool
}

func (a *App) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

func (a *App) track(action, label string) {
	if a.Tracker != nil {
		a.Tracker.Event(action, label)
	}
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "punchclock" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "punchclock",
		Short: "Single-user punch clock with daily and weekly summaries",
	}

	root.AddCommand(
		newInCmd(app),
		newOutCmd(app),
		newStatusCmd(app),
		newListCmd(app),
		newEditCmd(app),
		newSummaryCmd(app),
		newExportCmd(app),
		newWatchCmd(app),
	)

	return root
}
