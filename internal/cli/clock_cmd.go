package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nkondratyk93/mvp-punchclock/internal/cli/formatter"
	"github.com/nkondratyk93/mvp-punchclock/internal/report"
)

func newInCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "in",
		Short: "Clock in and start a new session",
		RunE: func(cmd *cobra.Command, args []string) error {
			// The store appends unconditionally; the guard against a
			// second concurrently-open session lives here.
			if active := app.Entries.Active(); active != nil {
				return fmt.Errorf("already clocked in since %s", active.Start.Format("15:04:05"))
			}

			entry := app.Entries.ClockIn()
			app.track("clock_in", "")

			fmt.Fprintf(cmd.OutOrStdout(), "Clocked in at %s (%s)\n",
				entry.Start.Format("15:04:05"), entry.ID)
			return nil
		},
	}
}

func newOutCmd(app *App) *cobra.Command {
	var note string

	cmd := &cobra.Command{
		Use:   "out",
		Short: "Clock out of the active session",
		RunE: func(cmd *cobra.Command, args []string) error {
			entry := app.Entries.ClockOut(note)
			if entry == nil {
				fmt.Fprintln(cmd.OutOrStdout(), "Not clocked in.")
				return nil
			}
			app.track("clock_out", "")

			d := report.DurationOf(*entry, app.now())
			fmt.Fprintf(cmd.OutOrStdout(), "Clocked out at %s after %s\n",
				entry.End.Format("15:04:05"), formatter.FormatClock(d))
			return nil
		},
	}

	cmd.Flags().StringVar(&note, "note", "", "Note to attach to the session")

	return cmd
}

func newStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the active session and today/week totals",
		RunE: func(cmd *cobra.Command, args []string) error {
			now := app.now()
			entries := app.Entries.ListAll()
			out := cmd.OutOrStdout()

			if active := app.Entries.Active(); active != nil {
				fmt.Fprintf(out, "%s %s\n", formatter.StyleGreen.Render("● Clocked in"),
					formatter.Dim("since "+active.Start.Format("15:04:05")))
				fmt.Fprintf(out, "Elapsed   %s\n",
					formatter.Bold(formatter.FormatClock(report.DurationOf(*active, now))))
			} else {
				fmt.Fprintf(out, "%s\n", formatter.Dim("○ Not clocked in"))
			}

			today := report.Total(report.FilterDay(entries, now), now)
			week := report.Total(report.FilterWeek(entries, now), now)
			fmt.Fprintf(out, "Today     %s\n", formatter.FormatHours(today))
			fmt.Fprintf(out, "This week %s\n", formatter.FormatHours(week))
			return nil
		},
	}
}
