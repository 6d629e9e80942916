package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/nkondratyk93/mvp-punchclock/internal/cli/formatter"
	"github.com/nkondratyk93/mvp-punchclock/internal/domain"
	"github.com/nkondratyk93/mvp-punchclock/internal/report"
)

func newListCmd(app *App) *cobra.Command {
	var todayOnly, weekOnly bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recorded entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			now := app.now()
			entries := app.Entries.ListAll()
			switch {
			case todayOnly:
				entries = report.FilterDay(entries, now)
			case weekOnly:
				entries = report.FilterWeek(entries, now)
			}

			if len(entries) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No entries found.")
				return nil
			}

			headers := []string{"ID", "DATE", "START", "END", "DURATION", "NOTE"}
			rows := make([][]string, 0, len(entries))
			for _, e := range entries {
				end := formatter.Dim("active")
				if e.End != nil {
					end = e.End.Format("15:04:05")
				}
				notePreview := e.Note
				if len(notePreview) > 40 {
					notePreview = notePreview[:37] + "..."
				}
				rows = append(rows, []string{
					formatter.TruncID(e.ID),
					formatter.HumanDate(e.Start, now),
					e.Start.Format("15:04:05"),
					end,
					formatter.FormatClock(report.DurationOf(e, now)),
					formatter.Dim(notePreview),
				})
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.RenderTable(headers, rows))
			return nil
		},
	}

	cmd.Flags().BoolVar(&todayOnly, "today", false, "Only entries that started today")
	cmd.Flags().BoolVar(&weekOnly, "week", false, "Only entries from the current week")
	cmd.MarkFlagsMutuallyExclusive("today", "week")

	return cmd
}

func newEditCmd(app *App) *cobra.Command {
	var endFlag, noteFlag string
	var clearEnd bool

	cmd := &cobra.Command{
		Use:   "edit ID",
		Short: "Edit an entry's end time or note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entry := findEntry(app, args[0])
			if entry == nil {
				return fmt.Errorf("no entry with id %q", args[0])
			}

			update := domain.EntryUpdate{ClearEnd: clearEnd}
			if cmd.Flags().Changed("note") {
				update.Note = &noteFlag
			}
			if endFlag != "" {
				end, err := resolveEndTime(endFlag, entry.Start)
				if err != nil {
					return err
				}
				update.End = &end
			}

			// With no field flags, fall back to the interactive form.
			if update.End == nil && update.Note == nil && !update.ClearEnd {
				if !app.interactive() {
					return fmt.Errorf("nothing to change: pass --end, --clear-end, or --note")
				}
				var err error
				update, err = runEditForm(entry)
				if err != nil {
					return err
				}
			}

			if err := app.Entries.Update(entry.ID, update); err != nil {
				return err
			}
			app.track("entry_edited", "")

			fmt.Fprintf(cmd.OutOrStdout(), "Updated entry %s\n", entry.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&endFlag, "end", "", "New end time (HH:MM or RFC 3339)")
	cmd.Flags().BoolVar(&clearEnd, "clear-end", false, "Reopen the entry by clearing its end time")
	cmd.Flags().StringVar(&noteFlag, "note", "", "New note")
	cmd.MarkFlagsMutuallyExclusive("end", "clear-end")

	return cmd
}

// findEntry resolves an id or unambiguous id prefix against the stored
// collection.
func findEntry(app *App, id string) *domain.TimeEntry {
	var match *domain.TimeEntry
	for _, e := range app.Entries.ListAll() {
		if e.ID == id {
			entry := e
			return &entry
		}
		if strings.HasPrefix(e.ID, id) {
			if match != nil {
				return nil // ambiguous prefix
			}
			entry := e
			match = &entry
		}
	}
	return match
}

// resolveEndTime parses the --end value. A full RFC 3339 timestamp is
// taken as-is. A bare HH:MM is resolved against the entry's start date
// and rolled forward one day when it would land before the start, so a
// session crossing midnight can be closed with its wall-clock end time.
func resolveEndTime(value string, start time.Time) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}

	clock, err := time.Parse("15:04", value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid end time %q: want HH:MM or RFC 3339", value)
	}

	end := time.Date(start.Year(), start.Month(), start.Day(),
		clock.Hour(), clock.Minute(), 0, 0, start.Location())
	if end.Before(start) {
		end = end.AddDate(0, 0, 1)
	}
	return end, nil
}

// runEditForm collects the end time and note interactively, mirroring
// the flag-based path.
func runEditForm(entry *domain.TimeEntry) (domain.EntryUpdate, error) {
	endValue := ""
	if entry.End != nil {
		endValue = entry.End.Format("15:04")
	}
	noteValue := entry.Note

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("End time (HH:MM, empty keeps current)").
				Value(&endValue).
				Validate(func(s string) error {
					if s == "" {
						return nil
					}
					_, err := resolveEndTime(s, entry.Start)
					return err
				}),
			huh.NewInput().
				Title("Note").
				Value(&noteValue),
		),
	).WithShowHelp(false)

	if err := form.Run(); err != nil {
		return domain.EntryUpdate{}, err
	}

	update := domain.EntryUpdate{Note: &noteValue}
	if endValue != "" {
		end, err := resolveEndTime(endValue, entry.Start)
		if err != nil {
			return domain.EntryUpdate{}, err
		}
		update.End = &end
	}
	return update, nil
}
