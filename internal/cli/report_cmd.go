package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nkondratyk93/mvp-punchclock/internal/cli/formatter"
	"github.com/nkondratyk93/mvp-punchclock/internal/report"
)

func newSummaryCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Show today/week totals and a per-weekday breakdown",
		RunE: func(cmd *cobra.Command, args []string) error {
			now := app.now()
			entries := app.Entries.ListAll()

			today := report.Total(report.FilterDay(entries, now), now)
			week := report.FilterWeek(entries, now)
			weekTotal := report.Total(week, now)
			totals := report.DailyTotals(week, now, now)

			content := fmt.Sprintf("%s\n\nToday     %s\nThis week %s",
				formatter.RenderWeekBars(totals, 24),
				formatter.Bold(formatter.FormatHours(today)),
				formatter.Bold(formatter.FormatHours(weekTotal)))
			fmt.Fprintln(cmd.OutOrStdout(), formatter.RenderBox("This week", content))
			return nil
		},
	}
}
