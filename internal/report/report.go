// Package report derives display aggregates from an entry snapshot: daily
// and weekly filters, per-weekday totals, and durations. Every function is
// pure and takes its reference instant as a parameter so repeated calls
// within one rendering pass agree.
package report

import (
	"time"

	"github.com/nkondratyk93/mvp-punchclock/internal/domain"
)

// weekdayLabels run Monday through Sunday, the bucket order used by
// DailyTotals.
var weekdayLabels = [7]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// DayTotal is the aggregate duration for one calendar day of the week.
type DayTotal struct {
	Day   string
	Total time.Duration
}

// DurationOf returns the entry's duration: end minus start when closed,
// now minus start while the session is still open.
func DurationOf(e domain.TimeEntry, now time.Time) time.Duration {
	if e.End != nil {
		return e.End.Sub(e.Start)
	}
	return now.Sub(e.Start)
}

// WeekStart returns midnight of the most recent Monday relative to ref,
// in ref's location. The week always starts on Monday.
func WeekStart(ref time.Time) time.Time {
	daysSinceMonday := (int(ref.Weekday()) + 6) % 7
	y, m, d := ref.AddDate(0, 0, -daysSinceMonday).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, ref.Location())
}

// FilterDay returns the entries whose start falls on ref's calendar date,
// matched by full year/month/day in ref's location rather than a rolling
// 24-hour window.
func FilterDay(entries []domain.TimeEntry, ref time.Time) []domain.TimeEntry {
	var out []domain.TimeEntry
	for _, e := range entries {
		if sameDay(e.Start.In(ref.Location()), ref) {
			out = append(out, e)
		}
	}
	return out
}

// FilterWeek returns the entries whose start is on or after the Monday of
// ref's week.
func FilterWeek(entries []domain.TimeEntry, ref time.Time) []domain.TimeEntry {
	monday := WeekStart(ref)
	var out []domain.TimeEntry
	for _, e := range entries {
		if !e.Start.Before(monday) {
			out = append(out, e)
		}
	}
	return out
}

// DailyTotals buckets entry durations across the seven days of ref's week,
// Monday through Sunday. Days with no entries report a zero total. Open
// entries contribute their elapsed time up to now.
func DailyTotals(entries []domain.TimeEntry, ref time.Time, now time.Time) []DayTotal {
	monday := WeekStart(ref)
	totals := make([]DayTotal, 7)
	for i := range totals {
		totals[i].Day = weekdayLabels[i]
		date := monday.AddDate(0, 0, i)
		for _, e := range entries {
			if sameDay(e.Start.In(ref.Location()), date) {
				totals[i].Total += DurationOf(e, now)
			}
		}
	}
	return totals
}

// Total sums DurationOf over all entries.
func Total(entries []domain.TimeEntry, now time.Time) time.Duration {
	var sum time.Duration
	for _, e := range entries {
		sum += DurationOf(e, now)
	}
	return sum
}

func sameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
