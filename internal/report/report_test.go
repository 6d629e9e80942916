package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nkondratyk93/mvp-punchclock/internal/domain"
	"github.com/nkondratyk93/mvp-punchclock/internal/testutil"
)

// Tuesday, February 3rd 2026.
var ref = time.Date(2026, 2, 3, 14, 30, 0, 0, time.UTC)

func TestDurationOf(t *testing.T) {
	start := time.Date(2026, 2, 3, 9, 0, 0, 0, time.UTC)
	now := start.Add(3 * time.Hour)

	closed := testutil.NewTestEntry("a", start, testutil.WithEnd(8*time.Hour+30*time.Minute))
	assert.Equal(t, 8*time.Hour+30*time.Minute, DurationOf(closed, now))

	open := testutil.NewTestEntry("b", start)
	assert.Equal(t, 3*time.Hour, DurationOf(open, now))
}

func TestWeekStart(t *testing.T) {
	monday := time.Date(2026, 2, 2, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		ref  time.Time
		want time.Time
	}{
		{"monday midnight", monday, monday},
		{"monday evening", monday.Add(23 * time.Hour), monday},
		{"tuesday", ref, monday},
		{"saturday", time.Date(2026, 2, 7, 12, 0, 0, 0, time.UTC), monday},
		{"sunday maps to previous monday", time.Date(2026, 2, 8, 23, 59, 0, 0, time.UTC), monday},
		{"next monday starts a new week", time.Date(2026, 2, 9, 0, 0, 0, 0, time.UTC), monday.AddDate(0, 0, 7)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, WeekStart(tt.ref))
		})
	}
}

func TestWeekStart_KeepsLocation(t *testing.T) {
	loc := time.FixedZone("UTC+5", 5*3600)
	local := time.Date(2026, 2, 4, 1, 0, 0, 0, loc)

	got := WeekStart(local)
	assert.Equal(t, time.Date(2026, 2, 2, 0, 0, 0, 0, loc), got)
	assert.Equal(t, loc, got.Location())
}

func TestFilterDay(t *testing.T) {
	entries := []domain.TimeEntry{
		testutil.NewTestEntry("yesterday", ref.AddDate(0, 0, -1)),
		testutil.NewTestEntry("morning", time.Date(2026, 2, 3, 0, 0, 1, 0, time.UTC)),
		testutil.NewTestEntry("evening", time.Date(2026, 2, 3, 23, 59, 0, 0, time.UTC)),
		testutil.NewTestEntry("tomorrow", ref.AddDate(0, 0, 1)),
	}

	got := FilterDay(entries, ref)
	require.Len(t, got, 2)
	assert.Equal(t, "morning", got[0].ID)
	assert.Equal(t, "evening", got[1].ID)
}

func TestFilterDay_MatchesCalendarDateNotWindow(t *testing.T) {
	// 20 hours before ref is still the previous calendar day.
	entries := []domain.TimeEntry{
		testutil.NewTestEntry("late-monday", ref.Add(-20*time.Hour)),
	}
	assert.Empty(t, FilterDay(entries, ref))
}

func TestFilterWeek(t *testing.T) {
	monday := time.Date(2026, 2, 2, 0, 0, 0, 0, time.UTC)
	entries := []domain.TimeEntry{
		testutil.NewTestEntry("last-sunday", monday.Add(-time.Minute)),
		testutil.NewTestEntry("monday-midnight", monday),
		testutil.NewTestEntry("midweek", ref),
	}

	got := FilterWeek(entries, ref)
	require.Len(t, got, 2)
	assert.Equal(t, "monday-midnight", got[0].ID)
	assert.Equal(t, "midweek", got[1].ID)
}

func TestDailyTotals_SevenBucketsMonToSun(t *testing.T) {
	got := DailyTotals(nil, ref, ref)
	require.Len(t, got, 7)

	want := []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}
	for i, d := range got {
		assert.Equal(t, want[i], d.Day)
		assert.Zero(t, d.Total, "empty bucket must report zero, not be absent")
	}
}

func TestDailyTotals_SumsPerDay(t *testing.T) {
	monday := time.Date(2026, 2, 2, 9, 0, 0, 0, time.UTC)
	entries := []domain.TimeEntry{
		testutil.NewTestEntry("mon-1", monday, testutil.WithEnd(2*time.Hour)),
		testutil.NewTestEntry("mon-2", monday.Add(4*time.Hour), testutil.WithEnd(90*time.Minute)),
		testutil.NewTestEntry("tue-open", time.Date(2026, 2, 3, 13, 0, 0, 0, time.UTC)),
	}
	now := time.Date(2026, 2, 3, 14, 0, 0, 0, time.UTC)

	got := DailyTotals(entries, ref, now)
	assert.Equal(t, 3*time.Hour+30*time.Minute, got[0].Total, "Monday")
	assert.Equal(t, time.Hour, got[1].Total, "Tuesday includes the open entry's elapsed time")
	for i := 2; i < 7; i++ {
		assert.Zero(t, got[i].Total)
	}
}

func TestDailyTotals_MatchesWeekTotal(t *testing.T) {
	entries := []domain.TimeEntry{
		testutil.NewTestEntry("prev-week", time.Date(2026, 1, 28, 9, 0, 0, 0, time.UTC), testutil.WithEnd(4*time.Hour)),
		testutil.NewTestEntry("mon", time.Date(2026, 2, 2, 9, 0, 0, 0, time.UTC), testutil.WithEnd(time.Hour)),
		testutil.NewTestEntry("tue", time.Date(2026, 2, 3, 9, 0, 0, 0, time.UTC), testutil.WithEnd(2*time.Hour)),
		testutil.NewTestEntry("open", time.Date(2026, 2, 3, 13, 0, 0, 0, time.UTC)),
	}
	now := time.Date(2026, 2, 3, 13, 45, 0, 0, time.UTC)

	week := FilterWeek(entries, ref)
	var bucketSum time.Duration
	for _, d := range DailyTotals(week, ref, now) {
		bucketSum += d.Total
	}
	assert.Equal(t, Total(week, now), bucketSum)
}

func TestAggregations_Idempotent(t *testing.T) {
	entries := []domain.TimeEntry{
		testutil.NewTestEntry("a", time.Date(2026, 2, 2, 9, 0, 0, 0, time.UTC), testutil.WithEnd(time.Hour)),
		testutil.NewTestEntry("b", time.Date(2026, 2, 3, 9, 0, 0, 0, time.UTC)),
	}
	now := ref

	assert.Equal(t, FilterDay(entries, ref), FilterDay(entries, ref))
	assert.Equal(t, FilterWeek(entries, ref), FilterWeek(entries, ref))
	assert.Equal(t, DailyTotals(entries, ref, now), DailyTotals(entries, ref, now))
	assert.Equal(t, Total(entries, now), Total(entries, now))
}

func TestFilterDay_UsesRefLocation(t *testing.T) {
	// 23:30 UTC on Feb 2nd is already Feb 3rd at UTC+5.
	loc := time.FixedZone("UTC+5", 5*3600)
	localRef := time.Date(2026, 2, 3, 10, 0, 0, 0, loc)
	entries := []domain.TimeEntry{
		testutil.NewTestEntry("a", time.Date(2026, 2, 2, 23, 30, 0, 0, time.UTC)),
	}

	got := FilterDay(entries, localRef)
	require.Len(t, got, 1)
	assert.Equal(t, "a", got[0].ID)
}
