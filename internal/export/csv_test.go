package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nkondratyk93/mvp-punchclock/internal/domain"
	"github.com/nkondratyk93/mvp-punchclock/internal/testutil"
)

func TestCSV_HeaderOnlyForEmptySnapshot(t *testing.T) {
	assert.Equal(t, Header, CSV(nil))
}

func TestCSV_ClosedEntryRow(t *testing.T) {
	start := time.Date(2026, 2, 3, 9, 0, 0, 0, time.UTC)
	entries := []domain.TimeEntry{
		testutil.NewTestEntry("a", start,
			testutil.WithEnd(8*time.Hour+30*time.Minute),
			testutil.WithNote(`a,b"c`),
		),
	}

	got := CSV(entries)
	lines := strings.Split(got, "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "Date,Start,End,Duration (hours),Note", lines[0])
	assert.Equal(t, `2026-02-03,09:00:00,17:30:00,8.50,"a,b""c"`, lines[1])
}

func TestCSV_SkipsOpenEntries(t *testing.T) {
	start := time.Date(2026, 2, 3, 9, 0, 0, 0, time.UTC)
	entries := []domain.TimeEntry{
		testutil.NewTestEntry("open", start),
		testutil.NewTestEntry("closed", start, testutil.WithEnd(time.Hour)),
	}

	lines := strings.Split(CSV(entries), "\n")
	require.Len(t, lines, 2, "the open entry must produce no row")
	assert.Contains(t, lines[1], "10:00:00")
}

func TestCSV_NoteAlwaysQuoted(t *testing.T) {
	start := time.Date(2026, 2, 3, 9, 0, 0, 0, time.UTC)
	entries := []domain.TimeEntry{
		testutil.NewTestEntry("a", start, testutil.WithEnd(time.Hour), testutil.WithNote("plain")),
	}

	lines := strings.Split(CSV(entries), "\n")
	assert.True(t, strings.HasSuffix(lines[1], `,"plain"`))
}

func TestCSV_NoteWithNewline(t *testing.T) {
	start := time.Date(2026, 2, 3, 9, 0, 0, 0, time.UTC)
	entries := []domain.TimeEntry{
		testutil.NewTestEntry("a", start, testutil.WithEnd(time.Hour), testutil.WithNote("line one\nline two")),
	}

	got := CSV(entries)
	assert.Contains(t, got, "\"line one\nline two\"")
}

func TestFilename(t *testing.T) {
	now := time.Date(2026, 2, 3, 18, 45, 0, 0, time.UTC)
	assert.Equal(t, "punchclock-2026-02-03.csv", Filename(now))
}

func TestWriteFile(t *testing.T) {
	start := time.Date(2026, 2, 3, 9, 0, 0, 0, time.UTC)
	entries := []domain.TimeEntry{
		testutil.NewTestEntry("a", start, testutil.WithEnd(time.Hour), testutil.WithNote("n")),
	}

	path := filepath.Join(t.TempDir(), "out.csv")
	require.NoError(t, WriteFile(path, entries))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, CSV(entries), string(raw))
}
