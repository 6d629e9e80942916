// Package export serializes closed entries to CSV. The column set and
// order are fixed: date, start time, end time, duration in decimal hours,
// note. The note is free text and is always quoted with inner quotes
// doubled; the other columns cannot contain delimiters by construction,
// so encoding/csv's quote-when-needed writer is deliberately not used.
package export

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/nkondratyk93/mvp-punchclock/internal/domain"
)

// Header is the fixed CSV header row.
const Header = "Date,Start,End,Duration (hours),Note"

// CSV renders the closed entries as CSV text. Open entries are skipped
// entirely: an in-progress session has no defined duration for export.
func CSV(entries []domain.TimeEntry) string {
	rows := []string{Header}
	for _, e := range entries {
		if e.End == nil {
			continue
		}
		hours := e.End.Sub(e.Start).Hours()
		rows = append(rows, fmt.Sprintf("%s,%s,%s,%.2f,%s",
			e.Start.Format("2006-01-02"),
			e.Start.Format("15:04:05"),
			e.End.Format("15:04:05"),
			hours,
			quoteNote(e.Note),
		))
	}
	return strings.Join(rows, "\n")
}

// Filename returns the dated export filename, punchclock-YYYY-MM-DD.csv.
func Filename(now time.Time) string {
	return fmt.Sprintf("punchclock-%s.csv", now.Format("2006-01-02"))
}

// WriteFile writes the CSV payload for the given entries to path.
func WriteFile(path string, entries []domain.TimeEntry) error {
	if err := os.WriteFile(path, []byte(CSV(entries)), 0644); err != nil {
		return fmt.Errorf("writing export file: %w", err)
	}
	return nil
}

func quoteNote(note string) string {
	return `"` + strings.ReplaceAll(note, `"`, `""`) + `"`
}
