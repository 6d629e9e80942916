package formatter

import (
	"fmt"
	"time"
)

// FormatClock renders a duration as HH:MM:SS, the live-timer format.
func FormatClock(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d.Seconds())
	h := total / 3600
	m := (total % 3600) / 60
	s := total % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}

// FormatHours renders a duration as decimal hours, e.g. "8.5h".
func FormatHours(d time.Duration) string {
	return fmt.Sprintf("%.1fh", d.Hours())
}

// HumanDate returns a human-friendly date string relative to now.
func HumanDate(t time.Time, now time.Time) string {
	y1, m1, d1 := now.Date()
	y2, m2, d2 := t.Date()
	if y1 == y2 && m1 == m2 && d1 == d2 {
		return "Today"
	}
	yesterday := now.AddDate(0, 0, -1)
	y3, m3, d3 := yesterday.Date()
	if y2 == y3 && m2 == m3 && d2 == d3 {
		return "Yesterday"
	}
	return t.Format("Mon Jan 2")
}

// TruncID returns the first 8 characters of an ID, dimmed.
func TruncID(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return StyleDim.Render(id)
}
