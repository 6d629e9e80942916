package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/nkondratyk93/mvp-punchclock/internal/report"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderWeekBars renders the Mon..Sun daily totals as horizontal bars
// scaled against the busiest day. Zero days render an empty bar.
func RenderWeekBars(totals []report.DayTotal, width int) string {
	if width < 2 {
		width = 2
	}

	max := time.Duration(1)
	for _, d := range totals {
		if d.Total > max {
			max = d.Total
		}
	}

	var b strings.Builder
	for i, d := range totals {
		filled := int(float64(d.Total) / float64(max) * float64(width))
		if filled > width {
			filled = width
		}
		bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)

		style := StyleGreen
		if d.Total == 0 {
			style = StyleDim
		}

		fmt.Fprintf(&b, "%s  %s  %s", Dim(d.Day), style.Render(bar), FormatHours(d.Total))
		if i < len(totals)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}
