// Package track sends fire-and-forget usage events to a collector. The
// collector is an external collaborator: when none is configured the Noop
// collector stands in and events vanish silently. Nothing here may block
// or return an error to the caller.
package track

import (
	"io"

	"github.com/rs/zerolog"
)

// Collector receives usage events keyed by an action name plus an
// optional label.
type Collector interface {
	Event(action, label string)
}

// Noop discards all events. It is the collector of record whenever no
// real collector is present.
type Noop struct{}

func (Noop) Event(string, string) {}

// Logger emits events as structured log lines.
type Logger struct {
	log zerolog.Logger
}

// NewLogger creates a Collector that writes events to w.
func NewLogger(w io.Writer) *Logger {
	return &Logger{log: zerolog.New(w).With().Timestamp().Logger()}
}

func (l *Logger) Event(action, label string) {
	ev := l.log.Info().Str("action", action)
	if label != "" {
		ev = ev.Str("label", label)
	}
	ev.Msg("event")
}
