// Package testutil provides fixtures shared across test packages: fixed
// clocks, sequential id generators, and entry builders.
package testutil

import (
	"fmt"
	"time"

	"github.com/nkondratyk93/mvp-punchclock/internal/domain"
)

// FixedClock returns a clock that always reports the same instant.
func FixedClock(at time.Time) func() time.Time {
	return func() time.Time { return at }
}

// SteppingClock returns a clock that starts at the given instant and
// advances by step on every call.
func SteppingClock(start time.Time, step time.Duration) func() time.Time {
	next := start
	return func() time.Time {
		now := next
		next = next.Add(step)
		return now
	}
}

// SequentialIDs returns an id generator producing prefix-1, prefix-2, ...
func SequentialIDs(prefix string) func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("%s-%d", prefix, n)
	}
}

// EntryOption customizes a test entry.
type EntryOption func(*domain.TimeEntry)

// WithEnd closes the entry at start plus the given duration.
func WithEnd(after time.Duration) EntryOption {
	return func(e *domain.TimeEntry) {
		end := e.Start.Add(after)
		e.End = &end
	}
}

// WithEndAt closes the entry at an explicit instant.
func WithEndAt(at time.Time) EntryOption {
	return func(e *domain.TimeEntry) {
		end := at
		e.End = &end
	}
}

// WithNote sets the entry note.
func WithNote(note string) EntryOption {
	return func(e *domain.TimeEntry) { e.Note = note }
}

// NewTestEntry builds a time entry with the given id and start, open
// unless an end option is supplied.
func NewTestEntry(id string, start time.Time, opts ...EntryOption) domain.TimeEntry {
	e := domain.TimeEntry{ID: id, Start: start}
	for _, opt := range opts {
		opt(&e)
	}
	return e
}
