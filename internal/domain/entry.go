package domain

import "time"

// TimeEntry is one punch session. End is nil while the session is open;
// an entry with nil End is "active". At most one active entry should exist
// in a stored collection at any time — the store's mutators uphold this,
// it is not enforced by construction.
type TimeEntry struct {
	ID    string     `json:"id"`
	Start time.Time  `json:"start"`
	End   *time.Time `json:"end"`
	Note  string     `json:"note"`
}

// Open reports whether the entry has no clock-out time yet.
func (e TimeEntry) Open() bool {
	return e.End == nil
}

// EntryUpdate is a patch applied to a stored entry. A nil field is left
// untouched; a non-nil field is applied even when it holds the zero value,
// so the distinction is "field present" rather than "field non-empty".
// ClearEnd reopens the entry and takes precedence over End.
type EntryUpdate struct {
	End      *time.Time
	ClearEnd bool
	Note     *string
}

// Apply merges the update into the entry and validates the result.
// Setting an end earlier than the entry's start is rejected with
// ErrEndBeforeStart; callers that accept bare clock times are expected
// to resolve day rollover before building the update.
func (u EntryUpdate) Apply(e *TimeEntry) error {
	if u.ClearEnd {
		e.End = nil
	} else if u.End != nil {
		if u.End.Before(e.Start) {
			return ErrEndBeforeStart
		}
		end := *u.End
		e.End = &end
	}
	if u.Note != nil {
		e.Note = *u.Note
	}
	return nil
}
