package domain

import "errors"

// ErrEndBeforeStart is returned when an edit would set an entry's clock-out
// time before its clock-in time.
var ErrEndBeforeStart = errors.New("end time is before start time")
