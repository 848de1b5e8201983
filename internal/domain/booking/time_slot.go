package booking

import (
	"errors"
	"time"
)

var ErrInvalidTimeSlot = errors.New("start time must be before end time")

// TimeSlot is a closed booking interval with start strictly before end.
type TimeSlot struct {
	start time.Time
	end   time.Time
}

func NewTimeSlot(start, end time.Time) (TimeSlot, error) {
	if !start.Before(end) {
		return TimeSlot{}, ErrInvalidTimeSlot
	}
	return TimeSlot{start: start, end: end}, nil
}

// ReconstructTimeSlot skips validation for rows loaded from storage.
func ReconstructTimeSlot(start, end time.Time) TimeSlot {
	return TimeSlot{start: start, end: end}
}

func (ts TimeSlot) Start() time.Time { return ts.start }
func (ts TimeSlot) End() time.Time   { return ts.end }

func (ts TimeSlot) EndedBefore(now time.Time) bool {
	return ts.end.Before(now)
}

func (ts TimeSlot) StartsAfter(now time.Time) bool {
	return ts.start.After(now)
}

func (ts TimeSlot) StartedBefore(now time.Time) bool {
	return ts.start.Before(now)
}

// Spans is inclusive at both ends.
func (ts TimeSlot) Spans(now time.Time) bool {
	return !now.Before(ts.start) && !now.After(ts.end)
}
