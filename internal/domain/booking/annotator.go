package booking

import "time"

// Annotation is the derived last/next booking of an item. Either may be nil.
type Annotation struct {
	Last *Booking
	Next *Booking
}

// Annotate derives the annotation from an item's bookings, which must be sorted
// ascending by start. Rejected bookings are ignored.
func Annotate(sortedByStart []*Booking, now time.Time) Annotation {
	var a Annotation
	for _, b := range sortedByStart {
		if b.IsRejected() {
			continue
		}
		switch {
		case b.timeSlot.StartedBefore(now):
			a.Last = b
		case b.timeSlot.StartsAfter(now) && a.Next == nil:
			a.Next = b
		}
	}
	return a
}
