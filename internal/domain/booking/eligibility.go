package booking

import (
	"time"

	"github.com/google/uuid"
)

// CanComment reports whether userID has a finished booking among an item's bookings.
// Status is not considered.
func CanComment(itemBookings []*Booking, userID uuid.UUID, now time.Time) bool {
	for _, b := range itemBookings {
		if b.IsBookedBy(userID) && b.timeSlot.EndedBefore(now) {
			return true
		}
	}
	return false
}
