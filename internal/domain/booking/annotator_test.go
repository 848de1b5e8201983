//go:build unit

package booking_test

import (
	"testing"
	"time"

	"shareit/internal/domain/booking"
	"shareit/tests/common/builder"

	"github.com/stretchr/testify/assert"
)

func bookingAt(start time.Time, status booking.Status) *booking.Booking {
	return builder.NewBookingBuilder(start).
		WithPeriod(start, start.Add(30*time.Minute)).
		WithStatus(status).
		BuildDomain()
}

func TestAnnotate(t *testing.T) {
	now := baseTime

	t.Run("rejected bookings are skipped", func(t *testing.T) {
		earlier := bookingAt(now.Add(-2*time.Hour), booking.StatusApproved)
		rejected := bookingAt(now.Add(-time.Hour), booking.StatusRejected)
		later := bookingAt(now.Add(time.Hour), booking.StatusWaiting)

		a := booking.Annotate([]*booking.Booking{earlier, rejected, later}, now)

		assert.Same(t, earlier, a.Last)
		assert.Same(t, later, a.Next)
	})

	t.Run("last is the latest start before now and next the earliest after", func(t *testing.T) {
		b1 := bookingAt(now.Add(-3*time.Hour), booking.StatusApproved)
		b2 := bookingAt(now.Add(-time.Hour), booking.StatusWaiting)
		b3 := bookingAt(now.Add(time.Hour), booking.StatusApproved)
		b4 := bookingAt(now.Add(3*time.Hour), booking.StatusWaiting)

		a := booking.Annotate([]*booking.Booking{b1, b2, b3, b4}, now)

		assert.Same(t, b2, a.Last)
		assert.Same(t, b3, a.Next)
	})

	t.Run("booking starting exactly now is neither last nor next", func(t *testing.T) {
		b := bookingAt(now, booking.StatusApproved)

		a := booking.Annotate([]*booking.Booking{b}, now)

		assert.Nil(t, a.Last)
		assert.Nil(t, a.Next)
	})

	t.Run("empty history", func(t *testing.T) {
		a := booking.Annotate(nil, now)

		assert.Nil(t, a.Last)
		assert.Nil(t, a.Next)
	})

	t.Run("only future bookings", func(t *testing.T) {
		b := bookingAt(now.Add(time.Minute), booking.StatusWaiting)

		a := booking.Annotate([]*booking.Booking{b}, now)

		assert.Nil(t, a.Last)
		assert.Same(t, b, a.Next)
	})
}
