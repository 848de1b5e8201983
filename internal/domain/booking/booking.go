package booking

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrAlreadyDecided = errors.New("booking has already been decided")

type Booking struct {
	id        uuid.UUID
	itemID    uuid.UUID
	bookerID  uuid.UUID
	timeSlot  TimeSlot
	status    Status
	createdAt time.Time
}

// NewBooking creates a booking awaiting the owner's decision.
func NewBooking(itemID, bookerID uuid.UUID, slot TimeSlot, now time.Time) *Booking {
	return &Booking{
		id:        uuid.New(),
		itemID:    itemID,
		bookerID:  bookerID,
		timeSlot:  slot,
		status:    StatusWaiting,
		createdAt: now,
	}
}

func Reconstruct(
	id, itemID, bookerID uuid.UUID,
	timeSlot TimeSlot,
	status Status,
	createdAt time.Time,
) *Booking {
	return &Booking{
		id:        id,
		itemID:    itemID,
		bookerID:  bookerID,
		timeSlot:  timeSlot,
		status:    status,
		createdAt: createdAt,
	}
}

// Decide moves a waiting booking to APPROVED or REJECTED. It is allowed once.
func (b *Booking) Decide(approve bool) error {
	if b.status != StatusWaiting {
		return ErrAlreadyDecided
	}
	if approve {
		b.status = StatusApproved
	} else {
		b.status = StatusRejected
	}
	return nil
}

func (b *Booking) IsBookedBy(userID uuid.UUID) bool {
	return b.bookerID == userID
}

func (b *Booking) IsRejected() bool {
	return b.status == StatusRejected
}

func (b *Booking) ID() uuid.UUID        { return b.id }
func (b *Booking) ItemID() uuid.UUID    { return b.itemID }
func (b *Booking) BookerID() uuid.UUID  { return b.bookerID }
func (b *Booking) TimeSlot() TimeSlot   { return b.timeSlot }
func (b *Booking) Start() time.Time     { return b.timeSlot.Start() }
func (b *Booking) End() time.Time       { return b.timeSlot.End() }
func (b *Booking) Status() Status       { return b.status }
func (b *Booking) CreatedAt() time.Time { return b.createdAt }
