package queries

import (
	"time"

	"github.com/google/uuid"
)

type UserRef struct {
	ID   uuid.UUID
	Name string
}

type ItemRef struct {
	ID      uuid.UUID
	Name    string
	OwnerID uuid.UUID
}

type BookingView struct {
	ID        uuid.UUID
	Start     time.Time
	End       time.Time
	Status    string
	CreatedAt time.Time
	Item      ItemRef
	Booker    UserRef
}

// BookingShort is the last/next booking attached to an item view.
type BookingShort struct {
	ID        uuid.UUID
	BookerID  uuid.UUID
	Start     time.Time
	End       time.Time
	Status    string
	CreatedAt time.Time
}

type CommentView struct {
	ID         uuid.UUID
	ItemID     uuid.UUID
	Text       string
	AuthorName string
	CreatedAt  time.Time
}

type ItemView struct {
	ID          uuid.UUID
	OwnerID     uuid.UUID
	Name        string
	Description string
	Available   bool
	RequestID   *uuid.UUID
	CreatedAt   time.Time
	LastBooking *BookingShort
	NextBooking *BookingShort
	Comments    []*CommentView
}

type UserView struct {
	ID        uuid.UUID
	Name      string
	Email     string
	CreatedAt time.Time
}

type RequestView struct {
	ID          uuid.UUID
	RequesterID uuid.UUID
	Description string
	CreatedAt   time.Time
	Items       []*ItemView
}
