//go:build unit || e2e

package builder

import (
	"time"

	"shareit/internal/domain/booking"
	reqdto "shareit/internal/handler/dto/request"
	"shareit/internal/infra/pgsql"
	"shareit/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type BookingBuilder struct {
	ID         uuid.UUID
	ItemID     uuid.UUID
	ItemName   string
	OwnerID    uuid.UUID
	BookerID   uuid.UUID
	BookerName string
	Start      time.Time
	End        time.Time
	Status     booking.Status
	CreatedAt  time.Time
}

// NewBookingBuilder starts from a one-day WAITING booking beginning a day after base.
func NewBookingBuilder(base time.Time) *BookingBuilder {
	return &BookingBuilder{
		ID:         uuid.New(),
		ItemID:     uuid.New(),
		ItemName:   "Drill",
		OwnerID:    uuid.New(),
		BookerID:   uuid.New(),
		BookerName: "Booker",
		Start:      base.Add(24 * time.Hour),
		End:        base.Add(48 * time.Hour),
		Status:     booking.StatusWaiting,
		CreatedAt:  base,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *BookingBuilder) BuildDomain() *booking.Booking {
	return booking.Reconstruct(b.ID, b.ItemID, b.BookerID, booking.ReconstructTimeSlot(b.Start, b.End), b.Status, b.CreatedAt)
}

func (b *BookingBuilder) BuildInfra() pgsql.Bookings {
	return pgsql.Bookings{
		ID:        b.ID,
		ItemID:    b.ItemID,
		BookerID:  b.BookerID,
		StartTime: pgtype.Timestamptz{Time: b.Start, Valid: true},
		EndTime:   pgtype.Timestamptz{Time: b.End, Valid: true},
		Status:    b.Status.String(),
		CreatedAt: pgtype.Timestamptz{Time: b.CreatedAt, Valid: true},
	}
}

func (b *BookingBuilder) BuildViewRow() pgsql.BookingViewRow {
	return pgsql.BookingViewRow{
		ID:          b.ID,
		StartTime:   pgtype.Timestamptz{Time: b.Start, Valid: true},
		EndTime:     pgtype.Timestamptz{Time: b.End, Valid: true},
		Status:      b.Status.String(),
		CreatedAt:   pgtype.Timestamptz{Time: b.CreatedAt, Valid: true},
		ItemID:      b.ItemID,
		ItemName:    b.ItemName,
		ItemOwnerID: b.OwnerID,
		BookerID:    b.BookerID,
		BookerName:  b.BookerName,
	}
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	return &queries.BookingView{
		ID:        b.ID,
		Start:     b.Start,
		End:       b.End,
		Status:    b.Status.String(),
		CreatedAt: b.CreatedAt,
		Item:      queries.ItemRef{ID: b.ItemID, Name: b.ItemName, OwnerID: b.OwnerID},
		Booker:    queries.UserRef{ID: b.BookerID, Name: b.BookerName},
	}
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{ItemID: b.ItemID, Start: b.Start, End: b.End}
}

// Fluent builder methods
func (b *BookingBuilder) WithItem(itemID, ownerID uuid.UUID) *BookingBuilder {
	b.ItemID = itemID
	b.OwnerID = ownerID
	return b
}

func (b *BookingBuilder) WithBooker(bookerID uuid.UUID) *BookingBuilder {
	b.BookerID = bookerID
	return b
}

func (b *BookingBuilder) WithPeriod(start, end time.Time) *BookingBuilder {
	b.Start = start
	b.End = end
	return b
}

func (b *BookingBuilder) WithStatus(status booking.Status) *BookingBuilder {
	b.Status = status
	return b
}
