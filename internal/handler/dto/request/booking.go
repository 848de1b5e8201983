package request

import (
	"time"

	"shareit/internal/pkg/errs"
	"shareit/internal/usecase/commands"

	"github.com/google/uuid"
)

var (
	ErrStartInPast  = errs.NewBadRequest("start must not be in the past")
	ErrEndNotFuture = errs.NewBadRequest("end must be in the future")
)

type CreateBookingRequest struct {
	ItemID uuid.UUID `json:"itemId" binding:"required"`
	Start  time.Time `json:"start" binding:"required"`
	End    time.Time `json:"end" binding:"required"`
}

// Validate checks the period against now. Ordering of start and end is a
// domain rule and is left to the use case.
func (r CreateBookingRequest) Validate(now time.Time) error {
	if r.Start.Before(now) {
		return ErrStartInPast
	}
	if !r.End.After(now) {
		return ErrEndNotFuture
	}
	return nil
}

func (r CreateBookingRequest) ToCommand() commands.CreateBookingRequest {
	return commands.CreateBookingRequest{
		ItemID: r.ItemID,
		Start:  r.Start.UTC(),
		End:    r.End.UTC(),
	}
}

type DecideBookingQuery struct {
	Approved *bool `form:"approved" binding:"required"`
}

type ListBookingsQuery struct {
	Pagination
	State string `form:"state"`
}
