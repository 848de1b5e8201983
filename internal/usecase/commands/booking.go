package commands

import (
	"context"
	"log/slog"
	"time"

	"shareit/internal/domain/booking"
	"shareit/internal/infra"
	"shareit/internal/pkg/clock"
	"shareit/internal/pkg/errs"
	"shareit/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrBookerNotFound        = errs.NewNotFound("booker not found")
	ErrDeciderNotFound       = errs.NewNotFound("decider not found")
	ErrOwnerBooksOwnItem     = errs.NewNotFound("owner cannot book own item")
	ErrNotItemOwner          = errs.NewNotFound("only the item owner can decide on a booking")
	ErrItemUnavailable       = errs.NewBadRequest("item unavailable")
	ErrInvalidTimeRange      = errs.NewBadRequest("invalid time range")
	ErrBookingAlreadyDecided = errs.NewBadRequest("booking already decided")
)

type CreateBookingRequest struct {
	ItemID uuid.UUID
	Start  time.Time
	End    time.Time
}

type CreateBookingResult struct {
	BookingID uuid.UUID
}

type BookingCommands interface {
	Create(ctx context.Context, bookerID uuid.UUID, req CreateBookingRequest) (*CreateBookingResult, error)
	Decide(ctx context.Context, deciderID, bookingID uuid.UUID, approve bool) error
}

type bookingUseCaseImpl struct {
	uow      shared.UnitOfWork
	clock    clock.Clock
	recorder BookingRecorder
	logger   *slog.Logger
}

func NewBookingUseCase(uow shared.UnitOfWork, clk clock.Clock, recorder BookingRecorder, logger *slog.Logger) BookingCommands {
	return &bookingUseCaseImpl{
		uow:      uow,
		clock:    clk,
		recorder: recorder,
		logger:   logger,
	}
}

func (uc *bookingUseCaseImpl) Create(ctx context.Context, bookerID uuid.UUID, req CreateBookingRequest) (*CreateBookingResult, error) {
	now := uc.clock.Now()
	reads := uc.uow.CommandReads()

	exists, err := reads.UserExists(ctx, bookerID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrBookerNotFound
	}

	it, err := reads.ItemByID(ctx, req.ItemID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, shared.ErrItemNotFound
		}
		return nil, err
	}
	if it.IsOwnedBy(bookerID) {
		return nil, ErrOwnerBooksOwnItem
	}
	if !it.Available() {
		return nil, ErrItemUnavailable
	}

	slot, err := booking.NewTimeSlot(req.Start, req.End)
	if err != nil {
		return nil, ErrInvalidTimeRange
	}

	b := booking.NewBooking(it.ID(), bookerID, slot, now)
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Bookings().Create(ctx, tx.DB(), b)
	})
	if err != nil {
		return nil, err
	}

	uc.recorder.BookingCreated()
	uc.logger.InfoContext(ctx, "booking created",
		slog.String("booking_id", b.ID().String()),
		slog.String("item_id", it.ID().String()),
		slog.String("booker_id", bookerID.String()))

	return &CreateBookingResult{BookingID: b.ID()}, nil
}

// Decide checks the decider, then the booking's state, then ownership. The row
// stays locked until commit so a concurrent decision sees the final status.
func (uc *bookingUseCaseImpl) Decide(ctx context.Context, deciderID, bookingID uuid.UUID, approve bool) error {
	exists, err := uc.uow.CommandReads().UserExists(ctx, deciderID)
	if err != nil {
		return err
	}
	if !exists {
		return ErrDeciderNotFound
	}

	var decided booking.Status
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, derr := tx.Reads().BookingByIDForUpdate(ctx, bookingID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return shared.ErrBookingNotFound
			}
			return derr
		}
		if b.Status().IsTerminal() {
			return ErrBookingAlreadyDecided
		}

		it, derr := tx.Reads().ItemByID(ctx, b.ItemID())
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return shared.ErrItemNotFound
			}
			return derr
		}
		if !it.IsOwnedBy(deciderID) {
			return ErrNotItemOwner
		}

		if derr = b.Decide(approve); derr != nil {
			return ErrBookingAlreadyDecided
		}
		decided = b.Status()
		return tx.Bookings().UpdateStatus(ctx, tx.DB(), b)
	})
	if err != nil {
		return err
	}

	uc.recorder.BookingDecided(decided.String())
	uc.logger.InfoContext(ctx, "booking decided",
		slog.String("booking_id", bookingID.String()),
		slog.String("status", decided.String()))
	return nil
}
