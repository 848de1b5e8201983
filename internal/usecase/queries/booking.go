package queries

import (
	"context"
	"time"

	"shareit/internal/domain/booking"
	"shareit/internal/infra"
	"shareit/internal/pkg/clock"
	"shareit/internal/usecase/shared"

	"github.com/google/uuid"
)

// BookingListFilter is one page of a booker's or owner's bookings in a bucket.
type BookingListFilter struct {
	SubjectID uuid.UUID
	Role      booking.Role
	Criteria  booking.Criteria
	Now       time.Time
	Limit     int32
	Offset    int32
}

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	List(ctx context.Context, filter BookingListFilter) ([]*BookingView, error)
	// ListByItems returns bookings of the given items sorted ascending by start.
	ListByItems(ctx context.Context, itemIDs []uuid.UUID) ([]*booking.Booking, error)
}

type BookingQueries interface {
	GetByID(ctx context.Context, requesterID, bookingID uuid.UUID) (*BookingView, error)
	List(ctx context.Context, subjectID uuid.UUID, role booking.Role, state booking.State, page Page) ([]*BookingView, error)
}

type bookingQueriesImpl struct {
	bookings BookingReadStore
	users    UserReadStore
	items    ItemReadStore
	clock    clock.Clock
}

func NewBookingQueries(bookings BookingReadStore, users UserReadStore, items ItemReadStore, clk clock.Clock) BookingQueries {
	return &bookingQueriesImpl{
		bookings: bookings,
		users:    users,
		items:    items,
		clock:    clk,
	}
}

// GetByID shows a booking only to its booker and the item owner.
func (q *bookingQueriesImpl) GetByID(ctx context.Context, requesterID, bookingID uuid.UUID) (*BookingView, error) {
	if err := q.requireUser(ctx, requesterID); err != nil {
		return nil, err
	}

	view, err := q.bookings.FindByID(ctx, bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, shared.ErrBookingNotFound
		}
		return nil, err
	}
	if view.Booker.ID != requesterID && view.Item.OwnerID != requesterID {
		return nil, shared.ErrBookingNotFound
	}
	return view, nil
}

func (q *bookingQueriesImpl) List(ctx context.Context, subjectID uuid.UUID, role booking.Role, state booking.State, page Page) ([]*BookingView, error) {
	if err := q.requireUser(ctx, subjectID); err != nil {
		return nil, err
	}

	if role == booking.RoleOwner {
		owned, err := q.items.CountByOwner(ctx, subjectID)
		if err != nil {
			return nil, err
		}
		if owned == 0 {
			return []*BookingView{}, nil
		}
	}
	if page.Beyond() {
		return []*BookingView{}, nil
	}

	return q.bookings.List(ctx, BookingListFilter{
		SubjectID: subjectID,
		Role:      role,
		Criteria:  state.Criteria(),
		Now:       q.clock.Now(),
		Limit:     page.Limit(),
		Offset:    page.Offset(),
	})
}

func (q *bookingQueriesImpl) requireUser(ctx context.Context, id uuid.UUID) error {
	exists, err := q.users.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return shared.ErrUserNotFound
	}
	return nil
}
