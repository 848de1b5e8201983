package readstore

import (
	"context"
	"time"

	"shareit/internal/domain/booking"
	"shareit/internal/infra"
	"shareit/internal/infra/pgsql"
	"shareit/internal/pkg/pgconv"
	"shareit/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type BookingReadQueries interface {
	GetBookingByIDForUpdate(ctx context.Context, db pgsql.DBTX, id uuid.UUID) (pgsql.Bookings, error)
	ListBookingsByItem(ctx context.Context, db pgsql.DBTX, itemID uuid.UUID) ([]pgsql.Bookings, error)
	ListBookingsByItems(ctx context.Context, db pgsql.DBTX, itemIds []uuid.UUID) ([]pgsql.Bookings, error)
	GetBookingViewByID(ctx context.Context, db pgsql.DBTX, id uuid.UUID) (pgsql.BookingViewRow, error)
	ListBookingViews(ctx context.Context, db pgsql.DBTX, arg pgsql.ListBookingViewsParams) ([]pgsql.BookingViewRow, error)
}

type BookingReadStore struct {
	queries BookingReadQueries
	db      pgsql.DBTX
}

func NewBookingReadStore(queries BookingReadQueries, db pgsql.DBTX) *BookingReadStore {
	return &BookingReadStore{
		queries: queries,
		db:      db,
	}
}

// predicateParams binds each bucket predicate to the filter argument it sets.
var predicateParams = map[booking.Predicate]func(p *pgsql.ListBookingViewsParams, c booking.Criteria, now time.Time){
	booking.PredicateNone: func(*pgsql.ListBookingViewsParams, booking.Criteria, time.Time) {},
	booking.PredicateEndedBefore: func(p *pgsql.ListBookingViewsParams, _ booking.Criteria, now time.Time) {
		p.EndedBefore = pgconv.TimeToPgtype(now)
	},
	booking.PredicateStartsAfter: func(p *pgsql.ListBookingViewsParams, _ booking.Criteria, now time.Time) {
		p.StartsAfter = pgconv.TimeToPgtype(now)
	},
	booking.PredicateSpans: func(p *pgsql.ListBookingViewsParams, _ booking.Criteria, now time.Time) {
		p.SpansAt = pgconv.TimeToPgtype(now)
	},
	booking.PredicateStatus: func(p *pgsql.ListBookingViewsParams, c booking.Criteria, _ time.Time) {
		p.Status = pgtype.Text{String: c.Status.String(), Valid: true}
	},
}

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	row, err := r.queries.GetBookingViewByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get booking view by id", err)
	}
	return toBookingView(row), nil
}

func (r *BookingReadStore) List(ctx context.Context, filter queries.BookingListFilter) ([]*queries.BookingView, error) {
	params := pgsql.ListBookingViewsParams{
		SubjectID: filter.SubjectID,
		ByOwner:   filter.Role == booking.RoleOwner,
		Ascending: filter.Criteria.Ascending,
		Limit:     filter.Limit,
		Offset:    filter.Offset,
	}
	if bind, ok := predicateParams[filter.Criteria.Predicate]; ok {
		bind(&params, filter.Criteria, filter.Now)
	}

	rows, err := r.queries.ListBookingViews(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	views := make([]*queries.BookingView, 0, len(rows))
	for _, row := range rows {
		views = append(views, toBookingView(row))
	}
	return views, nil
}

func (r *BookingReadStore) ListByItems(ctx context.Context, itemIDs []uuid.UUID) ([]*booking.Booking, error) {
	rows, err := r.queries.ListBookingsByItems(ctx, r.db, itemIDs)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings by items", err)
	}
	return toBookings(rows)
}

// FindEntityByIDForUpdate must run inside a transaction to hold the row lock.
func (r *BookingReadStore) FindEntityByIDForUpdate(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	row, err := r.queries.GetBookingByIDForUpdate(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock booking", err)
	}
	return toBooking(row)
}

func (r *BookingReadStore) ListEntitiesByItem(ctx context.Context, itemID uuid.UUID) ([]*booking.Booking, error) {
	rows, err := r.queries.ListBookingsByItem(ctx, r.db, itemID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings by item", err)
	}
	return toBookings(rows)
}

func toBooking(row pgsql.Bookings) (*booking.Booking, error) {
	status, err := booking.ParseStatus(row.Status)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt booking status "+row.Status, err, infra.KindDBFailure)
	}
	return booking.Reconstruct(
		row.ID,
		row.ItemID,
		row.BookerID,
		booking.ReconstructTimeSlot(pgconv.TimeFromPgtype(row.StartTime), pgconv.TimeFromPgtype(row.EndTime)),
		status,
		pgconv.TimeFromPgtype(row.CreatedAt),
	), nil
}

func toBookings(rows []pgsql.Bookings) ([]*booking.Booking, error) {
	out := make([]*booking.Booking, 0, len(rows))
	for _, row := range rows {
		b, err := toBooking(row)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, nil
}

func toBookingView(row pgsql.BookingViewRow) *queries.BookingView {
	return &queries.BookingView{
		ID:        row.ID,
		Start:     pgconv.TimeFromPgtype(row.StartTime),
		End:       pgconv.TimeFromPgtype(row.EndTime),
		Status:    row.Status,
		CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
		Item: queries.ItemRef{
			ID:      row.ItemID,
			Name:    row.ItemName,
			OwnerID: row.ItemOwnerID,
		},
		Booker: queries.UserRef{
			ID:   row.BookerID,
			Name: row.BookerName,
		},
	}
}
