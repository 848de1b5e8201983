package pgsql

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const bookingColumns = `id, item_id, booker_id, start_time, end_time, status, created_at`

func scanBooking(row interface{ Scan(...any) error }) (Bookings, error) {
	var b Bookings
	err := row.Scan(
		&b.ID,
		&b.ItemID,
		&b.BookerID,
		&b.StartTime,
		&b.EndTime,
		&b.Status,
		&b.CreatedAt,
	)
	return b, err
}

func collectBookings(ctx context.Context, db DBTX, query string, args ...interface{}) ([]Bookings, error) {
	rows, err := db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Bookings
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const createBooking = `
INSERT INTO bookings (id, item_id, booker_id, start_time, end_time, status, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
`

type CreateBookingParams struct {
	ID        uuid.UUID
	ItemID    uuid.UUID
	BookerID  uuid.UUID
	StartTime pgtype.Timestamptz
	EndTime   pgtype.Timestamptz
	Status    string
	CreatedAt pgtype.Timestamptz
}

func (q *Queries) CreateBooking(ctx context.Context, db DBTX, arg CreateBookingParams) error {
	_, err := db.Exec(ctx, createBooking,
		arg.ID,
		arg.ItemID,
		arg.BookerID,
		arg.StartTime,
		arg.EndTime,
		arg.Status,
		arg.CreatedAt,
	)
	return err
}

const updateBookingStatus = `
UPDATE bookings SET status = $2 WHERE id = $1
`

type UpdateBookingStatusParams struct {
	ID     uuid.UUID
	Status string
}

func (q *Queries) UpdateBookingStatus(ctx context.Context, db DBTX, arg UpdateBookingStatusParams) (int64, error) {
	result, err := db.Exec(ctx, updateBookingStatus, arg.ID, arg.Status)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const getBookingByIDForUpdate = `
SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1 FOR UPDATE
`

func (q *Queries) GetBookingByIDForUpdate(ctx context.Context, db DBTX, id uuid.UUID) (Bookings, error) {
	return scanBooking(db.QueryRow(ctx, getBookingByIDForUpdate, id))
}

const listBookingsByItem = `
SELECT ` + bookingColumns + ` FROM bookings
WHERE item_id = $1
ORDER BY start_time, id
`

func (q *Queries) ListBookingsByItem(ctx context.Context, db DBTX, itemID uuid.UUID) ([]Bookings, error) {
	return collectBookings(ctx, db, listBookingsByItem, itemID)
}

const listBookingsByItems = `
SELECT ` + bookingColumns + ` FROM bookings
WHERE item_id = ANY($1::uuid[])
ORDER BY start_time, id
`

func (q *Queries) ListBookingsByItems(ctx context.Context, db DBTX, itemIds []uuid.UUID) ([]Bookings, error) {
	return collectBookings(ctx, db, listBookingsByItems, itemIds)
}

const bookingViewSelect = `SELECT b.id, b.start_time, b.end_time, b.status, b.created_at,
       i.id, i.name, i.owner_id,
       u.id, u.name
FROM bookings b
JOIN items i ON i.id = b.item_id
JOIN users u ON u.id = b.booker_id
`

type BookingViewRow struct {
	ID          uuid.UUID
	StartTime   pgtype.Timestamptz
	EndTime     pgtype.Timestamptz
	Status      string
	CreatedAt   pgtype.Timestamptz
	ItemID      uuid.UUID
	ItemName    string
	ItemOwnerID uuid.UUID
	BookerID    uuid.UUID
	BookerName  string
}

func scanBookingView(row interface{ Scan(...any) error }) (BookingViewRow, error) {
	var r BookingViewRow
	err := row.Scan(
		&r.ID,
		&r.StartTime,
		&r.EndTime,
		&r.Status,
		&r.CreatedAt,
		&r.ItemID,
		&r.ItemName,
		&r.ItemOwnerID,
		&r.BookerID,
		&r.BookerName,
	)
	return r, err
}

const getBookingViewByID = `
` + bookingViewSelect + `WHERE b.id = $1
`

func (q *Queries) GetBookingViewByID(ctx context.Context, db DBTX, id uuid.UUID) (BookingViewRow, error) {
	return scanBookingView(db.QueryRow(ctx, getBookingViewByID, id))
}

// Null filter arguments disable the matching condition. Ascending flips the
// created_at order; id breaks ties.
const listBookingViews = `
` + bookingViewSelect + `WHERE CASE WHEN $2::bool THEN i.owner_id = $1 ELSE b.booker_id = $1 END
  AND ($3::timestamptz IS NULL OR b.end_time < $3::timestamptz)
  AND ($4::timestamptz IS NULL OR b.start_time > $4::timestamptz)
  AND ($5::timestamptz IS NULL OR (b.start_time <= $5::timestamptz AND b.end_time >= $5::timestamptz))
  AND ($6::text IS NULL OR b.status = $6::text)
ORDER BY
  CASE WHEN $7::bool THEN b.created_at END ASC,
  CASE WHEN NOT $7::bool THEN b.created_at END DESC,
  b.id
LIMIT $8 OFFSET $9
`

type ListBookingViewsParams struct {
	SubjectID   uuid.UUID
	ByOwner     bool
	EndedBefore pgtype.Timestamptz
	StartsAfter pgtype.Timestamptz
	SpansAt     pgtype.Timestamptz
	Status      pgtype.Text
	Ascending   bool
	Limit       int32
	Offset      int32
}

func (q *Queries) ListBookingViews(ctx context.Context, db DBTX, arg ListBookingViewsParams) ([]BookingViewRow, error) {
	rows, err := db.Query(ctx, listBookingViews,
		arg.SubjectID,
		arg.ByOwner,
		arg.EndedBefore,
		arg.StartsAfter,
		arg.SpansAt,
		arg.Status,
		arg.Ascending,
		arg.Limit,
		arg.Offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []BookingViewRow
	for rows.Next() {
		r, err := scanBookingView(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
