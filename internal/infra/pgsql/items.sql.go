package pgsql

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const itemColumns = `id, owner_id, name, description, available, request_id, created_at`

func scanItem(row interface{ Scan(...any) error }) (Items, error) {
	var i Items
	err := row.Scan(
		&i.ID,
		&i.OwnerID,
		&i.Name,
		&i.Description,
		&i.Available,
		&i.RequestID,
		&i.CreatedAt,
	)
	return i, err
}

func collectItems(ctx context.Context, db DBTX, query string, args ...interface{}) ([]Items, error) {
	rows, err := db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Items
	for rows.Next() {
		i, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const createItem = `
INSERT INTO items (id, owner_id, name, description, available, request_id, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
`

type CreateItemParams struct {
	ID          uuid.UUID
	OwnerID     uuid.UUID
	Name        string
	Description string
	Available   bool
	RequestID   pgtype.UUID
	CreatedAt   pgtype.Timestamptz
}

func (q *Queries) CreateItem(ctx context.Context, db DBTX, arg CreateItemParams) error {
	_, err := db.Exec(ctx, createItem,
		arg.ID,
		arg.OwnerID,
		arg.Name,
		arg.Description,
		arg.Available,
		arg.RequestID,
		arg.CreatedAt,
	)
	return err
}

const updateItem = `
UPDATE items SET name = $2, description = $3, available = $4 WHERE id = $1
`

type UpdateItemParams struct {
	ID          uuid.UUID
	Name        string
	Description string
	Available   bool
}

func (q *Queries) UpdateItem(ctx context.Context, db DBTX, arg UpdateItemParams) (int64, error) {
	result, err := db.Exec(ctx, updateItem, arg.ID, arg.Name, arg.Description, arg.Available)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const getItemByID = `
SELECT ` + itemColumns + ` FROM items WHERE id = $1
`

func (q *Queries) GetItemByID(ctx context.Context, db DBTX, id uuid.UUID) (Items, error) {
	return scanItem(db.QueryRow(ctx, getItemByID, id))
}

const listItemsByOwner = `
SELECT ` + itemColumns + ` FROM items
WHERE owner_id = $1
ORDER BY created_at, id
LIMIT $2 OFFSET $3
`

type ListItemsByOwnerParams struct {
	OwnerID uuid.UUID
	Limit   int32
	Offset  int32
}

func (q *Queries) ListItemsByOwner(ctx context.Context, db DBTX, arg ListItemsByOwnerParams) ([]Items, error) {
	return collectItems(ctx, db, listItemsByOwner, arg.OwnerID, arg.Limit, arg.Offset)
}

const searchItems = `
SELECT ` + itemColumns + ` FROM items
WHERE available
  AND (name ILIKE '%' || $1::text || '%' OR description ILIKE '%' || $1::text || '%')
ORDER BY created_at, id
LIMIT $2 OFFSET $3
`

type SearchItemsParams struct {
	Text   string
	Limit  int32
	Offset int32
}

func (q *Queries) SearchItems(ctx context.Context, db DBTX, arg SearchItemsParams) ([]Items, error) {
	return collectItems(ctx, db, searchItems, arg.Text, arg.Limit, arg.Offset)
}

const countItemsByOwner = `
SELECT count(*) FROM items WHERE owner_id = $1
`

func (q *Queries) CountItemsByOwner(ctx context.Context, db DBTX, ownerID uuid.UUID) (int64, error) {
	row := db.QueryRow(ctx, countItemsByOwner, ownerID)
	var count int64
	err := row.Scan(&count)
	return count, err
}

const listItemsByRequestIDs = `
SELECT ` + itemColumns + ` FROM items
WHERE request_id = ANY($1::uuid[])
ORDER BY created_at, id
`

func (q *Queries) ListItemsByRequestIDs(ctx context.Context, db DBTX, requestIds []uuid.UUID) ([]Items, error) {
	return collectItems(ctx, db, listItemsByRequestIDs, requestIds)
}
