package pgsql

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const itemRequestColumns = `id, requester_id, description, created_at`

func collectItemRequests(ctx context.Context, db DBTX, query string, args ...interface{}) ([]ItemRequests, error) {
	rows, err := db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []ItemRequests
	for rows.Next() {
		var i ItemRequests
		if err := rows.Scan(&i.ID, &i.RequesterID, &i.Description, &i.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const createItemRequest = `
INSERT INTO item_requests (id, requester_id, description, created_at)
VALUES ($1, $2, $3, $4)
`

type CreateItemRequestParams struct {
	ID          uuid.UUID
	RequesterID uuid.UUID
	Description string
	CreatedAt   pgtype.Timestamptz
}

func (q *Queries) CreateItemRequest(ctx context.Context, db DBTX, arg CreateItemRequestParams) error {
	_, err := db.Exec(ctx, createItemRequest, arg.ID, arg.RequesterID, arg.Description, arg.CreatedAt)
	return err
}

const getItemRequestByID = `
SELECT ` + itemRequestColumns + ` FROM item_requests WHERE id = $1
`

func (q *Queries) GetItemRequestByID(ctx context.Context, db DBTX, id uuid.UUID) (ItemRequests, error) {
	row := db.QueryRow(ctx, getItemRequestByID, id)
	var i ItemRequests
	err := row.Scan(&i.ID, &i.RequesterID, &i.Description, &i.CreatedAt)
	return i, err
}

const listItemRequestsByRequester = `
SELECT ` + itemRequestColumns + ` FROM item_requests
WHERE requester_id = $1
ORDER BY created_at DESC, id
`

func (q *Queries) ListItemRequestsByRequester(ctx context.Context, db DBTX, requesterID uuid.UUID) ([]ItemRequests, error) {
	return collectItemRequests(ctx, db, listItemRequestsByRequester, requesterID)
}

const listOtherItemRequests = `
SELECT ` + itemRequestColumns + ` FROM item_requests
WHERE requester_id <> $1
ORDER BY created_at DESC, id
LIMIT $2 OFFSET $3
`

type ListOtherItemRequestsParams struct {
	UserID uuid.UUID
	Limit  int32
	Offset int32
}

func (q *Queries) ListOtherItemRequests(ctx context.Context, db DBTX, arg ListOtherItemRequestsParams) ([]ItemRequests, error) {
	return collectItemRequests(ctx, db, listOtherItemRequests, arg.UserID, arg.Limit, arg.Offset)
}
