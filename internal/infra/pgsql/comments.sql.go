package pgsql

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const createComment = `
INSERT INTO comments (id, item_id, author_id, text, created_at)
VALUES ($1, $2, $3, $4, $5)
`

type CreateCommentParams struct {
	ID        uuid.UUID
	ItemID    uuid.UUID
	AuthorID  uuid.UUID
	Text      string
	CreatedAt pgtype.Timestamptz
}

func (q *Queries) CreateComment(ctx context.Context, db DBTX, arg CreateCommentParams) error {
	_, err := db.Exec(ctx, createComment, arg.ID, arg.ItemID, arg.AuthorID, arg.Text, arg.CreatedAt)
	return err
}

const commentViewSelect = `SELECT c.id, c.item_id, c.text, u.name, c.created_at
FROM comments c
JOIN users u ON u.id = c.author_id
`

type CommentViewRow struct {
	ID         uuid.UUID
	ItemID     uuid.UUID
	Text       string
	AuthorName string
	CreatedAt  pgtype.Timestamptz
}

func scanCommentView(row interface{ Scan(...any) error }) (CommentViewRow, error) {
	var r CommentViewRow
	err := row.Scan(&r.ID, &r.ItemID, &r.Text, &r.AuthorName, &r.CreatedAt)
	return r, err
}

const getCommentViewByID = `
` + commentViewSelect + `WHERE c.id = $1
`

func (q *Queries) GetCommentViewByID(ctx context.Context, db DBTX, id uuid.UUID) (CommentViewRow, error) {
	return scanCommentView(db.QueryRow(ctx, getCommentViewByID, id))
}

const listCommentViewsByItems = `
` + commentViewSelect + `WHERE c.item_id = ANY($1::uuid[])
ORDER BY c.created_at, c.id
`

func (q *Queries) ListCommentViewsByItems(ctx context.Context, db DBTX, itemIds []uuid.UUID) ([]CommentViewRow, error) {
	rows, err := db.Query(ctx, listCommentViewsByItems, itemIds)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []CommentViewRow
	for rows.Next() {
		r, err := scanCommentView(rows)
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
