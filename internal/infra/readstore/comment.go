package readstore

import (
	"context"

	"shareit/internal/infra"
	"shareit/internal/infra/pgsql"
	"shareit/internal/pkg/pgconv"
	"shareit/internal/usecase/queries"

	"github.com/google/uuid"
)

type CommentReadQueries interface {
	GetCommentViewByID(ctx context.Context, db pgsql.DBTX, id uuid.UUID) (pgsql.CommentViewRow, error)
	ListCommentViewsByItems(ctx context.Context, db pgsql.DBTX, itemIds []uuid.UUID) ([]pgsql.CommentViewRow, error)
}

type CommentReadStore struct {
	queries CommentReadQueries
	db      pgsql.DBTX
}

func NewCommentReadStore(queries CommentReadQueries, db pgsql.DBTX) *CommentReadStore {
	return &CommentReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *CommentReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.CommentView, error) {
	row, err := r.queries.GetCommentViewByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("comment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get comment by id", err)
	}
	return toCommentView(row), nil
}

func (r *CommentReadStore) ListByItems(ctx context.Context, itemIDs []uuid.UUID) ([]*queries.CommentView, error) {
	rows, err := r.queries.ListCommentViewsByItems(ctx, r.db, itemIDs)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list comments by items", err)
	}
	views := make([]*queries.CommentView, 0, len(rows))
	for _, row := range rows {
		views = append(views, toCommentView(row))
	}
	return views, nil
}

func toCommentView(row pgsql.CommentViewRow) *queries.CommentView {
	return &queries.CommentView{
		ID:         row.ID,
		ItemID:     row.ItemID,
		Text:       row.Text,
		AuthorName: row.AuthorName,
		CreatedAt:  pgconv.TimeFromPgtype(row.CreatedAt),
	}
}
