package repository

import (
	"context"

	"shareit/internal/domain/comment"
	"shareit/internal/infra"
	"shareit/internal/infra/pgsql"
	"shareit/internal/pkg/pgconv"
)

type CommentWriteQueries interface {
	CreateComment(ctx context.Context, db pgsql.DBTX, arg pgsql.CreateCommentParams) error
}

type CommentRepository struct {
	queries CommentWriteQueries
}

func NewCommentRepository(queries CommentWriteQueries) *CommentRepository {
	return &CommentRepository{queries: queries}
}

func (r *CommentRepository) Create(ctx context.Context, tx pgsql.DBTX, c *comment.Comment) error {
	params := pgsql.CreateCommentParams{
		ID:        c.ID(),
		ItemID:    c.ItemID(),
		AuthorID:  c.AuthorID(),
		Text:      c.Text(),
		CreatedAt: pgconv.TimeToPgtype(c.CreatedAt()),
	}
	if err := r.queries.CreateComment(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to create comment", err)
	}
	return nil
}
