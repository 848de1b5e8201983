package repository

import (
	"context"

	"shareit/internal/domain/request"
	"shareit/internal/infra"
	"shareit/internal/infra/pgsql"
	"shareit/internal/pkg/pgconv"
)

type RequestWriteQueries interface {
	CreateItemRequest(ctx context.Context, db pgsql.DBTX, arg pgsql.CreateItemRequestParams) error
}

type RequestRepository struct {
	queries RequestWriteQueries
}

func NewRequestRepository(queries RequestWriteQueries) *RequestRepository {
	return &RequestRepository{queries: queries}
}

func (r *RequestRepository) Create(ctx context.Context, tx pgsql.DBTX, req *request.ItemRequest) error {
	params := pgsql.CreateItemRequestParams{
		ID:          req.ID(),
		RequesterID: req.RequesterID(),
		Description: req.Description(),
		CreatedAt:   pgconv.TimeToPgtype(req.CreatedAt()),
	}
	if err := r.queries.CreateItemRequest(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to create item request", err)
	}
	return nil
}
