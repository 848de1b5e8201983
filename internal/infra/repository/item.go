package repository

import (
	"context"

	"shareit/internal/domain/item"
	"shareit/internal/infra"
	"shareit/internal/infra/pgsql"
	"shareit/internal/pkg/pgconv"
)

type ItemWriteQueries interface {
	CreateItem(ctx context.Context, db pgsql.DBTX, arg pgsql.CreateItemParams) error
	UpdateItem(ctx context.Context, db pgsql.DBTX, arg pgsql.UpdateItemParams) (int64, error)
}

type ItemRepository struct {
	queries ItemWriteQueries
}

func NewItemRepository(queries ItemWriteQueries) *ItemRepository {
	return &ItemRepository{queries: queries}
}

func (r *ItemRepository) Create(ctx context.Context, tx pgsql.DBTX, it *item.Item) error {
	params := pgsql.CreateItemParams{
		ID:          it.ID(),
		OwnerID:     it.OwnerID(),
		Name:        it.Name(),
		Description: it.Description(),
		Available:   it.Available(),
		RequestID:   pgconv.UUIDPtrToPgtype(it.RequestID()),
		CreatedAt:   pgconv.TimeToPgtype(it.CreatedAt()),
	}
	if err := r.queries.CreateItem(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to create item", err)
	}
	return nil
}

func (r *ItemRepository) Update(ctx context.Context, tx pgsql.DBTX, it *item.Item) error {
	params := pgsql.UpdateItemParams{
		ID:          it.ID(),
		Name:        it.Name(),
		Description: it.Description(),
		Available:   it.Available(),
	}
	n, err := r.queries.UpdateItem(ctx, tx, params)
	if err != nil {
		return infra.WrapRepoErr("failed to update item", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("item not found", nil, infra.KindNotFound)
	}
	return nil
}
