package readstore

import (
	"context"

	"shareit/internal/domain/item"
	"shareit/internal/infra"
	"shareit/internal/infra/pgsql"
	"shareit/internal/pkg/pgconv"
	"shareit/internal/usecase/queries"

	"github.com/google/uuid"
)

type ItemReadQueries interface {
	GetItemByID(ctx context.Context, db pgsql.DBTX, id uuid.UUID) (pgsql.Items, error)
	ListItemsByOwner(ctx context.Context, db pgsql.DBTX, arg pgsql.ListItemsByOwnerParams) ([]pgsql.Items, error)
	SearchItems(ctx context.Context, db pgsql.DBTX, arg pgsql.SearchItemsParams) ([]pgsql.Items, error)
	CountItemsByOwner(ctx context.Context, db pgsql.DBTX, ownerID uuid.UUID) (int64, error)
	ListItemsByRequestIDs(ctx context.Context, db pgsql.DBTX, requestIds []uuid.UUID) ([]pgsql.Items, error)
}

type ItemReadStore struct {
	queries ItemReadQueries
	db      pgsql.DBTX
}

func NewItemReadStore(queries ItemReadQueries, db pgsql.DBTX) *ItemReadStore {
	return &ItemReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ItemReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ItemView, error) {
	row, err := r.getItem(ctx, id)
	if err != nil {
		return nil, err
	}
	return toItemView(row), nil
}

func (r *ItemReadStore) FindEntityByID(ctx context.Context, id uuid.UUID) (*item.Item, error) {
	row, err := r.getItem(ctx, id)
	if err != nil {
		return nil, err
	}
	return item.Reconstruct(
		row.ID,
		row.OwnerID,
		row.Name,
		row.Description,
		row.Available,
		pgconv.UUIDPtrFromPgtype(row.RequestID),
		pgconv.TimeFromPgtype(row.CreatedAt),
	), nil
}

func (r *ItemReadStore) ListByOwner(ctx context.Context, ownerID uuid.UUID, limit, offset int32) ([]*queries.ItemView, error) {
	rows, err := r.queries.ListItemsByOwner(ctx, r.db, pgsql.ListItemsByOwnerParams{
		OwnerID: ownerID,
		Limit:   limit,
		Offset:  offset,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list items by owner", err)
	}
	return toItemViews(rows), nil
}

func (r *ItemReadStore) Search(ctx context.Context, text string, limit, offset int32) ([]*queries.ItemView, error) {
	rows, err := r.queries.SearchItems(ctx, r.db, pgsql.SearchItemsParams{
		Text:   text,
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to search items", err)
	}
	return toItemViews(rows), nil
}

func (r *ItemReadStore) CountByOwner(ctx context.Context, ownerID uuid.UUID) (int64, error) {
	n, err := r.queries.CountItemsByOwner(ctx, r.db, ownerID)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count items by owner", err)
	}
	return n, nil
}

func (r *ItemReadStore) ListByRequests(ctx context.Context, requestIDs []uuid.UUID) ([]*queries.ItemView, error) {
	rows, err := r.queries.ListItemsByRequestIDs(ctx, r.db, requestIDs)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list items by requests", err)
	}
	return toItemViews(rows), nil
}

func (r *ItemReadStore) getItem(ctx context.Context, id uuid.UUID) (pgsql.Items, error) {
	row, err := r.queries.GetItemByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return pgsql.Items{}, infra.WrapRepoErr("item not found", err, infra.KindNotFound)
		}
		return pgsql.Items{}, infra.WrapRepoErr("failed to get item by id", err)
	}
	return row, nil
}

func toItemView(row pgsql.Items) *queries.ItemView {
	return &queries.ItemView{
		ID:          row.ID,
		OwnerID:     row.OwnerID,
		Name:        row.Name,
		Description: row.Description,
		Available:   row.Available,
		RequestID:   pgconv.UUIDPtrFromPgtype(row.RequestID),
		CreatedAt:   pgconv.TimeFromPgtype(row.CreatedAt),
	}
}

func toItemViews(rows []pgsql.Items) []*queries.ItemView {
	views := make([]*queries.ItemView, 0, len(rows))
	for _, row := range rows {
		views = append(views, toItemView(row))
	}
	return views
}
