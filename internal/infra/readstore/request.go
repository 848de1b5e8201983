package readstore

import (
	"context"

	"shareit/internal/infra"
	"shareit/internal/infra/pgsql"
	"shareit/internal/pkg/pgconv"
	"shareit/internal/usecase/queries"

	"github.com/google/uuid"
)

type RequestReadQueries interface {
	GetItemRequestByID(ctx context.Context, db pgsql.DBTX, id uuid.UUID) (pgsql.ItemRequests, error)
	ListItemRequestsByRequester(ctx context.Context, db pgsql.DBTX, requesterID uuid.UUID) ([]pgsql.ItemRequests, error)
	ListOtherItemRequests(ctx context.Context, db pgsql.DBTX, arg pgsql.ListOtherItemRequestsParams) ([]pgsql.ItemRequests, error)
}

type RequestReadStore struct {
	queries RequestReadQueries
	db      pgsql.DBTX
}

func NewRequestReadStore(queries RequestReadQueries, db pgsql.DBTX) *RequestReadStore {
	return &RequestReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *RequestReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.RequestView, error) {
	row, err := r.queries.GetItemRequestByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("item request not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get item request by id", err)
	}
	return toRequestView(row), nil
}

func (r *RequestReadStore) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	_, err := r.FindByID(ctx, id)
	switch {
	case err == nil:
		return true, nil
	case infra.IsKind(err, infra.KindNotFound):
		return false, nil
	default:
		return false, err
	}
}

func (r *RequestReadStore) ListByRequester(ctx context.Context, requesterID uuid.UUID) ([]*queries.RequestView, error) {
	rows, err := r.queries.ListItemRequestsByRequester(ctx, r.db, requesterID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list item requests by requester", err)
	}
	return toRequestViews(rows), nil
}

func (r *RequestReadStore) ListOthers(ctx context.Context, userID uuid.UUID, limit, offset int32) ([]*queries.RequestView, error) {
	rows, err := r.queries.ListOtherItemRequests(ctx, r.db, pgsql.ListOtherItemRequestsParams{
		UserID: userID,
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list other item requests", err)
	}
	return toRequestViews(rows), nil
}

func toRequestView(row pgsql.ItemRequests) *queries.RequestView {
	return &queries.RequestView{
		ID:          row.ID,
		RequesterID: row.RequesterID,
		Description: row.Description,
		CreatedAt:   pgconv.TimeFromPgtype(row.CreatedAt),
	}
}

func toRequestViews(rows []pgsql.ItemRequests) []*queries.RequestView {
	views := make([]*queries.RequestView, 0, len(rows))
	for _, row := range rows {
		views = append(views, toRequestView(row))
	}
	return views
}
