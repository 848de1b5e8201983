package queries

import (
	"context"

	"shareit/internal/infra"
	"shareit/internal/usecase/shared"

	"github.com/google/uuid"
)

type RequestReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*RequestView, error)
	ListByRequester(ctx context.Context, requesterID uuid.UUID) ([]*RequestView, error)
	ListOthers(ctx context.Context, userID uuid.UUID, limit, offset int32) ([]*RequestView, error)
}

type RequestQueries interface {
	GetByID(ctx context.Context, userID, requestID uuid.UUID) (*RequestView, error)
	ListOwn(ctx context.Context, userID uuid.UUID) ([]*RequestView, error)
	ListOthers(ctx context.Context, userID uuid.UUID, page Page) ([]*RequestView, error)
}

type requestQueriesImpl struct {
	requests RequestReadStore
	items    ItemReadStore
	users    UserReadStore
}

func NewRequestQueries(requests RequestReadStore, items ItemReadStore, users UserReadStore) RequestQueries {
	return &requestQueriesImpl{
		requests: requests,
		items:    items,
		users:    users,
	}
}

func (q *requestQueriesImpl) GetByID(ctx context.Context, userID, requestID uuid.UUID) (*RequestView, error) {
	if err := q.requireUser(ctx, userID); err != nil {
		return nil, err
	}

	view, err := q.requests.FindByID(ctx, requestID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, shared.ErrRequestNotFound
		}
		return nil, err
	}
	if err = q.attachItems(ctx, []*RequestView{view}); err != nil {
		return nil, err
	}
	return view, nil
}

// ListOwn returns the user's requests, newest first, with the items offered for each.
func (q *requestQueriesImpl) ListOwn(ctx context.Context, userID uuid.UUID) ([]*RequestView, error) {
	if err := q.requireUser(ctx, userID); err != nil {
		return nil, err
	}

	views, err := q.requests.ListByRequester(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err = q.attachItems(ctx, views); err != nil {
		return nil, err
	}
	return views, nil
}

func (q *requestQueriesImpl) ListOthers(ctx context.Context, userID uuid.UUID, page Page) ([]*RequestView, error) {
	if err := q.requireUser(ctx, userID); err != nil {
		return nil, err
	}

	if page.Beyond() {
		return []*RequestView{}, nil
	}

	views, err := q.requests.ListOthers(ctx, userID, page.Limit(), page.Offset())
	if err != nil {
		return nil, err
	}
	if err = q.attachItems(ctx, views); err != nil {
		return nil, err
	}
	return views, nil
}

func (q *requestQueriesImpl) attachItems(ctx context.Context, views []*RequestView) error {
	if len(views) == 0 {
		return nil
	}
	ids := make([]uuid.UUID, 0, len(views))
	for _, v := range views {
		ids = append(ids, v.ID)
	}

	items, err := q.items.ListByRequests(ctx, ids)
	if err != nil {
		return err
	}
	byRequest := make(map[uuid.UUID][]*ItemView, len(views))
	for _, it := range items {
		if it.RequestID != nil {
			byRequest[*it.RequestID] = append(byRequest[*it.RequestID], it)
		}
	}
	for _, v := range views {
		v.Items = byRequest[v.ID]
		if v.Items == nil {
			v.Items = []*ItemView{}
		}
	}
	return nil
}

func (q *requestQueriesImpl) requireUser(ctx context.Context, id uuid.UUID) error {
	exists, err := q.users.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return shared.ErrUserNotFound
	}
	return nil
}
