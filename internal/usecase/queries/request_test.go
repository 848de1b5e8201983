//go:build unit

package queries_test

import (
	"context"
	"testing"

	"shareit/internal/infra"
	"shareit/internal/usecase/queries"
	"shareit/internal/usecase/shared"
	"shareit/tests/common/builder"
	queriesmock "shareit/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestRequestQueries(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	setup := func(t *testing.T) (queries.RequestQueries, *queriesmock.MockRequestReadStore, *queriesmock.MockItemReadStore, *queriesmock.MockUserReadStore) {
		ctrl := gomock.NewController(t)
		requests := queriesmock.NewMockRequestReadStore(ctrl)
		items := queriesmock.NewMockItemReadStore(ctrl)
		users := queriesmock.NewMockUserReadStore(ctrl)
		return queries.NewRequestQueries(requests, items, users), requests, items, users
	}

	t.Run("items are grouped under their request", func(t *testing.T) {
		q, requests, items, users := setup(t)
		r1 := &queries.RequestView{ID: uuid.New(), RequesterID: userID, Description: "Ladder"}
		r2 := &queries.RequestView{ID: uuid.New(), RequesterID: userID, Description: "Tent"}
		offered := builder.NewItemBuilder().WithRequest(r1.ID).BuildView()
		users.EXPECT().Exists(ctx, userID).Return(true, nil)
		requests.EXPECT().ListByRequester(ctx, userID).Return([]*queries.RequestView{r1, r2}, nil)
		items.EXPECT().ListByRequests(ctx, []uuid.UUID{r1.ID, r2.ID}).Return([]*queries.ItemView{offered}, nil)

		got, err := q.ListOwn(ctx, userID)

		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, []*queries.ItemView{offered}, got[0].Items)
		assert.NotNil(t, got[1].Items)
		assert.Empty(t, got[1].Items)
	})

	t.Run("others are paged", func(t *testing.T) {
		q, requests, _, users := setup(t)
		users.EXPECT().Exists(ctx, userID).Return(true, nil)
		requests.EXPECT().ListOthers(ctx, userID, int32(2), int32(4)).Return([]*queries.RequestView{}, nil)

		got, err := q.ListOthers(ctx, userID, queries.Page{Index: 2, Size: 2})

		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("page past addressable offsets is empty", func(t *testing.T) {
		q, requests, _, users := setup(t)
		users.EXPECT().Exists(ctx, userID).Return(true, nil)
		requests.EXPECT().ListOthers(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		got, err := q.ListOthers(ctx, userID, queries.Page{Index: 1 << 31, Size: 2})

		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("missing request", func(t *testing.T) {
		q, requests, _, users := setup(t)
		id := uuid.New()
		users.EXPECT().Exists(ctx, userID).Return(true, nil)
		requests.EXPECT().FindByID(ctx, id).Return(nil, infra.WrapRepoErr("request not found", nil, infra.KindNotFound))

		_, err := q.GetByID(ctx, userID, id)

		require.ErrorIs(t, err, shared.ErrRequestNotFound)
	})
}
