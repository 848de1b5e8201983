//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"shareit/internal/domain/booking"
	"shareit/internal/pkg/clock"
	"shareit/internal/usecase/queries"
	"shareit/tests/common/builder"
	queriesmock "shareit/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type itemDeps struct {
	items    *queriesmock.MockItemReadStore
	bookings *queriesmock.MockBookingReadStore
	comments *queriesmock.MockCommentReadStore
	users    *queriesmock.MockUserReadStore
}

func newItemQueries(t *testing.T) (queries.ItemQueries, itemDeps) {
	ctrl := gomock.NewController(t)
	deps := itemDeps{
		items:    queriesmock.NewMockItemReadStore(ctrl),
		bookings: queriesmock.NewMockBookingReadStore(ctrl),
		comments: queriesmock.NewMockCommentReadStore(ctrl),
		users:    queriesmock.NewMockUserReadStore(ctrl),
	}
	q := queries.NewItemQueries(deps.items, deps.bookings, deps.comments, deps.users, clock.NewMockClock(now))
	return q, deps
}

func TestItemQueries_GetByID(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()

	history := func(itemID uuid.UUID) []*booking.Booking {
		at := func(offset time.Duration, status booking.Status) *booking.Booking {
			return builder.NewBookingBuilder(now).
				WithItem(itemID, ownerID).
				WithPeriod(now.Add(offset), now.Add(offset+30*time.Minute)).
				WithStatus(status).
				BuildDomain()
		}
		return []*booking.Booking{
			at(-2*time.Hour, booking.StatusApproved),
			at(-time.Hour, booking.StatusRejected),
			at(time.Hour, booking.StatusWaiting),
		}
	}

	t.Run("owner sees last and next booking", func(t *testing.T) {
		q, deps := newItemQueries(t)
		view := builder.NewItemBuilder().WithOwner(ownerID).BuildView()
		bookings := history(view.ID)
		comment := &queries.CommentView{ID: uuid.New(), ItemID: view.ID, Text: "Nice", AuthorName: "Bob", CreatedAt: now}
		deps.users.EXPECT().Exists(ctx, ownerID).Return(true, nil)
		deps.items.EXPECT().FindByID(ctx, view.ID).Return(view, nil)
		deps.comments.EXPECT().ListByItems(ctx, []uuid.UUID{view.ID}).Return([]*queries.CommentView{comment}, nil)
		deps.bookings.EXPECT().ListByItems(ctx, []uuid.UUID{view.ID}).Return(bookings, nil)

		got, err := q.GetByID(ctx, ownerID, view.ID)

		require.NoError(t, err)
		require.NotNil(t, got.LastBooking)
		require.NotNil(t, got.NextBooking)
		assert.Equal(t, bookings[0].ID(), got.LastBooking.ID)
		assert.Equal(t, bookings[2].ID(), got.NextBooking.ID)
		assert.Equal(t, "WAITING", got.NextBooking.Status)
		assert.Equal(t, []*queries.CommentView{comment}, got.Comments)
	})

	t.Run("other viewers get comments only", func(t *testing.T) {
		q, deps := newItemQueries(t)
		viewerID := uuid.New()
		view := builder.NewItemBuilder().WithOwner(ownerID).BuildView()
		deps.users.EXPECT().Exists(ctx, viewerID).Return(true, nil)
		deps.items.EXPECT().FindByID(ctx, view.ID).Return(view, nil)
		deps.comments.EXPECT().ListByItems(ctx, []uuid.UUID{view.ID}).Return(nil, nil)
		deps.bookings.EXPECT().ListByItems(gomock.Any(), gomock.Any()).Times(0)

		got, err := q.GetByID(ctx, viewerID, view.ID)

		require.NoError(t, err)
		assert.Nil(t, got.LastBooking)
		assert.Nil(t, got.NextBooking)
		assert.NotNil(t, got.Comments)
		assert.Empty(t, got.Comments)
	})
}

func TestItemQueries_ListByOwner(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()
	page := queries.Page{Index: 0, Size: 10}
	first := builder.NewItemBuilder().WithOwner(ownerID).BuildView()
	second := builder.NewItemBuilder().WithOwner(ownerID).BuildView()
	next := builder.NewBookingBuilder(now).WithItem(second.ID, ownerID).BuildDomain()

	q, deps := newItemQueries(t)
	deps.users.EXPECT().Exists(ctx, ownerID).Return(true, nil)
	deps.items.EXPECT().ListByOwner(ctx, ownerID, int32(10), int32(0)).Return([]*queries.ItemView{first, second}, nil)
	deps.comments.EXPECT().ListByItems(ctx, []uuid.UUID{first.ID, second.ID}).Return(nil, nil)
	deps.bookings.EXPECT().ListByItems(ctx, []uuid.UUID{first.ID, second.ID}).Return([]*booking.Booking{next}, nil)

	got, err := q.ListByOwner(ctx, ownerID, page)

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Nil(t, got[0].NextBooking)
	require.NotNil(t, got[1].NextBooking)
	assert.Equal(t, next.ID(), got[1].NextBooking.ID)
}

func TestItemQueries_Search(t *testing.T) {
	ctx := context.Background()
	page := queries.Page{Index: 1, Size: 5}

	t.Run("blank text matches nothing", func(t *testing.T) {
		q, deps := newItemQueries(t)
		deps.items.EXPECT().Search(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		got, err := q.Search(ctx, "   ", page)

		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("page past addressable offsets matches nothing", func(t *testing.T) {
		q, deps := newItemQueries(t)
		deps.items.EXPECT().Search(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		got, err := q.Search(ctx, "drill", queries.Page{Index: 1 << 32, Size: 1})

		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("text is trimmed and paged", func(t *testing.T) {
		q, deps := newItemQueries(t)
		found := []*queries.ItemView{builder.NewItemBuilder().BuildView()}
		deps.items.EXPECT().Search(ctx, "drill", int32(5), int32(5)).Return(found, nil)

		got, err := q.Search(ctx, " drill ", page)

		require.NoError(t, err)
		assert.Equal(t, found, got)
	})
}
