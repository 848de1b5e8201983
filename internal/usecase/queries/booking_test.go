//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"shareit/internal/domain/booking"
	"shareit/internal/infra"
	"shareit/internal/pkg/clock"
	"shareit/internal/usecase/queries"
	"shareit/internal/usecase/shared"
	"shareit/tests/common/builder"
	queriesmock "shareit/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var now = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

type bookingDeps struct {
	bookings *queriesmock.MockBookingReadStore
	users    *queriesmock.MockUserReadStore
	items    *queriesmock.MockItemReadStore
}

func newBookingQueries(t *testing.T) (queries.BookingQueries, bookingDeps) {
	ctrl := gomock.NewController(t)
	deps := bookingDeps{
		bookings: queriesmock.NewMockBookingReadStore(ctrl),
		users:    queriesmock.NewMockUserReadStore(ctrl),
		items:    queriesmock.NewMockItemReadStore(ctrl),
	}
	return queries.NewBookingQueries(deps.bookings, deps.users, deps.items, clock.NewMockClock(now)), deps
}

func TestBookingQueries_GetByID(t *testing.T) {
	ctx := context.Background()
	ownerID, bookerID := uuid.New(), uuid.New()
	view := builder.NewBookingBuilder(now).WithItem(uuid.New(), ownerID).WithBooker(bookerID).BuildView()

	testCases := []struct {
		name        string
		requesterID uuid.UUID
		storeErr    error
		errIs       error
	}{
		{name: "booker sees booking", requesterID: bookerID},
		{name: "owner sees booking", requesterID: ownerID},
		{name: "stranger gets not found", requesterID: uuid.New(), errIs: shared.ErrBookingNotFound},
		{
			name:        "missing booking",
			requesterID: bookerID,
			storeErr:    infra.WrapRepoErr("booking not found", nil, infra.KindNotFound),
			errIs:       shared.ErrBookingNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			q, deps := newBookingQueries(t)
			deps.users.EXPECT().Exists(ctx, tc.requesterID).Return(true, nil)
			if tc.storeErr != nil {
				deps.bookings.EXPECT().FindByID(ctx, view.ID).Return(nil, tc.storeErr)
			} else {
				deps.bookings.EXPECT().FindByID(ctx, view.ID).Return(view, nil)
			}

			got, err := q.GetByID(ctx, tc.requesterID, view.ID)

			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, view, got)
		})
	}

	t.Run("unknown requester", func(t *testing.T) {
		q, deps := newBookingQueries(t)
		deps.users.EXPECT().Exists(ctx, bookerID).Return(false, nil)

		_, err := q.GetByID(ctx, bookerID, view.ID)

		require.ErrorIs(t, err, shared.ErrUserNotFound)
	})
}

func TestBookingQueries_List(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	page, err := queries.PageFromOffset(20, 10)
	require.NoError(t, err)

	t.Run("booker listing passes bucket criteria and paging", func(t *testing.T) {
		q, deps := newBookingQueries(t)
		rows := []*queries.BookingView{builder.NewBookingBuilder(now).WithBooker(userID).BuildView()}
		deps.users.EXPECT().Exists(ctx, userID).Return(true, nil)
		deps.bookings.EXPECT().List(ctx, queries.BookingListFilter{
			SubjectID: userID,
			Role:      booking.RoleBooker,
			Criteria:  booking.StateCurrent.Criteria(),
			Now:       now,
			Limit:     10,
			Offset:    20,
		}).Return(rows, nil)

		got, err := q.List(ctx, userID, booking.RoleBooker, booking.StateCurrent, page)

		require.NoError(t, err)
		assert.Equal(t, rows, got)
	})

	t.Run("owner without items gets empty list without querying bookings", func(t *testing.T) {
		q, deps := newBookingQueries(t)
		deps.users.EXPECT().Exists(ctx, userID).Return(true, nil)
		deps.items.EXPECT().CountByOwner(ctx, userID).Return(int64(0), nil)
		deps.bookings.EXPECT().List(gomock.Any(), gomock.Any()).Times(0)

		got, err := q.List(ctx, userID, booking.RoleOwner, booking.StateAll, page)

		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("owner with items", func(t *testing.T) {
		q, deps := newBookingQueries(t)
		deps.users.EXPECT().Exists(ctx, userID).Return(true, nil)
		deps.items.EXPECT().CountByOwner(ctx, userID).Return(int64(2), nil)
		deps.bookings.EXPECT().List(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, f queries.BookingListFilter) ([]*queries.BookingView, error) {
				assert.Equal(t, booking.RoleOwner, f.Role)
				assert.Equal(t, booking.PredicateStatus, f.Criteria.Predicate)
				assert.Equal(t, booking.StatusWaiting, f.Criteria.Status)
				return []*queries.BookingView{}, nil
			})

		_, err := q.List(ctx, userID, booking.RoleOwner, booking.StateWaiting, page)

		require.NoError(t, err)
	})

	t.Run("page past addressable offsets is empty without querying", func(t *testing.T) {
		q, deps := newBookingQueries(t)
		far, err := queries.PageFromOffset(3_000_000_000, 1)
		require.NoError(t, err)
		deps.users.EXPECT().Exists(ctx, userID).Return(true, nil)
		deps.bookings.EXPECT().List(gomock.Any(), gomock.Any()).Times(0)

		got, err := q.List(ctx, userID, booking.RoleBooker, booking.StateAll, far)

		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("unknown user", func(t *testing.T) {
		q, deps := newBookingQueries(t)
		deps.users.EXPECT().Exists(ctx, userID).Return(false, nil)

		_, err := q.List(ctx, userID, booking.RoleBooker, booking.StateAll, page)

		require.ErrorIs(t, err, shared.ErrUserNotFound)
	})
}
