//go:build unit

package commands_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"shareit/internal/domain/booking"
	"shareit/internal/pkg/clock"
	"shareit/internal/pkg/errs"
	"shareit/internal/pkg/metrics"
	"shareit/internal/usecase/commands"
	"shareit/internal/usecase/shared"
	"shareit/tests/common/builder"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCommentUseCase_Add(t *testing.T) {
	ctx := context.Background()
	authorID := uuid.New()
	it := builder.NewItemBuilder().BuildDomain()

	finished := builder.NewBookingBuilder(now).
		WithItem(it.ID(), it.OwnerID()).
		WithBooker(authorID).
		WithPeriod(now.Add(-48*time.Hour), now.Add(-24*time.Hour)).
		WithStatus(booking.StatusApproved).
		BuildDomain()
	ongoing := builder.NewBookingBuilder(now).
		WithItem(it.ID(), it.OwnerID()).
		WithBooker(authorID).
		WithPeriod(now.Add(-time.Hour), now.Add(time.Hour)).
		WithStatus(booking.StatusApproved).
		BuildDomain()

	testCases := []struct {
		name  string
		text  string
		setup func(f *fixture)
		errIs error
		check func(t *testing.T, err error)
	}{
		{
			name: "success",
			text: "Worked perfectly",
			setup: func(f *fixture) {
				f.reads.EXPECT().UserExists(ctx, authorID).Return(true, nil)
				f.reads.EXPECT().ItemByID(ctx, it.ID()).Return(it, nil)
				f.reads.EXPECT().BookingsByItem(ctx, it.ID()).Return([]*booking.Booking{finished}, nil)
				f.comments.EXPECT().Create(ctx, gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "unknown author",
			text: "Worked perfectly",
			setup: func(f *fixture) {
				f.reads.EXPECT().UserExists(ctx, authorID).Return(false, nil)
			},
			errIs: commands.ErrAuthorNotFound,
		},
		{
			name: "unknown item",
			text: "Worked perfectly",
			setup: func(f *fixture) {
				f.reads.EXPECT().UserExists(ctx, authorID).Return(true, nil)
				f.reads.EXPECT().ItemByID(ctx, it.ID()).Return(nil, notFound())
			},
			errIs: shared.ErrItemNotFound,
		},
		{
			name: "blank text",
			text: "   ",
			setup: func(f *fixture) {
				f.reads.EXPECT().UserExists(ctx, authorID).Return(true, nil)
				f.reads.EXPECT().ItemByID(ctx, it.ID()).Return(it, nil)
			},
			check: func(t *testing.T, err error) {
				assert.True(t, errs.IsBadRequest(err))
			},
		},
		{
			name: "booking not finished yet",
			text: "Worked perfectly",
			setup: func(f *fixture) {
				f.reads.EXPECT().UserExists(ctx, authorID).Return(true, nil)
				f.reads.EXPECT().ItemByID(ctx, it.ID()).Return(it, nil)
				f.reads.EXPECT().BookingsByItem(ctx, it.ID()).Return([]*booking.Booking{ongoing}, nil)
			},
			errIs: commands.ErrCommentNotAllowed,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t)
			tc.setup(f)
			reg := prometheus.NewRegistry()
			uc := commands.NewCommentUseCase(f.uow, clock.NewMockClock(now), metrics.New(reg, "test"))

			result, err := uc.Add(ctx, authorID, it.ID(), tc.text)

			expected := "1"
			switch {
			case tc.errIs != nil:
				require.ErrorIs(t, err, tc.errIs)
				expected = "0"
			case tc.check != nil:
				require.Error(t, err)
				tc.check(t, err)
				expected = "0"
			default:
				require.NoError(t, err)
				assert.NotEqual(t, uuid.Nil, result.CommentID)
			}
			metric := `
# HELP test_comment_added_total Count of comments left on items.
# TYPE test_comment_added_total counter
test_comment_added_total ` + expected + "\n"
			assert.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(metric), "test_comment_added_total"))
		})
	}
}
