//go:build unit

package commands_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"shareit/internal/infra"
	"shareit/internal/usecase/shared"
	sharedmock "shareit/tests/mock/shared"

	"go.uber.org/mock/gomock"
)

// fakeUoW runs fn inline against a mocked transaction.
type fakeUoW struct {
	reads     *sharedmock.MockCommandReads
	tx        *sharedmock.MockTx
	withinErr error
}

func (u *fakeUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	if u.withinErr != nil {
		return u.withinErr
	}
	return fn(ctx, u.tx)
}

func (u *fakeUoW) CommandReads() shared.CommandReads {
	return u.reads
}

type fixture struct {
	uow      *fakeUoW
	reads    *sharedmock.MockCommandReads
	tx       *sharedmock.MockTx
	bookings *sharedmock.MockBookingRepository
	items    *sharedmock.MockItemRepository
	users    *sharedmock.MockUserRepository
	comments *sharedmock.MockCommentRepository
	requests *sharedmock.MockRequestRepository
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)
	f := &fixture{
		reads:    sharedmock.NewMockCommandReads(ctrl),
		tx:       sharedmock.NewMockTx(ctrl),
		bookings: sharedmock.NewMockBookingRepository(ctrl),
		items:    sharedmock.NewMockItemRepository(ctrl),
		users:    sharedmock.NewMockUserRepository(ctrl),
		comments: sharedmock.NewMockCommentRepository(ctrl),
		requests: sharedmock.NewMockRequestRepository(ctrl),
	}
	f.uow = &fakeUoW{reads: f.reads, tx: f.tx}

	f.tx.EXPECT().Reads().Return(f.reads).AnyTimes()
	f.tx.EXPECT().DB().Return(nil).AnyTimes()
	f.tx.EXPECT().Bookings().Return(f.bookings).AnyTimes()
	f.tx.EXPECT().Items().Return(f.items).AnyTimes()
	f.tx.EXPECT().Users().Return(f.users).AnyTimes()
	f.tx.EXPECT().Comments().Return(f.comments).AnyTimes()
	f.tx.EXPECT().Requests().Return(f.requests).AnyTimes()
	return f
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func notFound() error {
	return infra.WrapRepoErr("not found", nil, infra.KindNotFound)
}
