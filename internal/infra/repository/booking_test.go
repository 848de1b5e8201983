//go:build unit

package repository_test

import (
	"context"
	"testing"
	"time"

	"shareit/internal/domain/booking"
	"shareit/internal/infra"
	"shareit/internal/infra/pgsql"
	"shareit/internal/infra/repository"
	"shareit/tests/common/builder"
	repositorymock "shareit/tests/mock/repository"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var now = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

func TestBookingRepository_Create(t *testing.T) {
	ctx := context.Background()
	b := builder.NewBookingBuilder(now)

	testCases := []struct {
		name       string
		dbErr      error
		expectKind infra.RepositoryErrorKind
	}{
		{name: "success"},
		{name: "unknown item", dbErr: &pgconn.PgError{Code: "23503"}, expectKind: infra.KindForeignKeyViolated},
		{name: "database error", dbErr: assert.AnError, expectKind: infra.KindDBFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockBookingWriteQueries(ctrl)
			mockQueries.EXPECT().CreateBooking(ctx, nil, pgsql.CreateBookingParams{
				ID:        b.ID,
				ItemID:    b.ItemID,
				BookerID:  b.BookerID,
				StartTime: b.BuildInfra().StartTime,
				EndTime:   b.BuildInfra().EndTime,
				Status:    "WAITING",
				CreatedAt: b.BuildInfra().CreatedAt,
			}).Return(tc.dbErr)
			repo := repository.NewBookingRepository(mockQueries)

			err := repo.Create(ctx, nil, b.BuildDomain())

			if tc.expectKind == "" {
				require.NoError(t, err)
				return
			}
			assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
		})
	}
}

func TestBookingRepository_UpdateStatus(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name       string
		affected   int64
		dbErr      error
		expectKind infra.RepositoryErrorKind
	}{
		{name: "success", affected: 1},
		{name: "no row updated", affected: 0, expectKind: infra.KindNotFound},
		{name: "database error", dbErr: assert.AnError, expectKind: infra.KindDBFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			b := builder.NewBookingBuilder(now).WithStatus(booking.StatusApproved).BuildDomain()
			mockQueries := repositorymock.NewMockBookingWriteQueries(ctrl)
			mockQueries.EXPECT().UpdateBookingStatus(ctx, nil, pgsql.UpdateBookingStatusParams{
				ID:     b.ID(),
				Status: "APPROVED",
			}).Return(tc.affected, tc.dbErr)
			repo := repository.NewBookingRepository(mockQueries)

			err := repo.UpdateStatus(ctx, nil, b)

			if tc.expectKind == "" {
				require.NoError(t, err)
				return
			}
			assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
		})
	}
}
