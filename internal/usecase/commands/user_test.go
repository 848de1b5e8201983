//go:build unit

package commands_test

import (
	"context"
	"testing"

	"shareit/internal/infra"
	"shareit/internal/pkg/clock"
	"shareit/internal/pkg/errs"
	"shareit/internal/pkg/ptr"
	"shareit/internal/usecase/commands"
	"shareit/internal/usecase/shared"
	"shareit/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestUserUseCase_Create(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name    string
		req     commands.CreateUserRequest
		stored  bool
		repoErr error
		check   func(t *testing.T, err error)
	}{
		{
			name:   "success",
			req:    commands.CreateUserRequest{Name: "Alice", Email: "alice@example.com"},
			stored: true,
		},
		{
			name:    "email taken",
			req:     commands.CreateUserRequest{Name: "Alice", Email: "alice@example.com"},
			stored:  true,
			repoErr: infra.WrapRepoErr("duplicate email", nil, infra.KindDuplicateKey),
			check: func(t *testing.T, err error) {
				require.ErrorIs(t, err, commands.ErrEmailTaken)
				assert.True(t, errs.IsConflict(err))
			},
		},
		{
			name: "invalid email",
			req:  commands.CreateUserRequest{Name: "Alice", Email: "not-an-email"},
			check: func(t *testing.T, err error) {
				assert.True(t, errs.IsBadRequest(err))
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t)
			if tc.stored {
				f.users.EXPECT().Create(ctx, gomock.Any(), gomock.Any()).Return(tc.repoErr)
			}
			uc := commands.NewUserUseCase(f.uow, clock.NewMockClock(now))

			result, err := uc.Create(ctx, tc.req)

			if tc.check != nil {
				require.Error(t, err)
				tc.check(t, err)
				return
			}
			require.NoError(t, err)
			assert.NotEqual(t, uuid.Nil, result.UserID)
		})
	}
}

func TestUserUseCase_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("partial update", func(t *testing.T) {
		f := newFixture(t)
		u := builder.NewUserBuilder().BuildDomain()
		f.reads.EXPECT().UserByID(ctx, u.ID()).Return(u, nil)
		f.users.EXPECT().Update(ctx, gomock.Any(), u).Return(nil)
		uc := commands.NewUserUseCase(f.uow, clock.NewMockClock(now))

		err := uc.Update(ctx, u.ID(), commands.UpdateUserRequest{Name: ptr.Of("Renamed")})

		require.NoError(t, err)
		assert.Equal(t, "Renamed", u.Name())
	})

	t.Run("unknown user", func(t *testing.T) {
		f := newFixture(t)
		id := uuid.New()
		f.reads.EXPECT().UserByID(ctx, id).Return(nil, notFound())
		uc := commands.NewUserUseCase(f.uow, clock.NewMockClock(now))

		err := uc.Update(ctx, id, commands.UpdateUserRequest{Name: ptr.Of("Renamed")})

		require.ErrorIs(t, err, shared.ErrUserNotFound)
	})
}

func TestUserUseCase_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		f := newFixture(t)
		id := uuid.New()
		f.users.EXPECT().Delete(ctx, gomock.Any(), id).Return(nil)
		uc := commands.NewUserUseCase(f.uow, clock.NewMockClock(now))

		require.NoError(t, uc.Delete(ctx, id))
	})

	t.Run("unknown user", func(t *testing.T) {
		f := newFixture(t)
		id := uuid.New()
		f.users.EXPECT().Delete(ctx, gomock.Any(), id).Return(notFound())
		uc := commands.NewUserUseCase(f.uow, clock.NewMockClock(now))

		require.ErrorIs(t, uc.Delete(ctx, id), shared.ErrUserNotFound)
	})
}

func TestRequestUseCase_Create(t *testing.T) {
	ctx := context.Background()
	requesterID := uuid.New()

	t.Run("success", func(t *testing.T) {
		f := newFixture(t)
		f.reads.EXPECT().UserExists(ctx, requesterID).Return(true, nil)
		f.requests.EXPECT().Create(ctx, gomock.Any(), gomock.Any()).Return(nil)
		uc := commands.NewRequestUseCase(f.uow, clock.NewMockClock(now))

		result, err := uc.Create(ctx, requesterID, "Need a ladder")

		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, result.RequestID)
	})

	t.Run("unknown requester", func(t *testing.T) {
		f := newFixture(t)
		f.reads.EXPECT().UserExists(ctx, requesterID).Return(false, nil)
		uc := commands.NewRequestUseCase(f.uow, clock.NewMockClock(now))

		_, err := uc.Create(ctx, requesterID, "Need a ladder")

		require.ErrorIs(t, err, commands.ErrRequesterNotFound)
	})
}
