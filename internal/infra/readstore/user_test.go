//go:build unit

package readstore_test

import (
	"context"
	"testing"

	"shareit/internal/infra"
	"shareit/internal/infra/pgsql"
	"shareit/internal/infra/readstore"
	"shareit/tests/common/builder"
	readstoremock "shareit/tests/mock/readstore"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestUserReadStore_FindByID(t *testing.T) {
	ctx := context.Background()
	u := builder.NewUserBuilder()

	t.Run("success: user found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockUserReadQueries(ctrl)
		store := readstore.NewUserReadStore(mockQueries, &mockDBTX{})
		mockQueries.EXPECT().GetUserByID(ctx, gomock.Any(), u.ID).Return(u.BuildInfra(), nil)

		got, err := store.FindByID(ctx, u.ID)

		require.NoError(t, err)
		assert.Equal(t, u.BuildView(), got)
	})

	t.Run("error: user not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockUserReadQueries(ctrl)
		store := readstore.NewUserReadStore(mockQueries, &mockDBTX{})
		mockQueries.EXPECT().GetUserByID(ctx, gomock.Any(), u.ID).Return(pgsql.Users{}, pgx.ErrNoRows)

		got, err := store.FindByID(ctx, u.ID)

		assert.True(t, infra.IsKind(err, infra.KindNotFound))
		assert.Nil(t, got)
	})
}

func TestUserReadStore_Exists(t *testing.T) {
	ctx := context.Background()
	u := builder.NewUserBuilder()

	t.Run("exists", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockUserReadQueries(ctrl)
		store := readstore.NewUserReadStore(mockQueries, &mockDBTX{})
		mockQueries.EXPECT().UserExists(ctx, gomock.Any(), u.ID).Return(true, nil)

		ok, err := store.Exists(ctx, u.ID)

		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("error: database error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockUserReadQueries(ctrl)
		store := readstore.NewUserReadStore(mockQueries, &mockDBTX{})
		mockQueries.EXPECT().UserExists(ctx, gomock.Any(), u.ID).Return(false, errDBConnectionLost)

		ok, err := store.Exists(ctx, u.ID)

		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
		assert.False(t, ok)
	})
}
