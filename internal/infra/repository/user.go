package repository

import (
	"context"

	"shareit/internal/domain/user"
	"shareit/internal/infra"
	"shareit/internal/infra/pgsql"
	"shareit/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type UserWriteQueries interface {
	CreateUser(ctx context.Context, db pgsql.DBTX, arg pgsql.CreateUserParams) error
	UpdateUser(ctx context.Context, db pgsql.DBTX, arg pgsql.UpdateUserParams) (int64, error)
	DeleteUser(ctx context.Context, db pgsql.DBTX, id uuid.UUID) (int64, error)
}

type UserRepository struct {
	queries UserWriteQueries
}

func NewUserRepository(queries UserWriteQueries) *UserRepository {
	return &UserRepository{queries: queries}
}

func (r *UserRepository) Create(ctx context.Context, tx pgsql.DBTX, u *user.User) error {
	params := pgsql.CreateUserParams{
		ID:        u.ID(),
		Name:      u.Name(),
		Email:     u.Email().Value(),
		CreatedAt: pgconv.TimeToPgtype(u.CreatedAt()),
	}
	if err := r.queries.CreateUser(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to create user", err)
	}
	return nil
}

func (r *UserRepository) Update(ctx context.Context, tx pgsql.DBTX, u *user.User) error {
	params := pgsql.UpdateUserParams{
		ID:    u.ID(),
		Name:  u.Name(),
		Email: u.Email().Value(),
	}
	n, err := r.queries.UpdateUser(ctx, tx, params)
	if err != nil {
		return infra.WrapRepoErr("failed to update user", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *UserRepository) Delete(ctx context.Context, tx pgsql.DBTX, id uuid.UUID) error {
	n, err := r.queries.DeleteUser(ctx, tx, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete user", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}
