package readstore

import (
	"context"

	"shareit/internal/domain/user"
	"shareit/internal/infra"
	"shareit/internal/infra/pgsql"
	"shareit/internal/pkg/pgconv"
	"shareit/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserReadQueries interface {
	GetUserByID(ctx context.Context, db pgsql.DBTX, id uuid.UUID) (pgsql.Users, error)
	ListUsers(ctx context.Context, db pgsql.DBTX) ([]pgsql.Users, error)
	UserExists(ctx context.Context, db pgsql.DBTX, id uuid.UUID) (bool, error)
}

type UserReadStore struct {
	queries UserReadQueries
	db      pgsql.DBTX
}

func NewUserReadStore(queries UserReadQueries, db pgsql.DBTX) *UserReadStore {
	return &UserReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.UserView, error) {
	row, err := r.getUser(ctx, id)
	if err != nil {
		return nil, err
	}
	return toUserView(row), nil
}

func (r *UserReadStore) FindEntityByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	row, err := r.getUser(ctx, id)
	if err != nil {
		return nil, err
	}
	email, err := user.NewEmail(row.Email)
	if err != nil {
		return nil, infra.WrapRepoErr("stored email is invalid", err)
	}
	return user.Reconstruct(row.ID, row.Name, email, pgconv.TimeFromPgtype(row.CreatedAt)), nil
}

func (r *UserReadStore) List(ctx context.Context) ([]*queries.UserView, error) {
	rows, err := r.queries.ListUsers(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list users", err)
	}
	views := make([]*queries.UserView, 0, len(rows))
	for _, row := range rows {
		views = append(views, toUserView(row))
	}
	return views, nil
}

func (r *UserReadStore) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	ok, err := r.queries.UserExists(ctx, r.db, id)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check user existence", err)
	}
	return ok, nil
}

func (r *UserReadStore) getUser(ctx context.Context, id uuid.UUID) (pgsql.Users, error) {
	row, err := r.queries.GetUserByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return pgsql.Users{}, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return pgsql.Users{}, infra.WrapRepoErr("failed to get user by id", err)
	}
	return row, nil
}

func toUserView(row pgsql.Users) *queries.UserView {
	return &queries.UserView{
		ID:        row.ID,
		Name:      row.Name,
		Email:     row.Email,
		CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
	}
}
