package commands

import (
	"context"

	"shareit/internal/domain/user"
	"shareit/internal/infra"
	"shareit/internal/pkg/clock"
	"shareit/internal/pkg/errs"
	"shareit/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrEmailTaken = errs.NewConflict("email already registered")

type CreateUserRequest struct {
	Name  string
	Email string
}

type UpdateUserRequest struct {
	Name  *string
	Email *string
}

type CreateUserResult struct {
	UserID uuid.UUID
}

type UserCommands interface {
	Create(ctx context.Context, req CreateUserRequest) (*CreateUserResult, error)
	Update(ctx context.Context, userID uuid.UUID, req UpdateUserRequest) error
	Delete(ctx context.Context, userID uuid.UUID) error
}

type userUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewUserUseCase(uow shared.UnitOfWork, clk clock.Clock) UserCommands {
	return &userUseCaseImpl{uow: uow, clock: clk}
}

func (uc *userUseCaseImpl) Create(ctx context.Context, req CreateUserRequest) (*CreateUserResult, error) {
	u, err := user.NewUser(req.Name, req.Email, uc.clock.Now())
	if err != nil {
		return nil, errs.BadRequest(err)
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().Create(ctx, tx.DB(), u)
	})
	if err != nil {
		return nil, mapUserWriteErr(err)
	}
	return &CreateUserResult{UserID: u.ID()}, nil
}

func (uc *userUseCaseImpl) Update(ctx context.Context, userID uuid.UUID, req UpdateUserRequest) error {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		u, derr := tx.Reads().UserByID(ctx, userID)
		if derr != nil {
			return derr
		}
		if derr = u.Update(req.Name, req.Email); derr != nil {
			return errs.BadRequest(derr)
		}
		return tx.Users().Update(ctx, tx.DB(), u)
	})
	return mapUserWriteErr(err)
}

func (uc *userUseCaseImpl) Delete(ctx context.Context, userID uuid.UUID) error {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().Delete(ctx, tx.DB(), userID)
	})
	return mapUserWriteErr(err)
}

func mapUserWriteErr(err error) error {
	switch {
	case err == nil:
		return nil
	case infra.IsKind(err, infra.KindNotFound):
		return shared.ErrUserNotFound
	case infra.IsKind(err, infra.KindDuplicateKey):
		return ErrEmailTaken
	default:
		return err
	}
}
