package commands

import (
	"context"

	"shareit/internal/domain/request"
	"shareit/internal/pkg/clock"
	"shareit/internal/pkg/errs"
	"shareit/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrRequesterNotFound = errs.NewNotFound("requester not found")

type CreateRequestResult struct {
	RequestID uuid.UUID
}

type RequestCommands interface {
	Create(ctx context.Context, requesterID uuid.UUID, description string) (*CreateRequestResult, error)
}

type requestUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewRequestUseCase(uow shared.UnitOfWork, clk clock.Clock) RequestCommands {
	return &requestUseCaseImpl{uow: uow, clock: clk}
}

func (uc *requestUseCaseImpl) Create(ctx context.Context, requesterID uuid.UUID, description string) (*CreateRequestResult, error) {
	exists, err := uc.uow.CommandReads().UserExists(ctx, requesterID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrRequesterNotFound
	}

	r, err := request.NewItemRequest(requesterID, description, uc.clock.Now())
	if err != nil {
		return nil, errs.BadRequest(err)
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Requests().Create(ctx, tx.DB(), r)
	})
	if err != nil {
		return nil, err
	}
	return &CreateRequestResult{RequestID: r.ID()}, nil
}
