package commands

import (
	"context"

	"shareit/internal/domain/item"
	"shareit/internal/infra"
	"shareit/internal/pkg/clock"
	"shareit/internal/pkg/errs"
	"shareit/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrOwnerNotFound = errs.NewNotFound("owner not found")
	ErrItemNotOwned  = errs.NewNotFound("item does not belong to user")
)

type CreateItemRequest struct {
	Name        string
	Description string
	Available   bool
	RequestID   *uuid.UUID
}

type UpdateItemRequest struct {
	Name        *string
	Description *string
	Available   *bool
}

type CreateItemResult struct {
	ItemID uuid.UUID
}

type ItemCommands interface {
	Create(ctx context.Context, ownerID uuid.UUID, req CreateItemRequest) (*CreateItemResult, error)
	Update(ctx context.Context, ownerID, itemID uuid.UUID, req UpdateItemRequest) error
}

type itemUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewItemUseCase(uow shared.UnitOfWork, clk clock.Clock) ItemCommands {
	return &itemUseCaseImpl{uow: uow, clock: clk}
}

func (uc *itemUseCaseImpl) Create(ctx context.Context, ownerID uuid.UUID, req CreateItemRequest) (*CreateItemResult, error) {
	reads := uc.uow.CommandReads()

	exists, err := reads.UserExists(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrOwnerNotFound
	}

	if req.RequestID != nil {
		found, rerr := reads.RequestExists(ctx, *req.RequestID)
		if rerr != nil {
			return nil, rerr
		}
		if !found {
			return nil, shared.ErrRequestNotFound
		}
	}

	it, err := item.NewItem(ownerID, req.Name, req.Description, req.Available, req.RequestID, uc.clock.Now())
	if err != nil {
		return nil, errs.BadRequest(err)
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Items().Create(ctx, tx.DB(), it)
	})
	if err != nil {
		return nil, err
	}
	return &CreateItemResult{ItemID: it.ID()}, nil
}

func (uc *itemUseCaseImpl) Update(ctx context.Context, ownerID, itemID uuid.UUID, req UpdateItemRequest) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		it, err := tx.Reads().ItemByID(ctx, itemID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return shared.ErrItemNotFound
			}
			return err
		}
		if !it.IsOwnedBy(ownerID) {
			return ErrItemNotOwned
		}

		patch := item.Patch{
			Name:        req.Name,
			Description: req.Description,
			Available:   req.Available,
		}
		if err = it.Apply(patch); err != nil {
			return errs.BadRequest(err)
		}
		return tx.Items().Update(ctx, tx.DB(), it)
	})
}
