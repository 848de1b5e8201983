package commands

import (
	"context"

	"shareit/internal/domain/booking"
	"shareit/internal/domain/comment"
	"shareit/internal/infra"
	"shareit/internal/pkg/clock"
	"shareit/internal/pkg/errs"
	"shareit/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrAuthorNotFound    = errs.NewNotFound("author not found")
	ErrCommentNotAllowed = errs.NewBadRequest("commentator has no finished booking of this item")
)

type AddCommentResult struct {
	CommentID uuid.UUID
}

type CommentCommands interface {
	Add(ctx context.Context, authorID, itemID uuid.UUID, text string) (*AddCommentResult, error)
}

type commentUseCaseImpl struct {
	uow      shared.UnitOfWork
	clock    clock.Clock
	recorder CommentRecorder
}

func NewCommentUseCase(uow shared.UnitOfWork, clk clock.Clock, recorder CommentRecorder) CommentCommands {
	return &commentUseCaseImpl{uow: uow, clock: clk, recorder: recorder}
}

func (uc *commentUseCaseImpl) Add(ctx context.Context, authorID, itemID uuid.UUID, text string) (*AddCommentResult, error) {
	now := uc.clock.Now()
	reads := uc.uow.CommandReads()

	exists, err := reads.UserExists(ctx, authorID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrAuthorNotFound
	}

	if _, err = reads.ItemByID(ctx, itemID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, shared.ErrItemNotFound
		}
		return nil, err
	}

	c, err := comment.NewComment(itemID, authorID, text, now)
	if err != nil {
		return nil, errs.BadRequest(err)
	}

	history, err := reads.BookingsByItem(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if !booking.CanComment(history, authorID, now) {
		return nil, ErrCommentNotAllowed
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Comments().Create(ctx, tx.DB(), c)
	})
	if err != nil {
		return nil, err
	}

	uc.recorder.CommentAdded()
	return &AddCommentResult{CommentID: c.ID()}, nil
}
