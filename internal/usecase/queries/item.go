package queries

import (
	"context"
	"strings"

	"shareit/internal/domain/booking"
	"shareit/internal/infra"
	"shareit/internal/pkg/clock"
	"shareit/internal/pkg/errs"
	"shareit/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrCommentNotFound = errs.NewNotFound("comment not found")

type ItemReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ItemView, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID, limit, offset int32) ([]*ItemView, error)
	Search(ctx context.Context, text string, limit, offset int32) ([]*ItemView, error)
	CountByOwner(ctx context.Context, ownerID uuid.UUID) (int64, error)
	ListByRequests(ctx context.Context, requestIDs []uuid.UUID) ([]*ItemView, error)
}

type CommentReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*CommentView, error)
	ListByItems(ctx context.Context, itemIDs []uuid.UUID) ([]*CommentView, error)
}

type ItemQueries interface {
	GetByID(ctx context.Context, viewerID, itemID uuid.UUID) (*ItemView, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID, page Page) ([]*ItemView, error)
	Search(ctx context.Context, text string, page Page) ([]*ItemView, error)
	GetComment(ctx context.Context, commentID uuid.UUID) (*CommentView, error)
}

type itemQueriesImpl struct {
	items    ItemReadStore
	bookings BookingReadStore
	comments CommentReadStore
	users    UserReadStore
	clock    clock.Clock
}

func NewItemQueries(items ItemReadStore, bookings BookingReadStore, comments CommentReadStore, users UserReadStore, clk clock.Clock) ItemQueries {
	return &itemQueriesImpl{
		items:    items,
		bookings: bookings,
		comments: comments,
		users:    users,
		clock:    clk,
	}
}

// GetByID attaches comments for everyone and the last/next booking only when
// the viewer owns the item.
func (q *itemQueriesImpl) GetByID(ctx context.Context, viewerID, itemID uuid.UUID) (*ItemView, error) {
	exists, err := q.users.Exists(ctx, viewerID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, shared.ErrUserNotFound
	}

	view, err := q.items.FindByID(ctx, itemID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, shared.ErrItemNotFound
		}
		return nil, err
	}

	views := []*ItemView{view}
	if err = q.attachDetails(ctx, views, view.OwnerID == viewerID); err != nil {
		return nil, err
	}
	return view, nil
}

func (q *itemQueriesImpl) ListByOwner(ctx context.Context, ownerID uuid.UUID, page Page) ([]*ItemView, error) {
	exists, err := q.users.Exists(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, shared.ErrUserNotFound
	}

	if page.Beyond() {
		return []*ItemView{}, nil
	}

	views, err := q.items.ListByOwner(ctx, ownerID, page.Limit(), page.Offset())
	if err != nil {
		return nil, err
	}
	if err = q.attachDetails(ctx, views, true); err != nil {
		return nil, err
	}
	return views, nil
}

// Search matches available items by name or description; blank text matches nothing.
func (q *itemQueriesImpl) Search(ctx context.Context, text string, page Page) ([]*ItemView, error) {
	text = strings.TrimSpace(text)
	if text == "" || page.Beyond() {
		return []*ItemView{}, nil
	}
	return q.items.Search(ctx, text, page.Limit(), page.Offset())
}

func (q *itemQueriesImpl) GetComment(ctx context.Context, commentID uuid.UUID) (*CommentView, error) {
	view, err := q.comments.FindByID(ctx, commentID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCommentNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *itemQueriesImpl) attachDetails(ctx context.Context, views []*ItemView, annotate bool) error {
	if len(views) == 0 {
		return nil
	}
	ids := make([]uuid.UUID, 0, len(views))
	for _, v := range views {
		ids = append(ids, v.ID)
	}

	comments, err := q.comments.ListByItems(ctx, ids)
	if err != nil {
		return err
	}
	commentsByItem := make(map[uuid.UUID][]*CommentView, len(views))
	for _, c := range comments {
		commentsByItem[c.ItemID] = append(commentsByItem[c.ItemID], c)
	}
	for _, v := range views {
		v.Comments = commentsByItem[v.ID]
		if v.Comments == nil {
			v.Comments = []*CommentView{}
		}
	}

	if !annotate {
		return nil
	}

	history, err := q.bookings.ListByItems(ctx, ids)
	if err != nil {
		return err
	}
	// grouping keeps the ascending start order of history
	historyByItem := make(map[uuid.UUID][]*booking.Booking, len(views))
	for _, b := range history {
		historyByItem[b.ItemID()] = append(historyByItem[b.ItemID()], b)
	}

	now := q.clock.Now()
	for _, v := range views {
		a := booking.Annotate(historyByItem[v.ID], now)
		v.LastBooking = toBookingShort(a.Last)
		v.NextBooking = toBookingShort(a.Next)
	}
	return nil
}

func toBookingShort(b *booking.Booking) *BookingShort {
	if b == nil {
		return nil
	}
	return &BookingShort{
		ID:        b.ID(),
		BookerID:  b.BookerID(),
		Start:     b.Start(),
		End:       b.End(),
		Status:    b.Status().String(),
		CreatedAt: b.CreatedAt(),
	}
}
