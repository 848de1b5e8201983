package shared

import (
	"context"

	"shareit/internal/domain/booking"
	"shareit/internal/domain/comment"
	"shareit/internal/domain/item"
	"shareit/internal/domain/request"
	"shareit/internal/domain/user"
	"shareit/internal/infra/pgsql"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Bookings() BookingRepository
	Items() ItemRepository
	Users() UserRepository
	Comments() CommentRepository
	Requests() RequestRepository
	Reads() CommandReads
	DB() pgsql.DBTX
}

// Lookups return an infra.RepositoryError of KindNotFound for missing rows.
type UserLookup interface {
	UserExists(ctx context.Context, id uuid.UUID) (bool, error)
	UserByID(ctx context.Context, id uuid.UUID) (*user.User, error)
}

type ItemLookup interface {
	ItemByID(ctx context.Context, id uuid.UUID) (*item.Item, error)
}

type BookingLookup interface {
	// BookingByIDForUpdate locks the row until the surrounding transaction ends.
	BookingByIDForUpdate(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	// BookingsByItem returns the item's bookings sorted ascending by start.
	BookingsByItem(ctx context.Context, itemID uuid.UUID) ([]*booking.Booking, error)
}

type CommandReads interface {
	UserLookup
	ItemLookup
	BookingLookup
	RequestExists(ctx context.Context, id uuid.UUID) (bool, error)
}

type BookingRepository interface {
	Create(ctx context.Context, tx pgsql.DBTX, b *booking.Booking) error
	UpdateStatus(ctx context.Context, tx pgsql.DBTX, b *booking.Booking) error
}

type ItemRepository interface {
	Create(ctx context.Context, tx pgsql.DBTX, it *item.Item) error
	Update(ctx context.Context, tx pgsql.DBTX, it *item.Item) error
}

type UserRepository interface {
	Create(ctx context.Context, tx pgsql.DBTX, u *user.User) error
	Update(ctx context.Context, tx pgsql.DBTX, u *user.User) error
	Delete(ctx context.Context, tx pgsql.DBTX, id uuid.UUID) error
}

type CommentRepository interface {
	Create(ctx context.Context, tx pgsql.DBTX, c *comment.Comment) error
}

type RequestRepository interface {
	Create(ctx context.Context, tx pgsql.DBTX, r *request.ItemRequest) error
}
