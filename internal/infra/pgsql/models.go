package pgsql

import (
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type Users struct {
	ID        uuid.UUID
	Name      string
	Email     string
	CreatedAt pgtype.Timestamptz
}

type Items struct {
	ID          uuid.UUID
	OwnerID     uuid.UUID
	Name        string
	Description string
	Available   bool
	RequestID   pgtype.UUID
	CreatedAt   pgtype.Timestamptz
}

type Bookings struct {
	ID        uuid.UUID
	ItemID    uuid.UUID
	BookerID  uuid.UUID
	StartTime pgtype.Timestamptz
	EndTime   pgtype.Timestamptz
	Status    string
	CreatedAt pgtype.Timestamptz
}

type ItemRequests struct {
	ID          uuid.UUID
	RequesterID uuid.UUID
	Description string
	CreatedAt   pgtype.Timestamptz
}
