package item

import (
	"errors"
	"strings"
	"time"

	"shareit/internal/pkg/patch"

	"github.com/google/uuid"
)

var (
	ErrEmptyName          = errors.New("item name cannot be empty")
	ErrEmptyDescription   = errors.New("item description cannot be empty")
	ErrNameTooLong        = errors.New("item name is too long (max 255 characters)")
	ErrDescriptionTooLong = errors.New("item description is too long (max 1000 characters)")
)

const (
	MaxNameLength        = 255
	MaxDescriptionLength = 1000
)

type Item struct {
	id          uuid.UUID
	ownerID     uuid.UUID
	name        string
	description string
	available   bool
	requestID   *uuid.UUID
	createdAt   time.Time
}

type Patch struct {
	Name        *string
	Description *string
	Available   *bool
}

func NewItem(ownerID uuid.UUID, name, description string, available bool, requestID *uuid.UUID, now time.Time) (*Item, error) {
	name, description = strings.TrimSpace(name), strings.TrimSpace(description)
	if err := validate(name, description); err != nil {
		return nil, err
	}

	return &Item{
		id:          uuid.New(),
		ownerID:     ownerID,
		name:        name,
		description: description,
		available:   available,
		requestID:   requestID,
		createdAt:   now,
	}, nil
}

func Reconstruct(
	id, ownerID uuid.UUID,
	name, description string,
	available bool,
	requestID *uuid.UUID,
	createdAt time.Time,
) *Item {
	return &Item{
		id:          id,
		ownerID:     ownerID,
		name:        name,
		description: description,
		available:   available,
		requestID:   requestID,
		createdAt:   createdAt,
	}
}

// Apply updates only the fields present in p. The item is left untouched on error.
func (i *Item) Apply(p Patch) error {
	name := patch.Text(p.Name, i.name)
	description := patch.Text(p.Description, i.description)
	if err := validate(name, description); err != nil {
		return err
	}

	i.name = name
	i.description = description
	i.available = patch.Coalesce(p.Available, i.available)
	return nil
}

func (i *Item) IsOwnedBy(userID uuid.UUID) bool {
	return i.ownerID == userID
}

func validate(name, description string) error {
	if name == "" {
		return ErrEmptyName
	}
	if len(name) > MaxNameLength {
		return ErrNameTooLong
	}
	if description == "" {
		return ErrEmptyDescription
	}
	if len(description) > MaxDescriptionLength {
		return ErrDescriptionTooLong
	}
	return nil
}

func (i *Item) ID() uuid.UUID         { return i.id }
func (i *Item) OwnerID() uuid.UUID    { return i.ownerID }
func (i *Item) Name() string          { return i.name }
func (i *Item) Description() string   { return i.description }
func (i *Item) Available() bool       { return i.available }
func (i *Item) RequestID() *uuid.UUID { return i.requestID }
func (i *Item) CreatedAt() time.Time  { return i.createdAt }
