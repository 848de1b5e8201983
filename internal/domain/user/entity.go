package user

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	id        uuid.UUID
	name      string
	email     Email
	createdAt time.Time
}

func NewUser(name, email string, now time.Time) (*User, error) {
	validName, err := validateName(name)
	if err != nil {
		return nil, err
	}
	validEmail, err := NewEmail(email)
	if err != nil {
		return nil, err
	}

	return &User{
		id:        uuid.New(),
		name:      validName,
		email:     validEmail,
		createdAt: now,
	}, nil
}

func Reconstruct(id uuid.UUID, name string, email Email, createdAt time.Time) *User {
	return &User{id: id, name: name, email: email, createdAt: createdAt}
}

// Update applies a partial change; nil fields are kept.
func (u *User) Update(name, email *string) error {
	newName, newEmail := u.name, u.email
	if name != nil {
		v, err := validateName(*name)
		if err != nil {
			return err
		}
		newName = v
	}
	if email != nil {
		v, err := NewEmail(*email)
		if err != nil {
			return err
		}
		newEmail = v
	}

	u.name, u.email = newName, newEmail
	return nil
}

func (u *User) ID() uuid.UUID        { return u.id }
func (u *User) Name() string         { return u.name }
func (u *User) Email() Email         { return u.email }
func (u *User) CreatedAt() time.Time { return u.createdAt }
