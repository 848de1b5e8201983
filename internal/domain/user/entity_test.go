//go:build unit

package user_test

import (
	"strings"
	"testing"
	"time"

	"shareit/internal/domain/user"
	"shareit/internal/pkg/ptr"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

func TestNewUser(t *testing.T) {
	testCases := []struct {
		name      string
		userName  string
		email     string
		wantEmail string
		errIs     error
	}{
		{name: "valid user", userName: "Alice", email: "alice@example.com", wantEmail: "alice@example.com"},
		{name: "email is lowercased", userName: "Alice", email: "Alice@Example.COM", wantEmail: "alice@example.com"},
		{name: "empty name", userName: " ", email: "alice@example.com", errIs: user.ErrEmptyName},
		{name: "name too long", userName: strings.Repeat("a", user.MaxNameLength+1), email: "alice@example.com", errIs: user.ErrNameTooLong},
		{name: "email without domain", userName: "Alice", email: "alice@", errIs: user.ErrInvalidEmail},
		{name: "email without at sign", userName: "Alice", email: "alice.example.com", errIs: user.ErrInvalidEmail},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := user.NewUser(tc.userName, tc.email, now)
			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.NotEqual(t, uuid.Nil, got.ID())
			assert.Equal(t, tc.userName, got.Name())
			assert.Equal(t, tc.wantEmail, got.Email().Value())
			assert.Equal(t, now, got.CreatedAt())
		})
	}
}

func TestUser_Update(t *testing.T) {
	newUser := func(t *testing.T) *user.User {
		email, err := user.NewEmail("alice@example.com")
		require.NoError(t, err)
		return user.Reconstruct(uuid.New(), "Alice", email, now)
	}

	t.Run("nil fields are kept", func(t *testing.T) {
		u := newUser(t)

		require.NoError(t, u.Update(nil, ptr.Of("alice.new@example.com")))

		assert.Equal(t, "Alice", u.Name())
		assert.Equal(t, "alice.new@example.com", u.Email().Value())
	})

	t.Run("invalid email leaves user untouched", func(t *testing.T) {
		u := newUser(t)

		err := u.Update(ptr.Of("Bob"), ptr.Of("broken"))

		require.ErrorIs(t, err, user.ErrInvalidEmail)
		assert.Equal(t, "Alice", u.Name())
		assert.Equal(t, "alice@example.com", u.Email().Value())
	})
}
