//go:build unit

package item_test

import (
	"strings"
	"testing"
	"time"

	"shareit/internal/domain/item"
	"shareit/internal/pkg/ptr"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

func TestNewItem(t *testing.T) {
	ownerID := uuid.New()

	testCases := []struct {
		name        string
		itemName    string
		description string
		errIs       error
	}{
		{name: "valid item", itemName: "Drill", description: "Cordless drill"},
		{name: "surrounding spaces are trimmed", itemName: "  Drill ", description: " Cordless drill  "},
		{name: "empty name", itemName: "   ", description: "Cordless drill", errIs: item.ErrEmptyName},
		{name: "name too long", itemName: strings.Repeat("a", item.MaxNameLength+1), description: "d", errIs: item.ErrNameTooLong},
		{name: "empty description", itemName: "Drill", description: "", errIs: item.ErrEmptyDescription},
		{
			name:        "description too long",
			itemName:    "Drill",
			description: strings.Repeat("a", item.MaxDescriptionLength+1),
			errIs:       item.ErrDescriptionTooLong,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := item.NewItem(ownerID, tc.itemName, tc.description, true, nil, now)
			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.NotEqual(t, uuid.Nil, got.ID())
			assert.Equal(t, "Drill", got.Name())
			assert.Equal(t, "Cordless drill", got.Description())
			assert.True(t, got.Available())
			assert.True(t, got.IsOwnedBy(ownerID))
			assert.Nil(t, got.RequestID())
			assert.Equal(t, now, got.CreatedAt())
		})
	}
}

func TestItem_Apply(t *testing.T) {
	newItem := func() *item.Item {
		return item.Reconstruct(uuid.New(), uuid.New(), "Drill", "Cordless drill", true, nil, now)
	}

	t.Run("only present fields change", func(t *testing.T) {
		it := newItem()

		require.NoError(t, it.Apply(item.Patch{Available: ptr.Of(false)}))

		assert.Equal(t, "Drill", it.Name())
		assert.Equal(t, "Cordless drill", it.Description())
		assert.False(t, it.Available())
	})

	t.Run("all fields change", func(t *testing.T) {
		it := newItem()

		err := it.Apply(item.Patch{
			Name:        ptr.Of("Hammer"),
			Description: ptr.Of("Heavy hammer"),
			Available:   ptr.Of(false),
		})

		require.NoError(t, err)
		assert.Equal(t, "Hammer", it.Name())
		assert.Equal(t, "Heavy hammer", it.Description())
		assert.False(t, it.Available())
	})

	t.Run("invalid patch leaves item untouched", func(t *testing.T) {
		it := newItem()

		err := it.Apply(item.Patch{Name: ptr.Of("Hammer"), Description: ptr.Of(" "), Available: ptr.Of(false)})

		require.ErrorIs(t, err, item.ErrEmptyDescription)
		assert.Equal(t, "Drill", it.Name())
		assert.True(t, it.Available())
	})
}
