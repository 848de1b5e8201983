//go:build unit

package comment_test

import (
	"strings"
	"testing"
	"time"

	"shareit/internal/domain/comment"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewComment(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	itemID, authorID := uuid.New(), uuid.New()

	t.Run("valid comment", func(t *testing.T) {
		c, err := comment.NewComment(itemID, authorID, "  Works great  ", now)

		require.NoError(t, err)
		assert.Equal(t, "Works great", c.Text())
		assert.Equal(t, itemID, c.ItemID())
		assert.Equal(t, authorID, c.AuthorID())
		assert.Equal(t, now, c.CreatedAt())
	})

	t.Run("length counts runes", func(t *testing.T) {
		_, err := comment.NewComment(itemID, authorID, strings.Repeat("ä", comment.MaxTextLength), now)
		require.NoError(t, err)

		_, err = comment.NewComment(itemID, authorID, strings.Repeat("ä", comment.MaxTextLength+1), now)
		require.ErrorIs(t, err, comment.ErrTextTooLong)
	})

	t.Run("blank text", func(t *testing.T) {
		_, err := comment.NewComment(itemID, authorID, " \n\t", now)
		require.ErrorIs(t, err, comment.ErrEmptyText)
	})
}
