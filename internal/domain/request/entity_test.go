//go:build unit

package request_test

import (
	"testing"
	"time"

	"shareit/internal/domain/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewItemRequest(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	requesterID := uuid.New()

	r, err := request.NewItemRequest(requesterID, " Need a ladder ", now)
	require.NoError(t, err)
	assert.Equal(t, "Need a ladder", r.Description())
	assert.Equal(t, requesterID, r.RequesterID())
	assert.Equal(t, now, r.CreatedAt())

	_, err = request.NewItemRequest(requesterID, "", now)
	require.ErrorIs(t, err, request.ErrEmptyDescription)
}
