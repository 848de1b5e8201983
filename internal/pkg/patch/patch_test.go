//go:build unit

package patch_test

import (
	"testing"

	"shareit/internal/pkg/patch"
	"shareit/internal/pkg/ptr"

	"github.com/stretchr/testify/assert"
)

func TestCoalesce(t *testing.T) {
	assert.True(t, patch.Coalesce(ptr.Of(true), false))
	assert.False(t, patch.Coalesce(nil, false))
}

func TestText(t *testing.T) {
	assert.Equal(t, "  kept ", patch.Text(nil, "  kept "))
	assert.Equal(t, "Drill", patch.Text(ptr.Of("  Drill\n"), "old"))
	assert.Equal(t, "", patch.Text(ptr.Of("   "), "old"))
}
