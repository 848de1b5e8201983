//go:build unit

package clock_test

import (
	"testing"
	"time"

	"shareit/internal/pkg/clock"

	"github.com/stretchr/testify/assert"
)

func TestRealClock_Now(t *testing.T) {
	now := clock.NewRealClock().Now()

	assert.Equal(t, time.UTC, now.Location())
	assert.Zero(t, now.Nanosecond()%int(clock.Precision))
}

func TestMockClock(t *testing.T) {
	start := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	clk := clock.NewMockClock(start)

	assert.Equal(t, start, clk.Now())
	assert.Equal(t, start.Add(time.Hour), clk.Advance(time.Hour))
	assert.Equal(t, start.Add(time.Hour), clk.Now())

	clk.Set(start.Add(-time.Minute))
	assert.Equal(t, start.Add(-time.Minute), clk.Now())
}
