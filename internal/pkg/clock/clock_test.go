//go:build unit

package clock_test

import (
	"testing"
	"time"

	"limited-drop-api/internal/pkg/clock"

	"github.com/stretchr/testify/assert"
)

func TestRealClock(t *testing.T) {
	assert.Equal(t, time.UTC, clock.NewRealClock().Now().Location())
}

func TestMockClock(t *testing.T) {
	start := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	clk := clock.NewMockClock(start)

	assert.Equal(t, start, clk.Now())
	assert.Equal(t, start, clk.Now(), "進めるまで止まったまま")

	clk.Advance(7 * 24 * time.Hour)
	assert.Equal(t, start.AddDate(0, 0, 7), clk.Now())
}
