//go:build unit

package clock_test

import (
	"testing"
	"time"

	"restro-api/internal/pkg/clock"

	"github.com/stretchr/testify/assert"
)

func TestFixedClockAdvance(t *testing.T) {
	start := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	c := clock.NewFixedClock(start)

	assert.Equal(t, start, c.Now())

	c.Advance(90 * time.Minute)
	assert.Equal(t, start.Add(90*time.Minute), c.Now())
}
