//go:build unit

package clock_test

import (
	"testing"
	"time"

	"hotel-booking/internal/pkg/clock"

	"github.com/stretchr/testify/assert"
)

func TestMockClock(t *testing.T) {
	start := time.Date(2025, time.June, 1, 9, 0, 0, 0, time.UTC)
	c := clock.NewMockClock(start)

	assert.Equal(t, start, c.Now())

	c.AddDays(2)
	assert.Equal(t, start.Add(48*time.Hour), c.Now())

	c.Add(time.Hour)
	assert.Equal(t, start.Add(49*time.Hour), c.Now())

	c.Set(start)
	assert.Equal(t, start, c.Now())
}
