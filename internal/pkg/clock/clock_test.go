//go:build unit

package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRealClock_TodayUsesLocation(t *testing.T) {
	loc := time.FixedZone("UTC-6", -6*3600)
	c := NewRealClock(loc)

	y, m, d := time.Now().In(loc).Date()
	assert.Equal(t, time.Date(y, m, d, 0, 0, 0, 0, time.UTC), c.Today())
}

func TestMockClock(t *testing.T) {
	start := time.Date(2025, 5, 1, 23, 30, 0, 0, time.UTC)
	c := NewMockClock(start)
	assert.Equal(t, start, c.Now())
	assert.Equal(t, time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC), c.Today())

	c.Add(time.Hour)
	assert.Equal(t, time.Date(2025, 5, 2, 0, 0, 0, 0, time.UTC), c.Today())
}
