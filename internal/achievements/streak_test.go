package achievements

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 9, 30, 0, 0, time.UTC)
}

func TestHasConsecutiveDays(t *testing.T) {
	// Jan 1–7 daily plus an isolated run on the 15th.
	var dates []time.Time
	for d := 1; d <= 7; d++ {
		dates = append(dates, day(2024, time.January, d))
	}
	dates = append(dates, day(2024, time.January, 15))

	assert.True(t, HasConsecutiveDays(dates, 7))
	assert.False(t, HasConsecutiveDays(dates, 8))
}

func TestHasConsecutiveDaysGapBreaksStreak(t *testing.T) {
	// Only six consecutive days plus one isolated day.
	var dates []time.Time
	for d := 1; d <= 6; d++ {
		dates = append(dates, day(2024, time.January, d))
	}
	dates = append(dates, day(2024, time.January, 15))

	assert.False(t, HasConsecutiveDays(dates, 7))
	assert.True(t, HasConsecutiveDays(dates, 6))
}

func TestHasConsecutiveDaysDuplicatesCollapse(t *testing.T) {
	// Two runs on the same day count as one active day.
	dates := []time.Time{
		day(2024, time.January, 1),
		day(2024, time.January, 1).Add(6 * time.Hour),
		day(2024, time.January, 2),
	}

	assert.True(t, HasConsecutiveDays(dates, 2))
	assert.False(t, HasConsecutiveDays(dates, 3))
}

func TestHasConsecutiveDaysUnordered(t *testing.T) {
	dates := []time.Time{
		day(2024, time.January, 3),
		day(2024, time.January, 1),
		day(2024, time.January, 2),
	}
	assert.True(t, HasConsecutiveDays(dates, 3))
}

func TestHasConsecutiveDaysAcrossMonthBoundary(t *testing.T) {
	dates := []time.Time{
		day(2024, time.January, 30),
		day(2024, time.January, 31),
		day(2024, time.February, 1),
	}
	assert.True(t, HasConsecutiveDays(dates, 3))
}

func TestHasConsecutiveDaysEdgeCounts(t *testing.T) {
	assert.True(t, HasConsecutiveDays(nil, 0))
	assert.False(t, HasConsecutiveDays(nil, 1))
	assert.True(t, HasConsecutiveDays([]time.Time{day(2024, time.January, 1)}, 1))
}
