package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/runlog/runlog-backend-go/internal/models"
)

func entry(distance, duration, pace string, calories float64) models.RunEntry {
	return models.RunEntry{
		Distance:       distance,
		Duration:       duration,
		AvgPace:        pace,
		CaloriesBurned: calories,
		Type:           models.RunTypeOutdoor,
	}
}

func TestAggregateEmpty(t *testing.T) {
	agg := Aggregate(nil)
	assert.Zero(t, agg.TotalDistance)
	assert.Zero(t, agg.TotalDuration)
	assert.Zero(t, agg.AveragePaceSeconds)
	assert.Zero(t, agg.TotalCalories)
}

func TestAggregateTotals(t *testing.T) {
	entries := []models.RunEntry{
		entry("5.00 km", "30:00", "6:00/km", 300),
		entry("10.00 km", "1:00:00", "6:00/km", 600),
	}

	agg := Aggregate(entries)
	assert.Equal(t, float64(15), agg.TotalDistance)
	assert.Equal(t, float64(5400), agg.TotalDuration)
	assert.Equal(t, float64(360), agg.AveragePaceSeconds)
	assert.Equal(t, float64(900), agg.TotalCalories)
}

func TestAggregateCommutative(t *testing.T) {
	entries := []models.RunEntry{
		entry("5.00 km", "30:00", "6:00/km", 300),
		entry("3.20 km", "18:30", "", 210),
		entry("12.10 km", "1:10:00", "5:47/km", 800),
	}
	reversed := []models.RunEntry{entries[2], entries[1], entries[0]}

	assert.Equal(t, Aggregate(entries), Aggregate(reversed))
}

func TestAggregateUnparseableContributesZero(t *testing.T) {
	entries := []models.RunEntry{
		entry("garbage", "not a duration", "??", 100),
		entry("5.00 km", "25:00", "5:00/km", 0),
	}

	agg := Aggregate(entries)
	assert.Equal(t, float64(5), agg.TotalDistance)
	assert.Equal(t, float64(1500), agg.TotalDuration)
	assert.Equal(t, float64(300), agg.AveragePaceSeconds)
	assert.Equal(t, float64(100), agg.TotalCalories)
}

func TestAggregateDurationRawNumberFallback(t *testing.T) {
	// A colon-free duration is read as raw seconds.
	agg := Aggregate([]models.RunEntry{entry("1.00 km", "300", "", 0)})
	assert.Equal(t, float64(300), agg.TotalDuration)
}

func TestAggregatePaceFallback(t *testing.T) {
	// No entry carries its own pace: 3000 s over 10 units → 300 s/unit.
	entries := []models.RunEntry{
		entry("4.00 km", "20:00", "", 0),
		entry("6.00 km", "30:00", "", 0),
	}

	agg := Aggregate(entries)
	assert.Equal(t, float64(10), agg.TotalDistance)
	assert.Equal(t, float64(3000), agg.TotalDuration)
	assert.Equal(t, float64(300), agg.AveragePaceSeconds)
}

func TestAggregateNoDivisionByZero(t *testing.T) {
	agg := Aggregate([]models.RunEntry{entry("0.00 km", "0:00", "", 0)})
	assert.Zero(t, agg.AveragePaceSeconds)
}

func TestFilter(t *testing.T) {
	entries := []models.RunEntry{
		{ID: "a", Type: models.RunTypeOutdoor},
		{ID: "b", Type: models.RunTypeIndoor},
		{ID: "c", Type: models.RunTypeOutdoor},
	}

	outdoor := Filter(entries, models.FilterOutdoor)
	assert.Len(t, outdoor, 2)

	indoor := Filter(entries, models.FilterIndoor)
	assert.Len(t, indoor, 1)
	assert.Equal(t, "b", indoor[0].ID)

	assert.Len(t, Filter(entries, models.FilterAll), 3)
}

func TestBetween(t *testing.T) {
	day := func(d int) *time.Time {
		t := time.Date(2024, 1, d, 12, 0, 0, 0, time.UTC)
		return &t
	}
	entries := []models.RunEntry{
		{ID: "a", CreatedAt: day(1)},
		{ID: "b", CreatedAt: day(15)},
		{ID: "c"}, // dateless, always excluded
		{ID: "d", CreatedAt: day(31)},
	}

	got := Between(entries, time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC), time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC))
	assert.Len(t, got, 1)
	assert.Equal(t, "b", got[0].ID)

	// Open bounds keep everything dated.
	assert.Len(t, Between(entries, time.Time{}, time.Time{}), 3)
}

func TestNumericHelpers(t *testing.T) {
	assert.Equal(t, float64(2), Mean([]float64{1, 2, 3}))
	assert.Equal(t, float64(1), Min([]float64{3, 1, 2}))
	assert.Equal(t, float64(3), Max([]float64{3, 1, 2}))
	assert.Zero(t, Mean(nil))
	assert.Zero(t, Min(nil))
	assert.Zero(t, Max(nil))
}
