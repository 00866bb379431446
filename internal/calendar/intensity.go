package calendar

import (
	"time"

	"github.com/runlog/runlog-backend-go/internal/models"
	"github.com/runlog/runlog-backend-go/internal/stats"
	"github.com/runlog/runlog-backend-go/internal/units"
)

// Grid dimensions
const (
	WeeksPerMonth = 6
	DaysPerWeek   = 7
	GridSize      = WeeksPerMonth * DaysPerWeek
)

// BuildMonth builds the month grid for the month containing ref and
// accumulates per-day distance and duration from the full run history.
//
// The grid is 6×7, Sunday-indexed: leading cells pad to the month's
// first weekday, trailing cells fill out the last week; padding cells
// carry no date. Every call starts from zeroed cells, so rebuilding on
// changed data is idempotent and order-independent.
func BuildMonth(ref time.Time, entries []models.RunEntry) []models.CalendarDay {
	grid := make([]models.CalendarDay, GridSize)
	for i := range grid {
		grid[i].Intensity = models.IntensityNone
	}

	year, month := ref.Year(), ref.Month()
	loc := ref.Location()
	firstOfMonth := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	offset := int(firstOfMonth.Weekday())
	daysInMonth := time.Date(year, month+1, 0, 0, 0, 0, 0, loc).Day()

	for d := 1; d <= daysInMonth; d++ {
		idx := offset + d - 1
		if idx >= GridSize {
			break
		}
		date := time.Date(year, month, d, 0, 0, 0, 0, loc)
		grid[idx].Date = &date
	}

	for _, e := range entries {
		if e.CreatedAt == nil {
			// Undated entries are unbucketable.
			continue
		}
		if e.CreatedAt.Year() != year || e.CreatedAt.Month() != month {
			continue
		}
		idx := offset + e.CreatedAt.Day() - 1
		if idx < 0 || idx >= GridSize {
			continue
		}

		if km, ok := stats.DistanceKm(e); ok {
			grid[idx].TotalDistance += km
		}
		if secs, ok := units.ParseDurationSeconds(e.Duration); ok {
			grid[idx].TotalDuration += secs
		}
	}

	for i := range grid {
		grid[i].Intensity = intensityForScore(scoreDay(grid[i].TotalDistance, grid[i].TotalDuration))
	}
	return grid
}

// scoreDay rates one day's workout on a 0–100 scale: distance in
// kilometers contributes up to 70 points, duration up to 30.
func scoreDay(distanceKm, durationSeconds float64) int {
	score := 0

	switch {
	case distanceKm >= 20:
		score += 70
	case distanceKm >= 15:
		score += 60
	case distanceKm >= 10:
		score += 50
	case distanceKm >= 5:
		score += 40
	case distanceKm >= 3:
		score += 30
	case distanceKm >= 1:
		score += 20
	case distanceKm > 0:
		score += 10
	}

	minutes := durationSeconds / 60
	switch {
	case minutes >= 120:
		score += 30
	case minutes >= 90:
		score += 25
	case minutes >= 60:
		score += 20
	case minutes >= 45:
		score += 15
	case minutes >= 30:
		score += 10
	case minutes >= 15:
		score += 5
	case minutes > 0:
		score += 2
	}

	return score
}

func intensityForScore(score int) models.Intensity {
	switch {
	case score >= 60:
		return models.IntensityHigh
	case score >= 30:
		return models.IntensityMedium
	case score > 0:
		return models.IntensityLow
	default:
		return models.IntensityNone
	}
}
