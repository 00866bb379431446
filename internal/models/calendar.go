package models

import "time"

// Intensity is the four-level per-day workout exertion classification.
type Intensity string

const (
	IntensityNone   Intensity = "none"
	IntensityLow    Intensity = "low"
	IntensityMedium Intensity = "medium"
	IntensityHigh   Intensity = "high"
)

// CalendarDay is one cell of the month grid. Cells padding the grid
// before the first and after the last day of the month carry a nil Date.
type CalendarDay struct {
	Date          *time.Time `json:"date,omitempty"`
	TotalDistance float64    `json:"total_distance"` // kilometers
	TotalDuration float64    `json:"total_duration"` // seconds
	Intensity     Intensity  `json:"intensity"`
}
