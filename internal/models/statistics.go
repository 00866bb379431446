package models

// AggregateStats is a derived summary over a collection of run entries.
// It is computed fresh on every request and never stored.
type AggregateStats struct {
	TotalDistance      float64 `json:"total_distance"`       // distance units (km or mi)
	TotalDuration      float64 `json:"total_duration"`       // seconds
	AveragePaceSeconds float64 `json:"average_pace_seconds"` // seconds per distance unit
	TotalCalories      float64 `json:"total_calories"`
}

// RunFilter selects a view over the session's run history.
type RunFilter string

const (
	FilterAll     RunFilter = "all"
	FilterOutdoor RunFilter = "outdoor"
	FilterIndoor  RunFilter = "indoor"
)
