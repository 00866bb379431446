package models

import "time"

// Run entry variants
const (
	RunTypeOutdoor = "outdoor"
	RunTypeIndoor  = "indoor"
)

// RawActivity is one record as returned by the remote activity service.
type RawActivity struct {
	ID           string  `json:"id"`
	CreatedAt    string  `json:"createdAt"` // ISO-8601, possibly with fractional seconds
	UserID       string  `json:"userId"`
	Duration     float64 `json:"duration"` // seconds
	Distance     float64 `json:"distance"` // meters
	Calories     float64 `json:"calories"`
	IsIndoorRun  bool    `json:"isIndoorRun"`
	RunType      string  `json:"runType,omitempty"`
	ActivityData string  `json:"activityData,omitempty"` // nested JSON-encoded payload
}

// LocationSample is one raw coordinate-bearing record from an outdoor run.
type LocationSample struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Altitude  float64 `json:"altitude,omitempty"`
	Timestamp float64 `json:"timestamp,omitempty"` // Unix seconds
}

// TreadmillSample is one structured sample from an indoor run.
type TreadmillSample struct {
	Speed     float64 `json:"speed,omitempty"`   // km/h
	Incline   float64 `json:"incline,omitempty"` // percent grade
	Timestamp float64 `json:"timestamp,omitempty"`
}

// RunEntry is one normalized workout record, outdoor or indoor.
// The variant is fixed at normalization time: exactly one of the
// outdoor-only and indoor-only field groups may be populated, never both.
type RunEntry struct {
	ID             string     `json:"id"`
	CreatedAt      *time.Time `json:"created_at,omitempty"` // nil when the source timestamp is unparseable
	CreatedBy      string     `json:"created_by"`
	Duration       string     `json:"duration"`           // "H:MM:SS" or "M:SS"
	Distance       string     `json:"distance"`           // formatted, e.g. "5.23 km"
	AvgPace        string     `json:"avg_pace,omitempty"` // "M:SS/km" or "M:SS/mi"
	CaloriesBurned float64    `json:"calories_burned,omitempty"`
	Type           string     `json:"type"`               // RunTypeOutdoor or RunTypeIndoor
	RunType        string     `json:"run_type,omitempty"` // free-form sub-classification, e.g. "treadmill_run"

	// Outdoor only
	LocationData    []LocationSample `json:"location_data,omitempty"`
	CoordinateArray [][]float64      `json:"coordinate_array,omitempty"` // [lat, lng] pairs
	ElevationGain   string           `json:"elevation_gain,omitempty"`   // formatted, e.g. "120 m"

	// Indoor only
	TreadmillDataPoints []TreadmillSample `json:"treadmill_data_points,omitempty"`
}

// IsOutdoor reports whether the entry is the outdoor variant.
func (r *RunEntry) IsOutdoor() bool {
	return r.Type == RunTypeOutdoor
}
