package activity

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/runlog/runlog-backend-go/internal/models"
	"github.com/runlog/runlog-backend-go/internal/route"
	"github.com/runlog/runlog-backend-go/internal/units"
)

// Source timestamp layouts, tried in order. The service usually emits
// fractional seconds but older records omit them.
const (
	timeLayoutFractional = "2006-01-02T15:04:05.000Z07:00"
	timeLayoutWhole      = "2006-01-02T15:04:05Z07:00"
)

// activityPayload mirrors the nested JSON document embedded in a raw
// record's activityData field. All fields are optional.
type activityPayload struct {
	AveragePace         string                   `json:"averagePace"`
	LocationData        []models.LocationSample  `json:"locationData"`
	CoordinateArray     [][]float64              `json:"coordinateArray"`
	TreadmillDataPoints []models.TreadmillSample `json:"treadmillDataPoints"`
}

// Normalizer converts raw activity records into typed run entries.
type Normalizer struct {
	units units.System
}

// NewNormalizer creates a normalizer formatting for the given unit system.
func NewNormalizer(sys units.System) *Normalizer {
	return &Normalizer{units: sys}
}

// Normalize converts one raw record into a run entry. Exactly one
// variant is produced, chosen by the record's indoor flag. Parse
// failures on the timestamp or the embedded payload are non-fatal: the
// affected fields are simply left absent.
func (n *Normalizer) Normalize(raw models.RawActivity) models.RunEntry {
	entry := models.RunEntry{
		ID:             raw.ID,
		CreatedBy:      raw.UserID,
		Duration:       units.FormatDuration(raw.Duration),
		CaloriesBurned: raw.Calories,
		RunType:        raw.RunType,
	}

	if t, ok := parseTimestamp(raw.CreatedAt); ok {
		entry.CreatedAt = &t
	}

	payload := n.parsePayload(raw)
	entry.AvgPace = payload.AveragePace

	distanceMeters := raw.Distance

	if raw.IsIndoorRun {
		entry.Type = models.RunTypeIndoor
		entry.TreadmillDataPoints = payload.TreadmillDataPoints
	} else {
		entry.Type = models.RunTypeOutdoor
		entry.LocationData = payload.LocationData
		entry.CoordinateArray = payload.CoordinateArray

		// The service sometimes omits the distance for route-bearing
		// records; derive it from the track in that case.
		if distanceMeters <= 0 {
			if len(payload.LocationData) > 1 {
				distanceMeters = route.DistanceFromSamples(payload.LocationData)
			} else if len(payload.CoordinateArray) > 1 {
				distanceMeters = route.DistanceFromCoordinates(payload.CoordinateArray)
			}
		}

		if gain := route.ElevationGainMeters(payload.LocationData); gain > 0 {
			entry.ElevationGain = fmt.Sprintf("%.0f m", gain)
		}
	}

	entry.Distance = units.FormatDistance(distanceMeters, n.units)
	return entry
}

func (n *Normalizer) parsePayload(raw models.RawActivity) activityPayload {
	var payload activityPayload
	if raw.ActivityData == "" {
		return payload
	}
	if err := json.Unmarshal([]byte(raw.ActivityData), &payload); err != nil {
		log.Printf("[Normalizer] failed to parse activity payload for record %s: %v", raw.ID, err)
		return activityPayload{}
	}
	return payload
}

// parseTimestamp tries the fractional-second layout first, then the
// whole-second one. An unparseable timestamp is reported as absent, not
// as an error.
func parseTimestamp(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse(timeLayoutFractional, s); err == nil {
		return t, true
	}
	if t, err := time.Parse(timeLayoutWhole, s); err == nil {
		return t, true
	}
	return time.Time{}, false
}
