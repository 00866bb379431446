package stats

import (
	"strings"
	"time"

	"github.com/runlog/runlog-backend-go/internal/models"
	"github.com/runlog/runlog-backend-go/internal/units"
)

// DistanceKm extracts an entry's distance normalized to kilometers,
// converting mile-formatted values.
func DistanceKm(e models.RunEntry) (float64, bool) {
	v, ok := units.ParseMeasure(e.Distance)
	if !ok {
		return 0, false
	}
	if strings.Contains(strings.ToLower(e.Distance), "mi") {
		v *= units.KmPerMile
	}
	return v, true
}

// Aggregate reduces a collection of run entries into summary
// statistics. The input is assumed already filtered to the desired
// scope; an empty collection yields all-zero stats.
//
// Unparseable distance or duration strings contribute 0 rather than
// failing the whole aggregation.
func Aggregate(entries []models.RunEntry) models.AggregateStats {
	var agg models.AggregateStats
	var paces []float64

	for _, e := range entries {
		if v, ok := units.ParseMeasure(e.Distance); ok {
			agg.TotalDistance += v
		}
		if v, ok := units.ParseDurationSeconds(e.Duration); ok {
			agg.TotalDuration += v
		}
		if e.AvgPace != "" {
			if v, ok := units.ParsePaceSeconds(e.AvgPace); ok {
				paces = append(paces, v)
			}
		}
		agg.TotalCalories += e.CaloriesBurned
	}

	if len(paces) > 0 {
		agg.AveragePaceSeconds = Mean(paces)
	} else if agg.TotalDistance > 0 && agg.TotalDuration > 0 {
		// Fallback when no entry carries its own pace: overall seconds
		// per distance unit. A loose approximation, not a precise pace.
		agg.AveragePaceSeconds = agg.TotalDuration / agg.TotalDistance
	}

	return agg
}

// Filter returns the subset of entries matching the run filter.
func Filter(entries []models.RunEntry, f models.RunFilter) []models.RunEntry {
	switch f {
	case models.FilterOutdoor, models.FilterIndoor:
	default:
		return entries
	}

	want := models.RunTypeOutdoor
	if f == models.FilterIndoor {
		want = models.RunTypeIndoor
	}

	var out []models.RunEntry
	for _, e := range entries {
		if e.Type == want {
			out = append(out, e)
		}
	}
	return out
}

// Between returns entries whose creation date falls within [from, to].
// Entries without a resolvable date are excluded. Zero bounds are open.
func Between(entries []models.RunEntry, from, to time.Time) []models.RunEntry {
	var out []models.RunEntry
	for _, e := range entries {
		if e.CreatedAt == nil {
			continue
		}
		if !from.IsZero() && e.CreatedAt.Before(from) {
			continue
		}
		if !to.IsZero() && e.CreatedAt.After(to) {
			continue
		}
		out = append(out, e)
	}
	return out
}
