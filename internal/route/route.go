package route

import (
	"github.com/golang/geo/s2"

	"github.com/runlog/runlog-backend-go/internal/models"
)

// EarthRadiusMeters is Earth's mean radius.
const EarthRadiusMeters = 6371000.0

// HaversineDistance calculates the great-circle distance between two
// points in meters.
func HaversineDistance(lat1, lon1, lat2, lon2 float64) float64 {
	p1 := s2.LatLngFromDegrees(lat1, lon1)
	p2 := s2.LatLngFromDegrees(lat2, lon2)
	return p1.Distance(p2).Radians() * EarthRadiusMeters
}

// DistanceFromSamples sums the great-circle distance over an ordered
// sequence of location samples, in meters.
func DistanceFromSamples(samples []models.LocationSample) float64 {
	var total float64
	for i := 1; i < len(samples); i++ {
		total += HaversineDistance(
			samples[i-1].Latitude, samples[i-1].Longitude,
			samples[i].Latitude, samples[i].Longitude,
		)
	}
	return total
}

// DistanceFromCoordinates sums the great-circle distance over an
// ordered sequence of [lat, lng] pairs, in meters. Malformed pairs are
// skipped.
func DistanceFromCoordinates(coords [][]float64) float64 {
	var total float64
	var prev []float64
	for _, c := range coords {
		if len(c) < 2 {
			continue
		}
		if prev != nil {
			total += HaversineDistance(prev[0], prev[1], c[0], c[1])
		}
		prev = c
	}
	return total
}

// ElevationGainMeters sums the positive altitude deltas over an ordered
// sequence of location samples. Descents do not subtract.
func ElevationGainMeters(samples []models.LocationSample) float64 {
	var gain float64
	for i := 1; i < len(samples); i++ {
		if d := samples[i].Altitude - samples[i-1].Altitude; d > 0 {
			gain += d
		}
	}
	return gain
}
