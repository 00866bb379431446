package route

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/runlog/runlog-backend-go/internal/models"
)

func TestHaversineDistance(t *testing.T) {
	// One degree of latitude is roughly 111.2 km.
	d := HaversineDistance(0, 0, 1, 0)
	assert.InDelta(t, 111195, d, 200)

	assert.Equal(t, float64(0), HaversineDistance(51.5, -0.12, 51.5, -0.12))
}

func TestDistanceFromSamples(t *testing.T) {
	samples := []models.LocationSample{
		{Latitude: 0, Longitude: 0},
		{Latitude: 0.5, Longitude: 0},
		{Latitude: 1, Longitude: 0},
	}
	// Two half-degree legs sum to one degree of latitude.
	assert.InDelta(t, HaversineDistance(0, 0, 1, 0), DistanceFromSamples(samples), 1)

	assert.Equal(t, float64(0), DistanceFromSamples(nil))
	assert.Equal(t, float64(0), DistanceFromSamples(samples[:1]))
}

func TestDistanceFromCoordinates(t *testing.T) {
	coords := [][]float64{{0, 0}, {1, 0}}
	assert.InDelta(t, HaversineDistance(0, 0, 1, 0), DistanceFromCoordinates(coords), 1)

	// Malformed pairs are skipped, not counted.
	withJunk := [][]float64{{0, 0}, {42}, {1, 0}}
	assert.InDelta(t, DistanceFromCoordinates(coords), DistanceFromCoordinates(withJunk), 1)
}

func TestElevationGainMeters(t *testing.T) {
	samples := []models.LocationSample{
		{Altitude: 100},
		{Altitude: 150}, // +50
		{Altitude: 120}, // descent ignored
		{Altitude: 180}, // +60
	}
	assert.Equal(t, float64(110), ElevationGainMeters(samples))
	assert.Equal(t, float64(0), ElevationGainMeters(nil))
}
