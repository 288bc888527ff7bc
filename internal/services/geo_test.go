package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHaversineMiles_KnownDistance(t *testing.T) {
	// Pebble Beach to Torrey Pines, roughly 370 miles.
	dist := HaversineMiles(36.5674, -121.9500, 32.9004, -117.2517)
	assert.InDelta(t, 370, dist, 15)
}

func TestHaversineMiles_ZeroForSamePoint(t *testing.T) {
	assert.Equal(t, float64(0), HaversineMiles(40.0, -75.0, 40.0, -75.0))
}

func TestHaversineMiles_Symmetric(t *testing.T) {
	a := HaversineMiles(33.7490, -84.3880, 36.1627, -86.7816)
	b := HaversineMiles(36.1627, -86.7816, 33.7490, -84.3880)
	assert.Equal(t, a, b)
}

func TestHaversineMiles_RoundsToWholeMiles(t *testing.T) {
	dist := HaversineMiles(40.7128, -74.0060, 34.0522, -118.2437)
	assert.Equal(t, dist, float64(int64(dist)))
}

func TestHaversineMiles_ShortDistance(t *testing.T) {
	// Two points about 69 miles apart (one degree of latitude).
	dist := HaversineMiles(35.0, -80.0, 36.0, -80.0)
	assert.InDelta(t, 69, dist, 1)
}
