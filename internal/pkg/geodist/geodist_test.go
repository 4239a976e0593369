package geodist

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHaversine_SameLocation(t *testing.T) {
	d := Haversine(35.6812, 139.7671, 35.6812, 139.7671)
	assert.Less(t, d, 0.1)
}

func TestHaversine_TokyoToOsaka(t *testing.T) {
	// Tokyo Tower -> Osaka Castle, roughly 400km.
	d := Haversine(35.6812, 139.7671, 34.6937, 135.5023)
	assert.Greater(t, d, 390000.0)
	assert.Less(t, d, 410000.0)
}

func TestHaversine_TokyoToSapporo(t *testing.T) {
	// Roughly 830km.
	d := Haversine(35.6812, 139.7671, 43.0642, 141.3469)
	assert.Greater(t, d, 810000.0)
	assert.Less(t, d, 850000.0)
}

func TestHaversine_NegativeCoordinates(t *testing.T) {
	// London -> New York, roughly 5,570km.
	d := Haversine(51.5074, -0.1278, 40.7128, -74.0060)
	assert.Greater(t, d, 5500000.0)
	assert.Less(t, d, 5600000.0)
}
