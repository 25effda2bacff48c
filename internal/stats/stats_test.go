package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"transitcatalogue/internal/catalogue"
	"transitcatalogue/internal/models"
)

func TestComputeRoundtripTwoStops(t *testing.T) {
	cat := catalogue.New()
	a := cat.AddStop("A", models.Coordinate{Lat: 55.5, Lon: 37.6})
	b := cat.AddStop("B", models.Coordinate{Lat: 55.6, Lon: 37.7})
	cat.SetDistance(a, b, 2500)
	cat.SetDistance(b, a, 2500)

	route := cat.AddBus("256", []string{"A", "B", "A"}, true)
	require.NotNil(t, route)

	got := Compute(cat, route)
	assert.Equal(t, 3, got.StopsCount)
	assert.Equal(t, 2, got.UniqueStopsCount)
	assert.Equal(t, 5000.0, got.RoadLength)
	assert.InDelta(t, 25550.66, got.GeodesicLength, 1)
	// The ratio is well below 1 for this toy example; curvature has no
	// artificial floor, it is the literal road/geodesic ratio.
	assert.InDelta(t, 0.1957, got.Curvature, 1e-3)
}

func TestComputeOutAndBackUsesDeclaredDistanceBothWays(t *testing.T) {
	cat := catalogue.New()
	a := cat.AddStop("A", models.Coordinate{Lat: 55.5, Lon: 37.6})
	b := cat.AddStop("B", models.Coordinate{Lat: 55.6, Lon: 37.7})
	// Only one direction declared; Distance falls back for the reverse leg.
	cat.SetDistance(a, b, 2500)

	route := cat.AddBus("750", []string{"A", "B"}, false)
	require.NotNil(t, route)

	got := Compute(cat, route)
	assert.Equal(t, 3, got.StopsCount)
	assert.Equal(t, 2, got.UniqueStopsCount)
	assert.Equal(t, 5000.0, got.RoadLength)
}

func TestComputeSingleStopRouteHasZeroLength(t *testing.T) {
	cat := catalogue.New()
	cat.AddStop("A", models.Coordinate{Lat: 0, Lon: 0})
	route := cat.AddBus("1", []string{"A"}, true)
	require.NotNil(t, route)

	got := Compute(cat, route)
	assert.Equal(t, 1, got.StopsCount)
	assert.Equal(t, 0.0, got.RoadLength)
	assert.Equal(t, 0.0, got.GeodesicLength)
	assert.Equal(t, 0.0, got.Curvature)
}
