package catalogue

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"transitcatalogue/internal/models"
)

func TestAddStopAndFind(t *testing.T) {
	c := New()
	c.AddStop("A", models.Coordinate{Lat: 55.5, Lon: 37.6})

	got := c.FindStop("A")
	require.NotNil(t, got)
	assert.Equal(t, "A", got.Name)
	assert.Equal(t, 55.5, got.Coord.Lat)

	assert.Nil(t, c.FindStop("unknown"))
}

func TestAddStopDuplicateKeepsIdentity(t *testing.T) {
	c := New()
	first := c.AddStop("A", models.Coordinate{Lat: 1, Lon: 1})
	second := c.AddStop("A", models.Coordinate{Lat: 2, Lon: 2})

	assert.Same(t, first, second)
	assert.Equal(t, 2.0, first.Coord.Lat)
}

func TestAddBusRoundtrip(t *testing.T) {
	c := New()
	c.AddStop("A", models.Coordinate{Lat: 55.5, Lon: 37.6})
	c.AddStop("B", models.Coordinate{Lat: 55.6, Lon: 37.7})
	c.AddStop("C", models.Coordinate{Lat: 55.7, Lon: 37.8})

	route := c.AddBus("256", []string{"A", "B", "C", "A"}, true)
	require.NotNil(t, route)
	assert.True(t, route.IsRoundtrip)
	assert.Len(t, route.Stops, 4)
	assert.Equal(t, "A", route.Terminal.Name)
}

func TestAddBusOutAndBackExpands(t *testing.T) {
	c := New()
	c.AddStop("A", models.Coordinate{Lat: 55.5, Lon: 37.6})
	c.AddStop("B", models.Coordinate{Lat: 55.6, Lon: 37.7})

	route := c.AddBus("750", []string{"A", "B"}, false)
	require.NotNil(t, route)
	assert.False(t, route.IsRoundtrip)
	// S + reverse(S)[1:] == [A, B, A]
	names := stopNames(route.Stops)
	assert.Equal(t, []string{"A", "B", "A"}, names)
}

func TestDistanceDeclaredDirection(t *testing.T) {
	c := New()
	a := c.AddStop("A", models.Coordinate{Lat: 55.5, Lon: 37.6})
	b := c.AddStop("B", models.Coordinate{Lat: 55.6, Lon: 37.7})

	c.SetDistance(a, b, 2500)
	assert.Equal(t, 2500.0, c.Distance(a, b))
}

func TestDistanceFallsBackToReverseDeclaration(t *testing.T) {
	c := New()
	a := c.AddStop("A", models.Coordinate{Lat: 55.5, Lon: 37.6})
	b := c.AddStop("B", models.Coordinate{Lat: 55.6, Lon: 37.7})

	// Only the reverse direction is declared.
	c.SetDistance(b, a, 1800)
	assert.Equal(t, 1800.0, c.Distance(a, b))
}

func TestDistanceUnknownPairIsZero(t *testing.T) {
	c := New()
	a := c.AddStop("A", models.Coordinate{Lat: 55.5, Lon: 37.6})
	b := c.AddStop("B", models.Coordinate{Lat: 55.6, Lon: 37.7})

	assert.Equal(t, 0.0, c.Distance(a, b))
}

func TestBusesAtSortedAndDeduplicated(t *testing.T) {
	c := New()
	c.AddStop("A", models.Coordinate{Lat: 55.5, Lon: 37.6})
	c.AddStop("B", models.Coordinate{Lat: 55.6, Lon: 37.7})
	c.AddBus("750", []string{"A", "B"}, false) // visits A twice via expansion
	c.AddBus("256", []string{"A", "B"}, true)

	assert.Equal(t, []string{"256", "750"}, c.BusesAt("A"))
}

func TestBusesAtIsolatedStop(t *testing.T) {
	c := New()
	c.AddStop("Lonely", models.Coordinate{Lat: 0, Lon: 0})

	assert.Equal(t, []string{}, c.BusesAt("Lonely"))
	assert.Nil(t, c.BusesAt("unknown"))
}

func stopNames(stops []*models.Stop) []string {
	out := make([]string, len(stops))
	for i, s := range stops {
		out[i] = s.Name
	}
	return out
}
