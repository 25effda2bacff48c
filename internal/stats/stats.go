// Package stats derives the aggregate RouteStats a route query reports:
// stop counts, road length, geodesic length, and the curvature ratio
// between them.
package stats

import (
	"transitcatalogue/internal/catalogue"
	"transitcatalogue/internal/geo"
	"transitcatalogue/internal/models"
)

// Compute returns the RouteStats for route, reading road distances from
// cat and falling back through cat's read-time distance policy for any
// leg whose reverse direction was the one declared.
func Compute(cat *catalogue.Catalogue, route *models.Route) models.RouteStats {
	stopsCount := len(route.Stops)

	unique := make(map[int]struct{}, stopsCount)
	for _, s := range route.Stops {
		unique[s.ID] = struct{}{}
	}

	var road, geodesic float64
	for i := 1; i < len(route.Stops); i++ {
		from, to := route.Stops[i-1], route.Stops[i]
		road += cat.Distance(from, to)
		geodesic += geo.Distance(from.Coord.Lat, from.Coord.Lon, to.Coord.Lat, to.Coord.Lon)
	}

	var curvature float64
	if geodesic > 0 {
		curvature = road / geodesic
	}

	return models.RouteStats{
		StopsCount:       stopsCount,
		UniqueStopsCount: len(unique),
		RoadLength:       road,
		GeodesicLength:   geodesic,
		Curvature:        curvature,
	}
}
