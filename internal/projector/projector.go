// Package projector maps geographic coordinates onto SVG canvas
// coordinates using an equirectangular bounding-box fit.
package projector

import "transitcatalogue/internal/models"

const epsilon = 1e-6

// Projector converts (lat, lon) to (x, y) in the padded canvas rectangle
// spanned by the stops it was built from.
type Projector struct {
	minLon, maxLon float64
	minLat, maxLat float64
	zoom           float64
	padding        float64
}

// New fits a Projector to the given coordinates so that every one of
// them lands within [padding, width-padding] x [padding, height-padding].
//
// When all points share a longitude, or all share a latitude, the
// corresponding zoom factor is undefined (division by zero); such axes
// are treated as non-scaling. When both axes are degenerate (a single
// distinct point, or all points coincident), zoom is 0 and every point
// projects to the same corner, offset only by padding.
func New(coords []models.Coordinate, width, height, padding float64) *Projector {
	p := &Projector{padding: padding}
	if len(coords) == 0 {
		return p
	}

	p.minLon, p.maxLon = coords[0].Lon, coords[0].Lon
	p.minLat, p.maxLat = coords[0].Lat, coords[0].Lat
	for _, c := range coords[1:] {
		if c.Lon < p.minLon {
			p.minLon = c.Lon
		}
		if c.Lon > p.maxLon {
			p.maxLon = c.Lon
		}
		if c.Lat < p.minLat {
			p.minLat = c.Lat
		}
		if c.Lat > p.maxLat {
			p.maxLat = c.Lat
		}
	}

	lonSpan := p.maxLon - p.minLon
	latSpan := p.maxLat - p.minLat

	var zoomX, zoomY float64
	var haveX, haveY bool
	if usable := width - 2*padding; lonSpan > epsilon && usable > 0 {
		zoomX = usable / lonSpan
		haveX = true
	}
	if usable := height - 2*padding; latSpan > epsilon && usable > 0 {
		zoomY = usable / latSpan
		haveY = true
	}

	switch {
	case haveX && haveY:
		p.zoom = min(zoomX, zoomY)
	case haveX:
		p.zoom = zoomX
	case haveY:
		p.zoom = zoomY
	default:
		p.zoom = 0
	}

	return p
}

// Project converts a geographic coordinate into canvas (x, y).
//
// Latitude increases northward but SVG y increases downward, so the
// latitude axis is flipped: north maps to a smaller y.
func (p *Projector) Project(c models.Coordinate) (x, y float64) {
	x = (c.Lon-p.minLon)*p.zoom + p.padding
	y = (p.maxLat-c.Lat)*p.zoom + p.padding
	return x, y
}
