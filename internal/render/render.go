// Package render draws a transit map as SVG: route polylines, route
// labels, stop markers, and stop labels, composited in that strict
// z-order so labels never hide under a later route.
package render

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"
	"github.com/lucasb-eyer/go-colorful"

	"transitcatalogue/internal/catalogue"
	"transitcatalogue/internal/models"
	"transitcatalogue/internal/projector"
)

// Render draws every route and stop in cat to w as a single SVG document.
// Routes and stops are each visited in name order so the output is
// deterministic across runs; colors cycle through settings.ColorPalette
// in that same route-name order.
func Render(w io.Writer, cat *catalogue.Catalogue, settings models.RenderSettings) error {
	routes := cat.RoutesSortedByName()
	stops := servedStops(cat)

	coords := routeStopCoords(routes)
	proj := projector.New(coords, settings.Width, settings.Height, settings.Padding)

	canvas := svg.New(w)
	canvas.Start(int(settings.Width), int(settings.Height))
	defer canvas.End()

	routeColor := make(map[int]string, len(routes))
	for i, r := range routes {
		if len(settings.ColorPalette) == 0 {
			routeColor[r.ID] = "black"
			continue
		}
		routeColor[r.ID] = colorCSS(settings.ColorPalette[i%len(settings.ColorPalette)])
	}

	drawRoutePolylines(canvas, proj, routes, routeColor, settings)
	drawRouteLabels(canvas, proj, routes, routeColor, settings)
	drawStopMarkers(canvas, proj, stops, settings)
	drawStopLabels(canvas, proj, stops, settings)

	return nil
}

// servedStops returns, in name order, every stop visited by at least one
// route. A stop with no routes through it is never drawn.
func servedStops(cat *catalogue.Catalogue) []*models.Stop {
	all := cat.StopsSortedByName()
	out := make([]*models.Stop, 0, len(all))
	for _, stop := range all {
		if len(cat.BusesAt(stop.Name)) == 0 {
			continue
		}
		out = append(out, stop)
	}
	return out
}

// routeStopCoords collects the coordinates the projector fits against:
// every stop in every route's expanded sequence, so a stop on no route
// never widens the bounding box.
func routeStopCoords(routes []*models.Route) []models.Coordinate {
	var coords []models.Coordinate
	for _, r := range routes {
		for _, stop := range r.Stops {
			coords = append(coords, stop.Coord)
		}
	}
	return coords
}

func drawRoutePolylines(canvas *svg.SVG, proj *projector.Projector, routes []*models.Route, routeColor map[int]string, s models.RenderSettings) {
	for _, r := range routes {
		if len(r.Stops) == 0 {
			continue
		}
		xs := make([]int, len(r.Stops))
		ys := make([]int, len(r.Stops))
		for i, stop := range r.Stops {
			x, y := proj.Project(stop.Coord)
			xs[i] = int(x)
			ys[i] = int(y)
		}
		style := fmt.Sprintf(
			"fill:none;stroke:%s;stroke-width:%g;stroke-linecap:round;stroke-linejoin:round",
			routeColor[r.ID], s.LineWidth,
		)
		canvas.Polyline(xs, ys, style)
	}
}

func drawRouteLabels(canvas *svg.SVG, proj *projector.Projector, routes []*models.Route, routeColor map[int]string, s models.RenderSettings) {
	for _, r := range routes {
		if r.Terminal == nil {
			continue
		}
		endpoints := []*models.Stop{r.Terminal}
		if !r.IsRoundtrip && len(r.Stops) > 0 {
			mid := r.Stops[len(r.Stops)/2]
			if mid.ID != r.Terminal.ID {
				endpoints = append(endpoints, mid)
			}
		}
		for _, stop := range endpoints {
			x, y := proj.Project(stop.Coord)
			lx := int(x) + int(s.BusLabelOffset[0])
			ly := int(y) + int(s.BusLabelOffset[1])
			underlayerStyle := fmt.Sprintf(
				"fill:%s;stroke:%s;stroke-width:%g;stroke-linecap:round;stroke-linejoin:round;"+
					"font-size:%dpx;font-family:Verdana;font-weight:bold",
				colorCSS(s.UnderlayerColor), colorCSS(s.UnderlayerColor), s.UnderlayerWidth, s.BusLabelFontSize,
			)
			canvas.Text(lx, ly, r.Name, underlayerStyle)
			labelStyle := fmt.Sprintf(
				"fill:%s;font-size:%dpx;font-family:Verdana;font-weight:bold",
				routeColor[r.ID], s.BusLabelFontSize,
			)
			canvas.Text(lx, ly, r.Name, labelStyle)
		}
	}
}

func drawStopMarkers(canvas *svg.SVG, proj *projector.Projector, stops []*models.Stop, s models.RenderSettings) {
	for _, stop := range stops {
		x, y := proj.Project(stop.Coord)
		canvas.Circle(int(x), int(y), int(s.StopRadius), "fill:white")
	}
}

func drawStopLabels(canvas *svg.SVG, proj *projector.Projector, stops []*models.Stop, s models.RenderSettings) {
	for _, stop := range stops {
		x, y := proj.Project(stop.Coord)
		lx := int(x) + int(s.StopLabelOffset[0])
		ly := int(y) + int(s.StopLabelOffset[1])
		underlayerStyle := fmt.Sprintf(
			"fill:%s;stroke:%s;stroke-width:%g;stroke-linecap:round;stroke-linejoin:round;"+
				"font-size:%dpx;font-family:Verdana",
			colorCSS(s.UnderlayerColor), colorCSS(s.UnderlayerColor), s.UnderlayerWidth, s.StopLabelFontSize,
		)
		canvas.Text(lx, ly, stop.Name, underlayerStyle)
		labelStyle := fmt.Sprintf("fill:black;font-size:%dpx;font-family:Verdana", s.StopLabelFontSize)
		canvas.Text(lx, ly, stop.Name, labelStyle)
	}
}

// colorCSS renders a models.Color tagged union as a CSS color string.
// Named colors pass through verbatim; RGB literals are normalized
// through go-colorful to a "#rrggbb" hex string; RGBA literals are
// written as "rgba(r,g,b,a)".
func colorCSS(c models.Color) string {
	switch c.Kind {
	case models.ColorNamed:
		return c.Name
	case models.ColorRGB:
		cc := colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
		return cc.Hex()
	case models.ColorRGBA:
		return fmt.Sprintf("rgba(%d,%d,%d,%g)", c.R, c.G, c.B, c.Alpha)
	default:
		return "black"
	}
}
