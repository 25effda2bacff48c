// Package dispatcher runs the batch pipeline end to end: ingest stops
// and routes into a Catalogue, build the projector and router against
// the finished Catalogue, then answer each stat request in order and
// assemble the results into one output document.
package dispatcher

import (
	"bytes"
	"fmt"

	"go.uber.org/zap"

	"transitcatalogue/internal/catalogue"
	"transitcatalogue/internal/jsondoc"
	"transitcatalogue/internal/jsonvalue"
	"transitcatalogue/internal/models"
	"transitcatalogue/internal/render"
	"transitcatalogue/internal/router"
	"transitcatalogue/internal/stats"
	"transitcatalogue/internal/xerrors"
)

const (
	reqTypeStop  = "Stop"
	reqTypeBus   = "Bus"
	reqTypeMap   = "Map"
	reqTypeRoute = "Route"
)

// Run ingests doc's base requests, builds the derived indices, answers
// every stat request, and returns the assembled response document.
//
// A request whose reference is unknown reports an error_message in its
// own slot and does not affect the others; a malformed document fails
// the whole run before any request is answered.
func Run(doc jsondoc.Document, log *zap.SugaredLogger) (jsonvalue.Value, error) {
	log.Info("ingesting base requests")
	cat, err := ingest(doc.BaseRequests)
	if err != nil {
		return jsonvalue.Value{}, err
	}
	log.Infow("catalogue built", "stops", len(cat.Stops()), "routes", len(cat.Routes()))

	renderSettings := toRenderSettings(doc.RenderSettings)
	routingSettings := models.RoutingSettings{
		BusWaitTime: doc.RoutingSettings.BusWaitTime,
		BusVelocity: doc.RoutingSettings.BusVelocity,
	}

	log.Info("building router graph")
	rt := router.Build(cat, routingSettings)

	var mapSVG []byte // rendered lazily, at most once

	builder := jsonvalue.NewBuilder().StartArray()
	for _, req := range doc.StatRequests {
		log.Debugw("answering stat request", "id", req.ID, "type", req.Type)
		item, svgNeeded := answer(cat, rt, req)
		if svgNeeded && mapSVG == nil {
			var buf bytes.Buffer
			if err := render.Render(&buf, cat, renderSettings); err != nil {
				return jsonvalue.Value{}, xerrors.Wrap(xerrors.InputParseError, "rendering map", err)
			}
			mapSVG = buf.Bytes()
		}
		if svgNeeded {
			item = withMap(item, string(mapSVG))
		}
		builder.Value(item)
	}
	builder.EndArray()

	return builder.Build()
}

func ingest(requests []jsondoc.BaseRequest) (*catalogue.Catalogue, error) {
	cat := catalogue.New()

	for _, r := range requests {
		if r.Type == reqTypeStop {
			cat.AddStop(r.Name, models.Coordinate{Lat: r.Latitude, Lon: r.Longitude})
		}
	}

	for _, r := range requests {
		if r.Type != reqTypeStop {
			continue
		}
		from := cat.FindStop(r.Name)
		for toName, meters := range r.RoadDistances {
			to := cat.FindStop(toName)
			if to == nil {
				return nil, xerrors.New(xerrors.SchemaError, fmt.Sprintf("road_distances references unknown stop %q from %q", toName, r.Name))
			}
			cat.SetDistance(from, to, meters)
		}
	}

	for _, r := range requests {
		if r.Type == reqTypeBus {
			cat.AddBus(r.Name, r.Stops, r.IsRoundtrip)
		}
	}

	return cat, nil
}

// answer produces the response item for one stat request. The second
// return value reports whether this item still needs the rendered map
// SVG spliced into it.
func answer(cat *catalogue.Catalogue, rt *router.Router, req jsondoc.StatRequest) (jsonvalue.Value, bool) {
	switch req.Type {
	case reqTypeBus:
		return answerBus(cat, req), false
	case reqTypeStop:
		return answerStop(cat, req), false
	case reqTypeRoute:
		return answerRoute(cat, rt, req), false
	case reqTypeMap:
		v, err := jsonvalue.NewBuilder().StartDict().Key("request_id").Value(jsonvalue.Int(req.ID)).EndDict().Build()
		if err != nil {
			return errorItem(req.ID, err.Error()), false
		}
		return v, true
	default:
		return errorItem(req.ID, fmt.Sprintf("unknown request type %q", req.Type)), false
	}
}

func answerBus(cat *catalogue.Catalogue, req jsondoc.StatRequest) jsonvalue.Value {
	route := cat.FindBus(req.Name)
	if route == nil {
		return errorItem(req.ID, "not found")
	}
	s := stats.Compute(cat, route)
	v, err := jsonvalue.NewBuilder().
		StartDict().
		Key("request_id").Value(jsonvalue.Int(req.ID)).
		Key("stop_count").Value(jsonvalue.Int(s.StopsCount)).
		Key("unique_stop_count").Value(jsonvalue.Int(s.UniqueStopsCount)).
		Key("route_length").Value(jsonvalue.Float(s.RoadLength)).
		Key("curvature").Value(jsonvalue.Float(s.Curvature)).
		EndDict().
		Build()
	if err != nil {
		return errorItem(req.ID, err.Error())
	}
	return v
}

func answerStop(cat *catalogue.Catalogue, req jsondoc.StatRequest) jsonvalue.Value {
	stop := cat.FindStop(req.Name)
	if stop == nil {
		return errorItem(req.ID, "not found")
	}
	buses := cat.BusesAt(req.Name)

	b := jsonvalue.NewBuilder().StartDict().
		Key("request_id").Value(jsonvalue.Int(req.ID)).
		Key("buses").StartArray()
	for _, name := range buses {
		b.Value(jsonvalue.String(name))
	}
	v, err := b.EndArray().EndDict().Build()
	if err != nil {
		return errorItem(req.ID, err.Error())
	}
	return v
}

func answerRoute(cat *catalogue.Catalogue, rt *router.Router, req jsondoc.StatRequest) jsonvalue.Value {
	from := cat.FindStop(req.From)
	to := cat.FindStop(req.To)
	if from == nil || to == nil {
		return errorItem(req.ID, "not found")
	}

	itinerary, ok := rt.FindRoute(from, to)
	if !ok {
		return errorItem(req.ID, "not found")
	}

	b := jsonvalue.NewBuilder().StartDict().
		Key("request_id").Value(jsonvalue.Int(req.ID)).
		Key("total_time").Value(jsonvalue.Float(itinerary.TotalTime)).
		Key("items").StartArray()
	for _, item := range itinerary.Items {
		b.StartDict().Key("type").Value(jsonvalue.String(string(item.Kind)))
		switch item.Kind {
		case models.ItemWait:
			b.Key("stop_name").Value(jsonvalue.String(item.StopName))
		case models.ItemBus:
			b.Key("bus").Value(jsonvalue.String(item.BusName)).
				Key("span_count").Value(jsonvalue.Int(item.SpanCount))
		}
		b.Key("time").Value(jsonvalue.Float(item.Time)).EndDict()
	}
	v, err := b.EndArray().EndDict().Build()
	if err != nil {
		return errorItem(req.ID, err.Error())
	}
	return v
}

func errorItem(id int, message string) jsonvalue.Value {
	v, _ := jsonvalue.NewBuilder().
		StartDict().
		Key("request_id").Value(jsonvalue.Int(id)).
		Key("error_message").Value(jsonvalue.String(message)).
		EndDict().
		Build()
	return v
}

// withMap splices a "map" key holding the SVG document into an already
// built dict Value.
func withMap(v jsonvalue.Value, svg string) jsonvalue.Value {
	if v.Kind != jsonvalue.KindDict {
		return v
	}
	v.Dict["map"] = jsonvalue.String(svg)
	v.Order = append(v.Order, "map")
	return v
}

func toRenderSettings(rs jsondoc.RenderSettings) models.RenderSettings {
	palette := make([]models.Color, len(rs.ColorPalette))
	for i, c := range rs.ColorPalette {
		palette[i] = c.Color
	}
	return models.RenderSettings{
		Width:             rs.Width,
		Height:            rs.Height,
		Padding:           rs.Padding,
		LineWidth:         rs.LineWidth,
		StopRadius:        rs.StopRadius,
		BusLabelFontSize:  rs.BusLabelFontSize,
		BusLabelOffset:    rs.BusLabelOffset,
		StopLabelFontSize: rs.StopLabelFontSize,
		StopLabelOffset:   rs.StopLabelOffset,
		UnderlayerColor:   rs.UnderlayerColor.Color,
		UnderlayerWidth:   rs.UnderlayerWidth,
		ColorPalette:      palette,
	}
}
