// Package jsondoc is the textual JSON boundary: it decodes the input
// batch document into plain Go structs and encodes a jsonvalue.Value
// tree into bytes, using goccy/go-json as the underlying codec. Nothing
// above this package touches encoding/json directly.
package jsondoc

// Document is the whole input batch: base requests that populate the
// catalogue, the render and routing settings, and the stat requests to
// answer against the populated catalogue.
type Document struct {
	BaseRequests    []BaseRequest   `json:"base_requests"`
	RenderSettings  RenderSettings  `json:"render_settings"`
	RoutingSettings RoutingSettings `json:"routing_settings"`
	StatRequests    []StatRequest   `json:"stat_requests"`
}

// BaseRequest is either a Stop or a Bus declaration, distinguished by
// Type. Only the fields relevant to Type are populated.
type BaseRequest struct {
	Type string `json:"type"` // "Stop" or "Bus"

	// Stop fields.
	Name          string             `json:"name"`
	Latitude      float64            `json:"latitude"`
	Longitude     float64            `json:"longitude"`
	RoadDistances map[string]float64 `json:"road_distances"`

	// Bus fields.
	Stops       []string `json:"stops"`
	IsRoundtrip bool     `json:"is_roundtrip"`
}

// StatRequest is a single query against the built catalogue.
type StatRequest struct {
	ID   int    `json:"id"`
	Type string `json:"type"` // "Stop", "Bus", "Map", or "Route"
	Name string `json:"name"`
	From string `json:"from"`
	To   string `json:"to"`
}

// RenderSettings mirrors models.RenderSettings in its wire shape: flat
// numeric fields plus the color literals, which the JSON form expresses
// as either a bare string or a 3/4-element array.
type RenderSettings struct {
	Width             float64        `json:"width"`
	Height            float64        `json:"height"`
	Padding           float64        `json:"padding"`
	LineWidth         float64        `json:"line_width"`
	StopRadius        float64        `json:"stop_radius"`
	BusLabelFontSize  int            `json:"bus_label_font_size"`
	BusLabelOffset    [2]float64     `json:"bus_label_offset"`
	StopLabelFontSize int            `json:"stop_label_font_size"`
	StopLabelOffset   [2]float64     `json:"stop_label_offset"`
	UnderlayerColor   ColorLiteral   `json:"underlayer_color"`
	UnderlayerWidth   float64        `json:"underlayer_width"`
	ColorPalette      []ColorLiteral `json:"color_palette"`
}

// RoutingSettings mirrors models.RoutingSettings in its wire shape.
type RoutingSettings struct {
	BusWaitTime float64 `json:"bus_wait_time"`
	BusVelocity float64 `json:"bus_velocity"`
}
