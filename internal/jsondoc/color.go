package jsondoc

import (
	"fmt"

	json "github.com/goccy/go-json"

	"transitcatalogue/internal/models"
	"transitcatalogue/internal/xerrors"
)

// ColorLiteral decodes a JSON color tagged union: a bare string names a
// CSS/SVG color, a 3-element array is [r, g, b], and a 4-element array
// is [r, g, b, a].
type ColorLiteral struct {
	models.Color
}

// UnmarshalJSON implements json.Unmarshaler by sniffing whether the raw
// value is a JSON string or array before decoding its shape.
func (c *ColorLiteral) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		c.Color = models.Color{Kind: models.ColorNamed, Name: name}
		return nil
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return xerrors.Wrap(xerrors.SchemaError, "color literal is neither a string nor an array", err)
	}

	switch len(raw) {
	case 3:
		var r, g, b int
		if err := json.Unmarshal(raw[0], &r); err != nil {
			return xerrors.Wrap(xerrors.SchemaError, "color red channel", err)
		}
		if err := json.Unmarshal(raw[1], &g); err != nil {
			return xerrors.Wrap(xerrors.SchemaError, "color green channel", err)
		}
		if err := json.Unmarshal(raw[2], &b); err != nil {
			return xerrors.Wrap(xerrors.SchemaError, "color blue channel", err)
		}
		c.Color = models.Color{Kind: models.ColorRGB, R: r, G: g, B: b}
		return nil
	case 4:
		var r, g, b int
		var a float64
		if err := json.Unmarshal(raw[0], &r); err != nil {
			return xerrors.Wrap(xerrors.SchemaError, "color red channel", err)
		}
		if err := json.Unmarshal(raw[1], &g); err != nil {
			return xerrors.Wrap(xerrors.SchemaError, "color green channel", err)
		}
		if err := json.Unmarshal(raw[2], &b); err != nil {
			return xerrors.Wrap(xerrors.SchemaError, "color blue channel", err)
		}
		if err := json.Unmarshal(raw[3], &a); err != nil {
			return xerrors.Wrap(xerrors.SchemaError, "color alpha channel", err)
		}
		c.Color = models.Color{Kind: models.ColorRGBA, R: r, G: g, B: b, Alpha: a}
		return nil
	default:
		return xerrors.New(xerrors.SchemaError, fmt.Sprintf("color array must have 3 or 4 elements, got %d", len(raw)))
	}
}
