package jsondoc

import (
	"bytes"
	"io"

	json "github.com/goccy/go-json"

	"transitcatalogue/internal/jsonvalue"
	"transitcatalogue/internal/xerrors"
)

// Encode writes v to w as JSON. When pretty is true, the document is
// indented two spaces per level for manual inspection.
func Encode(w io.Writer, v jsonvalue.Value, pretty bool) error {
	raw, err := toRaw(v)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(w)
	if pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(raw); err != nil {
		return xerrors.Wrap(xerrors.InputParseError, "encoding output document", err)
	}
	return nil
}

// toRaw converts a jsonvalue.Value tree into plain Go values (maps keyed
// in insertion order via json.RawMessage composition for dicts, native
// slices for arrays) that goccy/go-json can marshal directly.
func toRaw(v jsonvalue.Value) (interface{}, error) {
	switch v.Kind {
	case jsonvalue.KindNull:
		return nil, nil
	case jsonvalue.KindBool:
		return v.Bool, nil
	case jsonvalue.KindInt:
		return v.Int, nil
	case jsonvalue.KindFloat:
		return v.Float, nil
	case jsonvalue.KindString:
		return v.Str, nil
	case jsonvalue.KindArray:
		out := make([]interface{}, len(v.Arr))
		for i, item := range v.Arr {
			raw, err := toRaw(item)
			if err != nil {
				return nil, err
			}
			out[i] = raw
		}
		return out, nil
	case jsonvalue.KindDict:
		return orderedDict(v)
	default:
		return nil, xerrors.New(xerrors.InputParseError, "unknown jsonvalue.Kind during encode")
	}
}

// orderedDict marshals a dictionary Value by hand, writing its keys in
// v.Order rather than Go's randomized map iteration order, since stat
// responses should render their fields in a stable, readable sequence.
func orderedDict(v jsonvalue.Value) (json.RawMessage, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range v.Order {
		if i > 0 {
			buf.WriteByte(',')
		}
		keyJSON, err := json.Marshal(key)
		if err != nil {
			return nil, xerrors.Wrap(xerrors.InputParseError, "encoding dict key", err)
		}
		buf.Write(keyJSON)
		buf.WriteByte(':')

		raw, err := toRaw(v.Dict[key])
		if err != nil {
			return nil, err
		}
		valJSON, err := json.Marshal(raw)
		if err != nil {
			return nil, xerrors.Wrap(xerrors.InputParseError, "encoding dict value", err)
		}
		buf.Write(valJSON)
	}
	buf.WriteByte('}')
	return json.RawMessage(buf.Bytes()), nil
}
