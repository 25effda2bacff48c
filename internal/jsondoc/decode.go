package jsondoc

import (
	"io"

	json "github.com/goccy/go-json"

	"transitcatalogue/internal/xerrors"
)

// Decode reads an input batch document from r.
func Decode(r io.Reader) (Document, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return Document{}, xerrors.Wrap(xerrors.InputParseError, "decoding input document", err)
	}
	return doc, nil
}
