package codec

import (
	"encoding/json"
	"fmt"
	"io"

	"inventoryviewer/internal/domain"
)

// JSONCodec handles JSON export
type JSONCodec struct{}

// NewJSONCodec creates a new JSON codec
func NewJSONCodec() *JSONCodec {
	return &JSONCodec{}
}

// Format returns the codec format identifier
func (c *JSONCodec) Format() string {
	return "json"
}

// ContentType returns the MIME type of the output
func (c *JSONCodec) ContentType() string {
	return "application/json"
}

type jsonTable struct {
	Type string             `json:"type"`
	Rows []domain.ModuleRow `json:"rows"`
}

// Export writes the tables as a JSON array
func (c *JSONCodec) Export(tables []domain.ModuleTable, w io.Writer) error {
	out := make([]jsonTable, 0, len(tables))
	for _, t := range tables {
		out = append(out, jsonTable{Type: t.Title(), Rows: t.Rows})
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(out); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}

	return nil
}
