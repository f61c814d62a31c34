package codec

import (
	"encoding/csv"
	"fmt"
	"io"

	"inventoryviewer/internal/domain"
)

// CSVCodec handles CSV export: one row per module, prefixed by its type
type CSVCodec struct{}

// NewCSVCodec creates a new CSV codec
func NewCSVCodec() *CSVCodec {
	return &CSVCodec{}
}

// Format returns the codec format identifier
func (c *CSVCodec) Format() string {
	return "csv"
}

// ContentType returns the MIME type of the output
func (c *CSVCodec) ContentType() string {
	return "text/csv; charset=utf-8"
}

// Export writes a header row followed by every module row
func (c *CSVCodec) Export(tables []domain.ModuleTable, w io.Writer) error {
	cw := csv.NewWriter(w)

	header := []string{"Typ"}
	for _, col := range domain.Columns {
		header = append(header, col.Header)
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, t := range tables {
		for _, row := range t.Rows {
			record := append([]string{t.Title()}, row.Values()...)
			if err := cw.Write(record); err != nil {
				return fmt.Errorf("failed to write CSV row: %w", err)
			}
		}
	}

	cw.Flush()
	return cw.Error()
}
