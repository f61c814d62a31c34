package codec

import (
	"fmt"
	"io"

	"inventoryviewer/internal/domain"

	"gopkg.in/yaml.v3"
)

// YAMLCodec handles YAML export
type YAMLCodec struct{}

// NewYAMLCodec creates a new YAML codec
func NewYAMLCodec() *YAMLCodec {
	return &YAMLCodec{}
}

// Format returns the codec format identifier
func (c *YAMLCodec) Format() string {
	return "yaml"
}

// ContentType returns the MIME type of the output
func (c *YAMLCodec) ContentType() string {
	return "application/x-yaml"
}

type yamlTable struct {
	Type string             `yaml:"type"`
	Rows []domain.ModuleRow `yaml:"rows"`
}

// Export writes the tables as a YAML document keyed by "tables"
func (c *YAMLCodec) Export(tables []domain.ModuleTable, w io.Writer) error {
	doc := struct {
		Tables []yamlTable `yaml:"tables"`
	}{Tables: make([]yamlTable, 0, len(tables))}

	for _, t := range tables {
		doc.Tables = append(doc.Tables, yamlTable{Type: t.Title(), Rows: t.Rows})
	}

	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	defer encoder.Close()

	if err := encoder.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}

	return nil
}
