// Package codec renders inventory tables into downloadable formats.
package codec

import (
	"io"
	"sort"

	"inventoryviewer/internal/domain"
)

// Exporter writes rendered inventory tables in one format
type Exporter interface {
	Export(tables []domain.ModuleTable, w io.Writer) error
	Format() string
	ContentType() string
}

// Registry looks exporters up by format name
type Registry struct {
	exporters map[string]Exporter
}

// NewRegistry creates a registry holding the given exporters
func NewRegistry(exporters ...Exporter) *Registry {
	r := &Registry{exporters: make(map[string]Exporter, len(exporters))}
	for _, e := range exporters {
		r.exporters[e.Format()] = e
	}
	return r
}

// DefaultRegistry returns a registry with the JSON, YAML and CSV exporters
func DefaultRegistry() *Registry {
	return NewRegistry(NewJSONCodec(), NewYAMLCodec(), NewCSVCodec())
}

// Get returns the exporter for format
func (r *Registry) Get(format string) (Exporter, bool) {
	e, ok := r.exporters[format]
	return e, ok
}

// Formats lists the registered format names, sorted
func (r *Registry) Formats() []string {
	formats := make([]string, 0, len(r.exporters))
	for f := range r.exporters {
		formats = append(formats, f)
	}
	sort.Strings(formats)
	return formats
}
