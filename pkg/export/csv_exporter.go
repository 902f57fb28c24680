package export

import (
	"fmt"

	"github.com/gocarina/gocsv"
)

// Dataset defines tabular export content. Weights optionally sizes the
// columns relative to each other; Summary is printed under the table.
type Dataset struct {
	Headers []string
	Weights []float64
	Rows    []map[string]string
	Summary string
}

// CSVExporter renders slices of csv-tagged structs into CSV bytes.
type CSVExporter struct{}

// NewCSVExporter builds a CSV exporter.
func NewCSVExporter() *CSVExporter {
	return &CSVExporter{}
}

// Render marshals rows, which must be a slice of structs (or pointers to
// structs) with csv tags. The header line is always written.
func (e *CSVExporter) Render(rows interface{}) ([]byte, error) {
	out, err := gocsv.MarshalBytes(rows)
	if err != nil {
		return nil, fmt.Errorf("render csv: %w", err)
	}
	return out, nil
}
