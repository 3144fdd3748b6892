package sampleelevation

import (
	"encoding/json"
	"io/fs"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	documentsWritten = promauto.NewCounter(prometheus.CounterOpts{
		Name: "sampleelevation_documents_written_total",
		Help: "The total number of sample documents written",
	})
	documentWriteFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "sampleelevation_document_write_failures_total",
		Help: "The total number of failed sample document writes",
	})
)

// MarshalSampleData returns grid as an indented JSON sample document.
func MarshalSampleData(grid *Grid) ([]byte, error) {
	if err := grid.Validate(); err != nil {
		return nil, err
	}
	return json.MarshalIndent(grid, "", "  ")
}

// WriteSampleData writes grid as a sample document to outputPath, replacing
// any existing file. Missing parent directories are not created.
func WriteSampleData(outputPath string, grid *Grid) error {
	data, err := MarshalSampleData(grid)
	if err != nil {
		documentWriteFailures.Inc()
		return err
	}
	if err := os.WriteFile(outputPath, data, 0o644); err != nil {
		documentWriteFailures.Inc()
		return err
	}
	documentsWritten.Inc()
	return nil
}

// ReadSampleData reads and validates the sample document name from fsys.
func ReadSampleData(fsys fs.FS, name string) (*Grid, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, err
	}
	var grid Grid
	if err := json.Unmarshal(data, &grid); err != nil {
		return nil, err
	}
	if err := grid.Validate(); err != nil {
		return nil, err
	}
	return &grid, nil
}
