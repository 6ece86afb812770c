package telemetry

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"
)

// CSVWriter streams records as CSV, writing the header once.
type CSVWriter struct {
	w             io.Writer
	headerWritten bool
}

// NewCSVWriter wraps w.
func NewCSVWriter(w io.Writer) *CSVWriter {
	return &CSVWriter{w: w}
}

// Write appends records.
func (cw *CSVWriter) Write(records []Record) error {
	if len(records) == 0 {
		return nil
	}

	if !cw.headerWritten {
		if err := gocsv.Marshal(records, cw.w); err != nil {
			return fmt.Errorf("writing records: %w", err)
		}
		cw.headerWritten = true
		return nil
	}

	if err := gocsv.MarshalWithoutHeaders(records, cw.w); err != nil {
		return fmt.Errorf("writing records: %w", err)
	}
	return nil
}

// WriteCSVFile writes records to path, creating parent directories.
func WriteCSVFile(path string, records []Record) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	if err := NewCSVWriter(f).Write(records); err != nil {
		return err
	}
	return f.Close()
}

// ReadCSV parses records written by CSVWriter.
func ReadCSV(r io.Reader) ([]Record, error) {
	var records []Record
	if err := gocsv.Unmarshal(r, &records); err != nil {
		return nil, fmt.Errorf("reading records: %w", err)
	}
	return records, nil
}
