package output

import (
	"encoding/csv"
	"fmt"
	"io"
)

// CSVWriter writes rows implementing Tabular as comma-separated values.
type CSVWriter struct {
	w           *csv.Writer
	header      []string
	wroteHeader bool
}

// NewCSVWriter creates a CSV writer. The header, if any, is written before
// the first row, or on Flush when there are no rows.
func NewCSVWriter(w io.Writer, header []string) *CSVWriter {
	return &CSVWriter{
		w:      csv.NewWriter(w),
		header: header,
	}
}

func (w *CSVWriter) writeHeader() error {
	if w.wroteHeader || len(w.header) == 0 {
		return nil
	}
	w.wroteHeader = true
	return w.w.Write(w.header)
}

// Write writes a single row.
func (w *CSVWriter) Write(data any) error {
	row, ok := data.(Tabular)
	if !ok {
		return fmt.Errorf("csv writer: %T has no tabular form", data)
	}
	if err := w.writeHeader(); err != nil {
		return err
	}
	return w.w.Write(row.Strings())
}

// WriteAll writes multiple rows.
func (w *CSVWriter) WriteAll(data []any) error {
	for _, item := range data {
		if err := w.Write(item); err != nil {
			return err
		}
	}
	return nil
}

// Flush writes any buffered data.
func (w *CSVWriter) Flush() error {
	if err := w.writeHeader(); err != nil {
		return err
	}
	w.w.Flush()
	return w.w.Error()
}

// Close flushes the writer.
func (w *CSVWriter) Close() error {
	return w.Flush()
}
