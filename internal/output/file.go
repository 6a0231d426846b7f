package output

import (
	"fmt"
	"os"
	"path/filepath"
)

// fileWriter closes the underlying file after the wrapped writer.
type fileWriter struct {
	Writer
	f *os.File
}

func (w *fileWriter) Close() error {
	err := w.Writer.Close()
	if cerr := w.f.Close(); err == nil {
		err = cerr
	}
	return err
}

// Create opens a writer on path, creating parent directories as needed. An
// existing file is replaced, but only once the format is known to be valid.
func Create(path string, format Format, opts ...WriterOption) (Writer, error) {
	if !format.Valid() {
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	if format == FormatSQLite {
		cfg := newWriterConfig(opts)
		return NewSQLiteWriter(cfg.ctx, path, cfg.table)
	}

	f, err := os.Create(path) //#nosec G304 -- CLI tool writes to user-specified output file
	if err != nil {
		return nil, fmt.Errorf("failed to create output file: %w", err)
	}

	w, err := NewWriter(f, format, opts...)
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	return &fileWriter{Writer: w, f: f}, nil
}

// WriteRows writes rows to path in one call.
func WriteRows[T any](path string, format Format, rows []T, opts ...WriterOption) error {
	w, err := Create(path, format, opts...)
	if err != nil {
		return err
	}

	items := make([]any, len(rows))
	for i, r := range rows {
		items[i] = r
	}
	if err := w.WriteAll(items); err != nil {
		_ = w.Close()
		return err
	}
	return w.Close()
}
