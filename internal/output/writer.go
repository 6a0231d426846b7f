// Package output writes cleaned salary tables and drop audits.
package output

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// Format represents output format types.
type Format string

const (
	FormatCSV    Format = "csv"
	FormatJSON   Format = "json"
	FormatJSONL  Format = "jsonl"
	FormatYAML   Format = "yaml"
	FormatSQLite Format = "sqlite"
)

// Valid reports whether f is a supported format.
func (f Format) Valid() bool {
	switch f {
	case FormatCSV, FormatJSON, FormatJSONL, FormatYAML, FormatSQLite:
		return true
	default:
		return false
	}
}

// Writer handles output serialization.
type Writer interface {
	// Write outputs a single row.
	Write(data any) error

	// WriteAll outputs multiple rows.
	WriteAll(data []any) error

	// Flush ensures all data is written.
	Flush() error

	// Close releases resources.
	Close() error
}

// Tabular is implemented by rows that the CSV writer can serialize.
type Tabular interface {
	Strings() []string
}

// WriterOption configures a writer.
type WriterOption func(*writerConfig)

type writerConfig struct {
	pretty bool
	header []string
	table  string
	ctx    context.Context
}

// WithPretty toggles indented JSON output. It is on by default.
func WithPretty(enabled bool) WriterOption {
	return func(c *writerConfig) {
		c.pretty = enabled
	}
}

// WithHeader sets the CSV header row.
func WithHeader(columns []string) WriterOption {
	return func(c *writerConfig) {
		c.header = columns
	}
}

// WithTable sets the SQLite table name.
func WithTable(name string) WriterOption {
	return func(c *writerConfig) {
		c.table = name
	}
}

// WithContext sets the context used for database writes.
func WithContext(ctx context.Context) WriterOption {
	return func(c *writerConfig) {
		c.ctx = ctx
	}
}

func newWriterConfig(opts []WriterOption) *writerConfig {
	cfg := &writerConfig{
		pretty: true,
		table:  DefaultTable,
		ctx:    context.Background(),
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// NewWriter creates a stream writer for the specified format. SQLite needs a
// file path; use Create for it.
func NewWriter(w io.Writer, format Format, opts ...WriterOption) (Writer, error) {
	cfg := newWriterConfig(opts)

	switch format {
	case FormatCSV:
		return NewCSVWriter(w, cfg.header), nil
	case FormatJSON:
		return NewJSONWriter(w, cfg.pretty, "  "), nil
	case FormatJSONL:
		return NewJSONLWriter(w), nil
	case FormatYAML:
		return NewYAMLWriter(w), nil
	case FormatSQLite:
		return nil, fmt.Errorf("%s output needs a file path", format)
	default:
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}
}

// FormatFromPath infers the format from a file extension, defaulting to CSV.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON
	case ".jsonl", ".ndjson":
		return FormatJSONL
	case ".yaml", ".yml":
		return FormatYAML
	case ".db", ".sqlite", ".sqlite3":
		return FormatSQLite
	default:
		return FormatCSV
	}
}
