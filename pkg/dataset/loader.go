package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Loader reads a raw table from r.
type Loader interface {
	Load(r io.Reader) (*Table, error)

	// Name returns the loader type for logging.
	Name() string
}

// CSVLoader reads delimited text.
type CSVLoader struct {
	Schema Schema
	Comma  rune
}

// NewCSVLoader creates a comma-separated loader.
func NewCSVLoader(s Schema) *CSVLoader {
	return &CSVLoader{Schema: s, Comma: ','}
}

// Load reads every record, then applies the schema.
func (l *CSVLoader) Load(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	cr.Comma = l.Comma
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	var rows []row
	for {
		cells, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read delimited input: %w", err)
		}
		line, _ := cr.FieldPos(0)
		rows = append(rows, row{line: line, cells: cells})
	}

	return l.Schema.build(rows)
}

// Name returns the loader type.
func (l *CSVLoader) Name() string {
	if l.Comma == '\t' {
		return "tsv"
	}
	return "csv"
}

// HTMLLoader reads the first <table> of an HTML export.
type HTMLLoader struct {
	Schema Schema
}

// NewHTMLLoader creates an HTML table loader.
func NewHTMLLoader(s Schema) *HTMLLoader {
	return &HTMLLoader{Schema: s}
}

// Load parses the document and applies the schema to the first table's rows.
// Line numbers are 1-based row positions within the table.
func (l *HTMLLoader) Load(r io.Reader) (*Table, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML input: %w", err)
	}

	table := doc.Find("table").First()
	if table.Length() == 0 {
		return nil, fmt.Errorf("%w: no <table> element found", ErrSchema)
	}

	var rows []row
	table.Find("tr").Each(func(i int, tr *goquery.Selection) {
		var cells []string
		tr.Find("th, td").Each(func(_ int, cell *goquery.Selection) {
			cells = append(cells, strings.TrimSpace(cell.Text()))
		})
		rows = append(rows, row{line: i + 1, cells: cells})
	})

	return l.Schema.build(rows)
}

// Name returns the loader type.
func (l *HTMLLoader) Name() string {
	return "html"
}

// ForPath picks a loader from the file extension. Unknown extensions are read
// as CSV.
func ForPath(path string, s Schema) Loader {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		return NewHTMLLoader(s)
	case ".tsv", ".tab":
		l := NewCSVLoader(s)
		l.Comma = '\t'
		return l
	default:
		return NewCSVLoader(s)
	}
}

// FileOptions configures LoadFile.
type FileOptions struct {
	// MaxBytes rejects larger files before reading them. Zero means unlimited.
	MaxBytes int64
}

// LoadFile opens path and loads it with the loader matching its extension.
// The whole table is held in memory.
func LoadFile(path string, s Schema, opts FileOptions) (*Table, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("input file: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("input file: %s is a directory", path)
	}
	if opts.MaxBytes > 0 && info.Size() > opts.MaxBytes {
		return nil, fmt.Errorf("input file: %s is %d bytes, limit is %d", path, info.Size(), opts.MaxBytes)
	}

	f, err := os.Open(path) //#nosec G304 -- CLI tool reads user-specified input file
	if err != nil {
		return nil, fmt.Errorf("input file: %w", err)
	}
	defer func() { _ = f.Close() }()

	t, err := ForPath(path, s).Load(f)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return t, nil
}
