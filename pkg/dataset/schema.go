// Package dataset loads raw salary listings from delimited text or HTML table
// exports and checks them against the expected two-column layout.
package dataset

import (
	"errors"
	"fmt"
	"strings"
)

// ErrSchema is returned when the input shape does not match the Schema.
var ErrSchema = errors.New("input does not match schema")

// RawRecord is one untouched input row. Label may combine employer and role.
type RawRecord struct {
	Line       int    `json:"line"`
	Label      string `json:"company_role"`
	SalaryText string `json:"salary_raw"`
}

// Column declares one expected input column.
type Column struct {
	// Name is the column name used downstream, whatever the header says.
	Name string

	// Keywords are matched against the header text when StrictHeaders is set.
	Keywords []string
}

// Schema declares the expected input layout.
type Schema struct {
	Columns []Column

	// SkipRows is the number of leading note rows before the header.
	SkipRows int

	// StrictHeaders rejects headers that contain none of a column's keywords.
	StrictHeaders bool
}

// DefaultSchema returns the co-op salary list layout: one note row, then a
// header with a label column and a salary column.
func DefaultSchema() Schema {
	return Schema{
		Columns: []Column{
			{Name: "company_role", Keywords: []string{"company", "employer", "role", "position"}},
			{Name: "salary_raw", Keywords: []string{"salary", "pay", "wage", "compensation"}},
		},
		SkipRows: 1,
	}
}

// Table is a loaded input file.
type Table struct {
	// Header is the header row as found in the file.
	Header  []string
	Records []RawRecord
}

// row is a raw cell slice with its source line.
type row struct {
	line  int
	cells []string
}

// build applies the schema to raw rows. Blank rows are ignored; any row wider
// than the schema fails the whole load.
func (s Schema) build(rows []row) (*Table, error) {
	if len(s.Columns) != 2 {
		return nil, fmt.Errorf("%w: schema must declare 2 columns, has %d", ErrSchema, len(s.Columns))
	}
	if s.SkipRows < 0 {
		return nil, fmt.Errorf("%w: skip rows must not be negative, got %d", ErrSchema, s.SkipRows)
	}
	if len(rows) <= s.SkipRows {
		return nil, fmt.Errorf("%w: no header row after %d skipped row(s)", ErrSchema, s.SkipRows)
	}

	rows = rows[s.SkipRows:]
	header := trimTrailingEmpty(rows[0].cells)
	if err := s.checkHeader(header, rows[0].line); err != nil {
		return nil, err
	}

	t := &Table{Header: header}
	for _, r := range rows[1:] {
		cells := trimTrailingEmpty(r.cells)
		if len(cells) == 0 {
			continue
		}
		if len(cells) > len(s.Columns) {
			return nil, fmt.Errorf("%w: line %d has %d columns, want %d",
				ErrSchema, r.line, len(cells), len(s.Columns))
		}

		rec := RawRecord{Line: r.line, Label: cells[0]}
		if len(cells) > 1 {
			rec.SalaryText = cells[1]
		}
		t.Records = append(t.Records, rec)
	}

	return t, nil
}

func (s Schema) checkHeader(header []string, line int) error {
	if len(header) != len(s.Columns) {
		return fmt.Errorf("%w: header on line %d has %d columns, want %d",
			ErrSchema, line, len(header), len(s.Columns))
	}
	if !s.StrictHeaders {
		return nil
	}

	for i, col := range s.Columns {
		h := strings.ToLower(strings.TrimSpace(header[i]))
		if !containsAny(h, col.Keywords) {
			return fmt.Errorf("%w: header %q does not look like %s", ErrSchema, header[i], col.Name)
		}
	}
	return nil
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}

// trimTrailingEmpty drops empty cells at the end of a row, which spreadsheet
// exports add freely.
func trimTrailingEmpty(cells []string) []string {
	n := len(cells)
	for n > 0 && strings.TrimSpace(cells[n-1]) == "" {
		n--
	}
	return cells[:n]
}
