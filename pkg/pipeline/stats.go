package pipeline

import (
	"fmt"
	"strings"
	"time"

	"github.com/jmylchreest/coopsal/pkg/salary"
)

// Stats captures what a run kept and why it dropped the rest.
type Stats struct {
	RatesVersion string `json:"rates_version"`

	Input int `json:"input"`
	Kept  int `json:"kept"`

	Dropped    map[salary.DropReason]int `json:"dropped"`
	ByPeriod   map[salary.PayPeriod]int  `json:"by_period"`
	ByCurrency map[salary.Currency]int   `json:"by_currency"`

	Duration time.Duration `json:"duration_ms"`
}

// NewStats creates a new Stats instance with initialized maps.
func NewStats() *Stats {
	return &Stats{
		Dropped:    make(map[salary.DropReason]int),
		ByPeriod:   make(map[salary.PayPeriod]int),
		ByCurrency: make(map[salary.Currency]int),
	}
}

// RecordKept counts a surviving row.
func (s *Stats) RecordKept(p salary.Parsed) {
	s.Kept++
	s.ByPeriod[p.Period]++
	s.ByCurrency[p.Currency]++
}

// RecordDrop counts a dropped row.
func (s *Stats) RecordDrop(reason salary.DropReason) {
	s.Dropped[reason]++
}

// TotalDropped returns the sum of all dropped rows.
func (s *Stats) TotalDropped() int {
	total := 0
	for _, n := range s.Dropped {
		total += n
	}
	return total
}

// String returns a human-readable summary of the stats.
func (s *Stats) String() string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Rows: %d in, %d kept, %d dropped\n", s.Input, s.Kept, s.TotalDropped()))

	parts := make([]string, 0, len(salary.Reasons))
	for _, r := range salary.Reasons {
		parts = append(parts, fmt.Sprintf("%s=%d", r, s.Dropped[r]))
	}
	sb.WriteString("Dropped by reason: ")
	sb.WriteString(strings.Join(parts, ", "))
	sb.WriteString("\n")

	sb.WriteString(fmt.Sprintf("Rates: %s, took %v\n", s.RatesVersion, s.Duration.Round(time.Millisecond)))
	return sb.String()
}
