// Package pipeline turns raw salary listings into cleaned records. Each row
// is parsed independently; rows without a plausible canonical hourly rate are
// dropped with a tagged reason instead of failing the run.
package pipeline

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jmylchreest/coopsal/pkg/dataset"
	"github.com/jmylchreest/coopsal/pkg/salary"
)

// CleanRecord is a raw record that produced a plausible hourly rate.
type CleanRecord struct {
	dataset.RawRecord
	Parsed salary.Parsed

	// Company is the label copied verbatim; labels carry no reliable
	// employer/role separator. Role is always empty.
	Company string
	Role    string

	// Annual is the full-time annual estimate in USD.
	Annual decimal.Decimal
}

// Hourly returns the canonical hourly rate in CAD.
func (c CleanRecord) Hourly() decimal.Decimal {
	return c.Parsed.Hourly.Decimal
}

// Drop is a raw record that was excluded, with the reason.
type Drop struct {
	dataset.RawRecord
	Parsed salary.Parsed
	Reason salary.DropReason
}

// Result is the outcome of a Run.
type Result struct {
	Records []CleanRecord
	Drops   []Drop
	Stats   *Stats
}

// Observer is called once per input record, after it has been evaluated.
type Observer func(index int, rec dataset.RawRecord, parsed salary.Parsed, reason salary.DropReason)

// Pipeline parses, filters and assembles records.
type Pipeline struct {
	parser   *salary.Parser
	conv     *salary.Converter
	observer Observer
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithObserver registers a per-record callback, e.g. for progress reporting.
func WithObserver(fn Observer) Option {
	return func(p *Pipeline) {
		p.observer = fn
	}
}

// New creates a pipeline that converts with conv.
func New(conv *salary.Converter, opts ...Option) *Pipeline {
	p := &Pipeline{
		parser: salary.NewParser(conv),
		conv:   conv,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Evaluate processes one record. Exactly one of the returned values is
// meaningful: the CleanRecord when reason is ReasonNone, the Drop otherwise.
func (p *Pipeline) Evaluate(rec dataset.RawRecord) (CleanRecord, Drop, salary.DropReason) {
	parsed := p.parser.Parse(rec.SalaryText)

	reason := parsed.Reason
	if reason == salary.ReasonNone && !p.conv.InBand(parsed.Hourly.Decimal) {
		reason = salary.ReasonOutOfRange
	}
	if reason != salary.ReasonNone {
		return CleanRecord{}, Drop{RawRecord: rec, Parsed: parsed, Reason: reason}, reason
	}

	return CleanRecord{
		RawRecord: rec,
		Parsed:    parsed,
		Company:   rec.Label,
		Role:      "",
		Annual:    p.conv.Annualize(parsed.Hourly.Decimal),
	}, Drop{}, reason
}

// Run evaluates every record in input order.
func (p *Pipeline) Run(records []dataset.RawRecord) *Result {
	start := time.Now()
	res := &Result{Stats: NewStats()}
	res.Stats.Input = len(records)
	res.Stats.RatesVersion = p.conv.Rates().Version

	for i, rec := range records {
		clean, drop, reason := p.Evaluate(rec)
		parsed := clean.Parsed
		if reason == salary.ReasonNone {
			res.Records = append(res.Records, clean)
			res.Stats.RecordKept(parsed)
		} else {
			parsed = drop.Parsed
			res.Drops = append(res.Drops, drop)
			res.Stats.RecordDrop(reason)
		}
		if p.observer != nil {
			p.observer(i, rec, parsed, reason)
		}
	}

	res.Stats.Duration = time.Since(start)
	return res
}
