package salary

import "github.com/shopspring/decimal"

// Parsed is the outcome of parsing one salary string. It is never mutated
// after Parse returns.
type Parsed struct {
	Raw        string
	Normalized string
	Currency   Currency
	Period     PayPeriod
	Numbers    []decimal.Decimal
	Magnitude  decimal.NullDecimal

	// Hourly is the canonical hourly rate in CAD. It is invalid when Reason
	// is set.
	Hourly decimal.NullDecimal
	Reason DropReason
}

// OK reports whether a canonical hourly rate was derived.
func (p Parsed) OK() bool {
	return p.Hourly.Valid
}

// Parser runs the full normalize → detect → convert chain.
type Parser struct {
	conv *Converter
}

// NewParser creates a parser that converts with conv.
func NewParser(conv *Converter) *Parser {
	return &Parser{conv: conv}
}

// Parse derives currency, pay period and canonical hourly rate from raw.
// Missing digits take precedence over a missing pay period when both fail.
func (p *Parser) Parse(raw string) Parsed {
	s := Normalize(raw)
	numbers := ExtractNumbers(s)

	out := Parsed{
		Raw:        raw,
		Normalized: s,
		Currency:   DetectCurrency(s),
		Period:     DetectPayPeriod(s),
		Numbers:    numbers,
		Magnitude:  mean(numbers),
	}

	switch {
	case !out.Magnitude.Valid:
		out.Reason = ReasonNoDigits
	case out.Period == PeriodUnknown:
		out.Reason = ReasonUndeterminedPeriod
	default:
		hourly := p.conv.ToHourly(out.Magnitude, out.Period)
		out.Hourly = p.conv.ToTarget(hourly, out.Currency)
	}

	return out
}
