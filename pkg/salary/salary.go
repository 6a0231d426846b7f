// Package salary turns free-text co-op salary strings into a canonical hourly
// rate. Parsing is split into small pure stages (normalize, detect currency,
// detect pay period, extract magnitude) and a Converter that applies the
// configured Rates.
package salary

// Currency is the currency a salary string was quoted in.
type Currency string

const (
	CAD Currency = "CAD"
	USD Currency = "USD"
)

// PayPeriod is the billing cadence encoded in a salary string.
type PayPeriod string

const (
	PeriodHourly  PayPeriod = "hourly"
	PeriodWeekly  PayPeriod = "weekly"
	PeriodMonthly PayPeriod = "monthly"
	PeriodTerm    PayPeriod = "term"
	PeriodStipend PayPeriod = "stipend"

	// PeriodUnknown means no period keyword was found.
	PeriodUnknown PayPeriod = ""
)

// String returns the period name, or "unknown" for PeriodUnknown.
func (p PayPeriod) String() string {
	if p == PeriodUnknown {
		return "unknown"
	}
	return string(p)
}

// DropReason tags why a row did not produce a canonical hourly rate.
type DropReason string

const (
	ReasonNone               DropReason = ""
	ReasonNoDigits           DropReason = "no_digits"
	ReasonUndeterminedPeriod DropReason = "undetermined_period"
	ReasonOutOfRange         DropReason = "out_of_range"
)

// Reasons lists every drop reason in reporting order.
var Reasons = []DropReason{ReasonNoDigits, ReasonUndeterminedPeriod, ReasonOutOfRange}
