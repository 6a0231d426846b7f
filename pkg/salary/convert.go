package salary

import "github.com/shopspring/decimal"

// Converter applies a Rates regime. All arithmetic is decimal so that output
// is exact and stable across runs.
type Converter struct {
	rates Rates

	usdToCAD      decimal.Decimal
	hoursPerWeek  decimal.Decimal
	hoursPerMonth decimal.Decimal
	hoursPerTerm  decimal.Decimal
	minHourly     decimal.Decimal
	maxHourly     decimal.Decimal
	annualHours   decimal.Decimal
}

// NewConverter validates r and returns a Converter for it.
func NewConverter(r Rates) (*Converter, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}

	hoursPerWeek := decimal.NewFromFloat(r.HoursPerWeek)
	return &Converter{
		rates:         r,
		usdToCAD:      decimal.NewFromFloat(r.USDToCAD),
		hoursPerWeek:  hoursPerWeek,
		hoursPerMonth: decimal.NewFromFloat(r.WeeksPerMonth).Mul(hoursPerWeek),
		hoursPerTerm:  decimal.NewFromFloat(r.WeeksPerTerm).Mul(hoursPerWeek),
		minHourly:     decimal.NewFromFloat(r.MinHourly),
		maxHourly:     decimal.NewFromFloat(r.MaxHourly),
		annualHours: decimal.NewFromFloat(r.AnnualHoursPerWeek).
			Mul(decimal.NewFromFloat(r.WeeksPerYear)),
	}, nil
}

// MustConverter is NewConverter for rates known to be valid.
func MustConverter(r Rates) *Converter {
	c, err := NewConverter(r)
	if err != nil {
		panic(err)
	}
	return c
}

// Rates returns the regime this converter applies.
func (c *Converter) Rates() Rates {
	return c.rates
}

// ToHourly converts a magnitude quoted per period into an hourly figure. The
// result is invalid when value is invalid or the period is not recognized.
func (c *Converter) ToHourly(value decimal.NullDecimal, period PayPeriod) decimal.NullDecimal {
	if !value.Valid {
		return decimal.NullDecimal{}
	}

	v := value.Decimal
	switch period {
	case PeriodHourly:
		return decimal.NewNullDecimal(v)
	case PeriodWeekly:
		return decimal.NewNullDecimal(v.Div(c.hoursPerWeek))
	case PeriodMonthly:
		return decimal.NewNullDecimal(v.Div(c.hoursPerMonth))
	case PeriodTerm, PeriodStipend:
		return decimal.NewNullDecimal(v.Div(c.hoursPerTerm))
	default:
		return decimal.NullDecimal{}
	}
}

// ToTarget converts an hourly figure into CAD.
func (c *Converter) ToTarget(hourly decimal.NullDecimal, currency Currency) decimal.NullDecimal {
	if !hourly.Valid {
		return hourly
	}
	if currency == USD {
		return decimal.NewNullDecimal(hourly.Decimal.Mul(c.usdToCAD))
	}
	return hourly
}

// InBand reports whether a canonical hourly rate lies strictly inside the
// plausibility band.
func (c *Converter) InBand(hourly decimal.Decimal) bool {
	return hourly.GreaterThan(c.minHourly) && hourly.LessThan(c.maxHourly)
}

// Annualize returns the full-time annual figure in USD. Every period is
// treated as a full working year, including term and stipend figures.
func (c *Converter) Annualize(hourly decimal.Decimal) decimal.Decimal {
	return hourly.Mul(c.annualHours).Div(c.usdToCAD)
}
