package salary

import "strings"

// DetectCurrency reports USD when the normalized text carries a US dollar
// marker. Anything else is treated as domestic (CAD).
func DetectCurrency(s string) Currency {
	if strings.Contains(s, "usd") || strings.Contains(s, "us $") {
		return USD
	}
	return CAD
}

// periodRule maps a set of substrings to a pay period.
type periodRule struct {
	period   PayPeriod
	keywords []string
}

// periodRules is evaluated top to bottom and the first hit wins, so
// "$800/week for 4 months" resolves to weekly. Do not reorder.
var periodRules = []periodRule{
	{PeriodHourly, []string{"hr", "hour"}},
	{PeriodWeekly, []string{"week"}},
	{PeriodMonthly, []string{"month"}},
	{PeriodTerm, []string{"term", "4 month", "4-month"}},
	{PeriodStipend, []string{"stipend"}},
}

// DetectPayPeriod returns the first pay period whose keyword appears in the
// normalized text, or PeriodUnknown.
func DetectPayPeriod(s string) PayPeriod {
	for _, rule := range periodRules {
		for _, kw := range rule.keywords {
			if strings.Contains(s, kw) {
				return rule.period
			}
		}
	}
	return PeriodUnknown
}
