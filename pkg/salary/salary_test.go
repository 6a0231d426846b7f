package salary

import (
	"testing"

	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// --- Normalize ---

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"whitespace only", "   \t", ""},
		{"lowercases", "$25/HR", "$25/hr"},
		{"strips commas", "$1,200 / Month", "$1200 / month"},
		{"trims", "  20-25/hr  ", "20-25/hr"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.in); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

// --- DetectCurrency ---

func TestDetectCurrency(t *testing.T) {
	tests := []struct {
		in   string
		want Currency
	}{
		{"3000 usd per month", USD},
		{"us $30/hr", USD},
		{"$30/hr", CAD},
		{"", CAD},
		{"30 cad/hr", CAD},
	}

	for _, tt := range tests {
		if got := DetectCurrency(tt.in); got != tt.want {
			t.Errorf("DetectCurrency(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

// --- DetectPayPeriod ---

func TestDetectPayPeriod(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want PayPeriod
	}{
		{"hr", "$25/hr", PeriodHourly},
		{"hour", "25 per hour", PeriodHourly},
		{"week", "500/week", PeriodWeekly},
		{"month", "3000 per month", PeriodMonthly},
		{"term", "8000 per term", PeriodTerm},
		{"stipend", "2000 stipend", PeriodStipend},
		{"nothing", "great opportunity", PeriodUnknown},
		{"week beats month", "800/week for 4 months", PeriodWeekly},
		{"hour beats week", "25/hr 40 hours a week", PeriodHourly},
		{"month beats term", "8000 per 4 month term", PeriodMonthly},
		{"month beats 4-month", "6000 4-month stipend", PeriodMonthly},
		{"hr inside a word", "three thousand", PeriodHourly},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectPayPeriod(tt.in); got != tt.want {
				t.Errorf("DetectPayPeriod(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestPayPeriodString(t *testing.T) {
	if PeriodUnknown.String() != "unknown" {
		t.Errorf("expected unknown, got %q", PeriodUnknown.String())
	}
	if PeriodTerm.String() != "term" {
		t.Errorf("expected term, got %q", PeriodTerm.String())
	}
}

// --- ExtractNumbers / ExtractMagnitude ---

func TestExtractNumbers(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"great opportunity", nil},
		{"$20-25/hr", []string{"20", "25"}},
		{"$1200/month", []string{"1200"}},
		{"25.50/hr", []string{"25.5"}},
		{"25./hr", []string{"25"}},
		{"-30/hr", []string{"30"}},
		{"２０/hr", nil},
	}

	for _, tt := range tests {
		got := ExtractNumbers(tt.in)
		if len(got) != len(tt.want) {
			t.Fatalf("ExtractNumbers(%q) returned %d numbers, want %d", tt.in, len(got), len(tt.want))
		}
		for i := range got {
			if !got[i].Equal(dec(tt.want[i])) {
				t.Errorf("ExtractNumbers(%q)[%d] = %s, want %s", tt.in, i, got[i], tt.want[i])
			}
		}
	}
}

func TestExtractMagnitude(t *testing.T) {
	t.Run("no digits", func(t *testing.T) {
		if m := ExtractMagnitude("great opportunity"); m.Valid {
			t.Errorf("expected invalid magnitude, got %s", m.Decimal)
		}
	})

	t.Run("range midpoint", func(t *testing.T) {
		m := ExtractMagnitude("$20-25/hr")
		if !m.Valid || !m.Decimal.Equal(dec("22.5")) {
			t.Errorf("expected 22.5, got %v", m)
		}
	})

	t.Run("single number", func(t *testing.T) {
		m := ExtractMagnitude("$18/hr")
		if !m.Valid || !m.Decimal.Equal(dec("18")) {
			t.Errorf("expected 18, got %v", m)
		}
	})

	t.Run("three numbers", func(t *testing.T) {
		m := ExtractMagnitude("20/22/27 hr")
		if !m.Valid || !m.Decimal.Equal(dec("23")) {
			t.Errorf("expected 23, got %v", m)
		}
	})
}
