package salary

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// \d is ASCII-only in RE2; other Unicode digits are not numbers here.
var numberPattern = regexp.MustCompile(`\d+\.?\d*`)

// ExtractNumbers returns every digit run (with at most one decimal point) in s.
// Signs and exponents are not interpreted.
func ExtractNumbers(s string) []decimal.Decimal {
	matches := numberPattern.FindAllString(s, -1)
	numbers := make([]decimal.Decimal, 0, len(matches))
	for _, m := range matches {
		d, err := decimal.NewFromString(strings.TrimSuffix(m, "."))
		if err != nil {
			continue
		}
		numbers = append(numbers, d)
	}
	return numbers
}

// ExtractMagnitude returns the mean of all numbers in s, which is the
// midpoint for a "20-25" range. It is invalid when s has no digits.
func ExtractMagnitude(s string) decimal.NullDecimal {
	return mean(ExtractNumbers(s))
}

func mean(numbers []decimal.Decimal) decimal.NullDecimal {
	if len(numbers) == 0 {
		return decimal.NullDecimal{}
	}
	sum := decimal.Zero
	for _, n := range numbers {
		sum = sum.Add(n)
	}
	return decimal.NewNullDecimal(sum.Div(decimal.NewFromInt(int64(len(numbers)))))
}
