// Package report computes the aggregate statistics downstream consumers show
// for a cleaned salary table: observation count, mean, median and maximum
// annual salary, and the top-paying companies.
package report

import (
	"sort"

	"github.com/dustin/go-humanize"

	"github.com/jmylchreest/coopsal/pkg/pipeline"
)

// Summary holds table-wide statistics. Annual figures are USD, hourly CAD.
type Summary struct {
	Count        int     `json:"count" yaml:"count"`
	MeanAnnual   float64 `json:"mean_annual_usd" yaml:"mean_annual_usd"`
	MedianAnnual float64 `json:"median_annual_usd" yaml:"median_annual_usd"`
	MaxAnnual    float64 `json:"max_annual_usd" yaml:"max_annual_usd"`
	MeanHourly   float64 `json:"mean_cad_hourly" yaml:"mean_cad_hourly"`
}

// Summarize computes a Summary. An empty table yields a zero Summary.
func Summarize(rows []pipeline.Row) Summary {
	if len(rows) == 0 {
		return Summary{}
	}

	annual := make([]float64, len(rows))
	var sumAnnual, sumHourly float64
	s := Summary{Count: len(rows), MaxAnnual: rows[0].SalaryAnnualUSD}
	for i, r := range rows {
		annual[i] = r.SalaryAnnualUSD
		sumAnnual += r.SalaryAnnualUSD
		sumHourly += r.SalaryCADHourly
		if r.SalaryAnnualUSD > s.MaxAnnual {
			s.MaxAnnual = r.SalaryAnnualUSD
		}
	}

	s.MeanAnnual = sumAnnual / float64(len(rows))
	s.MeanHourly = sumHourly / float64(len(rows))
	s.MedianAnnual = median(annual)
	return s
}

func median(values []float64) float64 {
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2
	}
	return sorted[mid]
}

// CompanyAverage is one company's mean annual salary.
type CompanyAverage struct {
	Company    string  `json:"company" yaml:"company"`
	MeanAnnual float64 `json:"mean_annual_usd" yaml:"mean_annual_usd"`
	Count      int     `json:"count" yaml:"count"`
}

// TopCompanies returns up to n companies ordered by mean annual salary,
// highest first. Ties are broken by company name. n <= 0 returns all.
func TopCompanies(rows []pipeline.Row, n int) []CompanyAverage {
	sums := make(map[string]float64)
	counts := make(map[string]int)
	for _, r := range rows {
		sums[r.Company] += r.SalaryAnnualUSD
		counts[r.Company]++
	}

	out := make([]CompanyAverage, 0, len(sums))
	for company, sum := range sums {
		out = append(out, CompanyAverage{
			Company:    company,
			MeanAnnual: sum / float64(counts[company]),
			Count:      counts[company],
		})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].MeanAnnual != out[j].MeanAnnual {
			return out[i].MeanAnnual > out[j].MeanAnnual
		}
		return out[i].Company < out[j].Company
	})

	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

// FilterCompany returns the rows for one company. An empty name or "All"
// returns rows unchanged.
func FilterCompany(rows []pipeline.Row, company string) []pipeline.Row {
	if company == "" || company == "All" {
		return rows
	}
	var out []pipeline.Row
	for _, r := range rows {
		if r.Company == company {
			out = append(out, r)
		}
	}
	return out
}

// FormatMoney formats an amount with a dollar sign, thousands separators and
// two decimals.
func FormatMoney(amount float64) string {
	if amount < 0 {
		return "-$" + humanize.FormatFloat("#,###.##", -amount)
	}
	return "$" + humanize.FormatFloat("#,###.##", amount)
}

// FormatWhole formats an amount as whole dollars.
func FormatWhole(amount float64) string {
	if amount < 0 {
		return "-$" + humanize.FormatFloat("#,###.", -amount)
	}
	return "$" + humanize.FormatFloat("#,###.", amount)
}

// PercentChange returns the change from old to new in percent. ok is false
// when old is zero.
func PercentChange(old, new float64) (pct float64, ok bool) {
	if old == 0 {
		return 0, false
	}
	return (new - old) / old * 100, true
}
