package report

import (
	"math"
	"strings"
	"testing"

	"github.com/jmylchreest/coopsal/pkg/pipeline"
)

func row(company string, hourly, annual float64) pipeline.Row {
	return pipeline.Row{
		CompanyRole:      company,
		Company:          company,
		SalaryCADHourly:  hourly,
		SalaryAnnualUSD:  annual,
		CurrencyOriginal: "CAD",
		PayPeriod:        "hourly",
	}
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

// --- Summarize ---

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(nil)
	if s != (Summary{}) {
		t.Errorf("Summarize(nil) = %+v, want zero", s)
	}
}

func TestSummarize_OddCount(t *testing.T) {
	rows := []pipeline.Row{
		row("A", 20, 30000),
		row("B", 30, 50000),
		row("C", 10, 10000),
	}
	s := Summarize(rows)

	if s.Count != 3 {
		t.Errorf("Count = %d, want 3", s.Count)
	}
	if !approx(s.MeanAnnual, 30000) {
		t.Errorf("MeanAnnual = %v, want 30000", s.MeanAnnual)
	}
	if !approx(s.MedianAnnual, 30000) {
		t.Errorf("MedianAnnual = %v, want 30000", s.MedianAnnual)
	}
	if !approx(s.MaxAnnual, 50000) {
		t.Errorf("MaxAnnual = %v, want 50000", s.MaxAnnual)
	}
	if !approx(s.MeanHourly, 20) {
		t.Errorf("MeanHourly = %v, want 20", s.MeanHourly)
	}
}

func TestSummarize_EvenCountMedian(t *testing.T) {
	rows := []pipeline.Row{
		row("A", 0, 40000),
		row("B", 0, 10000),
		row("C", 0, 30000),
		row("D", 0, 20000),
	}
	s := Summarize(rows)
	if !approx(s.MedianAnnual, 25000) {
		t.Errorf("MedianAnnual = %v, want 25000", s.MedianAnnual)
	}
	// input must not be reordered
	if rows[0].SalaryAnnualUSD != 40000 {
		t.Error("Summarize reordered its input")
	}
}

// --- TopCompanies ---

func TestTopCompanies(t *testing.T) {
	rows := []pipeline.Row{
		row("Acme", 0, 30000),
		row("Acme", 0, 50000),
		row("Globex", 0, 45000),
		row("Initech", 0, 20000),
		row("Hooli", 0, 40000),
	}

	tests := []struct {
		name string
		n    int
		want []string
	}{
		{"all", 0, []string{"Globex", "Acme", "Hooli", "Initech"}},
		{"limit", 2, []string{"Globex", "Acme"}},
		{"limit above size", 10, []string{"Globex", "Acme", "Hooli", "Initech"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TopCompanies(rows, tt.n)
			if len(got) != len(tt.want) {
				t.Fatalf("len = %d, want %d", len(got), len(tt.want))
			}
			for i, c := range got {
				if c.Company != tt.want[i] {
					t.Errorf("[%d] = %q, want %q", i, c.Company, tt.want[i])
				}
			}
		})
	}

	acme := TopCompanies(rows, 0)[1]
	if acme.Count != 2 || !approx(acme.MeanAnnual, 40000) {
		t.Errorf("Acme = %+v, want count 2 mean 40000", acme)
	}
}

func TestTopCompanies_TieBrokenByName(t *testing.T) {
	rows := []pipeline.Row{
		row("Zeta", 0, 30000),
		row("Alpha", 0, 30000),
	}
	got := TopCompanies(rows, 0)
	if got[0].Company != "Alpha" || got[1].Company != "Zeta" {
		t.Errorf("order = %q, %q; want Alpha, Zeta", got[0].Company, got[1].Company)
	}
}

// --- FilterCompany ---

func TestFilterCompany(t *testing.T) {
	rows := []pipeline.Row{
		row("Acme", 0, 1),
		row("Globex", 0, 2),
		row("Acme", 0, 3),
	}

	tests := []struct {
		company string
		want    int
	}{
		{"", 3},
		{"All", 3},
		{"Acme", 2},
		{"Globex", 1},
		{"Nobody", 0},
	}

	for _, tt := range tests {
		t.Run(tt.company, func(t *testing.T) {
			if got := FilterCompany(rows, tt.company); len(got) != tt.want {
				t.Errorf("FilterCompany(%q) len = %d, want %d", tt.company, len(got), tt.want)
			}
		})
	}
}

// --- Formatting ---

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{1234.5, "$1,234.50"},
		{0, "$0.00"},
		{19259.26, "$19,259.26"},
		{1000000, "$1,000,000.00"},
		{-42.1, "-$42.10"},
	}

	for _, tt := range tests {
		if got := FormatMoney(tt.in); got != tt.want {
			t.Errorf("FormatMoney(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatWhole(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{39000, "$39,000"},
		{999, "$999"},
		{-1500, "-$1,500"},
	}

	for _, tt := range tests {
		if got := FormatWhole(tt.in); got != tt.want {
			t.Errorf("FormatWhole(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestPercentChange(t *testing.T) {
	if _, ok := PercentChange(0, 10); ok {
		t.Error("PercentChange with zero base should not be ok")
	}

	pct, ok := PercentChange(100, 125)
	if !ok || !approx(pct, 25) {
		t.Errorf("PercentChange(100, 125) = %v, %v; want 25, true", pct, ok)
	}

	pct, ok = PercentChange(200, 150)
	if !ok || !approx(pct, -25) {
		t.Errorf("PercentChange(200, 150) = %v, %v; want -25, true", pct, ok)
	}
}

// --- ReadCSV ---

func TestReadCSV(t *testing.T) {
	in := strings.Join([]string{
		strings.Join(pipeline.Columns, ","),
		"Acme Dev,$20-25/hr,22.5,CAD,hourly,Acme Dev,,34666.67",
		`"Globex, Inc",500/week,12.5,CAD,weekly,"Globex, Inc",,19259.26`,
	}, "\n") + "\n"

	rows, err := ReadCSV(strings.NewReader(in))
	if err != nil {
		t.Fatalf("ReadCSV() error = %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("len = %d, want 2", len(rows))
	}
	if rows[0].SalaryCADHourly != 22.5 || rows[0].SalaryAnnualUSD != 34666.67 {
		t.Errorf("row 0 = %+v", rows[0])
	}
	if rows[1].Company != "Globex, Inc" || rows[1].PayPeriod != "weekly" {
		t.Errorf("row 1 = %+v", rows[1])
	}
}

func TestReadCSV_ReorderedColumns(t *testing.T) {
	in := "salary_annual_usd,company,role,pay_period,currency_original,salary_cad_hourly,salary_raw,company_role\n" +
		"39000,Acme,,hourly,CAD,25,25/hr,Acme\n"

	rows, err := ReadCSV(strings.NewReader(in))
	if err != nil {
		t.Fatalf("ReadCSV() error = %v", err)
	}
	if rows[0].SalaryAnnualUSD != 39000 || rows[0].SalaryCADHourly != 25 {
		t.Errorf("row = %+v", rows[0])
	}
}

func TestReadCSV_Errors(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"empty", ""},
		{"missing column", "company_role,salary_raw\nA,1\n"},
		{"bad number", strings.Join(pipeline.Columns, ",") + "\nA,x,abc,CAD,hourly,A,,1\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ReadCSV(strings.NewReader(tt.in)); err == nil {
				t.Error("expected error")
			}
		})
	}
}
