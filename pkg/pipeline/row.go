package pipeline

import (
	"strconv"

	"github.com/jmylchreest/coopsal/pkg/salary"
)

// Columns is the cleaned table schema. Downstream readers depend on this
// exact order.
var Columns = []string{
	"company_role",
	"salary_raw",
	"salary_cad_hourly",
	"currency_original",
	"pay_period",
	"company",
	"role",
	"salary_annual_usd",
}

// Row is the flat, serializable form of a CleanRecord.
type Row struct {
	CompanyRole      string  `json:"company_role" yaml:"company_role" gorm:"column:company_role"`
	SalaryRaw        string  `json:"salary_raw" yaml:"salary_raw" gorm:"column:salary_raw"`
	SalaryCADHourly  float64 `json:"salary_cad_hourly" yaml:"salary_cad_hourly" gorm:"column:salary_cad_hourly"`
	CurrencyOriginal string  `json:"currency_original" yaml:"currency_original" gorm:"column:currency_original"`
	PayPeriod        string  `json:"pay_period" yaml:"pay_period" gorm:"column:pay_period"`
	Company          string  `json:"company" yaml:"company" gorm:"column:company;index"`
	Role             string  `json:"role" yaml:"role" gorm:"column:role"`
	SalaryAnnualUSD  float64 `json:"salary_annual_usd" yaml:"salary_annual_usd" gorm:"column:salary_annual_usd"`
}

// Row flattens the record. Floats carry the nearest float64 to the exact
// decimal result.
func (c CleanRecord) Row() Row {
	return Row{
		CompanyRole:      c.Label,
		SalaryRaw:        c.SalaryText,
		SalaryCADHourly:  c.Hourly().InexactFloat64(),
		CurrencyOriginal: string(c.Parsed.Currency),
		PayPeriod:        string(c.Parsed.Period),
		Company:          c.Company,
		Role:             c.Role,
		SalaryAnnualUSD:  c.Annual.InexactFloat64(),
	}
}

// Strings returns the row's cells in Columns order.
func (r Row) Strings() []string {
	return []string{
		r.CompanyRole,
		r.SalaryRaw,
		formatFloat(r.SalaryCADHourly),
		r.CurrencyOriginal,
		r.PayPeriod,
		r.Company,
		r.Role,
		formatFloat(r.SalaryAnnualUSD),
	}
}

// Rows flattens every record of a result.
func (r *Result) Rows() []Row {
	rows := make([]Row, len(r.Records))
	for i, rec := range r.Records {
		rows[i] = rec.Row()
	}
	return rows
}

// DropColumns is the drop audit schema for tabular formats.
var DropColumns = []string{
	"line",
	"company_role",
	"salary_raw",
	"normalized",
	"pay_period",
	"salary_cad_hourly",
	"reason",
}

// DropRow is the audit form of a dropped record.
type DropRow struct {
	Line       int               `json:"line" yaml:"line"`
	Label      string            `json:"company_role" yaml:"company_role"`
	SalaryText string            `json:"salary_raw" yaml:"salary_raw"`
	Normalized string            `json:"normalized" yaml:"normalized"`
	PayPeriod  string            `json:"pay_period" yaml:"pay_period"`
	Hourly     *float64          `json:"salary_cad_hourly,omitempty" yaml:"salary_cad_hourly,omitempty"`
	Reason     salary.DropReason `json:"reason" yaml:"reason"`
}

// Row flattens the drop for auditing.
func (d Drop) Row() DropRow {
	row := DropRow{
		Line:       d.Line,
		Label:      d.Label,
		SalaryText: d.SalaryText,
		Normalized: d.Parsed.Normalized,
		PayPeriod:  d.Parsed.Period.String(),
		Reason:     d.Reason,
	}
	if d.Parsed.Hourly.Valid {
		h := d.Parsed.Hourly.Decimal.InexactFloat64()
		row.Hourly = &h
	}
	return row
}

// Strings returns the audit row's cells in DropColumns order. An absent hourly
// rate is an empty cell.
func (d DropRow) Strings() []string {
	hourly := ""
	if d.Hourly != nil {
		hourly = formatFloat(*d.Hourly)
	}
	return []string{
		strconv.Itoa(d.Line),
		d.Label,
		d.SalaryText,
		d.Normalized,
		d.PayPeriod,
		hourly,
		string(d.Reason),
	}
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
