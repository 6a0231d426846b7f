package report

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jmylchreest/coopsal/pkg/pipeline"
)

// ReadCSV parses a cleaned table. Columns are located by header name; every
// column in pipeline.Columns must be present.
func ReadCSV(r io.Reader) ([]pipeline.Row, error) {
	cr := csv.NewReader(r)

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	idx := make(map[string]int, len(header))
	for i, h := range header {
		idx[strings.TrimSpace(h)] = i
	}
	for _, col := range pipeline.Columns {
		if _, ok := idx[col]; !ok {
			return nil, fmt.Errorf("cleaned table is missing column %q", col)
		}
	}

	var rows []pipeline.Row
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read row: %w", err)
		}
		line, _ := cr.FieldPos(0)

		hourly, err := strconv.ParseFloat(rec[idx["salary_cad_hourly"]], 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: salary_cad_hourly: %w", line, err)
		}
		annual, err := strconv.ParseFloat(rec[idx["salary_annual_usd"]], 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: salary_annual_usd: %w", line, err)
		}

		rows = append(rows, pipeline.Row{
			CompanyRole:      rec[idx["company_role"]],
			SalaryRaw:        rec[idx["salary_raw"]],
			SalaryCADHourly:  hourly,
			CurrencyOriginal: rec[idx["currency_original"]],
			PayPeriod:        rec[idx["pay_period"]],
			Company:          rec[idx["company"]],
			Role:             rec[idx["role"]],
			SalaryAnnualUSD:  annual,
		})
	}

	return rows, nil
}
