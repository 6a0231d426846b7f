package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/coopsal/internal/logger"
	"github.com/jmylchreest/coopsal/internal/output"
	"github.com/jmylchreest/coopsal/pkg/pipeline"
	"github.com/jmylchreest/coopsal/pkg/report"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Summarize a cleaned salary table",
	Long: `Print the observation count, mean, median and maximum annual salary, and
the top-paying companies of a cleaned table. CSV and SQLite tables written by
"coopsal clean" are accepted.

Examples:
  coopsal report

  # One company only
  coopsal report --company "Acme Corp"

  # Compare against last term's table
  coopsal report -i cleaned_2024.csv --compare cleaned_2023.csv`,
	Args: cobra.NoArgs,
	RunE: runReport,
}

func init() {
	rootCmd.AddCommand(reportCmd)

	flags := reportCmd.Flags()
	flags.StringP("input", "i", defaultOutput, "cleaned table (.csv or .db)")
	flags.String("table", output.DefaultTable, "table name for sqlite input")
	flags.String("company", "", "only include this company (\"All\" for every company)")
	flags.Int("top", 10, "number of top-paying companies to list (0=all)")
	flags.String("compare", "", "cleaned table to compare the mean annual salary against")
}

func runReport(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	inPath, _ := cmd.Flags().GetString("input")
	tableName, _ := cmd.Flags().GetString("table")
	company, _ := cmd.Flags().GetString("company")
	top, _ := cmd.Flags().GetInt("top")
	comparePath, _ := cmd.Flags().GetString("compare")

	rows, err := readCleaned(ctx, inPath, tableName)
	if err != nil {
		logger.Error("failed to read cleaned table", "path", inPath, "error", err)
		return err
	}
	logger.Debug("cleaned table loaded", "path", inPath, "rows", len(rows))

	rows = report.FilterCompany(rows, company)
	out := cmd.OutOrStdout()
	if len(rows) == 0 {
		if company != "" && company != "All" {
			logger.Warn("no rows match company", "company", company, "path", inPath)
		}
		fmt.Fprintln(out, "No observations")
		return nil
	}

	s := report.Summarize(rows)
	summary := pterm.TableData{
		{"Metric", "Value"},
		{"Observations", humanize.Comma(int64(s.Count))},
		{"Mean annual (USD)", report.FormatMoney(s.MeanAnnual)},
		{"Median annual (USD)", report.FormatMoney(s.MedianAnnual)},
		{"Max annual (USD)", report.FormatMoney(s.MaxAnnual)},
		{"Mean hourly (CAD)", report.FormatMoney(s.MeanHourly)},
	}

	if comparePath != "" {
		prev, err := readCleaned(ctx, comparePath, tableName)
		if err != nil {
			logger.Error("failed to read comparison table", "path", comparePath, "error", err)
			return err
		}
		ps := report.Summarize(report.FilterCompany(prev, company))
		summary = append(summary, []string{"Mean annual change", formatChange(ps.MeanAnnual, s.MeanAnnual)})
	}

	if err := renderTable(out, summary); err != nil {
		return err
	}

	if company != "" && company != "All" {
		return nil
	}

	companies := pterm.TableData{{"#", "Company", "Mean annual (USD)", "Listings"}}
	for i, c := range report.TopCompanies(rows, top) {
		companies = append(companies, []string{
			strconv.Itoa(i + 1),
			c.Company,
			report.FormatWhole(c.MeanAnnual),
			strconv.Itoa(c.Count),
		})
	}
	fmt.Fprintln(out)
	return renderTable(out, companies)
}

// readCleaned loads a cleaned table written by the clean command.
func readCleaned(ctx context.Context, path, table string) ([]pipeline.Row, error) {
	switch format := output.FormatFromPath(path); format {
	case output.FormatSQLite:
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("cleaned table: %w", err)
		}
		return output.ReadSQLite(ctx, path, table)
	case output.FormatCSV:
		f, err := os.Open(path) //#nosec G304 -- CLI tool reads user-specified table
		if err != nil {
			return nil, fmt.Errorf("cleaned table: %w", err)
		}
		defer func() { _ = f.Close() }()
		return report.ReadCSV(f)
	default:
		return nil, fmt.Errorf("cleaned table: %s input is not supported, use csv or sqlite", format)
	}
}

func formatChange(prev, cur float64) string {
	pct, ok := report.PercentChange(prev, cur)
	if !ok {
		return "n/a"
	}
	return fmt.Sprintf("%+.2f%%", pct)
}

func renderTable(w io.Writer, data pterm.TableData) error {
	return pterm.DefaultTable.
		WithHasHeader().
		WithWriter(w).
		WithData(data).
		Render()
}
