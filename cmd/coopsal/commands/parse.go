package commands

import (
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/coopsal/internal/logger"
	"github.com/jmylchreest/coopsal/pkg/dataset"
	"github.com/jmylchreest/coopsal/pkg/pipeline"
	"github.com/jmylchreest/coopsal/pkg/salary"
)

var parseCmd = &cobra.Command{
	Use:   "parse <salary>...",
	Short: "Show how salary strings are interpreted",
	Long: `Trace each salary string through normalization, currency and pay period
detection, magnitude extraction and conversion, and show whether the row
would be kept.

Examples:
  coopsal parse '$20-25/hr' '3000 USD per month' 'great opportunity'

  # Under alternate constants
  coopsal parse --rates rates-2025.yaml '500/week'`,
	Args: cobra.MinimumNArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	conv, err := newConverter()
	if err != nil {
		return err
	}
	p := pipeline.New(conv)

	data := pterm.TableData{
		{"Input", "Normalized", "Currency", "Period", "Numbers", "Magnitude", "Hourly (CAD)", "Annual (USD)", "Result"},
	}
	for i, text := range args {
		clean, drop, reason := p.Evaluate(dataset.RawRecord{Line: i + 1, SalaryText: text})

		parsed := clean.Parsed
		annual := "-"
		result := "kept"
		if reason != salary.ReasonNone {
			parsed = drop.Parsed
			result = string(reason)
		} else {
			annual = clean.Annual.StringFixed(2)
		}
		logger.Debug("parsed", "input", text, "result", result)

		numbers := make([]string, len(parsed.Numbers))
		for j, n := range parsed.Numbers {
			numbers[j] = n.String()
		}

		data = append(data, []string{
			text,
			parsed.Normalized,
			string(parsed.Currency),
			parsed.Period.String(),
			orDash(strings.Join(numbers, " ")),
			nullString(parsed.Magnitude.Valid, parsed.Magnitude.Decimal.String()),
			nullString(parsed.Hourly.Valid, parsed.Hourly.Decimal.String()),
			annual,
			result,
		})
	}

	return renderTable(cmd.OutOrStdout(), data)
}

func nullString(valid bool, s string) string {
	if !valid {
		return "-"
	}
	return s
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
