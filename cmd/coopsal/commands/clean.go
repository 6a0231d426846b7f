package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os/signal"
	"strings"
	"syscall"

	"github.com/cheggaaa/pb/v3"
	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jmylchreest/coopsal/internal/logger"
	"github.com/jmylchreest/coopsal/internal/output"
	"github.com/jmylchreest/coopsal/pkg/dataset"
	"github.com/jmylchreest/coopsal/pkg/pipeline"
	"github.com/jmylchreest/coopsal/pkg/salary"
)

const (
	defaultInput  = "data/raw/Waterloo_Co-op_Salaries_List_for_Analysis.csv"
	defaultOutput = "Processed/cleaned_salaries.csv"
)

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Clean a raw salary list into a table of hourly CAD rates",
	Long: `Load a raw co-op salary list, derive a canonical hourly rate in CAD for
every row, and write the surviving rows.

The input has one note row, then a header, then two columns: a company/role
label and a free-text salary. CSV, TSV and HTML table exports are accepted.
Rows whose salary has no digits, no recognizable pay period, or an hourly
rate outside the plausibility band are dropped.

Examples:
  # Defaults: data/raw/Waterloo_Co-op_Salaries_List_for_Analysis.csv
  coopsal clean

  # Write JSON and audit every dropped row
  coopsal clean -i raw.csv -o out/cleaned.json --drops out/dropped.jsonl

  # Alternate conversion constants
  coopsal clean --rates rates-2025.yaml`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runClean(cmd, args)
	},
}

func init() {
	rootCmd.AddCommand(cleanCmd)

	flags := cleanCmd.Flags()

	// Input settings
	flags.StringP("input", "i", defaultInput, "raw salary list (.csv, .tsv, .html)")
	flags.Int("skip-rows", 1, "note rows before the header")
	flags.Bool("strict-headers", false, "require the header to name the label and salary columns")
	flags.String("max-input-size", "0", "reject larger input files (e.g., 10MB, 0=unlimited)")

	// Output settings
	flags.StringP("output", "o", defaultOutput, "cleaned output file")
	flags.StringP("format", "f", "", "output format: csv, json, jsonl, yaml, sqlite (default: from output extension)")
	flags.String("table", output.DefaultTable, "table name for sqlite output")
	flags.Bool("compact", false, "write JSON output without indentation")
	flags.String("drops", "", "write dropped rows with their reason to this file (.jsonl, .json, .yaml, .csv)")
	flags.Bool("progress", false, "show a progress bar")
	flags.Bool("stats", false, "print a drop summary after the run")

	// Bind to viper
	_ = viper.BindPFlag("input", flags.Lookup("input"))
	_ = viper.BindPFlag("skip_rows", flags.Lookup("skip-rows"))
	_ = viper.BindPFlag("strict_headers", flags.Lookup("strict-headers"))
	_ = viper.BindPFlag("max_input_size", flags.Lookup("max-input-size"))
	_ = viper.BindPFlag("output", flags.Lookup("output"))
	_ = viper.BindPFlag("format", flags.Lookup("format"))
	_ = viper.BindPFlag("table", flags.Lookup("table"))
	_ = viper.BindPFlag("compact", flags.Lookup("compact"))
	_ = viper.BindPFlag("drops", flags.Lookup("drops"))
}

func runClean(cmd *cobra.Command, _ []string) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	log := logger.WithRun(uuid.NewString(), "clean")
	log.Debug("clean command starting")

	conv, err := newConverter()
	if err != nil {
		return err
	}
	log.Debug("rates", "version", conv.Rates().Version)

	maxBytes, err := parseSize(viper.GetString("max_input_size"))
	if err != nil {
		log.Error("invalid max-input-size", "value", viper.GetString("max_input_size"), "error", err)
		return err
	}

	schema := dataset.DefaultSchema()
	schema.SkipRows = viper.GetInt("skip_rows")
	schema.StrictHeaders = viper.GetBool("strict_headers")

	inPath := viper.GetString("input")
	log.Debug("loading input", "path", inPath, "max_bytes", maxBytes)
	table, err := dataset.LoadFile(inPath, schema, dataset.FileOptions{MaxBytes: maxBytes})
	if err != nil {
		log.Error("failed to load input", "error", err)
		return err
	}
	log.Info("input loaded", "path", inPath, "records", len(table.Records))

	var bar *pb.ProgressBar
	if progress, _ := cmd.Flags().GetBool("progress"); progress && !viper.GetBool("quiet") {
		bar = pb.Simple.New(len(table.Records)).SetWriter(cmd.ErrOrStderr()).Start()
	}
	traceDrops := logger.Enabled(slog.LevelDebug)

	p := pipeline.New(conv, pipeline.WithObserver(func(_ int, rec dataset.RawRecord, parsed salary.Parsed, reason salary.DropReason) {
		if bar != nil {
			bar.Increment()
		}
		if traceDrops && reason != salary.ReasonNone {
			log.Debug("row dropped",
				"line", rec.Line,
				"salary_raw", rec.SalaryText,
				"period", parsed.Period.String(),
				"reason", reason)
		}
	}))
	res := p.Run(table.Records)
	if bar != nil {
		bar.Finish()
	}

	outPath := viper.GetString("output")
	format := output.Format(strings.ToLower(viper.GetString("format")))
	if format == "" {
		format = output.FormatFromPath(outPath)
	}
	log.Debug("writing output", "path", outPath, "format", format)
	if err := output.WriteRows(outPath, format, res.Rows(),
		output.WithHeader(pipeline.Columns),
		output.WithTable(viper.GetString("table")),
		output.WithPretty(!viper.GetBool("compact")),
		output.WithContext(ctx),
	); err != nil {
		log.Error("failed to write output", "path", outPath, "error", err)
		return err
	}

	if dropsPath := viper.GetString("drops"); dropsPath != "" {
		if err := writeDrops(ctx, dropsPath, res.Drops); err != nil {
			log.Error("failed to write drops", "path", dropsPath, "error", err)
			return err
		}
		log.Debug("drops written", "path", dropsPath, "count", len(res.Drops))
	}

	s := res.Stats
	log.Info("clean complete",
		"input", s.Input,
		"kept", s.Kept,
		"dropped", s.TotalDropped(),
		string(salary.ReasonNoDigits), s.Dropped[salary.ReasonNoDigits],
		string(salary.ReasonUndeterminedPeriod), s.Dropped[salary.ReasonUndeterminedPeriod],
		string(salary.ReasonOutOfRange), s.Dropped[salary.ReasonOutOfRange],
		"rates_version", s.RatesVersion,
		"duration", s.Duration)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Cleaned %s rows saved to %s\n", humanize.Comma(int64(s.Kept)), outPath)
	if showStats, _ := cmd.Flags().GetBool("stats"); showStats {
		fmt.Fprint(out, s.String())
	}
	return nil
}

func writeDrops(ctx context.Context, path string, drops []pipeline.Drop) error {
	rows := make([]pipeline.DropRow, len(drops))
	for i, d := range drops {
		rows[i] = d.Row()
	}

	format := output.FormatFromPath(path)
	if format == output.FormatSQLite {
		return fmt.Errorf("drops cannot be written as %s", format)
	}
	return output.WriteRows(path, format, rows,
		output.WithHeader(pipeline.DropColumns),
		output.WithContext(ctx),
	)
}

// parseSize parses a humanized byte size. Empty or "0" means unlimited.
func parseSize(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" || s == "0" {
		return 0, nil
	}
	n, err := humanize.ParseBytes(s)
	if err != nil {
		return 0, err
	}
	return int64(n), nil //#nosec G115 -- sizes beyond int64 are not meaningful here
}
