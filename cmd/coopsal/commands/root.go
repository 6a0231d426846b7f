// Package commands implements the CLI commands for coopsal.
package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jmylchreest/coopsal/internal/logger"
	"github.com/jmylchreest/coopsal/pkg/salary"
)

var rootCmd = &cobra.Command{
	Use:   "coopsal",
	Short: "Normalize co-op salary listings into hourly CAD figures",
	Long: `Coopsal cleans a raw co-op salary list into a tabular dataset.

Every free-text salary ("$20-25/hr", "3000 USD per month", "500/week") is
reduced to a canonical hourly rate in CAD. Rows without a plausible rate are
dropped with a reason. Run without a subcommand to clean the default input.

Examples:
  # Clean the default list into Processed/cleaned_salaries.csv
  coopsal

  # Clean an HTML export into SQLite and keep an audit of dropped rows
  coopsal clean -i listings.html -o salaries.db --drops dropped.jsonl

  # See how a single salary string is interpreted
  coopsal parse "3000 USD per month"

  # Summarize a cleaned table
  coopsal report -i Processed/cleaned_salaries.csv --top 5`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		logger.Init(logger.Options{
			Debug:  viper.GetBool("debug"),
			Quiet:  viper.GetBool("quiet"),
			JSON:   viper.GetBool("log_json"),
			Output: cmd.ErrOrStderr(),
		})
	},
	RunE: func(_ *cobra.Command, args []string) error {
		return runClean(cleanCmd, args)
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "config file (default $HOME/.coopsal.yaml)")
	flags.String("rates", "", "rates file (YAML or JSON) overriding the built-in conversion constants")
	flags.Bool("debug", false, "enable debug logging")
	flags.BoolP("quiet", "q", false, "only log errors")
	flags.Bool("log-json", false, "log as JSON")

	_ = viper.BindPFlag("config", flags.Lookup("config"))
	_ = viper.BindPFlag("rates_file", flags.Lookup("rates"))
	_ = viper.BindPFlag("debug", flags.Lookup("debug"))
	_ = viper.BindPFlag("quiet", flags.Lookup("quiet"))
	_ = viper.BindPFlag("log_json", flags.Lookup("log-json"))
}

func initConfig() {
	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
		viper.AddConfigPath(".")
		viper.SetConfigName(".coopsal")
		viper.SetConfigType("yaml")
	}

	// Environment variables
	viper.SetEnvPrefix("COOPSAL")
	viper.AutomaticEnv()

	// Read config file (ignore error if not found)
	_ = viper.ReadInConfig()
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// resolveRates returns the conversion constants for this run. A rates file
// wins over a "rates:" section in the config file; keys absent from either
// keep their built-in values. Either source must set its own version.
func resolveRates() (salary.Rates, error) {
	if path := viper.GetString("rates_file"); path != "" {
		return salary.LoadRates(path)
	}

	r := salary.DefaultRates()
	if viper.IsSet("rates") {
		r.Version = ""
		if err := viper.UnmarshalKey("rates", &r); err != nil {
			return salary.Rates{}, fmt.Errorf("failed to decode rates from config: %w", err)
		}
		if err := r.Validate(); err != nil {
			return salary.Rates{}, err
		}
	}
	return r, nil
}

// newConverter builds a converter from the resolved rates.
func newConverter() (*salary.Converter, error) {
	r, err := resolveRates()
	if err != nil {
		logger.Error("invalid rates", "error", err)
		return nil, err
	}
	return salary.NewConverter(r)
}
