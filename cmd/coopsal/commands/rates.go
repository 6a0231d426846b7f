package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var ratesCmd = &cobra.Command{
	Use:   "rates",
	Short: "Print the effective conversion constants",
	Long: `Print the conversion constants a clean run would use, after applying the
config file, COOPSAL_* environment variables and --rates.

The YAML output is a valid --rates file and can be edited and passed back.`,
	Args: cobra.NoArgs,
	RunE: runRates,
}

func init() {
	rootCmd.AddCommand(ratesCmd)
	ratesCmd.Flags().Bool("json", false, "print as JSON")
}

func runRates(cmd *cobra.Command, _ []string) error {
	r, err := resolveRates()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		data, err := json.MarshalIndent(r, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode rates: %w", err)
		}
		_, err = fmt.Fprintln(out, string(data))
		return err
	}

	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("failed to encode rates: %w", err)
	}
	return enc.Close()
}
