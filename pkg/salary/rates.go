package salary

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// RatesVersion identifies the built-in rate regime.
const RatesVersion = "2024.1"

// ErrUnknownRatesFormat is returned by LoadRates for unsupported extensions.
var ErrUnknownRatesFormat = errors.New("unsupported rates file format")

// Rates holds every constant the conversion depends on. It is versioned so
// that an output file can be traced back to the regime that produced it.
type Rates struct {
	// Version labels this rate regime.
	Version string `json:"version" yaml:"version" mapstructure:"version" validate:"required"`

	// USDToCAD is the fixed USD→CAD multiplier. It is not refreshed, so it
	// drifts from the market rate over time.
	USDToCAD float64 `json:"usd_to_cad" yaml:"usd_to_cad" mapstructure:"usd_to_cad" validate:"gt=0"`

	// HoursPerWeek converts weekly figures to hourly.
	HoursPerWeek float64 `json:"hours_per_week" yaml:"hours_per_week" mapstructure:"hours_per_week" validate:"gt=0"`

	// WeeksPerMonth converts monthly figures to weekly.
	WeeksPerMonth float64 `json:"weeks_per_month" yaml:"weeks_per_month" mapstructure:"weeks_per_month" validate:"gt=0"`

	// WeeksPerTerm is the length of a co-op term, used for term and stipend figures.
	WeeksPerTerm float64 `json:"weeks_per_term" yaml:"weeks_per_term" mapstructure:"weeks_per_term" validate:"gt=0"`

	// MinHourly and MaxHourly bound the plausibility band (exclusive).
	MinHourly float64 `json:"min_hourly" yaml:"min_hourly" mapstructure:"min_hourly" validate:"gte=0"`
	MaxHourly float64 `json:"max_hourly" yaml:"max_hourly" mapstructure:"max_hourly" validate:"gtfield=MinHourly"`

	// AnnualHoursPerWeek and WeeksPerYear drive the full-time annual estimate.
	AnnualHoursPerWeek float64 `json:"annual_hours_per_week" yaml:"annual_hours_per_week" mapstructure:"annual_hours_per_week" validate:"gt=0"`
	WeeksPerYear       float64 `json:"weeks_per_year" yaml:"weeks_per_year" mapstructure:"weeks_per_year" validate:"gt=0"`
}

// DefaultRates returns the reference regime: 1.35 USD→CAD, 40h weeks, 4-week
// months, 16-week terms and a (5, 200) hourly band.
func DefaultRates() Rates {
	return Rates{
		Version:            RatesVersion,
		USDToCAD:           1.35,
		HoursPerWeek:       40,
		WeeksPerMonth:      4,
		WeeksPerTerm:       16,
		MinHourly:          5,
		MaxHourly:          200,
		AnnualHoursPerWeek: 40,
		WeeksPerYear:       52,
	}
}

var validate = validator.New()

// Validate reports every invalid field at once.
func (r Rates) Validate() error {
	err := validate.Struct(r)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	msgs := make([]string, 0, len(verrs))
	for _, e := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s %s", e.Field(), formatValidationError(e)))
	}
	return fmt.Errorf("invalid rates: %s", strings.Join(msgs, "; "))
}

// formatValidationError creates a human-readable error message.
func formatValidationError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "is required"
	case "gt":
		return fmt.Sprintf("must be greater than %s", e.Param())
	case "gte":
		return fmt.Sprintf("must be at least %s", e.Param())
	case "gtfield":
		return fmt.Sprintf("must be greater than %s", e.Param())
	default:
		return fmt.Sprintf("failed validation '%s'", e.Tag())
	}
}

// LoadRates reads a JSON or YAML rates file. Keys missing from the file keep
// their DefaultRates value, except version: a changed regime must name itself.
func LoadRates(path string) (Rates, error) {
	data, err := os.ReadFile(path) //#nosec G304 -- CLI tool reads user-specified rates file
	if err != nil {
		return Rates{}, fmt.Errorf("failed to read rates file: %w", err)
	}

	r := DefaultRates()
	r.Version = ""
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		if err := json.Unmarshal(data, &r); err != nil {
			return Rates{}, fmt.Errorf("failed to parse JSON rates: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &r); err != nil {
			return Rates{}, fmt.Errorf("failed to parse YAML rates: %w", err)
		}
	default:
		return Rates{}, fmt.Errorf("%w: %s", ErrUnknownRatesFormat, ext)
	}

	if err := r.Validate(); err != nil {
		return Rates{}, err
	}
	return r, nil
}
