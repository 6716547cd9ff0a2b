package config

import (
	"fmt"
	"os"

	"github.com/Peter-Metz/TSP-cost/internal/calculation"
	"github.com/Peter-Metz/TSP-cost/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// PolicyInput is the population-variant input as captured from the UI
// collaborator: the raw knob values with the two-valued phaseout selector
// still unexpanded.
type PolicyInput struct {
	MatchRate   decimal.Decimal         `yaml:"match_rate" json:"match_rate"`
	Phaseout    domain.PhaseoutScenario `yaml:"phaseout" json:"phaseout"`
	TakeupRate  decimal.Decimal         `yaml:"takeup_rate" json:"takeup_rate"`
	LeakageRate decimal.Decimal         `yaml:"leakage_rate" json:"leakage_rate"`
	ROI         decimal.Decimal         `yaml:"roi" json:"roi"`
}

// Parameters expands the phaseout selector and returns the full
// six-field parameter record.
func (pi *PolicyInput) Parameters() (domain.PolicyParameters, error) {
	start, rate, err := pi.Phaseout.Terms()
	if err != nil {
		return domain.PolicyParameters{}, err
	}
	return domain.PolicyParameters{
		MatchRate:     pi.MatchRate,
		PhaseoutStart: start,
		PhaseoutRate:  rate,
		TakeupRate:    pi.TakeupRate,
		LeakageRate:   pi.LeakageRate,
		ROI:           pi.ROI,
	}, nil
}

// Input is the top-level configuration file. Either or both sections may
// be present depending on which variant is being run.
type Input struct {
	Policy    *PolicyInput           `yaml:"policy,omitempty" json:"policy,omitempty"`
	Household *domain.HouseholdInput `yaml:"household,omitempty" json:"household,omitempty"`
	DataPath  string                 `yaml:"data_path,omitempty" json:"data_path,omitempty"`
}

// InputParser handles parsing of input configuration files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads configuration from a YAML file
func (ip *InputParser) LoadFromFile(filename string) (*Input, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var input Input
	if err := yaml.Unmarshal(data, &input); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateInput(&input); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &input, nil
}

// ValidateInput validates the loaded configuration. Values outside their
// declared domains are rejected, never clamped.
func (ip *InputParser) ValidateInput(input *Input) error {
	if input.Policy == nil && input.Household == nil {
		return fmt.Errorf("at least one of policy or household must be provided")
	}

	if input.Policy != nil {
		if err := ip.ValidatePolicy(input.Policy); err != nil {
			return fmt.Errorf("policy validation failed: %w", err)
		}
	}

	if input.Household != nil {
		if err := ip.ValidateHousehold(input.Household); err != nil {
			return fmt.Errorf("household validation failed: %w", err)
		}
	}

	return nil
}

// Enumerated knob domains for the population variant. The precomputed grid
// only covers these values.
var (
	matchRates  = enumerated(0.03, 0.04, 0.05)
	takeupRates = enumerated(0.7, 0.85, 1.0)
	roiRates    = enumerated(0.03, 0.05, 0.07)
)

// maxLeakage bounds the early-withdrawal rate.
var maxLeakage = decimal.NewFromFloat(0.5)

func enumerated(values ...float64) []decimal.Decimal {
	out := make([]decimal.Decimal, len(values))
	for i, v := range values {
		out[i] = decimal.NewFromFloat(v)
	}
	return out
}

func inEnum(value decimal.Decimal, allowed []decimal.Decimal) bool {
	for _, a := range allowed {
		if value.Equal(a) {
			return true
		}
	}
	return false
}

func enumString(allowed []decimal.Decimal) string {
	s := ""
	for i, a := range allowed {
		if i > 0 {
			s += ", "
		}
		s += a.String()
	}
	return s
}

// ValidatePolicy checks the population-variant knobs against their
// enumerated and bounded domains.
func (ip *InputParser) ValidatePolicy(policy *PolicyInput) error {
	if !inEnum(policy.MatchRate, matchRates) {
		return &domain.ValidationError{Field: "match_rate", Reason: fmt.Sprintf("must be one of %s, got %s", enumString(matchRates), policy.MatchRate)}
	}
	if _, _, err := policy.Phaseout.Terms(); err != nil {
		return &domain.ValidationError{Field: "phaseout", Reason: err.Error()}
	}
	if !inEnum(policy.TakeupRate, takeupRates) {
		return &domain.ValidationError{Field: "takeup_rate", Reason: fmt.Sprintf("must be one of %s, got %s", enumString(takeupRates), policy.TakeupRate)}
	}
	if policy.LeakageRate.LessThan(decimal.Zero) || policy.LeakageRate.GreaterThan(maxLeakage) {
		return &domain.ValidationError{Field: "leakage_rate", Reason: fmt.Sprintf("must be between 0 and %s, got %s", maxLeakage, policy.LeakageRate)}
	}
	if !inEnum(policy.ROI, roiRates) {
		return &domain.ValidationError{Field: "roi", Reason: fmt.Sprintf("must be one of %s, got %s", enumString(roiRates), policy.ROI)}
	}
	return nil
}

// ValidateHousehold checks the per-household variant inputs. The match and
// contribution rates are continuous here (slider variants), independently
// bounded in [0,1]; the matched contribution is always their minimum.
func (ip *InputParser) ValidateHousehold(household *domain.HouseholdInput) error {
	one := decimal.NewFromInt(1)

	if household.Income.LessThan(decimal.Zero) {
		return &domain.ValidationError{Field: "income", Reason: "cannot be negative"}
	}
	if household.ContributionRate.LessThan(decimal.Zero) || household.ContributionRate.GreaterThan(one) {
		return &domain.ValidationError{Field: "contribution_rate", Reason: fmt.Sprintf("must be between 0 and 1, got %s", household.ContributionRate)}
	}
	if household.MatchRate.LessThan(decimal.Zero) || household.MatchRate.GreaterThan(one) {
		return &domain.ValidationError{Field: "match_rate", Reason: fmt.Sprintf("must be between 0 and 1, got %s", household.MatchRate)}
	}
	if household.LeakageRate.LessThan(decimal.Zero) || household.LeakageRate.GreaterThan(maxLeakage) {
		return &domain.ValidationError{Field: "leakage_rate", Reason: fmt.Sprintf("must be between 0 and %s, got %s", maxLeakage, household.LeakageRate)}
	}
	if !inEnum(household.ROI, roiRates) {
		return &domain.ValidationError{Field: "roi", Reason: fmt.Sprintf("must be one of %s, got %s", enumString(roiRates), household.ROI)}
	}
	if _, err := calculation.DepositModelByName(household.DepositModel); err != nil {
		return &domain.ValidationError{Field: "deposit_model", Reason: err.Error()}
	}
	return nil
}

// CreateExampleInput creates an example configuration covering both
// variants, using the original dashboard's default knob values.
func (ip *InputParser) CreateExampleInput() *Input {
	return &Input{
		Policy: &PolicyInput{
			MatchRate:   decimal.NewFromFloat(0.03),
			Phaseout:    domain.PhaseoutSlow,
			TakeupRate:  decimal.NewFromFloat(0.85),
			LeakageRate: decimal.NewFromFloat(0.3),
			ROI:         decimal.NewFromFloat(0.03),
		},
		Household: &domain.HouseholdInput{
			Income:           decimal.NewFromInt(30000),
			ContributionRate: decimal.NewFromFloat(0.03),
			MatchRate:        decimal.NewFromFloat(0.03),
			LeakageRate:      decimal.NewFromFloat(0.3),
			ROI:              decimal.NewFromFloat(0.03),
			DepositModel:     "protected_match",
		},
		DataPath: "data",
	}
}
