package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ProjectionYears is the simulation horizon. Wealth series carry one value
// per year from year 0 (program start, no prior savings) through year 40.
const ProjectionYears = 40

// SeriesLength is the number of points in a wealth series (years 0..40).
const SeriesLength = ProjectionYears + 1

// PolicyParameters holds the six policy knobs that parameterize a
// savings-match scenario. All fields are fractions in [0,1].
type PolicyParameters struct {
	MatchRate     decimal.Decimal `yaml:"match_rate" json:"match_rate"`
	PhaseoutStart decimal.Decimal `yaml:"phaseout_start" json:"phaseout_start"`
	PhaseoutRate  decimal.Decimal `yaml:"phaseout_rate" json:"phaseout_rate"`
	TakeupRate    decimal.Decimal `yaml:"takeup_rate" json:"takeup_rate"`
	LeakageRate   decimal.Decimal `yaml:"leakage_rate" json:"leakage_rate"`
	ROI           decimal.Decimal `yaml:"roi" json:"roi"`
}

// Key returns a canonical fixed-precision encoding of the parameter tuple.
// decimal.Decimal is not a comparable map key, so exact-match lookup maps
// are keyed on this string instead.
func (p PolicyParameters) Key() string {
	fields := []decimal.Decimal{
		p.MatchRate, p.PhaseoutStart, p.PhaseoutRate,
		p.TakeupRate, p.LeakageRate, p.ROI,
	}
	parts := make([]string, len(fields))
	for i, f := range fields {
		parts[i] = f.StringFixed(4)
	}
	return strings.Join(parts, "|")
}

// Equal reports whether two parameter tuples match on all six fields.
func (p PolicyParameters) Equal(other PolicyParameters) bool {
	return p.MatchRate.Equal(other.MatchRate) &&
		p.PhaseoutStart.Equal(other.PhaseoutStart) &&
		p.PhaseoutRate.Equal(other.PhaseoutRate) &&
		p.TakeupRate.Equal(other.TakeupRate) &&
		p.LeakageRate.Equal(other.LeakageRate) &&
		p.ROI.Equal(other.ROI)
}

// PhaseoutScenario selects one of the two benefit phaseout schedules. The
// schedule determines the income threshold (as a fraction of median
// earnings) where the match begins to shrink and the decay rate beyond it.
type PhaseoutScenario string

const (
	// PhaseoutSlow caps the match above one half of median earnings,
	// decaying three percent per thousand dollars over the threshold.
	PhaseoutSlow PhaseoutScenario = "slow"
	// PhaseoutFast caps the match above two thirds of median earnings,
	// decaying five percent per thousand dollars over the threshold.
	PhaseoutFast PhaseoutScenario = "fast"
)

// Terms returns the (phaseout_start, phaseout_rate) pair for the scenario.
func (ps PhaseoutScenario) Terms() (start, rate decimal.Decimal, err error) {
	switch ps {
	case PhaseoutSlow:
		return decimal.NewFromFloat(0.5), decimal.NewFromFloat(0.03), nil
	case PhaseoutFast:
		return decimal.NewFromFloat(0.67), decimal.NewFromFloat(0.05), nil
	default:
		return decimal.Zero, decimal.Zero, fmt.Errorf("unknown phaseout scenario %q (must be %q or %q)", ps, PhaseoutSlow, PhaseoutFast)
	}
}
