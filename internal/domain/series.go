package domain

import (
	"github.com/shopspring/decimal"
)

// Metric identifies one of the four precomputed outcome tables.
type Metric string

const (
	MetricBudgetEstimate Metric = "Budget Estimate"
	MetricWealthUnder25p Metric = "Wealth Generated for <25p"
	MetricWealth25to50p  Metric = "Wealth Generated for 25-50p"
	MetricTotalWealth    Metric = "Total Wealth Generated"
)

// Metrics lists all metrics in display order (cost first, then the wealth
// rows from the narrowest population slice up to the total).
var Metrics = []Metric{
	MetricBudgetEstimate,
	MetricWealthUnder25p,
	MetricWealth25to50p,
	MetricTotalWealth,
}

// WealthSeries is an ordered sequence of values indexed by year. Series
// produced by the projection engine always start at zero (no prior savings
// at program start). Immutable once constructed.
type WealthSeries []decimal.Decimal

// IsNonDecreasing reports whether each value is at least the previous one.
func (ws WealthSeries) IsNonDecreasing() bool {
	for i := 1; i < len(ws); i++ {
		if ws[i].LessThan(ws[i-1]) {
			return false
		}
	}
	return true
}

// Round returns a copy with every value rounded to the given places.
func (ws WealthSeries) Round(places int32) WealthSeries {
	out := make(WealthSeries, len(ws))
	for i, v := range ws {
		out[i] = v.Round(places)
	}
	return out
}

// ScenarioRow is a single precomputed table row: one metric's year-by-year
// values for one parameter combination, plus the cumulative full-horizon
// Total. The Total feeds summary display only and is excluded from the
// charted series.
type ScenarioRow struct {
	Metric Metric           `json:"metric"`
	Params PolicyParameters `json:"params"`
	Years  WealthSeries     `json:"years"` // years 0..40, billions USD
	Total  decimal.Decimal  `json:"total"`
}

// AnnualRow is one row of the annual-effects table handed to the display
// collaborator: un-aggregated per-year values rounded to one decimal.
type AnnualRow struct {
	Metric Metric       `json:"metric"`
	Years  WealthSeries `json:"years"`
	Total  decimal.Decimal `json:"total"`
}

// ChartPayload is the two-series cumulative chart handed to the rendering
// collaborator: x = years, y = cumulative absolute values for total wealth
// and budgetary cost.
type ChartPayload struct {
	Years  []int        `json:"years"`
	Wealth WealthSeries `json:"wealth"`
	Cost   WealthSeries `json:"cost"`
}

// PolicyImpact is the complete output for one population-level simulation:
// the annual table, the cumulative absolute series per metric, and the
// chart payload derived from them.
type PolicyImpact struct {
	Params     PolicyParameters        `json:"params"`
	Annual     []AnnualRow             `json:"annual"`
	Cumulative map[Metric]WealthSeries `json:"cumulative"`
	Chart      ChartPayload            `json:"chart"`
}

// HouseholdInput describes a single earner for the per-household variants.
type HouseholdInput struct {
	Income           decimal.Decimal `yaml:"income" json:"income"`
	ContributionRate decimal.Decimal `yaml:"contribution_rate" json:"contribution_rate"`
	MatchRate        decimal.Decimal `yaml:"match_rate" json:"match_rate"`
	LeakageRate      decimal.Decimal `yaml:"leakage_rate" json:"leakage_rate"`
	ROI              decimal.Decimal `yaml:"roi" json:"roi"`
	DepositModel     string          `yaml:"deposit_model" json:"deposit_model"`
}

// MatchedRate returns the matched contribution fraction,
// min(contribution_rate, match_rate).
func (h HouseholdInput) MatchedRate() decimal.Decimal {
	if h.ContributionRate.LessThan(h.MatchRate) {
		return h.ContributionRate
	}
	return h.MatchRate
}

// HouseholdProjection is the per-household output: the 41-point wealth
// trajectory and the inputs that produced it.
type HouseholdProjection struct {
	Input  HouseholdInput `json:"input"`
	Series WealthSeries   `json:"series"`
}

// FinalWealth returns the last point of the trajectory.
func (hp HouseholdProjection) FinalWealth() decimal.Decimal {
	if len(hp.Series) == 0 {
		return decimal.Zero
	}
	return hp.Series[len(hp.Series)-1]
}
