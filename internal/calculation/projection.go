package calculation

import (
	"fmt"

	"github.com/Peter-Metz/TSP-cost/internal/domain"
	"github.com/shopspring/decimal"
)

// DepositModel defines how a year's account deposit is formed from income
// and the policy's contribution terms. Two models exist because early
// withdrawals ("leakage") may or may not reach the matched portion:
// participants can only access their own contributions before retirement,
// but some program designs pool the balances.
type DepositModel interface {
	// AnnualDeposit returns the amount added to the account each year
	// before investment growth is applied.
	AnnualDeposit(income, contributionRate, matchRate, leakageRate decimal.Decimal) decimal.Decimal
	// GetModelName returns a short identifier for config files and flags.
	GetModelName() string
}

// matchedRate returns min(contributionRate, matchRate): the program matches
// contributions only up to the matching rate cap.
func matchedRate(contributionRate, matchRate decimal.Decimal) decimal.Decimal {
	if contributionRate.LessThan(matchRate) {
		return contributionRate
	}
	return matchRate
}

// ProtectedMatchDeposit keeps the matched contribution out of reach of
// early withdrawals: leakage reduces only the participant's own
// contribution, the match compounds in full.
type ProtectedMatchDeposit struct{}

// AnnualDeposit returns matched*income + contribution*income*(1-leakage).
func (ProtectedMatchDeposit) AnnualDeposit(income, contributionRate, matchRate, leakageRate decimal.Decimal) decimal.Decimal {
	matched := matchedRate(contributionRate, matchRate)
	retained := decimal.NewFromInt(1).Sub(leakageRate)
	return matched.Mul(income).Add(contributionRate.Mul(income).Mul(retained))
}

// GetModelName returns the name of this model
func (ProtectedMatchDeposit) GetModelName() string {
	return "protected_match"
}

// PooledDeposit applies leakage to the combined contribution: matched and
// own amounts are pooled and early withdrawals draw from both.
type PooledDeposit struct{}

// AnnualDeposit returns (matched+contribution)*income*(1-leakage).
func (PooledDeposit) AnnualDeposit(income, contributionRate, matchRate, leakageRate decimal.Decimal) decimal.Decimal {
	matched := matchedRate(contributionRate, matchRate)
	totalRate := matched.Add(contributionRate)
	retained := decimal.NewFromInt(1).Sub(leakageRate)
	return totalRate.Mul(income).Mul(retained)
}

// GetModelName returns the name of this model
func (PooledDeposit) GetModelName() string {
	return "pooled"
}

// DepositModelByName resolves a model identifier from config or flags.
func DepositModelByName(name string) (DepositModel, error) {
	switch name {
	case "", (ProtectedMatchDeposit{}).GetModelName():
		return ProtectedMatchDeposit{}, nil
	case (PooledDeposit{}).GetModelName():
		return PooledDeposit{}, nil
	default:
		return nil, fmt.Errorf("unknown deposit model %q (must be %q or %q)",
			name, (ProtectedMatchDeposit{}).GetModelName(), (PooledDeposit{}).GetModelName())
	}
}

// ProjectWealth computes the wealth trajectory for a single household over
// years 0..40: w[0] = 0, then each year the prior balance grows by the
// investment return and the annual deposit is added. With non-negative
// inputs every term is non-negative and the growth factor is at least 1,
// so the series is non-decreasing. Inputs are assumed pre-validated at the
// config boundary; nothing is clamped here.
func ProjectWealth(income, roi, contributionRate, matchRate, leakageRate decimal.Decimal, model DepositModel) domain.WealthSeries {
	series := make(domain.WealthSeries, domain.SeriesLength)
	series[0] = decimal.Zero

	growth := decimal.NewFromInt(1).Add(roi)
	deposit := model.AnnualDeposit(income, contributionRate, matchRate, leakageRate)

	for year := 1; year < domain.SeriesLength; year++ {
		series[year] = series[year-1].Mul(growth).Add(deposit)
	}

	return series
}

// ProjectHousehold resolves the input's deposit model and runs the
// projection, returning the trajectory together with the inputs that
// produced it.
func ProjectHousehold(input domain.HouseholdInput) (*domain.HouseholdProjection, error) {
	model, err := DepositModelByName(input.DepositModel)
	if err != nil {
		return nil, err
	}

	series := ProjectWealth(input.Income, input.ROI, input.ContributionRate, input.MatchRate, input.LeakageRate, model)

	return &domain.HouseholdProjection{
		Input:  input,
		Series: series,
	}, nil
}
