package calculation

import (
	"testing"

	"github.com/Peter-Metz/TSP-cost/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestProjectionStartsAtZero verifies that every trajectory begins with no
// prior savings at program start.
func TestProjectionStartsAtZero(t *testing.T) {
	models := []DepositModel{ProtectedMatchDeposit{}, PooledDeposit{}}

	for _, model := range models {
		t.Run(model.GetModelName(), func(t *testing.T) {
			series := ProjectWealth(
				decimal.NewFromInt(52000),
				decimal.NewFromFloat(0.07),
				decimal.NewFromFloat(0.05),
				decimal.NewFromFloat(0.05),
				decimal.NewFromFloat(0.2),
				model)

			assert.Len(t, series, domain.SeriesLength, "Series should cover years 0..40")
			assert.True(t, series[0].Equal(decimal.Zero), "Year 0 should be zero, got %s", series[0].String())
		})
	}
}

// TestProtectedMatchReferenceScenario checks the reference household:
// $30,000 income, 3% contribution, 3% match, 3% returns, 40% leakage.
// Year 1 is $900 matched plus $540 net-of-leakage own contribution; year 2
// compounds year 1 and adds the same deposit.
func TestProtectedMatchReferenceScenario(t *testing.T) {
	series := ProjectWealth(
		decimal.NewFromInt(30000),
		decimal.NewFromFloat(0.03),
		decimal.NewFromFloat(0.03),
		decimal.NewFromFloat(0.03),
		decimal.NewFromFloat(0.4),
		ProtectedMatchDeposit{})

	assert.True(t, series[0].Equal(decimal.Zero), "Year 0 should be zero")
	assert.True(t, series[1].Equal(decimal.NewFromFloat(1440.0)),
		"Year 1 should be 1440.0, got %s", series[1].String())
	assert.True(t, series[2].Equal(decimal.NewFromFloat(2923.2)),
		"Year 2 should be 2923.2 (1440*1.03 + 1440), got %s", series[2].String())
}

// TestPooledDepositScenario checks the combined-contribution variant on the
// same household: the 6% total rate deposits $1,080 after 40% leakage.
func TestPooledDepositScenario(t *testing.T) {
	series := ProjectWealth(
		decimal.NewFromInt(30000),
		decimal.NewFromFloat(0.03),
		decimal.NewFromFloat(0.03),
		decimal.NewFromFloat(0.03),
		decimal.NewFromFloat(0.4),
		PooledDeposit{})

	assert.True(t, series[1].Equal(decimal.NewFromFloat(1080.0)),
		"Year 1 should be 1080.0 (0.06*30000*0.6), got %s", series[1].String())
	assert.True(t, series[2].Equal(decimal.NewFromFloat(2192.4)),
		"Year 2 should be 2192.4 (1080*1.03 + 1080), got %s", series[2].String())
}

// TestProjectionMonotonic verifies the non-decreasing invariant: with
// non-negative returns and contributions every additive term is
// non-negative and the growth factor is at least 1.
func TestProjectionMonotonic(t *testing.T) {
	tests := []struct {
		name         string
		income       decimal.Decimal
		roi          decimal.Decimal
		contribution decimal.Decimal
		match        decimal.Decimal
		leakage      decimal.Decimal
	}{
		{
			name:         "Zero returns",
			income:       decimal.NewFromInt(30000),
			roi:          decimal.Zero,
			contribution: decimal.NewFromFloat(0.03),
			match:        decimal.NewFromFloat(0.03),
			leakage:      decimal.NewFromFloat(0.4),
		},
		{
			name:         "High returns and full leakage",
			income:       decimal.NewFromInt(52000),
			roi:          decimal.NewFromFloat(0.07),
			contribution: decimal.NewFromFloat(0.05),
			match:        decimal.NewFromFloat(0.05),
			leakage:      decimal.NewFromFloat(0.5),
		},
		{
			name:         "Zero income",
			income:       decimal.Zero,
			roi:          decimal.NewFromFloat(0.05),
			contribution: decimal.NewFromFloat(0.04),
			match:        decimal.NewFromFloat(0.04),
			leakage:      decimal.Zero,
		},
		{
			name:         "Zero contribution",
			income:       decimal.NewFromInt(40000),
			roi:          decimal.NewFromFloat(0.03),
			contribution: decimal.Zero,
			match:        decimal.NewFromFloat(0.05),
			leakage:      decimal.NewFromFloat(0.1),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, model := range []DepositModel{ProtectedMatchDeposit{}, PooledDeposit{}} {
				series := ProjectWealth(tt.income, tt.roi, tt.contribution, tt.match, tt.leakage, model)
				assert.True(t, series.IsNonDecreasing(),
					"%s series should be non-decreasing", model.GetModelName())
			}
		})
	}
}

// TestMatchedContributionCapped verifies the matched contribution is always
// min(contribution_rate, match_rate).
func TestMatchedContributionCapped(t *testing.T) {
	income := decimal.NewFromInt(10000)
	noLeakage := decimal.Zero

	// Contribution above the cap: match stays at the matching rate.
	deposit := ProtectedMatchDeposit{}.AnnualDeposit(
		income, decimal.NewFromFloat(0.10), decimal.NewFromFloat(0.05), noLeakage)
	assert.True(t, deposit.Equal(decimal.NewFromInt(1500)),
		"Deposit should be 500 matched + 1000 own, got %s", deposit.String())

	// Contribution below the cap: match limited to the contribution.
	deposit = ProtectedMatchDeposit{}.AnnualDeposit(
		income, decimal.NewFromFloat(0.02), decimal.NewFromFloat(0.05), noLeakage)
	assert.True(t, deposit.Equal(decimal.NewFromInt(400)),
		"Deposit should be 200 matched + 200 own, got %s", deposit.String())
}

// TestDepositModelByName resolves model identifiers including the default.
func TestDepositModelByName(t *testing.T) {
	model, err := DepositModelByName("protected_match")
	require.NoError(t, err)
	assert.Equal(t, "protected_match", model.GetModelName())

	model, err = DepositModelByName("pooled")
	require.NoError(t, err)
	assert.Equal(t, "pooled", model.GetModelName())

	// Empty name falls back to the protected-match model.
	model, err = DepositModelByName("")
	require.NoError(t, err)
	assert.Equal(t, "protected_match", model.GetModelName())

	_, err = DepositModelByName("magic")
	assert.Error(t, err)
}

// TestProjectHousehold runs the full household entry point.
func TestProjectHousehold(t *testing.T) {
	input := domain.HouseholdInput{
		Income:           decimal.NewFromInt(30000),
		ContributionRate: decimal.NewFromFloat(0.03),
		MatchRate:        decimal.NewFromFloat(0.03),
		LeakageRate:      decimal.NewFromFloat(0.4),
		ROI:              decimal.NewFromFloat(0.03),
		DepositModel:     "protected_match",
	}

	projection, err := ProjectHousehold(input)
	require.NoError(t, err)
	assert.Len(t, projection.Series, domain.SeriesLength)
	assert.True(t, projection.Series[1].Equal(decimal.NewFromFloat(1440.0)))
	assert.True(t, projection.FinalWealth().GreaterThan(decimal.Zero))

	input.DepositModel = "bogus"
	_, err = ProjectHousehold(input)
	assert.Error(t, err)
}
