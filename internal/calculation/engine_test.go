package calculation

import (
	"context"
	"errors"
	"testing"

	"github.com/Peter-Metz/TSP-cost/internal/domain"
	"github.com/Peter-Metz/TSP-cost/internal/scenario"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gridParams() domain.PolicyParameters {
	return domain.PolicyParameters{
		MatchRate:     decimal.NewFromFloat(0.03),
		PhaseoutStart: decimal.NewFromFloat(0.5),
		PhaseoutRate:  decimal.NewFromFloat(0.03),
		TakeupRate:    decimal.NewFromFloat(0.85),
		LeakageRate:   decimal.NewFromFloat(0.3),
		ROI:           decimal.NewFromFloat(0.03),
	}
}

// constantRow builds a full-horizon row whose year values are all perYear.
func constantRow(metric domain.Metric, params domain.PolicyParameters, perYear float64) domain.ScenarioRow {
	years := make(domain.WealthSeries, domain.SeriesLength)
	total := decimal.Zero
	for i := range years {
		years[i] = decimal.NewFromFloat(perYear)
		total = total.Add(years[i])
	}
	return domain.ScenarioRow{Metric: metric, Params: params, Years: years, Total: total}
}

func testTable(params domain.PolicyParameters) *scenario.Table {
	return scenario.NewTable([]domain.ScenarioRow{
		constantRow(domain.MetricBudgetEstimate, params, -2),
		constantRow(domain.MetricWealthUnder25p, params, 1),
		constantRow(domain.MetricWealth25to50p, params, 1.5),
		constantRow(domain.MetricTotalWealth, params, 2.5),
	})
}

// TestRunPolicy checks the assembled impact: annual rows in display order,
// cumulative sign-normalized series, and the two-line chart payload.
func TestRunPolicy(t *testing.T) {
	params := gridParams()
	engine := NewSimulationEngine(testTable(params))

	impact, err := engine.RunPolicy(context.Background(), params)
	require.NoError(t, err)

	// Annual table preserves display order, cost row keeps its sign.
	require.Len(t, impact.Annual, 4)
	assert.Equal(t, domain.MetricBudgetEstimate, impact.Annual[0].Metric)
	assert.Equal(t, domain.MetricTotalWealth, impact.Annual[3].Metric)
	assert.True(t, impact.Annual[0].Years[0].Equal(decimal.NewFromInt(-2)),
		"Annual cost row should stay negative, got %s", impact.Annual[0].Years[0].String())

	// Cumulative series are absolute and grow linearly for constant rows.
	cost := impact.Cumulative[domain.MetricBudgetEstimate]
	require.Len(t, cost, domain.SeriesLength)
	assert.True(t, cost[0].Equal(decimal.NewFromInt(2)))
	assert.True(t, cost[domain.ProjectionYears].Equal(decimal.NewFromInt(2*domain.SeriesLength)))

	// Chart pairs total wealth against cost over years 0..40.
	require.Len(t, impact.Chart.Years, domain.SeriesLength)
	assert.Equal(t, 0, impact.Chart.Years[0])
	assert.Equal(t, domain.ProjectionYears, impact.Chart.Years[domain.ProjectionYears])
	assert.True(t, impact.Chart.Wealth[1].Equal(decimal.NewFromInt(5)),
		"Wealth chart year 1 should be 5.0, got %s", impact.Chart.Wealth[1].String())
	assert.True(t, impact.Chart.Cost[1].Equal(decimal.NewFromInt(4)),
		"Cost chart year 1 should be 4.0, got %s", impact.Chart.Cost[1].String())
}

// TestRunPolicyRoundsAnnualTable verifies the annual table is rounded to
// one decimal while the cumulative series keeps full precision.
func TestRunPolicyRoundsAnnualTable(t *testing.T) {
	params := gridParams()
	table := scenario.NewTable([]domain.ScenarioRow{
		constantRow(domain.MetricBudgetEstimate, params, -2.345),
		constantRow(domain.MetricWealthUnder25p, params, 1.004),
		constantRow(domain.MetricWealth25to50p, params, 1.5),
		constantRow(domain.MetricTotalWealth, params, 2.504),
	})
	engine := NewSimulationEngine(table)

	impact, err := engine.RunPolicy(context.Background(), params)
	require.NoError(t, err)

	assert.Equal(t, "-2.3", impact.Annual[0].Years[0].String())
	assert.Equal(t, "1", impact.Annual[1].Years[0].String())
}

// TestRunPolicyOffGrid verifies a combination outside the precomputed grid
// is an explicit ScenarioNotFound, not an empty result.
func TestRunPolicyOffGrid(t *testing.T) {
	engine := NewSimulationEngine(testTable(gridParams()))

	offGrid := gridParams()
	offGrid.ROI = decimal.NewFromFloat(0.09)

	_, err := engine.RunPolicy(context.Background(), offGrid)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrScenarioNotFound),
		"expected ScenarioNotFound, got %v", err)
}
