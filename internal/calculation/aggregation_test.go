package calculation

import (
	"testing"

	"github.com/Peter-Metz/TSP-cost/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func seriesFrom(values ...float64) domain.WealthSeries {
	out := make(domain.WealthSeries, len(values))
	for i, v := range values {
		out[i] = decimal.NewFromFloat(v)
	}
	return out
}

// TestCumulativeAbsZeroSeries verifies an all-zero series stays zero
// through the pipeline.
func TestCumulativeAbsZeroSeries(t *testing.T) {
	out := CumulativeAbs(seriesFrom(0, 0, 0, 0))

	assert.Len(t, out, 4)
	for i, v := range out {
		assert.True(t, v.Equal(decimal.Zero), "Year %d should remain zero, got %s", i, v.String())
	}
}

// TestCumulativeAbsNegativeSeries verifies a strictly negative input (how
// cost is stored in the source tables) yields a strictly positive,
// monotonically increasing output.
func TestCumulativeAbsNegativeSeries(t *testing.T) {
	out := CumulativeAbs(seriesFrom(-100, -20, -5, -0.5))

	for i, v := range out {
		assert.True(t, v.GreaterThan(decimal.Zero), "Year %d should be positive, got %s", i, v.String())
		if i > 0 {
			assert.True(t, out[i].GreaterThan(out[i-1]),
				"Year %d should exceed year %d", i, i-1)
		}
	}
	assert.True(t, out[0].Equal(decimal.NewFromInt(100)))
	assert.True(t, out[3].Equal(decimal.NewFromFloat(125.5)))
}

// TestCumulativeAbsOrderMatters verifies the sum runs before the absolute
// value, so mixed-sign values cancel inside the running total.
func TestCumulativeAbsOrderMatters(t *testing.T) {
	out := CumulativeAbs(seriesFrom(-10, 4, 6))

	assert.True(t, out[0].Equal(decimal.NewFromInt(10)))
	assert.True(t, out[1].Equal(decimal.NewFromInt(6)), "Running sum -6 normalizes to 6, got %s", out[1].String())
	assert.True(t, out[2].Equal(decimal.Zero), "Running sum cancels to zero, got %s", out[2].String())
}

// TestAggregateEndToEnd aggregates four metrics with year-0
// values [-100, 10, 5, 15] and year-1 values [-20, 2, 1, 3].
func TestAggregateEndToEnd(t *testing.T) {
	rows := map[domain.Metric]domain.ScenarioRow{
		domain.MetricBudgetEstimate: {Metric: domain.MetricBudgetEstimate, Years: seriesFrom(-100, -20), Total: decimal.NewFromInt(-120)},
		domain.MetricWealthUnder25p: {Metric: domain.MetricWealthUnder25p, Years: seriesFrom(10, 2), Total: decimal.NewFromInt(12)},
		domain.MetricWealth25to50p:  {Metric: domain.MetricWealth25to50p, Years: seriesFrom(5, 1), Total: decimal.NewFromInt(6)},
		domain.MetricTotalWealth:    {Metric: domain.MetricTotalWealth, Years: seriesFrom(15, 3), Total: decimal.NewFromInt(18)},
	}

	out := Aggregate(rows)

	expected := map[domain.Metric][]int64{
		domain.MetricBudgetEstimate: {100, 120},
		domain.MetricWealthUnder25p: {10, 12},
		domain.MetricWealth25to50p:  {5, 6},
		domain.MetricTotalWealth:    {15, 18},
	}

	for metric, want := range expected {
		series := out[metric]
		// The Total sentinel never enters the charted series.
		assert.Len(t, series, 2, "%s should cover the year columns only", metric)
		for i, v := range want {
			assert.True(t, series[i].Equal(decimal.NewFromInt(v)),
				"%s year %d: expected %d, got %s", metric, i, v, series[i].String())
		}
	}
}
