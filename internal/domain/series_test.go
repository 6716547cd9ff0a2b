package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func series(vals ...float64) WealthSeries {
	out := make(WealthSeries, len(vals))
	for i, v := range vals {
		out[i] = decimal.NewFromFloat(v)
	}
	return out
}

func TestIsNonDecreasing(t *testing.T) {
	tests := []struct {
		name   string
		series WealthSeries
		want   bool
	}{
		{"empty", series(), true},
		{"single", series(0), true},
		{"flat", series(1, 1, 1), true},
		{"increasing", series(0, 1.5, 3.2), true},
		{"dip", series(0, 2, 1.9), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.series.IsNonDecreasing())
		})
	}
}

func TestRoundCopies(t *testing.T) {
	ws := series(1.26, -2.345)
	rounded := ws.Round(1)

	assert.Equal(t, "1.3", rounded[0].String())
	assert.Equal(t, "-2.3", rounded[1].String())

	// original untouched
	assert.Equal(t, "1.26", ws[0].String())
}

func TestFinalWealth(t *testing.T) {
	hp := HouseholdProjection{Series: series(0, 100, 250.5)}
	assert.True(t, hp.FinalWealth().Equal(decimal.NewFromFloat(250.5)))

	assert.True(t, HouseholdProjection{}.FinalWealth().IsZero())
}

func TestMetricDisplayOrder(t *testing.T) {
	assert.Equal(t, []Metric{
		MetricBudgetEstimate,
		MetricWealthUnder25p,
		MetricWealth25to50p,
		MetricTotalWealth,
	}, Metrics)
}
