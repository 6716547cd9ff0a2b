package calculation

import (
	"github.com/Peter-Metz/TSP-cost/internal/domain"
	"github.com/shopspring/decimal"
)

// CumulativeAbs computes the running cumulative sum along the year axis and
// then takes the absolute value element-wise. Cost series are stored as
// negative numbers in the source tables; normalizing after the sum puts
// cost and wealth on the same sign for a unified chart. The order matters:
// summing first preserves any within-series cancellation.
func CumulativeAbs(series domain.WealthSeries) domain.WealthSeries {
	out := make(domain.WealthSeries, len(series))
	running := decimal.Zero
	for i, v := range series {
		running = running.Add(v)
		out[i] = running.Abs()
	}
	return out
}

// Aggregate transforms the selected metric rows into cumulative,
// sign-normalized series suitable for charting. Each metric is aggregated
// independently over its year columns; the Total sentinel is carried on the
// row separately and never enters the charted series.
func Aggregate(rows map[domain.Metric]domain.ScenarioRow) map[domain.Metric]domain.WealthSeries {
	out := make(map[domain.Metric]domain.WealthSeries, len(rows))
	for metric, row := range rows {
		out[metric] = CumulativeAbs(row.Years)
	}
	return out
}
