package calculation

import (
	"context"
	"fmt"

	"github.com/Peter-Metz/TSP-cost/internal/domain"
	"github.com/Peter-Metz/TSP-cost/internal/scenario"
)

// SimulationEngine orchestrates the population-level simulation: one row is
// selected per metric from the precomputed table, the rows are aggregated
// into cumulative sign-normalized series, and the display payloads are
// assembled. Each call recomputes fully from its inputs; there is no
// caching or cross-request state.
type SimulationEngine struct {
	Table  *scenario.Table
	Logger Logger
}

// NewSimulationEngine creates a new simulation engine over a loaded table.
func NewSimulationEngine(table *scenario.Table) *SimulationEngine {
	return &SimulationEngine{
		Table:  table,
		Logger: NopLogger{},
	}
}

// SetLogger sets the logger for the engine. If nil is provided, a no-op
// logger is used.
func (se *SimulationEngine) SetLogger(l Logger) {
	if l == nil {
		se.Logger = NopLogger{}
		return
	}
	se.Logger = l
}

// RunPolicy computes the complete impact of one policy parameter
// combination. A combination outside the precomputed grid returns a
// ScenarioNotFoundError from the first metric that misses.
func (se *SimulationEngine) RunPolicy(ctx context.Context, params domain.PolicyParameters) (*domain.PolicyImpact, error) {
	rows := make(map[domain.Metric]domain.ScenarioRow, len(domain.Metrics))
	for _, metric := range domain.Metrics {
		row, err := se.Table.Lookup(metric, params)
		if err != nil {
			return nil, fmt.Errorf("lookup failed: %w", err)
		}
		rows[metric] = row
	}

	cumulative := Aggregate(rows)

	// Annual table: un-aggregated per-year rows rounded to one decimal,
	// in display order, with the full-horizon Total alongside.
	annual := make([]domain.AnnualRow, 0, len(domain.Metrics))
	for _, metric := range domain.Metrics {
		row := rows[metric]
		annual = append(annual, domain.AnnualRow{
			Metric: metric,
			Years:  row.Years.Round(1),
			Total:  row.Total.Round(1),
		})
	}

	years := make([]int, domain.SeriesLength)
	for i := range years {
		years[i] = i
	}

	impact := &domain.PolicyImpact{
		Params:     params,
		Annual:     annual,
		Cumulative: cumulative,
		Chart: domain.ChartPayload{
			Years:  years,
			Wealth: cumulative[domain.MetricTotalWealth].Round(1),
			Cost:   cumulative[domain.MetricBudgetEstimate].Round(1),
		},
	}

	se.Logger.Debugf("computed policy impact for %s: %d annual rows, %d chart points",
		params.Key(), len(impact.Annual), len(impact.Chart.Years))

	return impact, nil
}
