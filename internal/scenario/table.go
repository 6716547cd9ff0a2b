// Package scenario holds the precomputed policy-outcome tables and the
// exact-match lookup over them. The table is built once at startup from the
// CSV data source and is read-only for the process lifetime, so concurrent
// readers need no locking.
package scenario

import (
	"github.com/Peter-Metz/TSP-cost/internal/domain"
)

type rowKey struct {
	metric domain.Metric
	params string
}

// Table maps (metric, parameter-tuple) to its precomputed row. Immutable
// after construction; pass by handle into lookup calls.
type Table struct {
	rows map[rowKey]domain.ScenarioRow
}

// NewTable builds a table from loaded rows. The source data is constructed
// so combinations are unique per metric; duplicates are not detected here.
func NewTable(rows []domain.ScenarioRow) *Table {
	indexed := make(map[rowKey]domain.ScenarioRow, len(rows))
	for _, row := range rows {
		indexed[rowKey{metric: row.Metric, params: row.Params.Key()}] = row
	}
	return &Table{rows: indexed}
}

// Lookup returns the row for the metric and exact parameter combination.
// All six parameter fields must match simultaneously; a combination outside
// the enumerated grid yields a ScenarioNotFoundError rather than an empty
// series.
func (t *Table) Lookup(metric domain.Metric, params domain.PolicyParameters) (domain.ScenarioRow, error) {
	row, ok := t.rows[rowKey{metric: metric, params: params.Key()}]
	if !ok {
		return domain.ScenarioRow{}, &domain.ScenarioNotFoundError{Metric: metric, Params: params}
	}
	return row, nil
}

// Len returns the number of rows across all metrics.
func (t *Table) Len() int {
	return len(t.rows)
}
