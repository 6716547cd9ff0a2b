package scenario

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Peter-Metz/TSP-cost/internal/domain"
	"github.com/shopspring/decimal"
)

// paramColumns are the leading header columns of every metric table, in
// order, followed by year columns "0".."40" and a trailing "Total".
var paramColumns = []string{"match_rt", "phaseout_start", "phaseout_rt", "takeup_rt", "leakage", "roi"}

// expectedColumns is params + years 0..40 + Total.
const expectedColumns = 6 + domain.SeriesLength + 1

// metricFiles maps each metric to its CSV file in the data directory.
var metricFiles = []struct {
	metric   domain.Metric
	filename string
}{
	{domain.MetricBudgetEstimate, "cost.csv"},
	{domain.MetricWealthUnder25p, "wealth_25.csv"},
	{domain.MetricWealth25to50p, "wealth_25_50.csv"},
	{domain.MetricTotalWealth, "total_wealth.csv"},
}

// Loader reads the precomputed metric tables from a data directory.
type Loader struct {
	DataPath string
}

// NewLoader creates a new loader rooted at dataPath.
func NewLoader(dataPath string) *Loader {
	return &Loader{DataPath: dataPath}
}

// LoadTable loads all four metric tables into a single immutable Table.
// Any malformed file is a fatal startup condition: the error is returned
// rather than the bad rows being skipped.
func (l *Loader) LoadTable() (*Table, error) {
	var rows []domain.ScenarioRow

	for _, mf := range metricFiles {
		metricRows, err := l.loadMetric(mf.metric, mf.filename)
		if err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", mf.filename, err)
		}
		rows = append(rows, metricRows...)
	}

	return NewTable(rows), nil
}

// loadMetric loads a single metric table from CSV.
func (l *Loader) loadMetric(metric domain.Metric, filename string) ([]domain.ScenarioRow, error) {
	filePath := filepath.Join(l.DataPath, filename)

	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file %s: %w", filePath, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV %s: %w", filePath, err)
	}

	if len(records) < 2 {
		return nil, fmt.Errorf("insufficient data in %s", filePath)
	}

	if err := validateHeader(records[0]); err != nil {
		return nil, fmt.Errorf("bad header in %s: %w", filePath, err)
	}

	rows := make([]domain.ScenarioRow, 0, len(records)-1)
	for i := 1; i < len(records); i++ {
		row, err := parseRow(metric, records[i])
		if err != nil {
			return nil, fmt.Errorf("row %d of %s: %w", i+1, filePath, err)
		}
		rows = append(rows, row)
	}

	return rows, nil
}

// validateHeader checks the column count, the six parameter columns, the
// year columns 0..40, and the trailing Total sentinel.
func validateHeader(header []string) error {
	if len(header) != expectedColumns {
		return fmt.Errorf("expected %d columns, got %d", expectedColumns, len(header))
	}
	for i, want := range paramColumns {
		if header[i] != want {
			return fmt.Errorf("expected column %d to be %q, got %q", i, want, header[i])
		}
	}
	for year := 0; year < domain.SeriesLength; year++ {
		if header[len(paramColumns)+year] != fmt.Sprintf("%d", year) {
			return fmt.Errorf("expected year column %d, got %q", year, header[len(paramColumns)+year])
		}
	}
	if header[expectedColumns-1] != "Total" {
		return fmt.Errorf("expected trailing Total column, got %q", header[expectedColumns-1])
	}
	return nil
}

// parseRow parses one CSV record into a ScenarioRow.
func parseRow(metric domain.Metric, record []string) (domain.ScenarioRow, error) {
	if len(record) != expectedColumns {
		return domain.ScenarioRow{}, fmt.Errorf("expected %d fields, got %d", expectedColumns, len(record))
	}

	values := make([]decimal.Decimal, expectedColumns)
	for i, cell := range record {
		v, err := decimal.NewFromString(cell)
		if err != nil {
			return domain.ScenarioRow{}, fmt.Errorf("field %d: invalid number %q", i, cell)
		}
		values[i] = v
	}

	params := domain.PolicyParameters{
		MatchRate:     values[0],
		PhaseoutStart: values[1],
		PhaseoutRate:  values[2],
		TakeupRate:    values[3],
		LeakageRate:   values[4],
		ROI:           values[5],
	}

	years := make(domain.WealthSeries, domain.SeriesLength)
	copy(years, values[len(paramColumns):expectedColumns-1])

	return domain.ScenarioRow{
		Metric: metric,
		Params: params,
		Years:  years,
		Total:  values[expectedColumns-1],
	}, nil
}
