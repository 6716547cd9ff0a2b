package output

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/Peter-Metz/TSP-cost/internal/domain"
)

// CSVFormatter exports the annual-effects table: one row per metric, year
// columns 0..40 plus the full-horizon Total, values rounded to 1 decimal.
type CSVFormatter struct{}

func (c CSVFormatter) Name() string { return "csv" }

func (c CSVFormatter) Format(impact *domain.PolicyImpact) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)

	header := make([]string, 0, domain.SeriesLength+2)
	header = append(header, "Metric")
	for year := 0; year < domain.SeriesLength; year++ {
		header = append(header, fmt.Sprintf("%d", year))
	}
	header = append(header, "Total")
	if err := w.Write(header); err != nil {
		return nil, err
	}

	for _, row := range impact.Annual {
		record := make([]string, 0, len(header))
		record = append(record, string(row.Metric))
		for _, v := range row.Years {
			record = append(record, v.StringFixed(1))
		}
		record = append(record, row.Total.StringFixed(1))
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
