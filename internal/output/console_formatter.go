package output

import (
	"bytes"
	"fmt"

	"github.com/Peter-Metz/TSP-cost/internal/domain"
)

// consoleInterval is the year spacing for the console table; the full
// 41-column table does not fit a terminal, so every fifth year is shown.
const consoleInterval = 5

// ConsoleFormatter renders a compact text report: the policy knobs, the
// annual-effects table at five-year intervals, and the cumulative effects
// through the final year.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(impact *domain.PolicyImpact) ([]byte, error) {
	buf := &bytes.Buffer{}

	fmt.Fprintln(buf, "FEDERAL SAVINGS MATCH: COSTS AND BENEFITS")
	fmt.Fprintln(buf, "=========================================")
	fmt.Fprintf(buf, "Matching rate:    %s\n", FormatPercentage(impact.Params.MatchRate))
	fmt.Fprintf(buf, "Phaseout:         start %s of median, %s per $1k over\n",
		FormatPercentage(impact.Params.PhaseoutStart), FormatPercentage(impact.Params.PhaseoutRate))
	fmt.Fprintf(buf, "Takeup rate:      %s\n", FormatPercentage(impact.Params.TakeupRate))
	fmt.Fprintf(buf, "Early withdrawal: %s\n", FormatPercentage(impact.Params.LeakageRate))
	fmt.Fprintf(buf, "Annual returns:   %s\n", FormatPercentage(impact.Params.ROI))
	fmt.Fprintln(buf)

	fmt.Fprintln(buf, "ANNUAL EFFECTS (billions USD)")
	fmt.Fprintf(buf, "%-28s", "")
	for year := 0; year < domain.SeriesLength; year += consoleInterval {
		fmt.Fprintf(buf, "%10s", fmt.Sprintf("Yr %d", year))
	}
	fmt.Fprintf(buf, "%10s\n", "Total")
	for _, row := range impact.Annual {
		fmt.Fprintf(buf, "%-28s", row.Metric)
		for year := 0; year < len(row.Years); year += consoleInterval {
			fmt.Fprintf(buf, "%10s", row.Years[year].StringFixed(1))
		}
		fmt.Fprintf(buf, "%10s\n", row.Total.StringFixed(1))
	}
	fmt.Fprintln(buf)

	fmt.Fprintln(buf, "CUMULATIVE EFFECTS THROUGH FINAL YEAR")
	lastYear := len(impact.Chart.Years) - 1
	if lastYear >= 0 {
		fmt.Fprintf(buf, "%-28s%s\n", "Wealth generated:", FormatBillions(impact.Chart.Wealth[lastYear]))
		fmt.Fprintf(buf, "%-28s%s\n", "Budgetary cost:", FormatBillions(impact.Chart.Cost[lastYear]))
	}

	return buf.Bytes(), nil
}
