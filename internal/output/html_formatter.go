package output

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/Peter-Metz/TSP-cost/internal/domain"
)

// HTMLFormatter creates a self-contained HTML report with the cumulative
// two-line chart (wealth vs cost) and the annual-effects table.
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string { return "html" }

func (h HTMLFormatter) Format(impact *domain.PolicyImpact) ([]byte, error) {
	years, err := json.Marshal(impact.Chart.Years)
	if err != nil {
		return nil, err
	}
	wealth, err := marshalSeries(impact.Chart.Wealth)
	if err != nil {
		return nil, err
	}
	cost, err := marshalSeries(impact.Chart.Cost)
	if err != nil {
		return nil, err
	}

	buf := &bytes.Buffer{}
	fmt.Fprintf(buf, `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Federal Savings Match: Costs and Benefits</title>
    <script src="https://cdn.jsdelivr.net/npm/chart.js"></script>
    <style>
        body {
            font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif;
            margin: 0 auto;
            max-width: 1100px;
            padding: 20px;
            color: #1e293b;
        }
        h1 { color: #75A074; font-weight: 300; }
        h2 { color: #75A074; font-weight: 400; font-size: 1.2em; }
        .params { font-style: italic; color: #64748b; margin-bottom: 20px; }
        table { border-collapse: collapse; font-size: 12px; width: 100%%; overflow-x: auto; display: block; }
        th, td { padding: 4px 8px; text-align: right; white-space: nowrap; }
        th { background: #e6e6e6; font-weight: bold; }
        tr:nth-child(even) { background: #f8f8f8; }
        td:first-child, th:first-child { text-align: left; }
        .chart-container { margin-top: 30px; }
    </style>
</head>
<body>
    <h1>Interactive Tool: The Costs and Benefits of a Federal Savings Match</h1>
    <div class="params">Match %s &middot; Phaseout start %s &middot; Phaseout rate %s &middot; Takeup %s &middot; Early withdrawal %s &middot; Returns %s</div>

    <h2>Annual Effects (billions USD)</h2>
    %s

    <h2>Cumulative Effects</h2>
    <div class="chart-container"><canvas id="cumulative"></canvas></div>

    <script>
        new Chart(document.getElementById('cumulative'), {
            type: 'line',
            data: {
                labels: %s,
                datasets: [
                    { label: 'Wealth (bn)', data: %s, borderColor: '#d69470', borderWidth: 4, pointRadius: 0 },
                    { label: 'Cost (bn)', data: %s, borderColor: '#9972b8', borderWidth: 4, pointRadius: 0 }
                ]
            },
            options: {
                interaction: { mode: 'index', intersect: false },
                scales: { y: { title: { display: true, text: 'Billions USD' } } }
            }
        });
    </script>
</body>
</html>
`,
		FormatPercentage(impact.Params.MatchRate),
		FormatPercentage(impact.Params.PhaseoutStart),
		FormatPercentage(impact.Params.PhaseoutRate),
		FormatPercentage(impact.Params.TakeupRate),
		FormatPercentage(impact.Params.LeakageRate),
		FormatPercentage(impact.Params.ROI),
		annualTableHTML(impact.Annual),
		years, wealth, cost)

	return buf.Bytes(), nil
}

// marshalSeries renders a wealth series as a JSON number array.
func marshalSeries(series domain.WealthSeries) (string, error) {
	parts := make([]json.RawMessage, len(series))
	for i, v := range series {
		parts[i] = json.RawMessage(v.StringFixed(1))
	}
	out, err := json.Marshal(parts)
	return string(out), err
}

// annualTableHTML renders the annual-effects table rows.
func annualTableHTML(rows []domain.AnnualRow) string {
	buf := &bytes.Buffer{}
	fmt.Fprint(buf, "<table><tr><th></th>")
	for year := 0; year < domain.SeriesLength; year++ {
		fmt.Fprintf(buf, "<th>%d</th>", year)
	}
	fmt.Fprint(buf, "<th>Total</th></tr>")
	for _, row := range rows {
		fmt.Fprintf(buf, "<tr><td>%s</td>", row.Metric)
		for _, v := range row.Years {
			fmt.Fprintf(buf, "<td>%s</td>", v.StringFixed(1))
		}
		fmt.Fprintf(buf, "<td>%s</td></tr>", row.Total.StringFixed(1))
	}
	fmt.Fprint(buf, "</table>")
	return buf.String()
}
