package output

import (
	"bytes"
	"fmt"
	"time"

	"github.com/Peter-Metz/TSP-cost/internal/domain"
	"github.com/go-pdf/fpdf"
)

// PDFFormatter renders a one-page summary report: the policy design, the
// cumulative outcomes, and the annual-effects table at five-year intervals.
type PDFFormatter struct{}

func (p PDFFormatter) Name() string { return "pdf" }

func (p PDFFormatter) Format(impact *domain.PolicyImpact) ([]byte, error) {
	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.AddPage()
	contentWidth := 277.0

	pdf.SetFont("Arial", "B", 20)
	pdf.CellFormat(contentWidth, 12, "Federal Savings Match: Costs and Benefits", "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "I", 10)
	pdf.CellFormat(contentWidth, 6, fmt.Sprintf("Generated: %s", time.Now().Format("2 January 2006")), "", 1, "C", false, 0, "")
	pdf.Ln(6)

	pdf.SetFont("Arial", "B", 12)
	pdf.SetFillColor(230, 230, 230)
	pdf.CellFormat(contentWidth, 8, "Policy Design", "1", 1, "C", true, 0, "")
	pdf.SetFont("Arial", "", 11)
	design := fmt.Sprintf("Match %s   |   Phaseout start %s of median, %s per $1k over   |   Takeup %s   |   Early withdrawal %s   |   Annual returns %s",
		FormatPercentage(impact.Params.MatchRate),
		FormatPercentage(impact.Params.PhaseoutStart),
		FormatPercentage(impact.Params.PhaseoutRate),
		FormatPercentage(impact.Params.TakeupRate),
		FormatPercentage(impact.Params.LeakageRate),
		FormatPercentage(impact.Params.ROI))
	pdf.CellFormat(contentWidth, 8, design, "LRB", 1, "C", false, 0, "")
	pdf.Ln(6)

	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(contentWidth, 8, "Cumulative Effects Through Final Year", "1", 1, "C", true, 0, "")
	pdf.SetFont("Arial", "", 11)
	lastYear := len(impact.Chart.Years) - 1
	if lastYear >= 0 {
		pdf.CellFormat(contentWidth, 8,
			fmt.Sprintf("Wealth generated: %s        Budgetary cost: %s",
				FormatBillions(impact.Chart.Wealth[lastYear]),
				FormatBillions(impact.Chart.Cost[lastYear])),
			"LRB", 1, "C", false, 0, "")
	}
	pdf.Ln(6)

	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(contentWidth, 8, "Annual Effects at Five-Year Intervals (billions USD)", "1", 1, "C", true, 0, "")

	labelWidth := 70.0
	yearCols := 0
	for year := 0; year < domain.SeriesLength; year += consoleInterval {
		yearCols++
	}
	colWidth := (contentWidth - labelWidth) / float64(yearCols+1)

	pdf.SetFont("Arial", "B", 9)
	pdf.CellFormat(labelWidth, 7, "", "1", 0, "L", true, 0, "")
	for year := 0; year < domain.SeriesLength; year += consoleInterval {
		pdf.CellFormat(colWidth, 7, fmt.Sprintf("Yr %d", year), "1", 0, "C", true, 0, "")
	}
	pdf.CellFormat(colWidth, 7, "Total", "1", 1, "C", true, 0, "")

	pdf.SetFont("Arial", "", 9)
	for _, row := range impact.Annual {
		pdf.CellFormat(labelWidth, 7, string(row.Metric), "1", 0, "L", false, 0, "")
		for year := 0; year < len(row.Years); year += consoleInterval {
			pdf.CellFormat(colWidth, 7, row.Years[year].StringFixed(1), "1", 0, "R", false, 0, "")
		}
		pdf.CellFormat(colWidth, 7, row.Total.StringFixed(1), "1", 1, "R", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render PDF: %w", err)
	}
	return buf.Bytes(), nil
}
