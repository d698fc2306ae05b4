package energy

import (
	"strings"

	"github.com/de-tools/data-reports/pkg/models/domain"
	"github.com/guptarohit/asciigraph"
	"github.com/shopspring/decimal"
)

const (
	chartHeight = 10
	chartWidth  = 60
)

// ChartSection plots one or more daily series. It returns false when there is nothing to plot.
func ChartSection(caption string, series ...[]decimal.Decimal) (domain.ReportSection, bool) {
	var data [][]float64
	for _, s := range series {
		if len(s) == 0 {
			continue
		}
		values := make([]float64, len(s))
		for i, v := range s {
			values[i] = v.InexactFloat64()
		}
		data = append(data, values)
	}
	if len(data) == 0 {
		return domain.ReportSection{}, false
	}

	graph := asciigraph.PlotMany(data,
		asciigraph.Height(chartHeight),
		asciigraph.Width(chartWidth),
		asciigraph.Precision(2),
		asciigraph.Caption(caption),
	)
	return domain.ReportSection{Lines: strings.Split(graph, "\n")}, true
}

// DailyChart plots consumption and production of daily readings in time order.
func DailyChart(readings []domain.DailyReading) (domain.ReportSection, bool) {
	var consumption, production []decimal.Decimal
	for _, r := range SortDaily(readings) {
		consumption = append(consumption, r.Consumption)
		production = append(production, r.Production)
	}
	return ChartSection("Daily consumption and production (kWh)", consumption, production)
}

// PhaseChart plots the daily consumption of all phases combined.
func PhaseChart(readings []domain.PhaseReading) (domain.ReportSection, bool) {
	return ChartSection("Daily consumption (kWh)", dailyConsumption(readings))
}

// WithChart appends the chart section when there is one.
func WithChart(report *domain.Report, section domain.ReportSection, ok bool) *domain.Report {
	if ok {
		report.Sections = append(report.Sections, section)
	}
	return report
}
