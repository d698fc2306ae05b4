// Package energy builds the electricity meter reports: per-reading phase tables,
// multi-week daily summaries and period totals with temperature.
package energy

import (
	"unicode/utf8"

	"github.com/de-tools/data-reports/pkg/format"
	"github.com/de-tools/data-reports/pkg/models/domain"
	"github.com/shopspring/decimal"
)

var whPerKWh = decimal.NewFromInt(1000)

// Builder renders meter reports with one locale.
type Builder struct {
	locale format.Locale
}

func NewBuilder(locale format.Locale) *Builder {
	return &Builder{locale: locale}
}

// ToKWh converts a Wh reading to kWh.
func ToKWh(wh decimal.Decimal) decimal.Decimal {
	return wh.Div(whPerKWh)
}

func (b *Builder) kwh(wh decimal.Decimal) string {
	return b.locale.Decimal(ToKWh(wh))
}

// maxPhases is the widest phase count among the readings.
func maxPhases(readings []domain.PhaseReading) int {
	n := 0
	for _, r := range readings {
		n = max(n, r.Phases())
	}
	return n
}

// phaseMeasures lays out consumption v1..vn followed by production v1..vn, zero-filled up to n.
func phaseMeasures(n int) func(domain.PhaseReading) []decimal.Decimal {
	return func(r domain.PhaseReading) []decimal.Decimal {
		values := make([]decimal.Decimal, 2*n)
		for i := range values {
			values[i] = decimal.Zero
		}
		copy(values, r.Consumption)
		copy(values[n:], r.Production)
		return values
	}
}

// phaseWidth keeps a block of n phase columns at least as wide as its label.
func phaseWidth(n int, label string) int {
	w := 8
	if n <= 0 {
		return w
	}
	// n*w + (n-1) >= len(label)
	return max(w, utf8.RuneCountInString(label)/n)
}

func phaseColumns(n, width int) []format.Column {
	columns := make([]format.Column, n)
	for i := range columns {
		columns[i] = format.Column{Title: phaseName(i), Width: width, Align: format.AlignRight}
	}
	return columns
}

func phaseName(i int) string {
	return "v" + string(rune('1'+i))
}

func blockWidth(columns []format.Column) int {
	return format.Width(columns)
}
