package energy

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/de-tools/data-reports/pkg/format"
	"github.com/de-tools/data-reports/pkg/models/domain"
	"github.com/de-tools/data-reports/pkg/services/aggregate"
	"github.com/shopspring/decimal"
)

const (
	consumptionLabel = "Consumption [kWh]"
	productionLabel  = "Production [kWh]"
	totalsTitle      = "All weeks combined totals (kWh)"
)

// Week renders every reading of one week as a row of per-phase kWh values.
// When week is 0 the ISO week of the first reading is used.
func (b *Builder) Week(readings []domain.PhaseReading, week int) *domain.Report {
	if week == 0 && len(readings) > 0 {
		week = aggregate.WeekOf(readings[0].Time).Week
	}

	title := "Electricity consumption and production"
	if week > 0 {
		title = fmt.Sprintf("Week %d electricity consumption and production", week)
	}

	n := maxPhases(readings)
	width := phaseWidth(n, consumptionLabel)
	phases := phaseColumns(n, width)
	date := format.Column{Title: "Date", Width: 12}

	header := []format.Column{
		date,
		{Title: consumptionLabel, Width: blockWidth(phases)},
		{Title: productionLabel, Width: blockWidth(phases)},
	}
	columns := append(append([]format.Column{date}, phases...), phases...)

	units := []string{"(dd.mm.yyyy)"}
	for range 2 {
		for _, c := range phases {
			units = append(units, c.Title)
		}
	}

	lines := []string{
		format.Rule(format.RuleNarrow),
		format.Header(header),
		format.Row(columns, units),
		format.Rule(format.RuleNarrow),
	}
	measures := phaseMeasures(n)
	for _, r := range readings {
		values := []string{b.locale.Date(r.Time)}
		for _, v := range measures(r) {
			values = append(values, b.kwh(v))
		}
		lines = append(lines, format.Row(columns, values))
	}

	return &domain.Report{
		Title:    title,
		Sections: []domain.ReportSection{{Lines: lines}},
	}
}

// WeeklySummary groups readings by ISO week and then by calendar day, summing each phase,
// and closes with the totals of all weeks combined.
func (b *Builder) WeeklySummary(readings []domain.PhaseReading) *domain.Report {
	n := maxPhases(readings)
	measures := phaseMeasures(n)

	byWeek := make(map[aggregate.ISOWeek][]domain.PhaseReading)
	for _, r := range readings {
		w := aggregate.WeekOf(r.Time)
		byWeek[w] = append(byWeek[w], r)
	}
	weeks := make([]aggregate.ISOWeek, 0, len(byWeek))
	for w := range byWeek {
		weeks = append(weeks, w)
	}
	slices.SortFunc(weeks, aggregate.ISOWeek.Compare)

	report := &domain.Report{}
	grand := aggregate.NewGroups[aggregate.Whole]()
	for _, w := range weeks {
		days := aggregate.GroupBy(byWeek[w], func(r domain.PhaseReading) time.Time {
			return aggregate.DayOf(r.Time)
		}, measures)
		report.Sections = append(report.Sections, b.weekSection(w, days, n))

		total := days.Total()
		grand.Add(aggregate.Whole{}, total.Sums...)
	}

	report.Sections = append(report.Sections, b.grandTotalsSection(grand.Total(), n))
	return report
}

func (b *Builder) weekSection(week aggregate.ISOWeek, days *aggregate.Groups[time.Time], n int) domain.ReportSection {
	width := phaseWidth(n, consumptionLabel)
	phases := phaseColumns(n, width)
	day := format.Column{Title: "Day", Width: 12}
	date := format.Column{Title: "Date", Width: 12}
	gap := format.Column{Width: 3}

	header := []format.Column{
		day,
		date,
		{Title: consumptionLabel, Width: blockWidth(phases)},
		gap,
		{Title: productionLabel, Width: blockWidth(phases)},
	}
	columns := slices.Concat([]format.Column{day, date}, phases, []format.Column{gap}, phases)

	units := []string{"", ""}
	for _, c := range phases {
		units = append(units, c.Title)
	}
	units = append(units, "")
	for _, c := range phases {
		units = append(units, c.Title)
	}

	section := domain.ReportSection{
		Title: fmt.Sprintf("Week %d electricity consumption and production (kWh, by phase)", week.Week),
		Lines: []string{
			format.Header(header),
			format.Row(columns, units),
			format.Rule(format.RuleWide),
		},
	}

	for _, d := range days.Sorted(func(a, b time.Time) int { return a.Compare(b) }) {
		totals, _ := days.Get(d)
		values := []string{b.locale.Weekday(d), b.locale.Date(d)}
		for i := range n {
			values = append(values, b.kwh(totals.Sum(i)))
		}
		values = append(values, "")
		for i := range n {
			values = append(values, b.kwh(totals.Sum(n+i)))
		}
		section.Lines = append(section.Lines, format.Row(columns, values))
	}
	return section
}

func (b *Builder) grandTotalsSection(total aggregate.Totals, n int) domain.ReportSection {
	names := make([]string, n)
	consumption := make([]string, n)
	production := make([]string, n)
	for i := range n {
		names[i] = phaseName(i)
		consumption[i] = b.kwh(total.Sum(i))
		production[i] = b.kwh(total.Sum(n + i))
	}
	label := strings.Join(names, " ")

	return domain.ReportSection{
		Title: totalsTitle,
		Lines: []string{
			format.Rule(format.RuleWide),
			fmt.Sprintf("Consumption total (%s): %s", label, strings.Join(consumption, "  ")),
			fmt.Sprintf("Production total (%s):  %s", label, strings.Join(production, "  ")),
		},
	}
}

// dailyConsumption sums every phase of each calendar day, in day order, in kWh.
func dailyConsumption(readings []domain.PhaseReading) []decimal.Decimal {
	days := aggregate.GroupBy(readings, func(r domain.PhaseReading) time.Time {
		return aggregate.DayOf(r.Time)
	}, func(r domain.PhaseReading) []decimal.Decimal {
		return []decimal.Decimal{decimal.Sum(decimal.Zero, r.Consumption...)}
	})

	var series []decimal.Decimal
	for _, d := range days.Sorted(func(a, b time.Time) int { return a.Compare(b) }) {
		totals, _ := days.Get(d)
		series = append(series, ToKWh(totals.Sum(0)))
	}
	return series
}
