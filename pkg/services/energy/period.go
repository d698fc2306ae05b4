package energy

import (
	"fmt"
	"slices"
	"time"

	"github.com/de-tools/data-reports/pkg/format"
	"github.com/de-tools/data-reports/pkg/models/domain"
	"github.com/de-tools/data-reports/pkg/services/aggregate"
	"github.com/shopspring/decimal"
)

const noReadings = "- No readings for the selected period"

const (
	measureConsumption = iota
	measureProduction
	measureTemperature
)

func dailyMeasures(r domain.DailyReading) []decimal.Decimal {
	return []decimal.Decimal{r.Consumption, r.Production, r.Temperature}
}

func readingTime(r domain.DailyReading) time.Time {
	return r.Time
}

// SelectPeriod keeps the readings on the calendar days of p. A reversed period selects nothing.
func SelectPeriod(readings []domain.DailyReading, p domain.TimePeriod) []domain.DailyReading {
	return aggregate.Filter(readings, aggregate.At(readingTime, aggregate.InPeriod(p)))
}

// SelectMonth keeps the readings of one month (1-12), whatever their year.
func SelectMonth(readings []domain.DailyReading, month int) ([]domain.DailyReading, error) {
	inMonth, err := aggregate.InMonth(month)
	if err != nil {
		return nil, err
	}
	return aggregate.Filter(readings, aggregate.At(readingTime, inMonth)), nil
}

// Period totals the readings on the calendar days of p.
func (b *Builder) Period(readings []domain.DailyReading, p domain.TimePeriod) *domain.Report {
	selected := SelectPeriod(readings, p)
	title := fmt.Sprintf("Report for the period %s–%s", b.locale.Date(p.Start), b.locale.Date(p.End))
	return b.totals(title, selected)
}

func (b *Builder) Month(readings []domain.DailyReading, month int) (*domain.Report, error) {
	selected, err := SelectMonth(readings, month)
	if err != nil {
		return nil, err
	}
	title := fmt.Sprintf("Report for %s", b.locale.MonthName(time.Month(month)))
	return b.totals(title, selected), nil
}

// Year totals the whole dataset.
func (b *Builder) Year(readings []domain.DailyReading) *domain.Report {
	years := aggregate.GroupBy(readings, func(r domain.DailyReading) int { return r.Time.Year() },
		aggregate.CountOnly[domain.DailyReading]).Sorted(func(a, b int) int { return a - b })

	title := "Report for all readings"
	switch len(years) {
	case 0:
	case 1:
		title = fmt.Sprintf("Report for the year %d", years[0])
	default:
		title = fmt.Sprintf("Report for the years %d–%d", years[0], years[len(years)-1])
	}
	return b.totals(title, readings)
}

func (b *Builder) totals(title string, readings []domain.DailyReading) *domain.Report {
	lines := []string{format.Rule(format.RulePeriod), title}

	total := aggregate.GroupBy(readings, aggregate.WholeKey[domain.DailyReading], dailyMeasures).Total()
	if total.Count == 0 {
		lines = append(lines, noReadings)
		return &domain.Report{Sections: []domain.ReportSection{{Lines: lines}}}
	}

	temperature, _ := total.Average(measureTemperature)
	lines = append(lines,
		fmt.Sprintf("- Total consumption: %s kWh", b.locale.Decimal(total.Sum(measureConsumption))),
		fmt.Sprintf("- Total production: %s kWh", b.locale.Decimal(total.Sum(measureProduction))),
		fmt.Sprintf("- Average temperature: %s °C", b.locale.Decimal(temperature)),
	)
	return &domain.Report{Sections: []domain.ReportSection{{Lines: lines}}}
}

// SortDaily orders readings by time; the input is left untouched.
func SortDaily(readings []domain.DailyReading) []domain.DailyReading {
	sorted := slices.Clone(readings)
	slices.SortStableFunc(sorted, func(a, b domain.DailyReading) int { return a.Time.Compare(b.Time) })
	return sorted
}
