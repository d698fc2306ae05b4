// Package reservation builds the reservation reports: record cards, tables,
// filtered listings and confirmation aggregates.
package reservation

import (
	"fmt"
	"strconv"

	"github.com/de-tools/data-reports/pkg/format"
	"github.com/de-tools/data-reports/pkg/models/domain"
	"github.com/de-tools/data-reports/pkg/services/aggregate"
	"github.com/shopspring/decimal"
)

const DefaultLongThreshold = 3

const (
	titleConfirmed = "Confirmed Reservations"
	titleLong      = "Long Reservations (≥ %d h)"
	titleStatus    = "Reservation Confirmation Status"
	titleSummary   = "Confirmation Summary"
	titleRevenue   = "Total Revenue from Confirmed Reservations"
)

var tableColumns = []format.Column{
	{Title: "ID", Width: 5, Align: format.AlignRight},
	{Title: "Name", Width: 20},
	{Title: "Date", Width: 10},
	{Title: "Time", Width: 5},
	{Title: "Hours", Width: 5, Align: format.AlignRight},
	{Title: "Price", Width: 10, Align: format.AlignRight},
	{Title: "Total", Width: 10, Align: format.AlignRight},
	{Title: "Status", Width: 13},
	{Title: "Resource", Width: 16},
}

// Builder renders reservation reports with one locale and long-reservation threshold.
type Builder struct {
	locale    format.Locale
	threshold int
}

func NewBuilder(locale format.Locale, threshold int) *Builder {
	if threshold <= 0 {
		threshold = DefaultLongThreshold
	}
	return &Builder{locale: locale, threshold: threshold}
}

// Details renders one card per reservation, with the paid flag as Yes/No.
func (b *Builder) Details(reservations []domain.Reservation) *domain.Report {
	report := &domain.Report{}
	for _, r := range reservations {
		report.Sections = append(report.Sections, domain.ReportSection{
			Lines: []string{
				fmt.Sprintf("Reservation number: %d", r.ID),
				fmt.Sprintf("Booker: %s", r.Name),
				fmt.Sprintf("Date: %s", b.locale.Date(r.Date)),
				fmt.Sprintf("Start time: %s", b.locale.NarrativeTime(r.Time)),
				fmt.Sprintf("Number of hours: %d", r.Duration),
				fmt.Sprintf("Hourly price: %s", b.locale.Money(r.Price)),
				fmt.Sprintf("Total price: %s", b.locale.Money(r.TotalPrice())),
				fmt.Sprintf("Paid: %s", format.YesNoStyle.Label(r.Confirmed)),
				fmt.Sprintf("Location: %s", r.Resource),
				fmt.Sprintf("Phone: %s", r.Phone),
				fmt.Sprintf("Email: %s", r.Email),
			},
		})
	}
	return report
}

// Table renders every reservation as one fixed-width row.
func (b *Builder) Table(reservations []domain.Reservation) *domain.Report {
	lines := []string{
		format.Header(tableColumns),
		format.Rule(format.Width(tableColumns)),
	}
	for _, r := range reservations {
		lines = append(lines, format.Row(tableColumns, []string{
			strconv.Itoa(r.ID),
			r.Name,
			b.locale.Date(r.Date),
			b.locale.TableTime(r.Time),
			strconv.Itoa(r.Duration),
			b.locale.Money(r.Price),
			b.locale.Money(r.TotalPrice()),
			format.ConfirmedStyle.Label(r.Confirmed),
			r.Resource,
		}))
	}
	return &domain.Report{Sections: []domain.ReportSection{{Lines: lines}}}
}

func (b *Builder) Confirmed(reservations []domain.Reservation) *domain.Report {
	return single(b.confirmedSection(reservations, titleConfirmed))
}

func (b *Builder) Long(reservations []domain.Reservation) *domain.Report {
	return single(b.longSection(reservations, fmt.Sprintf(titleLong, b.threshold)))
}

func (b *Builder) Statuses(reservations []domain.Reservation) *domain.Report {
	return single(b.statusSection(reservations, titleStatus))
}

func (b *Builder) Summary(reservations []domain.Reservation) *domain.Report {
	return single(b.summarySection(reservations, titleSummary))
}

func (b *Builder) Revenue(reservations []domain.Reservation) *domain.Report {
	return single(b.revenueSection(reservations, titleRevenue))
}

// Overview renders the five listing and aggregate sections, numbered.
func (b *Builder) Overview(reservations []domain.Reservation) *domain.Report {
	return &domain.Report{
		Sections: []domain.ReportSection{
			b.confirmedSection(reservations, "1) "+titleConfirmed),
			b.longSection(reservations, "2) "+fmt.Sprintf(titleLong, b.threshold)),
			b.statusSection(reservations, "3) "+titleStatus),
			b.summarySection(reservations, "4) "+titleSummary),
			b.revenueSection(reservations, "5) "+titleRevenue),
		},
	}
}

func (b *Builder) confirmedSection(reservations []domain.Reservation, title string) domain.ReportSection {
	section := domain.ReportSection{Title: title, Lines: []string{}}
	for _, r := range aggregate.Filter(reservations, isConfirmed) {
		section.Lines = append(section.Lines, fmt.Sprintf("- %s, %s, %s at %s",
			r.Name, r.Resource, b.locale.Date(r.Date), b.locale.NarrativeTime(r.Time)))
	}
	return section
}

func (b *Builder) longSection(reservations []domain.Reservation, title string) domain.ReportSection {
	section := domain.ReportSection{Title: title, Lines: []string{}}
	long := aggregate.Filter(reservations, func(r domain.Reservation) bool { return r.IsLong(b.threshold) })
	for _, r := range long {
		section.Lines = append(section.Lines, fmt.Sprintf("- %s, %s at %s, duration %d h, %s",
			r.Name, b.locale.Date(r.Date), b.locale.NarrativeTime(r.Time), r.Duration, r.Resource))
	}
	return section
}

func (b *Builder) statusSection(reservations []domain.Reservation, title string) domain.ReportSection {
	section := domain.ReportSection{Title: title, Lines: []string{}}
	for _, r := range reservations {
		section.Lines = append(section.Lines, fmt.Sprintf("%s → %s", r.Name, format.ConfirmedStyle.Label(r.Confirmed)))
	}
	return section
}

func (b *Builder) summarySection(reservations []domain.Reservation, title string) domain.ReportSection {
	confirmed, notConfirmed := ConfirmationCounts(reservations)
	return domain.ReportSection{
		Title: title,
		Lines: []string{
			fmt.Sprintf("- Confirmed reservations: %d pcs", confirmed),
			fmt.Sprintf("- Not confirmed reservations: %d pcs", notConfirmed),
		},
	}
}

func (b *Builder) revenueSection(reservations []domain.Reservation, title string) domain.ReportSection {
	return domain.ReportSection{
		Title: title,
		Lines: []string{
			fmt.Sprintf("Total revenue from confirmed reservations: %s", b.locale.Money(Revenue(reservations))),
		},
	}
}

// ConfirmationCounts groups reservations by their confirmed flag and counts each group.
func ConfirmationCounts(reservations []domain.Reservation) (confirmed, notConfirmed int) {
	groups := aggregate.GroupBy(reservations, isConfirmed, aggregate.CountOnly[domain.Reservation])
	if t, ok := groups.Get(true); ok {
		confirmed = t.Count
	}
	if t, ok := groups.Get(false); ok {
		notConfirmed = t.Count
	}
	return confirmed, notConfirmed
}

// Revenue sums duration × price over confirmed reservations.
func Revenue(reservations []domain.Reservation) decimal.Decimal {
	groups := aggregate.GroupBy(
		aggregate.Filter(reservations, isConfirmed),
		aggregate.WholeKey[domain.Reservation],
		func(r domain.Reservation) []decimal.Decimal { return []decimal.Decimal{r.TotalPrice()} },
	)
	return groups.Total().Sum(0)
}

func isConfirmed(r domain.Reservation) bool {
	return r.Confirmed
}

func single(section domain.ReportSection) *domain.Report {
	return &domain.Report{Sections: []domain.ReportSection{section}}
}
