package reservation

import (
	"strings"
	"testing"
	"time"

	"github.com/de-tools/data-reports/pkg/format"
	"github.com/de-tools/data-reports/pkg/models/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reservation(id int, name string, duration int, price string, confirmed bool) domain.Reservation {
	return domain.Reservation{
		ID:        id,
		Name:      name,
		Email:     strings.ToLower(strings.Fields(name)[0]) + "@whitevalley.org",
		Phone:     "0509876543",
		Date:      time.Date(2025, 11, 12, 0, 0, 0, 0, time.UTC),
		Time:      time.Date(0, 1, 1, 9, 0, 0, 0, time.UTC),
		Duration:  duration,
		Price:     decimal.RequireFromString(price),
		Confirmed: confirmed,
		Resource:  "Forest Area 1",
	}
}

func fixture() []domain.Reservation {
	return []domain.Reservation{
		reservation(201, "Moomin Valley", 2, "10.00", true),
		reservation(202, "Snufkin", 4, "12.00", false),
		reservation(203, "Little My", 5, "3.00", true),
		reservation(204, "Sniff", 1, "8.00", false),
		reservation(205, "Snork Maiden", 3, "0.00", true),
	}
}

func TestRevenue_SumsConfirmedOnly(t *testing.T) {
	// Given
	b := NewBuilder(format.Default, DefaultLongThreshold)

	// When
	report := b.Revenue(fixture())

	// Then
	require.Len(t, report.Sections, 1)
	assert.Equal(t, titleRevenue, report.Sections[0].Title)
	assert.Equal(t, []string{"Total revenue from confirmed reservations: 35,00 €"}, report.Sections[0].Lines)
}

func TestConfirmationCounts(t *testing.T) {
	confirmed, notConfirmed := ConfirmationCounts(fixture())

	assert.Equal(t, 3, confirmed)
	assert.Equal(t, 2, notConfirmed)
}

func TestSummary(t *testing.T) {
	report := NewBuilder(format.Default, 0).Summary(fixture())

	assert.Equal(t, []string{
		"- Confirmed reservations: 3 pcs",
		"- Not confirmed reservations: 2 pcs",
	}, report.Sections[0].Lines)
}

func TestSummary_Empty(t *testing.T) {
	report := NewBuilder(format.Default, 0).Summary(nil)

	assert.Equal(t, "- Confirmed reservations: 0 pcs", report.Sections[0].Lines[0])
	assert.Equal(t, "- Not confirmed reservations: 0 pcs", report.Sections[0].Lines[1])
}

func TestDetails_ExampleCard(t *testing.T) {
	// Given
	r := reservation(201, "Moomin Valley", 2, "18.50", true)

	// When
	report := NewBuilder(format.Default, DefaultLongThreshold).Details([]domain.Reservation{r})

	// Then
	require.Len(t, report.Sections, 1)
	lines := report.Sections[0].Lines
	assert.Contains(t, lines, "Reservation number: 201")
	assert.Contains(t, lines, "Date: 12.11.2025")
	assert.Contains(t, lines, "Start time: 09.00")
	assert.Contains(t, lines, "Hourly price: 18,50 €")
	assert.Contains(t, lines, "Total price: 37,00 €")
	assert.Contains(t, lines, "Paid: Yes")
}

func TestConfirmed_ListsOnlyConfirmed(t *testing.T) {
	report := NewBuilder(format.Default, DefaultLongThreshold).Confirmed(fixture())

	assert.Equal(t, []string{
		"- Moomin Valley, Forest Area 1, 12.11.2025 at 09.00",
		"- Little My, Forest Area 1, 12.11.2025 at 09.00",
		"- Snork Maiden, Forest Area 1, 12.11.2025 at 09.00",
	}, report.Sections[0].Lines)
}

func TestLong_ThresholdIsInclusive(t *testing.T) {
	tests := []struct {
		threshold int
		want      []string
	}{
		{threshold: 3, want: []string{"Snufkin", "Little My", "Snork Maiden"}},
		{threshold: 5, want: []string{"Little My"}},
		{threshold: 6, want: nil},
	}

	for _, tt := range tests {
		report := NewBuilder(format.Default, tt.threshold).Long(fixture())

		section := report.Sections[0]
		assert.Contains(t, section.Title, "≥")
		var names []string
		for _, line := range section.Lines {
			names = append(names, strings.TrimPrefix(strings.Split(line, ",")[0], "- "))
		}
		assert.Equal(t, tt.want, names, "threshold %d", tt.threshold)
	}
}

func TestStatuses(t *testing.T) {
	report := NewBuilder(format.Default, 0).Statuses(fixture()[:2])

	assert.Equal(t, []string{
		"Moomin Valley → Confirmed",
		"Snufkin → NOT Confirmed",
	}, report.Sections[0].Lines)
}

func TestTable_UsesColonTimesAndConfirmedWords(t *testing.T) {
	report := NewBuilder(format.Default, 0).Table(fixture()[:2])

	lines := report.Sections[0].Lines
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[0], "   ID Name"))
	assert.Equal(t, format.Width(tableColumns), len(lines[1]))
	assert.Contains(t, lines[2], "09:00")
	assert.Contains(t, lines[2], "Confirmed")
	assert.Contains(t, lines[2], "20,00 €")
	assert.Contains(t, lines[3], "NOT Confirmed")
}

func TestOverview_NumbersSections(t *testing.T) {
	report := NewBuilder(format.Default, DefaultLongThreshold).Overview(fixture())

	require.Len(t, report.Sections, 5)
	for i, section := range report.Sections {
		assert.True(t, strings.HasPrefix(section.Title, string(rune('1'+i))+") "), section.Title)
	}
	assert.Equal(t, "Total revenue from confirmed reservations: 35,00 €", report.Sections[4].Lines[0])
}
