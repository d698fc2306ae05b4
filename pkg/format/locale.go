// Package format renders numbers, dates, times and flags the way the reports print them.
package format

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Rule widths used by the report styles.
const (
	RuleNarrow = 68
	RuleWide   = 83
	RulePeriod = 53
)

// Locale describes the display conventions of a report.
type Locale struct {
	DecimalSeparator    string
	Places              int32
	DateLayout          string
	NarrativeTimeLayout string
	TableTimeLayout     string
	Currency            string
	Weekdays            [7]string // Monday first
}

var (
	finnishWeekdays = [7]string{"maanantai", "tiistai", "keskiviikko", "torstai", "perjantai", "lauantai", "sunnuntai"}
	englishWeekdays = [7]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}
)

// Default renders two fraction digits with a decimal comma, dd.mm.yyyy dates and euro amounts.
var Default = Locale{
	DecimalSeparator:    ",",
	Places:              2,
	DateLayout:          "02.01.2006",
	NarrativeTimeLayout: "15.04",
	TableTimeLayout:     "15:04",
	Currency:            "€",
	Weekdays:            finnishWeekdays,
}

// NewLocale returns Default with the given currency and weekday language ("fi" or "en").
func NewLocale(currency, weekdays string) (Locale, error) {
	l := Default
	if currency != "" {
		l.Currency = currency
	}
	switch strings.ToLower(weekdays) {
	case "", "fi":
		l.Weekdays = finnishWeekdays
	case "en":
		l.Weekdays = englishWeekdays
	default:
		return Locale{}, fmt.Errorf("unsupported weekday locale %q", weekdays)
	}
	return l, nil
}

func (l Locale) Decimal(d decimal.Decimal) string {
	return strings.Replace(d.StringFixed(l.Places), ".", l.DecimalSeparator, 1)
}

func (l Locale) Money(d decimal.Decimal) string {
	return l.Decimal(d) + " " + l.Currency
}

func (l Locale) Date(t time.Time) string {
	return t.Format(l.DateLayout)
}

// NarrativeTime is the time of day used inside sentences ("at 09.00").
func (l Locale) NarrativeTime(t time.Time) string {
	return t.Format(l.NarrativeTimeLayout)
}

// TableTime is the time of day used in table columns.
func (l Locale) TableTime(t time.Time) string {
	return t.Format(l.TableTimeLayout)
}

func (l Locale) Weekday(t time.Time) string {
	// time.Weekday starts on Sunday
	return l.Weekdays[(int(t.Weekday())+6)%7]
}

func (l Locale) MonthName(m time.Month) string {
	return m.String()
}

// Rule returns a separator line of n dashes.
func Rule(n int) string {
	return strings.Repeat("-", n)
}
