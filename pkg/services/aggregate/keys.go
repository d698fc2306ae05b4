package aggregate

import (
	"cmp"
	"fmt"
	"time"
)

// Whole is the single key of an ungrouped, whole-dataset aggregation.
type Whole struct{}

func WholeKey[R any](R) Whole {
	return Whole{}
}

// DayOf truncates t to its calendar day.
func DayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ISOWeek identifies an ISO 8601 week.
type ISOWeek struct {
	Year int
	Week int
}

func WeekOf(t time.Time) ISOWeek {
	year, week := t.ISOWeek()
	return ISOWeek{Year: year, Week: week}
}

func (w ISOWeek) Compare(o ISOWeek) int {
	if c := cmp.Compare(w.Year, o.Year); c != 0 {
		return c
	}
	return cmp.Compare(w.Week, o.Week)
}

func (w ISOWeek) String() string {
	return fmt.Sprintf("%d-W%02d", w.Year, w.Week)
}

type YearMonth struct {
	Year  int
	Month time.Month
}

func MonthOf(t time.Time) YearMonth {
	return YearMonth{Year: t.Year(), Month: t.Month()}
}

func (m YearMonth) Compare(o YearMonth) int {
	if c := cmp.Compare(m.Year, o.Year); c != 0 {
		return c
	}
	return cmp.Compare(m.Month, o.Month)
}

func (m YearMonth) String() string {
	return fmt.Sprintf("%d-%02d", m.Year, int(m.Month))
}
