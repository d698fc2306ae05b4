package domain

import "time"

// Report represents a complete, formatted report
type Report struct {
	Title    string
	Sections []ReportSection
}

// ReportSection represents a logical section in the report
type ReportSection struct {
	Title string
	Lines []string
}

// TimePeriod represents an inclusive range of calendar days
type TimePeriod struct {
	Start time.Time
	End   time.Time
}

func NewTimePeriod(start, end time.Time) TimePeriod {
	return TimePeriod{Start: truncateDay(start), End: truncateDay(end)}
}

// Duration returns the number of days in the period, 0 when Start is after End.
func (p TimePeriod) Duration() int {
	start, end := truncateDay(p.Start), truncateDay(p.End)
	if start.After(end) {
		return 0
	}
	return int(end.Sub(start).Hours()/24) + 1
}

// Contains reports whether t falls on a calendar day inside the period.
func (p TimePeriod) Contains(t time.Time) bool {
	day := truncateDay(t)
	return !day.Before(truncateDay(p.Start)) && !day.After(truncateDay(p.End))
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
