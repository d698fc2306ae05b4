package aggregate

import (
	"time"

	"github.com/de-tools/data-reports/pkg/models/domain"
)

// Filter returns the records matching pred in input order.
func Filter[R any](records []R, pred func(R) bool) []R {
	var out []R
	for _, r := range records {
		if pred(r) {
			out = append(out, r)
		}
	}
	return out
}

// At adapts a time predicate to records carrying a timestamp.
func At[R any](at func(R) time.Time, pred func(time.Time) bool) func(R) bool {
	return func(r R) bool {
		return pred(at(r))
	}
}

// InPeriod matches timestamps on the calendar days of p. A period whose start is after its end matches nothing.
func InPeriod(p domain.TimePeriod) func(time.Time) bool {
	return p.Contains
}

// InMonth matches timestamps in the given month (1-12) of any year.
func InMonth(month int) (func(time.Time) bool, error) {
	if month < 1 || month > 12 {
		return nil, &MonthError{Month: month}
	}
	return func(t time.Time) bool {
		return int(t.Month()) == month
	}, nil
}
