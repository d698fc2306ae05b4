package report

import (
	"context"

	"github.com/de-tools/data-reports/pkg/format"
	"github.com/de-tools/data-reports/pkg/models/domain"
)

// ReservationSource supplies archived reservations instead of an input file.
type ReservationSource interface {
	List(ctx context.Context) ([]domain.Reservation, error)
}

// Request carries everything a generator may need. Unused fields are ignored.
type Request struct {
	Input     string             // data file, or the weekly manifest for DatasetWeeks
	Period    *domain.TimePeriod // period report
	Month     int                // month report, 1-12
	Week      int                // week report title; 0 derives it from the data
	Threshold int                // long reservations, hours
	Chart     bool
	Locale    format.Locale

	Reservations ReservationSource
}

func (r Request) locale() format.Locale {
	if r.Locale.DateLayout == "" {
		return format.Default
	}
	return r.Locale
}
