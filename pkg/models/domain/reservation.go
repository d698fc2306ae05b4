package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Reservation is one booking row of a reservations file.
type Reservation struct {
	ID        int
	Name      string
	Email     string
	Phone     string
	Date      time.Time
	Time      time.Time // time of day only
	Duration  int       // hours
	Price     decimal.Decimal
	Confirmed bool
	Resource  string
	CreatedAt time.Time // zero when the source row left it empty
}

// TotalPrice is the hourly price multiplied by the booked hours.
func (r Reservation) TotalPrice() decimal.Decimal {
	return r.Price.Mul(decimal.NewFromInt(int64(r.Duration)))
}

func (r Reservation) IsLong(threshold int) bool {
	return r.Duration >= threshold
}

// StartsAt combines the reservation date and time of day.
func (r Reservation) StartsAt() time.Time {
	return time.Date(r.Date.Year(), r.Date.Month(), r.Date.Day(),
		r.Time.Hour(), r.Time.Minute(), r.Time.Second(), 0, time.UTC)
}
