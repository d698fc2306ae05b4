package parser

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/de-tools/data-reports/pkg/models/domain"
)

const (
	ReservationColumns   = 11
	reservationDelimiter = "|"
)

// ReservationHeaders names the columns of a reservations file in order.
var ReservationHeaders = []string{
	"reservationId",
	"name",
	"email",
	"phone",
	"reservationDate",
	"reservationTime",
	"durationHours",
	"price",
	"confirmed",
	"reservedResource",
	"createdAt",
}

// ParseReservation converts one split row into a Reservation.
func ParseReservation(fields []string) (domain.Reservation, error) {
	if len(fields) != ReservationColumns {
		return domain.Reservation{}, &SchemaError{Expected: ReservationColumns, Got: len(fields)}
	}

	var (
		r   domain.Reservation
		err error
	)
	if r.ID, err = ParseInt("reservationId", fields[0]); err != nil {
		return domain.Reservation{}, err
	}
	if r.Name, err = ParseString("name", fields[1], true); err != nil {
		return domain.Reservation{}, err
	}
	r.Email, _ = ParseString("email", fields[2], false)
	r.Phone, _ = ParseString("phone", fields[3], false)
	if r.Date, err = ParseDate("reservationDate", fields[4]); err != nil {
		return domain.Reservation{}, err
	}
	if r.Time, err = ParseTime("reservationTime", fields[5]); err != nil {
		return domain.Reservation{}, err
	}
	if r.Duration, err = ParseInt("durationHours", fields[6]); err != nil {
		return domain.Reservation{}, err
	}
	if r.Price, err = ParseDecimal("price", fields[7], Point); err != nil {
		return domain.Reservation{}, err
	}
	r.Confirmed = ParseBool(fields[8])
	if r.Resource, err = ParseString("reservedResource", fields[9], true); err != nil {
		return domain.Reservation{}, err
	}
	if created := strings.TrimSpace(fields[10]); created != "" {
		if r.CreatedAt, err = ParseTimestamp("createdAt", created); err != nil {
			return domain.Reservation{}, err
		}
	}

	return r, nil
}

// ReadReservations reads pipe-delimited rows, one reservation per line. Blank lines are skipped.
// The first malformed row aborts the read.
func ReadReservations(r io.Reader) ([]domain.Reservation, error) {
	var reservations []domain.Reservation

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}

		reservation, err := ParseReservation(strings.Split(text, reservationDelimiter))
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		reservations = append(reservations, reservation)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read reservations: %w", err)
	}

	return reservations, nil
}

func LoadReservations(path string) ([]domain.Reservation, error) {
	return load(path, ReadReservations)
}
