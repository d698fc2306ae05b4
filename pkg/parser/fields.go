package parser

import (
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DecimalSeparator selects how numeric input marks the fraction.
type DecimalSeparator rune

const (
	Point DecimalSeparator = '.'
	Comma DecimalSeparator = ','
)

const (
	dateLayout         = "2006-01-02"
	timeLayout         = "15:04"
	timeSecondsLayout  = "15:04:05"
	timestampLayout    = "2006-01-02 15:04:05"
	isoTimestampLayout = "2006-01-02T15:04:05"
	displayDateLayout  = "02.01.2006"
	displayTimeLayout  = "15.04"
)

// ParseString trims surrounding whitespace. An empty value is rejected only when required.
func ParseString(field, raw string, required bool) (string, error) {
	s := strings.TrimSpace(raw)
	if s == "" && required {
		return "", &FormatError{Field: field, Value: raw, Err: errRequired}
	}
	return s, nil
}

func ParseInt(field, raw string) (int, error) {
	s := strings.TrimSpace(raw)
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, &FormatError{Field: field, Value: raw, Err: err}
	}
	return n, nil
}

// ParseDecimal parses a number written with the given decimal separator.
func ParseDecimal(field, raw string, sep DecimalSeparator) (decimal.Decimal, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return decimal.Zero, &FormatError{Field: field, Value: raw, Err: errRequired}
	}
	if sep == Comma {
		s = strings.ReplaceAll(s, ",", ".")
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, &FormatError{Field: field, Value: raw, Err: err}
	}
	return d, nil
}

// ParseDate accepts YYYY-MM-DD.
func ParseDate(field, raw string) (time.Time, error) {
	return parseLayout(field, raw, dateLayout)
}

// ParseTime accepts HH:MM or HH:MM:SS, chosen by the number of colons.
func ParseTime(field, raw string) (time.Time, error) {
	s := strings.TrimSpace(raw)
	layout := timeLayout
	if strings.Count(s, ":") == 2 {
		layout = timeSecondsLayout
	}
	return parseLayout(field, s, layout)
}

// ParseTimestamp accepts "YYYY-MM-DD HH:MM:SS" or an ISO-8601 timestamp with a T separator.
func ParseTimestamp(field, raw string) (time.Time, error) {
	s := strings.TrimSpace(raw)
	if !strings.Contains(s, "T") {
		return parseLayout(field, s, timestampLayout)
	}
	if t, err := time.Parse(isoTimestampLayout, s); err == nil {
		return t, nil
	}
	return parseLayout(field, s, time.RFC3339)
}

// ParseBool maps exactly "True" to true and anything else to false.
// TODO: reject values other than True/False once existing exports stop writing lowercase flags.
func ParseBool(raw string) bool {
	return strings.TrimSpace(raw) == "True"
}

// ParseDisplayDate reads a date as rendered in reports (dd.mm.yyyy). YYYY-MM-DD is accepted too.
func ParseDisplayDate(field, raw string) (time.Time, error) {
	s := strings.TrimSpace(raw)
	if strings.Contains(s, "-") {
		return parseLayout(field, s, dateLayout)
	}
	return parseLayout(field, s, displayDateLayout)
}

// ParseDisplayTime reads a narrative time (HH.MM).
func ParseDisplayTime(field, raw string) (time.Time, error) {
	return parseLayout(field, raw, displayTimeLayout)
}

// ParseDisplayDecimal reads a number as rendered in reports (decimal comma).
func ParseDisplayDecimal(field, raw string) (decimal.Decimal, error) {
	return ParseDecimal(field, raw, Comma)
}

func parseLayout(field, raw, layout string) (time.Time, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return time.Time{}, &FormatError{Field: field, Value: raw, Err: errRequired}
	}
	t, err := time.Parse(layout, s)
	if err != nil {
		return time.Time{}, &FormatError{Field: field, Value: raw, Err: err}
	}
	return t, nil
}
