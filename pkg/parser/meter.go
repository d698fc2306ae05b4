package parser

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/de-tools/data-reports/pkg/models/domain"
	"github.com/shopspring/decimal"
)

const (
	maxPhases     = 3
	dailyColumns  = 4
	csvDelimiter  = ';'
	byteOrderMark = "\ufeff"
)

// ReadPhaseReadings reads a semicolon separated export with a header row:
// timestamp, consumption v1..vN, production v1..vN (Wh, decimal point). N is taken from the header.
func ReadPhaseReadings(r io.Reader) ([]domain.PhaseReading, error) {
	reader := newCSVReader(r)

	header, err := readHeader(reader)
	if err != nil || header == nil {
		return nil, err
	}

	columns := len(header)
	phases := (columns - 1) / 2
	if phases < 1 || phases > maxPhases || (columns-1)%2 != 0 {
		return nil, fmt.Errorf("header: %w", &SchemaError{Expected: 1 + 2*maxPhases, Got: columns})
	}

	var readings []domain.PhaseReading
	err = eachRow(reader, columns, func(row []string) error {
		ts, err := ParseTimestamp("timestamp", row[0])
		if err != nil {
			return err
		}
		consumption, err := parseValues("consumption", row[1:1+phases], Point)
		if err != nil {
			return err
		}
		production, err := parseValues("production", row[1+phases:], Point)
		if err != nil {
			return err
		}
		readings = append(readings, domain.PhaseReading{
			Time:        ts,
			Consumption: consumption,
			Production:  production,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return readings, nil
}

// ReadDailyReadings reads the net export with temperature:
// Time; Consumption (net) kWh; Production (net) kWh; Daily average temperature (decimal comma).
func ReadDailyReadings(r io.Reader) ([]domain.DailyReading, error) {
	reader := newCSVReader(r)

	header, err := readHeader(reader)
	if err != nil || header == nil {
		return nil, err
	}
	if len(header) != dailyColumns {
		return nil, fmt.Errorf("header: %w", &SchemaError{Expected: dailyColumns, Got: len(header)})
	}

	var readings []domain.DailyReading
	err = eachRow(reader, dailyColumns, func(row []string) error {
		var (
			reading domain.DailyReading
			err     error
		)
		if reading.Time, err = ParseTimestamp("time", row[0]); err != nil {
			return err
		}
		if reading.Consumption, err = ParseDecimal("consumption", row[1], Comma); err != nil {
			return err
		}
		if reading.Production, err = ParseDecimal("production", row[2], Comma); err != nil {
			return err
		}
		if reading.Temperature, err = ParseDecimal("temperature", row[3], Comma); err != nil {
			return err
		}
		readings = append(readings, reading)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return readings, nil
}

func LoadPhaseReadings(path string) ([]domain.PhaseReading, error) {
	return load(path, ReadPhaseReadings)
}

func LoadDailyReadings(path string) ([]domain.DailyReading, error) {
	return load(path, ReadDailyReadings)
}

func newCSVReader(r io.Reader) *csv.Reader {
	reader := csv.NewReader(r)
	reader.Comma = csvDelimiter
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1
	return reader
}

// readHeader returns nil without error for empty input.
func readHeader(reader *csv.Reader) ([]string, error) {
	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}
	header[0] = strings.TrimPrefix(header[0], byteOrderMark)
	return header, nil
}

func eachRow(reader *csv.Reader, columns int, fn func(row []string) error) error {
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read CSV row: %w", err)
		}

		line, _ := reader.FieldPos(0)
		if len(row) != columns {
			return fmt.Errorf("line %d: %w", line, &SchemaError{Expected: columns, Got: len(row)})
		}
		if err := fn(row); err != nil {
			return fmt.Errorf("line %d: %w", line, err)
		}
	}
}

func parseValues(kind string, raw []string, sep DecimalSeparator) ([]decimal.Decimal, error) {
	values := make([]decimal.Decimal, 0, len(raw))
	for i, s := range raw {
		v, err := ParseDecimal(fmt.Sprintf("%s v%d", kind, i+1), s, sep)
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, nil
}

func load[T any](path string, read func(io.Reader) ([]T, error)) ([]T, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	records, err := read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return records, nil
}
