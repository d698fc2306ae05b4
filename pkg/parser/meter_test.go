package parser

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const weekCSV = `Time;Consumption v1 Wh;Consumption v2 Wh;Consumption v3 Wh;Production v1 Wh;Production v2 Wh;Production v3 Wh
2025-10-13T00:00:00;100;200;300;0;0;0
2025-10-13T01:00:00;150.5;250;350;10;20;30
`

func TestReadPhaseReadings_ThreePhases(t *testing.T) {
	readings, err := ReadPhaseReadings(strings.NewReader(weekCSV))

	require.NoError(t, err)
	require.Len(t, readings, 2)
	assert.Equal(t, time.Date(2025, 10, 13, 1, 0, 0, 0, time.UTC), readings[1].Time)
	assert.Equal(t, 3, readings[1].Phases())
	assert.Equal(t, "150.5", readings[1].Consumption[0].String())
	assert.Equal(t, "30", readings[1].Production[2].String())
}

func TestReadPhaseReadings_PhaseCountFollowsHeader(t *testing.T) {
	input := "\ufeffTime;Consumption;Production\n2025-10-13 00:00:00;1000;500\n"

	readings, err := ReadPhaseReadings(strings.NewReader(input))

	require.NoError(t, err)
	require.Len(t, readings, 1)
	assert.Equal(t, 1, readings[0].Phases())
	assert.Equal(t, "500", readings[0].Production[0].String())
}

func TestReadPhaseReadings_SchemaErrors(t *testing.T) {
	t.Run("even header", func(t *testing.T) {
		_, err := ReadPhaseReadings(strings.NewReader("Time;a;b;c\n"))
		var schemaErr *SchemaError
		require.True(t, errors.As(err, &schemaErr))
		assert.Equal(t, 4, schemaErr.Got)
	})

	t.Run("short row", func(t *testing.T) {
		input := weekCSV + "2025-10-13T02:00:00;1;2;3\n"
		_, err := ReadPhaseReadings(strings.NewReader(input))
		var schemaErr *SchemaError
		require.True(t, errors.As(err, &schemaErr))
		assert.Equal(t, 7, schemaErr.Expected)
		assert.Contains(t, err.Error(), "line 4")
	})

	t.Run("non numeric value", func(t *testing.T) {
		input := weekCSV + "2025-10-13T02:00:00;1;x;3;0;0;0\n"
		_, err := ReadPhaseReadings(strings.NewReader(input))
		var formatErr *FormatError
		require.True(t, errors.As(err, &formatErr))
		assert.Equal(t, "consumption v2", formatErr.Field)
	})
}

func TestReadPhaseReadings_EmptyInput(t *testing.T) {
	readings, err := ReadPhaseReadings(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, readings)
}

func TestReadDailyReadings_DecimalComma(t *testing.T) {
	input := `Time; Consumption (net) kWh; Production (net) kWh; Daily average temperature
2025-01-01T00:00:00;12,5;0,75;-3,2
2025-01-02T00:00:00;10;1,25;-1,0
`
	readings, err := ReadDailyReadings(strings.NewReader(input))

	require.NoError(t, err)
	require.Len(t, readings, 2)
	assert.Equal(t, "12.5", readings[0].Consumption.String())
	assert.Equal(t, "0.75", readings[0].Production.String())
	assert.Equal(t, "-3.2", readings[0].Temperature.String())
	assert.Equal(t, 2, readings[1].Time.Day())
}

func TestReadDailyReadings_WrongColumnCount(t *testing.T) {
	_, err := ReadDailyReadings(strings.NewReader("Time;Consumption;Production\n"))
	var schemaErr *SchemaError
	require.True(t, errors.As(err, &schemaErr))
	assert.Equal(t, dailyColumns, schemaErr.Expected)
}

func TestLoadDailyReadings_FromFile(t *testing.T) {
	// Given
	dir := t.TempDir()
	path := filepath.Join(dir, "2025.csv")
	content := "Time;Consumption (net) kWh;Production (net) kWh;Daily average temperature\n2025-03-01T00:00:00;5,5;2;1,5\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	// When
	readings, err := LoadDailyReadings(path)

	// Then
	require.NoError(t, err)
	require.Len(t, readings, 1)
	assert.Equal(t, time.March, readings[0].Time.Month())
}
