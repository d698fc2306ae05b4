package report

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/de-tools/data-reports/pkg/models/api"
	"github.com/de-tools/data-reports/pkg/models/domain"
	"github.com/de-tools/data-reports/pkg/parser"
	"github.com/de-tools/data-reports/pkg/services/aggregate"
	"github.com/de-tools/data-reports/pkg/services/config"
	"github.com/de-tools/data-reports/pkg/services/report"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const dailyCSV = `Time; Consumption (net) kWh; Production (net) kWh; Daily average temperature
2025-10-12T00:00:00;10,5;1;5
2025-10-13T00:00:00;20,25;2;6
`

type mockReservationSource struct {
	mock.Mock
}

func (m *mockReservationSource) List(ctx context.Context) ([]domain.Reservation, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Reservation), args.Error(1)
}

func newRouter(t *testing.T, settings Settings) *chi.Mux {
	t.Helper()
	registry := report.NewRegistry()
	require.NoError(t, report.RegisterBuiltins(registry))

	h := NewHandler(registry, settings)
	router := chi.NewRouter()
	router.Get("/reports", h.ListReports)
	router.Get("/reports/{name}", h.GetReport)
	return router
}

func serve(router http.Handler, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func dailyInput(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "2025.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestListReports(t *testing.T) {
	router := newRouter(t, Settings{})

	w := serve(router, "/reports")

	assert.Equal(t, http.StatusOK, w.Code)
	var defs []api.ReportDefinition
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &defs))
	assert.Len(t, defs, 13)
	assert.Equal(t, "confirmed", defs[0].Name)
}

func TestGetReport_Text(t *testing.T) {
	router := newRouter(t, Settings{Inputs: config.Inputs{Daily: dailyInput(t, dailyCSV)}})

	w := serve(router, "/reports/period?from=2025-10-12&to=2025-10-13")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/plain; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Body.String(), "Report for the period 12.10.2025–13.10.2025\n- Total consumption: 30,75 kWh\n")
}

func TestGetReport_JSON(t *testing.T) {
	router := newRouter(t, Settings{Inputs: config.Inputs{Daily: dailyInput(t, dailyCSV)}})

	w := serve(router, "/reports/period?from=2025-10-12&to=2025-10-13&format=json")

	assert.Equal(t, http.StatusOK, w.Code)
	var out api.Report
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	assert.Equal(t, "period", out.Name)
	require.NotNil(t, out.Period)
	assert.Equal(t, 2, out.Period.Duration)
	assert.Equal(t, "- Average temperature: 5,50 °C", out.Text[4])
}

func TestGetReport_ReservationsFromSource(t *testing.T) {
	// Given
	source := &mockReservationSource{}
	source.On("List", mock.Anything).Return([]domain.Reservation{
		{ID: 1, Name: "Moomin Valley", Duration: 2, Price: decimal.RequireFromString("18.50"), Confirmed: true},
	}, nil)
	router := newRouter(t, Settings{Reservations: source})

	// When
	w := serve(router, "/reports/revenue")

	// Then
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Total revenue from confirmed reservations: 37,00 €")
	source.AssertExpectations(t)
}

func TestGetReport_Errors(t *testing.T) {
	broken := dailyInput(t, dailyCSV+"2025-10-14T00:00:00;x;1;1\n")
	good := dailyInput(t, dailyCSV)

	tests := []struct {
		name   string
		inputs config.Inputs
		path   string
		status int
		body   string
	}{
		{name: "unknown report", path: "/reports/nope", status: http.StatusNotFound, body: "unknown report"},
		{name: "invalid from", inputs: config.Inputs{Daily: good}, path: "/reports/period?from=12.10.2025&to=2025-10-13", status: http.StatusBadRequest, body: "invalid 'from' date format. Expected format: YYYY-MM-DD\n"},
		{name: "invalid to", inputs: config.Inputs{Daily: good}, path: "/reports/period?from=2025-10-12&to=x", status: http.StatusBadRequest, body: "invalid 'to' date format. Expected format: YYYY-MM-DD\n"},
		{name: "invalid month", inputs: config.Inputs{Daily: good}, path: "/reports/month?month=x", status: http.StatusBadRequest, body: "invalid 'month'"},
		{name: "month out of range", inputs: config.Inputs{Daily: good}, path: "/reports/month?month=13", status: http.StatusBadRequest, body: "between 1 and 12"},
		{name: "missing period", inputs: config.Inputs{Daily: good}, path: "/reports/period", status: http.StatusBadRequest, body: "parameter period"},
		{name: "malformed input", inputs: config.Inputs{Daily: broken}, path: "/reports/year", status: http.StatusUnprocessableEntity, body: "line 4"},
		{name: "missing input file", inputs: config.Inputs{Daily: filepath.Join(t.TempDir(), "none.csv")}, path: "/reports/year", status: http.StatusInternalServerError},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := serve(newRouter(t, Settings{Inputs: tc.inputs}), tc.path)

			assert.Equal(t, tc.status, w.Code, w.Body.String())
			assert.Contains(t, w.Body.String(), tc.body)
		})
	}
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{err: fmt.Errorf("line 2: %w", &parser.SchemaError{Expected: 11, Got: 3}), want: http.StatusUnprocessableEntity},
		{err: &parser.FormatError{Field: "price", Value: "x"}, want: http.StatusUnprocessableEntity},
		{err: &report.ParameterError{Name: "month"}, want: http.StatusBadRequest},
		{err: &aggregate.MonthError{Month: 0}, want: http.StatusBadRequest},
		{err: &report.UnknownReportError{Name: "x"}, want: http.StatusNotFound},
		{err: errors.New("disk"), want: http.StatusInternalServerError},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, statusFor(tc.err), tc.err.Error())
	}
}
