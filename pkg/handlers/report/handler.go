package report

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/de-tools/data-reports/pkg/adapters"
	"github.com/de-tools/data-reports/pkg/format"
	"github.com/de-tools/data-reports/pkg/models/api"
	"github.com/de-tools/data-reports/pkg/models/domain"
	"github.com/de-tools/data-reports/pkg/parser"
	"github.com/de-tools/data-reports/pkg/runtime/terminal/export"
	"github.com/de-tools/data-reports/pkg/services/aggregate"
	"github.com/de-tools/data-reports/pkg/services/config"
	"github.com/de-tools/data-reports/pkg/services/report"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

const dateLayout = "2006-01-02"

// Settings are the server-side report inputs and defaults; requests never name files.
type Settings struct {
	Inputs       config.Inputs
	Locale       format.Locale
	Threshold    int
	Reservations report.ReservationSource
}

type Handler struct {
	registry report.Registry
	reporter *export.Reporter
	settings Settings
}

func NewHandler(registry report.Registry, settings Settings) *Handler {
	return &Handler{
		registry: registry,
		reporter: export.NewReporter(nil),
		settings: settings,
	}
}

func (h *Handler) ListReports(w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())

	response := make([]api.ReportDefinition, 0)
	for _, def := range h.registry.List() {
		response = append(response, adapters.MapDefinitionDomainToApi(def))
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		logger.Error().
			Err(err).
			Msg("failed to encode report definitions")
	}
}

func (h *Handler) GetReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)
	name := chi.URLParam(r, "name")

	def, err := h.registry.Get(name)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	req, err := h.request(r, def)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	rep, err := def.Generate(ctx, req)
	if err != nil {
		logger.Error().Err(err).Str("report", name).Msg("failed to generate report")
		http.Error(w, err.Error(), statusFor(err))
		return
	}

	lines, err := h.reporter.Render(rep)
	if err != nil {
		logger.Error().Err(err).Str("report", name).Msg("failed to render report")
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	switch r.URL.Query().Get("format") {
	case "json":
		w.Header().Set("Content-Type", "application/json")
		err = json.NewEncoder(w).Encode(adapters.MapReportDomainToApi(name, rep, req.Period, lines))
	default:
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, err = w.Write([]byte(strings.Join(lines, "\n") + "\n"))
	}
	if err != nil {
		logger.Error().
			Err(err).
			Str("report", name).
			Msg("failed to write report")
	}
}

func (h *Handler) request(r *http.Request, def report.Definition) (report.Request, error) {
	query := r.URL.Query()
	req := report.Request{
		Input:     def.Dataset.Input(h.settings.Inputs),
		Threshold: h.settings.Threshold,
		Locale:    h.settings.Locale,
		Chart:     query.Get("chart") == "true",
	}
	if def.Dataset == report.DatasetReservations {
		req.Reservations = h.settings.Reservations
	}

	var err error
	if req.Month, err = intParam(query.Get("month")); err != nil {
		return report.Request{}, errors.New("invalid 'month'. Expected a number 1-12")
	}
	if req.Week, err = intParam(query.Get("week")); err != nil {
		return report.Request{}, errors.New("invalid 'week'. Expected a number")
	}
	if threshold := query.Get("threshold"); threshold != "" {
		if req.Threshold, err = strconv.Atoi(threshold); err != nil || req.Threshold <= 0 {
			return report.Request{}, errors.New("invalid 'threshold'. Expected a positive number of hours")
		}
	}

	from, to := query.Get("from"), query.Get("to")
	if from == "" && to == "" {
		return req, nil
	}
	start, err := time.Parse(dateLayout, from)
	if err != nil {
		return report.Request{}, errors.New("invalid 'from' date format. Expected format: YYYY-MM-DD")
	}
	end, err := time.Parse(dateLayout, to)
	if err != nil {
		return report.Request{}, errors.New("invalid 'to' date format. Expected format: YYYY-MM-DD")
	}
	period := domain.NewTimePeriod(start, end)
	req.Period = &period
	return req, nil
}

func intParam(raw string) (int, error) {
	if raw == "" {
		return 0, nil
	}
	return strconv.Atoi(raw)
}

// statusFor maps generation errors onto HTTP status codes.
func statusFor(err error) int {
	var (
		schemaErr  *parser.SchemaError
		formatErr  *parser.FormatError
		paramErr   *report.ParameterError
		monthErr   *aggregate.MonthError
		unknownErr *report.UnknownReportError
	)
	switch {
	case errors.As(err, &schemaErr), errors.As(err, &formatErr):
		return http.StatusUnprocessableEntity
	case errors.As(err, &paramErr), errors.As(err, &monthErr):
		return http.StatusBadRequest
	case errors.As(err, &unknownErr):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
