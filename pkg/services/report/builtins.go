package report

import (
	"context"
	"fmt"

	"github.com/de-tools/data-reports/pkg/models/domain"
	"github.com/de-tools/data-reports/pkg/parser"
	"github.com/de-tools/data-reports/pkg/services/config"
	"github.com/de-tools/data-reports/pkg/services/energy"
	"github.com/de-tools/data-reports/pkg/services/reservation"
	"github.com/de-tools/data-reports/pkg/store/memory"
	"github.com/rs/zerolog"
)

type reservationReport func(b *reservation.Builder, records []domain.Reservation) *domain.Report

// RegisterBuiltins registers every report this module ships with.
func RegisterBuiltins(r Registry) error {
	reservationReports := []struct {
		name        string
		description string
		build       reservationReport
	}{
		{"reservation-details", "One card per reservation with totals and paid status", (*reservation.Builder).Details},
		{"reservation-table", "All reservations as a fixed-width table", (*reservation.Builder).Table},
		{"confirmed", "Confirmed reservations", (*reservation.Builder).Confirmed},
		{"long", "Reservations lasting at least the long threshold", (*reservation.Builder).Long},
		{"status", "Confirmation status of every reservation", (*reservation.Builder).Statuses},
		{"summary", "Number of confirmed and not confirmed reservations", (*reservation.Builder).Summary},
		{"revenue", "Total revenue from confirmed reservations", (*reservation.Builder).Revenue},
		{"overview", "Confirmed, long, status, summary and revenue sections", (*reservation.Builder).Overview},
	}

	defs := make([]Definition, 0, len(reservationReports)+5)
	for _, rr := range reservationReports {
		defs = append(defs, Definition{
			Name:        rr.name,
			Description: rr.description,
			Dataset:     DatasetReservations,
			Generate:    reservationGenerator(rr.build),
		})
	}
	defs = append(defs,
		Definition{
			Name:        "week",
			Description: "Per-phase consumption and production of one week, in kWh",
			Dataset:     DatasetPhases,
			Generate:    generateWeek,
		},
		Definition{
			Name:        "weekly-summary",
			Description: "Daily per-phase totals of every week in a manifest, with combined totals",
			Dataset:     DatasetWeeks,
			Generate:    generateWeeklySummary,
		},
		Definition{
			Name:        "period",
			Description: "Consumption, production and average temperature over a date range",
			Dataset:     DatasetDaily,
			Generate:    generatePeriod,
		},
		Definition{
			Name:        "month",
			Description: "Consumption, production and average temperature of one month",
			Dataset:     DatasetDaily,
			Generate:    generateMonth,
		},
		Definition{
			Name:        "year",
			Description: "Consumption, production and average temperature of the whole dataset",
			Dataset:     DatasetDaily,
			Generate:    generateYear,
		},
	)

	for _, def := range defs {
		if err := r.Register(def); err != nil {
			return err
		}
	}
	return nil
}

func reservationGenerator(build reservationReport) Generator {
	return func(ctx context.Context, req Request) (*domain.Report, error) {
		store, err := loadReservations(ctx, req)
		if err != nil {
			return nil, err
		}
		b := reservation.NewBuilder(req.locale(), req.Threshold)
		return build(b, store.All()), nil
	}
}

func loadReservations(ctx context.Context, req Request) (*memory.Store[domain.Reservation], error) {
	var (
		records []domain.Reservation
		err     error
	)
	if req.Reservations != nil {
		records, err = req.Reservations.List(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list archived reservations: %w", err)
		}
	} else {
		if req.Input == "" {
			return nil, &ParameterError{Name: "input", Reason: "a reservations file is required"}
		}
		records, err = parser.LoadReservations(req.Input)
		if err != nil {
			return nil, err
		}
	}

	zerolog.Ctx(ctx).Debug().Int("records", len(records)).Msg("reservations loaded")
	return memory.New(records...), nil
}

func loadInput[T any](ctx context.Context, req Request, load func(string) ([]T, error)) (*memory.Store[T], error) {
	if req.Input == "" {
		return nil, &ParameterError{Name: "input", Reason: "a data file is required"}
	}
	records, err := load(req.Input)
	if err != nil {
		return nil, err
	}
	zerolog.Ctx(ctx).Debug().Str("input", req.Input).Int("records", len(records)).Msg("readings loaded")
	return memory.New(records...), nil
}

func generateWeek(ctx context.Context, req Request) (*domain.Report, error) {
	store, err := loadInput(ctx, req, parser.LoadPhaseReadings)
	if err != nil {
		return nil, err
	}
	readings := store.All()
	report := energy.NewBuilder(req.locale()).Week(readings, req.Week)
	if req.Chart {
		section, ok := energy.PhaseChart(readings)
		energy.WithChart(report, section, ok)
	}
	return report, nil
}

func generateWeeklySummary(ctx context.Context, req Request) (*domain.Report, error) {
	if req.Input == "" {
		return nil, &ParameterError{Name: "input", Reason: "a weekly manifest is required"}
	}
	manifest, err := config.NewSourceRegistry(req.Input)
	if err != nil {
		return nil, err
	}
	sources, err := manifest.GetSources(ctx)
	if err != nil {
		return nil, err
	}

	store := memory.New[domain.PhaseReading]()
	for _, source := range sources {
		readings, err := parser.LoadPhaseReadings(source.Path)
		if err != nil {
			return nil, fmt.Errorf("source %s: %w", source.Name, err)
		}
		zerolog.Ctx(ctx).Debug().Str("source", source.Name).Int("records", len(readings)).Msg("week loaded")
		store.Append(readings...)
	}

	readings := store.All()
	report := energy.NewBuilder(req.locale()).WeeklySummary(readings)
	if req.Chart {
		section, ok := energy.PhaseChart(readings)
		energy.WithChart(report, section, ok)
	}
	return report, nil
}

func generatePeriod(ctx context.Context, req Request) (*domain.Report, error) {
	if req.Period == nil {
		return nil, &ParameterError{Name: "period", Reason: "a start and end date are required"}
	}
	store, err := loadInput(ctx, req, parser.LoadDailyReadings)
	if err != nil {
		return nil, err
	}
	readings := store.All()
	zerolog.Ctx(ctx).Debug().Int("days", req.Period.Duration()).Msg("period selected")

	report := energy.NewBuilder(req.locale()).Period(readings, *req.Period)
	if req.Chart {
		section, ok := energy.DailyChart(energy.SelectPeriod(readings, *req.Period))
		energy.WithChart(report, section, ok)
	}
	return report, nil
}

func generateMonth(ctx context.Context, req Request) (*domain.Report, error) {
	if req.Month == 0 {
		return nil, &ParameterError{Name: "month", Reason: "a month number 1-12 is required"}
	}
	store, err := loadInput(ctx, req, parser.LoadDailyReadings)
	if err != nil {
		return nil, err
	}
	readings := store.All()

	report, err := energy.NewBuilder(req.locale()).Month(readings, req.Month)
	if err != nil {
		return nil, err
	}
	if req.Chart {
		selected, _ := energy.SelectMonth(readings, req.Month)
		section, ok := energy.DailyChart(selected)
		energy.WithChart(report, section, ok)
	}
	return report, nil
}

func generateYear(ctx context.Context, req Request) (*domain.Report, error) {
	store, err := loadInput(ctx, req, parser.LoadDailyReadings)
	if err != nil {
		return nil, err
	}
	readings := store.All()
	report := energy.NewBuilder(req.locale()).Year(readings)
	if req.Chart {
		section, ok := energy.DailyChart(readings)
		energy.WithChart(report, section, ok)
	}
	return report, nil
}
