package report

import (
	"context"
	"errors"
	"testing"

	"github.com/de-tools/data-reports/pkg/models/domain"
	"github.com/de-tools/data-reports/pkg/services/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noop(context.Context, Request) (*domain.Report, error) {
	return &domain.Report{}, nil
}

func TestRegistry_Register(t *testing.T) {
	tests := []struct {
		name    string
		def     Definition
		wantErr string
	}{
		{name: "valid", def: Definition{Name: "a", Generate: noop}},
		{name: "empty name", def: Definition{Generate: noop}, wantErr: "name cannot be empty"},
		{name: "nil generator", def: Definition{Name: "b"}, wantErr: "generator cannot be nil"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewRegistry().Register(tt.def)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestRegistry_RejectsDuplicates(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(Definition{Name: "a", Generate: noop}))

	err := r.Register(Definition{Name: "a", Generate: noop})

	assert.ErrorContains(t, err, "already registered")
}

func TestRegistry_GetUnknown(t *testing.T) {
	_, err := NewRegistry().Get("missing")

	var unknown *UnknownReportError
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, "missing", unknown.Name)
}

func TestRegistry_ListIsSorted(t *testing.T) {
	r := NewRegistry()
	for _, name := range []string{"year", "confirmed", "month"} {
		require.NoError(t, r.Register(Definition{Name: name, Generate: noop}))
	}

	var names []string
	for _, def := range r.List() {
		names = append(names, def.Name)
	}

	assert.Equal(t, []string{"confirmed", "month", "year"}, names)
}

func TestRegisterBuiltins(t *testing.T) {
	r := NewRegistry()

	require.NoError(t, RegisterBuiltins(r))

	assert.Len(t, r.List(), 13)
	def, err := r.Get("weekly-summary")
	require.NoError(t, err)
	assert.Equal(t, DatasetWeeks, def.Dataset)

	assert.Error(t, RegisterBuiltins(r), "registering twice must fail")
}

func TestDataset_Input(t *testing.T) {
	inputs := config.Inputs{Reservations: "r.txt", Phases: "w.csv", Daily: "d.csv", Weeks: "weeks.ini"}

	assert.Equal(t, "r.txt", DatasetReservations.Input(inputs))
	assert.Equal(t, "w.csv", DatasetPhases.Input(inputs))
	assert.Equal(t, "d.csv", DatasetDaily.Input(inputs))
	assert.Equal(t, "weeks.ini", DatasetWeeks.Input(inputs))
	assert.Empty(t, Dataset("other").Input(inputs))
}
