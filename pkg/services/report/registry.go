// Package report keeps the named report definitions shared by the CLI and the HTTP API.
package report

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/de-tools/data-reports/pkg/models/domain"
	"github.com/de-tools/data-reports/pkg/services/config"
)

// Dataset names the kind of input a report reads.
type Dataset string

const (
	DatasetReservations Dataset = "reservations"
	DatasetPhases       Dataset = "phases"
	DatasetDaily        Dataset = "daily"
	DatasetWeeks        Dataset = "weeks"
)

// Generator builds one report from a request.
type Generator func(ctx context.Context, req Request) (*domain.Report, error)

type Definition struct {
	Name        string
	Description string
	Dataset     Dataset
	Generate    Generator
}

// Registry manages report definitions
type Registry interface {
	// Register adds a new report definition
	Register(def Definition) error
	// Get looks up a definition by name
	Get(name string) (Definition, error)
	// List returns all definitions sorted by name
	List() []Definition
}

type registry struct {
	mu          sync.RWMutex
	definitions map[string]Definition
}

// NewRegistry creates an empty report registry
func NewRegistry() Registry {
	return &registry{
		definitions: make(map[string]Definition),
	}
}

func (r *registry) Register(def Definition) error {
	if def.Name == "" {
		return fmt.Errorf("report name cannot be empty")
	}
	if def.Generate == nil {
		return fmt.Errorf("generator cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.definitions[def.Name]; exists {
		return fmt.Errorf("report %q is already registered", def.Name)
	}

	r.definitions[def.Name] = def
	return nil
}

func (r *registry) Get(name string) (Definition, error) {
	r.mu.RLock()
	def, exists := r.definitions[name]
	r.mu.RUnlock()

	if !exists {
		return Definition{}, &UnknownReportError{Name: name}
	}
	return def, nil
}

func (r *registry) List() []Definition {
	r.mu.RLock()
	defer r.mu.RUnlock()

	defs := make([]Definition, 0, len(r.definitions))
	for _, def := range r.definitions {
		defs = append(defs, def)
	}
	slices.SortFunc(defs, func(a, b Definition) int { return strings.Compare(a.Name, b.Name) })
	return defs
}

// Generate looks up name and runs its generator.
func Generate(ctx context.Context, r Registry, name string, req Request) (*domain.Report, error) {
	def, err := r.Get(name)
	if err != nil {
		return nil, err
	}
	return def.Generate(ctx, req)
}

// Input picks the configured input file of the dataset.
func (d Dataset) Input(inputs config.Inputs) string {
	switch d {
	case DatasetReservations:
		return inputs.Reservations
	case DatasetPhases:
		return inputs.Phases
	case DatasetDaily:
		return inputs.Daily
	case DatasetWeeks:
		return inputs.Weeks
	default:
		return ""
	}
}
