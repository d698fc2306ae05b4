package commands

import (
	"context"
	"fmt"

	"github.com/de-tools/data-reports/pkg/parser"
	"github.com/de-tools/data-reports/pkg/store/duckdb"
	"github.com/de-tools/data-reports/pkg/store/duckdb/reservation"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

type IngestCmd struct {
	env    *Env
	input  string
	dbPath string
}

func NewIngestCmd(env *Env) *cobra.Command {
	ic := &IngestCmd{env: env}
	cmd := &cobra.Command{
		Use:   "ingest",
		Short: "Archive a reservations file in DuckDB",
		Args:  cobra.NoArgs,
		RunE:  ic.run,
	}

	cmd.Flags().StringVar(&ic.input, "input", "", "Reservations file; defaults to inputs.reservations")
	cmd.Flags().StringVar(&ic.dbPath, "db", "", "DuckDB database file; defaults to database")

	return cmd
}

func (ic *IngestCmd) run(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	logger := zerolog.Ctx(ctx)

	input := firstNonEmpty(ic.input, ic.env.Config.Inputs.Reservations)
	dbPath := firstNonEmpty(ic.dbPath, ic.env.Config.Database)
	if input == "" {
		return fmt.Errorf("an input file is required (--input or inputs.reservations)")
	}
	if dbPath == "" {
		return fmt.Errorf("a database is required (--db or database)")
	}

	records, err := parser.LoadReservations(input)
	if err != nil {
		return err
	}

	db, err := openDB(dbPath)
	if err != nil {
		return err
	}
	defer db.Close()

	store, err := reservation.NewStore(db)
	if err != nil {
		return err
	}

	err = duckdb.RunInTransaction(ctx, db, func(ctx context.Context) error {
		if err := store.Add(ctx, records); err != nil {
			return err
		}
		return store.RecordRun(ctx, ic.env.RunID, input, len(records))
	})
	if err != nil {
		return fmt.Errorf("failed to archive reservations: %w", err)
	}

	total, err := store.Count(ctx)
	if err != nil {
		return err
	}

	logger.Info().Str("input", input).Str("db", dbPath).Int("records", len(records)).Msg("reservations archived")
	fmt.Fprintf(cmd.OutOrStdout(), "Archived %d reservations from %s (%d in archive)\n", len(records), input, total)
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
