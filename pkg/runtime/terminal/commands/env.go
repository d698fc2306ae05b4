package commands

import (
	"database/sql"
	"fmt"

	"github.com/de-tools/data-reports/pkg/format"
	"github.com/de-tools/data-reports/pkg/runtime/terminal/export"
	"github.com/de-tools/data-reports/pkg/services/config"
	"github.com/de-tools/data-reports/pkg/services/report"
	"github.com/de-tools/data-reports/pkg/sink"
	"github.com/de-tools/data-reports/pkg/store/duckdb"
)

// Env is shared by the subcommands. The root command fills Config and RunID before any of them runs.
type Env struct {
	Config   *config.Config
	Registry report.Registry
	Reporter *export.Reporter
	Sinks    *sink.Parser
	RunID    string
}

func (e *Env) locale() (format.Locale, error) {
	return format.NewLocale(e.Config.Currency, e.Config.WeekdayLocale)
}

func openDB(path string) (*sql.DB, error) {
	db, err := duckdb.NewDB(duckdb.Settings{DbPath: path})
	if err != nil {
		return nil, fmt.Errorf("failed to create DuckDB instance: %w", err)
	}
	return db, nil
}
