package duckdb

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"fmt"

	"github.com/marcboeker/go-duckdb/v2"
)

const ReservationsTableSchema = `
	CREATE TABLE IF NOT EXISTS reservations (
		id INTEGER PRIMARY KEY,
		name VARCHAR NOT NULL,
		email VARCHAR,
		phone VARCHAR,
		starts_at TIMESTAMP NOT NULL,
		duration_hours INTEGER NOT NULL,
		price DECIMAL(12, 2) NOT NULL,
		confirmed BOOLEAN NOT NULL,
		resource VARCHAR NOT NULL,
		created_at TIMESTAMP NULL
	);
`

const IngestRunsTableSchema = `
	CREATE TABLE IF NOT EXISTS ingest_runs (
		run_id VARCHAR PRIMARY KEY,
		source VARCHAR NOT NULL,
		records INTEGER NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	);
`

var bootQueries = []string{
	ReservationsTableSchema,
	IngestRunsTableSchema,
}

type Settings struct {
	DbPath string
}

func NewDB(settings Settings) (*sql.DB, error) {
	c, err := duckdb.NewConnector(fmt.Sprintf("%s?threads=4", settings.DbPath), func(exec driver.ExecerContext) error {
		for _, query := range bootQueries {
			_, err := exec.ExecContext(context.Background(), query, nil)
			if err != nil {
				return err
			}
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	db := sql.OpenDB(c)
	return db, nil
}
