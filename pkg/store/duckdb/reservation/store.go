package reservation

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/de-tools/data-reports/pkg/models/domain"
	"github.com/de-tools/data-reports/pkg/store/duckdb"
	"github.com/shopspring/decimal"
)

// Store archives parsed reservations in DuckDB and reads them back in id order.
type Store interface {
	Add(ctx context.Context, records []domain.Reservation) error
	List(ctx context.Context) ([]domain.Reservation, error)
	Count(ctx context.Context) (int, error)
	RecordRun(ctx context.Context, runID, source string, records int) error
}

type reservationStore struct {
	db *sql.DB
}

func NewStore(db *sql.DB) (Store, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	return &reservationStore{
		db: db,
	}, nil
}

// execer is satisfied by both *sql.DB and *sql.Tx.
type execer interface {
	PrepareContext(ctx context.Context, query string) (*sql.Stmt, error)
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func (s *reservationStore) conn(ctx context.Context) execer {
	if tx := duckdb.GetTransaction(ctx); tx != nil {
		return tx
	}
	return s.db
}

func (s *reservationStore) Add(ctx context.Context, records []domain.Reservation) error {
	if len(records) == 0 {
		return nil
	}

	query := `
		INSERT INTO reservations (
			id, name, email, phone, starts_at, duration_hours,
			price, confirmed, resource, created_at
		) VALUES (
			?, ?, ?, ?, ?, ?, CAST(? AS DECIMAL(12, 2)), ?, ?, ?
		)`

	stmt, err := s.conn(ctx).PrepareContext(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare statement: %w", err)
	}
	defer stmt.Close()

	for _, r := range records {
		createdAt := sql.NullTime{Time: r.CreatedAt, Valid: !r.CreatedAt.IsZero()}
		_, err = stmt.ExecContext(ctx,
			r.ID,
			r.Name,
			r.Email,
			r.Phone,
			r.StartsAt(),
			r.Duration,
			r.Price.String(),
			r.Confirmed,
			r.Resource,
			createdAt,
		)
		if err != nil {
			return fmt.Errorf("insert reservation %d: %w", r.ID, err)
		}
	}

	return nil
}

func (s *reservationStore) List(ctx context.Context) ([]domain.Reservation, error) {
	query := `
		SELECT id, name, email, phone, starts_at, duration_hours,
		       CAST(price AS VARCHAR), confirmed, resource, created_at
		FROM reservations
		ORDER BY id`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query reservations: %w", err)
	}
	defer rows.Close()

	records := make([]domain.Reservation, 0)
	for rows.Next() {
		var (
			r            domain.Reservation
			email, phone sql.NullString
			startsAt     time.Time
			price        string
			createdAt    sql.NullTime
		)
		if err := rows.Scan(&r.ID, &r.Name, &email, &phone, &startsAt, &r.Duration,
			&price, &r.Confirmed, &r.Resource, &createdAt); err != nil {
			return nil, fmt.Errorf("scan reservation: %w", err)
		}

		if r.Price, err = decimal.NewFromString(price); err != nil {
			return nil, fmt.Errorf("reservation %d price: %w", r.ID, err)
		}
		r.Email, r.Phone = email.String, phone.String
		startsAt = startsAt.UTC()
		r.Date = time.Date(startsAt.Year(), startsAt.Month(), startsAt.Day(), 0, 0, 0, 0, time.UTC)
		r.Time = time.Date(0, 1, 1, startsAt.Hour(), startsAt.Minute(), startsAt.Second(), 0, time.UTC)
		if createdAt.Valid {
			r.CreatedAt = createdAt.Time.UTC()
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate reservations: %w", err)
	}
	return records, nil
}

func (s *reservationStore) Count(ctx context.Context) (int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM reservations`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count reservations: %w", err)
	}
	return count, nil
}

// RecordRun notes one ingest run; it joins the context transaction like Add.
func (s *reservationStore) RecordRun(ctx context.Context, runID, source string, records int) error {
	_, err := s.conn(ctx).ExecContext(ctx,
		`INSERT INTO ingest_runs (run_id, source, records) VALUES (?, ?, ?)`,
		runID, source, records,
	)
	if err != nil {
		return fmt.Errorf("record ingest run: %w", err)
	}
	return nil
}
