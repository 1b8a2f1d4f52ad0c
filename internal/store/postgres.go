package store

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rotisserie/eris"

	"github.com/bulgogipedas/isUMREnough/internal/model"
)

// Pool is the subset of pgxpool.Pool the store needs; pgxmock
// satisfies it in tests.
type Pool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Close()
}

// PostgresStore implements Store using pgxpool.
type PostgresStore struct {
	pool Pool
}

// NewPostgres creates a PostgresStore with a connection pool.
func NewPostgres(ctx context.Context, connString string) (*PostgresStore, error) {
	cfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: parse config")
	}
	cfg.MaxConns = 10
	cfg.MinConns = 2
	cfg.MaxConnLifetime = 30 * time.Minute
	cfg.MaxConnIdleTime = 5 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: connect")
	}
	return &PostgresStore{pool: pool}, nil
}

const postgresMigration = `
CREATE TABLE IF NOT EXISTS snapshots (
	id         UUID PRIMARY KEY,
	source     TEXT NOT NULL,
	data       JSONB NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS calculations (
	id          UUID PRIMARY KEY,
	province_id TEXT NOT NULL,
	income      DOUBLE PRECISION NOT NULL,
	dependents  INTEGER NOT NULL,
	result      JSONB NOT NULL,
	created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS idx_snapshots_source ON snapshots(source, created_at);
CREATE INDEX IF NOT EXISTS idx_calculations_province ON calculations(province_id, created_at);
`

func (s *PostgresStore) Migrate(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, postgresMigration)
	return eris.Wrap(err, "postgres: migrate")
}

func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}

func (s *PostgresStore) SaveSnapshot(ctx context.Context, source string, data map[string]model.ProvinceData) (*Snapshot, error) {
	payload, err := json.Marshal(data)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: marshal snapshot")
	}

	snap := &Snapshot{
		ID:        uuid.New().String(),
		Source:    source,
		Data:      data,
		CreatedAt: time.Now().UTC(),
	}
	_, err = s.pool.Exec(ctx,
		`INSERT INTO snapshots (id, source, data, created_at) VALUES ($1, $2, $3, $4)`,
		snap.ID, source, payload, snap.CreatedAt,
	)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: insert snapshot")
	}
	return snap, nil
}

func (s *PostgresStore) LatestSnapshot(ctx context.Context, source string) (*Snapshot, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT id, source, data, created_at FROM snapshots WHERE source = $1 ORDER BY created_at DESC LIMIT 1`,
		source,
	)

	var snap Snapshot
	var payload []byte
	if err := row.Scan(&snap.ID, &snap.Source, &payload, &snap.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, eris.Wrap(err, "postgres: get snapshot")
	}

	if err := json.Unmarshal(payload, &snap.Data); err != nil {
		return nil, eris.Wrap(err, "postgres: unmarshal snapshot")
	}
	return &snap, nil
}

func (s *PostgresStore) RecordCalculation(ctx context.Context, provinceID string, income float64, dependents int, result model.CalculationResult) (*model.CalculationRecord, error) {
	payload, err := json.Marshal(result)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: marshal result")
	}

	rec := &model.CalculationRecord{
		ID:         uuid.New().String(),
		ProvinceID: provinceID,
		Income:     income,
		Dependents: dependents,
		Result:     result,
		CreatedAt:  time.Now().UTC(),
	}
	_, err = s.pool.Exec(ctx,
		`INSERT INTO calculations (id, province_id, income, dependents, result, created_at) VALUES ($1, $2, $3, $4, $5, $6)`,
		rec.ID, rec.ProvinceID, rec.Income, rec.Dependents, payload, rec.CreatedAt,
	)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: insert calculation")
	}
	return rec, nil
}

func (s *PostgresStore) ListCalculations(ctx context.Context, provinceID string, limit int) ([]model.CalculationRecord, error) {
	if limit <= 0 {
		limit = 50
	}

	var rows pgx.Rows
	var err error
	if provinceID != "" {
		rows, err = s.pool.Query(ctx,
			`SELECT id, province_id, income, dependents, result, created_at FROM calculations WHERE province_id = $1 ORDER BY created_at DESC LIMIT $2`,
			provinceID, limit,
		)
	} else {
		rows, err = s.pool.Query(ctx,
			`SELECT id, province_id, income, dependents, result, created_at FROM calculations ORDER BY created_at DESC LIMIT $1`,
			limit,
		)
	}
	if err != nil {
		return nil, eris.Wrap(err, "postgres: list calculations")
	}
	defer rows.Close()

	var records []model.CalculationRecord
	for rows.Next() {
		var rec model.CalculationRecord
		var payload []byte
		if err := rows.Scan(&rec.ID, &rec.ProvinceID, &rec.Income, &rec.Dependents, &payload, &rec.CreatedAt); err != nil {
			return nil, eris.Wrap(err, "postgres: scan calculation")
		}
		if err := json.Unmarshal(payload, &rec.Result); err != nil {
			return nil, eris.Wrap(err, "postgres: unmarshal result")
		}
		records = append(records, rec)
	}
	return records, eris.Wrap(rows.Err(), "postgres: iterate calculations")
}
