package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	_ "modernc.org/sqlite"

	"github.com/bulgogipedas/isUMREnough/internal/model"
)

// SQLiteStore implements Store using modernc.org/sqlite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLite opens a SQLite database at the given path and configures WAL mode.
func NewSQLite(dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: open")
	}
	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA synchronous=NORMAL",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, eris.Wrapf(err, "sqlite: exec %s", pragma)
		}
	}
	return &SQLiteStore{db: db}, nil
}

const sqliteMigration = `
CREATE TABLE IF NOT EXISTS snapshots (
	id         TEXT PRIMARY KEY,
	source     TEXT NOT NULL,
	data       TEXT NOT NULL,
	created_at DATETIME NOT NULL DEFAULT (datetime('now'))
);

CREATE TABLE IF NOT EXISTS calculations (
	id          TEXT PRIMARY KEY,
	province_id TEXT NOT NULL,
	income      REAL NOT NULL,
	dependents  INTEGER NOT NULL,
	result      TEXT NOT NULL,
	created_at  DATETIME NOT NULL DEFAULT (datetime('now'))
);

CREATE INDEX IF NOT EXISTS idx_snapshots_source ON snapshots(source, created_at);
CREATE INDEX IF NOT EXISTS idx_calculations_province ON calculations(province_id, created_at);
`

func (s *SQLiteStore) Migrate(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, sqliteMigration)
	return eris.Wrap(err, "sqlite: migrate")
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) SaveSnapshot(ctx context.Context, source string, data map[string]model.ProvinceData) (*Snapshot, error) {
	payload, err := json.Marshal(data)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: marshal snapshot")
	}

	snap := &Snapshot{
		ID:        uuid.New().String(),
		Source:    source,
		Data:      data,
		CreatedAt: time.Now().UTC(),
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO snapshots (id, source, data, created_at) VALUES (?, ?, ?, ?)`,
		snap.ID, source, string(payload), snap.CreatedAt,
	)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: insert snapshot")
	}
	return snap, nil
}

func (s *SQLiteStore) LatestSnapshot(ctx context.Context, source string) (*Snapshot, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, source, data, created_at FROM snapshots WHERE source = ? ORDER BY created_at DESC LIMIT 1`,
		source,
	)

	var snap Snapshot
	var payload string
	if err := row.Scan(&snap.ID, &snap.Source, &payload, &snap.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, eris.Wrap(err, "sqlite: get snapshot")
	}

	if err := json.Unmarshal([]byte(payload), &snap.Data); err != nil {
		return nil, eris.Wrap(err, "sqlite: unmarshal snapshot")
	}
	return &snap, nil
}

func (s *SQLiteStore) RecordCalculation(ctx context.Context, provinceID string, income float64, dependents int, result model.CalculationResult) (*model.CalculationRecord, error) {
	payload, err := json.Marshal(result)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: marshal result")
	}

	rec := &model.CalculationRecord{
		ID:         uuid.New().String(),
		ProvinceID: provinceID,
		Income:     income,
		Dependents: dependents,
		Result:     result,
		CreatedAt:  time.Now().UTC(),
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO calculations (id, province_id, income, dependents, result, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.ProvinceID, rec.Income, rec.Dependents, string(payload), rec.CreatedAt,
	)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: insert calculation")
	}
	return rec, nil
}

func (s *SQLiteStore) ListCalculations(ctx context.Context, provinceID string, limit int) ([]model.CalculationRecord, error) {
	if limit <= 0 {
		limit = 50
	}

	query := `SELECT id, province_id, income, dependents, result, created_at FROM calculations`
	args := []any{}
	if provinceID != "" {
		query += ` WHERE province_id = ?`
		args = append(args, provinceID)
	}
	query += ` ORDER BY created_at DESC LIMIT ?`
	args = append(args, limit)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: list calculations")
	}
	defer rows.Close() //nolint:errcheck

	var records []model.CalculationRecord
	for rows.Next() {
		var rec model.CalculationRecord
		var payload string
		if err := rows.Scan(&rec.ID, &rec.ProvinceID, &rec.Income, &rec.Dependents, &payload, &rec.CreatedAt); err != nil {
			return nil, eris.Wrap(err, "sqlite: scan calculation")
		}
		if err := json.Unmarshal([]byte(payload), &rec.Result); err != nil {
			return nil, eris.Wrap(err, "sqlite: unmarshal result")
		}
		records = append(records, rec)
	}
	return records, eris.Wrap(rows.Err(), "sqlite: iterate calculations")
}
