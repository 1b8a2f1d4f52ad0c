// Package store persists ingested expenditure snapshots and
// calculation history. Two backends exist: SQLite for local use and
// Postgres for shared deployments.
package store

import (
	"context"
	"time"

	"github.com/rotisserie/eris"

	"github.com/bulgogipedas/isUMREnough/internal/model"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = eris.New("store: not found")

// Snapshot is a persisted ingestion result for one source.
type Snapshot struct {
	ID        string                        `json:"id"`
	Source    string                        `json:"source"`
	Data      map[string]model.ProvinceData `json:"data"`
	CreatedAt time.Time                     `json:"created_at"`
}

// Store defines persistence for snapshots and calculation history.
type Store interface {
	SaveSnapshot(ctx context.Context, source string, data map[string]model.ProvinceData) (*Snapshot, error)
	LatestSnapshot(ctx context.Context, source string) (*Snapshot, error)

	RecordCalculation(ctx context.Context, provinceID string, income float64, dependents int, result model.CalculationResult) (*model.CalculationRecord, error)
	ListCalculations(ctx context.Context, provinceID string, limit int) ([]model.CalculationRecord, error)

	Migrate(ctx context.Context) error
	Close() error
}

// Open creates a Store for the configured driver.
func Open(ctx context.Context, driver, dsn string) (Store, error) {
	switch driver {
	case "sqlite", "":
		return NewSQLite(dsn)
	case "postgres":
		return NewPostgres(ctx, dsn)
	default:
		return nil, eris.Errorf("store: unknown driver %q", driver)
	}
}
