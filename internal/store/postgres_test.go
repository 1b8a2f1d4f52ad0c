package store

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bulgogipedas/isUMREnough/internal/model"
)

// newMockPostgresStore creates a PostgresStore backed by pgxmock.
func newMockPostgresStore(t *testing.T) (*PostgresStore, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { mock.Close() })

	return &PostgresStore{pool: mock}, mock
}

func TestPostgresSaveSnapshot(t *testing.T) {
	s, mock := newMockPostgresStore(t)

	mock.ExpectExec(`INSERT INTO snapshots`).
		WithArgs(pgxmock.AnyArg(), "bps-2024.csv", pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	snap, err := s.SaveSnapshot(context.Background(), "bps-2024.csv", testData())
	require.NoError(t, err)
	assert.NotEmpty(t, snap.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresLatestSnapshot(t *testing.T) {
	s, mock := newMockPostgresStore(t)

	payload, err := json.Marshal(testData())
	require.NoError(t, err)

	mock.ExpectQuery(`SELECT id, source, data, created_at FROM snapshots WHERE source = \$1`).
		WithArgs("bps-2024.csv").
		WillReturnRows(pgxmock.NewRows([]string{"id", "source", "data", "created_at"}).
			AddRow("snap-1", "bps-2024.csv", payload, time.Now().UTC()))

	snap, err := s.LatestSnapshot(context.Background(), "bps-2024.csv")
	require.NoError(t, err)
	assert.Equal(t, "snap-1", snap.ID)
	assert.Equal(t, testData(), snap.Data)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresLatestSnapshotNotFound(t *testing.T) {
	s, mock := newMockPostgresStore(t)

	mock.ExpectQuery(`SELECT id, source, data, created_at FROM snapshots`).
		WithArgs("missing").
		WillReturnRows(pgxmock.NewRows([]string{"id", "source", "data", "created_at"}))

	_, err := s.LatestSnapshot(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRecordCalculation(t *testing.T) {
	s, mock := newMockPostgresStore(t)

	mock.ExpectExec(`INSERT INTO calculations`).
		WithArgs(pgxmock.AnyArg(), "bali", float64(3000000), 2, pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	rec, err := s.RecordCalculation(context.Background(), "bali", 3000000, 2, model.CalculationResult{Status: model.StatusDeficit})
	require.NoError(t, err)
	assert.Equal(t, "bali", rec.ProvinceID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresListCalculations(t *testing.T) {
	s, mock := newMockPostgresStore(t)

	result := model.CalculationResult{Status: model.StatusSurplus, Balance: 1000000}
	payload, err := json.Marshal(result)
	require.NoError(t, err)

	mock.ExpectQuery(`SELECT id, province_id, income, dependents, result, created_at FROM calculations WHERE province_id = \$1`).
		WithArgs("dki-jakarta", 5).
		WillReturnRows(pgxmock.NewRows([]string{"id", "province_id", "income", "dependents", "result", "created_at"}).
			AddRow("calc-1", "dki-jakarta", float64(5000000), 2, payload, time.Now().UTC()))

	records, err := s.ListCalculations(context.Background(), "dki-jakarta", 5)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, result, records[0].Result)
	assert.NoError(t, mock.ExpectationsWereMet())
}
