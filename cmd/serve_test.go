//go:build !integration

package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bulgogipedas/isUMREnough/internal/geo"
	"github.com/bulgogipedas/isUMREnough/internal/model"
	"github.com/bulgogipedas/isUMREnough/internal/store"
)

// fakeStore records calculations in memory so handler tests don't need
// a database.
type fakeStore struct {
	calculations []model.CalculationRecord
}

func (f *fakeStore) SaveSnapshot(ctx context.Context, source string, data map[string]model.ProvinceData) (*store.Snapshot, error) {
	return &store.Snapshot{ID: uuid.NewString(), Source: source, Data: data}, nil
}

func (f *fakeStore) LatestSnapshot(ctx context.Context, source string) (*store.Snapshot, error) {
	return nil, store.ErrNotFound
}

func (f *fakeStore) RecordCalculation(ctx context.Context, provinceID string, income float64, dependents int, result model.CalculationResult) (*model.CalculationRecord, error) {
	rec := model.CalculationRecord{
		ID:         uuid.NewString(),
		ProvinceID: provinceID,
		Income:     income,
		Dependents: dependents,
		Result:     result,
	}
	f.calculations = append(f.calculations, rec)
	return &rec, nil
}

func (f *fakeStore) ListCalculations(ctx context.Context, provinceID string, limit int) ([]model.CalculationRecord, error) {
	return f.calculations, nil
}

func (f *fakeStore) Migrate(ctx context.Context) error { return nil }
func (f *fakeStore) Close() error                      { return nil }

func newTestAPI() (*api, *fakeStore) {
	st := &fakeStore{}
	a := &api{
		data: map[string]model.ProvinceData{
			"dki-jakarta": {
				Name:                 "DKI Jakarta",
				ExpenditurePerCapita: 2000000,
				ExpenditureFood:      900000,
				ExpenditureNonFood:   1100000,
				UMP:                  5067381,
			},
			"jawa-barat": {
				Name:                 "Jawa Barat",
				ExpenditurePerCapita: 1500000,
				ExpenditureFood:      700000,
				ExpenditureNonFood:   800000,
				UMP:                  2191238,
			},
			"papua": {
				Name: "Papua",
				UMP:  4285848,
			},
		},
		store: st,
	}
	return a, st
}

func doRequest(t *testing.T, a *api, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	a.router().ServeHTTP(rec, req)
	return rec
}

func TestServeHealth(t *testing.T) {
	t.Parallel()

	a, _ := newTestAPI()
	rec := doRequest(t, a, http.MethodGet, "/health", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestServeProvinces(t *testing.T) {
	t.Parallel()

	a, _ := newTestAPI()
	rec := doRequest(t, a, http.MethodGet, "/api/provinces", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var options []model.ProvinceOption
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &options))

	// Only provinces with expenditure data are listed.
	require.Len(t, options, 2)
	assert.Equal(t, "dki-jakarta", options[0].ID)
	assert.Equal(t, "jawa-barat", options[1].ID)
}

func TestServeCalculate(t *testing.T) {
	t.Parallel()

	a, st := newTestAPI()
	rec := doRequest(t, a, http.MethodPost, "/api/calculate", calculateRequest{
		ProvinceID: "dki-jakarta",
		Income:     5000000,
		Dependents: 2,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Result   model.CalculationResult `json:"result"`
		Analysis string                  `json:"analysis"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.InDelta(t, 4000000, resp.Result.TotalExpense, 0.001)
	assert.InDelta(t, 1000000, resp.Result.Balance, 0.001)
	assert.Equal(t, model.StatusSurplus, resp.Result.Status)
	assert.NotEmpty(t, resp.Analysis)

	require.Len(t, st.calculations, 1)
	assert.Equal(t, "dki-jakarta", st.calculations[0].ProvinceID)
}

func TestServeCalculateErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		req  calculateRequest
		code int
	}{
		{"unknown province", calculateRequest{ProvinceID: "atlantis", Income: 1, Dependents: 1}, http.StatusNotFound},
		{"no expenditure data", calculateRequest{ProvinceID: "papua", Income: 1, Dependents: 1}, http.StatusUnprocessableEntity},
		{"negative income", calculateRequest{ProvinceID: "dki-jakarta", Income: -1, Dependents: 1}, http.StatusBadRequest},
		{"zero dependents", calculateRequest{ProvinceID: "dki-jakarta", Income: 1, Dependents: 0}, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			a, st := newTestAPI()
			rec := doRequest(t, a, http.MethodPost, "/api/calculate", tt.req)
			assert.Equal(t, tt.code, rec.Code)
			assert.Empty(t, st.calculations)
		})
	}
}

func TestServeCalculateBadBody(t *testing.T) {
	t.Parallel()

	a, _ := newTestAPI()
	req := httptest.NewRequest(http.MethodPost, "/api/calculate", bytes.NewBufferString("{not json"))
	rec := httptest.NewRecorder()
	a.router().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestServeCompare(t *testing.T) {
	t.Parallel()

	a, _ := newTestAPI()
	rec := doRequest(t, a, http.MethodPost, "/api/compare", compareRequest{
		OriginID:   "dki-jakarta",
		TargetID:   "jawa-barat",
		Income:     5000000,
		Dependents: 2,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Origin  model.CalculationResult `json:"origin"`
		Target  model.CalculationResult `json:"target"`
		Insight model.ComparisonInsight `json:"insight"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	// Jawa Barat is cheaper, so the target surplus is higher.
	assert.Greater(t, resp.Target.Balance, resp.Origin.Balance)
	assert.True(t, resp.Insight.IsBetter)
	assert.InDelta(t, resp.Target.Balance-resp.Origin.Balance, resp.Insight.DiffSurplus, 0.001)
}

func TestServeCompareUnknownTarget(t *testing.T) {
	t.Parallel()

	a, _ := newTestAPI()
	rec := doRequest(t, a, http.MethodPost, "/api/compare", compareRequest{
		OriginID:   "dki-jakarta",
		TargetID:   "atlantis",
		Income:     5000000,
		Dependents: 2,
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestServeGeoJSON(t *testing.T) {
	t.Parallel()

	const fixture = `{"type":"FeatureCollection","features":[{"type":"Feature","properties":{"Propinsi":"DKI JAKARTA"},"geometry":{"type":"Polygon","coordinates":[[[106.7,-6.1],[106.9,-6.1],[106.9,-6.3],[106.7,-6.1]]]}}]}`

	a, _ := newTestAPI()
	collection, report, err := geo.Normalize([]byte(fixture), geo.DefaultBridge())
	require.NoError(t, err)
	a.collection = collection
	a.geoReport = report

	rec := doRequest(t, a, http.MethodGet, "/api/geojson", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Features []struct {
			NormalizedID string          `json:"normalized_id"`
			Geometry     json.RawMessage `json:"geometry"`
		} `json:"features"`
		Report geo.JoinReport `json:"report"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	require.Len(t, resp.Features, 1)
	assert.Equal(t, "dki-jakarta", resp.Features[0].NormalizedID)
	// The whole point of the endpoint: geometry must come through.
	assert.Contains(t, string(resp.Features[0].Geometry), `"Polygon"`)
	assert.Equal(t, 1, resp.Report.Joined)
}

func TestServeGeoJSONUnavailable(t *testing.T) {
	t.Parallel()

	a, _ := newTestAPI()
	rec := doRequest(t, a, http.MethodGet, "/api/geojson", nil)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
