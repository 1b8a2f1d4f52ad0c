package main

import (
	"context"
	"errors"
	"io"
	"time"

	"go.uber.org/zap"

	"github.com/bulgogipedas/isUMREnough/internal/expenditure"
	"github.com/bulgogipedas/isUMREnough/internal/fetcher"
	"github.com/bulgogipedas/isUMREnough/internal/model"
	"github.com/bulgogipedas/isUMREnough/internal/store"
)

// appEnv bundles the collaborators shared by commands.
type appEnv struct {
	Store   store.Store
	Fetcher *fetcher.HTTPFetcher
	Loader  *expenditure.Loader
}

// initEnv opens the store and wires the session loader around the
// configured expenditure source.
func initEnv(ctx context.Context) (*appEnv, error) {
	st, err := store.Open(ctx, cfg.Store.Driver, cfg.Store.DSN)
	if err != nil {
		return nil, err
	}
	if err := st.Migrate(ctx); err != nil {
		st.Close() //nolint:errcheck
		return nil, err
	}

	f := fetcher.New(fetcher.Options{
		UserAgent:    cfg.Fetch.UserAgent,
		Timeout:      time.Duration(cfg.Fetch.TimeoutSecs) * time.Second,
		MaxRetries:   cfg.Fetch.MaxRetries,
		RateLimiters: fetcher.DefaultRateLimiters(),
	})

	env := &appEnv{Store: st, Fetcher: f}
	env.Loader = expenditure.NewLoader(env.openDataSource)
	return env, nil
}

func (e *appEnv) openDataSource(ctx context.Context) (io.ReadCloser, error) {
	return e.Fetcher.Open(ctx, cfg.Data.Source)
}

// readGeoSource reads a GeoJSON document from a URL or local path.
func readGeoSource(ctx context.Context, env *appEnv, source string) ([]byte, error) {
	r, err := env.Fetcher.Open(ctx, source)
	if err != nil {
		return nil, err
	}
	defer r.Close() //nolint:errcheck
	return io.ReadAll(r)
}

// Close releases held resources.
func (e *appEnv) Close() {
	if err := e.Store.Close(); err != nil {
		zap.L().Warn("closing store", zap.Error(err))
	}
}

// provinceData returns the session mapping, preferring (in order) the
// in-memory cache, the latest persisted snapshot, and a fresh ingest.
// refresh skips both caches and re-ingests from the source.
func (e *appEnv) provinceData(ctx context.Context, refresh bool) (map[string]model.ProvinceData, error) {
	if refresh {
		e.Loader.Invalidate()
	} else if !e.Loader.Loaded() {
		if snap, err := e.Store.LatestSnapshot(ctx, cfg.Data.Source); err == nil {
			zap.L().Debug("using persisted snapshot",
				zap.String("source", cfg.Data.Source),
				zap.Time("created_at", snap.CreatedAt),
			)
			return snap.Data, nil
		} else if !errors.Is(err, store.ErrNotFound) {
			return nil, err
		}
	}

	data, err := e.Loader.Load(ctx)
	if err != nil {
		return nil, err
	}

	if _, err := e.Store.SaveSnapshot(ctx, cfg.Data.Source, data); err != nil {
		zap.L().Warn("persisting snapshot failed", zap.Error(err))
	}
	return data, nil
}
