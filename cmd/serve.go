package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/bulgogipedas/isUMREnough/internal/expenditure"
	"github.com/bulgogipedas/isUMREnough/internal/finance"
	"github.com/bulgogipedas/isUMREnough/internal/geo"
	"github.com/bulgogipedas/isUMREnough/internal/model"
	"github.com/bulgogipedas/isUMREnough/internal/store"
)

var servePort int

// api holds the request-serving state: the session dataset, the
// normalized geometry (may be nil when geometry failed to load), and
// the store for history.
type api struct {
	data       map[string]model.ProvinceData
	collection *geo.Collection
	geoReport  geo.JoinReport
	store      store.Store
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		if err := cfg.Validate("serve"); err != nil {
			return err
		}

		env, err := initEnv(ctx)
		if err != nil {
			return err
		}
		defer env.Close()

		data, err := env.provinceData(ctx, false)
		if err != nil {
			return err
		}

		a := &api{data: data, store: env.Store}

		// Geometry is optional: the API degrades to calculation-only.
		if raw, err := readGeoSource(ctx, env, cfg.Geo.Source); err != nil {
			zap.L().Warn("geometry unavailable", zap.Error(err))
		} else if collection, report, err := geo.Normalize(raw, loadBridge()); err != nil {
			zap.L().Warn("geometry normalization failed", zap.Error(err))
		} else {
			a.collection = collection
			a.geoReport = report
		}

		port := servePort
		if port == 0 {
			port = cfg.Server.Port
		}

		srv := &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           a.router(),
			ReadHeaderTimeout: 10 * time.Second,
		}

		errCh := make(chan error, 1)
		go func() {
			zap.L().Info("http api listening", zap.Int("port", port))
			errCh <- srv.ListenAndServe()
		}()

		select {
		case <-ctx.Done():
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		case err := <-errCh:
			return err
		}
	},
}

func (a *api) router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
	}))

	r.Get("/health", a.handleHealth)
	r.Route("/api", func(r chi.Router) {
		r.Get("/provinces", a.handleProvinces)
		r.Post("/calculate", a.handleCalculate)
		r.Post("/compare", a.handleCompare)
		r.Get("/geojson", a.handleGeoJSON)
	})
	return r
}

func (a *api) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (a *api) handleProvinces(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, expenditure.Options(a.data))
}

type calculateRequest struct {
	ProvinceID string  `json:"province_id"`
	Income     float64 `json:"income"`
	Dependents int     `json:"dependents"`
}

func (a *api) handleCalculate(w http.ResponseWriter, r *http.Request) {
	var req calculateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Income < 0 || req.Dependents < 1 {
		writeError(w, http.StatusBadRequest, "income must be >= 0 and dependents >= 1")
		return
	}

	province, ok := a.data[req.ProvinceID]
	if !ok {
		writeError(w, http.StatusNotFound, "unknown province id")
		return
	}

	result, ok := finance.Calculate(req.Income, req.Dependents, province)
	if !ok {
		writeError(w, http.StatusUnprocessableEntity, "no expenditure data for province")
		return
	}

	if _, err := a.store.RecordCalculation(r.Context(), req.ProvinceID, req.Income, req.Dependents, *result); err != nil {
		zap.L().Warn("recording calculation failed", zap.Error(err))
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"result":   result,
		"analysis": finance.AnalysisText(result.IncomeVsExpenseRatio),
	})
}

type compareRequest struct {
	OriginID   string  `json:"origin_id"`
	TargetID   string  `json:"target_id"`
	Income     float64 `json:"income"`
	Dependents int     `json:"dependents"`
}

func (a *api) handleCompare(w http.ResponseWriter, r *http.Request) {
	var req compareRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Income < 0 || req.Dependents < 1 {
		writeError(w, http.StatusBadRequest, "income must be >= 0 and dependents >= 1")
		return
	}

	origin, ok := a.data[req.OriginID]
	if !ok {
		writeError(w, http.StatusNotFound, "unknown origin province id")
		return
	}
	target, ok := a.data[req.TargetID]
	if !ok {
		writeError(w, http.StatusNotFound, "unknown target province id")
		return
	}

	originResult, ok := finance.Calculate(req.Income, req.Dependents, origin)
	if !ok {
		writeError(w, http.StatusUnprocessableEntity, "no expenditure data for origin province")
		return
	}
	targetResult, ok := finance.Calculate(req.Income, req.Dependents, target)
	if !ok {
		writeError(w, http.StatusUnprocessableEntity, "no expenditure data for target province")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"origin":  originResult,
		"target":  targetResult,
		"insight": finance.Compare(*originResult, *targetResult),
	})
}

func (a *api) handleGeoJSON(w http.ResponseWriter, r *http.Request) {
	if a.collection == nil {
		writeError(w, http.StatusServiceUnavailable, "geometry not loaded")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"features": a.collection.Features(),
		"report":   a.geoReport,
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "listen port (default: configured server.port)")
	rootCmd.AddCommand(serveCmd)
}
