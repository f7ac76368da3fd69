// Package server serves the dashboard page and the JSON API over a local
// port. It reads from one immutable snapshot built at startup.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/datalab-tn/povmap/internal/config"
	"github.com/datalab-tn/povmap/internal/model"
)

// Server holds the loaded snapshot and the HTTP stack around it.
type Server struct {
	snap    *model.Snapshot
	cfg     config.ServerConfig
	limiter *rate.Limiter
	router  chi.Router
}

// New builds a Server over an already-loaded snapshot.
func New(snap *model.Snapshot, cfg config.ServerConfig) *Server {
	s := &Server{
		snap:    snap,
		cfg:     cfg,
		limiter: rate.NewLimiter(rate.Limit(cfg.RateLimit), cfg.RateBurst),
	}

	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
	}))
	r.Use(s.rateLimit)

	r.Get("/healthz", s.handleHealth)
	r.Get("/api/summary", s.handleSummary)
	r.Get("/api/governorates", s.handleGovernorates)
	r.Get("/api/regions", s.handleRegions)
	r.Get("/api/geojson", s.handleGeoJSON)
	r.Get("/", s.handleIndex)

	s.router = r
	return s
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", s.cfg.Port),
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		zap.L().Info("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	zap.L().Info("starting server",
		zap.Int("port", s.cfg.Port),
		zap.String("load_id", s.snap.LoadID),
	)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return eris.Wrap(err, "server: listen")
	}
	return nil
}
