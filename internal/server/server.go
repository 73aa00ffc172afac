// Package server exposes the solver over HTTP with Prometheus metrics.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/katalvlaran/waterjug/internal/input"
	"github.com/katalvlaran/waterjug/internal/render"
	"github.com/katalvlaran/waterjug/jug"
)

// DefaultMaxStates is the per-request state limit used when Options.MaxStates is not positive.
const DefaultMaxStates = 1 << 20

// Options configures a Server.
type Options struct {
	// MaxStates is passed to jug.WithMaxStates for every request.
	// Values ≤ 0 select DefaultMaxStates; requests are never unbounded.
	MaxStates int
}

// Server serves /solve, /check, /healthz and /metrics.
type Server struct {
	log     *slog.Logger
	opts    Options
	reg     *prometheus.Registry
	metrics *metrics
	router  chi.Router
}

// CheckResponse is the body of GET /check.
type CheckResponse struct {
	Query    input.Query `json:"query"`
	Feasible bool        `json:"feasible"`
	GCD      int         `json:"gcd"`
	Error    string      `json:"error,omitempty"`
}

// New builds a Server with its own metrics registry.
func New(log *slog.Logger, opts Options) *Server {
	if opts.MaxStates <= 0 {
		opts.MaxStates = DefaultMaxStates
	}
	reg := prometheus.NewRegistry()
	s := &Server{
		log:     log,
		opts:    opts,
		reg:     reg,
		metrics: newMetrics(reg),
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Get("/solve", s.handleSolve)
	r.Get("/check", s.handleCheck)
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	s.router = r
	return s
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe serves on addr until ctx is done, then shuts down within timeout.
func (s *Server) ListenAndServe(ctx context.Context, addr string, timeout time.Duration) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		s.log.Info("starting waterjug server", "addr", addr)
		serverErrors <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
		s.log.Info("shutting down", "timeout", timeout)
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			_ = srv.Close()
			return fmt.Errorf("graceful shutdown did not complete in %v: %w", timeout, err)
		}
		s.log.Info("server stopped gracefully")
		return nil
	}
}

func parseQuery(r *http.Request) (input.Query, error) {
	v := r.URL.Query()
	return input.Parse(v.Get("x"), v.Get("y"), v.Get("z"))
}

func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	q, err := parseQuery(r)
	if err != nil {
		s.metrics.solves.WithLabelValues(outcomeInvalid).Inc()
		s.log.Debug("solve: invalid input", "error", err)
		s.writeJSON(w, http.StatusBadRequest, render.NewResult(q, nil, err))
		return
	}

	start := time.Now()
	sol, err := q.Solve(jug.WithContext(r.Context()), jug.WithMaxStates(s.opts.MaxStates))
	s.metrics.duration.Observe(time.Since(start).Seconds())

	res := render.NewResult(q, sol, err)
	switch {
	case err == nil:
		s.metrics.solves.WithLabelValues(outcomeSolved).Inc()
		s.metrics.moves.Observe(float64(sol.Len()))
		s.log.Debug("solved", "x", q.X, "y", q.Y, "z", q.Z, "moves", sol.Len())
		s.writeJSON(w, http.StatusOK, res)
	case errors.Is(err, jug.ErrNoSolution):
		s.metrics.solves.WithLabelValues(outcomeNoSolution).Inc()
		s.writeJSON(w, http.StatusOK, res)
	default:
		s.metrics.solves.WithLabelValues(outcomeError).Inc()
		s.log.Warn("solve failed", "x", q.X, "y", q.Y, "z", q.Z, "error", err)
		res.Error = err.Error()
		status := http.StatusInternalServerError
		if errors.Is(err, jug.ErrStateLimit) {
			status = http.StatusUnprocessableEntity
		}
		s.writeJSON(w, status, res)
	}
}

func (s *Server) handleCheck(w http.ResponseWriter, r *http.Request) {
	q, err := parseQuery(r)
	if err != nil {
		s.writeJSON(w, http.StatusBadRequest, CheckResponse{Query: q, Error: err.Error()})
		return
	}
	s.writeJSON(w, http.StatusOK, CheckResponse{
		Query:    q,
		Feasible: jug.Feasible(q.X, q.Y, q.Z),
		GCD:      jug.GCD(q.X, q.Y),
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.log.Error("response encode failed", "error", err)
	}
}
