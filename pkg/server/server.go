// Package server exposes the layout engine over a JSON HTTP API.
//
// Every endpoint takes a scenario as its JSON request body, prepares a
// layout for it and answers one question about the result:
//
//	GET  /healthz
//	POST /v1/layout                       geometry document
//	POST /v1/query/rect?x=&y=&w=&h=       items intersecting a rect
//	POST /v1/query/point?x=&y=            item under a point
//	POST /v1/query/header?section=        header frame, pinned if enabled
//	POST /v1/query/next?section=&item=&dir=
//	POST /v1/query/scroll?section=&item=
//
// Errors are reported as {"error": {"code": ..., "message": ...}} with a
// status derived from the error code. Every response carries an
// X-Request-Id header.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/masonry/pkg/pipeline"
)

// MaxBodyBytes limits the size of a posted scenario.
const MaxBodyBytes = 1 << 20

// Server serves the HTTP API.
type Server struct {
	runner *pipeline.Runner
	logger *log.Logger
	router chi.Router
}

// New creates a server that computes layouts through runner.
func New(runner *pipeline.Runner, logger *log.Logger) *Server {
	if runner == nil {
		runner = pipeline.NewRunner(nil, nil, logger)
	}
	if logger == nil {
		logger = log.Default()
	}
	s := &Server{runner: runner, logger: logger}
	s.router = s.routes()
	return s
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(middleware.RealIP)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Route("/v1", func(r chi.Router) {
		r.Use(middleware.AllowContentType("application/json"))
		r.Post("/layout", s.handleLayout)
		r.Route("/query", func(r chi.Router) {
			r.Post("/rect", s.handleRect)
			r.Post("/point", s.handlePoint)
			r.Post("/header", s.handleHeader)
			r.Post("/next", s.handleNext)
			r.Post("/scroll", s.handleScroll)
		})
	})
	return r
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler { return s.router }

// ListenAndServe serves on addr until ctx is canceled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
