package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/healthy-campus/hurs/frontend"
	"github.com/healthy-campus/hurs/pkg/domain/model"
	"github.com/healthy-campus/hurs/pkg/usecase"
	"github.com/healthy-campus/hurs/pkg/utils/apperr"
	"github.com/healthy-campus/hurs/pkg/utils/metrics"
	"github.com/m-mizutani/ctxlog"
)

// Server represents the HTTP server
type Server struct {
	*http.Server
	router chi.Router
}

// NewServer creates a new HTTP server exposing the scoring and reporting
// API, the metrics endpoint and the embedded frontend
func NewServer(
	ctx context.Context,
	addr string,
	rubric *model.Rubric,
	scoringUC *usecase.Scoring,
	reportUC *usecase.Report,
) *Server {
	router := chi.NewRouter()

	// Apply global middleware
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(LoggingMiddleware(ctx))
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	handler := NewHandler(rubric, scoringUC, reportUC)

	// Health check
	router.Get("/health", handleHealth)

	// Metrics
	router.Handle("/metrics", metrics.Handler())

	// API routes
	router.Route("/api", func(r chi.Router) {
		r.Route("/rubric", func(r chi.Router) {
			r.Get("/items", handler.HandleListItems)
			r.Get("/items/{item}", handler.HandleItemQuestions)
		})
		r.Post("/scores", handler.HandleSubmit)
		r.Route("/reports", func(r chi.Router) {
			r.Get("/", handler.HandleReportAll)
			r.Get("/{item}", handler.HandleReportItem)
		})
		r.Get("/export", handler.HandleExport)
	})

	// Frontend routes (embedded single-page UI)
	fs, err := frontend.GetHTTPFS()
	if err != nil {
		ctxlog.From(ctx).Warn("Failed to get embedded frontend, using fallback",
			"error", err,
		)
		router.Get("/*", handleFallbackHome)
	} else {
		ctxlog.From(ctx).Info("Serving frontend from embedded files")
		router.Handle("/*", http.FileServer(fs))
	}

	return &Server{
		Server: &http.Server{
			Addr:              addr,
			Handler:           router,
			ReadHeaderTimeout: 15 * time.Second,
		},
		router: router,
	}
}

// Router returns the chi router (useful for testing)
func (s *Server) Router() chi.Router {
	return s.router
}

// handleHealth handles health check requests
func handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "hurs",
	})
}

// handleFallbackHome handles the root path when the frontend is not built
func handleFallbackHome(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(`<!DOCTYPE html>
<html>
<head><title>HURS Scoring Tool</title></head>
<body>
    <h1>Healthy University Rating System</h1>
    <p>The scoring UI is not built. The JSON API is available under /api.</p>
</body>
</html>`)); err != nil {
		ctxlog.From(r.Context()).Error("Failed to write fallback home page", "error", err)
	}
}

// writeJSON writes a JSON response with the given status
func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		ctxlog.From(r.Context()).Error("Failed to encode response", "error", err)
	}
}

// writeError maps domain errors to HTTP statuses and writes a JSON error
// body
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	apperr.Handle(r.Context(), err)

	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, model.ErrItemNotFound), errors.Is(err, model.ErrGroupNotFound):
		status = http.StatusNotFound
	case errors.Is(err, model.ErrInvalidScore), errors.Is(err, model.ErrEmptyAssessor):
		status = http.StatusBadRequest
	case errors.Is(err, model.ErrStorageUnavailable):
		status = http.StatusServiceUnavailable
	}

	writeJSON(w, r, status, map[string]string{
		"error": err.Error(),
	})
}
