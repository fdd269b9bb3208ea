// ABOUTME: Router construction for the capture API
// ABOUTME: Wires CORS, request logging, panic recovery, and routes

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"brief-api/api/handlers"
	"brief-api/api/middleware"
	"brief-api/core/interfaces"
)

// Config holds everything the router needs.
type Config struct {
	Logger         interfaces.Logger
	CaptureService handlers.CaptureService
}

// NewRouter builds the HTTP router. Share-sheet clients call from arbitrary
// origins, so CORS is wide open.
func NewRouter(cfg Config) chi.Router {
	router := chi.NewRouter()

	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))
	router.Use(middleware.RequestLoggingMiddleware(cfg.Logger))
	router.Use(chimiddleware.Recoverer)

	router.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusMethodNotAllowed)
		w.Write([]byte(`{"error":"method not allowed"}`))
	})

	captureHandler := handlers.NewCaptureHandler(cfg.CaptureService, cfg.Logger)
	router.Post("/capture", captureHandler.ServeHTTP)
	router.Get("/health", handlers.HealthHandler)

	return router
}
