package api

import (
	"carbon-logistics-service/internal/api/handlers"
	"carbon-logistics-service/internal/ports"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

type Deps struct {
	Parts          ports.PartRepository
	Calculator     handlers.Calculator
	DB             handlers.Pinger
	Logger         *zap.Logger
	AllowedOrigins []string
}

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// Handlers stay unaware of concrete adapters.
func NewRouter(d Deps) http.Handler {
	logger := d.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	partHandler := &handlers.PartHandler{Repo: d.Parts}
	calcHandler := &handlers.CalculateHandler{Calc: d.Calculator}
	healthHandler := &handlers.HealthHandler{DB: d.DB}

	r := chi.NewRouter()
	r.Use(requestContext(logger))
	r.Use(accessLog)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: d.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID"},
		MaxAge:         300,
	}))

	r.Get("/health", healthHandler.Health)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Get("/manufacturers", partHandler.Manufacturers)
		r.Get("/parts", partHandler.Parts)
		r.Post("/calculate", calcHandler.Calculate)
	})

	return r
}
