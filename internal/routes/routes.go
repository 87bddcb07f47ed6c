package routes

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"tubelens/internal/handlers"
	"tubelens/internal/middlewares"
)

// SetupRoutes wires the long-running server surface. CORS is deliberately
// permissive: this service exposes only public-data analysis.
func SetupRoutes(mw *middlewares.MiddlewareHandler, health *handlers.HealthHandler, analysis *handlers.AnalysisHandler) *chi.Mux {
	r := chi.NewRouter()

	r.Use(mw.RequestLogger)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/health", health.HandlerHealth)
	r.Post("/summarize", analysis.HandlerSummarize)

	return r
}
