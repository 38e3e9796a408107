package server

import (
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"storesearch/internal/handlers"
	"storesearch/internal/handlers/api"
	"storesearch/internal/middleware"
)

// Deps are the services the routes are wired to.
type Deps struct {
	Executor     api.Executor
	Recent       api.RecentStore
	Popular      []string
	SuggestLimit int

	// Stats is nil when statistics are disabled.
	Stats    api.TopCategoriesStore
	Database handlers.Pinger

	CatalogHealth handlers.HealthReporter
	Verifier      middleware.TokenVerifier
	Gatherer      prometheus.Gatherer
}

// RegisterRoutes registers all application routes.
func (s *Server) RegisterRoutes(deps Deps) {
	probeHandler := handlers.NewProbeHandler(deps.Database, deps.CatalogHealth)
	s.App.Get("/healthz", probeHandler.Liveness)
	s.App.Get("/readyz", probeHandler.Readiness)

	if deps.Gatherer != nil {
		s.App.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{})))
	}

	shopper := middleware.NewShopperMiddleware(deps.Verifier)

	intentHandler := api.NewIntentHandler()
	searchHandler := api.NewSearchHandler(deps.Executor, deps.Recent)
	suggestHandler := api.NewSuggestHandler(deps.Recent, deps.Popular, deps.SuggestLimit)
	recentHandler := api.NewRecentHandler(deps.Recent)

	v1 := s.App.Group("/api/v1")
	v1.Get("/search/strategy", intentHandler.Strategy)
	v1.Get("/keywords", intentHandler.Keywords)
	v1.Get("/categories/:category/related", intentHandler.Related)

	v1.Get("/search", shopper.Identify, searchHandler.Search)
	v1.Get("/search/suggestions", shopper.Identify, suggestHandler.Suggestions)

	v1.Get("/recent", shopper.Identify, recentHandler.List)
	v1.Post("/recent", shopper.Identify, recentHandler.Add)
	v1.Delete("/recent", shopper.Identify, recentHandler.Clear)
	v1.Delete("/recent/:query", shopper.Identify, recentHandler.Remove)

	if deps.Stats != nil {
		statsHandler := api.NewStatsHandler(deps.Stats)
		v1.Get("/stats/top-categories", statsHandler.TopCategories)
	}
}
