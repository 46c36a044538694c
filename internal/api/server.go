// Package api provides the HTTP API server and handlers for the Curator
// application.
package api

import (
	"log/slog"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/curatorapp/curator-server/internal/domain"
	"github.com/curatorapp/curator-server/internal/service"
)

// Services groups the application services the handlers depend on.
type Services struct {
	Search    *service.SearchService
	Favorites *service.FavoritesService
}

// Server holds dependencies for HTTP handlers.
type Server struct {
	services *Services
	instance *domain.Instance
	router   *chi.Mux
	api      huma.API
	logger   *slog.Logger
}

// NewServer creates a new HTTP server with all routes configured.
func NewServer(services *Services, instance *domain.Instance, logger *slog.Logger) *Server {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Compress(5))

	// The web client is served from a different origin during development.
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	humaConfig := huma.DefaultConfig("Curator API", "1.0.0")
	// The web client expects response bodies exactly as declared. The
	// schema link transformer is installed by a create hook at adapter
	// construction, so the hook list has to go too, not just Transformers.
	humaConfig.CreateHooks = nil
	humaConfig.Transformers = nil
	api := humachi.New(router, humaConfig)
	RegisterErrorHandler()

	s := &Server{
		services: services,
		instance: instance,
		router:   router,
		api:      api,
		logger:   logger,
	}

	s.registerHealthRoutes()
	s.registerInstanceRoutes()
	s.registerSearchRoutes()
	s.registerFavoritesRoutes()

	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}
