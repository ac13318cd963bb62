package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/cwalinapj/Sitebuilder1.0-sub001/application/recommendation"
	"github.com/cwalinapj/Sitebuilder1.0-sub001/infrastructure/config"
	"github.com/cwalinapj/Sitebuilder1.0-sub001/interfaces/http/rest/handlers"
	"github.com/cwalinapj/Sitebuilder1.0-sub001/interfaces/http/rest/middleware"
	"github.com/cwalinapj/Sitebuilder1.0-sub001/pkg/ratelimit"
)

// Router creates and configures the HTTP router
type Router struct {
	cfg         *config.Config
	service     *recommendation.Service
	rateLimiter *ratelimit.IPRateLimiter
	logger      *zap.Logger
}

// NewRouter creates a new router instance
func NewRouter(
	cfg *config.Config,
	service *recommendation.Service,
	rateLimiter *ratelimit.IPRateLimiter,
	logger *zap.Logger,
) *Router {
	return &Router{
		cfg:         cfg,
		service:     service,
		rateLimiter: rateLimiter,
		logger:      logger,
	}
}

// Setup configures all routes and middleware
func (rt *Router) Setup() http.Handler {
	router := chi.NewRouter()

	// Global middleware
	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.RealIP)
	router.Use(chimiddleware.Recoverer)
	router.Use(middleware.Logger(rt.logger))

	// CORS configuration
	if rt.cfg.EnableCORS {
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"http://localhost:3000", "https://*.sitebuilder.dev"},
			AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID"},
			ExposedHeaders:   []string{"X-Request-ID"},
			AllowCredentials: true,
			MaxAge:           300,
		}))
	}

	// Health checks
	router.Get("/", rt.healthCheck)
	router.Get("/health", rt.healthCheck)

	handler := handlers.NewPersonalizationHandler(rt.service, rt.logger)

	router.Group(func(r chi.Router) {
		r.Use(middleware.RateLimit(rt.rateLimiter, rt.logger))

		r.Post("/design-sample", handler.IngestDesignSample)
		r.Post("/event", handler.IngestEvent)
		r.Post("/recommend", handler.Recommend)
	})

	return router
}

// healthCheck handles health check requests
func (rt *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"ok":true,"status":"healthy"}`))
}
