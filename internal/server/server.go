package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/pageza/recipefinder/backend/config"
	"github.com/pageza/recipefinder/backend/internal/api"
	"github.com/pageza/recipefinder/backend/internal/database"
	"github.com/pageza/recipefinder/backend/internal/logger"
	"github.com/pageza/recipefinder/backend/internal/mealdb"
	"github.com/pageza/recipefinder/backend/internal/middleware"
	"github.com/pageza/recipefinder/backend/internal/router"
	"github.com/pageza/recipefinder/backend/internal/service"
	"github.com/pageza/recipefinder/backend/internal/storage"
)

// Dependencies are the connections the server is built on. Redis is optional.
type Dependencies struct {
	DB     *gorm.DB
	Lookup mealdb.Lookup
	Redis  *redis.Client
}

// Server represents the HTTP server
type Server struct {
	router *gin.Engine
	http   *http.Server
	logger *zap.Logger
}

// New wires the services onto deps and builds the router.
func New(cfg *config.Config, deps Dependencies, log *zap.Logger) *Server {
	log = logger.OrNop(log)
	engine := router.SetupRouter(cfg, log, NewServices(cfg, deps, log))

	return &Server{
		router: engine,
		logger: log,
		http: &http.Server{
			Addr:              cfg.ListenAddr(),
			Handler:           engine,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}
}

// NewServices builds the application services on deps.
func NewServices(cfg *config.Config, deps Dependencies, log *zap.Logger) api.Services {
	store := storage.NewLocal(deps.DB)
	recipes := service.NewRecipeService(store, deps.Lookup, log)

	svcs := api.Services{
		Search:       service.NewSearchService(deps.Lookup, log),
		Suggestions:  service.NewIngredientSuggester(),
		Recipes:      recipes,
		Collection:   service.NewCollectionService(store, recipes, log),
		ShoppingList: service.NewShoppingListService(store, recipes, log),
		CheckStorage: func(ctx context.Context) error {
			return database.HealthCheck(ctx, deps.DB)
		},
	}

	if deps.Redis != nil && cfg.SearchRateLimit > 0 {
		svcs.SearchLimiter = middleware.NewSearchRateLimiter(deps.Redis, cfg.SearchRateLimit, log).RateLimitMiddleware()
	}
	return svcs
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start serves until Shutdown is called. It returns nil after a clean
// shutdown.
func (s *Server) Start() error {
	s.logger.Info("starting server", zap.String("addr", s.http.Addr))
	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown gracefully stops the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}
