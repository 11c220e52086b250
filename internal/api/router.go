package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/creatorhub/marketplace/internal/api/handler"
	"github.com/creatorhub/marketplace/internal/api/middleware"
	"github.com/creatorhub/marketplace/internal/core/domain"
	"github.com/creatorhub/marketplace/internal/core/service"
	mongorepo "github.com/creatorhub/marketplace/internal/infrastructure/db/mongo"
	rediscache "github.com/creatorhub/marketplace/internal/infrastructure/db/redis"
	"github.com/creatorhub/marketplace/internal/pkg/config"
)

// NewRouter builds and returns the Echo instance with all routes
// registered. Every dependency is constructed here and injected
// explicitly; nothing reaches for ambient state.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORS())
	e.Use(echoprometheus.NewMiddleware("creatorhub"))

	// --- Repositories ---
	userRepo := mongorepo.NewUserRepository(db)
	profileRepo := mongorepo.NewProfileRepository(db)
	listingRepo := mongorepo.NewListingRepository(db)
	orderRepo := mongorepo.NewOrderRepository(db)
	listingCache := rediscache.NewListingCache(rdb)

	// --- Services ---
	authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.TokenTTL, log)
	profileService := service.NewProfileService(profileRepo, userRepo, log)
	listingService := service.NewListingService(listingRepo, listingCache, log)
	orderService := service.NewOrderService(orderRepo, listingRepo, log)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	profileHandler := handler.NewProfileHandler(profileService)
	listingHandler := handler.NewListingHandler(listingService)
	orderHandler := handler.NewOrderHandler(orderService)
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	auth := middleware.Auth(authService)
	creatorOnly := middleware.RequireRole(domain.RoleCreator)

	// --- Auth ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.GET("/auth/me", authHandler.Me, auth)

	// --- Creator profiles ---
	e.POST("/creators/profile", profileHandler.Create, auth, creatorOnly)
	e.GET("/creators/profile", profileHandler.Get, auth)
	e.PUT("/creators/profile", profileHandler.Update, auth)
	e.GET("/creators/:id/services", listingHandler.ListByCreator)

	// --- Service listings ---
	e.POST("/services", listingHandler.Create, auth, creatorOnly)
	e.GET("/services", listingHandler.Search)
	e.GET("/services/:id", listingHandler.Get)
	e.PUT("/services/:id", listingHandler.Update, auth, creatorOnly)

	// --- Orders ---
	e.POST("/orders", orderHandler.Place, auth)
	e.GET("/orders", orderHandler.List, auth)

	// --- Health probes (no auth required) ---
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
