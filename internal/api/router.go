package api

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/time/rate"

	_ "github.com/journalapp/admin-service/docs"
	"github.com/journalapp/admin-service/internal/api/handler"
	"github.com/journalapp/admin-service/internal/api/middleware"
	"github.com/journalapp/admin-service/internal/core/ports"
)

// Dependencies carries everything the router wires into handlers.
type Dependencies struct {
	Admin ports.AdminService
	Log   zerolog.Logger

	// DB and Redis feed the readiness probe. Redis is nil when the app
	// cache runs in memory.
	DB    *mongo.Database
	Redis *redis.Client

	// RateLimit is the per-client request rate on /admin routes, in
	// requests per second. Zero disables limiting.
	RateLimit float64
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestIDWithConfig(echomiddleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.RequestLogger(deps.Log))

	// --- Admin routes ---
	adminHandler := handler.NewAdminHandler(deps.Admin)
	admin := e.Group("/admin")
	if deps.RateLimit > 0 {
		admin.Use(echomiddleware.RateLimiter(
			echomiddleware.NewRateLimiterMemoryStore(rate.Limit(deps.RateLimit)),
		))
	}

	admin.GET("/all-users", adminHandler.ListUsers)
	admin.POST("/user-action/:actionType", adminHandler.PerformUserAction)
	admin.GET("/clear-app-cache", adminHandler.ClearCache)
	admin.GET("/app-cache", adminHandler.CacheEntries)

	// --- Health probes ---
	pings := map[string]handler.PingFunc{}
	if deps.DB != nil {
		pings["mongodb"] = handler.MongoPing(deps.DB)
	}
	if deps.Redis != nil {
		pings["redis"] = handler.RedisPing(deps.Redis)
	}
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(pings)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)

	// --- Observability & docs ---
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
