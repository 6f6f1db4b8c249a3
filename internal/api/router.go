package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/famgift/exchange-system/internal/api/handler"
	"github.com/famgift/exchange-system/internal/api/middleware"
	"github.com/famgift/exchange-system/internal/core/ports"
)

// RouterConfig carries everything the HTTP edge needs; services are built
// in main and injected so the router stays wiring-only.
type RouterConfig struct {
	DB        *mongo.Database
	Redis     *redis.Client
	JWTSecret string
	Groups    ports.GroupSource
	Exchange  ports.ExchangeService
	WishLists ports.WishListService
	Auth      ports.AuthService
	Logger    zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg RouterConfig) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(cfg.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("giftexchange"))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(cfg.Auth)
	assignmentHandler := handler.NewAssignmentHandler(cfg.Exchange, cfg.WishLists, cfg.Groups)
	wishListHandler := handler.NewWishListHandler(cfg.WishLists)

	// --- Auth routes ---
	e.POST("/v1/auth/login", authHandler.Login)

	// --- Session-scoped routes ---
	me := e.Group("/v1/me", middleware.Auth(cfg.JWTSecret), middleware.GroupAccess(cfg.Groups))
	me.GET("/assignment", assignmentHandler.Mine)
	me.GET("/wishlist", wishListHandler.Mine)
	me.PUT("/wishlist", wishListHandler.Replace)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(cfg.DB, cfg.Redis)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
