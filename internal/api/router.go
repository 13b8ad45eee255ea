package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/palette/auction-gateway/docs"
	"github.com/palette/auction-gateway/internal/api/handler"
	"github.com/palette/auction-gateway/internal/api/middleware"
	"github.com/palette/auction-gateway/internal/core/domain"
	"github.com/palette/auction-gateway/internal/core/ports"
	"github.com/palette/auction-gateway/internal/core/service"
)

// RouterConfig carries the session settings the routing layer needs.
type RouterConfig struct {
	SessionSecret string
	SessionTTL    time.Duration
}

// Dependencies are the infrastructure pieces main wires up. MongoDB and
// Redis clients are optional and only feed the readiness probe; the
// repositories and stores decide where data actually lives.
type Dependencies struct {
	Snapshots    ports.SnapshotStore
	Backend      ports.AuthBackend
	Bids         ports.BidRepository
	Applications ports.ApplicationRepository
	Profiles     ports.ProfileRepository
	Dashboards   ports.DashboardRepository

	Mongo  *mongo.Database
	Redis  *redis.Client
	Logger zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg RouterConfig, deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("auction_gateway"))

	// --- Services ---
	sessionService := service.NewSessionService(deps.Snapshots, deps.Logger)
	authService := service.NewAuthService(deps.Backend, sessionService, deps.Logger)
	roleRouter := service.NewRoleRouter()
	bidService := service.NewBidService(deps.Bids, deps.Logger)
	applicationService := service.NewApplicationService(deps.Applications, deps.Logger)
	dashboardService := service.NewDashboardService(deps.Dashboards, deps.Logger)
	profileService := service.NewProfileService(deps.Profiles, deps.Logger)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService, cfg.SessionSecret, cfg.SessionTTL)
	sessionHandler := handler.NewSessionHandler(roleRouter)
	bidHandler := handler.NewBidHandler(bidService)
	applicationHandler := handler.NewApplicationHandler(applicationService)
	dashboardHandler := handler.NewDashboardHandler(dashboardService)
	profileHandler := handler.NewProfileHandler(profileService)

	session := middleware.Session(sessionService, cfg.SessionSecret)

	// --- Auth and session routes ---
	auth := e.Group("/api/auth", session)
	auth.POST("/login", authHandler.Login)
	auth.POST("/signup", authHandler.Signup)
	auth.POST("/logout", authHandler.Logout)

	e.GET("/api/session", sessionHandler.Get, session)
	e.GET("/api/session/route", sessionHandler.Route, session)

	// --- Customer routes ---
	bids := e.Group("/api/bids", session, middleware.RequireAuth())
	bids.GET("", bidHandler.List)
	bids.POST("/:id/pay", bidHandler.Pay)

	e.GET("/api/profile", profileHandler.Get, session, middleware.RequireAuth())
	e.PUT("/api/profile", profileHandler.Update, session, middleware.RequireAuth())

	// --- Seller routes ---
	e.GET("/api/seller/categories", applicationHandler.Categories)
	e.POST("/api/seller/apply", applicationHandler.Submit, session, middleware.RequireAuth())
	e.GET("/api/seller/apply/status", applicationHandler.Status, session, middleware.RequireAuth())

	seller := e.Group("/api/seller", session, middleware.RequireRole(domain.RoleSeller))
	seller.GET("/dashboard", dashboardHandler.Seller)
	seller.DELETE("/items/:id", dashboardHandler.CancelListing)

	// --- Admin routes ---
	admin := e.Group("/api/admin", session, middleware.RequireRole(domain.RoleAdmin))
	admin.GET("/dashboard", dashboardHandler.Admin)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(deps.Mongo, deps.Redis)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
