// Package router sets up the HTTP routing for the application.
package router

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/driver-ledger/backend/config"
	"github.com/driver-ledger/backend/internal/infra/metrics"
	"github.com/driver-ledger/backend/internal/integration/entrypoint/controller"
	"github.com/driver-ledger/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine              *gin.Engine
	healthController    *controller.HealthController
	authController      *controller.AuthController
	userController      *controller.UserController
	entryController     *controller.EntryController
	tripController      *controller.TripController
	expenseController   *controller.ExpenseController
	goalController      *controller.GoalController
	dashboardController *controller.DashboardController
	loginRateLimiter    *middleware.RateLimiter
	authMiddleware      *middleware.AuthMiddleware
	metrics             *metrics.Metrics
	logger              *slog.Logger
}

// Controllers groups the HTTP handlers served by the router.
type Controllers struct {
	Health    *controller.HealthController
	Auth      *controller.AuthController
	User      *controller.UserController
	Entry     *controller.EntryController
	Trip      *controller.TripController
	Expense   *controller.ExpenseController
	Goal      *controller.GoalController
	Dashboard *controller.DashboardController
}

// NewRouter creates a new router instance with all dependencies.
// A nil metrics disables the metrics middleware and endpoint.
func NewRouter(
	controllers Controllers,
	loginRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
	m *metrics.Metrics,
	logger *slog.Logger,
) *Router {
	return &Router{
		healthController:    controllers.Health,
		authController:      controllers.Auth,
		userController:      controllers.User,
		entryController:     controllers.Entry,
		tripController:      controllers.Trip,
		expenseController:   controllers.Expense,
		goalController:      controllers.Goal,
		dashboardController: controllers.Dashboard,
		loginRateLimiter:    loginRateLimiter,
		authMiddleware:      authMiddleware,
		metrics:             m,
		logger:              logger,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(serverCfg config.ServerConfig, metricsCfg config.MetricsConfig) *gin.Engine {
	switch serverCfg.Environment {
	case "production":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	}

	r.engine = gin.New()
	r.engine.Use(gin.Recovery(), middleware.RequestLogger(r.logger))
	if r.metrics != nil && metricsCfg.Enabled {
		r.engine.Use(middleware.Metrics(r.metrics))
		r.engine.GET(metricsCfg.Path, gin.WrapH(r.metrics.Handler()))
	}

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")

	auth := v1.Group("/auth")
	{
		auth.POST("/register", r.authController.Register)
		auth.POST("/login", r.loginRateLimiter.Middleware(), r.authController.Login)
		auth.POST("/refresh", r.authController.Refresh)
		auth.POST("/logout", r.authController.Logout)
	}

	protected := v1.Group("")
	protected.Use(r.authMiddleware.Authenticate())

	protected.GET("/users/me", r.userController.Me)

	entries := protected.Group("/entries")
	{
		entries.GET("", r.entryController.List)
		entries.POST("", r.entryController.Create)
		entries.PATCH("/:id", r.entryController.Update)
		entries.DELETE("/:id", r.entryController.Delete)
	}

	trips := protected.Group("/trips")
	{
		trips.GET("", r.tripController.List)
		trips.POST("", r.tripController.Create)
		trips.PATCH("/:id", r.tripController.Update)
		trips.DELETE("/:id", r.tripController.Delete)
	}

	expenses := protected.Group("/expenses")
	{
		expenses.GET("", r.expenseController.List)
		expenses.POST("", r.expenseController.Create)
		expenses.PATCH("/:id", r.expenseController.Update)
		expenses.DELETE("/:id", r.expenseController.Delete)
	}

	goals := protected.Group("/goals")
	{
		goals.GET("", r.goalController.List)
		goals.POST("", r.goalController.Create)
		goals.GET("/:year/:month", r.goalController.Get)
		goals.PATCH("/:id", r.goalController.Update)
		goals.DELETE("/:id", r.goalController.Delete)
	}

	dashboard := protected.Group("/dashboard")
	{
		dashboard.GET("/summary", r.dashboardController.Summary)
		dashboard.GET("/insight", r.dashboardController.Insight)
		dashboard.GET("/weeks", r.dashboardController.Weeks)
		dashboard.GET("/trend", r.dashboardController.Trend)
	}
}
