// Package dependency provides dependency injection for the application.
package dependency

import (
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/driver-ledger/backend/config"
	"github.com/driver-ledger/backend/internal/application/adapter"
	"github.com/driver-ledger/backend/internal/application/usecase/auth"
	"github.com/driver-ledger/backend/internal/application/usecase/dashboard"
	"github.com/driver-ledger/backend/internal/application/usecase/entry"
	"github.com/driver-ledger/backend/internal/application/usecase/expense"
	"github.com/driver-ledger/backend/internal/application/usecase/goal"
	"github.com/driver-ledger/backend/internal/application/usecase/trip"
	"github.com/driver-ledger/backend/internal/infra/db"
	"github.com/driver-ledger/backend/internal/infra/metrics"
	"github.com/driver-ledger/backend/internal/infra/server/router"
	"github.com/driver-ledger/backend/internal/integration/adapters"
	"github.com/driver-ledger/backend/internal/integration/entrypoint/controller"
	"github.com/driver-ledger/backend/internal/integration/entrypoint/middleware"
	"github.com/driver-ledger/backend/internal/integration/persistence"
)

// testLoginAttempts keeps the login limiter out of the way of test suites.
const testLoginAttempts = 1000

// Injector holds all application dependencies.
type Injector struct {
	Config  *config.Config
	DB      *db.Database
	Metrics *metrics.Metrics
	Router  *router.Router
}

// NewInjector creates a new dependency injector with all dependencies wired.
// redisClient may be nil, in which case login attempts are counted in memory.
func NewInjector(cfg *config.Config, database *db.Database, redisClient *redis.Client, version string) *Injector {
	gormDB := database.DB()

	// Repositories
	userRepo := persistence.NewUserRepository(gormDB)
	tokenRepo := persistence.NewTokenRepository(gormDB)
	entryRepo := persistence.NewEntryRepository(gormDB)
	tripRepo := persistence.NewTripRepository(gormDB)
	expenseRepo := persistence.NewExpenseRepository(gormDB)
	goalRepo := persistence.NewGoalRepository(gormDB)

	// Services
	passwordService := adapters.NewPasswordService(adapters.DefaultBcryptCost)
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, adapters.TokenDurations{
		Access:  cfg.JWT.AccessTokenExpiry,
		Refresh: cfg.JWT.RefreshTokenExpiry,
	}, tokenRepo)

	var rateLimitStore adapter.RateLimitStore
	if redisClient != nil {
		rateLimitStore = adapters.NewRedisRateLimitStore(redisClient)
	} else {
		slog.Info("Redis not configured, counting login attempts in memory")
		rateLimitStore = adapters.NewMemoryRateLimitStore()
	}

	var m *metrics.Metrics
	if cfg.Metrics.Enabled {
		m = metrics.New()
	}

	sources := dashboard.Sources{
		Entries:  entryRepo,
		Trips:    tripRepo,
		Expenses: expenseRepo,
		Goals:    goalRepo,
	}
	summaryUseCase := dashboard.NewGetPeriodSummaryUseCase(sources, cfg.Dashboard.FallbackDailyGoal)

	controllers := router.Controllers{
		Health: controller.NewHealthController(database.HealthCheck, version),
		Auth: controller.NewAuthController(
			auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService),
			auth.NewLoginUserUseCase(userRepo, passwordService, tokenService),
			auth.NewRefreshTokenUseCase(userRepo, tokenService),
			auth.NewLogoutUserUseCase(tokenService),
		),
		User: controller.NewUserController(
			auth.NewGetCurrentUserUseCase(userRepo),
		),
		Entry: controller.NewEntryController(
			entry.NewListEntriesUseCase(entryRepo),
			entry.NewCreateEntryUseCase(entryRepo),
			entry.NewUpdateEntryUseCase(entryRepo),
			entry.NewDeleteEntryUseCase(entryRepo),
		),
		Trip: controller.NewTripController(
			trip.NewListTripsUseCase(tripRepo),
			trip.NewCreateTripUseCase(tripRepo),
			trip.NewUpdateTripUseCase(tripRepo),
			trip.NewDeleteTripUseCase(tripRepo),
		),
		Expense: controller.NewExpenseController(
			expense.NewListExpensesUseCase(expenseRepo),
			expense.NewCreateExpenseUseCase(expenseRepo),
			expense.NewUpdateExpenseUseCase(expenseRepo),
			expense.NewDeleteExpenseUseCase(expenseRepo),
		),
		Goal: controller.NewGoalController(
			goal.NewListGoalsUseCase(goalRepo),
			goal.NewCreateGoalUseCase(goalRepo),
			goal.NewGetGoalUseCase(goalRepo),
			goal.NewUpdateGoalUseCase(goalRepo),
			goal.NewDeleteGoalUseCase(goalRepo),
		),
		Dashboard: controller.NewDashboardController(
			summaryUseCase,
			dashboard.NewGetInsightUseCase(summaryUseCase),
			dashboard.NewListWeeksUseCase(cfg.Dashboard.WeeksMonthsBack),
			dashboard.NewGetMonthlyTrendUseCase(sources),
			m,
		),
	}

	loginAttempts := cfg.RateLimit.LoginAttempts
	if cfg.Server.Environment == "e2e" || cfg.Server.Environment == "test" {
		loginAttempts = testLoginAttempts
	}
	loginRateLimiter := middleware.NewRateLimiter(rateLimitStore, "login", loginAttempts, cfg.RateLimit.LoginWindow, m)
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	r := router.NewRouter(controllers, loginRateLimiter, authMiddleware, m, slog.Default())

	return &Injector{
		Config:  cfg,
		DB:      database,
		Metrics: m,
		Router:  r,
	}
}
