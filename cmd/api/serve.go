package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/driver-ledger/backend/config"
	"github.com/driver-ledger/backend/internal/infra/dependency"
	"github.com/driver-ledger/backend/internal/integration/persistence/model"
)

const shutdownTimeout = 10 * time.Second

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, database, err := openDatabase()
	if err != nil {
		return fmt.Errorf("database unavailable: %w", err)
	}
	defer func() {
		if err := database.Close(); err != nil {
			slog.Error("Failed to close database connection", "error", err)
		}
	}()

	slog.Info("Starting Driver Ledger API",
		"version", version,
		"environment", cfg.Server.Environment,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
	)

	if cfg.Database.AutoMigrate {
		if err := database.AutoMigrate(model.All()...); err != nil {
			return err
		}
		slog.Info("Database migrations completed successfully")
	}

	redisClient := connectRedis(cmd.Context(), cfg.Redis)
	if redisClient != nil {
		defer redisClient.Close()
	}

	injector := dependency.NewInjector(cfg, database, redisClient, version)
	engine := injector.Router.Setup(cfg.Server, cfg.Metrics)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("Server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		return fmt.Errorf("server failed: %w", err)
	case <-quit:
	}

	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	slog.Info("Server exited properly")
	return nil
}

// connectRedis returns a client for the configured Redis or nil when Redis is
// disabled or unreachable.
func connectRedis(ctx context.Context, cfg config.RedisConfig) *redis.Client {
	if cfg.URL == "" {
		return nil
	}

	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		slog.Warn("Invalid REDIS_URL, continuing without Redis", "error", err)
		return nil
	}
	if cfg.Password != "" {
		opts.Password = cfg.Password
	}
	if cfg.DB != 0 {
		opts.DB = cfg.DB
	}

	client := redis.NewClient(opts)
	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		slog.Warn("Redis unreachable, continuing without Redis", "error", err)
		_ = client.Close()
		return nil
	}

	slog.Info("Redis connection established", "addr", opts.Addr)
	return client
}
