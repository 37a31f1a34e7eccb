// Package main is the entry point for the Driver Ledger API server.
package main

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/driver-ledger/backend/config"
	"github.com/driver-ledger/backend/internal/infra/db"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

var rootCmd = &cobra.Command{
	Use:          "driver-ledger",
	Short:        "Driver Ledger API",
	Long:         `Driver Ledger tracks revenue, trips, expenses and monthly goals for ride-hailing and delivery drivers.`,
	Version:      version,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Load .env file if it exists (development only)
		_ = godotenv.Load()

		logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		}))
		slog.SetDefault(logger)
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// openDatabase loads the configuration and connects to the configured database.
func openDatabase() (*config.Config, *db.Database, error) {
	cfg := config.Load()
	database, err := db.NewConnection(&cfg.Database)
	if err != nil {
		return nil, nil, err
	}
	return cfg, database, nil
}
