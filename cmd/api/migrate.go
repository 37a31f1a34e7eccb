package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/driver-ledger/backend/internal/integration/persistence"
	"github.com/driver-ledger/backend/internal/integration/persistence/model"
)

func init() {
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(cleanupTokensCmd)

	cleanupTokensCmd.Flags().Duration("grace", 24*time.Hour, "Keep tokens that expired less than this long ago")
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, database, err := openDatabase()
		if err != nil {
			return err
		}
		defer database.Close()

		if err := database.AutoMigrate(model.All()...); err != nil {
			return err
		}
		slog.Info("Database migrations completed successfully")
		return nil
	},
}

var cleanupTokensCmd = &cobra.Command{
	Use:   "cleanup-tokens",
	Short: "Delete expired refresh tokens",
	RunE: func(cmd *cobra.Command, args []string) error {
		grace, _ := cmd.Flags().GetDuration("grace")

		_, database, err := openDatabase()
		if err != nil {
			return err
		}
		defer database.Close()

		removed, err := persistence.NewTokenRepository(database.DB()).
			DeleteExpired(cmd.Context(), time.Now().UTC().Add(-grace))
		if err != nil {
			return fmt.Errorf("failed to delete expired tokens: %w", err)
		}
		slog.Info("Expired refresh tokens removed", "count", removed)
		return nil
	},
}
