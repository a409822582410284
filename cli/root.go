// Package cli holds the storefront command tree.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/junaidrashid-git/storefront-api/config"
	"github.com/junaidrashid-git/storefront-api/database"
	"github.com/junaidrashid-git/storefront-api/logger"
)

var rootCmd = &cobra.Command{
	Use:   "storefront",
	Short: "Storefront API server and maintenance commands",
	Long: `storefront serves the shop's JSON API (products, cart, addresses,
orders, profile and credential sign-in) and carries the maintenance tasks
that go with it: schema migration, sample data, JSON export and import, and
a database connection check.

Settings come from the environment or a .env file.`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// env is what every subcommand starts from.
type env struct {
	cfg *config.Config
	log *zap.Logger
	db  *gorm.DB
}

func (e *env) close() {
	if sqlDB, err := e.db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	_ = e.log.Sync()
}

func setup() (*env, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	log, err := logger.New(cfg.Env)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	db, err := database.Open(cfg.DB, log)
	if err != nil {
		_ = log.Sync()
		return nil, err
	}
	return &env{cfg: cfg, log: log, db: db}, nil
}
