package main

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/mwhite7112/webreader/internal/config"
	"github.com/mwhite7112/webreader/internal/db"
	"github.com/mwhite7112/webreader/internal/logging"
)

func runMigrate(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger := logging.New(cfg.Log, os.Stderr)

	if cfg.Database.URL == "" {
		return errors.New("DATABASE_URL is required")
	}

	sqlDB, err := openDatabase(cmd.Context(), cfg.Database.URL)
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	if err := db.Migrate(sqlDB); err != nil {
		return err
	}
	logger.Info("migrations applied")
	return nil
}
