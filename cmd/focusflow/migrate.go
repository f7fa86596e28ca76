package main

import (
	"errors"
	"fmt"

	"focusflow/internal/database"
	"focusflow/internal/store/sqlite"

	"github.com/spf13/cobra"
)

var rollbackAllFn = database.RollbackAll

var errSQLiteMigrate = errors.New("SQLite 於啟動時自動建立資料表，不需執行 migrate")

func newMigrateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply or roll back the Postgres schema",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return migrate(cmd, runMigrationsFn, "migrations applied")
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "down",
		Short: "Roll back all migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return migrate(cmd, rollbackAllFn, "migrations rolled back")
		},
	})
	return cmd
}

func migrate(cmd *cobra.Command, step func(string) error, done string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if sqlite.IsDSN(cfg.DatabaseURL) {
		return errSQLiteMigrate
	}
	if err := step(cfg.DatabaseURL); err != nil {
		return fmt.Errorf("Migration 執行失敗: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), done)
	return nil
}
