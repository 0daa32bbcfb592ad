// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package migration runs the embedded SQL migrations with golang-migrate.
//
// # Architecture
//
// The .sql files are compiled into the binary, so the API server and the
// folioctl CLI always agree on the schema version they expect.
package migration

import (
	"embed"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	// pgx5 driver registers "pgx5" scheme for golang-migrate.
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed files/*.sql
var migrationFiles embed.FS

// Status describes the schema version recorded in the database.
type Status struct {
	Version uint
	Dirty   bool
	// Applied is false when no migration has ever run.
	Applied bool
}

// RunUp applies all pending UP migrations.
func RunUp(dsn string, logger *slog.Logger) error {
	migrator, err := newMigrator(dsn, logger)
	if err != nil {
		return err
	}
	defer closeMigrator(migrator, logger)

	current, err := readStatus(migrator)
	if err != nil {
		return err
	}

	if current.Dirty {
		return fmt.Errorf("migration: database is in a dirty state at version %d (manual intervention required)", current.Version)
	}

	logger.Info("migration_started", slog.Int("current_version", int(current.Version)))

	if err := migrator.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			logger.Info("migration_already_up_to_date")
			return nil
		}
		return fmt.Errorf("migration: up failed: %w", err)
	}

	next, err := readStatus(migrator)
	if err != nil {
		return err
	}

	logger.Info("migration_successful",
		slog.Int("from_version", int(current.Version)),
		slog.Int("to_version", int(next.Version)),
	)

	return nil
}

// Version reports the schema version recorded in the database.
func Version(dsn string, logger *slog.Logger) (Status, error) {
	migrator, err := newMigrator(dsn, logger)
	if err != nil {
		return Status{}, err
	}
	defer closeMigrator(migrator, logger)

	return readStatus(migrator)
}

func newMigrator(dsn string, logger *slog.Logger) (*migrate.Migrate, error) {
	source, err := iofs.New(migrationFiles, "files")
	if err != nil {
		return nil, fmt.Errorf("migration: failed to read embedded files: %w", err)
	}

	migrator, err := migrate.NewWithSourceInstance("iofs", source, ToPgx5DSN(dsn))
	if err != nil {
		_ = source.Close()
		return nil, fmt.Errorf("migration: failed to initialize: %w", err)
	}

	migrator.Log = &migrateLogger{logger: logger}
	return migrator, nil
}

func readStatus(migrator *migrate.Migrate) (Status, error) {
	version, dirty, err := migrator.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return Status{}, nil
	}
	if err != nil {
		return Status{}, fmt.Errorf("migration: failed to get current version: %w", err)
	}
	return Status{Version: version, Dirty: dirty, Applied: true}, nil
}

func closeMigrator(migrator *migrate.Migrate, logger *slog.Logger) {
	sourceError, dbError := migrator.Close()
	if sourceError != nil {
		logger.Error("migration_source_close_failed", slog.Any("error", sourceError))
	}
	if dbError != nil {
		logger.Error("migration_db_close_failed", slog.Any("error", dbError))
	}
}

// ToPgx5DSN rewrites postgres:// and postgresql:// URLs to the pgx5:// scheme
// golang-migrate uses to select its pgx/v5 driver.
func ToPgx5DSN(dsn string) string {
	for _, prefix := range []string{"postgresql://", "postgres://"} {
		if rest, ok := strings.CutPrefix(dsn, prefix); ok {
			return "pgx5://" + rest
		}
	}
	return dsn
}

// migrateLogger adapts golang-migrate's logger interface to slog.
type migrateLogger struct {
	logger *slog.Logger
}

// Printf implements migrate.Logger.
func (l *migrateLogger) Printf(format string, args ...any) {
	l.logger.Debug(strings.TrimSpace(fmt.Sprintf(format, args...)))
}

// Verbose implements migrate.Logger.
func (l *migrateLogger) Verbose() bool {
	return false
}
