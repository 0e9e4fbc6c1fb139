package db

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/udisondev/rocalc/internal/db/migrations"
)

// Goose dialects.
const (
	DialectPostgres = "postgres"
	DialectSQLite   = "sqlite3"
)

// gooseMu guards goose package-level state (base FS, dialect).
var gooseMu sync.Mutex

// RunMigrations applies embedded goose migrations to sqlDB.
func RunMigrations(ctx context.Context, dialect string, sqlDB *sql.DB) error {
	gooseMu.Lock()
	defer gooseMu.Unlock()

	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("setting goose dialect: %w", err)
	}
	if err := goose.UpContext(ctx, sqlDB, "."); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}
	return nil
}

// Migrate runs migrations through a database/sql view of the pool.
func (d *DB) Migrate(ctx context.Context) error {
	sqlDB := stdlib.OpenDBFromPool(d.pool)
	defer sqlDB.Close()
	return RunMigrations(ctx, DialectPostgres, sqlDB)
}

// Migrate applies migrations to the SQLite catalog.
func (s *SQLite) Migrate(ctx context.Context) error {
	return RunMigrations(ctx, DialectSQLite, s.db)
}
