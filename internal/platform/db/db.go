// Package db opens the relational store and applies its schema.
package db

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	migratepg "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"landscape/internal/platform/config"
	"landscape/migrations"
	"landscape/pkg/platform/tx"
)

const (
	DriverPostgres = "postgres"
	DriverPgx      = "pgx"
	DriverSQLite   = "sqlite"
)

func init() {
	sqlx.BindDriver(DriverSQLite, sqlx.QUESTION)
}

// Open connects with the configured driver and verifies the connection.
func Open(ctx context.Context, cfg config.Database) (*sqlx.DB, error) {
	dsn := cfg.DSN
	if cfg.Driver == DriverSQLite {
		dsn = sqliteDSN(dsn)
	}
	db, err := sqlx.Open(cfg.Driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", cfg.Driver, err)
	}
	if cfg.Driver == DriverSQLite {
		// a single connection keeps in-memory databases shared across queries
		db.SetMaxOpenConns(1)
	} else {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
		db.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping %s: %w", cfg.Driver, err)
	}
	return db, nil
}

// sqliteDSN turns on foreign key enforcement unless the DSN sets it already.
func sqliteDSN(dsn string) string {
	if strings.Contains(dsn, "foreign_keys") {
		return dsn
	}
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + "_pragma=foreign_keys(1)"
}

// Migrate brings the schema up to date. Postgres and pgx use the versioned
// golang-migrate files; sqlite applies the embedded schema idempotently.
func Migrate(ctx context.Context, db *sqlx.DB, logger *slog.Logger) error {
	if db.DriverName() == DriverSQLite {
		if err := ApplySQLiteSchema(ctx, db); err != nil {
			return err
		}
		logger.InfoContext(ctx, "sqlite schema applied")
		return nil
	}

	src, err := iofs.New(migrations.Postgres, "postgres")
	if err != nil {
		return fmt.Errorf("load migrations: %w", err)
	}
	target, err := migratepg.WithInstance(db.DB, &migratepg.Config{})
	if err != nil {
		return fmt.Errorf("init migrate driver: %w", err)
	}
	m, err := migrate.NewWithInstance("iofs", src, "postgres", target)
	if err != nil {
		return fmt.Errorf("init migrate: %w", err)
	}
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migrate up: %w", err)
	}
	version, dirty, _ := m.Version()
	logger.InfoContext(ctx, "migrations applied", "version", version, "dirty", dirty)
	return nil
}

// ApplySQLiteSchema executes the embedded sqlite schema statement by statement.
func ApplySQLiteSchema(ctx context.Context, db *sqlx.DB) error {
	for _, stmt := range strings.Split(migrations.SQLiteSchema, ";") {
		stmt = strings.TrimSpace(stmt)
		if stmt == "" {
			continue
		}
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema: %w", err)
		}
	}
	return nil
}

// RunInTx runs fn inside a transaction carried by the context. Stores pick
// it up through tx.Execer. A nested call reuses the outer transaction.
func RunInTx(ctx context.Context, db *sqlx.DB, fn func(ctx context.Context) error) (err error) {
	if _, ok := tx.From(ctx); ok {
		return fn(ctx)
	}
	t, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if p := recover(); p != nil {
			_ = t.Rollback()
			panic(p)
		}
		if err != nil {
			_ = t.Rollback()
		}
	}()
	if err = fn(tx.WithTx(ctx, t)); err != nil {
		return err
	}
	if err = t.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}
