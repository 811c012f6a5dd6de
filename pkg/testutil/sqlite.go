package testutil

import (
	"context"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	"landscape/internal/platform/config"
	"landscape/internal/platform/db"
)

// NewSQLiteDB opens a fresh in-memory database with the full schema applied.
// The database is closed when the test ends.
func NewSQLiteDB(t *testing.T) *sqlx.DB {
	t.Helper()
	ctx := context.Background()
	conn, err := db.Open(ctx, config.Database{Driver: db.DriverSQLite, DSN: ":memory:"})
	require.NoError(t, err, "open sqlite")
	t.Cleanup(func() { _ = conn.Close() })
	require.NoError(t, db.ApplySQLiteSchema(ctx, conn), "apply schema")
	return conn
}

// MustExec runs a fixture statement written with ? placeholders.
func MustExec(t *testing.T, conn *sqlx.DB, query string, args ...any) {
	t.Helper()
	_, err := conn.Exec(conn.Rebind(query), args...)
	require.NoError(t, err, "fixture: %s", query)
}
