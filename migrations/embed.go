// Package migrations embeds the schema for every supported database driver.
package migrations

import "embed"

// Postgres holds the versioned golang-migrate files for postgres and pgx.
//
//go:embed postgres/*.sql
var Postgres embed.FS

// SQLiteSchema is applied statement by statement to embedded sqlite databases.
//
//go:embed sqlite/schema.sql
var SQLiteSchema string
