// Package migrations embeds the catalog schema migrations.
package migrations

import "embed"

// FS holds goose SQL migrations. The files stay portable between
// PostgreSQL and SQLite.
//
//go:embed *.sql
var FS embed.FS
