// Package migrations embeds the SQL migration files for the SQLite
// context store.
package migrations

import "embed"

// FS holds every SQL migration, embedded at compile time.
//
//go:embed *.sql
var FS embed.FS
