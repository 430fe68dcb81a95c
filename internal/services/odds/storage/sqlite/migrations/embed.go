package migrations

import "embed"

// FS contains embedded SQLite migrations for the battle record log.
//
//go:embed *.sql
var FS embed.FS
