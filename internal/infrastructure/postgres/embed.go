package postgres

import "embed"

// EmbedMigrations migraciones SQL embebidas en el binario.
//
//go:embed migrations/*.sql
var EmbedMigrations embed.FS
