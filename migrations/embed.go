// Package migrations holds the goose SQL migrations of the corpus database.
package migrations

import "embed"

// FS contains every migration file.
//
//go:embed *.sql
var FS embed.FS
