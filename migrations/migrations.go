// Package migrations contains goose SQL migrations embedded into binaries.
package migrations

import "embed"

// FS holds *.sql migrations.
//
//go:embed *.sql
var FS embed.FS
