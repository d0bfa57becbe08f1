// Package migrations embeds the SQLite account store schema.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
