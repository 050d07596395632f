// Package migrations embeds the SQL schema files so the server and its
// tests can apply them through the goose programmatic API without
// shipping loose files. Each supported driver has its own dialect
// directory; pass the matching one as the goose migration dir.
package migrations

import "embed"

// FS holds the per-dialect migration directories (mysql/, sqlite3/).
//
//go:embed mysql sqlite3
var FS embed.FS
