package migrations

import "embed"

// FS holds the SQL migrations for each backend, under sqlite/ and postgres/
//
//go:embed sqlite/*.sql postgres/*.sql
var FS embed.FS
