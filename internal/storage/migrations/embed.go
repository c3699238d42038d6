package migrations

import "embed"

//go:embed postgres/*.sql
var postgresFS embed.FS
