package migrations

import "embed"

//go:embed V*.sql
var files embed.FS

// Files is the migration set compiled into the binary.
var Files = files
