package migrations

import (
	"github.com/uptrace/bun/migrate"
)

// Migrations collects every migration registered by this package's
// other files via Migrations.MustRegister in their own init().
var Migrations = migrate.NewMigrations()
