package migrations

import (
	"context"

	"github.com/uptrace/bun"
)

type outagesTable struct {
	bun.BaseModel `bun:"table:outages"`

	MonitorID int64  `bun:"monitor_id,notnull"`
	StartedAt int64  `bun:"started_at,notnull"`
	EndedAt   *int64 `bun:"ended_at"`
}

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		if _, err := db.NewCreateTable().Model((*outagesTable)(nil)).
			ForeignKey(`(monitor_id) REFERENCES monitors (id) ON DELETE CASCADE`).
			Exec(ctx); err != nil {
			return err
		}
		_, err := db.ExecContext(ctx,
			`CREATE INDEX idx_outages_monitor_started_at ON outages (monitor_id, started_at)`)
		return err
	}, func(ctx context.Context, db *bun.DB) error {
		_, err := db.NewDropTable().Model((*outagesTable)(nil)).Exec(ctx)
		return err
	})
}
