package migrations

import (
	"context"

	"github.com/uptrace/bun"
)

type monitorStateTable struct {
	bun.BaseModel `bun:"table:monitor_state"`

	MonitorID     int64  `bun:"monitor_id,pk"`
	Status        string `bun:"status,notnull"`
	LastCheckedAt *int64 `bun:"last_checked_at"`
	LastLatencyMs *int64 `bun:"last_latency_ms"`
}

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		_, err := db.NewCreateTable().Model((*monitorStateTable)(nil)).
			ForeignKey(`(monitor_id) REFERENCES monitors (id) ON DELETE CASCADE`).
			Exec(ctx)
		return err
	}, func(ctx context.Context, db *bun.DB) error {
		_, err := db.NewDropTable().Model((*monitorStateTable)(nil)).Exec(ctx)
		return err
	})
}
