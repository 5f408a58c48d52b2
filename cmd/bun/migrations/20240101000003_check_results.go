package migrations

import (
	"context"

	"github.com/uptrace/bun"
)

type checkResultsTable struct {
	bun.BaseModel `bun:"table:check_results"`

	MonitorID int64  `bun:"monitor_id,notnull"`
	CheckedAt int64  `bun:"checked_at,notnull"`
	Status    string `bun:"status,notnull"`
	LatencyMs *int64 `bun:"latency_ms"`
}

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		if _, err := db.NewCreateTable().Model((*checkResultsTable)(nil)).
			ForeignKey(`(monitor_id) REFERENCES monitors (id) ON DELETE CASCADE`).
			Exec(ctx); err != nil {
			return err
		}
		_, err := db.ExecContext(ctx,
			`CREATE INDEX idx_check_results_monitor_checked_at ON check_results (monitor_id, checked_at)`)
		return err
	}, func(ctx context.Context, db *bun.DB) error {
		_, err := db.NewDropTable().Model((*checkResultsTable)(nil)).Exec(ctx)
		return err
	})
}
