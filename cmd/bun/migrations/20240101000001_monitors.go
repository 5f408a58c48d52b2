package migrations

import (
	"context"
	"time"

	"github.com/uptrace/bun"
)

type monitorsTable struct {
	bun.BaseModel `bun:"table:monitors"`

	ID          int64     `bun:"id,pk,autoincrement"`
	Name        string    `bun:"name,notnull"`
	Type        string    `bun:"type,notnull"`
	IntervalSec int64     `bun:"interval_sec,notnull"`
	Active      bool      `bun:"active,notnull,default:true"`
	CreatedAt   time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp"`
}

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		_, err := db.NewCreateTable().Model((*monitorsTable)(nil)).Exec(ctx)
		return err
	}, func(ctx context.Context, db *bun.DB) error {
		_, err := db.NewDropTable().Model((*monitorsTable)(nil)).Exec(ctx)
		return err
	})
}
