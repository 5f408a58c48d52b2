package outage

import (
	"context"

	"github.com/uptrace/bun"
)

type sqlModel struct {
	bun.BaseModel `bun:"table:outages,alias:o"`

	MonitorID int64  `bun:"monitor_id,notnull"`
	StartedAt int64  `bun:"started_at,notnull"`
	EndedAt   *int64 `bun:"ended_at"`
}

func (sm *sqlModel) toDomain() *Model {
	return &Model{
		MonitorID: sm.MonitorID,
		StartedAt: sm.StartedAt,
		EndedAt:   sm.EndedAt,
	}
}

type SQLRepository struct {
	db *bun.DB
}

func NewSQLRepository(db *bun.DB) Repository {
	return &SQLRepository{db: db}
}

func (r *SQLRepository) FindOverlapping(ctx context.Context, monitorID int64, rangeStart, rangeEnd int64) ([]*Model, error) {
	var sms []*sqlModel
	err := r.db.NewSelect().
		Model(&sms).
		Where("monitor_id = ? AND started_at < ? AND (ended_at IS NULL OR ended_at > ?)", monitorID, rangeEnd, rangeStart).
		Order("started_at ASC").
		Scan(ctx)
	if err != nil {
		return nil, err
	}

	models := make([]*Model, 0, len(sms))
	for _, sm := range sms {
		models = append(models, sm.toDomain())
	}
	return models, nil
}
