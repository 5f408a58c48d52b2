package monitorstate

import (
	"context"

	"fleetstatus/src/modules/shared"

	"github.com/uptrace/bun"
)

type sqlModel struct {
	bun.BaseModel `bun:"table:monitor_state,alias:ms"`

	MonitorID     int64  `bun:"monitor_id,pk"`
	Status        string `bun:"status,notnull"`
	LastCheckedAt *int64 `bun:"last_checked_at"`
	LastLatencyMs *int64 `bun:"last_latency_ms"`
}

func (sm *sqlModel) toDomain() *Model {
	return &Model{
		MonitorID:     sm.MonitorID,
		Status:        shared.ParseMonitorStatus(sm.Status),
		LastCheckedAt: sm.LastCheckedAt,
		LastLatencyMs: sm.LastLatencyMs,
	}
}

type SQLRepository struct {
	db *bun.DB
}

func NewSQLRepository(db *bun.DB) Repository {
	return &SQLRepository{db: db}
}

func (r *SQLRepository) FindByMonitorIDs(ctx context.Context, monitorIDs []int64) ([]*Model, error) {
	if len(monitorIDs) == 0 {
		return []*Model{}, nil
	}

	var sms []*sqlModel
	err := r.db.NewSelect().
		Model(&sms).
		Where("monitor_id IN (?)", bun.In(monitorIDs)).
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
