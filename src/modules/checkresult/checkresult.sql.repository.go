package checkresult

import (
	"context"

	"fleetstatus/src/modules/shared"

	"github.com/uptrace/bun"
)

type sqlModel struct {
	bun.BaseModel `bun:"table:check_results,alias:cr"`

	MonitorID int64  `bun:"monitor_id,notnull"`
	CheckedAt int64  `bun:"checked_at,notnull"`
	Status    string `bun:"status,notnull"`
	LatencyMs *int64 `bun:"latency_ms"`
}

func (sm *sqlModel) toDomain() *Model {
	return &Model{
		MonitorID: sm.MonitorID,
		CheckedAt: sm.CheckedAt,
		Status:    shared.ParseCheckStatus(sm.Status),
		LatencyMs: sm.LatencyMs,
	}
}

type SQLRepository struct {
	db *bun.DB
}

func NewSQLRepository(db *bun.DB) Repository {
	return &SQLRepository{db: db}
}

// FindRecentByMonitorIDs partitions check_results by monitor, ranks
// each partition by checked_at descending, and keeps only the top
// `limit` rows per monitor — the windowed top-N query the heartbeat
// fetch requires to stay a single round trip regardless of fleet size.
func (r *SQLRepository) FindRecentByMonitorIDs(ctx context.Context, monitorIDs []int64, since int64, limit int) ([]*Model, error) {
	if len(monitorIDs) == 0 {
		return []*Model{}, nil
	}

	var sms []*sqlModel
	err := r.db.NewRaw(`
		SELECT monitor_id, checked_at, status, latency_ms FROM (
			SELECT
				monitor_id, checked_at, status, latency_ms,
				ROW_NUMBER() OVER (PARTITION BY monitor_id ORDER BY checked_at DESC) AS rn
			FROM check_results
			WHERE monitor_id IN (?) AND checked_at >= ?
		) ranked
		WHERE rn <= ?
		ORDER BY monitor_id ASC, checked_at DESC
	`, bun.In(monitorIDs), since, limit).Scan(ctx, &sms)
	if err != nil {
		return nil, err
	}

	models := make([]*Model, 0, len(sms))
	for _, sm := range sms {
		models = append(models, sm.toDomain())
	}
	return models, nil
}

func (r *SQLRepository) FindInRangeInclusive(ctx context.Context, monitorID int64, start, end int64) ([]*Model, error) {
	var sms []*sqlModel
	err := r.db.NewSelect().
		Model(&sms).
		Where("monitor_id = ? AND checked_at >= ? AND checked_at <= ?", monitorID, start, end).
		Order("checked_at ASC").
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return toDomainSlice(sms), nil
}

func (r *SQLRepository) FindFrom(ctx context.Context, monitorID int64, start, end int64) ([]*Model, error) {
	var sms []*sqlModel
	err := r.db.NewSelect().
		Model(&sms).
		Where("monitor_id = ? AND checked_at >= ? AND checked_at < ?", monitorID, start, end).
		Order("checked_at ASC").
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return toDomainSlice(sms), nil
}

func toDomainSlice(sms []*sqlModel) []*Model {
	models := make([]*Model, 0, len(sms))
	for _, sm := range sms {
		models = append(models, sm.toDomain())
	}
	return models
}
