package monitor

import (
	"context"
	"time"

	"github.com/uptrace/bun"
)

type sqlModel struct {
	bun.BaseModel `bun:"table:monitors,alias:m"`

	ID          int64     `bun:"id,pk,autoincrement"`
	Name        string    `bun:"name,notnull"`
	Type        string    `bun:"type,notnull"`
	IntervalSec int64     `bun:"interval_sec,notnull"`
	Active      bool      `bun:"active,notnull,default:true"`
	CreatedAt   time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp"`
}

func (sm *sqlModel) toDomain() *Model {
	return &Model{
		ID:          sm.ID,
		Name:        sm.Name,
		Type:        sm.Type,
		IntervalSec: sm.IntervalSec,
		Active:      sm.Active,
		CreatedAt:   sm.CreatedAt.Unix(),
	}
}

type SQLRepository struct {
	db *bun.DB
}

func NewSQLRepository(db *bun.DB) Repository {
	return &SQLRepository{db: db}
}

func (r *SQLRepository) FindActive(ctx context.Context) ([]*Model, error) {
	var sms []*sqlModel
	err := r.db.NewSelect().
		Model(&sms).
		Where("active = ?", true).
		Order("id ASC").
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return toDomainSlice(sms), nil
}

func (r *SQLRepository) FindByID(ctx context.Context, id int64) (*Model, error) {
	sm := new(sqlModel)
	err := r.db.NewSelect().
		Model(sm).
		Where("id = ? AND active = ?", id, true).
		Scan(ctx)
	if err != nil {
		if err.Error() == "sql: no rows in result set" {
			return nil, nil
		}
		return nil, err
	}
	return sm.toDomain(), nil
}

func (r *SQLRepository) FindByIDs(ctx context.Context, ids []int64) ([]*Model, error) {
	if len(ids) == 0 {
		return []*Model{}, nil
	}

	var sms []*sqlModel
	err := r.db.NewSelect().
		Model(&sms).
		Where("id IN (?) AND active = ?", bun.In(ids), true).
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
