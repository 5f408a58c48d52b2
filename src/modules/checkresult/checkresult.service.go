package checkresult

import (
	"context"

	"go.uber.org/zap"
)

type Service interface {
	FindRecentByMonitorIDs(ctx context.Context, monitorIDs []int64, since int64, limit int) ([]*Model, error)
	FindInRangeInclusive(ctx context.Context, monitorID int64, start, end int64) ([]*Model, error)
	FindFrom(ctx context.Context, monitorID int64, start, end int64) ([]*Model, error)
}

type ServiceImpl struct {
	repository Repository
	logger     *zap.SugaredLogger
}

func NewService(repository Repository, logger *zap.SugaredLogger) Service {
	return &ServiceImpl{repository, logger.Named("[checkresult-service]")}
}

func (s *ServiceImpl) FindRecentByMonitorIDs(ctx context.Context, monitorIDs []int64, since int64, limit int) ([]*Model, error) {
	return s.repository.FindRecentByMonitorIDs(ctx, monitorIDs, since, limit)
}

func (s *ServiceImpl) FindInRangeInclusive(ctx context.Context, monitorID int64, start, end int64) ([]*Model, error) {
	return s.repository.FindInRangeInclusive(ctx, monitorID, start, end)
}

func (s *ServiceImpl) FindFrom(ctx context.Context, monitorID int64, start, end int64) ([]*Model, error) {
	return s.repository.FindFrom(ctx, monitorID, start, end)
}
