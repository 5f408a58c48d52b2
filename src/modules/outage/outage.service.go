package outage

import (
	"context"

	"go.uber.org/zap"
)

type Service interface {
	FindOverlapping(ctx context.Context, monitorID int64, rangeStart, rangeEnd int64) ([]*Model, error)
}

type ServiceImpl struct {
	repository Repository
	logger     *zap.SugaredLogger
}

func NewService(repository Repository, logger *zap.SugaredLogger) Service {
	return &ServiceImpl{repository, logger.Named("[outage-service]")}
}

func (s *ServiceImpl) FindOverlapping(ctx context.Context, monitorID int64, rangeStart, rangeEnd int64) ([]*Model, error) {
	return s.repository.FindOverlapping(ctx, monitorID, rangeStart, rangeEnd)
}
