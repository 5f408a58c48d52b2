package monitorstate

import (
	"context"

	"go.uber.org/zap"
)

type Service interface {
	FindByMonitorIDs(ctx context.Context, monitorIDs []int64) ([]*Model, error)
}

type ServiceImpl struct {
	repository Repository
	logger     *zap.SugaredLogger
}

func NewService(repository Repository, logger *zap.SugaredLogger) Service {
	return &ServiceImpl{repository, logger.Named("[monitorstate-service]")}
}

func (s *ServiceImpl) FindByMonitorIDs(ctx context.Context, monitorIDs []int64) ([]*Model, error) {
	return s.repository.FindByMonitorIDs(ctx, monitorIDs)
}
