package monitor

import (
	"context"

	"go.uber.org/zap"
)

type Service interface {
	FindActive(ctx context.Context) ([]*Model, error)
	FindByID(ctx context.Context, id int64) (*Model, error)
	FindByIDs(ctx context.Context, ids []int64) ([]*Model, error)
}

type ServiceImpl struct {
	repository Repository
	logger     *zap.SugaredLogger
}

func NewService(repository Repository, logger *zap.SugaredLogger) Service {
	return &ServiceImpl{repository, logger.Named("[monitor-service]")}
}

func (s *ServiceImpl) FindActive(ctx context.Context) ([]*Model, error) {
	return s.repository.FindActive(ctx)
}

func (s *ServiceImpl) FindByID(ctx context.Context, id int64) (*Model, error) {
	return s.repository.FindByID(ctx, id)
}

func (s *ServiceImpl) FindByIDs(ctx context.Context, ids []int64) ([]*Model, error) {
	return s.repository.FindByIDs(ctx, ids)
}
