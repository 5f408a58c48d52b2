package latency

import (
	"context"
	"sort"
	"time"

	"fleetstatus/src/modules/checkresult"
	"fleetstatus/src/modules/monitor"
	"fleetstatus/src/modules/shared"
	"fleetstatus/src/utils"

	"go.uber.org/zap"
)

const defaultRange = "24h"

type Service interface {
	GetLatency(ctx context.Context, monitorID int64, rangeKey string) (*ResponseDTO, error)
}

type ServiceImpl struct {
	monitorService     monitor.Service
	checkResultService checkresult.Service
	logger             *zap.SugaredLogger
}

func NewService(monitorService monitor.Service, checkResultService checkresult.Service, logger *zap.SugaredLogger) Service {
	return &ServiceImpl{monitorService, checkResultService, logger.Named("[latency-service]")}
}

func (s *ServiceImpl) GetLatency(ctx context.Context, monitorID int64, rangeKey string) (*ResponseDTO, error) {
	if rangeKey == "" {
		rangeKey = defaultRange
	}
	if rangeKey != "24h" {
		return nil, &utils.ValidationError{Message: "range must be 24h"}
	}
	rangeSeconds, err := utils.RangeSeconds(rangeKey)
	if err != nil {
		return nil, &utils.ValidationError{Message: err.Error()}
	}

	m, err := s.monitorService.FindByID(ctx, monitorID)
	if err != nil {
		return nil, &utils.InternalError{Message: "failed to load monitor", Cause: err}
	}
	if m == nil {
		return nil, utils.NewNotFoundError()
	}

	now := time.Now().Unix()
	rangeEnd := utils.FloorToMinute(now)
	rangeStart := rangeEnd - rangeSeconds

	checks, err := s.checkResultService.FindInRangeInclusive(ctx, monitorID, rangeStart, rangeEnd)
	if err != nil {
		return nil, &utils.InternalError{Message: "failed to load checks", Cause: err}
	}

	points := make([]PointDTO, 0, len(checks))
	var upLatencies []int64
	for _, c := range checks {
		points = append(points, PointDTO{CheckedAt: c.CheckedAt, Status: c.Status, LatencyMs: c.LatencyMs})
		if c.Status == shared.CheckStatusUp && c.LatencyMs != nil {
			upLatencies = append(upLatencies, *c.LatencyMs)
		}
	}

	return &ResponseDTO{
		Monitor:      MonitorRefDTO{ID: m.ID, Name: m.Name},
		Range:        rangeKey,
		RangeStartAt: rangeStart,
		RangeEndAt:   rangeEnd,
		AvgLatencyMs: average(upLatencies),
		P95LatencyMs: percentile95(upLatencies),
		Points:       points,
	}, nil
}

func average(xs []int64) *int64 {
	if len(xs) == 0 {
		return nil
	}
	var sum int64
	for _, x := range xs {
		sum += x
	}
	avg := int64((float64(sum)/float64(len(xs)) + 0.5))
	return &avg
}

// percentile95 sorts a copy of xs ascending and takes the nearest-rank
// element at the clamped index from utils.PercentileIndex.
func percentile95(xs []int64) *int64 {
	if len(xs) == 0 {
		return nil
	}
	sorted := make([]int64, len(xs))
	copy(sorted, xs)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	idx := utils.PercentileIndex(0.95, len(sorted))
	v := sorted[idx]
	return &v
}
