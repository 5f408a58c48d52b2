package uptime

import (
	"context"
	"time"

	"fleetstatus/src/modules/checkresult"
	"fleetstatus/src/modules/gapclassifier"
	"fleetstatus/src/modules/interval"
	"fleetstatus/src/modules/monitor"
	"fleetstatus/src/modules/outage"
	"fleetstatus/src/utils"

	"go.uber.org/zap"
)

const defaultRange = "24h"

type Service interface {
	GetUptime(ctx context.Context, monitorID int64, rangeKey string) (*ResponseDTO, error)
}

type ServiceImpl struct {
	monitorService     monitor.Service
	outageService      outage.Service
	checkResultService checkresult.Service
	logger             *zap.SugaredLogger
}

func NewService(
	monitorService monitor.Service,
	outageService outage.Service,
	checkResultService checkresult.Service,
	logger *zap.SugaredLogger,
) Service {
	return &ServiceImpl{monitorService, outageService, checkResultService, logger.Named("[uptime-service]")}
}

func (s *ServiceImpl) GetUptime(ctx context.Context, monitorID int64, rangeKey string) (*ResponseDTO, error) {
	if rangeKey == "" {
		rangeKey = defaultRange
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
	requestedRangeStart := rangeEnd - rangeSeconds
	rangeStart := requestedRangeStart
	if m.CreatedAt > rangeStart {
		rangeStart = m.CreatedAt
	}

	totalSec := rangeEnd - rangeStart
	if totalSec < 0 {
		totalSec = 0
	}

	outages, err := s.outageService.FindOverlapping(ctx, monitorID, rangeStart, rangeEnd)
	if err != nil {
		return nil, &utils.InternalError{Message: "failed to load outages", Cause: err}
	}
	downtimeIntervals := clampOutages(outages, rangeStart, rangeEnd)
	downtimeSec := downtimeIntervals.Sum()

	checkLookbackStart := rangeStart - m.IntervalSec
	checks, err := s.checkResultService.FindFrom(ctx, monitorID, checkLookbackStart, rangeEnd)
	if err != nil {
		return nil, &utils.InternalError{Message: "failed to load checks", Cause: err}
	}

	gapChecks := make([]gapclassifier.Check, 0, len(checks))
	for _, c := range checks {
		gapChecks = append(gapChecks, gapclassifier.Check{CheckedAt: c.CheckedAt, Status: c.Status})
	}
	unknownIntervals := gapclassifier.Classify(rangeStart, rangeEnd, m.IntervalSec, gapChecks)

	unknownSec := unknownIntervals.Sum() - interval.Overlap(unknownIntervals, downtimeIntervals)
	if unknownSec < 0 {
		unknownSec = 0
	}

	unavailableSec := downtimeSec + unknownSec
	if unavailableSec > totalSec {
		unavailableSec = totalSec
	}
	uptimeSec := totalSec - unavailableSec
	if uptimeSec < 0 {
		uptimeSec = 0
	}

	var uptimePct float64
	if totalSec != 0 {
		uptimePct = float64(uptimeSec) / float64(totalSec) * 100
	}

	return &ResponseDTO{
		Monitor:      MonitorRefDTO{ID: m.ID, Name: m.Name},
		Range:        rangeKey,
		RangeStartAt: rangeStart,
		RangeEndAt:   rangeEnd,
		TotalSec:     totalSec,
		DowntimeSec:  downtimeSec,
		UnknownSec:   unknownSec,
		UptimeSec:    uptimeSec,
		UptimePct:    uptimePct,
	}, nil
}

// clampOutages clips every outage to [rangeStart, rangeEnd), treating a
// nil EndedAt as still ongoing at rangeEnd, drops anything that clips
// to empty, and merges the rest into a single interval set.
func clampOutages(outages []*outage.Model, rangeStart, rangeEnd int64) interval.Set {
	raw := make([]interval.Interval, 0, len(outages))
	for _, o := range outages {
		start := o.StartedAt
		if start < rangeStart {
			start = rangeStart
		}
		end := rangeEnd
		if o.EndedAt != nil && *o.EndedAt < end {
			end = *o.EndedAt
		}
		if end <= start {
			continue
		}
		raw = append(raw, interval.Interval{Start: start, End: end})
	}
	return interval.Merge(raw)
}
