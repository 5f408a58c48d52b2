package statusapi

import (
	"context"
	"sort"
	"time"

	"fleetstatus/src/modules/checkresult"
	"fleetstatus/src/modules/freshness"
	"fleetstatus/src/modules/monitor"
	"fleetstatus/src/modules/monitorstate"
	"fleetstatus/src/modules/shared"
	"fleetstatus/src/utils"

	"go.uber.org/zap"
)

const (
	heartbeatLimit  = 60
	lookbackSeconds = 7 * 24 * 60 * 60
)

type Service interface {
	GetStatus(ctx context.Context) (*ResponseDTO, error)
}

type ServiceImpl struct {
	monitorService      monitor.Service
	monitorStateService monitorstate.Service
	checkResultService  checkresult.Service
	logger              *zap.SugaredLogger
}

func NewService(
	monitorService monitor.Service,
	monitorStateService monitorstate.Service,
	checkResultService checkresult.Service,
	logger *zap.SugaredLogger,
) Service {
	return &ServiceImpl{
		monitorService,
		monitorStateService,
		checkResultService,
		logger.Named("[statusapi-service]"),
	}
}

func (s *ServiceImpl) GetStatus(ctx context.Context) (*ResponseDTO, error) {
	now := time.Now().Unix()
	rangeEnd := utils.FloorToMinute(now)
	lookbackStart := rangeEnd - lookbackSeconds

	monitors, err := s.monitorService.FindActive(ctx)
	if err != nil {
		return nil, &utils.InternalError{Message: "failed to load monitors", Cause: err}
	}

	ids := make([]int64, 0, len(monitors))
	for _, m := range monitors {
		ids = append(ids, m.ID)
	}

	states, err := s.monitorStateService.FindByMonitorIDs(ctx, ids)
	if err != nil {
		return nil, &utils.InternalError{Message: "failed to load monitor state", Cause: err}
	}
	stateByMonitor := make(map[int64]*monitorstate.Model, len(states))
	for _, st := range states {
		stateByMonitor[st.MonitorID] = st
	}

	var heartbeats []*checkresult.Model
	if len(ids) > 0 {
		heartbeats, err = s.checkResultService.FindRecentByMonitorIDs(ctx, ids, lookbackStart, heartbeatLimit)
		if err != nil {
			return nil, &utils.InternalError{Message: "failed to load heartbeats", Cause: err}
		}
	}
	heartbeatsByMonitor := groupHeartbeats(heartbeats)

	summary := SummaryDTO{}
	monitorDTOs := make([]MonitorStatusDTO, 0, len(monitors))

	for _, m := range monitors {
		st, ok := stateByMonitor[m.ID]
		var fstate freshness.State
		if ok {
			fstate = freshness.State{
				Status:        st.Status,
				LastCheckedAt: st.LastCheckedAt,
				LastLatencyMs: st.LastLatencyMs,
				IntervalSec:   m.IntervalSec,
			}
		} else {
			fstate = freshness.State{
				Status:      shared.MonitorStatusUnknown,
				IntervalSec: m.IntervalSec,
			}
		}

		result := freshness.Classify(now, fstate)
		tally(&summary, result.Status)

		monitorDTOs = append(monitorDTOs, MonitorStatusDTO{
			ID:            m.ID,
			Name:          m.Name,
			Type:          m.Type,
			Status:        result.Status,
			IsStale:       result.Stale,
			LastCheckedAt: result.LastCheckedAt,
			LastLatencyMs: result.LastLatencyMs,
			Heartbeats:    toHeartbeatDTOs(heartbeatsByMonitor[m.ID]),
		})
	}

	return &ResponseDTO{
		GeneratedAt:   now,
		OverallStatus: overallStatus(summary),
		Summary:       summary,
		Monitors:      monitorDTOs,
	}, nil
}

func tally(summary *SummaryDTO, status shared.MonitorStatus) {
	switch status {
	case shared.MonitorStatusUp:
		summary.Up++
	case shared.MonitorStatusDown:
		summary.Down++
	case shared.MonitorStatusMaintenance:
		summary.Maintenance++
	case shared.MonitorStatusPaused:
		summary.Paused++
	default:
		summary.Unknown++
	}
}

// overallStatus applies the strict priority chain over fleet counts:
// down beats unknown beats maintenance beats up beats paused, and an
// entirely empty fleet rolls up to unknown.
func overallStatus(s SummaryDTO) shared.MonitorStatus {
	switch {
	case s.Down > 0:
		return shared.MonitorStatusDown
	case s.Unknown > 0:
		return shared.MonitorStatusUnknown
	case s.Maintenance > 0:
		return shared.MonitorStatusMaintenance
	case s.Up > 0:
		return shared.MonitorStatusUp
	case s.Paused > 0:
		return shared.MonitorStatusPaused
	default:
		return shared.MonitorStatusUnknown
	}
}

// groupHeartbeats buckets the batched top-N query result by monitor
// and sorts each bucket ascending by CheckedAt into chronological
// (oldest-first) order; the repository returns each monitor's slice
// most-recent-first.
func groupHeartbeats(checks []*checkresult.Model) map[int64][]*checkresult.Model {
	byMonitor := make(map[int64][]*checkresult.Model)
	for _, c := range checks {
		byMonitor[c.MonitorID] = append(byMonitor[c.MonitorID], c)
	}
	for id, bucket := range byMonitor {
		sort.Slice(bucket, func(i, j int) bool { return bucket[i].CheckedAt < bucket[j].CheckedAt })
		byMonitor[id] = bucket
	}
	return byMonitor
}

func toHeartbeatDTOs(checks []*checkresult.Model) []HeartbeatDTO {
	dtos := make([]HeartbeatDTO, 0, len(checks))
	for _, c := range checks {
		dtos = append(dtos, HeartbeatDTO{
			CheckedAt: c.CheckedAt,
			Status:    c.Status,
			LatencyMs: c.LatencyMs,
		})
	}
	return dtos
}
