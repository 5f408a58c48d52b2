package statusapi

import (
	"context"
	"testing"
	"time"

	"fleetstatus/src/modules/checkresult"
	"fleetstatus/src/modules/monitor"
	"fleetstatus/src/modules/monitorstate"
	"fleetstatus/src/modules/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeMonitorService struct{ monitors []*monitor.Model }

func (f *fakeMonitorService) FindActive(ctx context.Context) ([]*monitor.Model, error) {
	return f.monitors, nil
}
func (f *fakeMonitorService) FindByID(ctx context.Context, id int64) (*monitor.Model, error) {
	return nil, nil
}
func (f *fakeMonitorService) FindByIDs(ctx context.Context, ids []int64) ([]*monitor.Model, error) {
	return nil, nil
}

type fakeStateService struct{ states []*monitorstate.Model }

func (f *fakeStateService) FindByMonitorIDs(ctx context.Context, ids []int64) ([]*monitorstate.Model, error) {
	return f.states, nil
}

type fakeCheckResultService struct{ checks []*checkresult.Model }

func (f *fakeCheckResultService) FindRecentByMonitorIDs(ctx context.Context, ids []int64, since int64, limit int) ([]*checkresult.Model, error) {
	return f.checks, nil
}
func (f *fakeCheckResultService) FindInRangeInclusive(ctx context.Context, id int64, start, end int64) ([]*checkresult.Model, error) {
	return nil, nil
}
func (f *fakeCheckResultService) FindFrom(ctx context.Context, id int64, start, end int64) ([]*checkresult.Model, error) {
	return nil, nil
}

func i64(v int64) *int64 { return &v }

func TestOverallStatusPriority(t *testing.T) {
	assert.Equal(t, shared.MonitorStatusDown, overallStatus(SummaryDTO{Down: 1, Up: 5, Unknown: 2}))
	assert.Equal(t, shared.MonitorStatusUnknown, overallStatus(SummaryDTO{Unknown: 1, Up: 5}))
	assert.Equal(t, shared.MonitorStatusMaintenance, overallStatus(SummaryDTO{Maintenance: 1, Up: 5}))
	assert.Equal(t, shared.MonitorStatusUp, overallStatus(SummaryDTO{Up: 1}))
	assert.Equal(t, shared.MonitorStatusPaused, overallStatus(SummaryDTO{Paused: 1}))
	assert.Equal(t, shared.MonitorStatusUnknown, overallStatus(SummaryDTO{}))
}

func TestGetStatusAppliesFreshnessAndOverallStatus(t *testing.T) {
	monitors := []*monitor.Model{
		{ID: 1, Name: "api", Type: "http", IntervalSec: 60, Active: true},
		{ID: 2, Name: "db", Type: "tcp", IntervalSec: 60, Active: true},
	}
	recent := time.Now().Unix() - 10
	states := []*monitorstate.Model{
		{MonitorID: 1, Status: shared.MonitorStatusUp, LastCheckedAt: i64(recent), LastLatencyMs: i64(5)},
		// monitor 2 has no state row -> treated as never checked -> stale/unknown
	}
	checks := []*checkresult.Model{
		{MonitorID: 1, CheckedAt: recent - 5, Status: shared.CheckStatusUp, LatencyMs: i64(3)},
		{MonitorID: 1, CheckedAt: recent, Status: shared.CheckStatusUp, LatencyMs: i64(5)},
	}

	svc := NewService(
		&fakeMonitorService{monitors: monitors},
		&fakeStateService{states: states},
		&fakeCheckResultService{checks: checks},
		zap.NewNop().Sugar(),
	)

	resp, err := svc.GetStatus(context.Background())
	require.NoError(t, err)
	require.Len(t, resp.Monitors, 2)

	m2 := resp.Monitors[1]
	assert.Equal(t, shared.MonitorStatusUnknown, m2.Status)
	assert.True(t, m2.IsStale)
	assert.Equal(t, shared.MonitorStatusUnknown, resp.OverallStatus)
	assert.Equal(t, 1, resp.Summary.Unknown)

	m1 := resp.Monitors[0]
	assert.False(t, m1.IsStale)
	assert.Equal(t, shared.MonitorStatusUp, m1.Status)
	require.Len(t, m1.Heartbeats, 2)
	assert.Equal(t, recent-5, m1.Heartbeats[0].CheckedAt)
	assert.Equal(t, recent, m1.Heartbeats[1].CheckedAt)
}
