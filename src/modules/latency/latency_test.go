package latency

import (
	"context"
	"testing"

	"fleetstatus/src/modules/checkresult"
	"fleetstatus/src/modules/monitor"
	"fleetstatus/src/modules/shared"
	"fleetstatus/src/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeMonitorService struct {
	m *monitor.Model
}

func (f *fakeMonitorService) FindActive(ctx context.Context) ([]*monitor.Model, error) { return nil, nil }
func (f *fakeMonitorService) FindByID(ctx context.Context, id int64) (*monitor.Model, error) {
	return f.m, nil
}
func (f *fakeMonitorService) FindByIDs(ctx context.Context, ids []int64) ([]*monitor.Model, error) {
	return nil, nil
}

type fakeCheckResultService struct {
	checks []*checkresult.Model
}

func (f *fakeCheckResultService) FindRecentByMonitorIDs(ctx context.Context, ids []int64, since int64, limit int) ([]*checkresult.Model, error) {
	return nil, nil
}
func (f *fakeCheckResultService) FindInRangeInclusive(ctx context.Context, id int64, start, end int64) ([]*checkresult.Model, error) {
	return f.checks, nil
}
func (f *fakeCheckResultService) FindFrom(ctx context.Context, id int64, start, end int64) ([]*checkresult.Model, error) {
	return nil, nil
}

func i64(v int64) *int64 { return &v }

func TestGetLatencyNotFound(t *testing.T) {
	svc := NewService(&fakeMonitorService{m: nil}, &fakeCheckResultService{}, zap.NewNop().Sugar())
	_, err := svc.GetLatency(context.Background(), 1, "24h")
	require.Error(t, err)
	var nf *utils.NotFoundError
	require.ErrorAs(t, err, &nf)
}

func TestGetLatencyRejectsUnknownRange(t *testing.T) {
	svc := NewService(&fakeMonitorService{m: &monitor.Model{ID: 1, Name: "api"}}, &fakeCheckResultService{}, zap.NewNop().Sugar())
	_, err := svc.GetLatency(context.Background(), 1, "7d")
	require.Error(t, err)
	var ve *utils.ValidationError
	require.ErrorAs(t, err, &ve)
}

func TestGetLatencyComputesAvgAndP95OverUpOnly(t *testing.T) {
	checks := []*checkresult.Model{
		{CheckedAt: 1, Status: shared.CheckStatusUp, LatencyMs: i64(10)},
		{CheckedAt: 2, Status: shared.CheckStatusDown, LatencyMs: i64(999)}, // excluded: not up
		{CheckedAt: 3, Status: shared.CheckStatusUp, LatencyMs: i64(20)},
		{CheckedAt: 4, Status: shared.CheckStatusUp, LatencyMs: nil}, // excluded: no latency
	}
	svc := NewService(&fakeMonitorService{m: &monitor.Model{ID: 1, Name: "api"}}, &fakeCheckResultService{checks: checks}, zap.NewNop().Sugar())

	resp, err := svc.GetLatency(context.Background(), 1, "24h")
	require.NoError(t, err)
	require.NotNil(t, resp.AvgLatencyMs)
	assert.Equal(t, int64(15), *resp.AvgLatencyMs)
	require.NotNil(t, resp.P95LatencyMs)
	assert.Equal(t, int64(20), *resp.P95LatencyMs) // n=2, ceil(0.95*2)-1=1 -> sorted[1]=20
	assert.Len(t, resp.Points, 4)
}

func TestGetLatencyEmptySetYieldsNilStats(t *testing.T) {
	svc := NewService(&fakeMonitorService{m: &monitor.Model{ID: 1, Name: "api"}}, &fakeCheckResultService{}, zap.NewNop().Sugar())
	resp, err := svc.GetLatency(context.Background(), 1, "")
	require.NoError(t, err)
	assert.Nil(t, resp.AvgLatencyMs)
	assert.Nil(t, resp.P95LatencyMs)
	assert.Equal(t, "24h", resp.Range)
}
