package freshness

import (
	"testing"

	"fleetstatus/src/modules/shared"

	"github.com/stretchr/testify/assert"
)

func i64(v int64) *int64 { return &v }

func TestClassifyPausedNeverStale(t *testing.T) {
	got := Classify(10_000, State{
		Status:        shared.MonitorStatusPaused,
		LastCheckedAt: i64(0),
		IntervalSec:   60,
	})
	assert.False(t, got.Stale)
	assert.Equal(t, shared.MonitorStatusPaused, got.Status)
	assert.Equal(t, i64(0), got.LastCheckedAt)
}

func TestClassifyMaintenanceNeverStale(t *testing.T) {
	got := Classify(10_000, State{
		Status:        shared.MonitorStatusMaintenance,
		LastCheckedAt: nil,
		IntervalSec:   60,
	})
	assert.False(t, got.Stale)
	assert.Equal(t, shared.MonitorStatusMaintenance, got.Status)
}

func TestClassifyNeverCheckedIsStale(t *testing.T) {
	got := Classify(1000, State{
		Status:        shared.MonitorStatusUp,
		LastCheckedAt: nil,
		IntervalSec:   60,
	})
	assert.True(t, got.Stale)
	assert.Equal(t, shared.MonitorStatusUnknown, got.Status)
	assert.Nil(t, got.LastCheckedAt)
	assert.Nil(t, got.LastLatencyMs)
}

func TestClassifyFreshWithinThreshold(t *testing.T) {
	got := Classify(1100, State{
		Status:        shared.MonitorStatusUp,
		LastCheckedAt: i64(1000),
		LastLatencyMs: i64(42),
		IntervalSec:   60,
	})
	assert.False(t, got.Stale)
	assert.Equal(t, shared.MonitorStatusUp, got.Status)
	assert.Equal(t, i64(42), got.LastLatencyMs)
}

func TestClassifyExactlyAtThresholdIsFresh(t *testing.T) {
	// now - last == 2*interval exactly: strictly greater than is required to be stale.
	got := Classify(1120, State{
		Status:        shared.MonitorStatusUp,
		LastCheckedAt: i64(1000),
		IntervalSec:   60,
	})
	assert.False(t, got.Stale)
}

func TestClassifyJustOverThresholdIsStale(t *testing.T) {
	got := Classify(1121, State{
		Status:        shared.MonitorStatusUp,
		LastCheckedAt: i64(1000),
		LastLatencyMs: i64(42),
		IntervalSec:   60,
	})
	assert.True(t, got.Stale)
	assert.Equal(t, shared.MonitorStatusUnknown, got.Status)
	assert.Equal(t, i64(1000), got.LastCheckedAt)
	assert.Nil(t, got.LastLatencyMs)
}

func TestClassifyStaleDownBecomesUnknown(t *testing.T) {
	got := Classify(5000, State{
		Status:        shared.MonitorStatusDown,
		LastCheckedAt: i64(1000),
		IntervalSec:   60,
	})
	assert.True(t, got.Stale)
	assert.Equal(t, shared.MonitorStatusUnknown, got.Status)
}
