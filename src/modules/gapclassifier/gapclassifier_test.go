package gapclassifier

import (
	"testing"

	"fleetstatus/src/modules/interval"
	"fleetstatus/src/modules/shared"

	"github.com/stretchr/testify/assert"
)

func up(t int64) Check   { return Check{CheckedAt: t, Status: shared.CheckStatusUp} }
func unk(t int64) Check  { return Check{CheckedAt: t, Status: shared.CheckStatusUnknown} }
func down(t int64) Check { return Check{CheckedAt: t, Status: shared.CheckStatusDown} }

func TestClassifyEmptyRange(t *testing.T) {
	got := Classify(100, 100, 60, nil)
	assert.Equal(t, interval.Set{}, got)

	got = Classify(200, 100, 60, nil)
	assert.Equal(t, interval.Set{}, got)
}

func TestClassifyDegenerateInterval(t *testing.T) {
	got := Classify(1000, 1600, 0, []Check{up(970)})
	assert.Equal(t, interval.Set{{Start: 1000, End: 1600}}, got)

	got = Classify(1000, 1600, -5, nil)
	assert.Equal(t, interval.Set{{Start: 1000, End: 1600}}, got)
}

func TestClassifyNoChecksAtAll(t *testing.T) {
	got := Classify(1000, 4600, 60, nil)
	assert.Equal(t, interval.Set{{Start: 1000, End: 4600}}, got)
}

// S2: continuous up checks every 60s inside a 600s window, no gaps.
func TestClassifyContinuousUp(t *testing.T) {
	checks := []Check{up(940), up(1000), up(1060), up(1120), up(1180), up(1240), up(1300), up(1360), up(1420), up(1480), up(1540)}
	got := Classify(1000, 1600, 60, checks)
	assert.Equal(t, interval.Set{}, got)
}

// S3: single stale pre-range check, verdict expires before range starts.
func TestClassifyVerdictExpiredBeforeRange(t *testing.T) {
	checks := []Check{up(900)}
	got := Classify(1000, 1600, 60, checks)
	assert.Equal(t, interval.Set{{Start: 1000, End: 1600}}, got)
}

// S4: straddling verdict expires partway through the range.
func TestClassifyStraddlingVerdict(t *testing.T) {
	checks := []Check{up(970)}
	got := Classify(1000, 1600, 60, checks)
	assert.Equal(t, interval.Set{{Start: 1030, End: 1600}}, got)
	assert.Equal(t, int64(570), got.Sum())
}

func TestClassifyUnknownCheckCoversItsValidity(t *testing.T) {
	checks := []Check{unk(1000)}
	got := Classify(1000, 1600, 60, checks)
	// [1000,1060) unknown because the check itself says unknown,
	// [1060,1600) unknown because the verdict expired.
	assert.Equal(t, interval.Set{{Start: 1000, End: 1600}}, got)
}

func TestClassifyGapBetweenTwoChecks(t *testing.T) {
	checks := []Check{up(1000), up(1200)}
	got := Classify(1000, 1300, 60, checks)
	// [1000,1060) covered up, [1060,1200) expired+unknown, [1200,1260) covered up, [1260,1300) expired.
	assert.Equal(t, interval.Set{{Start: 1060, End: 1200}, {Start: 1260, End: 1300}}, got)
}

func TestClassifyCheckAtOrAfterRangeEndIgnored(t *testing.T) {
	checks := []Check{up(900), up(1600)}
	got := Classify(1000, 1600, 60, checks)
	assert.Equal(t, interval.Set{{Start: 1000, End: 1600}}, got)
}

func TestClassifyDownCheckIsNotUnknown(t *testing.T) {
	checks := []Check{down(1000)}
	got := Classify(1000, 1060, 60, checks)
	assert.Equal(t, interval.Set{}, got)
}
