package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFloorToMinute(t *testing.T) {
	assert.Equal(t, int64(1000*60), FloorToMinute(1000*60+59))
	assert.Equal(t, int64(0), FloorToMinute(59))
	assert.Equal(t, int64(120), FloorToMinute(120))
}

func TestRangeSeconds(t *testing.T) {
	tests := []struct {
		key  string
		want int64
	}{
		{"24h", 86400},
		{"7d", 604800},
		{"30d", 2592000},
	}
	for _, tt := range tests {
		got, err := RangeSeconds(tt.key)
		assert.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}

	_, err := RangeSeconds("bogus")
	assert.Error(t, err)
}

func TestPercentileIndexSingleElement(t *testing.T) {
	assert.Equal(t, 0, PercentileIndex(0.95, 1))
}

func TestPercentileIndexClampsWithinBounds(t *testing.T) {
	for n := 1; n <= 200; n++ {
		idx := PercentileIndex(0.95, n)
		assert.GreaterOrEqual(t, idx, 0)
		assert.LessOrEqual(t, idx, n-1)
	}
}

func TestPercentileIndexKnownValues(t *testing.T) {
	// n=20: ceil(0.95*20)-1 = ceil(19)-1 = 18
	assert.Equal(t, 18, PercentileIndex(0.95, 20))
	// n=21: ceil(19.95)-1 = 20-1 = 19
	assert.Equal(t, 19, PercentileIndex(0.95, 21))
	// n=100: ceil(95)-1 = 94
	assert.Equal(t, 94, PercentileIndex(0.95, 100))
}
