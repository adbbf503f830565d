package rank_test

import (
	"testing"
	"time"

	"planner/internal/rank"

	"github.com/stretchr/testify/assert"
)

func f(v float64) *float64 { return &v }

func TestAllocate_Between(t *testing.T) {
	pairs := [][2]float64{{1, 2}, {-5, 5}, {0.25, 0.5}, {1700000000000, 1700000000001}}
	for _, p := range pairs {
		r := rank.Allocate(f(p[0]), f(p[1]), time.Now())
		assert.Greater(t, r, p[0])
		assert.Less(t, r, p[1])
	}
}

func TestAllocate_Boundaries(t *testing.T) {
	now := time.Now()

	assert.Equal(t, 8.5, rank.Allocate(f(7.5), nil, now))
	assert.Equal(t, 6.5, rank.Allocate(nil, f(7.5), now))
}

func TestAllocate_NeitherUsesClock(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, float64(now.UnixMilli()), rank.Allocate(nil, nil, now))
}

func TestAllocate_RepeatedMidpointStaysOrdered(t *testing.T) {
	lo, hi := 1.0, 2.0
	for i := 0; i < 30; i++ {
		mid := rank.Allocate(&lo, &hi, time.Now())
		assert.Greater(t, mid, lo)
		assert.Less(t, mid, hi)
		hi = mid
	}
}

func TestSpread(t *testing.T) {
	assert.Equal(t, []float64{1000, 2000, 3000}, rank.Spread(3, 1000))
	assert.Empty(t, rank.Spread(0, 1000))
}
