package api

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestProcStats_EmptySnapshot(t *testing.T) {
	s := NewProcStats(time.Hour)
	assert.Equal(t, StatsSnapshot{}, s.Snapshot())
}

func TestProcStats_Aggregates(t *testing.T) {
	s := NewProcStats(time.Hour)
	for _, d := range []int64{10, 20, 30, 40, 50} {
		s.Record(d)
	}

	snap := s.Snapshot()
	assert.Equal(t, 5, snap.Count)
	assert.Equal(t, int64(10), snap.MinMs)
	assert.Equal(t, int64(50), snap.MaxMs)
	assert.InDelta(t, 30.0, snap.AvgMs, 0.001)
	assert.InDelta(t, 30.0, snap.P50Ms, 0.001)
}

func TestProcStats_NegativeClampedToZero(t *testing.T) {
	s := NewProcStats(time.Hour)
	s.Record(-5)

	snap := s.Snapshot()
	assert.Equal(t, 1, snap.Count)
	assert.Equal(t, int64(0), snap.MinMs)
}

func TestProcStats_PrunesOldSamples(t *testing.T) {
	s := NewProcStats(time.Minute)
	now := time.Now()
	s.samples = []sample{
		{timestamp: now.Add(-2 * time.Minute), durationMs: 100},
		{timestamp: now.Add(-30 * time.Second), durationMs: 20},
	}

	snap := s.Snapshot()
	assert.Equal(t, 1, snap.Count)
	assert.Equal(t, int64(20), snap.MinMs)
}

func TestPercentile(t *testing.T) {
	values := []int64{10, 20, 30, 40}

	assert.Equal(t, 10.0, percentile(values, 0))
	assert.Equal(t, 40.0, percentile(values, 100))
	assert.InDelta(t, 25.0, percentile(values, 50), 0.001)
	assert.Equal(t, 0.0, percentile(nil, 50))
}
