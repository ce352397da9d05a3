package fps

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestEstimateFromIntervals(t *testing.T) {
	// 15 FPS with a wobbly clock
	fps := EstimateFromIntervals([]time.Duration{
		66 * time.Millisecond,
		67 * time.Millisecond,
		66 * time.Millisecond,
	})
	require.Equal(t, 15.0, fps)

	// 30 FPS
	fps = EstimateFromIntervals([]time.Duration{
		33 * time.Millisecond,
		34 * time.Millisecond,
		33 * time.Millisecond,
		33 * time.Millisecond,
	})
	require.Equal(t, 30.0, fps)

	// 1 FPS
	fps = EstimateFromIntervals([]time.Duration{
		1000 * time.Millisecond,
		1002 * time.Millisecond,
		998 * time.Millisecond,
	})
	require.Equal(t, 1.0, fps)

	// Sub-1FPS rates snap to 1/2, 1/4, 1/8, 1/16
	fps = EstimateFromIntervals([]time.Duration{
		2000 * time.Millisecond,
		2003 * time.Millisecond,
		1998 * time.Millisecond,
	})
	require.Equal(t, 0.5, fps)

	fps = EstimateFromIntervals([]time.Duration{
		8050 * time.Millisecond,
		7980 * time.Millisecond,
		8011 * time.Millisecond,
	})
	require.Equal(t, 0.125, fps)

	// A single wild outlier doesn't move the median
	fps = EstimateFromIntervals([]time.Duration{
		100 * time.Millisecond,
		101 * time.Millisecond,
		2500 * time.Millisecond,
		99 * time.Millisecond,
		100 * time.Millisecond,
	})
	require.Equal(t, 10.0, fps)

	// Degenerate inputs fall back to the default
	require.Equal(t, 10.0, EstimateFromIntervals(nil))
	require.Equal(t, 10.0, EstimateFromIntervals([]time.Duration{0, 0, 0}))
}

func TestIntervalStats(t *testing.T) {
	mean, stdDev := IntervalStats([]time.Duration{
		100 * time.Millisecond,
		100 * time.Millisecond,
		100 * time.Millisecond,
	})
	require.Equal(t, 100*time.Millisecond, mean)
	require.Equal(t, time.Duration(0), stdDev)

	mean, stdDev = IntervalStats([]time.Duration{
		90 * time.Millisecond,
		110 * time.Millisecond,
	})
	require.Equal(t, 100*time.Millisecond, mean)
	require.Equal(t, 10*time.Millisecond, stdDev)

	mean, stdDev = IntervalStats(nil)
	require.Equal(t, time.Duration(0), mean)
	require.Equal(t, time.Duration(0), stdDev)
}
