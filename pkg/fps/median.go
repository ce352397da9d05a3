package fps

import (
	"math"
	"slices"
	"time"
)

// Fallback FPS when we have no usable intervals. 10 is a common default
// framerate for security cameras.
const fallbackFPS = 10

// EstimateFromIntervals estimates a framerate from a set of consecutive frame
// intervals, using the median interval. The result is snapped to the rates
// cameras are actually configured for: whole numbers above 1 FPS, and
// 1/2, 1/4, 1/8, 1/16 below that (Hikvision supports sub-1FPS configs).
// The value is a float64 because of those sub-1FPS rates.
func EstimateFromIntervals(frameIntervals []time.Duration) float64 {
	if len(frameIntervals) == 0 {
		return fallbackFPS
	}
	sorted := make([]time.Duration, len(frameIntervals))
	copy(sorted, frameIntervals)
	slices.Sort(sorted)
	mid := sorted[len(sorted)/2]
	if mid == 0 {
		return fallbackFPS
	}
	fps := float64(time.Second) / float64(mid)
	if fps >= 0.9 {
		return math.Round(fps)
	}
	secondsPerFrame := 1.0 / fps
	spfR := math.Round(secondsPerFrame)
	return 1 / spfR
}

// IntervalStats returns the mean and standard deviation of the given frame
// intervals, as a jitter measurement. Zero values for an empty input.
func IntervalStats(frameIntervals []time.Duration) (mean, stdDev time.Duration) {
	if len(frameIntervals) == 0 {
		return 0, 0
	}
	sum := 0.0
	for _, v := range frameIntervals {
		sum += float64(v)
	}
	m := sum / float64(len(frameIntervals))
	variance := 0.0
	for _, v := range frameIntervals {
		diff := float64(v) - m
		variance += diff * diff
	}
	variance /= float64(len(frameIntervals))
	return time.Duration(m), time.Duration(math.Sqrt(variance))
}
