package fps

import (
	"math"
	"sync"
	"time"

	"github.com/bmharper/ringbuffer"
)

// Monitor keeps a bounded history of frame arrival times, and estimates the
// framerate from the intervals between them. Unlike Estimator, which answers
// windowed-rate queries, Monitor answers "what rate is this camera configured
// for", snapped to realistic camera rates. It is safe to feed from a stream
// goroutine while another goroutine reads estimates.
type Monitor struct {
	lock     sync.Mutex
	capacity int
	frames   ringbuffer.RingP[time.Time]
}

// NewMonitor creates a Monitor that remembers the last maxFrames frame times
// (rounded up to a power of 2).
func NewMonitor(maxFrames int) *Monitor {
	capacity := nextPowerOf2(maxFrames)
	return &Monitor{
		capacity: capacity,
		frames:   ringbuffer.NewRingP[time.Time](capacity),
	}
}

// AddFrame records the arrival of a frame.
func (m *Monitor) AddFrame(t time.Time) {
	m.lock.Lock()
	defer m.lock.Unlock()
	m.frames.Add(t)
}

// EstimateFPS returns the estimated framerate over the recorded history, or -1
// if fewer than two frames have been recorded.
func (m *Monitor) EstimateFPS() float64 {
	intervals := m.intervals()
	if len(intervals) == 0 {
		return -1
	}
	return EstimateFromIntervals(intervals)
}

// Jitter returns the mean and standard deviation of the recorded frame
// intervals. Zero values if fewer than two frames have been recorded.
func (m *Monitor) Jitter() (mean, stdDev time.Duration) {
	return IntervalStats(m.intervals())
}

// Reset discards all recorded frame times.
func (m *Monitor) Reset() {
	m.lock.Lock()
	defer m.lock.Unlock()
	m.frames = ringbuffer.NewRingP[time.Time](m.capacity)
}

func (m *Monitor) intervals() []time.Duration {
	m.lock.Lock()
	defer m.lock.Unlock()
	n := m.frames.Len()
	if n < 2 {
		return nil
	}
	intervals := make([]time.Duration, 0, n-1)
	for i := 1; i < n; i++ {
		intervals = append(intervals, m.frames.Peek(i).Sub(m.frames.Peek(i-1)))
	}
	return intervals
}

func nextPowerOf2(n int) int {
	return 1 << int(math.Ceil(math.Log2(float64(n))))
}
