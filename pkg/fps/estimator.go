package fps

import (
	"fmt"
	"slices"
	"sync"
	"time"
)

// Method selects the estimation strategy used by Estimator.FPS().
type Method int

const (
	// CountSamples counts the samples inside the window and divides by the
	// window length. The estimate is quantized to whole samples, which is fine
	// when the event rate is low or bursty.
	CountSamples Method = iota

	// AverageIntervals averages the interval between consecutive samples inside
	// the window, and inverts that. The estimate is continuous, but more
	// sensitive to jitter between individual events. Prefer this when the rate
	// is high and smooth, where CountSamples' quantization noise would dominate.
	AverageIntervals
)

// Prune old samples out of history every time this many successful
// estimates have been computed.
const cleanupInterval = 1000

// Estimator measures the rate at which some event occurs (eg frames arriving
// from a camera), from samples recorded manually by the caller. It runs no
// goroutines and owns no timers; you call AddSample() whenever your event
// fires, and FPS() whenever you want an estimate over a trailing time window.
//
// If there is not yet enough history to fill the requested window, FPS()
// returns a negative value. Callers poll until the estimate goes positive.
type Estimator struct {
	useLock bool
	lock    sync.Mutex // Guards history when useLock is true

	history      []time.Time // Sample times, oldest first
	rolling      float64
	decayFactor  float64
	cleanupCount int

	now func() time.Time // Overridden by tests
}

// EstimatorOptions control Estimator construction.
type EstimatorOptions struct {
	// Unsynchronized skips all internal locking. Only safe if the estimator is
	// used from a single goroutine.
	Unsynchronized bool
}

// NewEstimator returns a synchronized estimator with no decay (a soft estimate
// equals the instantaneous estimate until you call SetDecayFactor).
func NewEstimator() *Estimator {
	return NewEstimatorWithOptions(EstimatorOptions{})
}

func NewEstimatorWithOptions(opts EstimatorOptions) *Estimator {
	return &Estimator{
		useLock: !opts.Unsynchronized,
		now:     time.Now,
	}
}

// SetDecayFactor sets the weight that the rolling estimate retains from its
// previous value, vs the newest measurement. 0 means no smoothing. Values make
// sense in [0,1); this is not validated.
func (e *Estimator) SetDecayFactor(decayFactor float64) {
	e.decayFactor = decayFactor
}

// AddSample records that the event has just occurred.
func (e *Estimator) AddSample() {
	e.AddSampleAt(e.now())
}

// AddSampleAt records an event at an explicit time, for callers that already
// hold a timestamp (eg a frame PTS). Times must be fed in chronological order.
func (e *Estimator) AddSampleAt(t time.Time) {
	if e.useLock {
		e.lock.Lock()
		defer e.lock.Unlock()
	}
	e.history = append(e.history, t)
}

// Reset discards all recorded samples. The decay factor and the rolling
// estimate survive, so a soft estimate taken after Reset still blends with the
// value from before.
func (e *Estimator) Reset() {
	if e.useLock {
		e.lock.Lock()
		defer e.lock.Unlock()
	}
	e.history = nil
}

// FPS estimates the rate at which samples are currently arriving, measured
// over the past windowSeconds, ending now. Larger windows give more stable
// estimates, but smooth out high frequency changes in the rate.
//
// If softEstimate is true, the returned value is a rolling weighted average
// across successive calls (see SetDecayFactor). Either way, every successful
// call feeds the rolling average.
//
// If there is not enough recorded history to span the window, the return
// value is negative.
func (e *Estimator) FPS(windowSeconds float64, softEstimate bool, method Method) float64 {
	if e.useLock {
		e.lock.Lock()
		defer e.lock.Unlock()
	}
	if len(e.history) == 0 {
		return -1
	}

	// Walk backward from the newest sample until we find one that is at least
	// windowSeconds old. That sample is the anchor: proof that history spans
	// the whole window. A sample aged exactly windowSeconds is the anchor, not
	// part of the window.
	now := e.now()
	window := time.Duration(windowSeconds * float64(time.Second))
	anchor := -1
	for i := len(e.history) - 1; i >= 0; i-- {
		if now.Sub(e.history[i]) >= window {
			anchor = i
			break
		}
	}
	if anchor < 0 {
		// Not enough history yet to fill the window
		return -1
	}
	count := len(e.history) - anchor - 1

	var instantaneous float64
	switch method {
	case CountSamples:
		instantaneous = float64(count) / windowSeconds
	case AverageIntervals:
		// The span from the anchor to the newest sample covers exactly count
		// intervals. With fewer than two in-window samples there is nothing
		// meaningful to average.
		if count <= 1 {
			return -1
		}
		elapsed := e.history[len(e.history)-1].Sub(e.history[anchor])
		averageInterval := elapsed.Seconds() / float64(count)
		instantaneous = 1 / averageInterval
	default:
		panic(fmt.Sprintf("fps.Estimator: unknown estimation method %v", int(method)))
	}

	e.cleanupCount++
	if e.cleanupCount >= cleanupInterval {
		e.cleanupCount = 0
		// Discard everything older than the anchor. The anchor stays, so an
		// identical query issued immediately after sees the same history.
		e.history = slices.Delete(e.history, 0, anchor)
	}

	e.rolling = e.decayFactor*e.rolling + (1-e.decayFactor)*instantaneous
	if softEstimate {
		return e.rolling
	}
	return instantaneous
}
