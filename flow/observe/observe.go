// Package observe provides pass-through pipeline stages for monitoring,
// metrics and debugging. Every stage is built on core.Pipeline.Watch, so
// observing a pipeline never changes the elements, their indices or the
// short-circuit behaviour of the terminal operation.
package observe

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/lguimbarda/semantic-flow/flow/core"
)

// TraversalMetrics holds statistics about one traversal of a pipeline.
type TraversalMetrics struct {
	// Counts
	TotalItems int64

	// Timing
	StartTime     time.Time
	EndTime       time.Time
	FirstItemTime time.Time
	LastItemTime  time.Time

	// Throughput
	ItemsPerSecond float64

	// Latency (time between items)
	MinLatency time.Duration
	MaxLatency time.Duration
	AvgLatency time.Duration
}

// Duration returns the wall time of the traversal.
func (m TraversalMetrics) Duration() time.Duration {
	return m.EndTime.Sub(m.StartTime)
}

// Measure returns a pipeline that collects metrics about every traversal.
// onComplete is called with the final metrics when the traversal ends,
// including when the terminal operation stopped it early. Traversals of
// the returned pipeline must not run concurrently.
func Measure[T any](p core.Pipeline[T], onComplete func(TraversalMetrics)) core.Pipeline[T] {
	var (
		metrics      TraversalMetrics
		lastItemTime time.Time
		totalLatency time.Duration
		latencyCount int64
	)
	return p.Watch(core.Hooks[T]{
		OnStart: func() {
			metrics = TraversalMetrics{
				StartTime:  time.Now(),
				MinLatency: time.Duration(1<<63 - 1), // Max duration
			}
			lastItemTime = time.Time{}
			totalLatency, latencyCount = 0, 0
		},
		OnElement: func(T, int) {
			now := time.Now()
			metrics.TotalItems++
			if metrics.FirstItemTime.IsZero() {
				metrics.FirstItemTime = now
			}
			metrics.LastItemTime = now

			if !lastItemTime.IsZero() {
				latency := now.Sub(lastItemTime)
				totalLatency += latency
				latencyCount++
				metrics.MinLatency = min(metrics.MinLatency, latency)
				metrics.MaxLatency = max(metrics.MaxLatency, latency)
			}
			lastItemTime = now
		},
		OnComplete: func(int) {
			metrics.EndTime = time.Now()
			if latencyCount == 0 {
				metrics.MinLatency = 0
			} else {
				metrics.AvgLatency = totalLatency / time.Duration(latencyCount)
			}
			if metrics.TotalItems > 0 {
				if duration := metrics.Duration().Seconds(); duration > 0 {
					metrics.ItemsPerSecond = float64(metrics.TotalItems) / duration
				}
			}
			if onComplete != nil {
				onComplete(metrics)
			}
		},
	})
}

// LiveMetrics holds real-time metrics that can be read concurrently.
type LiveMetrics struct {
	totalItems   atomic.Int64
	traversals   atomic.Int64
	startTime    atomic.Int64 // Unix nano
	lastItemTime atomic.Int64 // Unix nano
}

// TotalItems returns the total number of elements forwarded.
func (m *LiveMetrics) TotalItems() int64 { return m.totalItems.Load() }

// Traversals returns how many traversals have started.
func (m *LiveMetrics) Traversals() int64 { return m.traversals.Load() }

// StartTime returns when the latest traversal started.
func (m *LiveMetrics) StartTime() time.Time {
	return time.Unix(0, m.startTime.Load())
}

// LastItemTime returns when the last element was forwarded.
func (m *LiveMetrics) LastItemTime() time.Time {
	return time.Unix(0, m.lastItemTime.Load())
}

// Duration returns how long the latest traversal has been running.
func (m *LiveMetrics) Duration() time.Duration {
	start := m.startTime.Load()
	if start == 0 {
		return 0
	}
	return time.Since(time.Unix(0, start))
}

// ItemsPerSecond returns the current throughput.
func (m *LiveMetrics) ItemsPerSecond() float64 {
	duration := m.Duration().Seconds()
	if duration <= 0 {
		return 0
	}
	return float64(m.TotalItems()) / duration
}

// MeasureLive returns a pipeline that updates metrics while it is being
// traversed. metrics can be read from another goroutine.
func MeasureLive[T any](p core.Pipeline[T], metrics *LiveMetrics) core.Pipeline[T] {
	return p.Watch(core.Hooks[T]{
		OnStart: func() {
			metrics.traversals.Add(1)
			metrics.startTime.Store(time.Now().UnixNano())
		},
		OnElement: func(T, int) {
			metrics.totalItems.Add(1)
			metrics.lastItemTime.Store(time.Now().UnixNano())
		},
	})
}

// RateMeter tracks the rate of items per second over a sliding window.
type RateMeter struct {
	mu         sync.Mutex
	window     time.Duration
	counts     []int64
	times      []time.Time
	totalCount int64
}

// NewRateMeter creates a new rate meter with the specified window size.
func NewRateMeter(window time.Duration) *RateMeter {
	return &RateMeter{
		window: window,
	}
}

// Add records count new items.
func (r *RateMeter) Add(count int64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	r.counts = append(r.counts, count)
	r.times = append(r.times, now)
	r.totalCount += count

	cutoff := now.Add(-r.window)
	for len(r.times) > 0 && r.times[0].Before(cutoff) {
		r.totalCount -= r.counts[0]
		r.counts = r.counts[1:]
		r.times = r.times[1:]
	}
}

// Rate returns the current rate per second.
func (r *RateMeter) Rate() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.times) == 0 {
		return 0
	}
	duration := time.Since(r.times[0]).Seconds()
	if duration <= 0 {
		return 0
	}
	return float64(r.totalCount) / duration
}

// TotalCount returns the total count within the window.
func (r *RateMeter) TotalCount() int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.totalCount
}

// MeterRate returns a pipeline that records every forwarded element on meter.
func MeterRate[T any](p core.Pipeline[T], meter *RateMeter) core.Pipeline[T] {
	return p.Watch(core.Hooks[T]{
		OnElement: func(T, int) { meter.Add(1) },
	})
}

// Histogram tracks the distribution of values.
type Histogram[T comparable] struct {
	mu     sync.RWMutex
	counts map[T]int64
	total  int64
}

// NewHistogram creates a new histogram.
func NewHistogram[T comparable]() *Histogram[T] {
	return &Histogram[T]{
		counts: make(map[T]int64),
	}
}

// Add records a value.
func (h *Histogram[T]) Add(value T) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.counts[value]++
	h.total++
}

// Count returns the count for a specific value.
func (h *Histogram[T]) Count(value T) int64 {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.counts[value]
}

// Total returns the total count.
func (h *Histogram[T]) Total() int64 {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.total
}

// Counts returns a copy of all counts.
func (h *Histogram[T]) Counts() map[T]int64 {
	h.mu.RLock()
	defer h.mu.RUnlock()
	result := make(map[T]int64, len(h.counts))
	for k, v := range h.counts {
		result[k] = v
	}
	return result
}

// MeterHistogram returns a pipeline that records every forwarded element
// in histogram.
func MeterHistogram[T comparable](p core.Pipeline[T], histogram *Histogram[T]) core.Pipeline[T] {
	return p.Watch(core.Hooks[T]{
		OnElement: func(v T, _ int) { histogram.Add(v) },
	})
}
