// Package window groups the elements of a flow pipeline into fixed-size
// windows.
//
// Every operation materializes the source once and is defined over
// SlidingWindows: a tumbling window is a sliding window whose step equals
// its size, and the remaining helpers filter, count, slice or map the
// resulting list of windows.
//
//	w := window.New(flow.Of(1, 2, 3, 4, 5))
//	w.SlidingWindows(3, 1) // [[1 2 3] [2 3 4] [3 4 5]]
//	w.TumblingWindows(2)   // [[1 2] [3 4]]
//
// A trailing partial window is never emitted.
package window

import (
	"github.com/samber/lo"

	"github.com/lguimbarda/semantic-flow/flow/core"
)

// Consumer is an ordered consumer with windowing operations.
type Consumer[T any] struct {
	*core.Ordered[T]
}

// Window is a window tagged with the offset of its first element in the
// materialized source.
type Window[T any] struct {
	Offset   int
	Elements []T
}

// New returns a window Consumer over p. No element is consumed until a
// windowing or terminal operation is called.
func New[T any](p core.Pipeline[T]) *Consumer[T] {
	return &Consumer[T]{Ordered: p.ToOrdered()}
}

// SlidingWindows materializes the source and returns every contiguous
// run of size elements starting at offsets 0, step, 2*step, ... while the
// run fits. Windows are private copies. size and step must be positive.
func (c *Consumer[T]) SlidingWindows(size, step int) [][]T {
	return lo.Map(c.Timestamped(size, step), func(w Window[T], _ int) []T { return w.Elements })
}

// TumblingWindows returns non-overlapping windows of size elements.
func (c *Consumer[T]) TumblingWindows(size int) [][]T {
	return c.SlidingWindows(size, size)
}

// Timestamped is SlidingWindows with every window tagged by its offset.
func (c *Consumer[T]) Timestamped(size, step int) []Window[T] {
	core.CheckPositive("SlidingWindows", "size", size)
	core.CheckPositive("SlidingWindows", "step", step)
	elements := c.ToList()
	windows := make([]Window[T], 0)
	for i := 0; i+size <= len(elements); i += step {
		w := make([]T, size)
		copy(w, elements[i:i+size])
		windows = append(windows, Window[T]{Offset: i, Elements: w})
	}
	return windows
}

// TimestampedTumbling is TumblingWindows with every window tagged by its
// offset.
func (c *Consumer[T]) TimestampedTumbling(size int) []Window[T] {
	return c.Timestamped(size, size)
}

// Slide returns a Pipeline of sliding windows indexed from 0.
func (c *Consumer[T]) Slide(size, step int) core.Pipeline[[]T] {
	return c.over(c.SlidingWindows(size, step))
}

// Tumble returns a Pipeline of tumbling windows indexed from 0.
func (c *Consumer[T]) Tumble(size int) core.Pipeline[[]T] {
	return c.Slide(size, size)
}

// CountWindows returns how many sliding windows the source yields.
func (c *Consumer[T]) CountWindows(size, step int) int {
	return len(c.SlidingWindows(size, step))
}

// CountTumblingWindows returns how many tumbling windows the source yields.
func (c *Consumer[T]) CountTumblingWindows(size int) int {
	return c.CountWindows(size, size)
}

// FirstWindow returns the first sliding window, if any.
func (c *Consumer[T]) FirstWindow(size, step int) core.Optional[[]T] {
	windows := c.SlidingWindows(size, step)
	if len(windows) == 0 {
		return core.None[[]T]()
	}
	return core.Of(windows[0])
}

// FirstTumblingWindow returns the first tumbling window, if any.
func (c *Consumer[T]) FirstTumblingWindow(size int) core.Optional[[]T] {
	return c.FirstWindow(size, size)
}

// LastWindow returns the last sliding window, if any.
func (c *Consumer[T]) LastWindow(size, step int) core.Optional[[]T] {
	windows := c.SlidingWindows(size, step)
	if len(windows) == 0 {
		return core.None[[]T]()
	}
	return core.Of(windows[len(windows)-1])
}

// LastTumblingWindow returns the last tumbling window, if any.
func (c *Consumer[T]) LastTumblingWindow(size int) core.Optional[[]T] {
	return c.LastWindow(size, size)
}

// AnyWindow reports whether some sliding window satisfies predicate.
func (c *Consumer[T]) AnyWindow(size, step int, predicate func([]T) bool) bool {
	core.CheckNotNil("AnyWindow", "predicate", predicate == nil)
	return lo.SomeBy(c.SlidingWindows(size, step), predicate)
}

// AllWindows reports whether every sliding window satisfies predicate.
// It is true when there are no windows.
func (c *Consumer[T]) AllWindows(size, step int, predicate func([]T) bool) bool {
	core.CheckNotNil("AllWindows", "predicate", predicate == nil)
	return lo.EveryBy(c.SlidingWindows(size, step), predicate)
}

// NoneWindow reports whether no sliding window satisfies predicate.
func (c *Consumer[T]) NoneWindow(size, step int, predicate func([]T) bool) bool {
	return !c.AnyWindow(size, step, predicate)
}

// PartitionWindows splits the sliding windows into at most parts chunks
// of ceil(len/parts) windows each.
func (c *Consumer[T]) PartitionWindows(size, step, parts int) [][][]T {
	core.CheckPositive("PartitionWindows", "parts", parts)
	windows := c.SlidingWindows(size, step)
	if len(windows) == 0 {
		return [][][]T{}
	}
	chunk := (len(windows) + parts - 1) / parts
	return lo.Chunk(windows, chunk)
}

func (c *Consumer[T]) over(windows [][]T) core.Pipeline[[]T] {
	return core.Iterate(core.SliceGenerator(windows), core.WithConfig(c.Config()))
}

// Windowed returns a window Consumer whose elements are the sliding
// windows of c, so windows of windows can be built.
func Windowed[T any](c *Consumer[T], size, step int) *Consumer[[]T] {
	return New(c.Slide(size, step))
}

// FilterWindows returns a window Consumer over the sliding windows that
// satisfy predicate.
func FilterWindows[T any](c *Consumer[T], size, step int, predicate func([]T) bool) *Consumer[[]T] {
	core.CheckNotNil("FilterWindows", "predicate", predicate == nil)
	kept := lo.Filter(c.SlidingWindows(size, step), func(w []T, _ int) bool { return predicate(w) })
	return New(c.over(kept))
}

// FilterTumblingWindows is FilterWindows with step == size.
func FilterTumblingWindows[T any](c *Consumer[T], size int, predicate func([]T) bool) *Consumer[[]T] {
	return FilterWindows(c, size, size, predicate)
}

// SkipWindows drops the first count sliding windows.
func SkipWindows[T any](c *Consumer[T], size, step, count int) *Consumer[[]T] {
	core.CheckNonNegative("SkipWindows", "count", count)
	return sliceWindows(c, size, step, count, -1)
}

// LimitWindows keeps the first count sliding windows.
func LimitWindows[T any](c *Consumer[T], size, step, count int) *Consumer[[]T] {
	core.CheckNonNegative("LimitWindows", "count", count)
	return sliceWindows(c, size, step, 0, count)
}

// SubWindows keeps the sliding windows with positions in [start, end).
func SubWindows[T any](c *Consumer[T], size, step, start, end int) *Consumer[[]T] {
	core.CheckRange("SubWindows", start, end)
	return sliceWindows(c, size, step, start, end)
}

// sliceWindows keeps windows[start:end] clamped to the list. A negative
// end keeps everything from start.
func sliceWindows[T any](c *Consumer[T], size, step, start, end int) *Consumer[[]T] {
	windows := c.SlidingWindows(size, step)
	if end < 0 {
		end = len(windows)
	}
	return New(c.over(lo.Slice(windows, start, end)))
}

// Aggregate applies fn to every sliding window together with size.
func Aggregate[T, R any](c *Consumer[T], size, step int, fn func(window []T, size int) R) []R {
	core.CheckNotNil("Aggregate", "fn", fn == nil)
	return lo.Map(c.SlidingWindows(size, step), func(w []T, _ int) R { return fn(w, size) })
}

// AggregateTumbling is Aggregate with step == size.
func AggregateTumbling[T, R any](c *Consumer[T], size int, fn func(window []T, size int) R) []R {
	return Aggregate(c, size, size, fn)
}

// MapWindows applies fn to every sliding window.
func MapWindows[T, R any](c *Consumer[T], size, step int, fn func([]T) R) []R {
	core.CheckNotNil("MapWindows", "fn", fn == nil)
	return lo.Map(c.SlidingWindows(size, step), func(w []T, _ int) R { return fn(w) })
}

// MapTumbling is MapWindows with step == size.
func MapTumbling[T, R any](c *Consumer[T], size int, fn func([]T) R) []R {
	return MapWindows(c, size, size, fn)
}

// GroupWindows files the sliding windows by classifier in first-seen key
// order.
func GroupWindows[T any, K comparable](c *Consumer[T], size, step int, classifier func([]T) K) core.Groups[K, []T] {
	core.CheckNotNil("GroupWindows", "classifier", classifier == nil)
	return core.Group(c.Slide(size, step), classifier)
}
