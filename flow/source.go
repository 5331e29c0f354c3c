package flow

import (
	"iter"

	"github.com/lguimbarda/semantic-flow/flow/core"
)

// Fill creates a Pipeline that emits value count times.
// A negative count panics with an ArgumentError.
func Fill[T any](value T, count int, opts ...Option) Pipeline[T] {
	core.CheckNonNegative("Fill", "count", count)
	return FillWith(func() T { return value }, count, opts...)
}

// FillWith creates a Pipeline that calls supplier once per position and
// emits the result. A negative count panics with an ArgumentError.
func FillWith[T any](supplier func() T, count int, opts ...Option) Pipeline[T] {
	core.CheckNonNegative("FillWith", "count", count)
	core.CheckNotNil("FillWith", "supplier", supplier == nil)
	return core.Iterate(func(accept func(T, int), interrupt func(T) bool) {
		for i := 0; i < count; i++ {
			v := supplier()
			if interrupt(v) {
				return
			}
			accept(v, i)
		}
	}, opts...)
}

// From creates a Pipeline over an iterator sequence. The sequence may be
// infinite; it is pulled only as far as the terminal operation needs.
// A nil sequence yields an empty Pipeline.
func From[T any](seq iter.Seq[T], opts ...Option) Pipeline[T] {
	return core.Iterate(core.SeqGenerator(seq), opts...)
}

// FromSlice creates a Pipeline that emits each element of items in order.
// The slice is read at traversal time, not copied.
func FromSlice[T any](items []T, opts ...Option) Pipeline[T] {
	return core.Iterate(core.SliceGenerator(items), opts...)
}

// Of creates a Pipeline over the given elements.
func Of[T any](elements ...T) Pipeline[T] {
	return FromSlice(elements)
}

// FromChannel creates a Pipeline that drains ch until it is closed or the
// terminal operation stops the traversal. The caller is responsible for
// closing ch. A nil channel yields an empty Pipeline.
//
// Values are received on the traversal's goroutine, so a second traversal
// only sees what the first left in the channel.
func FromChannel[T any](ch <-chan T, opts ...Option) Pipeline[T] {
	if ch == nil {
		return core.Empty[T](opts...)
	}
	return core.Iterate(func(accept func(T, int), interrupt func(T) bool) {
		i := 0
		for v := range ch {
			if interrupt(v) {
				return
			}
			accept(v, i)
			i++
		}
	}, opts...)
}

// KeyValue is a map entry emitted by FromMap.
type KeyValue[K comparable, V any] struct {
	Key   K
	Value V
}

// FromMap creates a Pipeline over the entries of m, in Go's unspecified
// map iteration order.
func FromMap[K comparable, V any](m map[K]V, opts ...Option) Pipeline[KeyValue[K, V]] {
	return core.Iterate(func(accept func(KeyValue[K, V], int), interrupt func(KeyValue[K, V]) bool) {
		i := 0
		for k, v := range m {
			kv := KeyValue[K, V]{Key: k, Value: v}
			if interrupt(kv) {
				return
			}
			accept(kv, i)
			i++
		}
	}, opts...)
}

// Range creates a Pipeline over the half-open interval [start, end).
// The direction is taken from start and end, and only the magnitude of
// step is used, so Range(5, 0, 2) and Range(5, 0, -2) both emit 5, 3, 1.
// A zero step panics with an ArgumentError.
//
// The index of each value is its distance from start in steps.
func Range[N Number](start, end, step N, opts ...Option) Pipeline[N] {
	if step == 0 {
		panic(&core.ArgumentError{Op: "Range", Arg: "step", Reason: "must not be zero"})
	}
	ascending := start < end
	// advance moves v one step toward end and reports false once the
	// step leaves the range of N.
	advance := func(v N) (N, bool) {
		var next N
		switch {
		case ascending && step > 0:
			next = v + step
		case ascending:
			next = v - step
		case step > 0:
			next = v - step
		default:
			next = v + step
		}
		if ascending {
			return next, next > v
		}
		return next, next < v
	}
	inRange := func(v N) bool {
		if ascending {
			return v < end
		}
		return v > end
	}
	return core.Iterate(func(accept func(N, int), interrupt func(N) bool) {
		v := start
		for i := 0; inRange(v); i++ {
			if interrupt(v) {
				return
			}
			accept(v, i)
			next, ok := advance(v)
			if !ok {
				return
			}
			v = next
		}
	}, opts...)
}

// Iterate creates a Pipeline from a drive procedure. Every other factory
// in this package is built on it. A nil procedure panics with an
// ArgumentError.
//
// Example:
//
//	squares := flow.Iterate(func(accept func(int, int), interrupt func(int) bool) {
//	    for i := 0; ; i++ {
//	        if interrupt(i * i) {
//	            return
//	        }
//	        accept(i*i, i)
//	    }
//	})
func Iterate[T any](gen func(accept func(T, int), interrupt func(T) bool), opts ...Option) Pipeline[T] {
	return core.Iterate(Generator[T](gen), opts...)
}

// Empty creates a Pipeline that emits nothing.
func Empty[T any](opts ...Option) Pipeline[T] {
	return core.Empty[T](opts...)
}

// Generate creates a Pipeline that lazily calls fn until it reports false.
// Each traversal calls fn again, so stateful generators are not rewound.
func Generate[T any](fn func() (T, bool), opts ...Option) Pipeline[T] {
	core.CheckNotNil("Generate", "fn", fn == nil)
	return core.Iterate(func(accept func(T, int), interrupt func(T) bool) {
		for i := 0; ; i++ {
			v, ok := fn()
			if !ok || interrupt(v) {
				return
			}
			accept(v, i)
		}
	}, opts...)
}

// Successors creates an infinite Pipeline of seed, fn(seed), fn(fn(seed)), ...
// Combine with Limit or TakeWhile.
func Successors[T any](seed T, fn func(T) T, opts ...Option) Pipeline[T] {
	core.CheckNotNil("Successors", "fn", fn == nil)
	return core.Iterate(func(accept func(T, int), interrupt func(T) bool) {
		v := seed
		for i := 0; ; i++ {
			if interrupt(v) {
				return
			}
			accept(v, i)
			v = fn(v)
		}
	}, opts...)
}

// Unfold creates a Pipeline by repeatedly applying fn to a state.
// fn returns the value to emit, the next state, and false to stop.
func Unfold[T, S any](seed S, fn func(S) (T, S, bool), opts ...Option) Pipeline[T] {
	core.CheckNotNil("Unfold", "fn", fn == nil)
	return core.Iterate(func(accept func(T, int), interrupt func(T) bool) {
		state := seed
		for i := 0; ; i++ {
			v, next, ok := fn(state)
			if !ok || interrupt(v) {
				return
			}
			accept(v, i)
			state = next
		}
	}, opts...)
}

// Defer creates a Pipeline whose source is built by factory at the start
// of every traversal.
func Defer[T any](factory func() Pipeline[T], opts ...Option) Pipeline[T] {
	core.CheckNotNil("Defer", "factory", factory == nil)
	return core.Iterate(func(accept func(T, int), interrupt func(T) bool) {
		factory().Drive(accept, interrupt)
	}, opts...)
}

// Concat creates a Pipeline that drains each pipeline in turn with one
// continuous index. It takes the configuration of the first pipeline.
func Concat[T any](pipelines ...Pipeline[T]) Pipeline[T] {
	if len(pipelines) == 0 {
		return Empty[T]()
	}
	out := pipelines[0]
	for _, p := range pipelines[1:] {
		out = out.Concat(p)
	}
	return out
}
