// Package transform provides additional intermediate operations for flow
// pipelines. They are built on core.Transform, keep their state per
// traversal and honour the terminal operation's interrupt like the
// operations in core.
package transform

import (
	"iter"

	"github.com/lguimbarda/semantic-flow/flow/core"
)

// Indexed pairs an element with its index.
type Indexed[T any] struct {
	Index int
	Value T
}

// Pair holds two values produced together.
type Pair[A, B any] struct {
	First  A
	Second B
}

// WithIndex wraps each element with the index it was emitted under.
func WithIndex[T any](p core.Pipeline[T]) core.Pipeline[Indexed[T]] {
	return core.Transform(p, func(emit core.Emitter[Indexed[T]]) (func(T, int), func()) {
		return func(v T, i int) { emit(Indexed[T]{Index: i, Value: v}, i) }, nil
	})
}

// Pairwise emits pairs of consecutive elements: [e0 e1], [e1 e2], ...
// A pipeline with fewer than two elements emits nothing.
func Pairwise[T any](p core.Pipeline[T]) core.Pipeline[[2]T] {
	return core.Transform(p, func(emit core.Emitter[[2]T]) (func(T, int), func()) {
		var prev T
		hasPrev := false
		next := 0
		return func(curr T, _ int) {
			if hasPrev {
				emit([2]T{prev, curr}, next)
				next++
			}
			prev, hasPrev = curr, true
		}, nil
	})
}

// Scan emits every intermediate result of folding the elements with fn,
// starting from initial.
func Scan[T, R any](p core.Pipeline[T], initial R, fn func(acc R, item T) R) core.Pipeline[R] {
	core.CheckNotNil("Scan", "fn", fn == nil)
	return core.Transform(p, func(emit core.Emitter[R]) (func(T, int), func()) {
		acc := initial
		return func(v T, i int) {
			acc = fn(acc, v)
			emit(acc, i)
		}, nil
	})
}

// Batch groups consecutive elements into slices of size elements. The last
// batch may be shorter. Unlike window.TumblingWindows it is lazy, so it
// works on infinite pipelines.
func Batch[T any](p core.Pipeline[T], size int) core.Pipeline[[]T] {
	core.CheckPositive("Batch", "size", size)
	return core.Transform(p, func(emit core.Emitter[[]T]) (func(T, int), func()) {
		batch := make([]T, 0, size)
		next := 0
		return func(v T, _ int) {
				batch = append(batch, v)
				if len(batch) == size {
					emit(batch, next)
					next++
					batch = make([]T, 0, size)
				}
			}, func() {
				if len(batch) > 0 {
					emit(batch, next)
				}
			}
	})
}

// StartWith emits values before the elements of p.
func StartWith[T any](p core.Pipeline[T], values ...T) core.Pipeline[T] {
	return core.Iterate(core.SliceGenerator(values), core.WithConfig(p.Config())).Concat(p)
}

// EndWith emits values after the elements of p.
func EndWith[T any](p core.Pipeline[T], values ...T) core.Pipeline[T] {
	return p.Concat(core.Iterate(core.SliceGenerator(values)))
}

// DefaultIfEmpty emits value when p emits nothing.
func DefaultIfEmpty[T any](p core.Pipeline[T], value T) core.Pipeline[T] {
	return core.Transform(p, func(emit core.Emitter[T]) (func(T, int), func()) {
		empty := true
		return func(v T, i int) {
				empty = false
				emit(v, i)
			}, func() {
				if empty {
					emit(value, 0)
				}
			}
	})
}

// Repeat emits the elements of p count times in a row, traversing p again
// for every round. A negative count repeats until interrupted.
func Repeat[T any](p core.Pipeline[T], count int) core.Pipeline[T] {
	return core.Iterate(func(accept func(T, int), interrupt func(T) bool) {
		next := 0
		stopped := false
		guard := func(v T) bool {
			if !stopped && interrupt(v) {
				stopped = true
			}
			return stopped
		}
		for round := 0; count < 0 || round < count; round++ {
			emitted := false
			p.Drive(func(v T, _ int) {
				if guard(v) {
					return
				}
				emitted = true
				accept(v, next)
				next++
			}, guard)
			if stopped || !emitted {
				return
			}
		}
	}, core.WithConfig(p.Config()))
}

// DistinctUntilChanged drops elements equal to the one emitted just
// before them.
func DistinctUntilChanged[T comparable](p core.Pipeline[T]) core.Pipeline[T] {
	return DistinctUntilChangedBy(p, func(v T) T { return v })
}

// DistinctUntilChangedBy drops elements whose key equals the key of the
// element emitted just before them.
func DistinctUntilChangedBy[T any, K comparable](p core.Pipeline[T], key func(T) K) core.Pipeline[T] {
	core.CheckNotNil("DistinctUntilChangedBy", "key", key == nil)
	return core.Transform(p, func(emit core.Emitter[T]) (func(T, int), func()) {
		var last K
		hasLast := false
		next := 0
		return func(v T, _ int) {
			k := key(v)
			if hasLast && k == last {
				return
			}
			last, hasLast = k, true
			emit(v, next)
			next++
		}, nil
	})
}

// EveryNth keeps the elements at positions n-1, 2n-1, ... renumbered from 0.
func EveryNth[T any](p core.Pipeline[T], n int) core.Pipeline[T] {
	core.CheckPositive("EveryNth", "n", n)
	return core.Transform(p, func(emit core.Emitter[T]) (func(T, int), func()) {
		seen := 0
		return func(v T, _ int) {
			seen++
			if seen%n == 0 {
				emit(v, seen/n-1)
			}
		}, nil
	})
}

// Zip pairs the elements of a and b positionally and stops with the
// shorter pipeline. b is pulled through an iterator while a is driven.
func Zip[A, B any](a core.Pipeline[A], b core.Pipeline[B]) core.Pipeline[Pair[A, B]] {
	return ZipWith(a, b, func(x A, y B) Pair[A, B] { return Pair[A, B]{First: x, Second: y} })
}

// ZipWith combines the elements of a and b positionally with fn.
func ZipWith[A, B, C any](a core.Pipeline[A], b core.Pipeline[B], fn func(A, B) C) core.Pipeline[C] {
	core.CheckNotNil("ZipWith", "fn", fn == nil)
	return core.Iterate(func(accept func(C, int), interrupt func(C) bool) {
		next, stop := iter.Pull(b.Values())
		defer stop()

		var last C
		hasLast, done := false, false
		closed := func(A) bool {
			if !done && hasLast && interrupt(last) {
				done = true
			}
			return done
		}
		a.Drive(func(x A, i int) {
			if closed(x) {
				return
			}
			y, ok := next()
			if !ok {
				done = true
				return
			}
			c := fn(x, y)
			if interrupt(c) {
				done = true
				return
			}
			last, hasLast = c, true
			accept(c, i)
		}, closed)
	}, core.WithConfig(a.Config()))
}
