// Package flow provides a lazy, composable sequence-processing engine.
//
// A source builds a Pipeline, intermediate operations describe how the
// elements are reshaped, and a single terminal call on a consumer runs the
// traversal:
//
//	evens := flow.Range(0, 100, 1).Filter(func(n int) bool { return n%2 == 0 })
//	squares := flow.Map(evens, func(n int) int { return n * n })
//	first := squares.Limit(5).ToOrdered().ToList() // [0 4 16 36 64]
//
// Nothing runs until the terminal call, and every terminal call runs the
// whole chain again from the source.
//
// This package is the primary user-facing API. Most users should only
// need to import this package. The flow/core subpackage contains the
// underlying abstractions; flow/statistics and flow/window add numeric
// and windowed consumers.
package flow

import (
	"iter"

	"github.com/lguimbarda/semantic-flow/flow/core"
)

// Type aliases for core abstractions.
// These allow users to work with the framework without importing core directly.
type (
	// Generator is a drive procedure: it pushes elements and their index
	// into accept, consulting interrupt before each push.
	Generator[T any] = core.Generator[T]

	// Pipeline is an immutable, lazy description of a traversal.
	Pipeline[T any] = core.Pipeline[T]

	// Consumer runs one-shot terminal operations over a Pipeline.
	Consumer[T any] = core.Consumer[T]

	// Ordered is a Consumer with sort, reverse and shuffle.
	Ordered[T any] = core.Ordered[T]

	// Unordered is a Consumer without order-sensitive operations.
	Unordered[T any] = core.Unordered[T]

	// Optional holds zero or one value.
	Optional[T any] = core.Optional[T]

	// Collector is a pluggable terminal reduction.
	Collector[T, A, R any] = core.Collector[T, A, R]

	// Groups is an ordered grouping result.
	Groups[K comparable, V any] = core.Groups[K, V]

	// Hooks observe the traversals of a Pipeline.
	Hooks[T any] = core.Hooks[T]

	// Option configures a Pipeline.
	Option = core.Option

	// Number is the set of numeric element types.
	Number = core.Number
)

// Sentinel errors re-exported from core.
var (
	ErrInvalidArgument = core.ErrInvalidArgument
	ErrEmptyValue      = core.ErrEmptyValue
)

// Options re-exported from core.

// WithConcurrency sets the concurrency degree carried by a Pipeline.
func WithConcurrency(n int) Option { return core.WithConcurrency(n) }

// WithRandom sets the random source used by Shuffle.
func WithRandom(random func() float64) Option { return core.WithRandom(random) }

// Transformations that change the element type.

// Map transforms every element with fn.
func Map[IN, OUT any](p Pipeline[IN], fn func(IN) OUT) Pipeline[OUT] {
	return core.Map(p, fn)
}

// FlatMap expands every element into a nested Pipeline.
func FlatMap[IN, OUT any](p Pipeline[IN], fn func(IN) Pipeline[OUT]) Pipeline[OUT] {
	return core.FlatMap(p, fn)
}

// FlatMapSeq expands every element into an iterator sequence.
func FlatMapSeq[IN, OUT any](p Pipeline[IN], fn func(IN) iter.Seq[OUT]) Pipeline[OUT] {
	return core.FlatMapSeq(p, fn)
}

// FlatMapSlice expands every element into a slice.
func FlatMapSlice[IN, OUT any](p Pipeline[IN], fn func(IN) []OUT) Pipeline[OUT] {
	return core.FlatMapSlice(p, fn)
}

// Distinct keeps the first occurrence of every element.
func Distinct[T comparable](p Pipeline[T]) Pipeline[T] {
	return core.Distinct(p)
}

// DistinctBy keeps the first element seen for every key.
func DistinctBy[T any, K comparable](p Pipeline[T], key func(T) K) Pipeline[T] {
	return core.DistinctBy(p, key)
}

// Terminal operations.

// Slice collects every element of p into a slice.
func Slice[T any](p Pipeline[T]) []T {
	return p.ToUnordered().ToList()
}

// First returns the first element of p.
func First[T any](p Pipeline[T]) Optional[T] {
	return p.ToUnordered().FindFirst()
}

// Collect runs collector over p.
func Collect[T, A, R any](p Pipeline[T], collector Collector[T, A, R]) R {
	return core.Collect(p, collector)
}

// Fold folds p with fn starting from identity.
func Fold[T, R any](p Pipeline[T], identity R, fn func(R, T) R) R {
	return core.Fold(p, identity, fn)
}

// ToMap collects p into a map.
func ToMap[T any, K comparable, V any](p Pipeline[T], key func(T) K, value func(T) V) map[K]V {
	return core.ToMap(p, key, value)
}

// ToSet collects the distinct elements of p.
func ToSet[T comparable](p Pipeline[T]) map[T]struct{} {
	return core.ToSet(core.NewConsumer(p))
}

// Group files the elements of p by classifier, in first-seen key order.
func Group[T any, K comparable](p Pipeline[T], classifier func(T) K) Groups[K, T] {
	return core.Group(p, classifier)
}

// GroupBy files value(element) under key(element), in first-seen key order.
func GroupBy[T any, K comparable, V any](p Pipeline[T], key func(T) K, value func(T) V) Groups[K, V] {
	return core.GroupBy(p, key, value)
}

// PartitionBy splits p by classifier, in first-seen key order.
func PartitionBy[T any, K comparable](p Pipeline[T], classifier func(T) K) [][]T {
	return core.PartitionBy(p, classifier)
}

// Collector constructors.

// NewCollector builds a Collector, see core.NewCollector.
func NewCollector[T, A, R any](
	supplier func() A,
	accumulator func(A, T) A,
	combiner func(A, A) A,
	interrupter func(T) bool,
	finisher func(A) R,
) (Collector[T, A, R], error) {
	return core.NewCollector(supplier, accumulator, combiner, interrupter, finisher)
}
