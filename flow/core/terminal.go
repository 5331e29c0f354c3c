package core

import (
	"fmt"
	"io"
	"iter"
	"strings"
)

// Consumer runs terminal operations over a Pipeline. It holds no
// traversal state: every method drives the pipeline from scratch, so two
// calls perform two independent traversals and a non-deterministic source
// may legitimately yield different results each time.
type Consumer[T any] struct {
	src Pipeline[T]
}

func newConsumer[T any](p Pipeline[T]) Consumer[T] {
	return Consumer[T]{src: p}
}

// NewConsumer wraps p in a plain Consumer.
func NewConsumer[T any](p Pipeline[T]) Consumer[T] {
	return newConsumer(p)
}

// Pipeline returns the Pipeline this Consumer runs.
func (c Consumer[T]) Pipeline() Pipeline[T] {
	return c.src
}

// Drive implements Source.
func (c Consumer[T]) Drive(accept func(T, int), interrupt func(T) bool) {
	c.src.Drive(accept, interrupt)
}

// Config returns the configuration of the underlying Pipeline.
func (c Consumer[T]) Config() Config {
	return c.src.cfg
}

// AnyMatch reports whether any element satisfies predicate. It stops the
// traversal at the first match.
func (c Consumer[T]) AnyMatch(predicate func(T) bool) bool {
	CheckNotNil("AnyMatch", "predicate", predicate == nil)
	found := false
	c.src.Drive(func(element T, _ int) {
		if !found && predicate(element) {
			found = true
		}
	}, func(T) bool { return found })
	return found
}

// AllMatch reports whether every element satisfies predicate. It stops
// the traversal at the first mismatch. An empty pipeline matches.
func (c Consumer[T]) AllMatch(predicate func(T) bool) bool {
	CheckNotNil("AllMatch", "predicate", predicate == nil)
	all := true
	c.src.Drive(func(element T, _ int) {
		if all && !predicate(element) {
			all = false
		}
	}, func(T) bool { return !all })
	return all
}

// NoneMatch reports whether no element satisfies predicate.
func (c Consumer[T]) NoneMatch(predicate func(T) bool) bool {
	return !c.AnyMatch(predicate)
}

// Count returns the number of elements.
func (c Consumer[T]) Count() int {
	n := 0
	c.src.Drive(func(T, int) { n++ }, never[T])
	return n
}

// FindFirst returns the first element, stopping the traversal there.
func (c Consumer[T]) FindFirst() Optional[T] {
	var first T
	found := false
	c.src.Drive(func(element T, _ int) {
		if !found {
			first, found = element, true
		}
	}, func(T) bool { return found })
	if !found {
		return None[T]()
	}
	return OfNullable(first)
}

// FindAny returns some element. Traversal is sequential, so it is the
// first one.
func (c Consumer[T]) FindAny() Optional[T] {
	return c.FindFirst()
}

// ForEach calls fn with every element and its index.
func (c Consumer[T]) ForEach(fn func(T, int)) {
	CheckNotNil("ForEach", "fn", fn == nil)
	c.src.Drive(fn, never[T])
}

// Reduce folds the elements with fn, seeding with the first element.
// It returns an empty Optional for an empty pipeline.
func (c Consumer[T]) Reduce(fn func(T, T) T) Optional[T] {
	CheckNotNil("Reduce", "fn", fn == nil)
	var acc T
	seeded := false
	c.src.Drive(func(element T, _ int) {
		if !seeded {
			acc, seeded = element, true
			return
		}
		acc = fn(acc, element)
	}, never[T])
	if !seeded {
		return None[T]()
	}
	return OfNullable(acc)
}

// ReduceIdentity folds the elements with fn starting from identity.
func (c Consumer[T]) ReduceIdentity(identity T, fn func(T, T) T) T {
	return Fold(c, identity, fn)
}

// ToList collects the elements into a new slice.
func (c Consumer[T]) ToList() []T {
	list := make([]T, 0)
	c.src.Drive(func(element T, _ int) {
		list = append(list, element)
	}, never[T])
	return list
}

// Join formats every element with fmt.Sprint and joins them.
func (c Consumer[T]) Join(delimiter, prefix, suffix string) string {
	var sb strings.Builder
	sb.WriteString(prefix)
	first := true
	c.src.Drive(func(element T, _ int) {
		if !first {
			sb.WriteString(delimiter)
		}
		first = false
		fmt.Fprint(&sb, element)
	}, never[T])
	sb.WriteString(suffix)
	return sb.String()
}

// Partition splits the elements into consecutive chunks of count
// elements. The last chunk holds the remainder, if any.
func (c Consumer[T]) Partition(count int) [][]T {
	CheckPositive("Partition", "count", count)
	chunks := make([][]T, 0)
	current := make([]T, 0, count)
	c.src.Drive(func(element T, _ int) {
		current = append(current, element)
		if len(current) >= count {
			chunks = append(chunks, current)
			current = make([]T, 0, count)
		}
	}, never[T])
	if len(current) > 0 {
		chunks = append(chunks, current)
	}
	return chunks
}

// Print writes every element on its own line. A nil format uses
// fmt.Sprint.
func (c Consumer[T]) Print(w io.Writer, format func(T) string) error {
	if format == nil {
		format = func(element T) string { return fmt.Sprint(element) }
	}
	var err error
	c.src.Drive(func(element T, _ int) {
		_, err = fmt.Fprintln(w, format(element))
	}, func(T) bool { return err != nil })
	return err
}

// All returns an iterator over indices and elements. Breaking out of the
// loop interrupts the source.
func (c Consumer[T]) All() iter.Seq2[int, T] {
	return c.src.All()
}

// Collect runs collector over the consumer's elements.
func Collect[T, A, R any](src Source[T], collector Collector[T, A, R]) R {
	return collector.run(src)
}

// CollectFunc builds a Collector from raw functions and runs it.
// Nil interrupter and finisher get their defaults, see NewCollector.
func CollectFunc[T, A, R any](
	src Source[T],
	supplier func() A,
	interrupter func(T) bool,
	accumulator func(A, T) A,
	combiner func(A, A) A,
	finisher func(A) R,
) (R, error) {
	collector, err := NewCollector(supplier, accumulator, combiner, interrupter, finisher)
	if err != nil {
		var zero R
		return zero, err
	}
	return collector.run(src), nil
}

// Fold folds the elements of src with fn starting from identity.
func Fold[T, R any](src Source[T], identity R, fn func(R, T) R) R {
	CheckNotNil("Fold", "fn", fn == nil)
	acc := identity
	src.Drive(func(element T, _ int) {
		acc = fn(acc, element)
	}, never[T])
	return acc
}
