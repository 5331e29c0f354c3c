package core

import "reflect"

// Intermediate operations that keep the element type. Each one returns a
// new Pipeline and threads the terminal's interrupt through to the
// upstream drive procedure. Per-traversal state (counters, seen sets,
// latches) lives inside the returned drive procedure, so a Pipeline can be
// consumed any number of times.

// Filter keeps the elements matching predicate. Survivors are renumbered
// from 0.
func (p Pipeline[T]) Filter(predicate func(T) bool) Pipeline[T] {
	CheckNotNil("Filter", "predicate", predicate == nil)
	return derive(p.cfg, func(accept func(T, int), interrupt func(T) bool) {
		next := 0
		p.gen.Drive(func(element T, _ int) {
			if interrupt(element) || !predicate(element) {
				return
			}
			accept(element, next)
			next++
		}, interrupt)
	})
}

// TakeWhile passes elements while predicate holds and emits nothing after
// the first element that fails it. Indices are preserved. It does not
// interrupt the upstream drive itself; the terminal's interrupt still
// decides when the source stops.
func (p Pipeline[T]) TakeWhile(predicate func(T) bool) Pipeline[T] {
	CheckNotNil("TakeWhile", "predicate", predicate == nil)
	return derive(p.cfg, func(accept func(T, int), interrupt func(T) bool) {
		taking := true
		p.gen.Drive(func(element T, index int) {
			if !taking || interrupt(element) {
				return
			}
			if !predicate(element) {
				taking = false
				return
			}
			accept(element, index)
		}, interrupt)
	})
}

// DropWhile drops elements while predicate holds. Once an element fails
// the predicate, every later element passes without being tested.
func (p Pipeline[T]) DropWhile(predicate func(T) bool) Pipeline[T] {
	CheckNotNil("DropWhile", "predicate", predicate == nil)
	return derive(p.cfg, func(accept func(T, int), interrupt func(T) bool) {
		dropping := true
		p.gen.Drive(func(element T, index int) {
			if interrupt(element) {
				return
			}
			if dropping && predicate(element) {
				return
			}
			dropping = false
			accept(element, index)
		}, interrupt)
	})
}

// Distinct keeps the first occurrence of every element using ==.
// A T that is not comparable panics with an ArgumentError; use DistinctBy
// with a comparable key instead. Interface element types are checked
// per element at traversal time.
// The seen set grows without bound on infinite sources.
func (p Pipeline[T]) Distinct() Pipeline[T] {
	if !reflect.TypeFor[T]().Comparable() {
		panic(argumentError("Distinct", "element type", "must be comparable, use DistinctBy"))
	}
	return DistinctBy(p, func(element T) any { return element })
}

// Limit passes at most n elements, keeping their indices, and interrupts
// the upstream drive once n elements went through.
func (p Pipeline[T]) Limit(n int) Pipeline[T] {
	CheckNonNegative("Limit", "n", n)
	return derive(p.cfg, func(accept func(T, int), interrupt func(T) bool) {
		count := 0
		upstream := func(element T) bool {
			return count >= n || interrupt(element)
		}
		p.gen.Drive(func(element T, index int) {
			if upstream(element) {
				return
			}
			accept(element, index)
			count++
		}, upstream)
	})
}

// Skip drops the first n elements. Survivors are renumbered as
// index - n.
func (p Pipeline[T]) Skip(n int) Pipeline[T] {
	CheckNonNegative("Skip", "n", n)
	return derive(p.cfg, func(accept func(T, int), interrupt func(T) bool) {
		skipped := 0
		p.gen.Drive(func(element T, index int) {
			if interrupt(element) {
				return
			}
			if skipped < n {
				skipped++
				return
			}
			accept(element, index-skipped)
		}, interrupt)
	})
}

// Sub keeps the elements at positions [start, end).
func (p Pipeline[T]) Sub(start, end int) Pipeline[T] {
	CheckRange("Sub", start, end)
	return p.Skip(start).Limit(end - start)
}

// Concat drains the receiver and then other, numbering elements with a
// single counter across both.
func (p Pipeline[T]) Concat(other Pipeline[T]) Pipeline[T] {
	return derive(p.cfg, func(accept func(T, int), interrupt func(T) bool) {
		next := 0
		forward := func(element T, _ int) {
			if interrupt(element) {
				return
			}
			accept(element, next)
			next++
		}
		p.gen.Drive(forward, interrupt)
		other.gen.Drive(forward, interrupt)
	})
}

// Peek calls fn for every element passing through.
func (p Pipeline[T]) Peek(fn func(T)) Pipeline[T] {
	CheckNotNil("Peek", "fn", fn == nil)
	return derive(p.cfg, func(accept func(T, int), interrupt func(T) bool) {
		p.gen.Drive(func(element T, index int) {
			if interrupt(element) {
				return
			}
			fn(element)
			accept(element, index)
		}, interrupt)
	})
}

// Parallel returns a Pipeline carrying concurrency degree n.
// Traversal stays sequential: ordering and results do not change.
func (p Pipeline[T]) Parallel(n int) Pipeline[T] {
	CheckPositive("Parallel", "n", n)
	cfg := p.cfg
	cfg.Concurrency = n
	return derive(cfg, p.gen)
}

// With returns a Pipeline with opts applied on top of its configuration.
func (p Pipeline[T]) With(opts ...Option) Pipeline[T] {
	cfg := p.cfg
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return derive(cfg, p.gen)
}

// ToOrdered converts the Pipeline into an Ordered consumer.
// No element is produced by the conversion.
func (p Pipeline[T]) ToOrdered() *Ordered[T] {
	return &Ordered[T]{Consumer: newConsumer(p)}
}

// ToUnordered converts the Pipeline into an Unordered consumer.
func (p Pipeline[T]) ToUnordered() *Unordered[T] {
	return &Unordered[T]{Consumer: newConsumer(p)}
}
