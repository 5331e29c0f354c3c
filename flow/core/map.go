package core

import "iter"

// Operations that change the element type are functions rather than
// methods because Go methods cannot declare their own type parameters.

// Map transforms every element with fn, keeping indices. It represents a
// transformation that maintains cardinality (one element in, one out).
func Map[IN, OUT any](p Pipeline[IN], fn func(IN) OUT) Pipeline[OUT] {
	CheckNotNil("Map", "fn", fn == nil)
	return derive(p.cfg, func(accept func(OUT, int), interrupt func(OUT) bool) {
		g := newGate(interrupt)
		p.gen.Drive(func(element IN, index int) {
			if g.closed() {
				return
			}
			g.forward(fn(element), index, accept)
		}, func(IN) bool { return g.closed() })
	})
}

// FlatMap expands every element into the elements of the Pipeline
// returned by fn. Nested elements carry their parent's index. A zero
// Pipeline returned by fn contributes nothing.
func FlatMap[IN, OUT any](p Pipeline[IN], fn func(IN) Pipeline[OUT]) Pipeline[OUT] {
	CheckNotNil("FlatMap", "fn", fn == nil)
	return derive(p.cfg, func(accept func(OUT, int), interrupt func(OUT) bool) {
		g := newGate(interrupt)
		p.gen.Drive(func(element IN, index int) {
			if g.closed() {
				return
			}
			fn(element).gen.Drive(func(nested OUT, _ int) {
				g.forward(nested, index, accept)
			}, g.check)
		}, func(IN) bool { return g.closed() })
	})
}

// Emitter forwards an element downstream and reports whether the
// downstream still accepts elements.
type Emitter[OUT any] func(element OUT, index int) bool

// Transform builds a stateful, type-changing operation. newStage runs at
// the start of every traversal and returns a handler for each upstream
// element plus an optional flush that runs after the upstream drive
// finished without being interrupted. Both emit through the Emitter.
//
// Example:
//
//	running := core.Transform(p, func(emit core.Emitter[int]) (func(int, int), func()) {
//	    total := 0
//	    return func(v, i int) { total += v; emit(total, i) }, nil
//	})
func Transform[IN, OUT any](p Pipeline[IN], newStage func(emit Emitter[OUT]) (handle func(IN, int), flush func())) Pipeline[OUT] {
	CheckNotNil("Transform", "newStage", newStage == nil)
	return derive(p.cfg, func(accept func(OUT, int), interrupt func(OUT) bool) {
		g := newGate(interrupt)
		handle, flush := newStage(func(element OUT, index int) bool {
			g.forward(element, index, accept)
			return !g.stopped
		})
		p.gen.Drive(func(element IN, index int) {
			if g.closed() {
				return
			}
			handle(element, index)
		}, func(IN) bool { return g.closed() })
		if flush != nil && !g.closed() {
			flush()
		}
	})
}

// gate adapts a downstream interrupt of one element type to an upstream
// drive of another. The downstream interrupt only ever sees OUT values, so
// the upstream side re-asks it about the last forwarded element.
type gate[OUT any] struct {
	interrupt func(OUT) bool
	last      OUT
	hasLast   bool
	stopped   bool
}

func newGate[OUT any](interrupt func(OUT) bool) *gate[OUT] {
	return &gate[OUT]{interrupt: interrupt}
}

// check reports whether element must not be forwarded, latching the stop.
func (g *gate[OUT]) check(element OUT) bool {
	if !g.stopped && g.interrupt(element) {
		g.stopped = true
	}
	return g.stopped
}

// closed reports whether the downstream asked to stop.
func (g *gate[OUT]) closed() bool {
	if !g.stopped && g.hasLast && g.interrupt(g.last) {
		g.stopped = true
	}
	return g.stopped
}

func (g *gate[OUT]) forward(element OUT, index int, accept func(OUT, int)) {
	if g.check(element) {
		return
	}
	g.last, g.hasLast = element, true
	accept(element, index)
}

// FlatMapSeq expands every element into the values of the sequence
// returned by fn. A nil sequence contributes nothing.
func FlatMapSeq[IN, OUT any](p Pipeline[IN], fn func(IN) iter.Seq[OUT]) Pipeline[OUT] {
	CheckNotNil("FlatMapSeq", "fn", fn == nil)
	return FlatMap(p, func(element IN) Pipeline[OUT] {
		seq := fn(element)
		if seq == nil {
			return Pipeline[OUT]{}
		}
		return derive(p.cfg, seqGenerator(seq))
	})
}

// FlatMapSlice expands every element into the slice returned by fn.
func FlatMapSlice[IN, OUT any](p Pipeline[IN], fn func(IN) []OUT) Pipeline[OUT] {
	CheckNotNil("FlatMapSlice", "fn", fn == nil)
	return FlatMap(p, func(element IN) Pipeline[OUT] {
		return derive(p.cfg, SliceGenerator(fn(element)))
	})
}

// Distinct keeps the first occurrence of every element.
func Distinct[T comparable](p Pipeline[T]) Pipeline[T] {
	return DistinctBy(p, func(element T) T { return element })
}

// DistinctBy keeps the first element seen for every key returned by key.
// The seen set is private to each traversal.
func DistinctBy[T any, K comparable](p Pipeline[T], key func(T) K) Pipeline[T] {
	CheckNotNil("DistinctBy", "key", key == nil)
	return derive(p.cfg, func(accept func(T, int), interrupt func(T) bool) {
		seen := make(map[K]struct{})
		p.gen.Drive(func(element T, index int) {
			if interrupt(element) {
				return
			}
			k := key(element)
			if _, ok := seen[k]; ok {
				return
			}
			seen[k] = struct{}{}
			accept(element, index)
		}, interrupt)
	})
}

// SliceGenerator returns a drive procedure emitting items in order.
func SliceGenerator[T any](items []T) Generator[T] {
	return func(accept func(T, int), interrupt func(T) bool) {
		for i, item := range items {
			if interrupt(item) {
				return
			}
			accept(item, i)
		}
	}
}

// seqGenerator returns a drive procedure pulling from seq.
func seqGenerator[T any](seq iter.Seq[T]) Generator[T] {
	return func(accept func(T, int), interrupt func(T) bool) {
		index := 0
		for item := range seq {
			if interrupt(item) {
				return
			}
			accept(item, index)
			index++
		}
	}
}

// SeqGenerator returns a drive procedure pulling from seq. A nil seq
// emits nothing.
func SeqGenerator[T any](seq iter.Seq[T]) Generator[T] {
	if seq == nil {
		return func(func(T, int), func(T) bool) {}
	}
	return seqGenerator(seq)
}
