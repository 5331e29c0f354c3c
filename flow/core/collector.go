package core

import (
	"fmt"
	"reflect"
)

// Collector is a pluggable terminal reduction: it folds elements of type
// T into an accumulator of type A and finishes it into a result of type R.
//
// The combiner merges two accumulators. Traversal in this package is
// sequential and never calls it, but it is required so that a Collector
// can later be run over split segments.
type Collector[T, A, R any] struct {
	supplier    func() A
	accumulator func(A, T) A
	combiner    func(A, A) A
	interrupter func(T) bool
	finisher    func(A) R
}

// NewCollector builds a Collector. A nil interrupter means "never stop".
// A nil finisher means identity, which requires A and R to be the same
// type. Any other nil field, or a nil finisher with A != R, yields an
// ArgumentError.
func NewCollector[T, A, R any](
	supplier func() A,
	accumulator func(A, T) A,
	combiner func(A, A) A,
	interrupter func(T) bool,
	finisher func(A) R,
) (Collector[T, A, R], error) {
	switch {
	case supplier == nil:
		return Collector[T, A, R]{}, argumentError("NewCollector", "supplier", "must not be nil")
	case accumulator == nil:
		return Collector[T, A, R]{}, argumentError("NewCollector", "accumulator", "must not be nil")
	case combiner == nil:
		return Collector[T, A, R]{}, argumentError("NewCollector", "combiner", "must not be nil")
	}
	if interrupter == nil {
		interrupter = never[T]
	}
	if finisher == nil {
		a, r := reflect.TypeFor[A](), reflect.TypeFor[R]()
		if a != r {
			return Collector[T, A, R]{}, argumentError("NewCollector", "finisher",
				fmt.Sprintf("must not be nil when the accumulator (%v) and result (%v) types differ", a, r))
		}
		finisher = func(acc A) R {
			r, _ := any(acc).(R)
			return r
		}
	}
	return Collector[T, A, R]{
		supplier:    supplier,
		accumulator: accumulator,
		combiner:    combiner,
		interrupter: interrupter,
		finisher:    finisher,
	}, nil
}

// Shortable builds a Collector that stops before the first element for
// which interrupter returns true.
func Shortable[T, A, R any](
	supplier func() A,
	interrupter func(T) bool,
	accumulator func(A, T) A,
	combiner func(A, A) A,
	finisher func(A) R,
) (Collector[T, A, R], error) {
	if interrupter == nil {
		return Collector[T, A, R]{}, argumentError("Shortable", "interrupter", "must not be nil")
	}
	return NewCollector(supplier, accumulator, combiner, interrupter, finisher)
}

// Simple builds a Collector whose result is its accumulator.
// It panics with an ArgumentError on nil functions.
func Simple[T, A any](supplier func() A, accumulator func(A, T) A, combiner func(A, A) A) Collector[T, A, A] {
	c, err := NewCollector[T, A, A](supplier, accumulator, combiner, nil, nil)
	if err != nil {
		panic(err)
	}
	return c
}

// Combine merges two accumulators with the collector's combiner.
func (c Collector[T, A, R]) Combine(a, b A) A {
	return c.combiner(a, b)
}

// Finish applies the collector's finisher.
func (c Collector[T, A, R]) Finish(acc A) R {
	return c.finisher(acc)
}

// run folds src into a result, stopping before the first element the
// interrupter rejects.
func (c Collector[T, A, R]) run(src Source[T]) R {
	acc := c.supplier()
	stop := false
	src.Drive(func(element T, _ int) {
		if stop {
			return
		}
		if c.interrupter(element) {
			stop = true
			return
		}
		acc = c.accumulator(acc, element)
	}, func(T) bool { return stop })
	return c.finisher(acc)
}
