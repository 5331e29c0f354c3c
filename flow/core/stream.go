// Package core defines the core abstractions for lazy sequence processing:
// drive procedures, pipelines, consumers, collectors and optionals.
// It provides the foundational building blocks for describing a traversal
// once and running it on demand, as many times as needed.
//
// A Pipeline never does any work when it is built. Only a terminal call on a
// Consumer runs the drive procedure, synchronously, on the caller's goroutine.
//
// NOTE: this package should have no dependencies outside the standard
// library, including other flow packages.
package core

import "iter"

// Generator is a drive procedure. It pushes elements into accept together
// with a stage-relative index, and consults interrupt before every push.
// Generator answers the question: "How are the elements produced?".
type Generator[T any] func(accept func(T, int), interrupt func(T) bool)

// Drive runs the procedure. A nil Generator emits nothing.
func (g Generator[T]) Drive(accept func(T, int), interrupt func(T) bool) {
	if g == nil {
		return
	}
	g(accept, interrupt)
}

// Source is anything that can drive elements into a consumer.
// Generator and Pipeline both implement it.
type Source[T any] interface {
	Drive(accept func(T, int), interrupt func(T) bool)
}

// never is the interrupt used by terminals that always drain the source.
func never[T any](T) bool { return false }

// Pipeline is an immutable, lazy description of a traversal. Every
// intermediate operation returns a new Pipeline wrapping the receiver;
// the receiver stays valid and can be used to build other chains.
// Pipeline answers the question: "What will be done to the elements?".
type Pipeline[T any] struct {
	gen Generator[T]
	cfg Config
}

// Iterate wraps a caller-supplied drive procedure into a Pipeline.
// All other sources are built on top of it.
func Iterate[T any](gen Generator[T], opts ...Option) Pipeline[T] {
	if gen == nil {
		panic(argumentError("Iterate", "generator", "must not be nil"))
	}
	return Pipeline[T]{gen: gen, cfg: applyOptions(opts...)}
}

// Empty returns a Pipeline that emits nothing.
func Empty[T any](opts ...Option) Pipeline[T] {
	return Pipeline[T]{gen: func(func(T, int), func(T) bool) {}, cfg: applyOptions(opts...)}
}

// derive builds a Pipeline of any element type that inherits cfg.
func derive[T any](cfg Config, gen Generator[T]) Pipeline[T] {
	return Pipeline[T]{gen: gen, cfg: cfg}
}

// Drive implements Source.
func (p Pipeline[T]) Drive(accept func(T, int), interrupt func(T) bool) {
	p.gen.Drive(accept, interrupt)
}

// Generator returns the drive procedure wrapped by this Pipeline.
func (p Pipeline[T]) Generator() Generator[T] {
	return p.gen
}

// Config returns a copy of the configuration carried by this Pipeline.
func (p Pipeline[T]) Config() Config {
	return p.cfg
}

// Concurrency returns the concurrency degree carried by this Pipeline.
func (p Pipeline[T]) Concurrency() int {
	return p.cfg.Concurrency
}

// All returns an iterator over the pipeline's indices and elements.
// Breaking out of the range loop interrupts the source.
func (p Pipeline[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		stopped := false
		p.Drive(func(element T, index int) {
			if stopped {
				return
			}
			if !yield(index, element) {
				stopped = true
			}
		}, func(T) bool { return stopped })
	}
}

// Values returns an iterator over the pipeline's elements.
func (p Pipeline[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range p.All() {
			if !yield(v) {
				return
			}
		}
	}
}
