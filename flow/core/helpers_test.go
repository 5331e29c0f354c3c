package core_test

import (
	"errors"
	"slices"
	"testing"

	"github.com/lguimbarda/semantic-flow/flow/core"
)

// from builds a Pipeline over items without going through the flow package.
func from[T any](items ...T) core.Pipeline[T] {
	return core.Iterate(core.SliceGenerator(items))
}

// naturals is an infinite source counting how many elements it produced.
func naturals(produced *int) core.Pipeline[int] {
	return core.Iterate(func(accept func(int, int), interrupt func(int) bool) {
		for i := 0; ; i++ {
			if interrupt(i) {
				return
			}
			*produced++
			accept(i, i)
		}
	})
}

type indexed[T any] struct {
	Value T
	Index int
}

// drain runs p and records every element with its index.
func drain[T any](p core.Pipeline[T]) []indexed[T] {
	out := []indexed[T]{}
	p.ToUnordered().ForEach(func(v T, i int) {
		out = append(out, indexed[T]{v, i})
	})
	return out
}

func assertSlice[T comparable](t *testing.T, got, want []T) {
	t.Helper()
	if !slices.Equal(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

// mustPanicWithArgument asserts fn panics with an *core.ArgumentError.
func mustPanicWithArgument(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		if r == nil {
			t.Fatal("expected panic, got none")
		}
		err, ok := r.(error)
		if !ok {
			t.Fatalf("expected error panic, got %T: %v", r, r)
		}
		var argErr *core.ArgumentError
		if !errors.As(err, &argErr) || !errors.Is(err, core.ErrInvalidArgument) {
			t.Fatalf("expected ArgumentError, got %v", err)
		}
	}()
	fn()
}
