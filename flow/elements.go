package flow

import (
	"errors"
	"iter"

	"github.com/lguimbarda/semantic-flow/flow/core"
)

var (
	// ErrNoMatch is returned by Single when no element matches.
	ErrNoMatch = errors.New("flow: no matching element")
	// ErrMultipleMatches is returned by Single when more than one element matches.
	ErrMultipleMatches = errors.New("flow: more than one matching element")
)

// Last returns the last element of p. It traverses the whole pipeline, so
// it never returns on an infinite one.
func Last[T any](p Pipeline[T]) Optional[T] {
	var last T
	found := false
	p.Drive(func(v T, _ int) {
		last, found = v, true
	}, func(T) bool { return false })
	if !found {
		return core.None[T]()
	}
	return core.OfNullable(last)
}

// ElementAt returns the element at position n, stopping the traversal
// there. A negative n panics with an ArgumentError.
func ElementAt[T any](p Pipeline[T], n int) Optional[T] {
	core.CheckNonNegative("ElementAt", "n", n)
	return First(p.Skip(n))
}

// Single returns the only element matching predicate, or the only element
// of p when predicate is nil. The traversal stops at the second match.
func Single[T any](p Pipeline[T], predicate func(T) bool) (T, error) {
	var (
		match T
		count int
	)
	p.Drive(func(v T, _ int) {
		if predicate == nil || predicate(v) {
			count++
			match = v
		}
	}, func(T) bool { return count > 1 })

	var zero T
	switch count {
	case 0:
		return zero, ErrNoMatch
	case 1:
		return match, nil
	default:
		return zero, ErrMultipleMatches
	}
}

// IndexOf returns the position of the first element equal to value, or -1.
func IndexOf[T comparable](p Pipeline[T], value T) int {
	return IndexWhere(p, func(v T) bool { return v == value })
}

// IndexWhere returns the position of the first element matching predicate,
// or -1. Positions count elements as they arrive, independent of the
// indices assigned upstream.
func IndexWhere[T any](p Pipeline[T], predicate func(T) bool) int {
	core.CheckNotNil("IndexWhere", "predicate", predicate == nil)
	pos, found := 0, -1
	p.Drive(func(v T, _ int) {
		if found < 0 && predicate(v) {
			found = pos
		}
		pos++
	}, func(T) bool { return found >= 0 })
	return found
}

// Contains reports whether p emits value.
func Contains[T comparable](p Pipeline[T], value T) bool {
	return p.ToUnordered().AnyMatch(func(v T) bool { return v == value })
}

// SequenceEqual reports whether a and b emit equal elements in the same
// order. It stops at the first difference.
func SequenceEqual[T comparable](a, b Pipeline[T]) bool {
	next, stop := iter.Pull(b.Values())
	defer stop()
	equal := true
	a.Drive(func(x T, _ int) {
		y, ok := next()
		if !ok || x != y {
			equal = false
		}
	}, func(T) bool { return !equal })
	if !equal {
		return false
	}
	_, more := next()
	return !more
}
