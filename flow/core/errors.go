package core

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument reports an argument rejected at the call that
	// received it. It is never raised from inside a traversal.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrEmptyValue reports a read of an empty Optional.
	ErrEmptyValue = errors.New("no value present")
)

// ArgumentError describes a rejected argument.
// Builder calls (sources, intermediate operations) panic with an
// *ArgumentError, the same way strings.Repeat panics on a negative count.
// Calls that already return an error return it instead.
type ArgumentError struct {
	Op     string
	Arg    string
	Reason string
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("%s: %s %s: %v", e.Op, e.Arg, e.Reason, ErrInvalidArgument)
}

// Unwrap makes errors.Is(err, ErrInvalidArgument) hold.
func (e *ArgumentError) Unwrap() error { return ErrInvalidArgument }

func argumentError(op, arg, reason string) *ArgumentError {
	return &ArgumentError{Op: op, Arg: arg, Reason: reason}
}

// CheckNonNegative panics with an ArgumentError when n is negative.
// It is exported for packages building operations on top of core.
func CheckNonNegative(op, arg string, n int) {
	if n < 0 {
		panic(argumentError(op, arg, "must be non-negative"))
	}
}

// CheckPositive panics with an ArgumentError when n is not positive.
func CheckPositive(op, arg string, n int) {
	if n <= 0 {
		panic(argumentError(op, arg, "must be positive"))
	}
}

// CheckNotNil panics with an ArgumentError when isNil is true.
func CheckNotNil(op, arg string, isNil bool) {
	if isNil {
		panic(argumentError(op, arg, "must not be nil"))
	}
}

// CheckRange panics unless 0 <= start <= end.
func CheckRange(op string, start, end int) {
	if start < 0 || end < start {
		panic(argumentError(op, "start/end", fmt.Sprintf("must satisfy 0 <= start <= end (got %d, %d)", start, end)))
	}
}
