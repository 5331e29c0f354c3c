package core

import "reflect"

// Optional holds at most one value. It is returned by queries that may
// find nothing. The zero Optional is empty. A present Optional never holds
// a nil pointer, map, slice, channel, func or interface.
type Optional[T any] struct {
	value   T
	present bool
}

// Of returns an Optional holding value. A nil value is rejected with an
// ArgumentError panic.
func Of[T any](value T) Optional[T] {
	if isNil(value) {
		panic(argumentError("Of", "value", "must not be nil"))
	}
	return Optional[T]{value: value, present: true}
}

// OfNullable returns an Optional holding value, or an empty one when
// value is nil.
func OfNullable[T any](value T) Optional[T] {
	if isNil(value) {
		return Optional[T]{}
	}
	return Optional[T]{value: value, present: true}
}

// None returns an empty Optional.
func None[T any]() Optional[T] {
	return Optional[T]{}
}

// IsPresent returns true if the Optional holds a value.
func (o Optional[T]) IsPresent() bool { return o.present }

// IsEmpty returns true if the Optional holds no value.
func (o Optional[T]) IsEmpty() bool { return !o.present }

// Get returns the value, or ErrEmptyValue when the Optional is empty.
func (o Optional[T]) Get() (T, error) {
	if !o.present {
		var zero T
		return zero, ErrEmptyValue
	}
	return o.value, nil
}

// MustGet returns the value and panics with ErrEmptyValue when empty.
func (o Optional[T]) MustGet() T {
	if !o.present {
		panic(ErrEmptyValue)
	}
	return o.value
}

// IfPresent calls fn with the value when there is one.
func (o Optional[T]) IfPresent(fn func(T)) {
	if o.present && fn != nil {
		fn(o.value)
	}
}

// Filter returns the receiver when it is present and predicate accepts
// its value, and an empty Optional otherwise.
func (o Optional[T]) Filter(predicate func(T) bool) Optional[T] {
	if !o.present || predicate == nil || !predicate(o.value) {
		return Optional[T]{}
	}
	return o
}

// OrElse returns the value or other when empty.
func (o Optional[T]) OrElse(other T) T {
	if o.present {
		return o.value
	}
	return other
}

// OrElseGet returns the value or the result of supplier when empty.
func (o Optional[T]) OrElseGet(supplier func() T) T {
	if o.present {
		return o.value
	}
	CheckNotNil("OrElseGet", "supplier", supplier == nil)
	return supplier()
}

// OrElseErr returns the value, or the error built by supplier when empty.
// A nil supplier yields ErrEmptyValue.
func (o Optional[T]) OrElseErr(supplier func() error) (T, error) {
	if o.present {
		return o.value, nil
	}
	var zero T
	if supplier == nil {
		return zero, ErrEmptyValue
	}
	return zero, supplier()
}

// MapOptional applies fn to a present value. The result is nullable.
func MapOptional[T, U any](o Optional[T], fn func(T) U) Optional[U] {
	if !o.present || fn == nil {
		return Optional[U]{}
	}
	return OfNullable(fn(o.value))
}

// FlatMapOptional applies fn to a present value and returns its result.
func FlatMapOptional[T, U any](o Optional[T], fn func(T) Optional[U]) Optional[U] {
	if !o.present || fn == nil {
		return Optional[U]{}
	}
	return fn(o.value)
}

// isNil reports whether v is a nil interface or a nil value of a nillable
// kind.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}
