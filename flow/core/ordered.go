package core

import (
	"cmp"
	"fmt"
	"math/rand/v2"
	"reflect"
	"slices"
)

// Ordered is a Consumer that also offers operations needing the whole
// sequence in a fixed order. Each of them materializes the elements into
// a private slice and returns a fresh Pipeline over it.
type Ordered[T any] struct {
	Consumer[T]
}

// NewOrdered wraps p in an Ordered consumer.
func NewOrdered[T any](p Pipeline[T]) *Ordered[T] {
	return p.ToOrdered()
}

// Unordered is a Consumer without order-sensitive operations.
type Unordered[T any] struct {
	Consumer[T]
}

// Sorted returns a Pipeline over the elements stably sorted by compare.
// A nil compare uses natural ordering: numbers numerically, strings
// lexically, anything else by its fmt.Sprint text.
func (o *Ordered[T]) Sorted(compare func(a, b T) int) Pipeline[T] {
	if compare == nil {
		compare = naturalCompare[T]
	}
	list := o.ToList()
	slices.SortStableFunc(list, compare)
	return o.over(list)
}

// Reverse returns a Pipeline over the elements in reverse order.
func (o *Ordered[T]) Reverse() Pipeline[T] {
	list := o.ToList()
	slices.Reverse(list)
	return o.over(list)
}

// Shuffle returns a Pipeline over the elements in Fisher-Yates shuffled
// order. random must return values uniformly distributed in [0, 1). When
// nil, the pipeline's configured random source is used, falling back to
// math/rand/v2.
func (o *Ordered[T]) Shuffle(random func() float64) Pipeline[T] {
	if random == nil {
		random = o.src.cfg.Random
	}
	if random == nil {
		random = rand.Float64
	}
	list := o.ToList()
	for i := len(list) - 1; i > 0; i-- {
		j := int(random() * float64(i+1))
		if j > i {
			j = i
		}
		if j < 0 {
			j = 0
		}
		list[i], list[j] = list[j], list[i]
	}
	return o.over(list)
}

// Semantic returns the underlying Pipeline so more operations can be
// chained after a terminal conversion.
func (o *Ordered[T]) Semantic() Pipeline[T] {
	return o.src
}

// Semantic returns the underlying Pipeline.
func (u *Unordered[T]) Semantic() Pipeline[T] {
	return u.src
}

// over returns a Pipeline over a materialized slice that keeps the
// consumer's configuration.
func (o *Ordered[T]) over(list []T) Pipeline[T] {
	return derive(o.src.cfg, SliceGenerator(list))
}

// SortedNatural sorts an Ordered consumer of an ordered type with cmp.Compare.
func SortedNatural[T cmp.Ordered](o *Ordered[T]) Pipeline[T] {
	return o.Sorted(cmp.Compare[T])
}

// naturalCompare orders numbers numerically and strings lexically. Values
// of any other kind are compared through their fmt.Sprint text.
func naturalCompare[T any](a, b T) int {
	va, vb := reflect.ValueOf(any(a)), reflect.ValueOf(any(b))
	if va.IsValid() && vb.IsValid() && va.Kind() == vb.Kind() {
		switch va.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			return cmp.Compare(va.Int(), vb.Int())
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
			return cmp.Compare(va.Uint(), vb.Uint())
		case reflect.Float32, reflect.Float64:
			return cmp.Compare(va.Float(), vb.Float())
		case reflect.String:
			return cmp.Compare(va.String(), vb.String())
		case reflect.Bool:
			return cmp.Compare(boolRank(va.Bool()), boolRank(vb.Bool()))
		}
	}
	return cmp.Compare(fmt.Sprint(a), fmt.Sprint(b))
}

func boolRank(b bool) int {
	if b {
		return 1
	}
	return 0
}
