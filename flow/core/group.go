package core

// Entry is one bucket of a grouping: a key and the values filed under it
// in arrival order.
type Entry[K comparable, V any] struct {
	Key    K
	Values []V
}

// Groups is the result of a grouping. Groups appear in the order their
// key was first seen.
type Groups[K comparable, V any] []Entry[K, V]

// Get returns the values filed under key.
func (g Groups[K, V]) Get(key K) ([]V, bool) {
	for _, group := range g {
		if group.Key == key {
			return group.Values, true
		}
	}
	return nil, false
}

// Keys returns the keys in first-seen order.
func (g Groups[K, V]) Keys() []K {
	keys := make([]K, len(g))
	for i, group := range g {
		keys[i] = group.Key
	}
	return keys
}

// Map returns the groups as a map, losing their order.
func (g Groups[K, V]) Map() map[K][]V {
	m := make(map[K][]V, len(g))
	for _, group := range g {
		m[group.Key] = group.Values
	}
	return m
}

// grouper accumulates values under keys while remembering key order.
type grouper[K comparable, V any] struct {
	index  map[K]int
	groups Groups[K, V]
}

func newGrouper[K comparable, V any]() *grouper[K, V] {
	return &grouper[K, V]{index: make(map[K]int), groups: make(Groups[K, V], 0)}
}

func (g *grouper[K, V]) add(key K, value V) {
	i, ok := g.index[key]
	if !ok {
		i = len(g.groups)
		g.index[key] = i
		g.groups = append(g.groups, Entry[K, V]{Key: key})
	}
	g.groups[i].Values = append(g.groups[i].Values, value)
}

// ToMap collects the elements into a map. Later elements overwrite
// earlier ones with the same key.
func ToMap[T any, K comparable, V any](src Source[T], key func(T) K, value func(T) V) map[K]V {
	CheckNotNil("ToMap", "key", key == nil)
	CheckNotNil("ToMap", "value", value == nil)
	m := make(map[K]V)
	src.Drive(func(element T, _ int) {
		m[key(element)] = value(element)
	}, never[T])
	return m
}

// ToSet collects the distinct elements into a set. Pass o.Consumer for
// an Ordered or Unordered consumer.
func ToSet[T comparable](c Consumer[T]) map[T]struct{} {
	set := make(map[T]struct{})
	c.Drive(func(element T, _ int) {
		set[element] = struct{}{}
	}, never[T])
	return set
}

// Group files every element under the key returned by classifier.
func Group[T any, K comparable](src Source[T], classifier func(T) K) Groups[K, T] {
	CheckNotNil("Group", "classifier", classifier == nil)
	g := newGrouper[K, T]()
	src.Drive(func(element T, _ int) {
		g.add(classifier(element), element)
	}, never[T])
	return g.groups
}

// GroupBy files value(element) under key(element).
func GroupBy[T any, K comparable, V any](src Source[T], key func(T) K, value func(T) V) Groups[K, V] {
	CheckNotNil("GroupBy", "key", key == nil)
	CheckNotNil("GroupBy", "value", value == nil)
	g := newGrouper[K, V]()
	src.Drive(func(element T, _ int) {
		g.add(key(element), value(element))
	}, never[T])
	return g.groups
}

// PartitionBy groups the elements by classifier and returns the groups'
// values in first-seen key order.
func PartitionBy[T any, K comparable](src Source[T], classifier func(T) K) [][]T {
	groups := Group(src, classifier)
	out := make([][]T, len(groups))
	for i, group := range groups {
		out[i] = group.Values
	}
	return out
}
