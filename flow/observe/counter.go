package observe

import (
	"sync/atomic"

	"github.com/lguimbarda/semantic-flow/flow/core"
)

// Counter counts the elements forwarded by a watched pipeline across all
// of its traversals.
type Counter struct {
	elements   atomic.Int64
	traversals atomic.Int64
	last       atomic.Int64
}

// Elements returns the number of elements forwarded so far.
func (c *Counter) Elements() int64 { return c.elements.Load() }

// Traversals returns the number of completed traversals.
func (c *Counter) Traversals() int64 { return c.traversals.Load() }

// Last returns the element count of the most recent completed traversal.
func (c *Counter) Last() int64 { return c.last.Load() }

// Count returns a pass-through pipeline and the Counter it reports to.
func Count[T any](p core.Pipeline[T]) (core.Pipeline[T], *Counter) {
	counter := &Counter{}
	watched := p.Watch(core.Hooks[T]{
		OnElement: func(T, int) {
			counter.elements.Add(1)
		},
		OnComplete: func(n int) {
			counter.traversals.Add(1)
			counter.last.Store(int64(n))
		},
	})
	return watched, counter
}
