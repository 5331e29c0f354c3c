package core_test

import (
	"testing"

	"github.com/lguimbarda/semantic-flow/flow/core"
)

func TestWatch(t *testing.T) {
	t.Run("hooks fire per traversal", func(t *testing.T) {
		var started, completed int
		var counts []int
		var seen []int

		p := from(1, 2, 3).Watch(core.Hooks[int]{
			OnStart:    func() { started++ },
			OnElement:  func(v, _ int) { seen = append(seen, v) },
			OnComplete: func(n int) { completed++; counts = append(counts, n) },
		})
		if started != 0 {
			t.Fatal("hooks fired during construction")
		}

		c := p.ToOrdered()
		c.ToList()
		c.Count()
		if started != 2 || completed != 2 {
			t.Errorf("started=%d completed=%d, want 2 each", started, completed)
		}
		assertSlice(t, counts, []int{3, 3})
		assertSlice(t, seen, []int{1, 2, 3, 1, 2, 3})
	})

	t.Run("complete fires after interrupt", func(t *testing.T) {
		produced := 0
		var count int
		p := naturals(&produced).Watch(core.Hooks[int]{
			OnComplete: func(n int) { count = n },
		})
		p.ToOrdered().AnyMatch(func(n int) bool { return n == 4 })
		if count != 5 {
			t.Errorf("OnComplete count = %d, want 5", count)
		}
	})

	t.Run("safe hooks recover panics", func(t *testing.T) {
		var recovered []any
		hooks := core.SafeHooks(core.Hooks[int]{
			OnElement: func(int, int) { panic("boom") },
		}, func(r any) { recovered = append(recovered, r) })

		got := from(1, 2).Watch(hooks).ToOrdered().ToList()
		assertSlice(t, got, []int{1, 2})
		if len(recovered) != 2 {
			t.Errorf("recovered %d panics, want 2", len(recovered))
		}
	})
}
