package core_test

import (
	"testing"

	"github.com/lguimbarda/semantic-flow/flow/core"
)

func TestOptions(t *testing.T) {
	p := core.Iterate(core.SliceGenerator([]int{1}))
	if p.Concurrency() != core.DefaultConcurrency {
		t.Errorf("default Concurrency() = %d", p.Concurrency())
	}
	if p.Config().Random != nil {
		t.Error("default Random should be nil")
	}

	r := func() float64 { return 0.5 }
	q := core.Iterate(core.SliceGenerator([]int{1}), core.WithConcurrency(4), core.WithRandom(r), nil)
	if q.Concurrency() != 4 {
		t.Errorf("Concurrency() = %d, want 4", q.Concurrency())
	}
	if q.Config().Random == nil || q.Config().Random() != 0.5 {
		t.Error("WithRandom not applied")
	}

	derived := core.Map(q.Skip(0), func(n int) string { return "x" })
	if derived.Concurrency() != 4 {
		t.Error("configuration not inherited by derived pipelines")
	}
	if w := p.With(core.WithConcurrency(2)); w.Concurrency() != 2 || p.Concurrency() != 1 {
		t.Error("With must return a new pipeline and leave the receiver alone")
	}
}
