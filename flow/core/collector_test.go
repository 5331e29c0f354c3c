package core_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/lguimbarda/semantic-flow/flow/core"
)

func TestNewCollectorValidation(t *testing.T) {
	supplier := func() int { return 0 }
	accumulator := func(acc, n int) int { return acc + n }
	combiner := func(a, b int) int { return a + b }

	tests := []struct {
		name string
		err  error
	}{
		{"nil supplier", func() error {
			_, err := core.NewCollector[int, int, int](nil, accumulator, combiner, nil, nil)
			return err
		}()},
		{"nil accumulator", func() error {
			_, err := core.NewCollector[int, int, int](supplier, nil, combiner, nil, nil)
			return err
		}()},
		{"nil combiner", func() error {
			_, err := core.NewCollector[int, int, int](supplier, accumulator, nil, nil, nil)
			return err
		}()},
		{"nil finisher with different result type", func() error {
			_, err := core.NewCollector[int, int, string](supplier, accumulator, combiner, nil, nil)
			return err
		}()},
		{"shortable without interrupter", func() error {
			_, err := core.Shortable[int, int, int](supplier, nil, accumulator, combiner, nil)
			return err
		}()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var argErr *core.ArgumentError
			if !errors.As(tt.err, &argErr) || !errors.Is(tt.err, core.ErrInvalidArgument) {
				t.Fatalf("err = %v, want ArgumentError", tt.err)
			}
		})
	}

	mustPanicWithArgument(t, func() { core.Simple[int, int](nil, accumulator, combiner) })
}

func TestCollectorDefaults(t *testing.T) {
	c, err := core.NewCollector[string, []string, []string](
		func() []string { return nil },
		func(acc []string, s string) []string { return append(acc, s) },
		func(a, b []string) []string { return append(a, b...) },
		nil,
		nil,
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertSlice(t, core.Collect(from("x", "y"), c), []string{"x", "y"})
	assertSlice(t, c.Combine([]string{"a"}, []string{"b"}), []string{"a", "b"})
}

func TestShortableCollector(t *testing.T) {
	upper, err := core.Shortable(
		func() *strings.Builder { return &strings.Builder{} },
		func(s string) bool { return s == "stop" },
		func(acc *strings.Builder, s string) *strings.Builder { acc.WriteString(s); return acc },
		func(a, b *strings.Builder) *strings.Builder { a.WriteString(b.String()); return a },
		func(acc *strings.Builder) string { return strings.ToUpper(acc.String()) },
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	produced := 0
	words := core.Map(naturals(&produced), func(n int) string {
		if n == 3 {
			return "stop"
		}
		return "ab"
	})
	if got := core.Collect(words, upper); got != "ABABAB" {
		t.Errorf("Collect = %q, want ABABAB", got)
	}
	if produced != 4 {
		t.Errorf("source produced %d elements, want 4", produced)
	}
}
