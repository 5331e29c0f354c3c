package core_test

import (
	"errors"
	"testing"

	"github.com/lguimbarda/semantic-flow/flow/core"
)

func TestOptionalPresence(t *testing.T) {
	var nilPtr *int
	tests := []struct {
		name    string
		opt     core.Optional[*int]
		present bool
	}{
		{"zero value", core.Optional[*int]{}, false},
		{"none", core.None[*int](), false},
		{"nullable nil", core.OfNullable(nilPtr), false},
		{"nullable value", core.OfNullable(new(int)), true},
		{"of value", core.Of(new(int)), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.opt.IsPresent() != tt.present {
				t.Errorf("IsPresent = %v, want %v", tt.opt.IsPresent(), tt.present)
			}
			if tt.opt.IsEmpty() == tt.opt.IsPresent() {
				t.Error("IsEmpty and IsPresent must be complementary")
			}
		})
	}

	mustPanicWithArgument(t, func() { core.Of(nilPtr) })
}

func TestOptionalAccess(t *testing.T) {
	present := core.Of(42)
	empty := core.None[int]()

	if v, err := present.Get(); err != nil || v != 42 {
		t.Errorf("Get = %v, %v", v, err)
	}
	if _, err := empty.Get(); !errors.Is(err, core.ErrEmptyValue) {
		t.Errorf("Get on empty: err = %v, want ErrEmptyValue", err)
	}
	if got := empty.OrElse(7); got != 7 {
		t.Errorf("OrElse = %d, want 7", got)
	}
	if got := empty.OrElseGet(func() int { return 8 }); got != 8 {
		t.Errorf("OrElseGet = %d, want 8", got)
	}
	errCustom := errors.New("custom")
	if _, err := empty.OrElseErr(func() error { return errCustom }); !errors.Is(err, errCustom) {
		t.Errorf("OrElseErr: err = %v", err)
	}
	if v, err := present.OrElseErr(nil); err != nil || v != 42 {
		t.Errorf("OrElseErr on present = %v, %v", v, err)
	}

	func() {
		defer func() {
			if r := recover(); r != core.ErrEmptyValue {
				t.Errorf("MustGet panic = %v, want ErrEmptyValue", r)
			}
		}()
		empty.MustGet()
	}()
}

func TestOptionalChaining(t *testing.T) {
	o := core.Of(10)

	if got := o.Filter(isEven).OrElse(-1); got != 10 {
		t.Errorf("Filter keep = %d", got)
	}
	if o.Filter(func(n int) bool { return n > 100 }).IsPresent() {
		t.Error("Filter reject should be empty")
	}

	s := core.MapOptional(o, func(n int) string { return "v" })
	if got := s.OrElse(""); got != "v" {
		t.Errorf("MapOptional = %q", got)
	}
	half := core.FlatMapOptional(o, func(n int) core.Optional[int] { return core.Of(n / 2) })
	if got := half.OrElse(0); got != 5 {
		t.Errorf("FlatMapOptional = %d", got)
	}
	if core.MapOptional(core.None[int](), func(n int) int { return n }).IsPresent() {
		t.Error("MapOptional on empty should be empty")
	}

	called := false
	core.None[int]().IfPresent(func(int) { called = true })
	if called {
		t.Error("IfPresent called on empty")
	}
	o.IfPresent(func(int) { called = true })
	if !called {
		t.Error("IfPresent not called on present")
	}
}
