package core

// Hooks holds typed observation callbacks for one traversal of a
// Pipeline. All fields are optional - nil means no observation for that
// event. Hooks run synchronously inside the traversal, so they should be
// fast.
type Hooks[T any] struct {
	OnStart    func()          // Traversal begins
	OnElement  func(T, int)    // Element forwarded downstream
	OnComplete func(count int) // Drive returned, including after an interrupt
}

// Watch returns a Pipeline that invokes hooks around every traversal.
// Multiple Watch calls compose in FIFO order: hooks of the innermost
// Watch see elements first.
func (p Pipeline[T]) Watch(hooks Hooks[T]) Pipeline[T] {
	return derive(p.cfg, func(accept func(T, int), interrupt func(T) bool) {
		count := 0
		if hooks.OnStart != nil {
			hooks.OnStart()
		}
		if hooks.OnComplete != nil {
			defer func() { hooks.OnComplete(count) }()
		}
		p.gen.Drive(func(element T, index int) {
			if interrupt(element) {
				return
			}
			count++
			if hooks.OnElement != nil {
				hooks.OnElement(element, index)
			}
			accept(element, index)
		}, interrupt)
	})
}

// SafeHooks wraps hooks so that a panic inside one of them is recovered
// and reported to panicHandler instead of unwinding the traversal.
// If panicHandler is nil, panics are silently recovered.
func SafeHooks[T any](hooks Hooks[T], panicHandler func(any)) Hooks[T] {
	if panicHandler == nil {
		panicHandler = func(any) {}
	}
	guard := func() {
		if r := recover(); r != nil {
			panicHandler(r)
		}
	}

	var safe Hooks[T]
	if hooks.OnStart != nil {
		safe.OnStart = func() {
			defer guard()
			hooks.OnStart()
		}
	}
	if hooks.OnElement != nil {
		safe.OnElement = func(v T, i int) {
			defer guard()
			hooks.OnElement(v, i)
		}
	}
	if hooks.OnComplete != nil {
		safe.OnComplete = func(n int) {
			defer guard()
			hooks.OnComplete(n)
		}
	}
	return safe
}
