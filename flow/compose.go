package flow

// Stage is a reusable, typed pipeline transformation.
type Stage[IN, OUT any] func(Pipeline[IN]) Pipeline[OUT]

// Through chains two stages together, creating a new stage that first
// applies s1 and then s2.
func Through[IN, MID, OUT any](s1 Stage[IN, MID], s2 Stage[MID, OUT]) Stage[IN, OUT] {
	return func(p Pipeline[IN]) Pipeline[OUT] {
		return s2(s1(p))
	}
}

// Chain composes multiple stages of the same type into a single stage.
// Stages are applied in order from left to right.
// If no stages are provided, returns an identity stage.
func Chain[T any](stages ...Stage[T, T]) Stage[T, T] {
	return func(p Pipeline[T]) Pipeline[T] {
		for _, s := range stages {
			if s != nil {
				p = s(p)
			}
		}
		return p
	}
}

// Pipe applies a series of stages to a pipeline, returning the final pipeline.
// This is a convenience function for applying multiple stages inline.
func Pipe[T any](p Pipeline[T], stages ...Stage[T, T]) Pipeline[T] {
	return Chain(stages...)(p)
}

// Apply is a helper to apply a single stage to a pipeline.
// Equivalent to stage(p) but reads left-to-right.
func Apply[IN, OUT any](p Pipeline[IN], stage Stage[IN, OUT]) Pipeline[OUT] {
	return stage(p)
}

// Mapping lifts fn into a Stage.
func Mapping[IN, OUT any](fn func(IN) OUT) Stage[IN, OUT] {
	return func(p Pipeline[IN]) Pipeline[OUT] {
		return Map(p, fn)
	}
}

// Filtering lifts predicate into a Stage.
func Filtering[T any](predicate func(T) bool) Stage[T, T] {
	return func(p Pipeline[T]) Pipeline[T] {
		return p.Filter(predicate)
	}
}

// Limiting returns a Stage that keeps the first n elements.
func Limiting[T any](n int) Stage[T, T] {
	return func(p Pipeline[T]) Pipeline[T] {
		return p.Limit(n)
	}
}

// Skipping returns a Stage that drops the first n elements.
func Skipping[T any](n int) Stage[T, T] {
	return func(p Pipeline[T]) Pipeline[T] {
		return p.Skip(n)
	}
}
