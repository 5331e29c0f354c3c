package observe

import (
	"github.com/rs/zerolog"

	"github.com/lguimbarda/semantic-flow/flow/core"
)

// Trace returns a pipeline that logs the start and end of every traversal
// and each forwarded element at debug level. Log lines carry a "stage"
// field so several traced stages of one chain can be told apart.
func Trace[T any](p core.Pipeline[T], logger zerolog.Logger, stage string) core.Pipeline[T] {
	logger = logger.With().Str("stage", stage).Logger()
	return p.Watch(core.Hooks[T]{
		OnStart: func() {
			logger.Debug().Msg("traversal started")
		},
		OnElement: func(v T, index int) {
			logger.Debug().Int("index", index).Interface("element", v).Msg("element")
		},
		OnComplete: func(count int) {
			logger.Debug().Int("count", count).Msg("traversal completed")
		},
	})
}

// Log returns a pipeline that logs every forwarded element at level with
// msg, using format to render the element.
func Log[T any](p core.Pipeline[T], logger zerolog.Logger, level zerolog.Level, msg string, format func(T) string) core.Pipeline[T] {
	if format == nil {
		return p.Watch(core.Hooks[T]{
			OnElement: func(v T, index int) {
				logger.WithLevel(level).Int("index", index).Interface("element", v).Msg(msg)
			},
		})
	}
	return p.Watch(core.Hooks[T]{
		OnElement: func(v T, index int) {
			logger.WithLevel(level).Int("index", index).Str("element", format(v)).Msg(msg)
		},
	})
}
