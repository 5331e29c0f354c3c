package observe

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/metric"

	"github.com/lguimbarda/semantic-flow/flow/core"
)

// Meter returns a pipeline that adds every forwarded element to an
// Int64Counter named name, and records the duration of every traversal
// in seconds on a Float64Histogram named name+".duration". Traversals of
// the returned pipeline must not run concurrently.
//
// Example:
//
//	meter := otel.GetMeterProvider().Meter("orders")
//	p, err := observe.Meter(ctx, orders, meter, "orders.processed")
func Meter[T any](ctx context.Context, p core.Pipeline[T], meter metric.Meter, name string, opts ...metric.AddOption) (core.Pipeline[T], error) {
	counter, err := meter.Int64Counter(name, metric.WithDescription("elements forwarded by the pipeline"))
	if err != nil {
		return p, err
	}
	duration, err := meter.Float64Histogram(name+".duration",
		metric.WithDescription("duration of a pipeline traversal"),
		metric.WithUnit("s"))
	if err != nil {
		return p, err
	}

	var start time.Time
	return p.Watch(core.Hooks[T]{
		OnStart: func() {
			start = time.Now()
		},
		OnElement: func(T, int) {
			counter.Add(ctx, 1, opts...)
		},
		OnComplete: func(int) {
			duration.Record(ctx, time.Since(start).Seconds())
		},
	}), nil
}
