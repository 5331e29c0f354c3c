package observe_test

import (
	"testing"
	"time"

	"github.com/lguimbarda/semantic-flow/flow"
	"github.com/lguimbarda/semantic-flow/flow/observe"
)

func TestRateMeter(t *testing.T) {
	meter := observe.NewRateMeter(time.Second)

	for i := 0; i < 10; i++ {
		meter.Add(1)
		time.Sleep(10 * time.Millisecond)
	}

	rate := meter.Rate()
	if rate <= 0 {
		t.Errorf("expected positive rate, got %f", rate)
	}

	if meter.TotalCount() != 10 {
		t.Errorf("expected total count 10, got %d", meter.TotalCount())
	}
}

func TestMeterRate(t *testing.T) {
	meter := observe.NewRateMeter(time.Minute)
	p := observe.MeterRate(flow.Range(0, 100, 1), meter)
	flow.Slice(p.Limit(7))
	if meter.TotalCount() != 7 {
		t.Errorf("expected total count 7, got %d", meter.TotalCount())
	}
}

func TestHistogram(t *testing.T) {
	histogram := observe.NewHistogram[string]()

	histogram.Add("a")
	histogram.Add("b")
	histogram.Add("a")
	histogram.Add("c")
	histogram.Add("a")

	if histogram.Count("a") != 3 {
		t.Errorf("expected count for 'a' = 3, got %d", histogram.Count("a"))
	}
	if histogram.Count("b") != 1 {
		t.Errorf("expected count for 'b' = 1, got %d", histogram.Count("b"))
	}
	if histogram.Total() != 5 {
		t.Errorf("expected total = 5, got %d", histogram.Total())
	}

	counts := histogram.Counts()
	if len(counts) != 3 {
		t.Errorf("expected 3 unique values, got %d", len(counts))
	}
}

func TestMeterHistogram(t *testing.T) {
	histogram := observe.NewHistogram[string]()
	words := observe.MeterHistogram(flow.Of("x", "y", "x"), histogram)
	if got := flow.Slice(words); len(got) != 3 {
		t.Fatalf("got %v, want pass-through of 3 elements", got)
	}
	if histogram.Count("x") != 2 {
		t.Errorf("expected count for 'x' = 2, got %d", histogram.Count("x"))
	}
}

func TestLiveMetrics(t *testing.T) {
	metrics := &observe.LiveMetrics{}

	if metrics.TotalItems() != 0 {
		t.Errorf("expected TotalItems = 0, got %d", metrics.TotalItems())
	}
	if metrics.Duration() != 0 {
		t.Errorf("expected Duration = 0 before any traversal, got %v", metrics.Duration())
	}

	p := observe.MeasureLive(flow.Of(1, 2, 3), metrics)
	flow.Slice(p)
	flow.Slice(p)
	if metrics.TotalItems() != 6 {
		t.Errorf("expected TotalItems = 6, got %d", metrics.TotalItems())
	}
	if metrics.Traversals() != 2 {
		t.Errorf("expected Traversals = 2, got %d", metrics.Traversals())
	}
	if metrics.LastItemTime().Before(metrics.StartTime()) {
		t.Error("last item recorded before the traversal started")
	}
}

func TestMeasure(t *testing.T) {
	var reports []observe.TraversalMetrics
	p := observe.Measure(flow.Of(1, 2, 3, 4), func(m observe.TraversalMetrics) {
		reports = append(reports, m)
	})

	flow.Slice(p)
	flow.First(p)

	if len(reports) != 2 {
		t.Fatalf("got %d reports, want 2", len(reports))
	}
	if reports[0].TotalItems != 4 {
		t.Errorf("first traversal TotalItems = %d, want 4", reports[0].TotalItems)
	}
	if reports[1].TotalItems != 1 {
		t.Errorf("short-circuited traversal TotalItems = %d, want 1", reports[1].TotalItems)
	}
	if reports[1].MinLatency != 0 || reports[1].AvgLatency != 0 {
		t.Errorf("single element traversal should report no latency, got %+v", reports[1])
	}
	if reports[0].EndTime.Before(reports[0].StartTime) {
		t.Error("EndTime before StartTime")
	}
}

func TestTraversalMetricsDuration(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := start.Add(100 * time.Millisecond)
	metrics := observe.TraversalMetrics{
		StartTime: start,
		EndTime:   end,
	}

	duration := metrics.Duration()
	if duration != 100*time.Millisecond {
		t.Errorf("expected duration = 100ms, got %v", duration)
	}
}

func TestCount(t *testing.T) {
	p, counter := observe.Count(flow.Range(0, 10, 1))

	evens := p.Filter(func(n int) bool { return n%2 == 0 })
	if got := flow.Slice(evens.Limit(2)); len(got) != 2 {
		t.Fatalf("got %v", got)
	}
	// 0, 1, 2 reach the filter, and 3 is offered to the interrupt only.
	if counter.Elements() != 3 {
		t.Errorf("Elements = %d, want 3", counter.Elements())
	}
	if counter.Traversals() != 1 || counter.Last() != 3 {
		t.Errorf("Traversals = %d, Last = %d; want 1, 3", counter.Traversals(), counter.Last())
	}

	flow.Slice(p)
	if counter.Elements() != 13 || counter.Last() != 10 {
		t.Errorf("after full traversal Elements = %d, Last = %d; want 13, 10", counter.Elements(), counter.Last())
	}
}
