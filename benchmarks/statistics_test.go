package benchmarks

import (
	"math"
	"testing"

	"github.com/ahmetb/go-linq/v3"
	"github.com/lguimbarda/semantic-flow/flow"
	"github.com/lguimbarda/semantic-flow/flow/statistics"
	"github.com/lguimbarda/semantic-flow/flow/window"
	"github.com/samber/lo"
)

// =============================================================================
// Mean and sample variance
// =============================================================================

func BenchmarkMeanVariance_Flow(b *testing.B) {
	forSizes(b, func(b *testing.B, size int) {
		data := generateReadings(size)
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			s := statistics.Of(flow.FromSlice(data))
			_, _ = s.Mean(), s.Variance()
		}
	})
}

func BenchmarkMeanVariance_GoLinq(b *testing.B) {
	forSizes(b, func(b *testing.B, size int) {
		data := generateReadings(size)
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			q := linq.From(data)
			mean := q.Average()
			squares := q.SelectT(func(x float64) float64 { return (x - mean) * (x - mean) }).SumFloats()
			_ = squares / float64(len(data)-1)
		}
	})
}

func BenchmarkMeanVariance_Lo(b *testing.B) {
	forSizes(b, func(b *testing.B, size int) {
		data := generateReadings(size)
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			mean := lo.Sum(data) / float64(len(data))
			squares := lo.SumBy(data, func(x float64) float64 { return (x - mean) * (x - mean) })
			_ = squares / float64(len(data)-1)
		}
	})
}

func BenchmarkMeanVariance_RawLoop(b *testing.B) {
	forSizes(b, func(b *testing.B, size int) {
		data := generateReadings(size)
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			sum := 0.0
			for _, x := range data {
				sum += x
			}
			mean := sum / float64(len(data))
			squares := 0.0
			for _, x := range data {
				squares += (x - mean) * (x - mean)
			}
			_ = squares / float64(len(data)-1)
		}
	})
}

// Quartiles sort once per call; Median and Quartiles together sort twice.
func BenchmarkQuartiles_Flow(b *testing.B) {
	forSizes(b, func(b *testing.B, size int) {
		data := generateReadings(size)
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			_ = statistics.Of(flow.FromSlice(data)).InterquartileRange()
		}
	})
}

// =============================================================================
// Tumbling windows: per-window maximum
// =============================================================================

const windowSize = 16

func BenchmarkTumblingMax_Flow(b *testing.B) {
	forSizes(b, func(b *testing.B, size int) {
		data := generateReadings(size)
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			_ = window.MapTumbling(window.New(flow.FromSlice(data)), windowSize, lo.Max[float64])
		}
	})
}

func BenchmarkTumblingMax_Lo(b *testing.B) {
	forSizes(b, func(b *testing.B, size int) {
		data := generateReadings(size)
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			chunks := lo.Chunk(data, windowSize)
			// Chunk keeps the trailing partial chunk; windows never do.
			if len(chunks) > 0 && len(chunks[len(chunks)-1]) < windowSize {
				chunks = chunks[:len(chunks)-1]
			}
			_ = lo.Map(chunks, func(c []float64, _ int) float64 { return lo.Max(c) })
		}
	})
}

func BenchmarkTumblingMax_RawLoop(b *testing.B) {
	forSizes(b, func(b *testing.B, size int) {
		data := generateReadings(size)
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			result := make([]float64, 0, len(data)/windowSize)
			for start := 0; start+windowSize <= len(data); start += windowSize {
				m := math.Inf(-1)
				for _, x := range data[start : start+windowSize] {
					m = max(m, x)
				}
				result = append(result, m)
			}
			_ = result
		}
	})
}
