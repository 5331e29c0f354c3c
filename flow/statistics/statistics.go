// Package statistics provides a numeric consumer over a flow pipeline.
//
// Every statistic projects the elements through the consumer's mapper,
// sorts the projection ascending and computes from that list. Nothing is
// cached: each call traverses the source again.
//
// Minimum and Maximum report an empty Optional on empty input, while Sum,
// Mean, Median and Mode report 0.
package statistics

import (
	"math"
	"slices"

	"github.com/samber/lo"

	"github.com/lguimbarda/semantic-flow/flow/core"
)

// Statistics is an ordered consumer specialized to numeric aggregation.
type Statistics[T any] struct {
	*core.Ordered[T]
	mapper func(T) float64
}

// Bucket is one entry of a frequency table.
type Bucket struct {
	Value float64
	Count int
}

// New returns a Statistics consumer over p that projects every element
// through mapper. A nil mapper panics with an ArgumentError.
func New[T any](p core.Pipeline[T], mapper func(T) float64) *Statistics[T] {
	core.CheckNotNil("statistics.New", "mapper", mapper == nil)
	return &Statistics[T]{Ordered: p.ToOrdered(), mapper: mapper}
}

// Of returns a Statistics consumer over a pipeline of numbers.
func Of[T core.Number](p core.Pipeline[T]) *Statistics[T] {
	return New(p, func(v T) float64 { return float64(v) })
}

// Values returns the projected elements sorted ascending.
func (s *Statistics[T]) Values() []float64 {
	values := make([]float64, 0)
	s.Drive(func(element T, _ int) {
		values = append(values, s.mapper(element))
	}, func(T) bool { return false })
	slices.Sort(values)
	return values
}

// Minimum returns the smallest value. A non-nil compare replaces the
// numeric ordering.
func (s *Statistics[T]) Minimum(compare func(a, b float64) int) core.Optional[float64] {
	values := s.Values()
	if len(values) == 0 {
		return core.None[float64]()
	}
	if compare != nil {
		return core.Of(lo.MinBy(values, func(a, b float64) bool { return compare(a, b) < 0 }))
	}
	return core.Of(lo.Min(values))
}

// Maximum returns the largest value. A non-nil compare replaces the
// numeric ordering.
func (s *Statistics[T]) Maximum(compare func(a, b float64) int) core.Optional[float64] {
	values := s.Values()
	if len(values) == 0 {
		return core.None[float64]()
	}
	if compare != nil {
		return core.Of(lo.MaxBy(values, func(a, b float64) bool { return compare(a, b) > 0 }))
	}
	return core.Of(lo.Max(values))
}

// Sum returns the sum of the values, 0 on empty input.
func (s *Statistics[T]) Sum() float64 {
	return lo.Sum(s.Values())
}

// Mean returns the arithmetic mean, 0 on empty input.
func (s *Statistics[T]) Mean() float64 {
	return mean(s.Values())
}

// Median returns the middle value, or the mean of the two middle values
// for an even count. 0 on empty input.
func (s *Statistics[T]) Median() float64 {
	values := s.Values()
	n := len(values)
	if n == 0 {
		return 0
	}
	mid := n / 2
	if n%2 == 0 {
		return (values[mid-1] + values[mid]) / 2
	}
	return values[mid]
}

// Mode returns the most frequent value. Ties go to the smallest value.
// 0 on empty input.
func (s *Statistics[T]) Mode() float64 {
	buckets := frequency(s.Values())
	if len(buckets) == 0 {
		return 0
	}
	best := buckets[0]
	for _, b := range buckets[1:] {
		if b.Count > best.Count {
			best = b
		}
	}
	return best.Value
}

// Variance returns the sample variance (denominator n-1). It needs at
// least two values and returns 0 otherwise.
func (s *Statistics[T]) Variance() float64 {
	return variance(s.Values())
}

// StandardDeviation returns the square root of Variance.
func (s *Statistics[T]) StandardDeviation() float64 {
	return math.Sqrt(s.Variance())
}

// Range returns Maximum - Minimum, 0 on empty input.
func (s *Statistics[T]) Range() float64 {
	values := s.Values()
	if len(values) == 0 {
		return 0
	}
	return values[len(values)-1] - values[0]
}

// Quartiles returns the values at floor(n*0.25), floor(n*0.5) and
// floor(n*0.75) of the sorted list. No interpolation is done.
// [0, 0, 0] on empty input.
func (s *Statistics[T]) Quartiles() [3]float64 {
	values := s.Values()
	n := len(values)
	if n == 0 {
		return [3]float64{}
	}
	at := func(q float64) float64 {
		return values[int(math.Floor(float64(n)*q))]
	}
	return [3]float64{at(0.25), at(0.5), at(0.75)}
}

// InterquartileRange returns Q3 - Q1.
func (s *Statistics[T]) InterquartileRange() float64 {
	q := s.Quartiles()
	return q[2] - q[0]
}

// Skewness returns the third central moment (divided by n) over the
// cube of the sample standard deviation. It needs at least three values
// and returns 0 otherwise or when the standard deviation is 0.
func (s *Statistics[T]) Skewness() float64 {
	values := s.Values()
	if len(values) < 3 {
		return 0
	}
	return standardMoment(values, 3)
}

// Kurtosis returns the excess kurtosis: the fourth central moment
// (divided by n) over the fourth power of the sample standard deviation,
// minus 3. It needs at least four values and returns 0 otherwise or when
// the standard deviation is 0.
func (s *Statistics[T]) Kurtosis() float64 {
	values := s.Values()
	if len(values) < 4 {
		return 0
	}
	if math.Sqrt(variance(values)) == 0 {
		return 0
	}
	return standardMoment(values, 4) - 3
}

// Frequency returns how often each distinct value occurs, ascending by value.
func (s *Statistics[T]) Frequency() []Bucket {
	return frequency(s.Values())
}

// IsEmpty reports whether the source emits no elements.
func (s *Statistics[T]) IsEmpty() bool {
	return s.Count() == 0
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	return lo.Sum(values) / float64(len(values))
}

func variance(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}
	m := mean(values)
	squares := lo.Map(values, func(v float64, _ int) float64 { return (v - m) * (v - m) })
	return lo.Sum(squares) / float64(len(values)-1)
}

func standardMoment(values []float64, k float64) float64 {
	sd := math.Sqrt(variance(values))
	if sd == 0 {
		return 0
	}
	m := mean(values)
	moments := lo.Map(values, func(v float64, _ int) float64 { return math.Pow(v-m, k) })
	return lo.Sum(moments) / float64(len(values)) / math.Pow(sd, k)
}

// frequency walks a sorted list in runs of equal values.
func frequency(sorted []float64) []Bucket {
	buckets := make([]Bucket, 0)
	for _, v := range sorted {
		if n := len(buckets); n > 0 && buckets[n-1].Value == v {
			buckets[n-1].Count++
			continue
		}
		buckets = append(buckets, Bucket{Value: v, Count: 1})
	}
	return buckets
}
