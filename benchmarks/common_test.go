// Package benchmarks compares semantic-flow pipelines with popular Go
// collection and stream processing libraries.
package benchmarks

import (
	"strconv"
	"testing"
)

// Test data sizes
const (
	SmallSize  = 100
	MediumSize = 1_000
	LargeSize  = 10_000
)

var sizes = []int{SmallSize, MediumSize, LargeSize}

// forSizes runs fn as one sub-benchmark per data size.
func forSizes(b *testing.B, fn func(b *testing.B, size int)) {
	for _, size := range sizes {
		b.Run(strconv.Itoa(size), func(b *testing.B) {
			fn(b, size)
		})
	}
}

// generateInts returns 0..n-1.
func generateInts(n int) []int {
	data := make([]int, n)
	for i := range data {
		data[i] = i
	}
	return data
}

// generateDuplicates returns n values drawn from n/10 distinct ones, in a
// scrambled order.
func generateDuplicates(n int) []int {
	distinct := max(n/10, 1)
	data := make([]int, n)
	for i := range data {
		data[i] = (i * 7919) % distinct
	}
	return data
}

// generateReadings returns n float readings with a slow drift and noise.
func generateReadings(n int) []float64 {
	data := make([]float64, n)
	for i := range data {
		data[i] = float64(i%97) + float64(i)/float64(n)
	}
	return data
}

func square(x int) int {
	return x * x
}

func isEven(x int) bool {
	return x%2 == 0
}

func add(a, b int) int {
	return a + b
}

func stringLen(s string) int {
	return len(s)
}

// generateStrings returns the decimal text of 0..n-1.
func generateStrings(n int) []string {
	data := make([]string, n)
	for i := range data {
		data[i] = strconv.Itoa(i)
	}
	return data
}
