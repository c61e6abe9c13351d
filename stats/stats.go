// Package stats provides summary statistics and elementwise primitives for
// fixed-size sample sequences.
//
// All functions are pure and run in linear time. Empty inputs return sentinel
// values rather than errors: Mean, Std, and Median return 0, Max returns -Inf,
// and Min returns +Inf. Callers must treat these as "no data" markers, not as
// measurements.
package stats

import (
	"math"
	"sort"

	"github.com/cwbudde/algo-vecmath"
)

// Mean returns the arithmetic mean of x. Returns 0 for an empty slice.
func Mean(x []float64) float64 {
	if len(x) == 0 {
		return 0
	}

	return vecmath.Sum(x) / float64(len(x))
}

// Std returns the population standard deviation of x (divisor n, not n-1).
// Returns 0 for an empty slice.
func Std(x []float64) float64 {
	n := len(x)
	if n == 0 {
		return 0
	}

	mean := Mean(x)

	var m2 float64
	for _, v := range x {
		d := v - mean
		m2 += d * d
	}

	return math.Sqrt(m2 / float64(n))
}

// Median returns the median of x. For even-length input it returns the mean
// of the two middle elements. Returns 0 for an empty slice.
// The input is not modified.
func Median(x []float64) float64 {
	n := len(x)
	if n == 0 {
		return 0
	}

	sorted := make([]float64, n)
	copy(sorted, x)
	sort.Float64s(sorted)

	mid := n / 2
	if n%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2
	}

	return sorted[mid]
}

// Min returns the smallest element of x. Returns +Inf for an empty slice.
func Min(x []float64) float64 {
	min := math.Inf(1)
	for _, v := range x {
		if v < min {
			min = v
		}
	}

	return min
}

// Max returns the largest element of x. Returns -Inf for an empty slice.
func Max(x []float64) float64 {
	max := math.Inf(-1)
	for _, v := range x {
		if v > max {
			max = v
		}
	}

	return max
}

// AbsMax returns the maximum absolute value in x. Returns 0 for an empty
// slice.
func AbsMax(x []float64) float64 {
	return vecmath.MaxAbs(x)
}

// Absolute returns a new slice containing the elementwise magnitude of x.
func Absolute(x []float64) []float64 {
	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = math.Abs(v)
	}

	return out
}

// Diff returns the first difference of x: out[i] = x[i+1] - x[i], with
// length len(x)-1. For inputs of length 0 or 1 it returns nil.
func Diff(x []float64) []float64 {
	if len(x) <= 1 {
		return nil
	}

	out := make([]float64, len(x)-1)
	for i := range out {
		out[i] = x[i+1] - x[i]
	}

	return out
}
