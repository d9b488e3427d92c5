// Package stats holds the quantile and median primitives used for fill
// values and IQR outlier bounds. All implementations must agree with the
// linear-interpolation convention or cross-language outputs diverge.
package stats

import (
	"errors"
	"math"
	"sort"
)

// ErrEmptyInput is returned when a statistic is requested over no values.
var ErrEmptyInput = errors.New("empty input: at least one value required")

// Quantile computes the q-th quantile (q in [0,1]) of sorted using linear
// interpolation between closest ranks. sorted must be pre-sorted ascending.
func Quantile(sorted []float64, q float64) (float64, error) {
	n := len(sorted)
	if n == 0 {
		return 0, ErrEmptyInput
	}
	if n == 1 {
		return sorted[0], nil
	}

	pos := q * float64(n-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if hi >= n {
		return sorted[n-1], nil
	}
	if lo == hi {
		return sorted[lo], nil
	}
	frac := pos - float64(lo)
	return sorted[lo] + (sorted[hi]-sorted[lo])*frac, nil
}

// Median computes the median of values; an even count averages the two
// middle sorted values. The input slice is not modified.
func Median(values []float64) (float64, error) {
	n := len(values)
	if n == 0 {
		return 0, ErrEmptyInput
	}

	sorted := make([]float64, n)
	copy(sorted, values)
	sort.Float64s(sorted)

	mid := n / 2
	if n%2 == 1 {
		return sorted[mid], nil
	}
	return (sorted[mid-1] + sorted[mid]) / 2, nil
}
