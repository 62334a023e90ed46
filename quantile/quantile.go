// Package quantile computes the value at an arbitrary quantile of a sample
// distribution, and the inverse (the quantile at which a value falls), using
// linear interpolation between the closest ranks. This is the same definition
// NumPy uses by default, and it behaves sensibly on the small samples that
// come out of a structure-scoring ensemble.
package quantile

import (
	"math"
	"sort"
)

// Tolerance is the fractional-rank slack under which a computed rank is
// taken as exact instead of interpolated.
const Tolerance = 1e-7

// Value returns the value at quantile q of dist. Quantiles at or below 0
// clamp to the minimum and quantiles above 1 clamp to the maximum. Otherwise
// the value is linearly interpolated between the two bracketing ranks.
//
// dist must be non-empty. It is not modified; sorting is done on a copy.
func Value(q float64, dist []float64) float64 {
	d := sorted(dist)
	total := len(d) - 1

	switch {
	case q <= 0:
		return d[0]
	case q > 1:
		return d[total]
	}

	// The "perceived index" of the target on the sorted sample.
	base := q * float64(total)
	rem := base - math.Floor(base)
	if rem < Tolerance {
		return d[int(base)]
	}

	i := int(math.Floor(base))
	return d[i] + rem*(d[i+1]-d[i])
}

// Rank is the inverse of Value: it returns the quantile (a normalized rank
// in [0, 1]) at which v falls on dist. Values at or below the minimum map to
// 0 and values at or above the maximum map to 1. In between, the fractional
// rank is interpolated proportional to where v falls between the two
// bracketing elements.
//
// For q in (0, 1) and distributions with distinct values,
// Rank(Value(q, d), d) is within Tolerance of q. The round trip is not
// bit-exact in general; duplicated values collapse ranks.
//
// dist must be non-empty. It is not modified; sorting is done on a copy.
func Rank(v float64, dist []float64) float64 {
	d := sorted(dist)
	total := len(d) - 1

	switch {
	case v <= d[0]:
		return 0
	case v >= d[total]:
		return 1
	}

	// The first element at or above v.
	i := sort.SearchFloat64s(d, v)
	if math.Abs(d[i]-v) <= Tolerance {
		return float64(i) / float64(total)
	}
	rank := float64(i-1) + (v-d[i-1])/(d[i]-d[i-1])
	return rank / float64(total)
}

func sorted(dist []float64) []float64 {
	d := make([]float64, len(dist))
	copy(d, dist)
	sort.Float64s(d)
	return d
}
