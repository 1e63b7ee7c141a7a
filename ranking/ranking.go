// SPDX-License-Identifier: MIT

// Package ranking turns preference vectors into positions.
//
// Position 1 is the best alternative. A value's base position is 1 plus the
// number of strictly better values. Tied groups of size k are then shifted:
//
//	k <= 2: base + (k-1)/k
//	k >  2: mean of base, base+1, ..., base+k-1
//
// so a pair tied for first gets 1.5 and a triple tied for first gets 2.
//
//	r, _ := ranking.Descending([]float64{0, 2, 3, 2}) // [4 2.5 1 2.5]
package ranking

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

var (
	// ErrEmpty indicates an empty preference vector.
	ErrEmpty = errors.New("ranking: empty preference vector")

	// ErrNaN indicates a NaN in the preference vector.
	ErrNaN = errors.New("ranking: preference is NaN")
)

// Rank positions every value of x; higher is better when descending is true.
func Rank(x []float64, descending bool) ([]float64, error) {
	if len(x) == 0 {
		return nil, fmt.Errorf("Rank: %w", ErrEmpty)
	}
	sorted := make([]float64, len(x))
	for i, v := range x {
		if math.IsNaN(v) {
			return nil, fmt.Errorf("Rank: x[%d]: %w", i, ErrNaN)
		}
		sorted[i] = v
	}
	sort.Float64s(sorted)

	n := len(sorted)
	out := make([]float64, n)
	var lo, hi, base, k int
	for i, v := range x {
		lo = sort.SearchFloat64s(sorted, v)
		hi = sort.Search(n, func(p int) bool { return sorted[p] > v })
		k = hi - lo
		if descending {
			base = n - hi + 1
		} else {
			base = lo + 1
		}
		out[i] = tied(base, k)
	}

	return out, nil
}

// tied returns the position shared by a group of k values starting at base.
func tied(base, k int) float64 {
	if k <= 2 {
		return float64(base*k+k-1) / float64(k)
	}

	return float64(base) + float64(k-1)/2
}

// Descending ranks x so that the largest value is first.
func Descending(x []float64) ([]float64, error) { return Rank(x, true) }

// Ascending ranks x so that the smallest value is first.
func Ascending(x []float64) ([]float64, error) { return Rank(x, false) }
