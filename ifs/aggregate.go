// SPDX-License-Identifier: MIT

package ifs

import (
	"fmt"
	"math"
)

// AggregateMultiple combines several values with crisp weights using the
// intuitionistic fuzzy weighted averaging operator (a weighted algebraic sum):
//
//	μ = 1 - Π (1 - μᵢ)^wᵢ
//	ν = Π νᵢ^wᵢ
//	π = 1 - μ - ν
//
// With every wᵢ = 1 the result equals folding Add over the list.
//
// Errors:
//   - ErrEmpty when values is empty.
//   - ErrWeightsLength when len(weights) != len(values).
//
// Complexity: O(n).
func AggregateMultiple(values []Value, weights []float64) (Value, error) {
	if len(values) == 0 {
		return Value{}, fmt.Errorf("AggregateMultiple: %w", ErrEmpty)
	}
	if len(weights) != len(values) {
		return Value{}, fmt.Errorf("AggregateMultiple: %d values, %d weights: %w",
			len(values), len(weights), ErrWeightsLength)
	}

	mu, nu := 1.0, 1.0
	for i, v := range values {
		mu *= math.Pow(1-v.Mu, weights[i])
		nu *= math.Pow(v.Nu, weights[i])
	}

	return New(1-mu, nu), nil
}
