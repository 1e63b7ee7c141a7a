// SPDX-License-Identifier: MIT

package ifs

import "errors"

var (
	// ErrNonPositivePower is returned by Power when the exponent is <= 0.
	ErrNonPositivePower = errors.New("ifs: power must be greater than 0")

	// ErrComponents indicates a raw slice that is not a (μ,ν) pair or (μ,ν,π) triple.
	ErrComponents = errors.New("ifs: value must have 2 or 3 components")

	// ErrWeightsLength indicates that an aggregation received a weight vector
	// whose length differs from the number of values.
	ErrWeightsLength = errors.New("ifs: weights length mismatch")

	// ErrEmpty indicates an aggregation over an empty list of values.
	ErrEmpty = errors.New("ifs: empty value list")
)
