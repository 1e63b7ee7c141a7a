// SPDX-License-Identifier: MIT

// Package validator holds the precondition checks every ranking method runs
// before touching its input.
//
// Validate checks, in order:
//
//  1. criteria count: matrix columns, weights length and types length agree;
//  2. matrix cells carry 2 or 3 components;
//  3. weights: crisp-only when RequireCrispWeights is given, crisp weights sum to 1
//     after rounding to three decimals;
//  4. types: every entry is +1 or -1, both present when RequireMixedTypes is given.
//
// Nothing is modified; the first failing check is returned.
package validator

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/ifdm/matrix"
)

var (
	// ErrCriteriaMismatch indicates matrix, weights and types disagree on the criteria count.
	ErrCriteriaMismatch = errors.New("validator: criteria count mismatch")

	// ErrMatrixComponents indicates matrix cells that are not IFS pairs or triples.
	ErrMatrixComponents = errors.New("validator: matrix cells must have 2 or 3 components")

	// ErrWeightSum indicates crisp weights that do not sum to 1.
	ErrWeightSum = errors.New("validator: crisp weights must sum to 1")

	// ErrWeightsNotCrisp indicates fuzzy weights passed to a crisp-only method.
	ErrWeightsNotCrisp = errors.New("validator: weights must be crisp")

	// ErrWeightsShape indicates empty weights.
	ErrWeightsShape = errors.New("validator: weights are empty")

	// ErrTypesNotMixed indicates a types vector with a single polarity.
	ErrTypesNotMixed = errors.New("validator: criteria types must include profit and cost")

	// ErrUnknownType indicates a types entry other than 1 or -1.
	ErrUnknownType = errors.New("validator: criterion type must be 1 or -1")
)

// Options selects the optional checks.
type Options struct {
	MixedTypes   bool
	CrispWeights bool
}

// Option mutates Options.
type Option func(*Options)

// RequireMixedTypes demands at least one profit and one cost criterion.
func RequireMixedTypes() Option {
	return func(o *Options) { o.MixedTypes = true }
}

// RequireCrispWeights rejects fuzzy weights.
func RequireCrispWeights() Option {
	return func(o *Options) { o.CrispWeights = true }
}

// weightSumDecimals is the rounding applied before comparing the crisp sum with 1.
const weightSumDecimals = 1e3

// Validate runs every check against one decision problem.
func Validate(m *matrix.Tensor, w matrix.Weights, types []int, opts ...Option) error {
	var o Options
	for _, opt := range opts {
		opt(&o)
	}

	if m == nil {
		return fmt.Errorf("validator: %w", matrix.ErrNilMatrix)
	}
	if m.Cols() != w.Len() || m.Cols() != len(types) {
		return fmt.Errorf("criteria %d, weights %d, types %d: %w",
			m.Cols(), w.Len(), len(types), ErrCriteriaMismatch)
	}
	if err := matrix.ValidateIFS(m); err != nil {
		return fmt.Errorf("comps=%d: %w: %w", m.Comps(), ErrMatrixComponents, err)
	}
	if err := Weights(w, o.CrispWeights); err != nil {
		return err
	}

	return Types(types, o.MixedTypes)
}

// Weights checks the weight vector on its own.
func Weights(w matrix.Weights, crispOnly bool) error {
	if w.Len() == 0 {
		return ErrWeightsShape
	}
	if !w.IsCrisp() {
		if crispOnly {
			return ErrWeightsNotCrisp
		}
		return nil
	}
	if sum := w.Sum(); math.Round(sum*weightSumDecimals)/weightSumDecimals != 1 {
		return fmt.Errorf("sum=%g: %w", sum, ErrWeightSum)
	}

	return nil
}

// Types checks the polarity vector on its own.
func Types(types []int, mixed bool) error {
	var profit, cost bool
	for j, t := range types {
		switch t {
		case matrix.Profit:
			profit = true
		case matrix.Cost:
			cost = true
		default:
			return fmt.Errorf("types[%d]=%d: %w", j, t, ErrUnknownType)
		}
	}
	if mixed && !(profit && cost) {
		return ErrTypesNotMixed
	}

	return nil
}
