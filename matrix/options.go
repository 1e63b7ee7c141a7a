// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for numeric policy.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors selecting the NaN/Inf policy,
//   - gatherOptions helper (internal).
//
// Notes:
//   - Dense rejects NaN/Inf on Set by default: it stores caller-supplied weights.
//   - Tensor accepts NaN/Inf by default: ranking pipelines let IEEE-754 results
//     propagate (for example a zero column in a cost-side quotient) and clean up
//     where the method defines it.
package matrix

// Numeric policy defaults (single source of truth).
const (
	// DefaultValidateNaNInf toggles strict finite-value validation on Dense.Set.
	DefaultValidateNaNInf = true

	// DefaultTensorValidateNaNInf toggles strict finite-value validation on Tensor.Set.
	DefaultTensorValidateNaNInf = false
)

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	validateNaNInf bool
	policySet      bool // true when the caller chose a NaN policy explicitly
}

// WithValidateNaNInf makes Set reject NaN and ±Inf with ErrNaNInf.
func WithValidateNaNInf() Option {
	return func(o *Options) {
		o.validateNaNInf = true
		o.policySet = true
	}
}

// WithNoValidateNaNInf lets Set store NaN and ±Inf.
func WithNoValidateNaNInf() Option {
	return func(o *Options) {
		o.validateNaNInf = false
		o.policySet = true
	}
}

// gatherOptions applies user setters on top of defaults (last-writer-wins).
// defaultNaN is the constructor-specific numeric policy used when the caller
// did not choose one.
func gatherOptions(defaultNaN bool, user ...Option) Options {
	o := Options{validateNaNInf: defaultNaN}
	for _, set := range user {
		set(&o)
	}
	if !o.policySet {
		o.validateNaNInf = defaultNaN
	}

	return o
}
