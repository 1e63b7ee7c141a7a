// SPDX-License-Identifier: MIT

package ifs

import (
	"fmt"
	"strconv"
)

// Value is an intuitionistic fuzzy triple.
//   - Mu: membership degree μ.
//   - Nu: non-membership degree ν.
//   - Pi: uncertainty (hesitation) degree π.
//
// The zero value is (0,0,0), which is not a valid IFS; use New or NewWithPi.
type Value struct {
	Mu float64 // membership
	Nu float64 // non-membership
	Pi float64 // uncertainty
}

// Compile-time check for fmt.Stringer conformance.
var _ fmt.Stringer = Value{}

// New returns (mu, nu, 1-mu-nu).
// The invariant μ+ν+π = 1 holds exactly for the returned value.
func New(mu, nu float64) Value {
	return Value{Mu: mu, Nu: nu, Pi: 1 - mu - nu}
}

// NewWithPi returns (mu, nu, pi) exactly as given; no invariant is enforced.
func NewWithPi(mu, nu, pi float64) Value {
	return Value{Mu: mu, Nu: nu, Pi: pi}
}

// FromSlice converts a raw cell into a Value.
// A 2-element slice is read as (μ,ν) with π derived; a 3-element slice keeps π.
//
// Errors:
//   - ErrComponents for any other length.
func FromSlice(c []float64) (Value, error) {
	switch len(c) {
	case 2:
		return New(c[0], c[1]), nil
	case 3:
		return NewWithPi(c[0], c[1], c[2]), nil
	default:
		return Value{}, fmt.Errorf("FromSlice: len=%d: %w", len(c), ErrComponents)
	}
}

// Slice returns the value as a 3-element slice (μ, ν, π).
func (a Value) Slice() []float64 {
	return []float64{a.Mu, a.Nu, a.Pi}
}

// Components returns (μ, ν, π) as a fixed-size array.
func (a Value) Components() [3]float64 {
	return [3]float64{a.Mu, a.Nu, a.Pi}
}

// Equal reports exact field-wise equality (no epsilon).
func (a Value) Equal(b Value) bool {
	return a.Mu == b.Mu && a.Nu == b.Nu && a.Pi == b.Pi
}

// GoString renders the value as IFS(μ, ν, π).
func (a Value) GoString() string {
	return "IFS(" + formatFloat(a.Mu) + ", " + formatFloat(a.Nu) + ", " + formatFloat(a.Pi) + ")"
}

// String renders a human-readable description of the three degrees.
func (a Value) String() string {
	return "Membership: " + formatFloat(a.Mu) +
		", Non-membership: " + formatFloat(a.Nu) +
		", Uncertainty: " + formatFloat(a.Pi)
}

// formatFloat uses the shortest representation that round-trips.
func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
