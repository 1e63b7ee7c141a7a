// SPDX-License-Identifier: MIT
// Package: ifs
//
// operators.go - closed-form IFS operators.
//
// Conventions:
//   - Receivers and arguments are never modified; each operator returns a new Value.
//   - π of a derived value is recomputed as 1-μ-ν except for Complement, which keeps π.
//   - No clamping: degenerate inputs (division by zero, μ=1 in bounded difference)
//     propagate IEEE-754 results.

package ifs

import (
	"fmt"
	"math"
)

// Union returns a ∨ b: μ=max(μa,μb), ν=min(νa,νb).
func (a Value) Union(b Value) Value {
	return New(math.Max(a.Mu, b.Mu), math.Min(a.Nu, b.Nu))
}

// Intersection returns a ∧ b: μ=min(μa,μb), ν=max(νa,νb).
func (a Value) Intersection(b Value) Value {
	return New(math.Min(a.Mu, b.Mu), math.Max(a.Nu, b.Nu))
}

// Complement swaps μ and ν and keeps π unchanged.
func (a Value) Complement() Value {
	return Value{Mu: a.Nu, Nu: a.Mu, Pi: a.Pi}
}

// Add returns the algebraic sum a ⊕ b.
//
//	μ = μa + μb - μa·μb
//	ν = νa · νb
//	π = 1 - μ - ν
func (a Value) Add(b Value) Value {
	mu := a.Mu + b.Mu - a.Mu*b.Mu
	nu := a.Nu * b.Nu

	return New(mu, nu)
}

// Multiply returns the algebraic product a ⊗ b.
//
//	μ = μa · μb
//	ν = νa + νb - νa·νb
func (a Value) Multiply(b Value) Value {
	mu := a.Mu * b.Mu
	nu := a.Nu + b.Nu - a.Nu*b.Nu

	return New(mu, nu)
}

// Subtract returns the bounded difference a ⊖ b.
// When νa/νb ≤ (1-μa)/(1-μb):
//
//	μ = (μa - μb) / (1 - μb)
//	ν = νa / νb
//
// otherwise the empty set (0, 1, 0).
func (a Value) Subtract(b Value) Value {
	if a.Nu/b.Nu <= (1-a.Mu)/(1-b.Mu) {
		mu := (a.Mu - b.Mu) / (1 - b.Mu)
		nu := a.Nu / b.Nu

		return New(mu, nu)
	}

	return Value{Mu: 0, Nu: 1, Pi: 0}
}

// Divide returns the bounded quotient a ⊘ b.
// When μa/μb ≤ (1-νa)/(1-νb):
//
//	μ = μa / μb
//	ν = (νa - νb) / (1 - νb)
//
// otherwise the full set (1, 0, 0).
func (a Value) Divide(b Value) Value {
	if a.Mu/b.Mu <= (1-a.Nu)/(1-b.Nu) {
		mu := a.Mu / b.Mu
		nu := (a.Nu - b.Nu) / (1 - b.Nu)

		return New(mu, nu)
	}

	return Value{Mu: 1, Nu: 0, Pi: 0}
}

// Power returns a^y for y > 0: μ = μ^y, ν = 1 - (1-ν)^y.
//
// Errors:
//   - ErrNonPositivePower when y <= 0.
func (a Value) Power(y float64) (Value, error) {
	if y <= 0 {
		return Value{}, fmt.Errorf("Power(%g): %w", y, ErrNonPositivePower)
	}

	return New(math.Pow(a.Mu, y), 1-math.Pow(1-a.Nu, y)), nil
}

// Dominates reports whether a dominates b: μa ≥ μb, νa ≤ νb and πa ≤ πb.
func (a Value) Dominates(b Value) bool {
	return a.Mu >= b.Mu && a.Nu <= b.Nu && a.Pi <= b.Pi
}

// OWA returns the weighted sum of the components taken in the fixed order
// (ν, π, μ): w[0]·ν + w[1]·π + w[2]·μ.
func (a Value) OWA(w [3]float64) float64 {
	return w[0]*a.Nu + w[1]*a.Pi + w[2]*a.Mu
}

// Jaccard returns Σmin(aᵢ,bᵢ) / Σmax(aᵢ,bᵢ) over the three components.
func (a Value) Jaccard(b Value) float64 {
	inter := math.Min(a.Mu, b.Mu) + math.Min(a.Nu, b.Nu) + math.Min(a.Pi, b.Pi)
	union := math.Max(a.Mu, b.Mu) + math.Max(a.Nu, b.Nu) + math.Max(a.Pi, b.Pi)

	return inter / union
}

// Relation returns the 3×3 fuzzy relation R[i][j] = min(aᵢ, bⱼ) with the
// component order (μ, ν, π) on both axes.
func (a Value) Relation(b Value) [3][3]float64 {
	var r [3][3]float64
	ac, bc := a.Components(), b.Components()
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r[i][j] = math.Min(ac[i], bc[j])
		}
	}

	return r
}
