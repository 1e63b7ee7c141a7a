// Package ifs implements the Intuitionistic Fuzzy Set (IFS) value and its algebra.
//
// An IFS value is a triple (μ, ν, π) of membership, non-membership and
// uncertainty (hesitation) degrees with μ + ν + π = 1 at construction time.
// Every operator returns a new Value; values are never mutated in place.
//
// Operators:
//
//	Union (∨), Intersection (∧), Complement, Add (algebraic sum),
//	Multiply (algebraic product), Subtract (bounded difference),
//	Divide (bounded quotient), Power, Dominates, OWA, Jaccard,
//	Relation and AggregateMultiple (IF weighted averaging).
//
// Operators do not clamp: degenerate inputs may yield components outside
// [0,1], and callers that need the invariant must check it themselves.
//
// Usage:
//
//	a := ifs.New(0.6, 0.2)
//	b := ifs.New(0.8, 0.1)
//	u := a.Union(b)     // (0.8, 0.1, 0.1)
//	s := a.Add(b)       // (0.92, 0.02, 0.06)
//	p, err := a.Power(2) // (0.36, 0.36, 0.28)
package ifs
