// SPDX-License-Identifier: MIT

// Package distance provides distance measures between intuitionistic fuzzy values.
//
// A Measure pairs a formula with a declared Kind. Two kinds return a raw
// term that the caller still has to scale over a whole alternative:
//
//	NormalizedEuclidean: sqrt(Σ raw / (2n))
//	NormalizedHamming:   Σ raw / (2n)
//
// where n is the number of criteria. Scale and Sum apply that rule; every
// other kind is used as returned. Call sites switch on Kind, never on Name.
//
// π is read from the values: cells of a two-component tensor carry
// π = 1-μ-ν, three-component cells carry their stored π.
package distance
