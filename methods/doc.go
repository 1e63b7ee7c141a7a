// SPDX-License-Identifier: MIT

// Package methods implements fourteen multi-criteria ranking methods over
// intuitionistic fuzzy decision matrices.
//
// Every method follows the same two-phase contract:
//
//	m := methods.NewTOPSIS()
//	prefs, err := m.Evaluate(tensor, weights, types) // Unevaluated → Evaluated
//	ranks, err := m.Rank()                         // needs a prior Evaluate
//
// Evaluate validates the input (package validator), runs the method pipeline
// and caches the preference vector. Rank turns the cached vector into
// positions (package ranking); every method except VIKOR ranks descending.
//
// Methods:
//
//	ARAS    ideal row prepended, IF weighting (1-(1-μ)^w, ν^w), score sums relative to the ideal
//	CODAS   distances to the negative ideal, pairwise assessment gated by tau
//	COPRAS  profit/cost score means, relative significance, normalized by max
//	EDAS    positive/negative distance from the geometric average solution
//	MABAC   border approximation area, distance^g or -p·distance^g per cell
//	MAIRCA  closeness to (1,0,0) vs (0,1,0), theoretical minus real gap
//	MARCOS  crisp degrees, ideal/anti-ideal utility blend
//	MOORA   algebraic-sum aggregation of profit and cost blocks, score difference
//	OCRA    linear preference ratings of scores, shifted to start at 0
//	TOPSIS  relative closeness to positive and negative ideal solutions
//	VIKOR   group utility S, individual regret R, compromise Q (lower is better)
//	WASPAS  blend of additive and multiplicative IF aggregations
//	WPM     product of IF-weighted components, scored
//	WSM     sum of IF-weighted components, scored
//
// Options:
//
//	– WithNormalization / WithoutNormalization: column normalization (nil copies the input).
//	– WithScore:     score function used to reduce IFS values or fuzzy weights.
//	– WithDistance / WithDistance2: distance measures; normalized kinds are scaled by 1/(2n).
//	– WithTau (CODAS), WithV (VIKOR, WASPAS), WithP and WithG (MABAC).
//	– WithLogger:    slog logger for Debug traces; silent by default.
//
// Weights:
//
//	Crisp weights are broadcast to (w, w) pairs where a method weights μ and ν
//	separately. Fuzzy weights are used as (μ, ν) pairs, or reduced with the
//	configured score where a method needs one scalar per criterion.
//	MARCOS, OCRA and VIKOR require crisp weights.
//
// Errors (sentinel):
//
//	– ErrAssessmentRequired  Rank called before a successful Evaluate.
//	– ErrRanking             the rank transform failed (for example a NaN preference).
//	– ErrDegenerateColumn    VIKOR: a criterion whose positive and negative ideals coincide.
//	– ErrUnknown             New called with an unregistered method name.
//	– validator and normalization sentinels pass through wrapped.
//
// Complexity:
//
//	– Time:  O(m·n) per evaluation for every method except CODAS, which
//	         builds an m×m assessment matrix (O(m²+m·n)).
//	– Space: O(m·n).
package methods
