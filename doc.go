// Package ifdm ranks alternatives under uncertainty with multi-criteria
// decision-making (MCDM) methods over intuitionistic fuzzy sets (IFS).
//
// 🚀 What is ifdm?
//
//	A pure-Go computation library: give it a decision matrix of IFS ratings
//	(alternatives × criteria, each cell a membership μ and non-membership ν),
//	criterion weights and profit/cost markers, and it returns a preference
//	per alternative plus tie-aware ranks.
//
//		• IFS algebra: union, intersection, bounded arithmetic, OWA, aggregation
//		• Scores, distances and similarities as named, swappable strategies
//		• Normalizations and entropy-based criterion weighting
//		• 14 ranking methods: ARAS, CODAS, COPRAS, EDAS, MABAC, MAIRCA, MARCOS,
//		  MOORA, OCRA, TOPSIS, VIKOR, WASPAS, WPM, WSM
//		• YAML configuration and seeded random problem generation
//
// Packages:
//
//	ifs/             the IFS value type and its operators
//	matrix/          decision-matrix tensor, weights, column statistics
//	score/           IFS → crisp score functions
//	distance/        IFS distance measures with declared scaling
//	similarity/      IFS similarity measures
//	normalization/   column normalizations over profit/cost criteria
//	weights/         criterion weights derived from the matrix
//	validator/       shared precondition checks
//	methods/         the ranking methods and their two-phase contract
//	ranking/         tie-aware rank transform
//	builder/         random IFS problems for tests and demos
//	config/          YAML method and problem documents
//
// Quick example:
//
//	m, _ := matrix.TensorFrom(cells)      // [alternative][criterion]{μ, ν}
//	w, _ := matrix.CrispWeights(weights)  // sums to 1
//	t := methods.NewTOPSIS()
//	prefs, _ := t.Evaluate(m, w, types)   // types: 1 profit, -1 cost
//	ranks, _ := t.Rank()                  // 1 is best; ties share the mean position
//
// Runnable demos live under examples/.
//
//	go get github.com/katalvlaran/ifdm
package ifdm
