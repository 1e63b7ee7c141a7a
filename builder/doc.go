// Package builder generates random decision problems for tests, benchmarks and demos.
//
// Every cell is an IFS pair drawn by rejection sampling: (μ, ν) is drawn from
// U[0,1)² and redrawn until μ+ν ≤ 1, so each accepted cell is a valid
// intuitionistic fuzzy value.
//
// Constructors:
//
//   - RandomIFSMatrix(m, n):    m alternatives × n criteria of IFS cells.
//   - RandomWeights(n):         crisp weights summing to 1.
//   - RandomFuzzyWeights(n):    one IFS weight per criterion.
//   - RandomTypes(n):           Profit/Cost markers, both present when n ≥ 2.
//
// Options:
//
//   - WithSeed(seed):      reproducible draws.
//   - WithRand(r):         caller-owned source.
//   - WithComponents(k):   store 2 (μ, ν) or 3 (μ, ν, π) components.
//
// Without WithSeed or WithRand the source is seeded from the clock, so
// results are not reproducible. Callers needing determinism own the source.
//
// Errors:
//
//   - ErrTooFew when a dimension is smaller than one.
//
// Option constructors panic on nonsensical values; generators never panic.
package builder
