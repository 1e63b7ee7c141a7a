// SPDX-License-Identifier: MIT

// Package matrix provides the storage layer for intuitionistic fuzzy decision problems.
//
// What:
//
//   - Tensor: a dense alternatives × criteria × components array (flat, row-major).
//     Components are 1 (crisp), 2 (μ, ν; π implied) or 3 (μ, ν, π).
//   - Dense: a 2-D crisp table backing IFS weight rows.
//   - Weights: a criterion weight vector, either crisp or IFS-valued.
//   - Criterion types (Profit, Cost) and helpers that split columns by polarity.
//   - Column and block reductions (ColumnMax, BlockMin, ...) shared by normalizations and methods.
//
// Why:
//
//   - Every ranking method reads the same shapes; one storage type with bounds-checked
//     accessors keeps the numeric pipelines free of slice-of-slice bookkeeping.
//
// Errors:
//
//   - All accessors return sentinel errors (ErrOutOfRange, ErrInvalidDimensions,
//     ErrComponents, ErrRagged, ...) wrapped with call-site context; nothing panics
//     on user input.
//
// Complexity:
//
//   - At/Set/Cell: O(1). Clone/ToSlices/Grid: O(r·c·k). Column reductions: O(r).
package matrix
