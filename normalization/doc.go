// SPDX-License-Identifier: MIT

// Package normalization rescales decision matrices column by column.
//
// A Normalizer maps (tensor, types) to a new tensor of the same shape; the
// input is never modified. Formulas apply to every component plane the
// tensor carries, so the same normalizer works on crisp (1-component) and
// IFS (2- or 3-component) matrices.
//
// Built-ins:
//
//	minmax   profit (v-min)/(max-min), cost (max-v)/(max-min), per column and component
//	swap     exchange μ and ν of cost columns
//	max      profit / max(max μ, min ν) over the profit block; cost min(min μ_cost, max ν_profit) / v
//	ecer     profit / column max; cost column min / v
//	supriya  μ / column max μ; ν → (ν - min ν)/(1 - min ν); types ignored
//
// Each normalizer declares a Kind so callers can branch on it (for example
// a method that normalizes an extra intermediate table unless min-max is used).
package normalization
