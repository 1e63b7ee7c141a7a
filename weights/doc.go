// SPDX-License-Identifier: MIT

// Package weights derives criterion weights from an IFS decision matrix.
//
// Every weighting reads the matrix column by column; criterion types are not
// needed. Entropy-style weightings (Burillo, Thakur) normalize (1-E_j) over all
// criteria; Entropy normalizes reciprocal mean hesitancy; Liu, Szmidt and Ye
// return the mean per-column entropy as is. Equal produces fuzzy weights
// (0.5, 0.5) for every criterion.
//
//	w, err := weights.Entropy.Derive(m)
//	scores, err := methods.NewTOPSIS().Evaluate(m, w, types)
package weights
