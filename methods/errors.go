// SPDX-License-Identifier: MIT

package methods

import "errors"

var (
	// ErrAssessmentRequired indicates Rank was called before Evaluate succeeded.
	ErrAssessmentRequired = errors.New("methods: assessment required before ranking")

	// ErrRanking wraps any failure of the rank transform.
	ErrRanking = errors.New("methods: ranking failed")

	// ErrDegenerateColumn indicates a criterion whose positive and negative ideals are identical.
	ErrDegenerateColumn = errors.New("methods: column has identical positive and negative ideal")

	// ErrUnknown is returned by New for an unregistered method name.
	ErrUnknown = errors.New("methods: unknown method")
)
