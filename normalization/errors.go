// SPDX-License-Identifier: MIT

package normalization

import "errors"

var (
	// ErrZeroRange indicates a column whose max equals its min (minmax).
	ErrZeroRange = errors.New("normalization: column range is zero")

	// ErrZeroMaximum indicates a profit column whose maximum is zero (ecer).
	ErrZeroMaximum = errors.New("normalization: column maximum is zero")

	// ErrUnknown is returned by Lookup for an unregistered name.
	ErrUnknown = errors.New("normalization: unknown normalization")

	// ErrTypesLength indicates a types vector that does not cover every column.
	ErrTypesLength = errors.New("normalization: types length does not match criteria")
)
