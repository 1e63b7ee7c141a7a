// SPDX-License-Identifier: MIT

// Shape checks shared by the tensor helpers and the validator package.

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateSameShape ensures tensors a and b have equal dimensions.
// Assumes a and b are not nil.
func ValidateSameShape(a, b *Tensor) error {
	if a.r != b.r {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.c != b.c {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}
	if a.k != b.k {
		return validatorErrorf("ValidateSameShape: Components", ErrDimensionMismatch)
	}

	return nil
}

// ValidateIFS ensures t carries IFS cells (2 or 3 components).
func ValidateIFS(t *Tensor) error {
	if t == nil {
		return validatorErrorf("ValidateIFS", ErrNilMatrix)
	}
	if t.k != 2 && t.k != 3 {
		return validatorErrorf("ValidateIFS", ErrComponents)
	}

	return nil
}
