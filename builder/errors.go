// SPDX-License-Identifier: MIT

package builder

import "errors"

// ErrTooFew indicates a dimension (alternatives, criteria) below one.
var ErrTooFew = errors.New("builder: parameter too small")
