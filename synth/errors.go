// SPDX-License-Identifier: MIT

package synth

import "errors"

// ErrInvalidLength is returned for a requested length or shape < 1.
var ErrInvalidLength = errors.New("synth: length must be >= 1")
