// SPDX-License-Identifier: MIT

package config

import "errors"

// ErrInvalidConfig is returned when a document does not decode or a value is out of range.
var ErrInvalidConfig = errors.New("config: invalid model document")
