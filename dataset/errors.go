// SPDX-License-Identifier: MIT

package dataset

import "errors"

var (
	// ErrEmpty is returned when a source holds no data rows.
	ErrEmpty = errors.New("dataset: no data rows")

	// ErrColumn is returned for a missing column or a field that is not a number.
	ErrColumn = errors.New("dataset: bad column")
)
