// SPDX-License-Identifier: EPL-2.0

package sweep

import "errors"

var (
	ErrNoFrequencies = errors.New("at least one frequency is required")
	ErrArityMismatch = errors.New("parameter length must be 1 or match the frequency count")
)
