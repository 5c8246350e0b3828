// SPDX-License-Identifier: EPL-2.0

package device

import "errors"

var (
	ErrNotOpen           = errors.New("backend is not open")
	ErrAlreadyOpen       = errors.New("backend is already open")
	ErrReadUnsupported   = errors.New("backend does not support recording")
	ErrInvalidDataLength = errors.New("data length must be a whole number of frames")
	ErrInvalidParams     = errors.New("sample rate, buffer length and channel count must be positive")
)
