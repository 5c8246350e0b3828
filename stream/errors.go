// SPDX-License-Identifier: EPL-2.0

package stream

import "errors"

var (
	ErrInvalidChannelCount = errors.New("channel count must be 1 or 2")
	ErrEmptyChannelSet     = errors.New("at least one wave is required")
	ErrTooManyWaves        = errors.New("at most two waves are supported")
	ErrInvalidSampleRate   = errors.New("sample rate must be positive")
	ErrInvalidBufferLength = errors.New("buffer length must be positive")
	ErrUnbounded           = errors.New("cannot collect an unbounded session")
	ErrInvalidEncoding     = errors.New("encoded data length must be a whole number of frames")
)
