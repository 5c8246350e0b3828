// SPDX-License-Identifier: EPL-2.0

package wave

import "errors"

var (
	ErrInvalidWaveform   = errors.New("unknown waveform")
	ErrInvalidFrequency  = errors.New("frequency must be positive")
	ErrInvalidAmplitude  = errors.New("amplitude must be finite")
	ErrInvalidDutyCycle  = errors.New("duty cycle must be in (0, 1)")
	ErrDutyCycleLength   = errors.New("duty cycle envelope length must match time vector")
	ErrInvalidSymmetry   = errors.New("symmetry must be in [0, 1]")
	ErrMissingCustomFunc = errors.New("custom waveform requires a function")
	ErrInvalidOrder      = errors.New("harmonic order must be at least 1")
)
