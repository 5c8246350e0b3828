// SPDX-License-Identifier: EPL-2.0

package wave

import (
	"fmt"
	"math"
)

// Func is a caller-supplied waveform generator for Custom waves. It receives
// the time-domain sample instants and the wave frequency and returns one
// amplitude per instant, normalized to [-1, 1].
type Func func(time []float64, freq float64) ([]float64, error)

// Wave is an immutable waveform descriptor: a shape, a frequency, an
// amplitude and the shape-specific parameters. All validation happens at
// construction; Evaluate is a pure function afterwards.
type Wave struct {
	shape     Shape
	frequency float64
	amplitude float64
	duty      float64 // Square only
	symmetry  float64 // ramp family only
	custom    Func
}

// Option adjusts a shape-specific parameter during construction.
type Option func(*Wave)

// WithDutyCycle sets the high fraction of each Square period.
// Default is 0.5.
func WithDutyCycle(duty float64) Option {
	return func(w *Wave) { w.duty = duty }
}

// WithSymmetry overrides the rising-edge fraction of the ramp family.
// Defaults follow from the shape: 1 for SawtoothUp, 0 for SawtoothDown and
// 0.5 for Triangle.
func WithSymmetry(symmetry float64) Option {
	return func(w *Wave) { w.symmetry = symmetry }
}

// WithCustom supplies the generator function for Custom waves.
func WithCustom(fn Func) Option {
	return func(w *Wave) { w.custom = fn }
}

// New builds a validated wave descriptor. frequency must be positive and
// amplitude finite; shape parameters are range-checked here so Evaluate can
// never fail for built-in shapes.
func New(shape Shape, frequency, amplitude float64, opts ...Option) (Wave, error) {
	w := Wave{
		shape:     shape,
		frequency: frequency,
		amplitude: amplitude,
		duty:      0.5,
	}

	switch shape {
	case Sine, Square, Custom:
	case SawtoothUp:
		w.symmetry = 1
	case SawtoothDown:
		w.symmetry = 0
	case Triangle:
		w.symmetry = 0.5
	default:
		return Wave{}, fmt.Errorf("%w: %v", ErrInvalidWaveform, shape)
	}

	for _, opt := range opts {
		opt(&w)
	}

	if !(frequency > 0) || math.IsInf(frequency, 0) {
		return Wave{}, fmt.Errorf("%w: %v", ErrInvalidFrequency, frequency)
	}
	if math.IsNaN(amplitude) || math.IsInf(amplitude, 0) {
		return Wave{}, fmt.Errorf("%w: %v", ErrInvalidAmplitude, amplitude)
	}
	if w.duty <= 0 || w.duty >= 1 || math.IsNaN(w.duty) {
		return Wave{}, fmt.Errorf("%w: %v", ErrInvalidDutyCycle, w.duty)
	}
	if w.symmetry < 0 || w.symmetry > 1 || math.IsNaN(w.symmetry) {
		return Wave{}, fmt.Errorf("%w: %v", ErrInvalidSymmetry, w.symmetry)
	}
	if shape == Custom && w.custom == nil {
		return Wave{}, ErrMissingCustomFunc
	}

	return w, nil
}

func (w Wave) Shape() Shape       { return w.shape }
func (w Wave) Frequency() float64 { return w.frequency }
func (w Wave) Amplitude() float64 { return w.amplitude }
func (w Wave) DutyCycle() float64 { return w.duty }
func (w Wave) Symmetry() float64  { return w.symmetry }

// Evaluate returns the wave's amplitude at each instant of time. The time
// vector may be any sequence of instants; it does not have to be sorted or
// aligned to the wave period. A fresh slice is returned on every call.
func (w Wave) Evaluate(time []float64) ([]float64, error) {
	var samples []float64

	switch w.shape {
	case Sine:
		samples = SineWave(time, w.frequency)
	case SawtoothUp, SawtoothDown, Triangle:
		samples = Ramp(time, w.frequency, w.symmetry)
	case Square:
		samples = SquareWave(time, w.frequency, w.duty)
	case Custom:
		var err error
		samples, err = w.custom(time, w.frequency)
		if err != nil {
			return nil, fmt.Errorf("custom waveform: %w", err)
		}
	default:
		// Unreachable for descriptors built through New.
		return nil, fmt.Errorf("%w: %v", ErrInvalidWaveform, w.shape)
	}

	if w.amplitude != 1 {
		for i := range samples {
			samples[i] *= w.amplitude
		}
	}

	return samples, nil
}
