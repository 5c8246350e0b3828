// SPDX-License-Identifier: EPL-2.0

// Package wave generates periodic waveforms and holds their descriptors.
//
// The package has two layers. The low-level functions (SineWave, Ramp,
// SquareWave, SquareWaveEnvelope) evaluate a shape over an arbitrary vector
// of time instants. The Wave descriptor bundles a shape with its frequency,
// amplitude and shape parameters into an immutable value that the streaming
// layer can evaluate repeatedly.
//
// # Supported Shapes
//
//   - Sine: sin(2π·f·t)
//   - SawtoothUp / SawtoothDown / Triangle: one ramp generator,
//     parameterized by the rising-edge fraction (symmetry)
//   - Square: duty-cycle controlled pulse, fixed or time-varying width
//   - Custom: any caller-supplied Func with the same contract
//
// # Descriptors
//
// Descriptors validate on construction and never at evaluation time:
//
//	w, err := wave.New(wave.Square, 400, 1, wave.WithDutyCycle(0.25))
//	if err != nil {
//	    // bad frequency, duty cycle out of (0,1), ...
//	}
//	samples, _ := w.Evaluate([]float64{0, 1.0 / 44100, 2.0 / 44100})
//
// Shape names can also be parsed from strings, for configuration files and
// command lines:
//
//	shape, err := wave.ParseShape("sawtoothup")
//
// The name table is closed. Unknown names return ErrInvalidWaveform instead
// of silently substituting a default shape.
//
// # Harmonic Series
//
// NewFourier builds band-limited approximations of the discontinuous shapes
// from partial Fourier series, useful when driving equipment that should
// not see step transitions:
//
//	w, _ := wave.NewFourier(wave.Square, 400, 1, 15) // 15 harmonics
package wave
