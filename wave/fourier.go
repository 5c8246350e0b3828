// SPDX-License-Identifier: EPL-2.0

package wave

import (
	"fmt"
	"math"
)

// NewFourier builds a band-limited approximation of shape as a partial
// Fourier series with the given number of harmonic terms. Higher orders get
// closer to the ideal shape; order 1 is the fundamental alone. Sine is
// returned as-is since its series is a single term. The result is a regular
// Wave whose shape reports Custom.
func NewFourier(shape Shape, frequency, amplitude float64, order int) (Wave, error) {
	if order < 1 {
		return Wave{}, fmt.Errorf("%w: %d", ErrInvalidOrder, order)
	}

	var fn Func

	switch shape {
	case Sine:
		return New(Sine, frequency, amplitude)
	case Square:
		// (4/π) Σ sin(2π(2n-1)ft) / (2n-1)
		fn = func(time []float64, freq float64) ([]float64, error) {
			out := make([]float64, len(time))
			for i, t := range time {
				var sum float64
				for n := 1; n <= order; n++ {
					k := float64(2*n - 1)
					sum += math.Sin(2*math.Pi*k*freq*t) / k
				}
				out[i] = 4 / math.Pi * sum
			}
			return out, nil
		}
	case SawtoothUp, SawtoothDown:
		// -(2/π) Σ sin(2πnft) / n, sign flipped for the descending ramp
		sign := -2 / math.Pi
		if shape == SawtoothDown {
			sign = 2 / math.Pi
		}
		fn = func(time []float64, freq float64) ([]float64, error) {
			out := make([]float64, len(time))
			for i, t := range time {
				var sum float64
				for n := 1; n <= order; n++ {
					k := float64(n)
					sum += math.Sin(2*math.Pi*k*freq*t) / k
				}
				out[i] = sign * sum
			}
			return out, nil
		}
	case Triangle:
		// -(8/π²) Σ cos(2π(2n-1)ft) / (2n-1)²
		fn = func(time []float64, freq float64) ([]float64, error) {
			out := make([]float64, len(time))
			for i, t := range time {
				var sum float64
				for n := 1; n <= order; n++ {
					k := float64(2*n - 1)
					sum += math.Cos(2*math.Pi*k*freq*t) / (k * k)
				}
				out[i] = -8 / (math.Pi * math.Pi) * sum
			}
			return out, nil
		}
	default:
		return Wave{}, fmt.Errorf("%w: no harmonic series for %v", ErrInvalidWaveform, shape)
	}

	return New(Custom, frequency, amplitude, WithCustom(fn))
}
