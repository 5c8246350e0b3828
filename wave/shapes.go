// SPDX-License-Identifier: EPL-2.0

package wave

import (
	"fmt"
	"math"
	"strings"
)

// Shape identifies one of the supported periodic waveforms.
type Shape int

const (
	Sine Shape = iota
	SawtoothUp
	SawtoothDown
	Triangle
	Square
	Custom
)

func (s Shape) String() string {
	switch s {
	case Sine:
		return "sine"
	case SawtoothUp:
		return "sawtoothup"
	case SawtoothDown:
		return "sawtoothdown"
	case Triangle:
		return "triangular"
	case Square:
		return "square"
	case Custom:
		return "custom"
	default:
		return fmt.Sprintf("Shape(%d)", int(s))
	}
}

// ParseShape maps a waveform name to its Shape. The mapping is a closed
// table: "ramp" and "sawtooth" are aliases for SawtoothUp, anything else
// is ErrInvalidWaveform. Unknown names never fall back to a default.
func ParseShape(name string) (Shape, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "sine":
		return Sine, nil
	case "sawtoothup", "sawtooth", "ramp":
		return SawtoothUp, nil
	case "sawtoothdown":
		return SawtoothDown, nil
	case "triangular", "triangle":
		return Triangle, nil
	case "square":
		return Square, nil
	case "custom":
		return Custom, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidWaveform, name)
	}
}

// SineWave evaluates sin(2π·freq·t) at every instant of time.
func SineWave(time []float64, freq float64) []float64 {
	out := make([]float64, len(time))
	for i, t := range time {
		out[i] = math.Sin(2 * math.Pi * freq * t)
	}

	return out
}

// Ramp evaluates the sawtooth/triangle family. symmetry is the fraction of
// each period spent on the rising edge: 1 is an ascending sawtooth, 0 a
// descending one and 0.5 a triangle. Output spans [-1, 1].
func Ramp(time []float64, freq, symmetry float64) []float64 {
	out := make([]float64, len(time))
	for i, t := range time {
		p := phase(t, freq)
		if p < symmetry {
			out[i] = 2*p/symmetry - 1
		} else {
			out[i] = 1 - 2*(p-symmetry)/(1-symmetry)
		}
	}

	return out
}

// SquareWave evaluates a square wave that is +1 for the first duty fraction
// of each period and -1 for the rest.
func SquareWave(time []float64, freq, duty float64) []float64 {
	out := make([]float64, len(time))
	for i, t := range time {
		if phase(t, freq) < duty {
			out[i] = 1
		} else {
			out[i] = -1
		}
	}

	return out
}

// SquareWaveEnvelope is SquareWave with a per-sample duty cycle, letting the
// pulse width change over time. duty must have the same length as time.
func SquareWaveEnvelope(time []float64, freq float64, duty []float64) ([]float64, error) {
	if len(duty) != len(time) {
		return nil, fmt.Errorf("%w: %d duty values for %d samples", ErrDutyCycleLength, len(duty), len(time))
	}

	out := make([]float64, len(time))
	for i, t := range time {
		if phase(t, freq) < duty[i] {
			out[i] = 1
		} else {
			out[i] = -1
		}
	}

	return out, nil
}

// phase reduces an instant to its position within the period, in [0, 1).
func phase(t, freq float64) float64 {
	p := math.Mod(t*freq, 1)
	if p < 0 {
		p += 1
	}

	return p
}
