// SPDX-License-Identifier: EPL-2.0

package wavetable

import (
	"math"

	"github.com/m-far/GrupoFWP/utils"
	"github.com/m-far/GrupoFWP/wave"
)

// Table holds one cycle of an arbitrary waveform. Lookups interpolate
// between samples with a Catmull-Rom spline, wrapping around the cycle
// boundary, so a short table still yields a smooth periodic signal.
type Table struct {
	samples []float64
}

// New copies samples into a table. The slice is treated as exactly one
// period of the waveform.
func New(samples []float64) (*Table, error) {
	if len(samples) == 0 {
		return nil, ErrEmptyTable
	}

	data := make([]float64, len(samples))
	copy(data, samples)

	return &Table{samples: data}, nil
}

// Len is the number of samples in one cycle.
func (t *Table) Len() int { return len(t.samples) }

// At evaluates the table at a phase measured in cycles; any real value is
// accepted and wrapped into the cycle.
func (t *Table) At(phase float64) float64 {
	n := len(t.samples)
	if n == 1 {
		return t.samples[0]
	}

	p := phase - math.Floor(phase)
	x := p * float64(n)
	i := int(x)
	frac := x - float64(i)

	y0 := t.samples[(i-1+n)%n]
	y1 := t.samples[i%n]
	y2 := t.samples[(i+1)%n]
	y3 := t.samples[(i+2)%n]

	return utils.CubicInterpolate(y0, y1, y2, y3, frac)
}

// Func adapts the table to the custom-waveform contract, so a table can
// drive a descriptor:
//
//	w, _ := wave.New(wave.Custom, 220, 1, wave.WithCustom(table.Func()))
func (t *Table) Func() wave.Func {
	return func(time []float64, freq float64) ([]float64, error) {
		out := make([]float64, len(time))
		for i, ts := range time {
			out[i] = t.At(ts * freq)
		}

		return out, nil
	}
}

// normalize scales samples so the largest magnitude is 1. All-zero input
// is left untouched.
func normalize(samples []float64) {
	var peak float64
	for _, s := range samples {
		if a := math.Abs(s); a > peak {
			peak = a
		}
	}
	if peak == 0 {
		return
	}

	for i := range samples {
		samples[i] /= peak
	}
}

// downmix averages interleaved frames into mono.
func downmix(samples []float64, channels int) []float64 {
	if channels <= 1 {
		return samples
	}

	frames := len(samples) / channels
	out := make([]float64, frames)
	inv := 1 / float64(channels)

	for f := 0; f < frames; f++ {
		var sum float64
		for c := 0; c < channels; c++ {
			sum += samples[f*channels+c]
		}
		out[f] = sum * inv
	}

	return out
}
