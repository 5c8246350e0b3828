// SPDX-License-Identifier: EPL-2.0

package sweep

import (
	"fmt"
	"io"
	"time"

	"github.com/m-far/GrupoFWP/stream"
	"github.com/m-far/GrupoFWP/wave"
)

// Config describes a calibration sweep. Amplitudes, Durations and Silences
// may each be nil (defaults: 1, one second, no silence), hold a single
// value broadcast to every frequency, or hold one value per frequency.
// Any other length is an ErrArityMismatch.
type Config struct {
	Frequencies []float64
	Amplitudes  []float64
	Durations   []time.Duration
	Silences    []time.Duration

	Shape        wave.Shape
	SampleRate   int
	BufferLength int
}

// Step is one stretch of the sweep: a bounded tone session followed by an
// optional silence session. Both sessions are created fresh for the step,
// so no phase state carries over from earlier steps.
type Step struct {
	Frequency float64
	Amplitude float64
	Duration  time.Duration
	Silence   time.Duration

	// Tone streams the signal stretch; Rest streams the silence gap and is
	// nil when the step has no silence.
	Tone *stream.Session
	Rest *stream.Session
}

type stepParams struct {
	freq    float64
	amp     float64
	dur     time.Duration
	silence time.Duration
}

// Driver sequences sweep steps. All parameter validation happens in New;
// Next then yields one Step at a time and io.EOF when the sweep is done.
type Driver struct {
	steps        []stepParams
	shape        wave.Shape
	sampleRate   int
	bufferLength int
	pos          int
}

// New validates cfg, broadcasts scalar parameters and returns a driver
// positioned before the first step.
func New(cfg Config) (*Driver, error) {
	n := len(cfg.Frequencies)
	if n == 0 {
		return nil, ErrNoFrequencies
	}

	amps, err := broadcast("amplitudes", cfg.Amplitudes, 1, n)
	if err != nil {
		return nil, err
	}
	durs, err := broadcast("durations", cfg.Durations, time.Second, n)
	if err != nil {
		return nil, err
	}
	silences, err := broadcast("silences", cfg.Silences, 0, n)
	if err != nil {
		return nil, err
	}

	steps := make([]stepParams, n)
	for i, freq := range cfg.Frequencies {
		// Fail fast on bad step parameters before any audio is produced.
		if _, err := wave.New(cfg.Shape, freq, amps[i]); err != nil {
			return nil, fmt.Errorf("step %d: %w", i, err)
		}
		steps[i] = stepParams{freq: freq, amp: amps[i], dur: durs[i], silence: silences[i]}
	}

	d := &Driver{
		steps:        steps,
		shape:        cfg.Shape,
		sampleRate:   cfg.SampleRate,
		bufferLength: cfg.BufferLength,
	}

	// Surface bad streaming parameters now rather than on the first step.
	if _, err := d.sessions(steps[0]); err != nil {
		return nil, err
	}

	return d, nil
}

// Len is the number of steps in the sweep.
func (d *Driver) Len() int { return len(d.steps) }

// Next builds the following step. Returns io.EOF after the last one.
func (d *Driver) Next() (*Step, error) {
	if d.pos >= len(d.steps) {
		return nil, io.EOF
	}

	p := d.steps[d.pos]
	step, err := d.sessions(p)
	if err != nil {
		return nil, err
	}
	d.pos++

	return step, nil
}

func (d *Driver) sessions(p stepParams) (*Step, error) {
	w, err := wave.New(d.shape, p.freq, p.amp)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	set, _, err := stream.Resolve([]wave.Wave{w}, 1)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	tone, err := stream.NewBounded(set, d.sampleRate, d.bufferLength, p.dur)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	var rest *stream.Session
	if p.silence > 0 {
		rest, err = stream.NewSilence(d.sampleRate, d.bufferLength, 1, p.silence)
		if err != nil {
			return nil, fmt.Errorf("%w", err)
		}
	}

	return &Step{
		Frequency: p.freq,
		Amplitude: p.amp,
		Duration:  p.dur,
		Silence:   p.silence,
		Tone:      tone,
		Rest:      rest,
	}, nil
}

// FromRange expands a (start, stop, step) triple into the frequency values
// start, start+step, ... up to but excluding stop. A non-positive step
// returns nil.
func FromRange(start, stop, step float64) []float64 {
	if step <= 0 {
		return nil
	}

	var freqs []float64
	for f := start; f < stop; f += step {
		freqs = append(freqs, f)
	}

	return freqs
}

// broadcast expands vals to length n: nil becomes n copies of def, a single
// value is repeated, a full-length slice is copied through.
func broadcast[T any](name string, vals []T, def T, n int) ([]T, error) {
	out := make([]T, n)

	switch len(vals) {
	case 0:
		for i := range out {
			out[i] = def
		}
	case 1:
		for i := range out {
			out[i] = vals[0]
		}
	case n:
		copy(out, vals)
	default:
		return nil, fmt.Errorf("%w: %d %s for %d frequencies", ErrArityMismatch, len(vals), name, n)
	}

	return out, nil
}
