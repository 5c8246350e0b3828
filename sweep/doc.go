// SPDX-License-Identifier: EPL-2.0

// Package sweep sequences frequency sweeps for calibration and
// characterization runs.
//
// A sweep is an ordered list of (frequency, amplitude, duration, silence)
// steps. Each step gets a fresh bounded streaming session, so every tone
// starts at phase zero, followed by an optional all-zero silence session
// before the next frequency:
//
//	d, err := sweep.New(sweep.Config{
//	    Frequencies:  sweep.FromRange(100, 1000, 10),
//	    Durations:    []time.Duration{time.Second}, // broadcast to all steps
//	    Shape:        wave.Sine,
//	    SampleRate:   44100,
//	    BufferLength: 1024,
//	})
//	if err != nil {
//	    // mismatched parameter lengths, bad frequency, ...
//	}
//	for {
//	    step, err := d.Next()
//	    if err == io.EOF {
//	        break
//	    }
//	    playAll(step.Tone)
//	    if step.Rest != nil {
//	        playAll(step.Rest)
//	    }
//	}
//
// Scalar parameters broadcast: a one-element Amplitudes, Durations or
// Silences slice applies to every frequency, while a full-length slice
// gives each step its own value.
package sweep
