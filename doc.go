// SPDX-License-Identifier: EPL-2.0

// Package grupofwp generates continuous multi-channel periodic signals and
// streams them as fixed-size buffers to a push-based audio backend.
//
// The engine is split into small packages along the data flow:
//
//	wave descriptor(s) -> channel resolver -> streaming session -> encoder -> backend
//
//   - wave: waveform library and immutable wave descriptors
//   - stream: channel resolution, buffered streaming sessions, the
//     float32 sample encoder and a producer pump
//   - sweep: frequency sweep sequencing for calibration runs
//   - device: the audio backend boundary, with WAV-file and null sinks
//   - wavetable: custom waveforms loaded from sampled audio
//
// # Quick Start
//
// Render one second of a 400Hz sine into a WAV file:
//
//	w, _ := wave.New(wave.Sine, 400, 1)
//	set, _, _ := stream.Resolve([]wave.Wave{w}, 1)
//	s, _ := stream.NewBounded(set, 44100, 1024, time.Second)
//
//	f, _ := os.Create("tone.wav")
//	defer f.Close()
//	clipped, err := grupofwp.Play(device.NewWAVFile(f), s)
//
// Or grab the raw samples without a backend:
//
//	buf, _ := grupofwp.RenderWave(wave.Triangle, 400, 1, 44100, time.Second)
//	// buf.Data holds 44100 float64 samples
//
// # Streaming
//
// Sessions are pull-based and phase-continuous across buffer boundaries;
// continuous sessions stream forever and stop when the consumer stops
// pulling. See the stream package for the session and concurrency model.
//
// # Sweeps
//
// The sweep package sequences (frequency, amplitude, duration, silence)
// steps for characterization workflows, each step streaming through a
// fresh session. The fwpsweep command renders a configured sweep to WAV
// files.
package grupofwp
