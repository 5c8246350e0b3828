// SPDX-License-Identifier: EPL-2.0

// Package wavetable turns sampled audio into playable custom waveforms.
//
// A Table holds a single cycle of a waveform and evaluates it at any phase
// with cubic interpolation. Tables can be built from raw samples or loaded
// from single-cycle clips in WAV, AIFF, MP3 or Ogg Vorbis form; decoded
// audio is downmixed to mono and normalized to peak 1.
//
// A table plugs into the wave package through the Custom shape:
//
//	f, _ := os.Open("onecycle.wav")
//	table, _ := wavetable.FromWAV(f)
//	w, _ := wave.New(wave.Custom, 220, 1, wave.WithCustom(table.Func()))
//
// The resulting descriptor streams like any built-in shape.
package wavetable
