// SPDX-License-Identifier: EPL-2.0

// Package device defines the audio backend boundary the streaming engine
// pushes encoded buffers into.
//
// The Backend interface mirrors a push-based playback device: open with the
// stream shape, write encoded byte blocks (blocking allowed), close. A
// symmetrical Read covers backends with a recording path.
//
// Two implementations ship with the package: WAVFile renders a stream to a
// 16-bit PCM WAV via an io.WriteSeeker, and Discard counts and drops
// everything for tests and benchmarks. Real sound-card bindings plug in by
// implementing Backend; the engine never depends on a concrete device.
package device
