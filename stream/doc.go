// SPDX-License-Identifier: EPL-2.0

// Package stream slices waveforms into the fixed-size buffers an audio
// backend consumes.
//
// A Session combines a resolved ChannelSet with a device sample rate and a
// buffer length and produces interleaved sample blocks through a pull-based
// Next call. Sessions are either Continuous (Next never ends) or Bounded
// (exactly ceil(duration·sampleRate/bufferLength) buffers, the final one
// zero-padded).
//
// # Phase Continuity
//
// Buffers are not generated independently from time zero. The session keeps
// an integer frame counter and derives every time instant from it, so
// consecutive buffers join without discontinuity for any combination of
// frequency, buffer length and sample rate — including ones where the wave
// period does not divide the buffer:
//
//	set, _, _ := stream.Resolve([]wave.Wave{w}, 1)
//	s, _ := stream.NewSession(set, 44100, 1024)
//	for {
//	    buf, _ := s.Next() // phase carries across calls
//	    play(buf)
//	}
//
// Stereo sessions evaluate each channel's descriptor over its own time
// vector, so the two channels may use unrelated frequencies without one
// truncating the other.
//
// # Concurrency
//
// A session has no internal locking; exactly one goroutine may pull from
// it. For a producer/consumer split, Pump moves production onto its own
// goroutine behind a bounded channel:
//
//	p := stream.NewPump(s, 4)
//	for buf := range p.Buffers() {
//	    data, _ := stream.EncodeFloat32LE(buf)
//	    backend.Write(data)
//	}
//
// Cancellation is cooperative everywhere: stop pulling, or call Pump.Stop.
//
// # Encoding
//
// EncodeFloat32LE lays an interleaved block out as little-endian float32
// bytes for the backend boundary, clamping out-of-range samples and
// reporting how many were clamped.
package stream
