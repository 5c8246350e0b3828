// SPDX-License-Identifier: EPL-2.0

// Package audiotest provides test doubles for the audio backend boundary.
package audiotest

import (
	"encoding/binary"
	"math"
)

// Backend is a capture device for tests: it records the stream shape it
// was opened with and every byte written to it. It satisfies the
// device.Backend interface structurally (without importing it, to stay
// usable from any package).
type Backend struct {
	SampleRate   int
	BufferLength int
	Channels     int

	Opened bool
	Closed bool
	Writes [][]byte

	// Error injection for failure-path tests.
	OpenErr  error
	WriteErr error
	CloseErr error
}

func (b *Backend) Open(sampleRate, bufferLength, nchannels int) error {
	if b.OpenErr != nil {
		return b.OpenErr
	}

	b.SampleRate = sampleRate
	b.BufferLength = bufferLength
	b.Channels = nchannels
	b.Opened = true

	return nil
}

func (b *Backend) Write(data []byte) error {
	if b.WriteErr != nil {
		return b.WriteErr
	}

	// Keep our own copy; the caller may reuse the slice.
	cp := make([]byte, len(data))
	copy(cp, data)
	b.Writes = append(b.Writes, cp)

	return nil
}

func (b *Backend) Read(nframes int) ([]byte, error) {
	return make([]byte, nframes*b.Channels*4), nil
}

func (b *Backend) Close() error {
	if b.CloseErr != nil {
		return b.CloseErr
	}

	b.Closed = true

	return nil
}

// Bytes concatenates everything written so far.
func (b *Backend) Bytes() []byte {
	var all []byte
	for _, w := range b.Writes {
		all = append(all, w...)
	}

	return all
}

// Samples decodes the captured float32 little-endian stream.
func (b *Backend) Samples() []float64 {
	data := b.Bytes()
	out := make([]float64, len(data)/4)
	for i := range out {
		bits := binary.LittleEndian.Uint32(data[i*4 : i*4+4])
		out[i] = float64(math.Float32frombits(bits))
	}

	return out
}
