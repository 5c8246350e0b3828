// SPDX-License-Identifier: EPL-2.0

package stream

import (
	"encoding/binary"
	"fmt"
	"math"

	goaudio "github.com/go-audio/audio"

	"github.com/m-far/GrupoFWP/utils"
)

// EncodeFloat32LE converts an interleaved sample block to the fixed-width
// binary layout the audio backend expects: frame 0 channel 0, frame 0
// channel 1, frame 1 channel 0, ... each sample a little-endian float32.
// Samples outside the float32 range are clamped, never wrapped; the count
// of clamped samples is returned as a non-fatal diagnostic.
func EncodeFloat32LE(buf *goaudio.FloatBuffer) ([]byte, int) {
	out := make([]byte, len(buf.Data)*4)
	clipped := 0

	for i, v := range buf.Data {
		f, c := utils.ClampFloat32(v)
		if c {
			clipped++
		}
		binary.LittleEndian.PutUint32(out[i*4:i*4+4], math.Float32bits(f))
	}

	return out, clipped
}

// DecodeFloat32LE is the inverse layout transform, mainly for tests and
// for backends that hand bytes back on the recording path. data must hold
// a whole number of nchannels-sized frames.
func DecodeFloat32LE(data []byte, sampleRate, nchannels int) (*goaudio.FloatBuffer, error) {
	if nchannels < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidChannelCount, nchannels)
	}
	if len(data)%(4*nchannels) != 0 {
		return nil, fmt.Errorf("%w: %d bytes for %d channels", ErrInvalidEncoding, len(data), nchannels)
	}

	samples := make([]float64, len(data)/4)
	for i := range samples {
		bits := binary.LittleEndian.Uint32(data[i*4 : i*4+4])
		samples[i] = float64(math.Float32frombits(bits))
	}

	return &goaudio.FloatBuffer{
		Format: &goaudio.Format{
			NumChannels: nchannels,
			SampleRate:  sampleRate,
		},
		Data: samples,
	}, nil
}
