// SPDX-License-Identifier: EPL-2.0

package stream

import (
	"encoding/binary"
	"errors"
	"math"
	"testing"

	goaudio "github.com/go-audio/audio"
)

func floatBuffer(rate, nchannels int, data ...float64) *goaudio.FloatBuffer {
	return &goaudio.FloatBuffer{
		Format: &goaudio.Format{NumChannels: nchannels, SampleRate: rate},
		Data:   data,
	}
}

func TestEncodeFloat32LE_Layout(t *testing.T) {
	t.Parallel()

	// Two frames, interleaved stereo.
	buf := floatBuffer(44100, 2, 0.5, -0.5, 0.25, -0.25)

	data, clipped := EncodeFloat32LE(buf)
	if clipped != 0 {
		t.Errorf("EncodeFloat32LE() clipped = %d, want 0", clipped)
	}
	if len(data) != 16 {
		t.Fatalf("EncodeFloat32LE() len = %d, want 16", len(data))
	}

	want := []float32{0.5, -0.5, 0.25, -0.25}
	for i, w := range want {
		bits := binary.LittleEndian.Uint32(data[i*4 : i*4+4])
		if got := math.Float32frombits(bits); got != w {
			t.Errorf("sample %d = %v, want %v", i, got, w)
		}
	}
}

func TestEncodeFloat32LE_RoundTrip(t *testing.T) {
	t.Parallel()

	orig := floatBuffer(8000, 2, 0.1, -0.9, 0.333, 0.75, -1, 1)

	data, _ := EncodeFloat32LE(orig)
	got, err := DecodeFloat32LE(data, 8000, 2)
	if err != nil {
		t.Fatalf("DecodeFloat32LE() error = %v", err)
	}

	if got.Format.NumChannels != 2 || got.Format.SampleRate != 8000 {
		t.Errorf("DecodeFloat32LE() format = %+v", got.Format)
	}
	for i := range orig.Data {
		// float32 precision is the round-trip tolerance.
		if math.Abs(got.Data[i]-orig.Data[i]) > 1e-7 {
			t.Errorf("sample %d = %v, want %v", i, got.Data[i], orig.Data[i])
		}
	}
}

func TestEncodeFloat32LE_ClampsOverflow(t *testing.T) {
	t.Parallel()

	huge := math.MaxFloat32 * 4
	buf := floatBuffer(8000, 1, huge, -huge, 0.5)

	data, clipped := EncodeFloat32LE(buf)
	if clipped != 2 {
		t.Errorf("EncodeFloat32LE() clipped = %d, want 2", clipped)
	}

	got, err := DecodeFloat32LE(data, 8000, 1)
	if err != nil {
		t.Fatalf("DecodeFloat32LE() error = %v", err)
	}

	if got.Data[0] != math.MaxFloat32 {
		t.Errorf("clamped sample = %v, want MaxFloat32", got.Data[0])
	}
	if got.Data[1] != -math.MaxFloat32 {
		t.Errorf("clamped sample = %v, want -MaxFloat32", got.Data[1])
	}
	if math.IsInf(got.Data[0], 0) || math.IsInf(got.Data[1], 0) {
		t.Error("overflow wrapped to infinity instead of clamping")
	}
}

func TestDecodeFloat32LE_Errors(t *testing.T) {
	t.Parallel()

	if _, err := DecodeFloat32LE(make([]byte, 12), 8000, 2); !errors.Is(err, ErrInvalidEncoding) {
		t.Errorf("DecodeFloat32LE(partial frame) error = %v, want ErrInvalidEncoding", err)
	}
	if _, err := DecodeFloat32LE(make([]byte, 8), 8000, 0); !errors.Is(err, ErrInvalidChannelCount) {
		t.Errorf("DecodeFloat32LE(no channels) error = %v, want ErrInvalidChannelCount", err)
	}
}
