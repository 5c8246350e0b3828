// SPDX-License-Identifier: EPL-2.0

package wavetable

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
	gomp3 "github.com/hajimehoshi/go-mp3"
	"github.com/jfreymuth/oggvorbis"
)

// Decoded audio is downmixed to mono, normalized to peak 1 and treated as
// one cycle, so any single-cycle clip becomes a playable waveform.

// FromWAV builds a table from a PCM WAV stream.
func FromWAV(r io.ReadSeeker) (*Table, error) {
	dec := wav.NewDecoder(r)
	if !dec.IsValidFile() {
		return nil, ErrNotWavFile
	}

	pcm, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("decoding wav: %w", err)
	}

	return fromIntBuffer(pcm, int(dec.BitDepth))
}

// FromAIFF builds a table from a 16-bit PCM AIFF stream.
func FromAIFF(r io.ReadSeeker) (*Table, error) {
	dec := aiff.NewDecoder(r)
	if !dec.IsValidFile() {
		return nil, ErrNotAiffFile
	}

	dec.ReadInfo()
	if dec.BitDepth != 16 {
		return nil, ErrOnlyPCM16bitSupported
	}

	format := dec.Format()
	if format == nil {
		return nil, ErrNotAiffFile
	}

	// Pull PCM in chunks the way the decoder expects.
	var ints []int
	buf := &goaudio.IntBuffer{
		Data:   make([]int, 4096),
		Format: format,
	}
	for {
		n, err := dec.PCMBuffer(buf)
		if n > 0 {
			ints = append(ints, buf.Data[:n]...)
		}
		if err == io.EOF || n == 0 {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("decoding aiff: %w", err)
		}
	}

	return fromIntBuffer(&goaudio.IntBuffer{Data: ints, Format: format}, 16)
}

// FromMP3 builds a table from an MP3 stream. The decoder always yields
// 16-bit little-endian stereo PCM.
func FromMP3(r io.Reader) (*Table, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("decoding mp3: %w", err)
	}

	raw, err := io.ReadAll(dec)
	if err != nil {
		return nil, fmt.Errorf("decoding mp3: %w", err)
	}

	return fromPCM16LE(raw, 2)
}

// FromVorbis builds a table from an Ogg Vorbis stream.
func FromVorbis(r io.Reader) (*Table, error) {
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("decoding vorbis: %w", err)
	}

	var samples []float64
	buf := make([]float32, 4096)
	for {
		n, err := dec.Read(buf)
		for _, v := range buf[:n] {
			samples = append(samples, float64(v))
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("decoding vorbis: %w", err)
		}
	}

	return fromFloats(samples, dec.Channels())
}

// fromIntBuffer normalizes integer PCM of the given bit depth to [-1, 1].
func fromIntBuffer(pcm *goaudio.IntBuffer, bitDepth int) (*Table, error) {
	if pcm == nil || len(pcm.Data) == 0 {
		return nil, ErrNoAudioData
	}

	var maxVal float64
	switch bitDepth {
	case 8:
		maxVal = 128
	case 16:
		maxVal = 32768
	case 24:
		maxVal = 8388608
	case 32:
		maxVal = 2147483648
	default:
		maxVal = 32768
	}

	samples := make([]float64, len(pcm.Data))
	for i, v := range pcm.Data {
		samples[i] = float64(v) / maxVal
	}

	channels := 1
	if pcm.Format != nil {
		channels = pcm.Format.NumChannels
	}

	return fromFloats(samples, channels)
}

// fromPCM16LE converts raw 16-bit little-endian bytes.
func fromPCM16LE(raw []byte, channels int) (*Table, error) {
	samples := make([]float64, len(raw)/2)
	for i := range samples {
		v := int16(binary.LittleEndian.Uint16(raw[2*i : 2*i+2]))
		samples[i] = float64(v) / 32768
	}

	return fromFloats(samples, channels)
}

func fromFloats(samples []float64, channels int) (*Table, error) {
	if len(samples) == 0 {
		return nil, ErrNoAudioData
	}

	mono := downmix(samples, channels)
	normalize(mono)

	return New(mono)
}
