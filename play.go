// SPDX-License-Identifier: EPL-2.0

package grupofwp

import (
	"fmt"
	"io"
	"time"

	goaudio "github.com/go-audio/audio"

	"github.com/m-far/GrupoFWP/device"
	"github.com/m-far/GrupoFWP/stream"
	"github.com/m-far/GrupoFWP/wave"
)

// DefaultBufferLength is the buffer size used by the convenience helpers.
const DefaultBufferLength = 1024

// Play drains a session into a backend: it opens the backend with the
// session's shape, writes every buffer in encoded form and closes the
// backend when the session ends. The returned count is the number of
// samples clamped during encoding, a non-fatal diagnostic.
//
// A backend write failure is fatal: streaming stops and the error is
// returned without retry. Play only returns for bounded sessions; a
// continuous session should be driven through stream.Pump instead.
func Play(b device.Backend, s *stream.Session) (int, error) {
	if err := b.Open(s.SampleRate(), s.BufferLength(), s.Channels()); err != nil {
		return 0, fmt.Errorf("opening backend: %w", err)
	}

	clipped := 0
	for {
		buf, err := s.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return clipped, fmt.Errorf("producing buffer: %w", err)
		}

		data, c := stream.EncodeFloat32LE(buf)
		clipped += c

		if err := b.Write(data); err != nil {
			return clipped, fmt.Errorf("writing to backend: %w", err)
		}
	}

	if err := b.Close(); err != nil {
		return clipped, fmt.Errorf("closing backend: %w", err)
	}

	return clipped, nil
}

// RenderWave evaluates a shape for the given duration and returns the flat
// mono sample block, a shortcut for one-off signal generation:
//
//	buf, err := grupofwp.RenderWave(wave.Sine, 400, 1, 44100, time.Second)
func RenderWave(shape wave.Shape, frequency, amplitude float64, sampleRate int, duration time.Duration) (*goaudio.FloatBuffer, error) {
	w, err := wave.New(shape, frequency, amplitude)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	set, _, err := stream.Resolve([]wave.Wave{w}, 1)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	s, err := stream.NewBounded(set, sampleRate, DefaultBufferLength, duration)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return stream.Collect(s)
}
