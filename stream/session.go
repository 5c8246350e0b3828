// SPDX-License-Identifier: EPL-2.0

package stream

import (
	"fmt"
	"io"
	"math"
	"time"

	goaudio "github.com/go-audio/audio"

	"github.com/m-far/GrupoFWP/wave"
)

// Mode selects between endless and fixed-duration streaming.
type Mode int

const (
	Continuous Mode = iota
	Bounded
)

// Session produces the buffer sequence for one playback run. The only
// mutable state is the phase cursor: an exact integer count of frames
// emitted since the session started. Time instants are always derived from
// that counter, never accumulated in floating point, so phase stays
// continuous across buffer boundaries for arbitrarily long streams.
//
// A Session is single-owner: exactly one goroutine may call Next. To change
// waves, discard the session and create a new one.
type Session struct {
	channels     ChannelSet
	sampleRate   int
	bufferLength int
	mode         Mode
	totalFrames  int64 // Bounded only

	frames  int64 // phase cursor
	timeBuf []float64
}

// NewSession creates a continuous session: Next never returns io.EOF.
func NewSession(channels ChannelSet, sampleRate, bufferLength int) (*Session, error) {
	return newSession(channels, sampleRate, bufferLength, Continuous, 0)
}

// NewBounded creates a session that emits exactly
// ceil(duration·sampleRate/bufferLength) buffers, the last one zero-padded
// to full length. A zero or negative duration yields an empty sequence,
// not an error.
func NewBounded(channels ChannelSet, sampleRate, bufferLength int, duration time.Duration) (*Session, error) {
	frames := int64(math.Round(duration.Seconds() * float64(sampleRate)))
	if frames < 0 {
		frames = 0
	}

	return newSession(channels, sampleRate, bufferLength, Bounded, frames)
}

// NewSilence creates a bounded session of all-zero samples, used as the gap
// between sweep steps.
func NewSilence(sampleRate, bufferLength, nchannels int, duration time.Duration) (*Session, error) {
	if nchannels < 1 || nchannels > 2 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidChannelCount, nchannels)
	}

	// A zero-amplitude wave keeps silence on the same code path as signal.
	w, err := wave.New(wave.Sine, 1, 0)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	set := make(ChannelSet, nchannels)
	for i := range set {
		set[i] = w
	}

	return NewBounded(set, sampleRate, bufferLength, duration)
}

func newSession(channels ChannelSet, sampleRate, bufferLength int, mode Mode, totalFrames int64) (*Session, error) {
	if len(channels) == 0 {
		return nil, ErrEmptyChannelSet
	}
	if len(channels) > 2 {
		return nil, fmt.Errorf("%w: got %d", ErrTooManyWaves, len(channels))
	}
	if sampleRate <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSampleRate, sampleRate)
	}
	if bufferLength <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidBufferLength, bufferLength)
	}

	return &Session{
		channels:     channels,
		sampleRate:   sampleRate,
		bufferLength: bufferLength,
		mode:         mode,
		totalFrames:  totalFrames,
		timeBuf:      make([]float64, bufferLength),
	}, nil
}

func (s *Session) SampleRate() int   { return s.sampleRate }
func (s *Session) BufferLength() int { return s.bufferLength }
func (s *Session) Channels() int     { return len(s.channels) }
func (s *Session) Mode() Mode        { return s.mode }

// Position is the number of signal frames emitted so far.
func (s *Session) Position() int64 { return s.frames }

// Buffers is the total number of buffers a bounded session will emit.
// Continuous sessions return -1.
func (s *Session) Buffers() int64 {
	if s.mode == Continuous {
		return -1
	}

	n := int64(s.bufferLength)
	return (s.totalFrames + n - 1) / n
}

// Reset rewinds the phase cursor to the session start.
func (s *Session) Reset() { s.frames = 0 }

// Next produces the next fixed-size interleaved buffer. Ownership of the
// returned buffer transfers to the caller; no slice is shared across calls.
// Bounded sessions return io.EOF once drained, continuous ones never do.
// Ceasing to call Next is the only cancellation needed: a session holds no
// external resources.
func (s *Session) Next() (*goaudio.FloatBuffer, error) {
	if s.mode == Bounded && s.frames >= s.totalFrames {
		return nil, io.EOF
	}

	emit := s.bufferLength
	if s.mode == Bounded {
		if rem := s.totalFrames - s.frames; rem < int64(emit) {
			emit = int(rem)
		}
	}

	// Time instants come from the integer frame counter so that repeated
	// floating addition can never drift the phase.
	t := s.timeBuf[:emit]
	for i := 0; i < emit; i++ {
		t[i] = float64(s.frames+int64(i)) / float64(s.sampleRate)
	}

	nch := len(s.channels)
	data := make([]float64, s.bufferLength*nch)

	// Each channel evaluates its own descriptor over the full time vector,
	// so channels with incompatible frequencies never truncate each other.
	for c, w := range s.channels {
		samples, err := w.Evaluate(t)
		if err != nil {
			return nil, fmt.Errorf("channel %d: %w", c, err)
		}
		for i, v := range samples {
			data[i*nch+c] = v
		}
	}

	s.frames += int64(emit)

	return &goaudio.FloatBuffer{
		Format: &goaudio.Format{
			NumChannels: nch,
			SampleRate:  s.sampleRate,
		},
		Data: data,
	}, nil
}

// Collect drains a bounded session into a single flat buffer holding
// exactly round(duration·sampleRate) frames, with the final buffer's
// padding trimmed off.
func Collect(s *Session) (*goaudio.FloatBuffer, error) {
	if s.mode != Bounded {
		return nil, ErrUnbounded
	}

	nch := len(s.channels)
	data := make([]float64, 0, s.totalFrames*int64(nch))

	for {
		buf, err := s.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		data = append(data, buf.Data...)
	}

	data = data[:s.totalFrames*int64(nch)]

	return &goaudio.FloatBuffer{
		Format: &goaudio.Format{
			NumChannels: nch,
			SampleRate:  s.sampleRate,
		},
		Data: data,
	}, nil
}
