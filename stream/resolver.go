// SPDX-License-Identifier: EPL-2.0

package stream

import (
	"fmt"

	"github.com/m-far/GrupoFWP/wave"
)

// ChannelSet is the ordered list of wave descriptors driving a session, one
// per output channel. It is fixed once resolved.
type ChannelSet []wave.Wave

// Note reports a lossy adjustment applied while resolving channels. Notes
// are returned as values so callers decide whether and how to report them;
// the library itself never prints.
type Note int

const (
	// NoteDuplicated: one wave was copied to both channels of a stereo
	// session, so both carry the identical signal.
	NoteDuplicated Note = iota + 1
	// NoteDropped: a second wave was discarded because only one output
	// channel was requested.
	NoteDropped
)

func (n Note) String() string {
	switch n {
	case NoteDuplicated:
		return "one wave for two channels: both channels carry the same signal"
	case NoteDropped:
		return "two waves for one channel: second wave discarded"
	default:
		return fmt.Sprintf("Note(%d)", int(n))
	}
}

// Resolve reconciles the given waves against the requested channel count.
// A single wave requested as stereo is duplicated into both channels; a
// pair requested as mono keeps only the first wave. Either adjustment is
// reported through a Note. nchannels must be 1 or 2.
func Resolve(waves []wave.Wave, nchannels int) (ChannelSet, []Note, error) {
	if nchannels < 1 || nchannels > 2 {
		return nil, nil, fmt.Errorf("%w: %d", ErrInvalidChannelCount, nchannels)
	}
	if len(waves) == 0 {
		return nil, nil, ErrEmptyChannelSet
	}
	if len(waves) > 2 {
		return nil, nil, fmt.Errorf("%w: got %d", ErrTooManyWaves, len(waves))
	}

	var notes []Note

	switch {
	case nchannels == 1 && len(waves) == 2:
		notes = append(notes, NoteDropped)
		waves = waves[:1]
	case nchannels == 2 && len(waves) == 1:
		notes = append(notes, NoteDuplicated)
		waves = []wave.Wave{waves[0], waves[0]}
	}

	set := make(ChannelSet, len(waves))
	copy(set, waves)

	return set, notes, nil
}
