// SPDX-License-Identifier: EPL-2.0

package wavetable

import "errors"

var (
	ErrEmptyTable            = errors.New("wavetable must hold at least one sample")
	ErrNoAudioData           = errors.New("decoded audio holds no samples")
	ErrNotWavFile            = errors.New("not a WAV file")
	ErrNotAiffFile           = errors.New("not an AIFF file")
	ErrOnlyPCM16bitSupported = errors.New("only PCM 16-bit supported")
)
