// SPDX-License-Identifier: EPL-2.0

package device

// Backend is the boundary to an audio playback/recording device. The
// streaming engine only ever pushes encoded bytes through it; it has no
// knowledge of what sits behind the handle.
//
// Write may block; backpressure from the device is the expected flow
// control. A failed Write is fatal to the stream being played: the engine
// stops and reports it, retry policy belongs to the caller.
type Backend interface {
	// Open prepares the device for a stream of the given shape.
	Open(sampleRate, bufferLength, nchannels int) error

	// Write pushes one encoded buffer. Blocking is acceptable.
	Write(data []byte) error

	// Read pulls nframes of recorded audio in the same encoding, for
	// backends that support the recording path.
	Read(nframes int) ([]byte, error)

	// Close flushes and releases the device.
	Close() error
}
