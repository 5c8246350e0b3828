// SPDX-License-Identifier: EPL-2.0

package device

import "fmt"

// Discard is a null backend: it counts what it is given and throws the
// audio away. Reads return silence. Useful in benchmarks and as a stand-in
// when no device is attached.
type Discard struct {
	open      bool
	nchannels int

	Writes       int
	BytesWritten int64
}

func (d *Discard) Open(sampleRate, bufferLength, nchannels int) error {
	if d.open {
		return ErrAlreadyOpen
	}
	if sampleRate <= 0 || bufferLength <= 0 || nchannels <= 0 {
		return fmt.Errorf("%w: rate=%d buffer=%d channels=%d", ErrInvalidParams, sampleRate, bufferLength, nchannels)
	}

	d.open = true
	d.nchannels = nchannels

	return nil
}

func (d *Discard) Write(data []byte) error {
	if !d.open {
		return ErrNotOpen
	}

	d.Writes++
	d.BytesWritten += int64(len(data))

	return nil
}

func (d *Discard) Read(nframes int) ([]byte, error) {
	if !d.open {
		return nil, ErrNotOpen
	}

	return make([]byte, nframes*d.nchannels*4), nil
}

func (d *Discard) Close() error {
	if !d.open {
		return ErrNotOpen
	}
	d.open = false

	return nil
}
