// SPDX-License-Identifier: EPL-2.0

package device

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/m-far/GrupoFWP/utils"
)

// WAVFile renders a stream into a 16-bit PCM WAV, so a bounded session can
// be written to disk instead of a sound card. The recording path is not
// supported.
type WAVFile struct {
	ws  io.WriteSeeker
	enc *wav.Encoder

	nchannels int
	intBuf    *goaudio.IntBuffer
}

// NewWAVFile wraps ws, usually an *os.File. The WAV header is finalized on
// Close, so the file is incomplete until then.
func NewWAVFile(ws io.WriteSeeker) *WAVFile {
	return &WAVFile{ws: ws}
}

func (d *WAVFile) Open(sampleRate, bufferLength, nchannels int) error {
	if d.enc != nil {
		return ErrAlreadyOpen
	}
	if sampleRate <= 0 || bufferLength <= 0 || nchannels <= 0 {
		return fmt.Errorf("%w: rate=%d buffer=%d channels=%d", ErrInvalidParams, sampleRate, bufferLength, nchannels)
	}

	d.enc = wav.NewEncoder(d.ws, sampleRate, 16, nchannels, 1)
	d.nchannels = nchannels
	d.intBuf = &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: nchannels, SampleRate: sampleRate},
		Data:           make([]int, 0, bufferLength*nchannels),
		SourceBitDepth: 16,
	}

	return nil
}

// Write narrows the engine's float32 little-endian encoding to 16-bit PCM
// and appends it to the file.
func (d *WAVFile) Write(data []byte) error {
	if d.enc == nil {
		return ErrNotOpen
	}
	if len(data)%(4*d.nchannels) != 0 {
		return fmt.Errorf("%w: %d bytes for %d channels", ErrInvalidDataLength, len(data), d.nchannels)
	}

	samples := len(data) / 4
	if cap(d.intBuf.Data) < samples {
		d.intBuf.Data = make([]int, samples)
	}
	d.intBuf.Data = d.intBuf.Data[:samples]

	for i := 0; i < samples; i++ {
		bits := binary.LittleEndian.Uint32(data[i*4 : i*4+4])
		v := math.Float32frombits(bits)
		d.intBuf.Data[i] = int(utils.Float64ToInt16(float64(v)))
	}

	if err := d.enc.Write(d.intBuf); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

func (d *WAVFile) Read(nframes int) ([]byte, error) {
	return nil, ErrReadUnsupported
}

// Close finalizes the WAV header. The underlying writer is left open; the
// caller still owns the file handle.
func (d *WAVFile) Close() error {
	if d.enc == nil {
		return ErrNotOpen
	}

	err := d.enc.Close()
	d.enc = nil
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}
