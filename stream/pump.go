// SPDX-License-Identifier: EPL-2.0

package stream

import (
	"io"
	"sync"

	goaudio "github.com/go-audio/audio"
)

// Pump drives a session from its own goroutine and pushes buffers into a
// bounded channel, the producer/consumer shape for feeding a blocking audio
// backend: the pump blocks when the queue is full, the consumer blocks when
// it is empty. The pump takes exclusive ownership of the session.
type Pump struct {
	out  chan *goaudio.FloatBuffer
	done chan struct{}
	stop sync.Once
	err  error
}

// NewPump starts pumping s into a queue holding up to depth buffers.
func NewPump(s *Session, depth int) *Pump {
	p := &Pump{
		out:  make(chan *goaudio.FloatBuffer, depth),
		done: make(chan struct{}),
	}
	go p.run(s)

	return p
}

func (p *Pump) run(s *Session) {
	defer close(p.out)

	for {
		buf, err := s.Next()
		if err == io.EOF {
			return
		}
		if err != nil {
			p.err = err
			return
		}

		select {
		case p.out <- buf:
		case <-p.done:
			return
		}
	}
}

// Buffers is the queue of produced buffers. It is closed when the session
// is drained, the pump is stopped, or production fails.
func (p *Pump) Buffers() <-chan *goaudio.FloatBuffer { return p.out }

// Stop cancels production. Safe to call more than once; buffers already
// queued remain readable until the channel is drained.
func (p *Pump) Stop() {
	p.stop.Do(func() { close(p.done) })
}

// Err reports why production ended. It is valid once Buffers is closed and
// is nil after a normal drain or a Stop.
func (p *Pump) Err() error { return p.err }
