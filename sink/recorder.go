// SPDX-License-Identifier: EPL-2.0

package sink

import (
	"context"
	"sync"

	goaudio "github.com/go-audio/audio"
)

// Recorder is an in-memory Sink that keeps every prepared buffer.
type Recorder struct {
	Policy Policy

	mu      sync.Mutex
	buffers []*goaudio.FloatBuffer
}

func NewRecorder(policy Policy) *Recorder {
	return &Recorder{Policy: policy}
}

func (r *Recorder) Play(ctx context.Context, sampleRate int, channels ...[]float64) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	buf, err := Prepare(sampleRate, r.Policy, channels...)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.buffers = append(r.buffers, buf)

	return nil
}

// Buffers returns the recorded buffers in play order.
func (r *Recorder) Buffers() []*goaudio.FloatBuffer {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]*goaudio.FloatBuffer(nil), r.buffers...)
}

// Last returns the most recent buffer, or nil.
func (r *Recorder) Last() *goaudio.FloatBuffer {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.buffers) == 0 {
		return nil
	}
	return r.buffers[len(r.buffers)-1]
}

func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.buffers = nil
}
