//go:build !headless

// SPDX-License-Identifier: EPL-2.0

package sink

import (
	"bytes"
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"
)

// Player is a Sink backed by the system audio device through oto.
// oto allows a single context per process, so create one Player and share
// it; Play may be called from several goroutines and sounds overlap.
type Player struct {
	ctx        *oto.Context
	sampleRate int
	channels   int
	policy     Policy

	mu     sync.Mutex
	closed bool
	done   chan struct{} // closed by Close to end in-flight plays
}

// NewPlayer opens the audio device at sampleRate with the given channel
// count and waits until it is ready.
func NewPlayer(sampleRate, channels int, policy Policy) (*Player, error) {
	if policy != Clip && policy != Normalize {
		return nil, fmt.Errorf("%w: %v", ErrUnknownPolicy, policy)
	}

	op := &oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: channels,
		Format:       oto.FormatFloat32LE,
	}

	ctx, ready, err := oto.NewContext(op)
	if err != nil {
		return nil, fmt.Errorf("opening audio device: %w", err)
	}
	<-ready

	return &Player{
		ctx:        ctx,
		sampleRate: sampleRate,
		channels:   channels,
		policy:     policy,
		done:       make(chan struct{}),
	}, nil
}

func (p *Player) SampleRate() int { return p.sampleRate }
func (p *Player) Channels() int   { return p.channels }

// Play blocks until the sound has finished or ctx is done. A Close during
// playback stops the sound and Play returns ErrClosed.
func (p *Player) Play(ctx context.Context, sampleRate int, channels ...[]float64) error {
	p.mu.Lock()
	closed := p.closed
	p.mu.Unlock()
	if closed {
		return ErrClosed
	}

	buf, err := Prepare(sampleRate, p.policy, channels...)
	if err != nil {
		return err
	}

	pcm, err := devicePCM(sampleRate, Deinterleave(buf), p.sampleRate, p.channels)
	if err != nil {
		return err
	}

	player := p.ctx.NewPlayer(bytes.NewReader(pcm))
	defer player.Close()

	player.Play()

	return waitPlayback(ctx, p.done, player, 10*time.Millisecond)
}

// Close ends in-flight plays and suspends the device.
func (p *Player) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return nil
	}
	p.closed = true
	close(p.done)

	if err := p.ctx.Suspend(); err != nil {
		return fmt.Errorf("suspending audio device: %w", err)
	}

	return nil
}
