//go:build headless

// SPDX-License-Identifier: EPL-2.0

package sink

import (
	"context"
	"fmt"
	"sync"
)

// Player is the headless stand-in for the device backed Player. It
// validates and renders sounds exactly like the real one, then discards
// them.
type Player struct {
	sampleRate int
	channels   int
	policy     Policy

	mu     sync.Mutex
	closed bool
}

func NewPlayer(sampleRate, channels int, policy Policy) (*Player, error) {
	if policy != Clip && policy != Normalize {
		return nil, fmt.Errorf("%w: %v", ErrUnknownPolicy, policy)
	}

	return &Player{
		sampleRate: sampleRate,
		channels:   channels,
		policy:     policy,
	}, nil
}

func (p *Player) SampleRate() int { return p.sampleRate }
func (p *Player) Channels() int   { return p.channels }

func (p *Player) Play(ctx context.Context, sampleRate int, channels ...[]float64) error {
	p.mu.Lock()
	closed := p.closed
	p.mu.Unlock()
	if closed {
		return ErrClosed
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	buf, err := Prepare(sampleRate, p.policy, channels...)
	if err != nil {
		return err
	}

	_, err = devicePCM(sampleRate, Deinterleave(buf), p.sampleRate, p.channels)

	return err
}

func (p *Player) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.closed = true

	return nil
}
