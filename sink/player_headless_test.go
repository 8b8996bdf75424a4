//go:build headless

// SPDX-License-Identifier: EPL-2.0

package sink

import (
	"context"
	"errors"
	"testing"
)

func TestHeadlessPlayer(t *testing.T) {
	t.Parallel()

	p, err := NewPlayer(48000, 2, Normalize)
	if err != nil {
		t.Fatalf("NewPlayer() error = %v", err)
	}
	var _ Sink = p

	if p.SampleRate() != 48000 || p.Channels() != 2 {
		t.Errorf("device = %d Hz x %d, want 48000 Hz x 2", p.SampleRate(), p.Channels())
	}

	if err := p.Play(context.Background(), 44100, []float64{0.1, 0.2, 3}); err != nil {
		t.Errorf("Play() error = %v", err)
	}

	if err := p.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if err := p.Play(context.Background(), 44100, []float64{0}); !errors.Is(err, ErrClosed) {
		t.Errorf("Play() after Close error = %v, want ErrClosed", err)
	}
}

func TestHeadlessPlayer_UnknownPolicy(t *testing.T) {
	t.Parallel()

	if _, err := NewPlayer(44100, 1, Policy(5)); !errors.Is(err, ErrUnknownPolicy) {
		t.Errorf("NewPlayer() error = %v, want ErrUnknownPolicy", err)
	}
}
