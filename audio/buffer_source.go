// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
)

// BufferSource serves already generated channels as an interleaved Source.
// The channel slices are read, never modified.
type BufferSource struct {
	sampleRate int
	channels   [][]float64
	frames     int
	pos        int // next frame
}

// NewBufferSource wraps equal-length per-channel sample buffers.
func NewBufferSource(sampleRate int, channels ...[]float64) (*BufferSource, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSampleRate, sampleRate)
	}

	frames, err := FrameCount(channels...)
	if err != nil {
		return nil, err
	}

	return &BufferSource{
		sampleRate: sampleRate,
		channels:   channels,
		frames:     frames,
	}, nil
}

// FrameCount returns the common length of channels.
func FrameCount(channels ...[]float64) (int, error) {
	if len(channels) == 0 {
		return 0, ErrNoChannels
	}

	frames := len(channels[0])
	for i, ch := range channels[1:] {
		if len(ch) != frames {
			return 0, fmt.Errorf("%w: channel %d has %d samples, channel 0 has %d",
				ErrChannelLengthMismatch, i+1, len(ch), frames)
		}
	}

	return frames, nil
}

func (b *BufferSource) SampleRate() int { return b.sampleRate }
func (b *BufferSource) Channels() int   { return len(b.channels) }
func (b *BufferSource) BufSize() int    { return 4096 }
func (b *BufferSource) Close() error    { return nil }

// Frames is the total number of frames in the buffer.
func (b *BufferSource) Frames() int { return b.frames }

// Reset rewinds the source so it can be played again.
func (b *BufferSource) Reset() { b.pos = 0 }

func (b *BufferSource) ReadSamples(dst []float32) (int, error) {
	channels := len(b.channels)
	if len(dst)%channels != 0 {
		return 0, ErrInvalidDstSize
	}
	if b.pos >= b.frames {
		return 0, io.EOF
	}

	n := min(len(dst)/channels, b.frames-b.pos)
	for f := range n {
		base := f * channels
		for c, ch := range b.channels {
			dst[base+c] = float32(ch[b.pos+f])
		}
	}
	b.pos += n

	if b.pos >= b.frames {
		return n * channels, io.EOF
	}

	return n * channels, nil
}
