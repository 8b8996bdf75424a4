// SPDX-License-Identifier: EPL-2.0

package sink

import (
	"context"
	"fmt"

	goaudio "github.com/go-audio/audio"
	"github.com/ik5/sfxsynth/audio"
	"github.com/ik5/sfxsynth/utils"
)

// Sink consumes generated channels at sampleRate.
type Sink interface {
	Play(ctx context.Context, sampleRate int, channels ...[]float64) error
}

// Policy decides how samples outside [-1, 1] are handled.
type Policy int

const (
	// Clip hard-limits every sample to [-1, 1].
	Clip Policy = iota
	// Normalize scales all channels by the same factor so the peak is 1.
	// Sounds already within range are left untouched.
	Normalize
)

func (p Policy) String() string {
	switch p {
	case Clip:
		return "clip"
	case Normalize:
		return "normalize"
	default:
		return fmt.Sprintf("policy(%d)", int(p))
	}
}

// ParsePolicy is the inverse of Policy.String.
func ParsePolicy(s string) (Policy, error) {
	switch s {
	case "clip":
		return Clip, nil
	case "normalize":
		return Normalize, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownPolicy, s)
	}
}

// apply validates channels and returns policy-adjusted copies.
func (p Policy) apply(channels [][]float64) ([][]float64, error) {
	if _, err := audio.FrameCount(channels...); err != nil {
		return nil, err
	}

	scale := 1.0
	switch p {
	case Clip:
	case Normalize:
		if peak := utils.Peak(channels...); peak > 1 {
			scale = 1 / peak
		}
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownPolicy, p)
	}

	out := make([][]float64, len(channels))
	for c, ch := range channels {
		out[c] = make([]float64, len(ch))
		for i, v := range ch {
			out[c][i] = utils.Clamp(v * scale)
		}
	}

	return out, nil
}

// Prepare validates channels, applies policy and interleaves the result
// into a go-audio buffer.
func Prepare(sampleRate int, policy Policy, channels ...[]float64) (*goaudio.FloatBuffer, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("%w: %d", audio.ErrInvalidSampleRate, sampleRate)
	}

	adjusted, err := policy.apply(channels)
	if err != nil {
		return nil, fmt.Errorf("preparing buffer: %w", err)
	}

	frames := len(adjusted[0])
	data := make([]float64, frames*len(adjusted))
	for c, ch := range adjusted {
		for i, v := range ch {
			data[i*len(adjusted)+c] = v
		}
	}

	return &goaudio.FloatBuffer{
		Format: &goaudio.Format{
			NumChannels: len(adjusted),
			SampleRate:  sampleRate,
		},
		Data: data,
	}, nil
}

// ToPCM16 converts a prepared buffer to 16-bit integer PCM.
func ToPCM16(buf *goaudio.FloatBuffer) *goaudio.IntBuffer {
	data := make([]int, len(buf.Data))
	for i, v := range buf.Data {
		data[i] = int(utils.Float64ToInt16(v))
	}

	return &goaudio.IntBuffer{
		Format:         buf.Format,
		Data:           data,
		SourceBitDepth: 16,
	}
}

// Deinterleave splits a buffer back into per-channel slices.
func Deinterleave(buf *goaudio.FloatBuffer) [][]float64 {
	channels := buf.Format.NumChannels
	frames := buf.NumFrames()

	out := make([][]float64, channels)
	for c := range out {
		out[c] = make([]float64, frames)
		for i := range frames {
			out[c][i] = buf.Data[i*channels+c]
		}
	}

	return out
}
