// SPDX-License-Identifier: EPL-2.0

package sfxsynth

import (
	"context"
	"fmt"

	"github.com/ik5/sfxsynth/audio"
	"github.com/ik5/sfxsynth/sink"
	"github.com/ik5/sfxsynth/synth"
	"github.com/ik5/sfxsynth/utils"
)

// Render generates p as mono samples at synth.DefaultSampleRate.
// A nil rng uses the shared random source.
func Render(p synth.Params, rng synth.Rand) ([]float64, error) {
	ps, err := synth.NewParameterSet(p, rng)
	if err != nil {
		return nil, err
	}

	return ps.Generate(), nil
}

// RenderMono16 generates p and converts it to mono 16-bit PCM at
// targetRate. The pipeline is generate -> resample -> mono -> int16; the
// resampler is skipped when targetRate is the synthesis rate.
//
// Returns the samples and the output rate.
func RenderMono16(p synth.Params, targetRate int, rng synth.Rand) ([]int16, int, error) {
	if targetRate <= 0 {
		return nil, targetRate, fmt.Errorf("%w: %d", audio.ErrInvalidSampleRate, targetRate)
	}

	samples, err := Render(p, rng)
	if err != nil {
		return nil, targetRate, err
	}

	buf, err := audio.NewBufferSource(synth.DefaultSampleRate, samples)
	if err != nil {
		return nil, targetRate, err
	}

	var src audio.Source = buf
	if targetRate != synth.DefaultSampleRate {
		src = audio.NewResampler(src, targetRate)
	}
	mono := audio.NewMonoMixer(src)

	out, err := audio.Collect(mono, 4096)
	if err != nil {
		return nil, targetRate, err
	}

	pcm16 := make([]int16, len(out))
	for i, x := range out {
		pcm16[i] = utils.Float32ToInt16(x)
	}

	return pcm16, targetRate, nil
}

// Play renders p and hands it to s as a single channel.
func Play(ctx context.Context, s sink.Sink, p synth.Params, rng synth.Rand) error {
	samples, err := Render(p, rng)
	if err != nil {
		return err
	}

	if err := s.Play(ctx, synth.DefaultSampleRate, samples); err != nil {
		return fmt.Errorf("playing sound: %w", err)
	}

	return nil
}
