// SPDX-License-Identifier: EPL-2.0

package sfxsynth_test

import (
	"context"
	"fmt"

	"github.com/ik5/sfxsynth"
	"github.com/ik5/sfxsynth/preset"
	"github.com/ik5/sfxsynth/sink"
	"github.com/ik5/sfxsynth/synth"
)

// Example_render generates the default sound without frequency jitter.
func Example_render() {
	samples, err := sfxsynth.Render(synth.Default(), synth.FixedRand(0.5))
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Printf("Generated %d samples at %d Hz\n", len(samples), synth.DefaultSampleRate)
	// Output: Generated 4419 samples at 44100 Hz
}

// Example_renderMono16 converts a ZzFX sound to telephony-rate PCM.
func Example_renderMono16() {
	p, err := synth.ParseZzFX("zzfx(...[,0,440,,,.1])")
	if err != nil {
		fmt.Println(err)
		return
	}

	pcm16, rate, err := sfxsynth.RenderMono16(p, 22050, nil)
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Printf("Output: %d samples at %d Hz\n", len(pcm16), rate)
	// Output: Output: 2210 samples at 22050 Hz
}

// Example_play plays a bundled preset into an in-memory sink.
func Example_play() {
	p, err := preset.Builtin().Get("blip")
	if err != nil {
		fmt.Println(err)
		return
	}

	rec := sink.NewRecorder(sink.Normalize)
	if err := sfxsynth.Play(context.Background(), rec, p, nil); err != nil {
		fmt.Println(err)
		return
	}

	buf := rec.Last()
	fmt.Printf("Recorded %d channel(s), %d frames\n", buf.Format.NumChannels, buf.NumFrames())
	// Output: Recorded 1 channel(s), 2214 frames
}
