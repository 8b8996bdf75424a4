// SPDX-License-Identifier: EPL-2.0

// Package sfxsynth generates procedural sound effects from a small set of
// ZzFX compatible parameters.
//
// The package offers convenience entry points over its subpackages:
//
//   - synth: parameters, normalization and sample generation
//   - audio: streaming sources, resampling and channel mixing
//   - sink: clipping policy, PCM buffers and device playback
//   - preset: named parameter sets loaded from YAML
//
// # Quick Start
//
// Render a sound into float samples at 44.1kHz:
//
//	p, _ := synth.ParseZzFX(",,925,.04,.3,.6,1,.3,,6.27,-184,.09,.05")
//	samples, err := sfxsynth.Render(p, nil)
//
// Or straight to 16-bit mono PCM at another rate:
//
//	pcm16, rate, err := sfxsynth.RenderMono16(p, 8000, synth.NewRand(42))
//
// # Playback
//
// Any sink.Sink can play a sound. sink.Player drives the audio device
// (build with the headless tag to stub it out), sink.Recorder keeps the
// prepared buffers in memory:
//
//	player, _ := sink.NewPlayer(48000, 2, sink.Normalize)
//	defer player.Close()
//
//	err := sfxsynth.Play(ctx, player, p, nil)
//
// # Randomness
//
// Every render draws one random value to jitter the frequency by
// Params.Randomness. Pass nil to use a process-wide source, synth.NewRand
// for a reproducible one, or synth.FixedRand(0.5) to disable the jitter.
//
// See the individual subpackages for more detailed documentation.
package sfxsynth
