// SPDX-License-Identifier: EPL-2.0

// Package sink delivers generated sounds to their consumer.
//
// A Sink accepts one sample slice per channel at a given sample rate. It
// owns everything downstream of synthesis: buffer creation, the
// clipping/normalization policy and playback. Sinks are passed explicitly
// to callers; the package keeps no global audio device.
//
//	player, err := sink.NewPlayer(48000, 2, sink.Clip)
//	if err != nil {
//	    // no audio device
//	}
//	defer player.Close()
//
//	err = player.Play(ctx, synth.DefaultSampleRate, samples)
//
// Player resamples and up/downmixes to the device format. Recorder keeps
// the prepared go-audio buffers in memory, which suits tests and tools that
// post-process sounds.
//
// Build with the headless tag to replace the oto backed Player with a
// silent one.
package sink
