// SPDX-License-Identifier: EPL-2.0

// Package audio provides the streaming primitives that carry generated
// sounds to a sink.
//
// This package contains:
//   - Source interface for interleaved float32 PCM streams
//   - BufferSource, which exposes generated channels as a Source
//   - Resampler for sample rate conversion
//   - MonoMixer for channel mixing
//   - Collect, which drains a Source into a slice
//
// # Source Interface
//
// The Source interface is the foundation of the pipeline:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// # Feeding Generated Sounds
//
// Synthesized samples are float64 slices, one per channel. BufferSource
// interleaves them:
//
//	src, err := audio.NewBufferSource(synth.DefaultSampleRate, left, right)
//
// # Resampling
//
// The Resampler changes the sample rate using cubic (Catmull-Rom)
// interpolation, so a sound generated at 44.1kHz can be played by a device
// running at 48kHz:
//
//	resampler := audio.NewResampler(src, 48000)
//	samples, err := audio.Collect(resampler, 4096)
//
// # Channel Mixing
//
// The MonoMixer converts multi-channel audio to mono by averaging:
//
//	mono := audio.NewMonoMixer(src)
//
// # Error Handling
//
// Sources return io.EOF when no more data is available. Other errors
// indicate problems with the source or processing:
//
//	for {
//	    n, err := source.ReadSamples(buf)
//	    if err == io.EOF {
//	        break // Normal end of stream
//	    }
//	    if err != nil {
//	        return err // Processing error
//	    }
//	    // Process n samples from buf
//	}
package audio
