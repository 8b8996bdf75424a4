// SPDX-License-Identifier: EPL-2.0

package audio

// Source streams interleaved PCM frames. Generated sounds are exposed as a
// Source through BufferSource so they can be resampled or downmixed before
// reaching a sink.
type Source interface {
	// SampleRate of the PCM stream in Hz.
	SampleRate() int
	// Channels count (e.g., 1=mono, 2=stereo).
	Channels() int
	// ReadSamples fills dst with interleaved float32 samples.
	// Returns number of float32 values written (not frames). When n == 0 with err == io.EOF, the stream is finished.
	ReadSamples(dst []float32) (n int, err error)

	BufSize() int

	// Close releases any resources.
	Close() error
}
