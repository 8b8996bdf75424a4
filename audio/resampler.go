// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"

	"github.com/ik5/sfxsynth/utils"
)

// Resampler streams from src to a target sample rate using cubic
// interpolation. Works on interleaved samples; preserves channel count.
// A one-pole low-pass filter smooths the input when downsampling.
type Resampler struct {
	src      Source
	dstRate  int
	ratio    float64 // source frames per output frame
	channels int

	// window holds the frames at t-1, t0, t+1 and t+2 around pos.
	window [4][]float32
	valid  [4]bool
	primed bool
	eof    bool
	pos    float64 // fractional position between window[1] and window[2]

	frame []float32 // single-frame read buffer

	lowPass      bool
	filterAlpha  float32
	filterState  []float32
	filterPrimed bool
}

func NewResampler(src Source, dstRate int) *Resampler {
	channels := src.Channels()
	ratio := float64(src.SampleRate()) / float64(dstRate)

	r := &Resampler{
		src:         src,
		dstRate:     dstRate,
		ratio:       ratio,
		channels:    channels,
		frame:       make([]float32, channels),
		lowPass:     ratio > 1.0,
		filterAlpha: 0.5,
		filterState: make([]float32, channels),
	}

	for i := range r.window {
		r.window[i] = make([]float32, channels)
	}

	return r
}

func (r *Resampler) SampleRate() int { return r.dstRate }
func (r *Resampler) Channels() int   { return r.channels }
func (r *Resampler) BufSize() int    { return r.src.BufSize() }

func (r *Resampler) Close() error {
	if err := r.src.Close(); err != nil {
		return fmt.Errorf("closing resampler source: %w", err)
	}
	return nil
}

// readFrame reads the next source frame into dst, reporting false once the
// source is exhausted.
func (r *Resampler) readFrame(dst []float32) (bool, error) {
	if r.eof {
		return false, nil
	}

	n, err := r.src.ReadSamples(r.frame)
	if err == io.EOF {
		r.eof = true
	} else if err != nil {
		return false, fmt.Errorf("reading source frame: %w", err)
	}

	if n < r.channels {
		return false, nil
	}
	copy(dst, r.frame)

	if r.lowPass {
		if !r.filterPrimed {
			// Start from the first frame to avoid a warm-up transient.
			copy(r.filterState, dst)
			r.filterPrimed = true
		}
		for c := range dst {
			dst[c] = r.filterAlpha*dst[c] + (1-r.filterAlpha)*r.filterState[c]
			r.filterState[c] = dst[c]
		}
	}

	return true, nil
}

// prime fills the window with the first three frames; the t-1 slot repeats
// the first frame.
func (r *Resampler) prime() error {
	ok, err := r.readFrame(r.window[1])
	if err != nil {
		return err
	}
	if !ok {
		return io.EOF
	}

	copy(r.window[0], r.window[1])
	r.valid[0], r.valid[1] = true, true

	for i := 2; i < len(r.window); i++ {
		if r.valid[i], err = r.readFrame(r.window[i]); err != nil {
			return err
		}
	}
	r.primed = true

	return nil
}

// advance moves the window one source frame forward.
func (r *Resampler) advance() error {
	w := &r.window
	w[0], w[1], w[2], w[3] = w[1], w[2], w[3], w[0]
	r.valid[0], r.valid[1], r.valid[2] = r.valid[1], r.valid[2], r.valid[3]

	var err error
	r.valid[3], err = r.readFrame(w[3])

	return err
}

// interpolate writes one output frame at the current position. Missing
// neighbours at the stream edges repeat the nearest valid frame.
func (r *Resampler) interpolate(dst []float32) {
	y1 := r.window[1]
	y0, y2 := y1, y1
	if r.valid[0] {
		y0 = r.window[0]
	}
	if r.valid[2] {
		y2 = r.window[2]
	}
	y3 := y2
	if r.valid[3] {
		y3 = r.window[3]
	}

	alpha := float32(r.pos)
	for c := range dst {
		dst[c] = utils.CubicInterpolate(y0[c], y1[c], y2[c], y3[c], alpha)
	}
}

// ReadSamples produces dst samples at the target rate.
// dst length should be a multiple of r.Channels().
func (r *Resampler) ReadSamples(dst []float32) (int, error) {
	if len(dst)%r.channels != 0 {
		return 0, ErrInvalidDstSize
	}

	if !r.primed {
		if err := r.prime(); err != nil {
			return 0, err
		}
	}

	frames := len(dst) / r.channels
	written := 0

	for written < frames {
		for r.pos >= 1.0 {
			r.pos -= 1.0
			if err := r.advance(); err != nil {
				return written * r.channels, err
			}
		}

		if !r.valid[1] {
			return written * r.channels, io.EOF
		}

		start := written * r.channels
		r.interpolate(dst[start : start+r.channels])

		written++
		r.pos += r.ratio
	}

	return written * r.channels, nil
}
