// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"io"
	"math"
	"testing"

	"github.com/ik5/sfxsynth/internal/audiotest"
)

func readAll(t *testing.T, src Source, bufSize int) []float32 {
	t.Helper()

	out, err := Collect(src, bufSize)
	if err != nil {
		t.Fatalf("Collect() error = %v", err)
	}
	return out
}

func TestResampler_Metadata(t *testing.T) {
	t.Parallel()

	r := NewResampler(audiotest.NewSilentSource(44100, 2, 1000), 8000)

	if r.SampleRate() != 8000 {
		t.Errorf("SampleRate() = %d, want 8000", r.SampleRate())
	}
	if r.Channels() != 2 {
		t.Errorf("Channels() = %d, want 2", r.Channels())
	}
	if r.BufSize() != 4096 {
		t.Errorf("BufSize() = %d, want 4096", r.BufSize())
	}
}

func TestResampler_SameRateIsExact(t *testing.T) {
	t.Parallel()

	src := audiotest.NewRampSource(8000, 1, 100)
	out := readAll(t, NewResampler(src, 8000), 16)

	if len(out) != 100 {
		t.Fatalf("len = %d, want 100", len(out))
	}
	for i, v := range out {
		if v != float32(i) {
			t.Fatalf("out[%d] = %v, want %d", i, v, i)
		}
	}
}

func TestResampler_OutputLength(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		srcRate int
		dstRate int
		frames  int
		want    int
	}{
		{"downsample 48k to 8k", 48000, 8000, 48000, 8000},
		{"downsample 44.1k to 22.05k", 44100, 22050, 4419, 2210},
		{"upsample 8k to 16k", 8000, 16000, 8000, 16000},
		{"upsample 22.05k to 44.1k", 22050, 44100, 100, 200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			src := audiotest.NewSineSource(tt.srcRate, 1, tt.frames, 440)
			out := readAll(t, NewResampler(src, tt.dstRate), 1024)

			if len(out) != tt.want {
				t.Errorf("len = %d, want %d", len(out), tt.want)
			}
			for i, s := range out {
				if s < -1.5 || s > 1.5 {
					t.Fatalf("out[%d] = %v, outside [-1.5, 1.5]", i, s)
				}
			}
		})
	}
}

func TestResampler_UpsampleInterpolates(t *testing.T) {
	t.Parallel()

	src := audiotest.NewRampSource(8000, 1, 10)
	out := readAll(t, NewResampler(src, 16000), 64)

	// Catmull-Rom reproduces a linear ramp exactly away from the edges.
	for i := 2; i < 14; i++ {
		want := float64(i) / 2
		if math.Abs(float64(out[i])-want) > 1e-5 {
			t.Errorf("out[%d] = %v, want %v", i, out[i], want)
		}
	}
}

func TestResampler_StereoPreserved(t *testing.T) {
	t.Parallel()

	src := audiotest.NewMockSource(44100, 2, 1000, func(_, channel int) float32 {
		if channel == 0 {
			return 0.3
		}
		return 0.7
	})

	out := readAll(t, NewResampler(src, 8000), 20)
	if len(out)%2 != 0 || len(out) == 0 {
		t.Fatalf("len = %d, want a positive even count", len(out))
	}

	for f := 0; f < len(out)/2; f++ {
		if math.Abs(float64(out[2*f]-0.3)) > 1e-5 {
			t.Errorf("frame %d left = %v, want 0.3", f, out[2*f])
		}
		if math.Abs(float64(out[2*f+1]-0.7)) > 1e-5 {
			t.Errorf("frame %d right = %v, want 0.7", f, out[2*f+1])
		}
	}
}

func TestResampler_EOF(t *testing.T) {
	t.Parallel()

	r := NewResampler(audiotest.NewSilentSource(44100, 1, 100), 8000)
	_ = readAll(t, r, 1024)

	for range 3 {
		n, err := r.ReadSamples(make([]float32, 16))
		if n != 0 || err != io.EOF {
			t.Errorf("ReadSamples() after end = %d, %v, want 0, io.EOF", n, err)
		}
	}
}

func TestResampler_EmptySource(t *testing.T) {
	t.Parallel()

	r := NewResampler(audiotest.NewSilentSource(44100, 1, 0), 8000)
	n, err := r.ReadSamples(make([]float32, 16))
	if n != 0 || err != io.EOF {
		t.Errorf("ReadSamples() = %d, %v, want 0, io.EOF", n, err)
	}
}

func TestResampler_InvalidDstSize(t *testing.T) {
	t.Parallel()

	r := NewResampler(audiotest.NewSilentSource(44100, 2, 100), 8000)
	if _, err := r.ReadSamples(make([]float32, 3)); !errors.Is(err, ErrInvalidDstSize) {
		t.Errorf("ReadSamples() error = %v, want ErrInvalidDstSize", err)
	}
}

func TestResampler_SourceErrors(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	r := NewResampler(&audiotest.FailingSource{Rate: 44100, Chan: 1, Err: boom}, 8000)

	if _, err := r.ReadSamples(make([]float32, 16)); !errors.Is(err, boom) {
		t.Errorf("ReadSamples() error = %v, want wrapped boom", err)
	}
	if err := r.Close(); !errors.Is(err, boom) {
		t.Errorf("Close() error = %v, want wrapped boom", err)
	}
}

func BenchmarkResampler_Downsample(b *testing.B) {
	buf := make([]float32, 4096)

	b.ReportAllocs()
	for b.Loop() {
		r := NewResampler(audiotest.NewSineSource(44100, 1, 44100, 440), 8000)
		for {
			if _, err := r.ReadSamples(buf); err != nil {
				break
			}
		}
	}
}
