// SPDX-License-Identifier: EPL-2.0

package sink

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/ik5/sfxsynth/audio"
)

// devicePCM renders channels recorded at srcRate as little-endian float32
// frames for a device running at dstRate with dstChannels. Channel counts
// that differ are downmixed to mono first, then mono is copied to every
// device channel.
func devicePCM(srcRate int, channels [][]float64, dstRate, dstChannels int) ([]byte, error) {
	buf, err := audio.NewBufferSource(srcRate, channels...)
	if err != nil {
		return nil, err
	}

	var src audio.Source = buf

	if srcRate != dstRate {
		src = audio.NewResampler(src, dstRate)
	}
	if src.Channels() != dstChannels {
		src = audio.NewMonoMixer(src)
	}

	samples, err := audio.Collect(src, 4096)
	if err != nil {
		return nil, fmt.Errorf("rendering device pcm: %w", err)
	}

	fanOut := 1
	if src.Channels() == 1 {
		fanOut = dstChannels
	}

	out := make([]byte, 0, len(samples)*fanOut*4)
	for _, s := range samples {
		bits := math.Float32bits(s)
		for range fanOut {
			out = binary.LittleEndian.AppendUint32(out, bits)
		}
	}

	return out, nil
}
