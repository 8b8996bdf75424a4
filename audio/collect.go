// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
)

// Collect drains src and returns every interleaved sample it produced.
// bufferSize is the read chunk size; values below the channel count are
// raised to one frame.
func Collect(src Source, bufferSize int) ([]float32, error) {
	channels := src.Channels()
	bufferSize -= bufferSize % channels
	if bufferSize < channels {
		bufferSize = channels
	}

	out := make([]float32, 0, src.BufSize())
	buf := make([]float32, bufferSize)

	for {
		n, err := src.ReadSamples(buf)
		out = append(out, buf[:n]...)

		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return nil, fmt.Errorf("collecting samples: %w", err)
		}
	}
}
