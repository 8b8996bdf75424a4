// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrInvalidDstSize        = errors.New("dst size must be multiple of channels")
	ErrNoChannels            = errors.New("at least one channel is required")
	ErrChannelLengthMismatch = errors.New("channels must have equal length")
	ErrInvalidSampleRate     = errors.New("sample rate must be positive")
)
