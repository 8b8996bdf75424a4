// SPDX-License-Identifier: EPL-2.0

package sink

import (
	"context"
	"time"
)

// playback is the part of a device player that waitPlayback drives.
// *oto.Player satisfies it.
type playback interface {
	IsPlaying() bool
	Pause()
}

// waitPlayback polls pb every interval until it stops playing. A done ctx
// or a closed sink pauses pb and ends the wait early.
func waitPlayback(ctx context.Context, closed <-chan struct{}, pb playback, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for pb.IsPlaying() {
		select {
		case <-ctx.Done():
			pb.Pause()
			return ctx.Err()
		case <-closed:
			pb.Pause()
			return ErrClosed
		case <-ticker.C:
		}
	}

	return nil
}
