// SPDX-License-Identifier: EPL-2.0

package sink

import "errors"

var (
	ErrUnknownPolicy = errors.New("unknown clipping policy")
	ErrClosed        = errors.New("sink is closed")
)
