// SPDX-License-Identifier: EPL-2.0

package preset

import "errors"

var (
	ErrPresetNotFound = errors.New("preset not found")
	ErrInvalidPreset  = errors.New("invalid preset")
)
