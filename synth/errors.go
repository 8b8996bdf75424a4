// SPDX-License-Identifier: EPL-2.0

package synth

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidParameter is returned for negative durations, unknown wave
	// shapes, non-finite values and malformed ZzFX strings.
	ErrInvalidParameter = errors.New("invalid parameter")
)

// ParamError names the offending field of a rejected parameter set.
// It unwraps to ErrInvalidParameter.
type ParamError struct {
	Field  string
	Value  float64
	Reason string
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("%s: %s = %v: %s", ErrInvalidParameter, e.Field, e.Value, e.Reason)
}

func (e *ParamError) Unwrap() error { return ErrInvalidParameter }
