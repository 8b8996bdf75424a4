// SPDX-License-Identifier: EPL-2.0

package synth

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Shape selects the oscillator waveform.
type Shape int

const (
	Sine Shape = iota
	Triangle
	Sawtooth
	Tan
	Noise
)

var shapeNames = [...]string{"sine", "triangle", "sawtooth", "tan", "noise"}

func (s Shape) Valid() bool { return s >= Sine && s <= Noise }

func (s Shape) String() string {
	if !s.Valid() {
		return "shape(" + strconv.Itoa(int(s)) + ")"
	}
	return shapeNames[s]
}

// MarshalText encodes the shape by name.
func (s Shape) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, &ParamError{Field: "shape", Value: float64(s), Reason: "unknown wave shape"}
	}
	return []byte(shapeNames[s]), nil
}

// UnmarshalText accepts either a shape name or its ZzFX number (0-4).
func (s *Shape) UnmarshalText(text []byte) error {
	v := strings.ToLower(strings.TrimSpace(string(text)))
	for i, name := range shapeNames {
		if v == name {
			*s = Shape(i)
			return nil
		}
	}

	n, err := strconv.Atoi(v)
	if err != nil || !Shape(n).Valid() {
		return fmt.Errorf("%w: unknown wave shape %q", ErrInvalidParameter, v)
	}
	*s = Shape(n)

	return nil
}

// Eval returns the raw oscillator value at phase t (radians), in [-1, 1].
func (s Shape) Eval(t float64) float64 {
	switch s {
	case Triangle:
		return 1 - 4*math.Abs(roundHalfUp(t/twoPi)-t/twoPi)
	case Sawtooth:
		return 1 - math.Mod(math.Mod(2*t/twoPi, 2)+2, 2)
	case Tan:
		return math.Max(math.Min(math.Tan(t), 1), -1)
	case Noise:
		return math.Sin(math.Pow(math.Mod(t, twoPi), 3))
	default:
		return math.Sin(t)
	}
}

// roundHalfUp rounds .5 toward +Inf. math.Round rounds away from zero,
// which shifts the triangle for negative phases.
func roundHalfUp(x float64) float64 {
	return math.Floor(x + 0.5)
}

// sign treats zero as negative; |0|^curve keeps the product at zero.
func sign(v float64) float64 {
	if v > 0 {
		return 1
	}
	return -1
}
