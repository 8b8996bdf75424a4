// SPDX-License-Identifier: EPL-2.0

package synth

import (
	"errors"
	"math"
	"testing"
)

func TestShape_Eval(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		shape Shape
		t     float64
		want  float64
	}{
		{"sine zero", Sine, 0, 0},
		{"sine quarter", Sine, math.Pi / 2, 1},
		{"triangle zero", Triangle, 0, 1},
		{"triangle half", Triangle, math.Pi, -1},
		{"triangle quarter", Triangle, math.Pi / 2, 0},
		{"sawtooth zero", Sawtooth, 0, 1},
		{"sawtooth quarter", Sawtooth, math.Pi / 2, 0.5},
		{"sawtooth negative", Sawtooth, -math.Pi / 2, -0.5},
		{"tan clamps high", Tan, 1.5, 1},
		{"tan clamps low", Tan, -1.5, -1},
		{"tan passes small", Tan, 0.5, math.Tan(0.5)},
		{"noise zero", Noise, 0, 0},
		{"noise cube", Noise, 1, math.Sin(1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := tt.shape.Eval(tt.t)
			if math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("%v.Eval(%v) = %v, want %v", tt.shape, tt.t, got, tt.want)
			}
		})
	}
}

func TestShape_EvalBounded(t *testing.T) {
	t.Parallel()

	for shape := Sine; shape <= Noise; shape++ {
		for x := -60.0; x < 60; x += 0.003 {
			if v := shape.Eval(x); v < -1 || v > 1 || math.IsNaN(v) {
				t.Fatalf("%v.Eval(%v) = %v, want in [-1, 1]", shape, x, v)
			}
		}
	}
}

func TestShape_Text(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    Shape
		wantErr bool
	}{
		{"sine", Sine, false},
		{"Triangle", Triangle, false},
		{" sawtooth ", Sawtooth, false},
		{"tan", Tan, false},
		{"noise", Noise, false},
		{"3", Tan, false},
		{"0", Sine, false},
		{"5", 0, true},
		{"square", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()

			var s Shape
			err := s.UnmarshalText([]byte(tt.in))
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidParameter) {
					t.Errorf("UnmarshalText(%q) error = %v, want ErrInvalidParameter", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("UnmarshalText(%q) error = %v", tt.in, err)
			}
			if s != tt.want {
				t.Errorf("UnmarshalText(%q) = %v, want %v", tt.in, s, tt.want)
			}

			text, err := s.MarshalText()
			if err != nil {
				t.Fatalf("MarshalText() error = %v", err)
			}
			if string(text) != s.String() {
				t.Errorf("MarshalText() = %q, want %q", text, s.String())
			}
		})
	}

	if _, err := Shape(9).MarshalText(); err == nil {
		t.Error("MarshalText(9) error = nil, want error")
	}
	if got := Shape(9).String(); got != "shape(9)" {
		t.Errorf("String() = %q, want shape(9)", got)
	}
}

func TestSign(t *testing.T) {
	t.Parallel()

	if sign(0.1) != 1 || sign(-0.1) != -1 || sign(0) != -1 {
		t.Error("sign() does not treat zero as negative")
	}
}
