// SPDX-License-Identifier: EPL-2.0

package synth

import (
	"fmt"
	"math"
)

// generator is the per-call state of one synthesis pass.
type generator struct {
	ps *ParameterSet

	frequency      float64
	startFrequency float64
	slide          float64
	phase          float64
	modPhase       float64

	jumpCounter   int // 0 once the pitch jump has fired
	repeatCounter int
	crushCounter  int
	sample        float64

	out []float64
}

func newGenerator(ps *ParameterSet) *generator {
	return &generator{
		ps:             ps,
		frequency:      ps.frequency,
		startFrequency: ps.frequency,
		slide:          ps.slide,
		jumpCounter:    1,
		out:            make([]float64, 0, ps.length),
	}
}

// Generate synthesizes ps into a new buffer of exactly ps.Len() samples.
func Generate(ps *ParameterSet) []float64 {
	g := newGenerator(ps)
	for i := 0; i < ps.length; i++ {
		g.step(i)
	}
	return g.out
}

// Generate is shorthand for Generate(ps).
func (ps *ParameterSet) Generate() []float64 { return Generate(ps) }

// GenerateChannels builds one ParameterSet per channel from p, so every
// channel draws its own frequency jitter, and returns equal-length buffers.
func GenerateChannels(p Params, channels int, rng Rand) ([][]float64, error) {
	if channels <= 0 {
		return nil, &ParamError{Field: "channels", Value: float64(channels), Reason: "must be positive"}
	}

	out := make([][]float64, channels)
	for c := range channels {
		ps, err := NewParameterSet(p, rng)
		if err != nil {
			return nil, fmt.Errorf("channel %d: %w", c, err)
		}
		out[c] = Generate(ps)
	}

	return out, nil
}

// step computes sample i and appends it to the output.
func (g *generator) step(i int) {
	ps := g.ps

	if g.recompute() {
		s := ps.shape.Eval(g.phase)
		s = ps.tremoloAt(i) *
			sign(s) * math.Pow(math.Abs(s), ps.shapeCurve) *
			ps.volume * MasterVolume *
			ps.envelope(i)

		if ps.delay != 0 {
			s = s/2 + g.echo(i)/2
		}
		g.sample = s
	}

	g.slide += ps.deltaSlide
	g.frequency += g.slide
	f := g.frequency * math.Cos(ps.modulation*g.modPhase)
	g.modPhase++
	g.phase += f - f*ps.noise*noiseJitter(i)

	if g.jumpCounter != 0 {
		g.jumpCounter++
		if float64(g.jumpCounter) > ps.pitchJumpTime {
			g.frequency += ps.pitchJump
			g.startFrequency += ps.pitchJump
			g.jumpCounter = 0
		}
	}

	if ps.repeatTime != 0 {
		g.repeatCounter++
		if g.repeatCounter%ps.repeatTime == 0 {
			g.frequency = g.startFrequency
			g.slide = ps.slide
			if g.jumpCounter == 0 {
				g.jumpCounter = 1
			}
		}
	}

	g.out = append(g.out, g.sample)
}

// recompute advances the crush counter and reports whether a fresh sample
// is due. An interval of zero recomputes every sample.
func (g *generator) recompute() bool {
	g.crushCounter++
	if g.ps.crushInterval == 0 {
		return true
	}
	return g.crushCounter%g.ps.crushInterval == 0
}

// echo is the feedback term read from delay samples back, faded over the
// final delay samples of the buffer.
func (g *generator) echo(i int) float64 {
	ps := g.ps
	x := float64(i)
	if ps.delay > x {
		return 0
	}

	tail := 1.0
	if length := float64(ps.length); x >= length-ps.delay {
		tail = (length - x) / ps.delay
	}

	return tail * g.out[int(x-ps.delay)]
}
