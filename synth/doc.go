// SPDX-License-Identifier: EPL-2.0

// Package synth generates short procedural sound effects.
//
// A sound is described by a small set of numeric controls (Params): pitch,
// an attack/decay/sustain/release envelope, an oscillator shape, pitch glide,
// a one-shot pitch jump, repeat/arpeggio behavior, phase noise, time-domain
// bit-crush and a single echo tap. The parameter order and semantics follow
// the ZzFX micro synthesizer, so ZzFX strings can be used directly:
//
//	p, err := synth.ParseZzFX("zzfx(...[,,925,.04,.3,.6,1,.3,,6.27,-184,.09,.05])")
//
// # Generating Samples
//
// Params are first normalized into a ParameterSet, which converts seconds to
// sample counts and applies the frequency jitter exactly once:
//
//	ps, err := synth.NewParameterSet(synth.Default(), synth.NewRand(1))
//	if err != nil {
//	    // errors.Is(err, synth.ErrInvalidParameter)
//	}
//	samples := ps.Generate() // []float64, ps.Len() values at ps.SampleRate()
//
// Generation is a pure function of the ParameterSet; the random source is
// only consulted during NewParameterSet. Passing the same draw (for example
// FixedRand(0.5), which cancels the jitter) yields bit-identical output.
//
// Durations whose total length, repeat interval or bit-crush interval would
// exceed MaxSamples are rejected with a *ParamError.
//
// # Output Range
//
// Samples are not clamped. Echo feedback and large Volume values can exceed
// [-1, 1]; clipping or normalization is the job of the sink (see package sink).
package synth
