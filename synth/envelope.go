// SPDX-License-Identifier: EPL-2.0

package synth

import "math"

// envelope is the amplitude at sample i: a linear ramp over attack, a fall
// to sustainVolume over decay, a hold over sustain and a linear release.
// It is zero from len-delay onwards, leaving the tail to the echo tap.
func (ps *ParameterSet) envelope(i int) float64 {
	x := float64(i)
	length := float64(ps.length)

	switch {
	case x < ps.attack:
		return x / ps.attack
	case x < ps.attack+ps.decay:
		return 1 - (x-ps.attack)/ps.decay*(1-ps.sustainVolume)
	case x < ps.attack+ps.decay+ps.sustain:
		return ps.sustainVolume
	case x < length-ps.delay:
		return (length - x - ps.delay) / ps.release * ps.sustainVolume
	default:
		return 0
	}
}

// tremoloAt is the amplitude modulation factor, one cycle per repeat period.
func (ps *ParameterSet) tremoloAt(i int) float64 {
	if ps.repeatTime == 0 {
		return 1
	}
	return 1 - ps.tremolo + ps.tremolo*math.Sin(twoPi*float64(i)/float64(ps.repeatTime))
}

// noiseJitter is the per-sample phase perturbation scale, in (-1, 1].
func noiseJitter(i int) float64 {
	return 1 - math.Mod((math.Sin(float64(i))+1)*1e9, 2)
}
