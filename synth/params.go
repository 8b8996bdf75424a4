// SPDX-License-Identifier: EPL-2.0

package synth

import (
	"math"
	"math/rand/v2"
)

const (
	// DefaultSampleRate is the rate, in Hz, used by NewParameterSet.
	DefaultSampleRate = 44100

	// MasterVolume scales every generated sample.
	MasterVolume = 0.3

	// MinAttackSamples is added to every attack so the onset never starts
	// at full amplitude.
	MinAttackSamples = 9

	// MaxSamples bounds the length of a generated buffer and the repeat and
	// bit-crush intervals, about 100 minutes at DefaultSampleRate.
	MaxSamples = 1 << 28

	twoPi = 2 * math.Pi
)

// Params holds the raw synthesis controls. Durations are in seconds and
// frequencies in Hz; NewParameterSet converts them to the sample domain.
// The zero value is silent, use Default for the documented defaults.
type Params struct {
	Volume        float64 `yaml:"volume"`
	Randomness    float64 `yaml:"randomness"`
	Frequency     float64 `yaml:"frequency"`
	Attack        float64 `yaml:"attack"`
	Sustain       float64 `yaml:"sustain"`
	Release       float64 `yaml:"release"`
	Shape         Shape   `yaml:"shape"`
	ShapeCurve    float64 `yaml:"shapeCurve"`
	Slide         float64 `yaml:"slide"`
	DeltaSlide    float64 `yaml:"deltaSlide"`
	PitchJump     float64 `yaml:"pitchJump"`
	PitchJumpTime float64 `yaml:"pitchJumpTime"`
	RepeatTime    float64 `yaml:"repeatTime"`
	Noise         float64 `yaml:"noise"`
	Modulation    float64 `yaml:"modulation"`
	BitCrush      float64 `yaml:"bitCrush"`
	Delay         float64 `yaml:"delay"`
	SustainVolume float64 `yaml:"sustainVolume"`
	Decay         float64 `yaml:"decay"`
	Tremolo       float64 `yaml:"tremolo"`
}

// Default returns Params with the default value for every control:
// a 220 Hz sine with a 0.1s release and 5% frequency jitter.
func Default() Params {
	return Params{
		Volume:        1,
		Randomness:    0.05,
		Frequency:     220,
		Release:       0.1,
		Shape:         Sine,
		ShapeCurve:    1,
		SustainVolume: 1,
	}
}

// Rand is the source of the single random draw made per ParameterSet.
// Float64 must return a value in [0, 1). *rand.Rand satisfies it.
type Rand interface {
	Float64() float64
}

// NewRand returns a deterministic Rand seeded with seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// FixedRand always returns the same draw. FixedRand(0.5) disables the
// frequency jitter regardless of Randomness.
type FixedRand float64

func (f FixedRand) Float64() float64 { return float64(f) }

type globalRand struct{}

func (globalRand) Float64() float64 { return rand.Float64() }

// ParameterSet is the normalized, sample-domain form of Params.
// It is immutable and may be shared between goroutines.
type ParameterSet struct {
	params     Params
	sampleRate int

	volume        float64
	frequency     float64 // radians per sample, jitter applied
	attack        float64
	decay         float64
	sustain       float64
	release       float64
	delay         float64
	shape         Shape
	shapeCurve    float64
	slide         float64
	deltaSlide    float64
	pitchJump     float64
	pitchJumpTime float64
	repeatTime    int
	noise         float64
	modulation    float64
	crushInterval int
	sustainVolume float64
	tremolo       float64

	length int
}

// NewParameterSet validates p and normalizes it at DefaultSampleRate.
// A nil rng uses the process-wide random source.
func NewParameterSet(p Params, rng Rand) (*ParameterSet, error) {
	return NewParameterSetAt(p, DefaultSampleRate, rng)
}

// NewParameterSetAt is NewParameterSet at an explicit sample rate.
func NewParameterSetAt(p Params, sampleRate int, rng Rand) (*ParameterSet, error) {
	if sampleRate <= 0 {
		return nil, &ParamError{Field: "sampleRate", Value: float64(sampleRate), Reason: "must be positive"}
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}

	if rng == nil {
		rng = globalRand{}
	}

	draw := rng.Float64()
	if math.IsNaN(draw) || draw < 0 || draw >= 1 {
		return nil, &ParamError{Field: "random draw", Value: draw, Reason: "must be in [0, 1)"}
	}

	rate := float64(sampleRate)
	if err := checkSampleCounts(p, rate); err != nil {
		return nil, err
	}

	ps := &ParameterSet{
		params:        p,
		sampleRate:    sampleRate,
		volume:        p.Volume,
		frequency:     p.Frequency * (1 + p.Randomness*(2*draw-1)) * twoPi / rate,
		attack:        p.Attack*rate + MinAttackSamples,
		decay:         p.Decay * rate,
		sustain:       p.Sustain * rate,
		release:       p.Release * rate,
		delay:         p.Delay * rate,
		shape:         p.Shape,
		shapeCurve:    p.ShapeCurve,
		slide:         p.Slide * 500 * twoPi / rate / rate,
		deltaSlide:    p.DeltaSlide * 500 * twoPi / (rate * rate * rate),
		pitchJump:     p.PitchJump * twoPi / rate,
		pitchJumpTime: p.PitchJumpTime * rate,
		repeatTime:    int(p.RepeatTime * rate),
		noise:         p.Noise,
		modulation:    p.Modulation * twoPi / rate,
		crushInterval: int(p.BitCrush * 100),
		sustainVolume: p.SustainVolume,
		tremolo:       p.Tremolo,
	}
	ps.length = int(ps.attack + ps.decay + ps.sustain + ps.release + ps.delay)

	return ps, nil
}

// checkSampleCounts rejects durations whose sample counts do not fit a
// buffer. Validate has already ruled out negative and non-finite values.
func checkSampleCounts(p Params, rate float64) error {
	total := (p.Attack+p.Decay+p.Sustain+p.Release+p.Delay)*rate + MinAttackSamples
	if total > MaxSamples {
		return &ParamError{Field: "length", Value: total, Reason: "exceeds MaxSamples"}
	}
	if v := p.RepeatTime * rate; v > MaxSamples {
		return &ParamError{Field: "repeatTime", Value: p.RepeatTime, Reason: "exceeds MaxSamples"}
	}
	if v := p.BitCrush * 100; v > MaxSamples {
		return &ParamError{Field: "bitCrush", Value: p.BitCrush, Reason: "exceeds MaxSamples"}
	}
	return nil
}

// Validate reports the first control that cannot be synthesized.
// Errors are *ParamError and match ErrInvalidParameter.
func (p Params) Validate() error {
	fields := []struct {
		name        string
		value       float64
		nonNegative bool
	}{
		{"volume", p.Volume, false},
		{"randomness", p.Randomness, true},
		{"frequency", p.Frequency, false},
		{"attack", p.Attack, true},
		{"sustain", p.Sustain, true},
		{"release", p.Release, true},
		{"shapeCurve", p.ShapeCurve, true},
		{"slide", p.Slide, false},
		{"deltaSlide", p.DeltaSlide, false},
		{"pitchJump", p.PitchJump, false},
		{"pitchJumpTime", p.PitchJumpTime, true},
		{"repeatTime", p.RepeatTime, true},
		{"noise", p.Noise, false},
		{"modulation", p.Modulation, false},
		{"bitCrush", p.BitCrush, true},
		{"delay", p.Delay, true},
		{"sustainVolume", p.SustainVolume, false},
		{"decay", p.Decay, true},
		{"tremolo", p.Tremolo, false},
	}

	for _, f := range fields {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return &ParamError{Field: f.name, Value: f.value, Reason: "must be finite"}
		}
		if f.nonNegative && f.value < 0 {
			return &ParamError{Field: f.name, Value: f.value, Reason: "must not be negative"}
		}
	}

	if !p.Shape.Valid() {
		return &ParamError{Field: "shape", Value: float64(p.Shape), Reason: "unknown wave shape"}
	}

	return nil
}

func (ps *ParameterSet) Params() Params  { return ps.params }
func (ps *ParameterSet) SampleRate() int { return ps.sampleRate }

// Len is the number of samples Generate produces.
func (ps *ParameterSet) Len() int { return ps.length }

// Duration is Len expressed in seconds.
func (ps *ParameterSet) Duration() float64 {
	return float64(ps.length) / float64(ps.sampleRate)
}

// Frequency is the jittered start frequency in Hz.
func (ps *ParameterSet) Frequency() float64 {
	return ps.frequency * float64(ps.sampleRate) / twoPi
}
