// SPDX-License-Identifier: EPL-2.0

package synth

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// zzfxFields lists the Params controls in ZzFX positional order.
var zzfxFields = [...]struct {
	name string
	get  func(*Params) *float64
}{
	{"volume", func(p *Params) *float64 { return &p.Volume }},
	{"randomness", func(p *Params) *float64 { return &p.Randomness }},
	{"frequency", func(p *Params) *float64 { return &p.Frequency }},
	{"attack", func(p *Params) *float64 { return &p.Attack }},
	{"sustain", func(p *Params) *float64 { return &p.Sustain }},
	{"release", func(p *Params) *float64 { return &p.Release }},
	{"shape", nil},
	{"shapeCurve", func(p *Params) *float64 { return &p.ShapeCurve }},
	{"slide", func(p *Params) *float64 { return &p.Slide }},
	{"deltaSlide", func(p *Params) *float64 { return &p.DeltaSlide }},
	{"pitchJump", func(p *Params) *float64 { return &p.PitchJump }},
	{"pitchJumpTime", func(p *Params) *float64 { return &p.PitchJumpTime }},
	{"repeatTime", func(p *Params) *float64 { return &p.RepeatTime }},
	{"noise", func(p *Params) *float64 { return &p.Noise }},
	{"modulation", func(p *Params) *float64 { return &p.Modulation }},
	{"bitCrush", func(p *Params) *float64 { return &p.BitCrush }},
	{"delay", func(p *Params) *float64 { return &p.Delay }},
	{"sustainVolume", func(p *Params) *float64 { return &p.SustainVolume }},
	{"decay", func(p *Params) *float64 { return &p.Decay }},
	{"tremolo", func(p *Params) *float64 { return &p.Tremolo }},
}

// ParseZzFX parses a ZzFX parameter list such as
//
//	zzfx(...[,,925,.04,.3,.6,1,.3,,6.27,-184,.09,.05])
//
// The zzfx(...[ ]) wrapper and surrounding brackets are optional. Empty
// fields keep their Default value. The result is validated.
func ParseZzFX(s string) (Params, error) {
	p := Default()

	body := strings.TrimSpace(s)
	body = strings.TrimSuffix(strings.TrimPrefix(body, "zzfx("), ")")
	body = strings.TrimPrefix(body, "...")
	body = strings.TrimSuffix(strings.TrimPrefix(body, "["), "]")
	if strings.TrimSpace(body) == "" {
		return p, nil
	}

	values := strings.Split(body, ",")
	if len(values) > len(zzfxFields) {
		return Params{}, fmt.Errorf("%w: %d values, ZzFX takes at most %d",
			ErrInvalidParameter, len(values), len(zzfxFields))
	}

	for i, raw := range values {
		raw = strings.TrimSpace(raw)
		if raw == "" || raw == "undefined" {
			continue
		}

		field := zzfxFields[i]
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return Params{}, fmt.Errorf("%w: %s: %q is not a number", ErrInvalidParameter, field.name, raw)
		}

		if field.get == nil {
			if v != math.Trunc(v) {
				return Params{}, &ParamError{Field: field.name, Value: v, Reason: "must be an integer"}
			}
			p.Shape = Shape(v)
			continue
		}
		*field.get(&p) = v
	}

	if err := p.Validate(); err != nil {
		return Params{}, err
	}

	return p, nil
}

// ZzFX formats p as a compact ZzFX parameter list. Values equal to their
// default are left empty and trailing empty fields are dropped, so
// ParseZzFX(p.ZzFX()) == p.
func (p Params) ZzFX() string {
	def := Default()
	fields := make([]string, len(zzfxFields))

	for i, field := range zzfxFields {
		if field.get == nil {
			if p.Shape != def.Shape {
				fields[i] = strconv.Itoa(int(p.Shape))
			}
			continue
		}

		v := *field.get(&p)
		if v != *field.get(&def) {
			fields[i] = formatZzFX(v)
		}
	}

	end := len(fields)
	for end > 0 && fields[end-1] == "" {
		end--
	}

	return strings.Join(fields[:end], ",")
}

// formatZzFX writes the shortest decimal form, without a leading zero.
func formatZzFX(v float64) string {
	s := strconv.FormatFloat(v, 'g', -1, 64)
	switch {
	case strings.HasPrefix(s, "0."):
		return s[1:]
	case strings.HasPrefix(s, "-0."):
		return "-" + s[2:]
	}
	return s
}
