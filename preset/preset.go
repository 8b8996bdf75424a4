// SPDX-License-Identifier: EPL-2.0

package preset

import (
	"bytes"
	"fmt"
	"os"
	"slices"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/ik5/sfxsynth/synth"
)

// Registry holds presets by name.
type Registry struct {
	presets map[string]synth.Params

	mtx *sync.RWMutex
}

func NewRegistry() *Registry {
	return &Registry{
		presets: make(map[string]synth.Params),
		mtx:     &sync.RWMutex{},
	}
}

// Register validates p and stores it under name, replacing any previous
// preset with that name.
func (r *Registry) Register(name string, p synth.Params) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidPreset)
	}
	if err := p.Validate(); err != nil {
		return fmt.Errorf("%w %q: %w", ErrInvalidPreset, name, err)
	}

	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.presets[name] = p

	return nil
}

func (r *Registry) Get(name string) (synth.Params, error) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	p, ok := r.presets[name]
	if !ok {
		return synth.Params{}, fmt.Errorf("%w: %q", ErrPresetNotFound, name)
	}

	return p, nil
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	names := make([]string, 0, len(r.presets))
	for name := range r.presets {
		names = append(names, name)
	}
	slices.Sort(names)

	return names
}

func (r *Registry) Len() int {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	return len(r.presets)
}

// Parse decodes a YAML preset document and registers every entry. Either
// all entries are registered or, on error, none are. It returns the
// sorted names that were added.
func (r *Registry) Parse(data []byte) ([]string, error) {
	presets, err := Parse(data)
	if err != nil {
		return nil, err
	}

	r.mtx.Lock()
	defer r.mtx.Unlock()

	names := make([]string, 0, len(presets))
	for name, p := range presets {
		r.presets[name] = p
		names = append(names, name)
	}
	slices.Sort(names)

	return names, nil
}

// Load reads and parses a preset file, see Parse.
func (r *Registry) Load(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading preset file: %w", err)
	}

	names, err := r.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return names, nil
}

type document struct {
	Presets map[string]yaml.Node `yaml:"presets"`
}

type entryHeader struct {
	ZzFX string `yaml:"zzfx"`
}

// entry is the strict form of a preset; unknown keys are errors.
type entry struct {
	ZzFX         string `yaml:"zzfx"`
	synth.Params `yaml:",inline"`
}

// Parse decodes a YAML preset document into validated Params by name.
func Parse(data []byte) (map[string]synth.Params, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPreset, err)
	}

	out := make(map[string]synth.Params, len(doc.Presets))
	for name, node := range doc.Presets {
		p, err := decodeEntry(&node)
		if err != nil {
			return nil, fmt.Errorf("%w %q: %w", ErrInvalidPreset, name, err)
		}
		out[name] = p
	}

	return out, nil
}

// decodeEntry starts from the defaults, applies the zzfx list if present,
// then overlays the named controls. Misspelled control names are errors.
func decodeEntry(node *yaml.Node) (synth.Params, error) {
	if node.Kind != yaml.MappingNode {
		return synth.Params{}, fmt.Errorf("line %d: expected a mapping", node.Line)
	}

	var head entryHeader
	if err := node.Decode(&head); err != nil {
		return synth.Params{}, err
	}

	p := synth.Default()
	if head.ZzFX != "" {
		var err error
		if p, err = synth.ParseZzFX(head.ZzFX); err != nil {
			return synth.Params{}, err
		}
	}

	raw, err := yaml.Marshal(node)
	if err != nil {
		return synth.Params{}, err
	}

	e := entry{ZzFX: head.ZzFX, Params: p}
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&e); err != nil {
		return synth.Params{}, err
	}

	p = e.Params
	if err := p.Validate(); err != nil {
		return synth.Params{}, err
	}

	return p, nil
}
