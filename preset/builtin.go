// SPDX-License-Identifier: EPL-2.0

package preset

import (
	_ "embed"
	"fmt"
)

//go:embed builtin.yaml
var builtinYAML []byte

// Builtin returns a new Registry holding the bundled presets.
func Builtin() *Registry {
	r := NewRegistry()
	if _, err := r.Parse(builtinYAML); err != nil {
		panic(fmt.Sprintf("preset: bundled presets: %v", err))
	}
	return r
}
