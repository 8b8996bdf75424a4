// SPDX-License-Identifier: EPL-2.0

package preset_test

import (
	"fmt"

	"github.com/ik5/sfxsynth/preset"
)

func Example() {
	r := preset.NewRegistry()

	_, err := r.Parse([]byte(`
presets:
  laser:
    zzfx: ",,925,.04,.3,.6,1,.3,,6.27,-184,.09,.05"
    volume: 0.5
`))
	if err != nil {
		fmt.Println(err)
		return
	}

	p, _ := r.Get("laser")
	fmt.Println(r.Names(), p.Frequency, p.Shape, p.Volume)
	// Output: [laser] 925 triangle 0.5
}
