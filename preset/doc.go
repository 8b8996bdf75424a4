// SPDX-License-Identifier: EPL-2.0

// Package preset stores named synth.Params and loads them from YAML.
//
// A preset file maps names to parameters. Each entry may give a ZzFX
// parameter list, individual controls, or both; controls override the
// ZzFX values and anything left out keeps its default:
//
//	presets:
//	  laser:
//	    zzfx: ",,925,.04,.3,.6,1,.3,,6.27,-184,.09,.05"
//	  blip:
//	    frequency: 880
//	    shape: triangle
//	    release: 0.05
//
// Registry is safe for concurrent use. Watcher reloads a file into a
// Registry whenever it changes on disk.
package preset
