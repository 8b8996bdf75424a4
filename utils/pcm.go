// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

// Clamp limits x to [-1, 1].
func Clamp(x float64) float64 {
	if x > 1 {
		return 1
	} else if x < -1 {
		return -1
	}
	return x
}

func Float32ToInt16(x float32) int16 {
	// Clamp and scale
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	// Use 32767 for positive max to avoid overflow
	return int16(x * 32767.0)
}

// Float64ToInt16 is Float32ToInt16 for generated float64 samples.
func Float64ToInt16(x float64) int16 {
	return int16(Clamp(x) * 32767.0)
}

// Peak returns the largest absolute sample across channels.
func Peak(channels ...[]float64) float64 {
	var peak float64
	for _, ch := range channels {
		for _, v := range ch {
			peak = math.Max(peak, math.Abs(v))
		}
	}
	return peak
}
