// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

// Float64ToInt16 narrows a normalized sample to 16-bit PCM.
// Values outside [-1, 1] are clamped, never wrapped.
func Float64ToInt16(x float64) int16 {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	// Use 32767 for positive max to avoid overflow
	return int16(x * 32767.0)
}

// ClampFloat32 narrows a float64 sample to float32, clamping values that
// fall outside the float32 representable range instead of letting them
// overflow to +/-Inf. The second return value reports whether clamping
// happened.
func ClampFloat32(x float64) (float32, bool) {
	switch {
	case x > math.MaxFloat32:
		return math.MaxFloat32, true
	case x < -math.MaxFloat32:
		return -math.MaxFloat32, true
	default:
		return float32(x), false
	}
}
