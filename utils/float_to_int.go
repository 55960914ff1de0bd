package utils

import "math"

// Float32ToInt16 converts a normalized sample to 16-bit signed PCM.
// Input is clamped to [-1, 1] first so overdriven mixes clip instead of
// wrapping around. Rounding is half-away-from-zero and symmetric: both
// signs scale by 32767.
func Float32ToInt16(x float32) int16 {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	return int16(math.Round(float64(x) * 32767.0))
}
