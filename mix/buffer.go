// SPDX-License-Identifier: EPL-2.0

package mix

import (
	"math"

	"github.com/ik5/hardstyler/utils"
)

// Buffer is a fully materialized mono PCM signal.
// Samples are float32 amplitudes, nominally in [-1, 1] (intermediate
// processing may exceed that range; quantization clamps).
type Buffer struct {
	Samples    []float32
	SampleRate int
}

// Duration returns the buffer length in seconds.
func (b Buffer) Duration() float64 {
	if b.SampleRate <= 0 {
		return 0
	}
	return float64(len(b.Samples)) / float64(b.SampleRate)
}

// Scale returns a copy of samples with every value multiplied by factor.
// The input is never mutated.
func Scale(samples []float32, factor float32) []float32 {
	out := make([]float32, len(samples))
	for i, s := range samples {
		out[i] = s * factor
	}
	return out
}

// QuantizePCM16 converts float32 samples to 16-bit signed PCM.
// Each sample is clamped to [-1, 1] before scaling, so mixes that
// exceed full scale clip instead of wrapping around.
func QuantizePCM16(samples []float32) []int16 {
	out := make([]int16, len(samples))
	for i, s := range samples {
		out[i] = utils.Float32ToInt16(s)
	}
	return out
}

// validBeats reports whether beats is a finite, non-decreasing,
// non-negative sequence. Empty sequences are valid.
func validBeats(beats []float64) bool {
	prev := 0.0
	for _, t := range beats {
		if math.IsNaN(t) || math.IsInf(t, 0) || t < 0 {
			return false
		}
		if t < prev {
			return false
		}
		prev = t
	}
	return true
}
