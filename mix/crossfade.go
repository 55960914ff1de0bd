// SPDX-License-Identifier: EPL-2.0

package mix

// Crossfade concatenates slices into one output buffer, tapering each
// slice's edges to avoid clicks at the joins. The fade is a linear ramp
// over the first and last fadeSamples of every slice; slices are laid
// out back to back with no temporal overlap and no silence between
// them.
//
// Fade-in and fade-out gains are computed independently and multiplied
// into the same sample when a slice is shorter than 2*fadeSamples. That
// dips deeper than a single ramp would; the dip is intentional, short
// slices just fade harder.
func Crossfade(slices []Slice, fadeSamples int) []float32 {
	total := 0
	for _, s := range slices {
		total += len(s.Samples)
	}

	out := make([]float32, total)

	cursor := 0
	for _, s := range slices {
		n := len(s.Samples)
		for i, v := range s.Samples {
			gain := float32(1)
			if fadeSamples > 0 {
				// Ramps are symmetric: the first sample gets
				// 1/fadeSamples, as does the last.
				if i < fadeSamples {
					gain *= float32(i+1) / float32(fadeSamples)
				}
				if remaining := n - i; remaining <= fadeSamples {
					gain *= float32(remaining) / float32(fadeSamples)
				}
			}
			out[cursor+i] = v * gain
		}
		cursor += n
	}

	return out
}
