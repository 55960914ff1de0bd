// SPDX-License-Identifier: EPL-2.0

package mix

import "math"

// OverlayOptions controls the beat overlay mix.
type OverlayOptions struct {
	// BaseVolume is the gain applied to the original signal before any
	// percussion is added. 0.5 leaves headroom for the hits; 1.0 keeps
	// full loudness and relies on ducking instead.
	BaseVolume float32

	// MixGain is the gain applied to each percussion hit.
	MixGain float32

	// Ducking enables a sidechain-style volume dip around every beat.
	Ducking bool

	// Envelope shapes the duck. Sustain is derived from the kick sample
	// length at mix time; the value set here is ignored.
	Envelope Envelope
}

// fallbackInterval is the synthesized inter-beat interval, in seconds,
// used to place a half-beat tock after the final detected beat.
const fallbackInterval = 0.5

// Overlay mixes percussion hits into a mono signal at beat-aligned
// sample positions and returns a newly allocated output buffer. The
// inputs are never mutated.
//
// kick is added at every beat. If tock is non-empty it is added at the
// midpoint between each beat and its successor; the last beat uses a
// synthesized 0.5 s interval so a single-beat sequence still produces
// a tock. Hits near the buffer edges are trimmed sample by sample:
// out-of-range writes are dropped, never an error.
//
// With zero beats the result is exactly the original scaled by
// BaseVolume.
func Overlay(original Buffer, beats []float64, kick, tock []float32, opts OverlayOptions) ([]float32, error) {
	if original.SampleRate <= 0 {
		return nil, ErrInvalidSampleRate
	}
	if !validBeats(beats) {
		return nil, ErrInvalidBeats
	}
	if !validGain(opts.BaseVolume) || !validGain(opts.MixGain) {
		return nil, ErrInvalidGain
	}

	env := opts.Envelope
	env.Sustain = len(kick)
	if opts.Ducking && !env.valid() {
		return nil, ErrInvalidEnvelope
	}

	rate := float64(original.SampleRate)
	out := Scale(original.Samples, opts.BaseVolume)

	for i, t := range beats {
		pos := int(t * rate)

		if opts.Ducking {
			applyEnvelope(out, env, pos)
		}

		addAt(out, kick, pos, opts.MixGain)

		if len(tock) > 0 {
			next := t + fallbackInterval
			if i+1 < len(beats) {
				next = beats[i+1]
			}
			halfBeat := t + (next-t)/2
			addAt(out, tock, int(halfBeat*rate), opts.MixGain)
		}
	}

	return out, nil
}

// applyEnvelope multiplies the envelope gain into dst around the
// trigger position. The window starts env.Attack samples before the
// trigger and is clamped to the buffer bounds.
func applyEnvelope(dst []float32, env Envelope, trigger int) {
	start := trigger - env.Attack
	for k, n := 0, env.Len(); k < n; k++ {
		idx := start + k
		if idx < 0 || idx >= len(dst) {
			continue
		}
		dst[idx] *= env.At(k)
	}
}

// addAt adds src*gain into dst starting at pos, dropping any samples
// that fall outside dst. Overlapping hits from adjacent beats simply
// sum; quantization clamps the result later.
func addAt(dst, src []float32, pos int, gain float32) {
	for k, s := range src {
		idx := pos + k
		if idx < 0 || idx >= len(dst) {
			continue
		}
		dst[idx] += s * gain
	}
}

func validGain(g float32) bool {
	f := float64(g)
	return !math.IsNaN(f) && !math.IsInf(f, 0) && g >= 0
}
