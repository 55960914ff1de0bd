// SPDX-License-Identifier: EPL-2.0

package mix

// Envelope describes a sidechain-style ducking curve anchored at a
// trigger point. Offsets are in samples, relative to the start of the
// attack phase (Attack samples before the trigger itself).
//
// Phases:
//   - [0, Attack): gain ramps linearly from 1 down to Duck
//   - [Attack, Attack+Sustain): gain held at Duck
//   - [Attack+Sustain, Attack+Sustain+Release): gain ramps back to 1
//
// Outside the window the gain is 1 (no ducking applied).
type Envelope struct {
	Attack  int
	Sustain int
	Release int
	Duck    float32
}

// Len returns the total envelope window length in samples.
func (e Envelope) Len() int {
	return e.Attack + e.Sustain + e.Release
}

// valid reports whether the envelope parameters are usable.
func (e Envelope) valid() bool {
	return e.Attack >= 0 && e.Sustain >= 0 && e.Release >= 0 &&
		e.Duck >= 0 && e.Duck <= 1
}

// At returns the gain multiplier at the given sample offset.
func (e Envelope) At(offset int) float32 {
	if offset < 0 || offset >= e.Len() {
		return 1
	}

	if offset < e.Attack {
		// Linear ramp 1 -> Duck
		progress := float32(offset) / float32(e.Attack)
		return 1 - (1-e.Duck)*progress
	}

	if offset < e.Attack+e.Sustain {
		return e.Duck
	}

	// Linear ramp Duck -> 1
	progress := float32(offset-e.Attack-e.Sustain) / float32(e.Release)
	return e.Duck + (1-e.Duck)*progress
}
