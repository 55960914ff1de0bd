// SPDX-License-Identifier: EPL-2.0

// Package mix implements deterministic beat-synchronized resynthesis
// over mono PCM buffers.
//
// The package is the numeric core of hardstyler. It never performs
// I/O, never touches the network, and never mutates its inputs: every
// operation reads fully materialized sample buffers and beat-time
// sequences and writes a freshly allocated output buffer.
//
// # Beat Overlay
//
// Overlay adds percussion hits ("kick" on the beat, "tock" on the
// half-beat) into an existing signal at sample-accurate positions:
//
//	out, err := mix.Overlay(track, beats, kick.Samples, tock.Samples, mix.OverlayOptions{
//	    BaseVolume: 0.5,
//	    MixGain:    1.0,
//	})
//
// Enabling Ducking dips the original signal around each beat with a
// linear attack/sustain/release envelope, modelling sidechain
// compression, so BaseVolume can stay at 1.0:
//
//	out, err := mix.Overlay(track, beats, kick.Samples, nil, mix.OverlayOptions{
//	    BaseVolume: 1.0,
//	    MixGain:    1.0,
//	    Ducking:    true,
//	    Envelope:   mix.Envelope{Attack: 441, Release: 2205, Duck: 0.3},
//	})
//
// The envelope sustain always matches the kick length, so the duck
// lasts exactly as long as the hit plays.
//
// # Slicing and Crossfading
//
// The second pipeline cuts several tracks at beat boundaries, shuffles
// the pieces, and glues a random selection back together:
//
//	slices, err := mix.ExtractSlices(tracks, 0.2, 2.0)
//	picked, err := mix.ShuffleAndSelect(slices, 30, 60, rng)
//	out := mix.Crossfade(picked, 441)
//
// Randomness is always taken from an injected *rand.Rand so tests and
// callers can seed it for reproducible output.
//
// # Quantization
//
// QuantizePCM16 clamps samples to [-1, 1] and converts to int16 with
// round-half-away-from-zero, ready for a WAV writer:
//
//	pcm := mix.QuantizePCM16(out)
//
// # Edge Policy
//
// Percussion hits and duck windows that extend past the buffer edges
// are trimmed sample by sample; out-of-range writes are dropped rather
// than reported. Overlapping hits from adjacent beats sum, which may
// exceed full scale; quantization clamps instead of wrapping.
package mix
