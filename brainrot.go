// SPDX-License-Identifier: EPL-2.0

package hardstyler

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/ik5/hardstyler/formats/wav"
	"github.com/ik5/hardstyler/mix"
)

// BrainrotConfig controls the multi-track slice-and-shuffle pipeline.
type BrainrotConfig struct {
	// MinSliceDuration and MaxSliceDuration bound, in seconds, which
	// inter-beat intervals are worth keeping.
	MinSliceDuration float64
	MaxSliceDuration float64

	// MinSlices and MaxSlices bound how many shuffled slices end up in
	// the output; the actual count is drawn uniformly from the range,
	// capped by how many slices were extracted.
	MinSlices int
	MaxSlices int

	// CrossfadeSamples is the linear taper length at each slice edge.
	CrossfadeSamples int
}

// DefaultBrainrotConfig returns the stock settings: slices between
// 0.2 s and 2 s, 30-60 of them, with a 10 ms taper at 44.1 kHz.
func DefaultBrainrotConfig() BrainrotConfig {
	return BrainrotConfig{
		MinSliceDuration: 0.2,
		MaxSliceDuration: 2.0,
		MinSlices:        30,
		MaxSlices:        60,
		CrossfadeSamples: 441,
	}
}

// RenderBrainrot cuts the given tracks at their beat boundaries,
// shuffles the pieces, and writes a random selection back to back as a
// mono 16-bit WAV, with a crossfade taper at every join.
//
// All tracks must share one sample rate. rng drives the shuffle and
// the count draw; seed it for reproducible output.
func RenderBrainrot(w io.Writer, tracks []mix.Track, cfg BrainrotConfig, rng *rand.Rand) error {
	if len(tracks) == 0 {
		return ErrNoTracks
	}

	rate := tracks[0].Buffer.SampleRate
	for _, tr := range tracks {
		if tr.Buffer.SampleRate != rate {
			return ErrMixedSampleRates
		}
	}

	slices, err := mix.ExtractSlices(tracks, cfg.MinSliceDuration, cfg.MaxSliceDuration)
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	picked, err := mix.ShuffleAndSelect(slices, cfg.MinSlices, cfg.MaxSlices, rng)
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	out := mix.Crossfade(picked, cfg.CrossfadeSamples)

	err = wav.WriteWAV16(w, rate, mix.QuantizePCM16(out))
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}
