// SPDX-License-Identifier: EPL-2.0

package mix

import "math/rand"

// Slice is an independently owned excerpt of a source track, cut at
// beat boundaries. Samples is a copy, not a view, so the source buffer
// can be discarded once extraction is done.
type Slice struct {
	Samples    []float32
	SampleRate int
	StartTime  float64
	Duration   float64
}

// Track pairs a decoded signal with its detected beat times.
type Track struct {
	Buffer Buffer
	Beats  []float64
}

// ExtractSlices cuts every inter-beat interval whose duration lies in
// [minDur, maxDur] seconds out of the given tracks. Slices are returned
// in track order then beat order; callers normally shuffle them right
// away.
func ExtractSlices(tracks []Track, minDur, maxDur float64) ([]Slice, error) {
	if minDur < 0 || maxDur < minDur {
		return nil, ErrInvalidDuration
	}

	var slices []Slice

	for _, tr := range tracks {
		if tr.Buffer.SampleRate <= 0 {
			return nil, ErrInvalidSampleRate
		}
		if !validBeats(tr.Beats) {
			return nil, ErrInvalidBeats
		}

		rate := float64(tr.Buffer.SampleRate)
		for i := 0; i+1 < len(tr.Beats); i++ {
			start, end := tr.Beats[i], tr.Beats[i+1]
			dur := end - start
			if dur < minDur || dur > maxDur {
				continue
			}

			lo := int(start * rate)
			hi := int(end * rate)
			if lo < 0 {
				lo = 0
			}
			if hi > len(tr.Buffer.Samples) {
				hi = len(tr.Buffer.Samples)
			}
			if lo >= hi {
				continue
			}

			samples := make([]float32, hi-lo)
			copy(samples, tr.Buffer.Samples[lo:hi])

			slices = append(slices, Slice{
				Samples:    samples,
				SampleRate: tr.Buffer.SampleRate,
				StartTime:  start,
				Duration:   dur,
			})
		}
	}

	return slices, nil
}

// ShuffleAndSelect permutes slices uniformly (Fisher-Yates via rng) and
// keeps a count drawn uniformly from [minCount, maxCount], clamped to
// the number of slices available. The input slice order is mutated by
// the shuffle; the returned slice is a prefix of it.
//
// rng is injected so callers can seed it for reproducible output.
func ShuffleAndSelect(slices []Slice, minCount, maxCount int, rng *rand.Rand) ([]Slice, error) {
	if rng == nil {
		return nil, ErrNilRandSource
	}
	if minCount < 0 || maxCount < minCount {
		return nil, ErrInvalidCount
	}

	rng.Shuffle(len(slices), func(i, j int) {
		slices[i], slices[j] = slices[j], slices[i]
	})

	count := minCount + rng.Intn(maxCount-minCount+1)
	if count > len(slices) {
		count = len(slices)
	}

	return slices[:count], nil
}
