// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
)

// CollectMono drains src completely, reducing it to mono, and returns
// the materialized samples together with the source sample rate.
//
// The beat-synchronized mixing stages operate on whole tracks, not
// streams, so decoding ends with one of these calls. bufferSize is the
// read chunk size in samples (4096 is a good default).
func CollectMono(src Source, bufferSize int) ([]float32, int, error) {
	mono := NewMonoMixer(src)

	// Rough pre-allocation; grows as needed for longer tracks.
	samples := make([]float32, 0, src.SampleRate()*2)
	buf := make([]float32, bufferSize)

	for {
		n, err := mono.ReadSamples(buf)
		if n > 0 {
			samples = append(samples, buf[:n]...)
		}

		if err == io.EOF {
			break
		}

		if err != nil {
			return nil, 0, fmt.Errorf("%w", err)
		}
	}

	return samples, src.SampleRate(), nil
}

// CollectMonoAtRate is CollectMono with a resampling stage in front:
// the source is converted to targetRate before being reduced to mono
// and materialized. Used to bring percussion samples to a track's rate
// before overlay.
func CollectMonoAtRate(src Source, targetRate, bufferSize int) ([]float32, int, error) {
	if src.SampleRate() == targetRate {
		return CollectMono(src, bufferSize)
	}

	resampler := NewResampler(src, targetRate)
	mono := NewMonoMixer(resampler)

	samples := make([]float32, 0, targetRate*2)
	buf := make([]float32, bufferSize)

	for {
		n, err := mono.ReadSamples(buf)
		if n > 0 {
			samples = append(samples, buf[:n]...)
		}

		if err == io.EOF {
			break
		}

		if err != nil {
			return nil, 0, fmt.Errorf("%w", err)
		}
	}

	return samples, targetRate, nil
}
