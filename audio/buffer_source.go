// SPDX-License-Identifier: EPL-2.0

package audio

import "io"

// BufferSource adapts an already materialized mono buffer back into a
// Source, so buffers can be fed through the streaming stages (most
// commonly the Resampler, to bring a percussion one-shot to a track's
// rate).
type BufferSource struct {
	samples    []float32
	sampleRate int
	pos        int
}

func NewBufferSource(samples []float32, sampleRate int) *BufferSource {
	return &BufferSource{
		samples:    samples,
		sampleRate: sampleRate,
	}
}

func (b *BufferSource) SampleRate() int { return b.sampleRate }
func (b *BufferSource) Channels() int   { return 1 }
func (b *BufferSource) Close() error    { return nil }

func (b *BufferSource) ReadSamples(dst []float32) (int, error) {
	if b.pos >= len(b.samples) {
		return 0, io.EOF
	}

	n := copy(dst, b.samples[b.pos:])
	b.pos += n

	if b.pos >= len(b.samples) {
		return n, io.EOF
	}

	return n, nil
}
