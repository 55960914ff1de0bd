// SPDX-License-Identifier: EPL-2.0

package hardstyler

import (
	"errors"
	"fmt"
	"io"

	"github.com/ik5/hardstyler/audio"
	"github.com/ik5/hardstyler/formats/wav"
	"github.com/ik5/hardstyler/mix"
)

var (
	ErrNoTracks         = errors.New("at least one track is required")
	ErrMixedSampleRates = errors.New("all tracks must share one sample rate")
)

// CollectMono drains a decoded source into a materialized mono buffer
// ready for the mixing core.
func CollectMono(src audio.Source, bufferSize int) (mix.Buffer, error) {
	samples, rate, err := audio.CollectMono(src, bufferSize)
	if err != nil {
		return mix.Buffer{}, fmt.Errorf("%w", err)
	}

	return mix.Buffer{Samples: samples, SampleRate: rate}, nil
}

// HardstyleOptions returns the plain overlay variant: the original is
// halved to leave headroom for the hits.
func HardstyleOptions() mix.OverlayOptions {
	return mix.OverlayOptions{
		BaseVolume: 0.5,
		MixGain:    1.0,
	}
}

// DuckedHardstyleOptions returns the sidechain variant: the original
// keeps full loudness and is ducked around every beat instead. Attack
// is 10 ms, release 50 ms, both derived from the sample rate.
func DuckedHardstyleOptions(sampleRate int) mix.OverlayOptions {
	return mix.OverlayOptions{
		BaseVolume: 1.0,
		MixGain:    1.0,
		Ducking:    true,
		Envelope: mix.Envelope{
			Attack:  sampleRate * 10 / 1000,
			Release: sampleRate * 50 / 1000,
			Duck:    0.3,
		},
	}
}

// RenderHardstyle overlays percussion on a track at its detected beat
// positions and writes the result as a mono 16-bit WAV.
//
// kick lands on every beat; tock, if it has any samples, lands on the
// half-beats. Percussion recorded at a different sample rate than the
// track is resampled to match before mixing.
func RenderHardstyle(w io.Writer, track mix.Buffer, beats []float64, kick, tock mix.Buffer, opts mix.OverlayOptions) error {
	if track.SampleRate <= 0 {
		return mix.ErrInvalidSampleRate
	}

	kickSamples, err := matchRate(kick, track.SampleRate)
	if err != nil {
		return fmt.Errorf("resampling kick: %w", err)
	}

	tockSamples, err := matchRate(tock, track.SampleRate)
	if err != nil {
		return fmt.Errorf("resampling tock: %w", err)
	}

	out, err := mix.Overlay(track, beats, kickSamples, tockSamples, opts)
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	err = wav.WriteWAV16(w, track.SampleRate, mix.QuantizePCM16(out))
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

// matchRate brings a percussion buffer to the track's sample rate,
// passing it through untouched when the rates already agree.
func matchRate(b mix.Buffer, rate int) ([]float32, error) {
	if len(b.Samples) == 0 || b.SampleRate == rate {
		return b.Samples, nil
	}
	if b.SampleRate <= 0 {
		return nil, mix.ErrInvalidSampleRate
	}

	src := audio.NewBufferSource(b.Samples, b.SampleRate)
	samples, _, err := audio.CollectMonoAtRate(src, rate, 4096)
	if err != nil {
		return nil, err
	}

	return samples, nil
}
