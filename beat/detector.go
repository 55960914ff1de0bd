// SPDX-License-Identifier: EPL-2.0

package beat

import (
	"errors"
	"math"
)

var (
	ErrInvalidSampleRate = errors.New("sample rate must be positive")
	ErrInvalidWindowSize = errors.New("window size must be positive")
)

// Detector finds rhythmic onsets in a mono signal and reports their
// timestamps in seconds, in ascending order. A result of length zero
// is valid; consumers must not assume any beats were found.
//
// Detection backends are passed explicitly into the pipelines that
// need them, so alternative implementations (or a remote analysis
// engine) can be swapped in without touching the mixing core.
type Detector interface {
	DetectBeats(samples []float32, sampleRate int) ([]float64, error)
}

// EnergyDetector is a simple reference Detector based on RMS energy
// rises: the signal is cut into fixed windows and a beat is reported
// whenever a window's energy clears an absolute floor and jumps
// sharply relative to the previous window. Good enough for material
// with a prominent kick; not a replacement for a real rhythm analyzer.
type EnergyDetector struct {
	// WindowSize is the analysis window length in samples.
	WindowSize int

	// Threshold is the absolute RMS floor below which windows are
	// ignored regardless of rise.
	Threshold float64

	// RiseRatio is the minimum energy jump, current/previous, that
	// counts as an onset.
	RiseRatio float64

	// MinInterval is the refractory period in seconds: onsets closer
	// than this to the previous reported beat are dropped.
	MinInterval float64
}

// NewEnergyDetector returns a detector with defaults tuned for
// 44.1 kHz dance music: ~23 ms windows and a refractory period that
// caps detection around 200 BPM.
func NewEnergyDetector() *EnergyDetector {
	return &EnergyDetector{
		WindowSize:  1024,
		Threshold:   0.1,
		RiseRatio:   1.5,
		MinInterval: 0.3,
	}
}

func (d *EnergyDetector) DetectBeats(samples []float32, sampleRate int) ([]float64, error) {
	if sampleRate <= 0 {
		return nil, ErrInvalidSampleRate
	}
	if d.WindowSize <= 0 {
		return nil, ErrInvalidWindowSize
	}

	var beats []float64

	lastEnergy := 0.0
	lastBeat := math.Inf(-1)

	for start := 0; start+d.WindowSize <= len(samples); start += d.WindowSize {
		energy := rms(samples[start : start+d.WindowSize])

		rising := lastEnergy == 0 || energy/lastEnergy > d.RiseRatio
		if energy > d.Threshold && rising {
			t := float64(start) / float64(sampleRate)
			if t-lastBeat >= d.MinInterval {
				beats = append(beats, t)
				lastBeat = t
			}
		}

		lastEnergy = energy
	}

	return beats, nil
}

// rms computes the root mean square energy of a window.
func rms(window []float32) float64 {
	if len(window) == 0 {
		return 0
	}

	var sumSquare float64
	for _, s := range window {
		f := float64(s)
		sumSquare += f * f
	}

	return math.Sqrt(sumSquare / float64(len(window)))
}
