// SPDX-License-Identifier: EPL-2.0

// Package hardstyler turns ordinary tracks into hardstyle by mixing
// percussion hits into them at detected beat positions, and glues
// random beat-aligned fragments of several songs into one track
// ("brainrot" mode).
//
// The repository splits into three layers:
//   - audio and formats/ decode files into mono float32 buffers
//     (WAV, MP3, Ogg Vorbis, AIFF)
//   - beat finds beat timestamps (or accepts them from any other
//     detector)
//   - mix is the deterministic core: envelopes, beat-aligned overlay,
//     slicing, shuffling, crossfades, PCM16 quantization
//
// This package wires the layers into two ready-made pipelines.
//
// # Hardstyle
//
//	src, _ := mp3.Decoder{}.Decode(file)
//	track, _ := hardstyler.CollectMono(src, 4096)
//
//	detector := beat.NewEnergyDetector()
//	beats, _ := detector.DetectBeats(track.Samples, track.SampleRate)
//
//	out, _ := os.Create("harder.wav")
//	err := hardstyler.RenderHardstyle(out, track, beats, kick, tock,
//	    hardstyler.HardstyleOptions())
//
// Use DuckedHardstyleOptions to keep the original at full volume and
// dip it around each hit instead (sidechain style).
//
// # Brainrot
//
//	rng := rand.New(rand.NewSource(seed))
//	err := hardstyler.RenderBrainrot(out, tracks,
//	    hardstyler.DefaultBrainrotConfig(), rng)
//
// The shuffle is driven entirely by the injected rng, so a fixed seed
// reproduces the same track.
//
// # Output
//
// Both pipelines quantize to 16-bit PCM (clamped, round half away from
// zero) and write a canonical mono RIFF/WAVE file.
package hardstyler
