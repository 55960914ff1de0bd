// SPDX-License-Identifier: EPL-2.0

// Package wav decodes WAV files into audio.Source streams and writes
// mono 16-bit PCM WAV output.
//
// Decoding is built on github.com/go-audio/wav and supports PCM 16-bit
// files of any channel count; the mixing pipeline reduces them to mono
// afterwards.
//
//	decoder := wav.Decoder{}
//	src, err := decoder.Decode(file)
//
// Writing produces a canonical RIFF/WAVE file (44-byte header,
// little-endian data chunk), which is what both render pipelines emit:
//
//	err := wav.WriteWAV16(out, 44100, pcmSamples)
package wav
