// SPDX-License-Identifier: EPL-2.0

// Package audio provides the streaming primitives that feed the mixing
// core.
//
// This package contains the decode-side building blocks:
//   - Source interface for audio input
//   - Resampler for sample rate conversion
//   - MonoMixer for channel reduction
//   - CollectMono / CollectMonoAtRate for materializing whole tracks
//   - Format registry for decoder registration
//
// # Source Interface
//
// The Source interface is the foundation of the decode pipeline:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    Close() error
//	}
//
// All format decoders and processing stages implement this interface,
// so they chain freely.
//
// # Materializing Tracks
//
// The mixing core (package mix) works on whole tracks, so decoding
// normally ends with CollectMono:
//
//	samples, rate, err := audio.CollectMono(src, 4096)
//	track := mix.Buffer{Samples: samples, SampleRate: rate}
//
// Percussion one-shots are brought to the track's rate first:
//
//	kick, _, err := audio.CollectMonoAtRate(kickSrc, rate, 4096)
//
// # Resampling
//
// The Resampler changes sample rate using cubic interpolation:
//
//	resampler := audio.NewResampler(source, 44100)
//	buf := make([]float32, 4096)
//	n, err := resampler.ReadSamples(buf)
//
// Both upsampling and downsampling are supported.
//
// # Channel Mixing
//
// The MonoMixer converts multi-channel audio to mono by averaging:
//
//	mono := audio.NewMonoMixer(source)
//
// The mixing core only operates on mono data.
//
// # Format Registry
//
// The registry allows dynamic decoder registration:
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	decoder, _ := registry.Get("wav")
//
// # Sample Format
//
// Samples are float32 in [-1.0, 1.0]: 0.0 is silence, ±1.0 full scale.
// The normalized format lets processing stages compose without caring
// about bit depth; clipping only happens at final quantization.
//
// # Error Handling
//
// Streaming functions return io.EOF when no more data is available;
// any other error indicates a problem with the source:
//
//	for {
//	    n, err := source.ReadSamples(buf)
//	    if err == io.EOF {
//	        break // Normal end of stream
//	    }
//	    if err != nil {
//	        return err
//	    }
//	    // Process n samples from buf
//	}
package audio
