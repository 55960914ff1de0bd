// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"math"
	"testing"
)

func TestCollectMono_Mono(t *testing.T) {
	t.Parallel()

	samples, rate, err := CollectMono(newConstantSource(44100, 1, 1000, 0.5), 256)
	if err != nil {
		t.Fatalf("CollectMono() error = %v", err)
	}

	if rate != 44100 {
		t.Errorf("rate = %d, want 44100", rate)
	}
	if len(samples) != 1000 {
		t.Fatalf("collected %d samples, want 1000", len(samples))
	}
	for i, v := range samples {
		if v != 0.5 {
			t.Fatalf("samples[%d] = %v, want 0.5", i, v)
		}
	}
}

func TestCollectMono_StereoReduced(t *testing.T) {
	t.Parallel()

	src := newMockSource(48000, 2, 500, func(sample, channel int) float32 {
		if channel == 0 {
			return 1.0
		}
		return 0.0
	})

	samples, rate, err := CollectMono(src, 128)
	if err != nil {
		t.Fatalf("CollectMono() error = %v", err)
	}

	if rate != 48000 {
		t.Errorf("rate = %d, want 48000", rate)
	}
	if len(samples) != 500 {
		t.Fatalf("collected %d samples, want 500 (frames, not interleaved)", len(samples))
	}
	for i, v := range samples {
		if v != 0.5 {
			t.Fatalf("samples[%d] = %v, want 0.5", i, v)
		}
	}
}

func TestCollectMono_EmptySource(t *testing.T) {
	t.Parallel()

	samples, _, err := CollectMono(newSilentSource(44100, 1, 0), 128)
	if err != nil {
		t.Fatalf("CollectMono() error = %v", err)
	}
	if len(samples) != 0 {
		t.Errorf("collected %d samples from empty source, want 0", len(samples))
	}
}

func TestCollectMonoAtRate_SameRateSkipsResampling(t *testing.T) {
	t.Parallel()

	samples, rate, err := CollectMonoAtRate(newConstantSource(44100, 1, 1000, 0.5), 44100, 256)
	if err != nil {
		t.Fatalf("CollectMonoAtRate() error = %v", err)
	}

	if rate != 44100 {
		t.Errorf("rate = %d, want 44100", rate)
	}
	if len(samples) != 1000 {
		t.Errorf("collected %d samples, want exactly 1000 (no resampling)", len(samples))
	}
}

func TestCollectMonoAtRate_Upsample(t *testing.T) {
	t.Parallel()

	samples, rate, err := CollectMonoAtRate(newConstantSource(22050, 1, 1000, 0.25), 44100, 256)
	if err != nil {
		t.Fatalf("CollectMonoAtRate() error = %v", err)
	}

	if rate != 44100 {
		t.Errorf("rate = %d, want 44100", rate)
	}
	if len(samples) < 1900 || len(samples) > 2010 {
		t.Fatalf("collected %d samples, want ~2000", len(samples))
	}
	for i, v := range samples {
		if math.Abs(float64(v-0.25)) > 1e-5 {
			t.Fatalf("samples[%d] = %v, want 0.25", i, v)
		}
	}
}

func TestCollectMonoAtRate_StereoDownsample(t *testing.T) {
	t.Parallel()

	src := newConstantSource(44100, 2, 2000, 0.5)

	samples, rate, err := CollectMonoAtRate(src, 22050, 256)
	if err != nil {
		t.Fatalf("CollectMonoAtRate() error = %v", err)
	}

	if rate != 22050 {
		t.Errorf("rate = %d, want 22050", rate)
	}
	if len(samples) < 950 || len(samples) > 1010 {
		t.Fatalf("collected %d samples, want ~1000", len(samples))
	}
}
