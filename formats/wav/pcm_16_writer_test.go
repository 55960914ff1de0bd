// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"encoding/binary"
	"testing"
)

func TestWriteWAV16_HeaderLayout(t *testing.T) {
	t.Parallel()

	samples := []int16{100, -100, 200, -200}

	var buf bytes.Buffer
	if err := WriteWAV16(&buf, 8000, samples); err != nil {
		t.Fatalf("WriteWAV16() error = %v", err)
	}

	data := buf.Bytes()
	if len(data) != 44+len(samples)*2 {
		t.Fatalf("file size = %d, want %d", len(data), 44+len(samples)*2)
	}

	if string(data[0:4]) != "RIFF" {
		t.Errorf("missing RIFF magic: %q", data[0:4])
	}
	if got := binary.LittleEndian.Uint32(data[4:8]); got != uint32(36+len(samples)*2) {
		t.Errorf("RIFF size = %d, want %d", got, 36+len(samples)*2)
	}
	if string(data[8:12]) != "WAVE" {
		t.Errorf("missing WAVE magic: %q", data[8:12])
	}
	if string(data[12:16]) != "fmt " {
		t.Errorf("missing fmt chunk: %q", data[12:16])
	}
	if got := binary.LittleEndian.Uint32(data[16:20]); got != 16 {
		t.Errorf("fmt chunk size = %d, want 16", got)
	}
	if got := binary.LittleEndian.Uint16(data[20:22]); got != 1 {
		t.Errorf("audio format = %d, want 1 (PCM)", got)
	}
	if got := binary.LittleEndian.Uint16(data[22:24]); got != 1 {
		t.Errorf("channels = %d, want 1", got)
	}
	if got := binary.LittleEndian.Uint32(data[24:28]); got != 8000 {
		t.Errorf("sample rate = %d, want 8000", got)
	}
	if got := binary.LittleEndian.Uint32(data[28:32]); got != 16000 {
		t.Errorf("byte rate = %d, want 16000", got)
	}
	if got := binary.LittleEndian.Uint16(data[32:34]); got != 2 {
		t.Errorf("block align = %d, want 2", got)
	}
	if got := binary.LittleEndian.Uint16(data[34:36]); got != 16 {
		t.Errorf("bits per sample = %d, want 16", got)
	}
	if string(data[36:40]) != "data" {
		t.Errorf("missing data chunk: %q", data[36:40])
	}
	if got := binary.LittleEndian.Uint32(data[40:44]); got != uint32(len(samples)*2) {
		t.Errorf("data size = %d, want %d", got, len(samples)*2)
	}
}

func TestWriteWAV16_SampleBytes(t *testing.T) {
	t.Parallel()

	samples := []int16{0x1234, -1}

	var buf bytes.Buffer
	if err := WriteWAV16(&buf, 44100, samples); err != nil {
		t.Fatalf("WriteWAV16() error = %v", err)
	}

	data := buf.Bytes()[44:]
	want := []byte{0x34, 0x12, 0xFF, 0xFF} // little-endian
	if !bytes.Equal(data, want) {
		t.Errorf("sample bytes = %v, want %v", data, want)
	}
}

func TestWriteWAV16_Empty(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := WriteWAV16(&buf, 44100, nil); err != nil {
		t.Fatalf("WriteWAV16() error = %v", err)
	}

	if buf.Len() != 44 {
		t.Errorf("empty file size = %d, want 44 (header only)", buf.Len())
	}
	if got := binary.LittleEndian.Uint32(buf.Bytes()[40:44]); got != 0 {
		t.Errorf("data size = %d, want 0", got)
	}
}

func TestWriteWAV16_InvalidSampleRate(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := WriteWAV16(&buf, 0, []int16{1}); err != ErrInvalidSampleRate {
		t.Errorf("WriteWAV16() error = %v, want %v", err, ErrInvalidSampleRate)
	}
}

func TestWriteWAV16_LargeBuffer(t *testing.T) {
	t.Parallel()

	// Spans several write chunks.
	samples := make([]int16, 50000)
	for i := range samples {
		samples[i] = int16(i % 1000)
	}

	var buf bytes.Buffer
	if err := WriteWAV16(&buf, 44100, samples); err != nil {
		t.Fatalf("WriteWAV16() error = %v", err)
	}

	data := buf.Bytes()[44:]
	if len(data) != len(samples)*2 {
		t.Fatalf("data size = %d, want %d", len(data), len(samples)*2)
	}

	for i, s := range samples {
		got := int16(binary.LittleEndian.Uint16(data[i*2 : i*2+2]))
		if got != s {
			t.Fatalf("sample %d = %d, want %d", i, got, s)
		}
	}
}
