package aiff

import (
	"bytes"
	"errors"
	"io"
	"math"
	"testing"

	goaudio "github.com/go-audio/audio"
)

// fakeAiffReader drives source.ReadSamples without a real file.
type fakeAiffReader struct {
	data []int
	pos  int
}

func (f *fakeAiffReader) Format() *goaudio.Format {
	return &goaudio.Format{NumChannels: 1, SampleRate: 44100}
}

func (f *fakeAiffReader) PCMBuffer(buf *goaudio.IntBuffer) (int, error) {
	if f.pos >= len(f.data) {
		return 0, nil
	}
	n := copy(buf.Data, f.data[f.pos:])
	f.pos += n
	return n, nil
}

func TestSource_Normalization16Bit(t *testing.T) {
	t.Parallel()

	src := &source{
		dec:        &fakeAiffReader{data: []int{32767, -32768, 0, -16384}},
		sampleRate: 44100,
		channels:   1,
		bitDepth:   16,
	}

	buf := make([]float32, 4)
	n, _ := src.ReadSamples(buf)
	if n != 4 {
		t.Fatalf("ReadSamples() = %d, want 4", n)
	}

	want := []float32{32767.0 / 32768.0, -1.0, 0.0, -0.5}
	for i := range want {
		if math.Abs(float64(buf[i]-want[i])) > 1e-6 {
			t.Errorf("buf[%d] = %v, want %v", i, buf[i], want[i])
		}
	}
}

func TestSource_ShortReadIsEOF(t *testing.T) {
	t.Parallel()

	src := &source{
		dec:        &fakeAiffReader{data: []int{100, 200}},
		sampleRate: 44100,
		channels:   1,
		bitDepth:   16,
	}

	buf := make([]float32, 8)
	n, err := src.ReadSamples(buf)
	if n != 2 {
		t.Fatalf("ReadSamples() = %d, want 2", n)
	}
	if err != io.EOF {
		t.Errorf("short read error = %v, want io.EOF", err)
	}
}

func TestDecoder_NotAiff(t *testing.T) {
	t.Parallel()

	garbage := bytes.NewReader([]byte("RIFF....WAVE this is a wav, not an aiff"))

	_, err := Decoder{}.Decode(garbage)
	if !errors.Is(err, ErrNotAiffFile) {
		t.Errorf("Decode() error = %v, want %v", err, ErrNotAiffFile)
	}
}

func TestReadSeeker(t *testing.T) {
	t.Parallel()

	rs := &readSeeker{data: []byte{1, 2, 3, 4, 5}}

	buf := make([]byte, 2)
	if n, err := rs.Read(buf); n != 2 || err != nil {
		t.Fatalf("Read() = (%d, %v), want (2, nil)", n, err)
	}

	if pos, err := rs.Seek(0, io.SeekStart); pos != 0 || err != nil {
		t.Fatalf("Seek(0, start) = (%d, %v)", pos, err)
	}
	if pos, err := rs.Seek(-1, io.SeekEnd); pos != 4 || err != nil {
		t.Fatalf("Seek(-1, end) = (%d, %v)", pos, err)
	}
	if _, err := rs.Seek(-10, io.SeekStart); err == nil {
		t.Error("Seek() to negative position succeeded")
	}
}
