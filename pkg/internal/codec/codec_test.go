package codec_test

import (
	"bytes"
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/joeydtaylor/acoustofield/pkg/internal/codec"
	"github.com/joeydtaylor/acoustofield/pkg/internal/types"
)

func waveform(n int, withTimes bool) types.Waveform {
	w := types.Waveform{Voltages: make([]float64, n), SampleRate: 1e9}
	for i := range w.Voltages {
		w.Voltages[i] = math.Sin(float64(i) / 7)
	}
	if withTimes {
		w.Times = make([]float64, n)
		for i := range w.Times {
			w.Times[i] = float64(i) * 1e-9
		}
	}
	return w
}

func equalWaveforms(a, b types.Waveform) bool {
	if a.SampleRate != b.SampleRate || len(a.Voltages) != len(b.Voltages) || len(a.Times) != len(b.Times) {
		return false
	}
	for i := range a.Voltages {
		if a.Voltages[i] != b.Voltages[i] {
			return false
		}
	}
	for i := range a.Times {
		if a.Times[i] != b.Times[i] {
			return false
		}
	}
	return true
}

func TestFrame_EveryCompressionPreservesSamples(t *testing.T) {
	in := codec.Frame{Index: 17, Waveform: waveform(2048, true)}
	dec, _ := codec.NewWaveformDecoder("")
	for _, c := range codec.Compressions {
		enc, err := codec.NewWaveformEncoder(c, "")
		if err != nil {
			t.Fatalf("%s: %v", c, err)
		}
		var buf bytes.Buffer
		if err := enc.Encode(&buf, in); err != nil {
			t.Fatalf("%s encode: %v", c, err)
		}
		out, err := dec.Decode(&buf)
		if err != nil {
			t.Fatalf("%s decode: %v", c, err)
		}
		if out.Index != 17 || !equalWaveforms(in.Waveform, out.Waveform) {
			t.Fatalf("%s altered the frame", c)
		}
	}
}

func TestFrame_CompressionShrinksRepetitiveSignal(t *testing.T) {
	flat := types.Waveform{Voltages: make([]float64, 4096), SampleRate: 1e9}
	size := func(c codec.Compression) int {
		enc, _ := codec.NewWaveformEncoder(c, "")
		var buf bytes.Buffer
		if err := enc.Encode(&buf, codec.Frame{Waveform: flat}); err != nil {
			t.Fatalf("%s: %v", c, err)
		}
		return buf.Len()
	}
	raw := size(codec.CompressNone)
	for _, c := range []codec.Compression{codec.CompressGzip, codec.CompressZstd, codec.CompressLZ4} {
		if got := size(c); got >= raw/4 {
			t.Fatalf("%s: expected strong compression of zeros, %d vs %d bytes", c, got, raw)
		}
	}
}

func TestFrame_Encrypted(t *testing.T) {
	key := "0123456789abcdef0123456789abcdef"
	enc, err := codec.NewWaveformEncoder(codec.CompressSnappy, key)
	if err != nil {
		t.Fatalf("encoder: %v", err)
	}
	var buf bytes.Buffer
	in := codec.Frame{Index: 3, Waveform: waveform(256, false)}
	if err := enc.Encode(&buf, in); err != nil {
		t.Fatalf("encode: %v", err)
	}
	sealed := buf.Bytes()

	plain, _ := codec.NewWaveformDecoder("")
	if _, err := plain.Decode(bytes.NewReader(sealed)); err == nil {
		t.Fatalf("sealed frame must not decode without a key")
	}
	wrong, _ := codec.NewWaveformDecoder("fedcba9876543210fedcba9876543210")
	if _, err := wrong.Decode(bytes.NewReader(sealed)); err == nil {
		t.Fatalf("sealed frame must not decode with the wrong key")
	}
	right, _ := codec.NewWaveformDecoder(key)
	out, err := right.Decode(bytes.NewReader(sealed))
	if err != nil || !equalWaveforms(in.Waveform, out.Waveform) {
		t.Fatalf("decode with key: %v", err)
	}
	if _, err := codec.NewWaveformEncoder(codec.CompressNone, "short"); err == nil {
		t.Fatalf("expected invalid key length")
	}
}

func TestFrame_Errors(t *testing.T) {
	dec, _ := codec.NewWaveformDecoder("")
	if _, err := dec.Decode(bytes.NewReader([]byte("not a frame at all, clearly"))); !errors.Is(err, codec.ErrBadMagic) {
		t.Fatalf("expected ErrBadMagic, got %v", err)
	}
	if _, err := dec.Decode(bytes.NewReader([]byte("AF"))); !errors.Is(err, codec.ErrBadMagic) {
		t.Fatalf("expected ErrBadMagic for a truncated header, got %v", err)
	}
	if _, err := codec.NewWaveformEncoder("rar", ""); !errors.Is(err, codec.ErrUnknownCompression) {
		t.Fatalf("expected ErrUnknownCompression, got %v", err)
	}

	enc, _ := codec.NewWaveformEncoder(codec.CompressNone, "")
	var buf bytes.Buffer
	enc.Encode(&buf, codec.Frame{Waveform: waveform(64, false)})
	truncated := buf.Bytes()[:buf.Len()-10]
	if _, err := dec.Decode(bytes.NewReader(truncated)); !errors.Is(err, codec.ErrCorruptFrame) {
		t.Fatalf("expected ErrCorruptFrame, got %v", err)
	}
}

func TestParseCompression(t *testing.T) {
	cases := map[string]codec.Compression{
		"":        codec.CompressNone,
		"ZSTD":    codec.CompressZstd,
		" lz4 ":   codec.CompressLZ4,
		"deflate": codec.CompressGzip,
		"brotli":  codec.CompressBrotli,
	}
	for in, want := range cases {
		got, err := codec.ParseCompression(in)
		if err != nil || got != want {
			t.Fatalf("%q: got %q %v", in, got, err)
		}
	}
	if _, err := codec.ParseCompression("xz"); !errors.Is(err, codec.ErrUnknownCompression) {
		t.Fatalf("expected ErrUnknownCompression, got %v", err)
	}
}

func TestFileStore(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "waveforms")
	s, err := codec.NewFileStore(dir, codec.CompressZstd, "")
	if err != nil {
		t.Fatalf("store: %v", err)
	}
	if _, _, err := s.LoadBaseline(); err == nil {
		t.Fatalf("empty store has no baseline")
	}
	for _, idx := range []int{12, 3, 7} {
		if err := s.SavePoint(idx, waveform(100+idx, false)); err != nil {
			t.Fatalf("save %d: %v", idx, err)
		}
	}
	if err := s.SaveBaseline(3, waveform(103, false)); err != nil {
		t.Fatalf("save baseline: %v", err)
	}
	os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("keep"), 0o644)

	idx, err := s.PointIndexes()
	if err != nil || len(idx) != 3 || idx[0] != 3 || idx[1] != 7 || idx[2] != 12 {
		t.Fatalf("indexes: %v %v", idx, err)
	}
	w, err := s.LoadPoint(7)
	if err != nil || !equalWaveforms(w, waveform(107, false)) {
		t.Fatalf("load 7: %v", err)
	}
	bi, bw, err := s.LoadBaseline()
	if err != nil || bi != 3 || bw.Len() != 103 {
		t.Fatalf("baseline: %d %d %v", bi, bw.Len(), err)
	}
	if _, err := s.LoadPoint(99); err == nil {
		t.Fatalf("missing point should fail")
	}

	if err := s.Clear(); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if idx, _ := s.PointIndexes(); len(idx) != 0 {
		t.Fatalf("clear left %v", idx)
	}
	if _, err := os.Stat(filepath.Join(dir, "notes.txt")); err != nil {
		t.Fatalf("clear must keep unrelated files: %v", err)
	}
}
