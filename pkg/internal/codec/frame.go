package codec

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/joeydtaylor/acoustofield/pkg/internal/types"
)

// Frame layout, little endian:
//
//	magic "AFWF" | version u8 | compression u8 | flags u8 | index i32 | body length u32 | body
//
// The body is sample rate f64, sample count u32, has-times u8, voltages,
// then times when present; it is compressed and then optionally sealed.
const (
	frameVersion   byte = 1
	flagEncrypted  byte = 1 << 0
	maxFrameBody        = 1 << 30
	maxFrameSample      = 1 << 26
)

var frameMagic = [4]byte{'A', 'F', 'W', 'F'}

// Frame is one stored waveform and the point index it belongs to.
type Frame struct {
	Index    int
	Waveform types.Waveform
}

type frameHeader struct {
	Magic       [4]byte
	Version     byte
	Compression byte
	Flags       byte
	Index       int32
	BodyLength  uint32
}

// WaveformEncoder writes frames with a fixed compression and optional AES-GCM key.
type WaveformEncoder struct {
	compression Compression
	key         []byte
}

// WaveformDecoder reads frames of any compression. A key is required only
// for sealed frames.
type WaveformDecoder struct {
	key []byte
}

// NewWaveformEncoder validates the compression and key. An empty key disables encryption.
func NewWaveformEncoder(c Compression, key string) (*WaveformEncoder, error) {
	if _, ok := compressionCodes[c]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCompression, c)
	}
	e := &WaveformEncoder{compression: c}
	if key != "" {
		k, err := normalizeAESKey(key)
		if err != nil {
			return nil, err
		}
		e.key = k
	}
	return e, nil
}

// NewWaveformDecoder validates the key. An empty key reads only unsealed frames.
func NewWaveformDecoder(key string) (*WaveformDecoder, error) {
	d := &WaveformDecoder{}
	if key != "" {
		k, err := normalizeAESKey(key)
		if err != nil {
			return nil, err
		}
		d.key = k
	}
	return d, nil
}

// Compression returns the algorithm used for new frames.
func (e *WaveformEncoder) Compression() Compression { return e.compression }

// Encode writes f as one frame.
func (e *WaveformEncoder) Encode(w io.Writer, f Frame) error {
	var raw bytes.Buffer
	wf := f.Waveform
	hasTimes := byte(0)
	if wf.HasTimes() {
		hasTimes = 1
	}
	if err := binary.Write(&raw, binary.LittleEndian, wf.SampleRate); err != nil {
		return err
	}
	if err := binary.Write(&raw, binary.LittleEndian, uint32(len(wf.Voltages))); err != nil {
		return err
	}
	raw.WriteByte(hasTimes)
	if err := binary.Write(&raw, binary.LittleEndian, wf.Voltages); err != nil {
		return err
	}
	if hasTimes == 1 {
		if err := binary.Write(&raw, binary.LittleEndian, wf.Times); err != nil {
			return err
		}
	}

	body, err := compressData(raw.Bytes(), e.compression)
	if err != nil {
		return fmt.Errorf("compression failed: %w", err)
	}
	hdr := frameHeader{
		Magic:       frameMagic,
		Version:     frameVersion,
		Compression: compressionCodes[e.compression],
		Index:       int32(f.Index),
	}
	if e.key != nil {
		if body, err = encryptData(body, e.key); err != nil {
			return fmt.Errorf("encryption failed: %w", err)
		}
		hdr.Flags |= flagEncrypted
	}
	hdr.BodyLength = uint32(len(body))

	if err := binary.Write(w, binary.LittleEndian, hdr); err != nil {
		return err
	}
	_, err = w.Write(body)
	return err
}

// Decode reads one frame.
func (d *WaveformDecoder) Decode(r io.Reader) (Frame, error) {
	var hdr frameHeader
	if err := binary.Read(r, binary.LittleEndian, &hdr); err != nil {
		if errors.Is(err, io.ErrUnexpectedEOF) {
			return Frame{}, fmt.Errorf("%w: truncated header", ErrBadMagic)
		}
		return Frame{}, err
	}
	if hdr.Magic != frameMagic {
		return Frame{}, ErrBadMagic
	}
	if hdr.Version > frameVersion {
		return Frame{}, fmt.Errorf("%w: %d", ErrUnsupportedVersion, hdr.Version)
	}
	c, err := compressionFromCode(hdr.Compression)
	if err != nil {
		return Frame{}, err
	}
	if hdr.BodyLength > maxFrameBody {
		return Frame{}, fmt.Errorf("%w: body of %d bytes", ErrCorruptFrame, hdr.BodyLength)
	}

	body := make([]byte, hdr.BodyLength)
	if _, err := io.ReadFull(r, body); err != nil {
		return Frame{}, fmt.Errorf("%w: %v", ErrCorruptFrame, err)
	}
	if hdr.Flags&flagEncrypted != 0 {
		if d.key == nil {
			return Frame{}, errors.New("codec: frame is encrypted but no key is configured")
		}
		if body, err = decryptData(body, d.key); err != nil {
			return Frame{}, fmt.Errorf("decryption failed: %w", err)
		}
	}
	raw, err := decompressData(body, c)
	if err != nil {
		return Frame{}, fmt.Errorf("decompression failed: %w", err)
	}
	wf, err := decodeBody(bytes.NewReader(raw))
	if err != nil {
		return Frame{}, err
	}
	return Frame{Index: int(hdr.Index), Waveform: wf}, nil
}

func decodeBody(r *bytes.Reader) (types.Waveform, error) {
	var wf types.Waveform
	var n uint32
	if err := binary.Read(r, binary.LittleEndian, &wf.SampleRate); err != nil {
		return wf, fmt.Errorf("%w: %v", ErrCorruptFrame, err)
	}
	if err := binary.Read(r, binary.LittleEndian, &n); err != nil {
		return wf, fmt.Errorf("%w: %v", ErrCorruptFrame, err)
	}
	hasTimes, err := r.ReadByte()
	if err != nil {
		return wf, fmt.Errorf("%w: %v", ErrCorruptFrame, err)
	}
	want := int64(n) * 8
	if hasTimes == 1 {
		want *= 2
	}
	if n > maxFrameSample || int64(r.Len()) != want {
		return wf, fmt.Errorf("%w: %d samples do not match %d body bytes", ErrCorruptFrame, n, r.Len())
	}

	wf.Voltages = make([]float64, n)
	if err := binary.Read(r, binary.LittleEndian, wf.Voltages); err != nil {
		return wf, fmt.Errorf("%w: %v", ErrCorruptFrame, err)
	}
	if hasTimes == 1 {
		wf.Times = make([]float64, n)
		if err := binary.Read(r, binary.LittleEndian, wf.Times); err != nil {
			return wf, fmt.Errorf("%w: %v", ErrCorruptFrame, err)
		}
	}
	return wf, nil
}
