package codec

import (
	"bytes"
	"compress/gzip"
	"fmt"
	"io"
	"strings"

	"github.com/andybalholm/brotli"
	"github.com/golang/snappy"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4"
)

// Compression names a frame body compression algorithm.
type Compression string

const (
	CompressNone   Compression = "none"
	CompressGzip   Compression = "gzip"
	CompressSnappy Compression = "snappy"
	CompressZstd   Compression = "zstd"
	CompressBrotli Compression = "brotli"
	CompressLZ4    Compression = "lz4"
)

// Compressions lists every supported algorithm.
var Compressions = []Compression{CompressNone, CompressGzip, CompressSnappy, CompressZstd, CompressBrotli, CompressLZ4}

// frame header codes; append only.
var compressionCodes = map[Compression]byte{
	CompressNone:   0,
	CompressGzip:   1,
	CompressSnappy: 2,
	CompressZstd:   3,
	CompressBrotli: 4,
	CompressLZ4:    5,
}

// ParseCompression resolves a configuration value. The empty string and
// "deflate" are accepted as none and gzip.
func ParseCompression(s string) (Compression, error) {
	switch c := Compression(strings.ToLower(strings.TrimSpace(s))); c {
	case "":
		return CompressNone, nil
	case "deflate":
		return CompressGzip, nil
	default:
		if _, ok := compressionCodes[c]; ok {
			return c, nil
		}
		return "", fmt.Errorf("%w: %q", ErrUnknownCompression, s)
	}
}

func compressionFromCode(code byte) (Compression, error) {
	for c, v := range compressionCodes {
		if v == code {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: code %d", ErrUnknownCompression, code)
}

func compressData(data []byte, algorithm Compression) ([]byte, error) {
	var b bytes.Buffer
	var w io.WriteCloser

	switch algorithm {
	case CompressNone:
		return data, nil
	case CompressGzip:
		w = gzip.NewWriter(&b)
	case CompressSnappy:
		w = snappy.NewBufferedWriter(&b)
	case CompressZstd:
		var err error
		w, err = zstd.NewWriter(&b)
		if err != nil {
			return nil, err
		}
	case CompressBrotli:
		w = brotli.NewWriterLevel(&b, brotli.DefaultCompression)
	case CompressLZ4:
		w = lz4.NewWriter(&b)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownCompression, algorithm)
	}

	if _, err := w.Write(data); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

func decompressData(data []byte, algorithm Compression) ([]byte, error) {
	var r io.Reader
	src := bytes.NewReader(data)

	switch algorithm {
	case CompressNone:
		return data, nil
	case CompressGzip:
		gz, err := gzip.NewReader(src)
		if err != nil {
			return nil, err
		}
		defer gz.Close()
		r = gz
	case CompressSnappy:
		r = snappy.NewReader(src)
	case CompressZstd:
		zr, err := zstd.NewReader(src)
		if err != nil {
			return nil, err
		}
		defer zr.Close()
		r = zr
	case CompressBrotli:
		r = brotli.NewReader(src)
	case CompressLZ4:
		r = lz4.NewReader(src)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownCompression, algorithm)
	}
	return io.ReadAll(r)
}
