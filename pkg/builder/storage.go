package builder

import (
	"github.com/joeydtaylor/acoustofield/pkg/internal/codec"
	"github.com/joeydtaylor/acoustofield/pkg/internal/parquetsink"
	"github.com/joeydtaylor/acoustofield/pkg/internal/types"
)

type WaveformStore = types.WaveformStore

type ResultSink = types.ResultSink

type PointResult = types.PointResult

type Compression = codec.Compression

const (
	CompressNone   = codec.CompressNone
	CompressGzip   = codec.CompressGzip
	CompressSnappy = codec.CompressSnappy
	CompressZstd   = codec.CompressZstd
	CompressBrotli = codec.CompressBrotli
	CompressLZ4    = codec.CompressLZ4
)

type FileStore = codec.FileStore

type ParquetSink = parquetsink.Sink

// NewFileStore stores compressed, optionally AES-GCM encrypted waveform frames in dir.
func NewFileStore(dir string, c Compression, key string) (*codec.FileStore, error) {
	return codec.NewFileStore(dir, c, key)
}

// NewWaveformEncoder frames single waveforms for transport or storage.
func NewWaveformEncoder(c Compression, key string) (*codec.WaveformEncoder, error) {
	return codec.NewWaveformEncoder(c, key)
}

func NewWaveformDecoder(key string) (*codec.WaveformDecoder, error) {
	return codec.NewWaveformDecoder(key)
}

// NewParquetSink writes point results and grids as Parquet files under dir.
func NewParquetSink(dir string, options ...types.Option[*parquetsink.Sink]) (*parquetsink.Sink, error) {
	return parquetsink.NewSink(dir, options...)
}

func ParquetSinkWithLogger(loggers ...types.Logger) types.Option[*parquetsink.Sink] {
	return parquetsink.WithLogger(loggers...)
}

func ParquetSinkWithExperimentID(id string) types.Option[*parquetsink.Sink] {
	return parquetsink.WithExperimentID(id)
}

// ParquetSinkWithCompression accepts snappy, gzip or zstd.
func ParquetSinkWithCompression(name string) types.Option[*parquetsink.Sink] {
	return parquetsink.WithCompression(name)
}

func ParquetSinkWithRowGroupSize(n int) types.Option[*parquetsink.Sink] {
	return parquetsink.WithRowGroupSize(n)
}
