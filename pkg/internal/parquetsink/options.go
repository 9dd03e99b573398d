package parquetsink

import (
	"strings"

	parquet "github.com/parquet-go/parquet-go"

	"github.com/joeydtaylor/acoustofield/pkg/internal/types"
)

// WithLogger attaches loggers.
func WithLogger(logger ...types.Logger) types.Option[*Sink] {
	return func(s *Sink) {
		s.ConnectLogger(logger...)
	}
}

// WithExperimentID stamps every row with an experiment identifier.
func WithExperimentID(id string) types.Option[*Sink] {
	return func(s *Sink) {
		s.experimentID = id
	}
}

// WithCompression selects the Parquet page codec: zstd, gzip or snappy (default).
func WithCompression(name string) types.Option[*Sink] {
	return func(s *Sink) {
		switch strings.ToLower(name) {
		case "zstd":
			s.compression, s.compressionName = parquet.Compression(&parquet.Zstd), "zstd"
		case "gzip", "gz":
			s.compression, s.compressionName = parquet.Compression(&parquet.Gzip), "gzip"
		default:
			s.compression, s.compressionName = parquet.Compression(&parquet.Snappy), "snappy"
		}
	}
}

// WithRowGroupSize sets how many point rows are buffered before a row group is flushed.
func WithRowGroupSize(n int) types.Option[*Sink] {
	return func(s *Sink) {
		if n > 0 {
			s.rowGroupSize = n
		}
	}
}

// WithComponentMetadata overrides the generated name and ID.
func WithComponentMetadata(name string, id string) types.Option[*Sink] {
	return func(s *Sink) {
		s.componentMetadata.Name = name
		s.componentMetadata.ID = id
	}
}
