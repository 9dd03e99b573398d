// Package parquetsink exports point results and stress grids as Parquet files.
package parquetsink

import (
	"os"
	"sync"

	parquet "github.com/parquet-go/parquet-go"

	"github.com/joeydtaylor/acoustofield/pkg/internal/types"
	"github.com/joeydtaylor/acoustofield/pkg/internal/utils"
)

const (
	PointsFile          = "points.parquet"
	defaultRowGroupSize = 1_000
)

// PointRecord is one row of points.parquet.
type PointRecord struct {
	ExperimentID string  `parquet:"experiment_id"`
	Index        int64   `parquet:"point_index"`
	X            float64 `parquet:"x_mm"`
	Y            float64 `parquet:"y_mm"`
	TimeShiftNs  float64 `parquet:"time_shift_ns"`
	StressMPa    float64 `parquet:"stress_mpa"`
	QualityScore float64 `parquet:"quality_score"`
	SNR          float64 `parquet:"snr_db"`
	Suspicious   bool    `parquet:"is_suspicious"`
	IsBaseline   bool    `parquet:"is_baseline"`
	Warnings     string  `parquet:"warnings"`
	WrittenAtMs  int64   `parquet:"written_at_ms"`
}

// CellRecord is one valid cell of a grid file. Masked cells are not written.
type CellRecord struct {
	ExperimentID string  `parquet:"experiment_id"`
	Row          int32   `parquet:"row"`
	Col          int32   `parquet:"col"`
	X            float64 `parquet:"x_mm"`
	Y            float64 `parquet:"y_mm"`
	StressMPa    float64 `parquet:"stress_mpa"`
	Method       string  `parquet:"method"`
	Confidence   string  `parquet:"confidence"`
}

// Sink implements types.ResultSink over a directory. Points accumulate in one
// file that is finalised on Close; every grid gets its own file.
type Sink struct {
	componentMetadata types.ComponentMetadata
	dir               string
	experimentID      string
	compression       parquet.WriterOption
	compressionName   string
	rowGroupSize      int

	mu        sync.Mutex
	file      *os.File
	pw        *parquet.GenericWriter[PointRecord]
	pending   int
	written   int
	gridCount int
	closed    bool

	loggers     []types.Logger
	loggersLock sync.Mutex
}

// NewSink creates dir and opens points.parquet for writing.
func NewSink(dir string, options ...types.Option[*Sink]) (*Sink, error) {
	s := &Sink{
		componentMetadata: types.ComponentMetadata{
			ID:   utils.GenerateUniqueHash(),
			Type: "PARQUET_SINK",
		},
		dir:             dir,
		compression:     parquet.Compression(&parquet.Snappy),
		compressionName: "snappy",
		rowGroupSize:    defaultRowGroupSize,
	}
	for _, opt := range options {
		if opt != nil {
			opt(s)
		}
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	f, err := os.Create(s.path(PointsFile))
	if err != nil {
		return nil, err
	}
	s.file = f
	s.pw = parquet.NewGenericWriter[PointRecord](f, s.compression)
	return s, nil
}
