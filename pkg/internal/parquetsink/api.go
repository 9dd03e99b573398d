package parquetsink

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	parquet "github.com/parquet-go/parquet-go"

	"github.com/joeydtaylor/acoustofield/pkg/internal/types"
)

// ErrClosed is returned by writes after Close.
var ErrClosed = errors.New("parquetsink: sink is closed")

func (s *Sink) path(name string) string { return filepath.Join(s.dir, name) }

// GetComponentMetadata returns the sink's identity.
func (s *Sink) GetComponentMetadata() types.ComponentMetadata {
	return s.componentMetadata
}

// Dir returns the output directory.
func (s *Sink) Dir() string { return s.dir }

// WritePoint appends one point row.
func (s *Sink) WritePoint(r types.PointResult) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}
	rec := PointRecord{
		ExperimentID: s.experimentID,
		Index:        int64(r.Index),
		X:            r.X,
		Y:            r.Y,
		TimeShiftNs:  r.TimeShiftNs,
		StressMPa:    r.StressMPa,
		QualityScore: r.QualityScore,
		SNR:          r.SNR,
		Suspicious:   r.Suspicious,
		IsBaseline:   r.IsBaseline,
		Warnings:     joinWarnings(r.Warnings),
		WrittenAtMs:  time.Now().UnixMilli(),
	}
	if _, err := s.pw.Write([]PointRecord{rec}); err != nil {
		return err
	}
	s.pending++
	s.written++
	if s.pending >= s.rowGroupSize {
		if err := s.pw.Flush(); err != nil {
			return err
		}
		s.pending = 0
	}
	return nil
}

func joinWarnings(ws []types.ValidationWarning) string {
	parts := make([]string, 0, len(ws))
	for _, w := range ws {
		parts = append(parts, fmt.Sprintf("%s[%s]: %s", w.Type, w.Severity, w.Message))
	}
	return strings.Join(parts, "; ")
}

// WriteGrid writes the finite cells of g to grid_NNN.parquet. Grids with no
// finite cell still produce an empty file so callers can tell a grid was emitted.
func (s *Sink) WriteGrid(g types.StressGrid) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrClosed
	}
	s.gridCount++
	name := fmt.Sprintf("grid_%03d.parquet", s.gridCount)
	s.mu.Unlock()

	var cells []CellRecord
	for r, row := range g.Zi {
		for c, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				continue
			}
			cells = append(cells, CellRecord{
				ExperimentID: s.experimentID,
				Row:          int32(r),
				Col:          int32(c),
				X:            g.Xi[r][c],
				Y:            g.Yi[r][c],
				StressMPa:    v,
				Method:       string(g.Method),
				Confidence:   string(g.Confidence),
			})
		}
	}
	if err := writeFile(s.path(name), cells, s.compression); err != nil {
		return err
	}
	s.NotifyLoggers(types.InfoLevel, "Parquet grid written",
		"component", s.componentMetadata,
		"event", "WriteGrid",
		"result", "SUCCESS",
		"file", name,
		"records", len(cells),
		"compression", s.compressionName,
	)
	return nil
}

// Close finalises points.parquet. Further writes fail with ErrClosed.
func (s *Sink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	err := s.pw.Close()
	if cerr := s.file.Close(); err == nil {
		err = cerr
	}
	s.NotifyLoggers(types.InfoLevel, "Parquet flush",
		"component", s.componentMetadata,
		"event", "Close",
		"result", resultOf(err),
		"records", s.written,
		"compression", s.compressionName,
	)
	return err
}

func resultOf(err error) string {
	if err != nil {
		return "FAILURE"
	}
	return "SUCCESS"
}

func writeFile[T any](path string, rows []T, compression parquet.WriterOption) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	pw := parquet.NewGenericWriter[T](f, compression)
	if len(rows) > 0 {
		if _, err = pw.Write(rows); err != nil {
			pw.Close()
			f.Close()
			return err
		}
	}
	err = pw.Close()
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}
