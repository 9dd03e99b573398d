package layout

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/joeydtaylor/acoustofield/pkg/internal/shape"
	"github.com/joeydtaylor/acoustofield/pkg/internal/types"
)

var (
	xColumns     = []string{"x", "X"}
	yColumns     = []string{"y", "Y"}
	rColumns     = []string{"r", "R"}
	thetaColumns = []string{"theta", "Theta", "θ"}
)

// LoadCSV reads custom point positions from a CSV file with a header row.
// See ReadCSV.
func LoadCSV(path string, region shape.Region) (Layout, error) {
	f, err := os.Open(path)
	if err != nil {
		return Layout{}, fmt.Errorf("open custom points: %w", err)
	}
	defer f.Close()
	return ReadCSV(f, region)
}

// ReadCSV parses columns x|X and y|Y plus optional r|R and theta|Theta|θ.
// Rows with unparseable coordinates are skipped. When region has a base
// shape, points outside it are dropped.
func ReadCSV(r io.Reader, region shape.Region) (Layout, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return Layout{}, ErrNoPoints
		}
		return Layout{}, fmt.Errorf("read custom points header: %w", err)
	}
	cols := make(map[string]int, len(header))
	for i, h := range header {
		cols[strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))] = i
	}
	xi, yi := column(cols, xColumns), column(cols, yColumns)
	if xi < 0 || yi < 0 {
		return Layout{}, fmt.Errorf("%w: missing x or y column", ErrNoPoints)
	}
	ri, ti := column(cols, rColumns), column(cols, thetaColumns)

	var candidates []types.MeasurementPoint
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return Layout{}, fmt.Errorf("read custom points: %w", err)
		}
		x, okX := field(rec, xi)
		y, okY := field(rec, yi)
		if !okX || !okY {
			continue
		}
		p := cartesian(x, y)
		if rv, ok := field(rec, ri); ok {
			p.R = rv
			p.HasPolar = true
		}
		if tv, ok := field(rec, ti); ok {
			p.Theta = tv
			p.HasPolar = true
		}
		candidates = append(candidates, p)
	}
	if len(candidates) == 0 {
		return Layout{}, ErrNoPoints
	}
	if region.Base == nil {
		renumber(candidates)
		return Layout{Points: candidates, Candidates: len(candidates)}, nil
	}
	return filter(region, candidates), nil
}

func column(cols map[string]int, names []string) int {
	for _, n := range names {
		if i, ok := cols[n]; ok {
			return i
		}
	}
	return -1
}

func field(rec []string, i int) (float64, bool) {
	if i < 0 || i >= len(rec) {
		return 0, false
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(rec[i]), 64)
	return v, err == nil
}
