package interpolate

import (
	"math"

	"github.com/joeydtaylor/acoustofield/pkg/internal/shape"
	"github.com/joeydtaylor/acoustofield/pkg/internal/types"
	"github.com/joeydtaylor/acoustofield/pkg/internal/utils"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// axes spans the bounding box with n evenly spaced columns and rows.
func axes(bb shape.BBox, n int) ([]float64, []float64) {
	return utils.Linspace(bb.MinX, bb.MaxX, n), utils.Linspace(bb.MinY, bb.MaxY, n)
}

// mesh expands axes into row-major coordinate grids; row r holds y = ys[r].
func mesh(xs, ys []float64) ([][]float64, [][]float64) {
	xi := make([][]float64, len(ys))
	yi := make([][]float64, len(ys))
	for r, y := range ys {
		xi[r] = append([]float64(nil), xs...)
		yi[r] = make([]float64, len(xs))
		floats.AddConst(y, yi[r])
	}
	return xi, yi
}

func nanGrid(rows, cols int) [][]float64 {
	zi := make([][]float64, rows)
	for r := range zi {
		zi[r] = make([]float64, cols)
		for c := range zi[r] {
			zi[r][c] = math.NaN()
		}
	}
	return zi
}

// applyMask sets every cell outside the region, holes included, to NaN.
func applyMask(zi [][]float64, xs, ys []float64, region shape.Region) {
	for r, y := range ys {
		for c, x := range xs {
			if !region.IsInside(x, y) {
				zi[r][c] = math.NaN()
			}
		}
	}
}

// Stats summarises the finite cells of zi. All fields are zero when none are finite.
func Stats(zi [][]float64) types.GridStats {
	var vals []float64
	for _, row := range zi {
		for _, v := range row {
			if !math.IsNaN(v) && !math.IsInf(v, 0) {
				vals = append(vals, v)
			}
		}
	}
	if len(vals) == 0 {
		return types.GridStats{}
	}
	mean, std := stat.PopMeanStdDev(vals, nil)
	return types.GridStats{
		VMin:       floats.Min(vals),
		VMax:       floats.Max(vals),
		Mean:       mean,
		Std:        std,
		ValidCells: len(vals),
	}
}

// DefaultRangeChange is the relative range change that calls for a full redraw.
const DefaultRangeChange = 0.3

// RangeChanged reports whether the stress range moved by more than threshold
// (a fraction of the old range). An empty or flat old field always counts as changed.
func RangeChanged(old, cur types.GridStats, threshold float64) bool {
	if old.ValidCells == 0 || cur.ValidCells == 0 {
		return true
	}
	oldRange := old.VMax - old.VMin
	if oldRange == 0 {
		return true
	}
	return math.Abs((cur.VMax-cur.VMin)-oldRange)/oldRange > threshold
}
