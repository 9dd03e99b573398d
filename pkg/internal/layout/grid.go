package layout

import (
	"fmt"

	"github.com/joeydtaylor/acoustofield/pkg/internal/shape"
	"github.com/joeydtaylor/acoustofield/pkg/internal/types"
	"github.com/joeydtaylor/acoustofield/pkg/internal/utils"
)

// GridParams describes a Cartesian lattice. Non-empty RowSpacing or
// ColSpacing switch that axis to variable steps starting at the margin;
// steps that would leave the usable area are dropped. Otherwise Rows and
// Cols points are spread evenly, edges included.
type GridParams struct {
	Rows       int
	Cols       int
	RowSpacing []float64
	ColSpacing []float64
	Margins    Margins
}

// Grid lays a lattice over the region's bounding box shrunk by the margins
// and keeps the points inside the region, rows bottom to top.
func Grid(region shape.Region, p GridParams) (Layout, error) {
	if !p.Margins.valid() {
		return Layout{}, fmt.Errorf("%w: negative margin", ErrInvalidParams)
	}
	bb := region.BoundingBox()
	x0, x1 := bb.MinX+p.Margins.Left, bb.MaxX-p.Margins.Right
	y0, y1 := bb.MinY+p.Margins.Bottom, bb.MaxY-p.Margins.Top
	if x1 <= x0 || y1 <= y0 {
		return Layout{}, ErrEmptyRegion
	}

	ys, err := axis(y0, y1, p.Rows, p.RowSpacing)
	if err != nil {
		return Layout{}, err
	}
	xs, err := axis(x0, x1, p.Cols, p.ColSpacing)
	if err != nil {
		return Layout{}, err
	}

	candidates := make([]types.MeasurementPoint, 0, len(xs)*len(ys))
	for _, y := range ys {
		for _, x := range xs {
			candidates = append(candidates, cartesian(x, y))
		}
	}
	return filter(region, candidates), nil
}

func axis(start, end float64, count int, steps []float64) ([]float64, error) {
	if len(steps) == 0 {
		return utils.Linspace(start, end, max(count, 1)), nil
	}
	coords := []float64{start}
	cur := start
	for _, s := range steps {
		if s <= 0 {
			return nil, fmt.Errorf("%w: spacing %g", ErrInvalidParams, s)
		}
		cur += s
		if cur <= end {
			coords = append(coords, cur)
		}
	}
	return coords, nil
}
