package layout

import (
	"fmt"
	"math"

	"github.com/joeydtaylor/acoustofield/pkg/internal/shape"
	"gonum.org/v1/gonum/spatial/kdtree"
)

// DenseRegion is a disc where points are packed more tightly than the base
// grid. DensityFactor divides the base spacing (default 2); Radius defaults to 20 mm.
type DenseRegion struct {
	X             float64
	Y             float64
	Radius        float64
	DensityFactor float64
}

// AdaptiveParams describes a coarse grid with local refinement.
type AdaptiveParams struct {
	BaseSpacing  float64
	MinSpacing   float64 // default 2 mm
	Margin       float64
	DenseRegions []DenseRegion
}

// Adaptive places a base grid at BaseSpacing, then fills each dense region
// with a finer lattice, skipping any candidate closer than MinSpacing to a
// point already placed.
func Adaptive(region shape.Region, p AdaptiveParams) (Layout, error) {
	if p.BaseSpacing <= 0 || p.MinSpacing < 0 || p.Margin < 0 {
		return Layout{}, fmt.Errorf("%w: base spacing %g, min spacing %g, margin %g", ErrInvalidParams, p.BaseSpacing, p.MinSpacing, p.Margin)
	}
	minSpacing := p.MinSpacing
	if minSpacing == 0 {
		minSpacing = 2
	}
	bb := region.BoundingBox()
	x0, x1 := bb.MinX+p.Margin, bb.MaxX-p.Margin
	y0, y1 := bb.MinY+p.Margin, bb.MaxY-p.Margin
	if x1 <= x0 || y1 <= y0 {
		return Layout{}, ErrEmptyRegion
	}

	placed := &kdtree.Tree{}
	var out Layout
	add := func(x, y float64) {
		out.Candidates++
		if !region.IsInside(x, y) {
			return
		}
		q := kdtree.Point{x, y}
		if _, d2 := placed.Nearest(q); d2 < minSpacing*minSpacing {
			return
		}
		placed.Insert(q, false)
		out.Points = append(out.Points, cartesian(x, y))
	}

	for y := y0; y < y1; y += p.BaseSpacing {
		for x := x0; x < x1; x += p.BaseSpacing {
			add(x, y)
		}
	}
	for _, d := range p.DenseRegions {
		radius := d.Radius
		if radius <= 0 {
			radius = 20
		}
		factor := d.DensityFactor
		if factor <= 0 {
			factor = 2
		}
		step := math.Max(p.BaseSpacing/factor, minSpacing)
		for dy := -radius; dy < radius; dy += step {
			for dx := -radius; dx < radius; dx += step {
				if math.Hypot(dx, dy) > radius {
					continue
				}
				add(d.X+dx, d.Y+dy)
			}
		}
	}
	renumber(out.Points)
	return out, nil
}
