package interpolate

import (
	"fmt"
	"math"

	"github.com/fogleman/delaunay"
)

const baryTolerance = 1e-9

// distinct drops samples that repeat an earlier position; the first value wins.
func distinct(samples []Sample) []Sample {
	type key struct{ x, y float64 }
	seen := make(map[key]struct{}, len(samples))
	out := make([]Sample, 0, len(samples))
	for _, s := range samples {
		k := key{s.X, s.Y}
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, s)
	}
	return out
}

// triangulate builds a Delaunay triangulation over the sample positions.
func triangulate(samples []Sample) (*delaunay.Triangulation, error) {
	pts := make([]delaunay.Point, len(samples))
	for i, s := range samples {
		pts[i] = delaunay.Point{X: s.X, Y: s.Y}
	}
	tri, err := delaunay.Triangulate(pts)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTriangulation, err)
	}
	if len(tri.Triangles) == 0 {
		return nil, ErrTriangulation
	}
	return tri, nil
}

// linearGrid evaluates the piecewise-linear interpolant on the grid. Cells
// outside the convex hull stay NaN.
func linearGrid(samples []Sample, tri *delaunay.Triangulation, xs, ys []float64) [][]float64 {
	zi := nanGrid(len(ys), len(xs))
	for t := 0; t+2 < len(tri.Triangles); t += 3 {
		a, b, c := samples[tri.Triangles[t]], samples[tri.Triangles[t+1]], samples[tri.Triangles[t+2]]
		det := (b.Y-c.Y)*(a.X-c.X) + (c.X-b.X)*(a.Y-c.Y)
		if math.Abs(det) < 1e-12 {
			continue
		}
		c0, c1 := span(xs, math.Min(a.X, math.Min(b.X, c.X)), math.Max(a.X, math.Max(b.X, c.X)))
		r0, r1 := span(ys, math.Min(a.Y, math.Min(b.Y, c.Y)), math.Max(a.Y, math.Max(b.Y, c.Y)))
		for r := r0; r <= r1; r++ {
			y := ys[r]
			for col := c0; col <= c1; col++ {
				if !math.IsNaN(zi[r][col]) {
					continue
				}
				x := xs[col]
				l1 := ((b.Y-c.Y)*(x-c.X) + (c.X-b.X)*(y-c.Y)) / det
				l2 := ((c.Y-a.Y)*(x-c.X) + (a.X-c.X)*(y-c.Y)) / det
				l3 := 1 - l1 - l2
				if l1 < -baryTolerance || l2 < -baryTolerance || l3 < -baryTolerance {
					continue
				}
				zi[r][col] = l1*a.Value + l2*b.Value + l3*c.Value
			}
		}
	}
	return zi
}

// span returns the inclusive index range of the evenly spaced axis that
// falls within [lo, hi]. An empty range has first > last.
func span(axis []float64, lo, hi float64) (int, int) {
	n := len(axis)
	if n < 2 {
		return 0, n - 1
	}
	step := (axis[n-1] - axis[0]) / float64(n-1)
	if step <= 0 {
		return 0, n - 1
	}
	first := int(math.Ceil((lo-axis[0])/step - 1e-9))
	last := int(math.Floor((hi-axis[0])/step + 1e-9))
	return max(first, 0), min(last, n-1)
}
