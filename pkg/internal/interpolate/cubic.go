package interpolate

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// thinPlate is a 2-D thin-plate spline through the samples, with coordinates
// normalised to the unit box for conditioning.
type thinPlate struct {
	cx, cy, scale float64
	u, v          []float64
	w             []float64
	a0, a1, a2    float64
}

func tpsKernel(r float64) float64 {
	if r == 0 {
		return 0
	}
	return r * r * math.Log(r)
}

func fitThinPlate(samples []Sample) (*thinPlate, error) {
	n := len(samples)
	tp := &thinPlate{u: make([]float64, n), v: make([]float64, n)}

	minX, maxX, minY, maxY := math.Inf(1), math.Inf(-1), math.Inf(1), math.Inf(-1)
	for _, s := range samples {
		minX, maxX = math.Min(minX, s.X), math.Max(maxX, s.X)
		minY, maxY = math.Min(minY, s.Y), math.Max(maxY, s.Y)
	}
	tp.cx, tp.cy = (minX+maxX)/2, (minY+maxY)/2
	tp.scale = math.Max(maxX-minX, maxY-minY)
	if tp.scale == 0 {
		return nil, ErrSingularSystem
	}
	for i, s := range samples {
		tp.u[i] = (s.X - tp.cx) / tp.scale
		tp.v[i] = (s.Y - tp.cy) / tp.scale
	}

	size := n + 3
	a := mat.NewDense(size, size, nil)
	b := mat.NewVecDense(size, nil)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			k := tpsKernel(math.Hypot(tp.u[i]-tp.u[j], tp.v[i]-tp.v[j]))
			a.Set(i, j, k)
			a.Set(j, i, k)
		}
		for j, p := range []float64{1, tp.u[i], tp.v[i]} {
			a.Set(i, n+j, p)
			a.Set(n+j, i, p)
		}
		b.SetVec(i, samples[i].Value)
	}

	var x mat.VecDense
	if err := x.SolveVec(a, b); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSingularSystem, err)
	}
	tp.w = make([]float64, n)
	for i := range tp.w {
		tp.w[i] = x.AtVec(i)
		if math.IsNaN(tp.w[i]) || math.IsInf(tp.w[i], 0) {
			return nil, ErrSingularSystem
		}
	}
	tp.a0, tp.a1, tp.a2 = x.AtVec(n), x.AtVec(n+1), x.AtVec(n+2)
	return tp, nil
}

func (tp *thinPlate) at(x, y float64) float64 {
	u, v := (x-tp.cx)/tp.scale, (y-tp.cy)/tp.scale
	z := tp.a0 + tp.a1*u + tp.a2*v
	for i, w := range tp.w {
		z += w * tpsKernel(math.Hypot(u-tp.u[i], v-tp.v[i]))
	}
	return z
}

// cubicGrid evaluates the spline on cells where hull is finite, so the
// field never extends past the samples' convex hull.
func cubicGrid(samples []Sample, hull [][]float64, xs, ys []float64) ([][]float64, error) {
	tp, err := fitThinPlate(samples)
	if err != nil {
		return nil, err
	}
	zi := nanGrid(len(ys), len(xs))
	for r, y := range ys {
		for c, x := range xs {
			if !math.IsNaN(hull[r][c]) {
				zi[r][c] = tp.at(x, y)
			}
		}
	}
	return zi, nil
}
