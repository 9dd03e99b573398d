// Package interpolate turns scattered point stresses into a dense,
// region-masked stress field.
package interpolate

import (
	"fmt"

	"github.com/joeydtaylor/acoustofield/pkg/internal/shape"
	"github.com/joeydtaylor/acoustofield/pkg/internal/types"
)

// DefaultResolution is the number of grid cells per side.
const DefaultResolution = 100

// Params controls field construction.
type Params struct {
	Resolution  int
	Method      types.InterpolationMethod
	Smooth      bool
	SmoothSigma float64
}

// DefaultParams returns a 100×100 auto-method grid with light smoothing.
func DefaultParams() Params {
	return Params{
		Resolution:  DefaultResolution,
		Method:      types.MethodAuto,
		Smooth:      true,
		SmoothSigma: DefaultSmoothSigma,
	}
}

// Interpolate builds a Resolution×Resolution field over the region's
// bounding box. Fewer than three samples yield a points-only grid rather
// than an error. Cubic fits that cannot be solved fall back to linear and set
// Downgraded. When the samples cannot be triangulated the points-only grid is
// returned together with an ErrTriangulation error.
func Interpolate(samples []Sample, region shape.Region, p Params) (types.StressGrid, error) {
	if p.Resolution < 2 {
		return types.StressGrid{}, fmt.Errorf("%w: %d", ErrInvalidResolution, p.Resolution)
	}
	method := p.Method
	if method == "" {
		method = types.MethodAuto
	}
	if !knownMethod(method) {
		return types.StressGrid{}, fmt.Errorf("%w: %q", ErrUnknownMethod, method)
	}

	xs, ys := axes(region.BoundingBox(), p.Resolution)
	g := types.StressGrid{NPoints: len(samples), Method: types.MethodNone, Confidence: types.ConfidenceNone}
	g.Xi, g.Yi = mesh(xs, ys)
	g.Zi = nanGrid(len(ys), len(xs))

	n := len(samples)
	if n == 0 {
		g.Mode = types.ModeNoData
		g.Message = "no measured points"
		return g, nil
	}
	if method == types.MethodAuto {
		method = AutoMethod(n)
	}
	if method == types.MethodNone || n < MinPointsLinear {
		g.Mode = types.ModePointsOnly
		g.Message = fmt.Sprintf("%d measured points, at least %d needed for a field", n, MinPointsLinear)
		return g, nil
	}

	zi, used, downgraded, err := compute(samples, xs, ys, method)
	if err != nil {
		g.Mode = types.ModePointsOnly
		g.Message = "measured points cannot form a field"
		return g, err
	}
	if p.Smooth {
		sigma := p.SmoothSigma
		if sigma == 0 {
			sigma = DefaultSmoothSigma
		}
		zi = smooth(zi, sigma)
	}
	applyMask(zi, xs, ys, region)

	g.Zi = zi
	g.Stats = Stats(zi)
	g.Mode = types.ModeContour
	g.Method = used
	g.Downgraded = downgraded
	g.Confidence = ConfidenceFor(n)
	g.Message = fmt.Sprintf("%s interpolation over %d points", used, n)
	if downgraded {
		g.Confidence = types.ConfidenceLow
		g.Message = fmt.Sprintf("cubic interpolation failed, linear used over %d points", n)
	}
	return g, nil
}

// compute runs the requested method, falling back from cubic to linear.
// Triangulation ignores repeated positions but the spline sees every sample,
// so conflicting values at one position force the fallback.
func compute(samples []Sample, xs, ys []float64, method types.InterpolationMethod) ([][]float64, types.InterpolationMethod, bool, error) {
	if method == types.MethodNearest {
		ix := NewIndex(samples)
		zi := nanGrid(len(ys), len(xs))
		for r, y := range ys {
			for c, x := range xs {
				s, _, _ := ix.Nearest(x, y)
				zi[r][c] = s.Value
			}
		}
		return zi, types.MethodNearest, false, nil
	}

	sites := distinct(samples)
	tri, err := triangulate(sites)
	if err != nil {
		return nil, method, false, err
	}
	lin := linearGrid(sites, tri, xs, ys)
	if method == types.MethodLinear {
		return lin, types.MethodLinear, false, nil
	}
	cub, err := cubicGrid(samples, lin, xs, ys)
	if err != nil {
		return lin, types.MethodLinear, true, nil
	}
	return cub, types.MethodCubic, false, nil
}
