package layout

import (
	"fmt"
	"math"

	"github.com/joeydtaylor/acoustofield/pkg/internal/shape"
	"github.com/joeydtaylor/acoustofield/pkg/internal/types"
	"github.com/joeydtaylor/acoustofield/pkg/internal/utils"
)

const defaultPointsPerRing = 8

// PolarParams describes concentric rings of points.
//
// Radii come from the first configured source: RadiusSteps (variable steps
// added to RadiusMin), RadiusStep (fixed step from RadiusMin to RadiusMax),
// or RingCount rings spread evenly over [RadiusMin, RadiusMax].
//
// Angles come from AngleStep when positive, otherwise each ring gets
// RingPoints[i] points (falling back to PointsPerRing, default 8) spread
// evenly over the span without repeating the end angle. AngleStart ==
// AngleEnd == 0 means a full turn.
type PolarParams struct {
	Center        *shape.Point // nil uses the region centroid
	RadiusMin     float64
	RadiusMax     float64
	RingCount     int
	RadiusStep    float64
	RadiusSteps   []float64
	AngleStart    float64
	AngleEnd      float64
	AngleStep     float64
	PointsPerRing int
	RingPoints    []int
	IncludeCenter bool
}

// Polar generates rings around the region's centre unless Center is set. The centre itself is added first
// when IncludeCenter is set, the innermost radius is zero and the centre is
// inside the region.
func Polar(region shape.Region, p PolarParams) (Layout, error) {
	center := region.Center()
	if p.Center != nil {
		center = *p.Center
	}
	radii, err := p.radii()
	if err != nil {
		return Layout{}, err
	}
	if p.AngleStep < 0 || p.PointsPerRing < 0 {
		return Layout{}, fmt.Errorf("%w: negative angular parameter", ErrInvalidParams)
	}
	start, end := p.AngleStart, p.AngleEnd
	if start == 0 && end == 0 {
		end = 360
	}

	var candidates []types.MeasurementPoint
	if p.IncludeCenter && len(radii) > 0 && radii[0] == 0 {
		candidates = append(candidates, polarPoint(center, 0, 0))
	}
	for ring, r := range radii {
		if r == 0 {
			continue
		}
		for _, theta := range p.angles(ring, start, end) {
			candidates = append(candidates, polarPoint(center, r, theta))
		}
	}
	out := filter(region, candidates)
	out.Center = center
	return out, nil
}

func (p PolarParams) radii() ([]float64, error) {
	if p.RadiusMin < 0 {
		return nil, fmt.Errorf("%w: negative radius %g", ErrInvalidParams, p.RadiusMin)
	}
	switch {
	case len(p.RadiusSteps) > 0:
		radii := []float64{p.RadiusMin}
		r := p.RadiusMin
		for _, s := range p.RadiusSteps {
			if s <= 0 {
				return nil, fmt.Errorf("%w: radial step %g", ErrInvalidParams, s)
			}
			r += s
			radii = append(radii, r)
		}
		return radii, nil
	case p.RadiusMax < p.RadiusMin:
		return nil, fmt.Errorf("%w: radius range [%g, %g]", ErrInvalidParams, p.RadiusMin, p.RadiusMax)
	case p.RadiusStep > 0:
		var radii []float64
		// Slack keeps RadiusMax when the range is an exact multiple of the step.
		for r := p.RadiusMin; r <= p.RadiusMax+p.RadiusStep*1e-9; r += p.RadiusStep {
			radii = append(radii, r)
		}
		return radii, nil
	case p.RingCount < 0:
		return nil, fmt.Errorf("%w: ring count %d", ErrInvalidParams, p.RingCount)
	default:
		n := p.RingCount
		if n == 0 {
			n = 5
		}
		return utils.Linspace(p.RadiusMin, p.RadiusMax, n), nil
	}
}

func (p PolarParams) angles(ring int, start, end float64) []float64 {
	if p.AngleStep > 0 {
		var out []float64
		for a := start; a < end; a += p.AngleStep {
			out = append(out, a)
		}
		return out
	}
	n := p.PointsPerRing
	if ring < len(p.RingPoints) {
		n = p.RingPoints[ring]
	}
	if n <= 0 {
		n = defaultPointsPerRing
	}
	out := make([]float64, n)
	step := (end - start) / float64(n)
	for i := range out {
		out[i] = start + float64(i)*step
	}
	return out
}

func polarPoint(c shape.Point, r, thetaDeg float64) types.MeasurementPoint {
	rad := thetaDeg * math.Pi / 180
	p := cartesian(c.X+r*math.Cos(rad), c.Y+r*math.Sin(rad))
	p.HasPolar = true
	p.R = r
	p.Theta = thetaDeg
	return p
}
