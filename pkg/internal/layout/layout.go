// Package layout generates measurement point positions over a specimen
// region and orders them to shorten the probe's travel.
package layout

import (
	"github.com/joeydtaylor/acoustofield/pkg/internal/shape"
	"github.com/joeydtaylor/acoustofield/pkg/internal/types"
	"github.com/joeydtaylor/acoustofield/pkg/internal/utils"
)

// Kind names a layout generator.
type Kind string

const (
	KindGrid     Kind = "grid"
	KindPolar    Kind = "polar"
	KindAdaptive Kind = "adaptive"
	KindCustom   Kind = "custom"
)

// Layout is the outcome of a generator. Candidates counts positions before
// the region filter was applied.
type Layout struct {
	Points     []types.MeasurementPoint
	Candidates int
	Center     shape.Point // polar layouts only
}

// Coordinates returns the (x, y) of every point in order.
func (l Layout) Coordinates() []shape.Point {
	out := make([]shape.Point, len(l.Points))
	for i, p := range l.Points {
		out[i] = shape.Point{X: p.X, Y: p.Y}
	}
	return out
}

// Margins shrink the region's bounding box before a grid is laid over it.
type Margins struct {
	Left   float64
	Right  float64
	Top    float64
	Bottom float64
}

// Uniform returns equal margins on every side.
func Uniform(m float64) Margins {
	return Margins{Left: m, Right: m, Top: m, Bottom: m}
}

func (m Margins) valid() bool {
	return m.Left >= 0 && m.Right >= 0 && m.Top >= 0 && m.Bottom >= 0
}

// filter keeps candidates inside region and numbers them from 1.
func filter(region shape.Region, candidates []types.MeasurementPoint) Layout {
	out := Layout{Candidates: len(candidates)}
	out.Points = utils.Filter(candidates, func(p types.MeasurementPoint) bool {
		return region.IsInside(p.X, p.Y)
	})
	renumber(out.Points)
	return out
}

func renumber(points []types.MeasurementPoint) {
	for i := range points {
		points[i].Index = i + 1
	}
}

func cartesian(x, y float64) types.MeasurementPoint {
	return types.MeasurementPoint{X: x, Y: y, Status: types.PointPending}
}
