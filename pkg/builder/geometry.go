package builder

import (
	"github.com/joeydtaylor/acoustofield/pkg/internal/layout"
	"github.com/joeydtaylor/acoustofield/pkg/internal/shape"
	"github.com/joeydtaylor/acoustofield/pkg/internal/types"
)

type Shape = shape.Shape

type Rectangle = shape.Rectangle

type Circle = shape.Circle

type Polygon = shape.Polygon

type Point = shape.Point

type Region = shape.Region

type MeasurementPoint = types.MeasurementPoint

type Layout = layout.Layout

type PathReport = layout.PathReport

type GridParams = layout.GridParams

type PolarParams = layout.PolarParams

type AdaptiveParams = layout.AdaptiveParams

type DenseRegion = layout.DenseRegion

type Margins = layout.Margins

type OrderStrategy = layout.Strategy

const (
	OrderNone    = layout.StrategyNone
	OrderZigzag  = layout.StrategyZigzag
	OrderNearest = layout.StrategyNearest
	OrderSpiral  = layout.StrategySpiral
)

// NewRegion subtracts holes from base.
func NewRegion(base Shape, holes ...Shape) Region {
	return shape.NewRegion(base, holes...)
}

// UniformMargins returns equal margins on every side.
func UniformMargins(m float64) Margins { return layout.Uniform(m) }

func GridLayout(region Region, p GridParams) (Layout, error) {
	return layout.Grid(region, p)
}

func PolarLayout(region Region, p PolarParams) (Layout, error) {
	return layout.Polar(region, p)
}

func AdaptiveLayout(region Region, p AdaptiveParams) (Layout, error) {
	return layout.Adaptive(region, p)
}

// CustomLayout reads x/y (and optional r/theta) columns from a CSV file.
func CustomLayout(path string, region Region) (Layout, error) {
	return layout.LoadCSV(path, region)
}

// OrderPoints reorders points for probe travel and renumbers them from 1.
func OrderPoints(points []MeasurementPoint, s OrderStrategy) ([]MeasurementPoint, PathReport, error) {
	return layout.Order(points, s)
}
