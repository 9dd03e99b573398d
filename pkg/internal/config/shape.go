package config

import (
	"fmt"
	"strings"

	"github.com/joeydtaylor/acoustofield/pkg/internal/shape"
	"github.com/joeydtaylor/acoustofield/pkg/internal/utils"
)

var holeKinds = []shape.Kind{shape.KindRectangle, shape.KindCircle}

// ShapeConfig is the tagged specimen outline. Only the fields of the named
// type are read.
type ShapeConfig struct {
	Type string `yaml:"type"`

	// rectangle
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`

	// circle, annulus or sector
	CenterX     float64 `yaml:"center_x"`
	CenterY     float64 `yaml:"center_y"`
	OuterRadius float64 `yaml:"outer_radius"`
	InnerRadius float64 `yaml:"inner_radius"`
	StartAngle  float64 `yaml:"start_angle"`
	EndAngle    float64 `yaml:"end_angle"`

	// polygon
	Vertices [][2]float64 `yaml:"vertices"`

	Holes []ShapeConfig `yaml:"holes"`
}

// Shape converts the tagged fields into a typed shape. Holes are ignored.
func (c ShapeConfig) Shape() (shape.Shape, error) {
	switch shape.Kind(strings.ToLower(c.Type)) {
	case shape.KindRectangle:
		return shape.Rectangle{X: c.X, Y: c.Y, Width: c.Width, Height: c.Height}, nil
	case shape.KindCircle:
		return shape.Circle{
			CenterX:    c.CenterX,
			CenterY:    c.CenterY,
			Outer:      c.OuterRadius,
			Inner:      c.InnerRadius,
			StartAngle: c.StartAngle,
			EndAngle:   c.EndAngle,
		}, nil
	case shape.KindPolygon:
		vs := make([]shape.Point, len(c.Vertices))
		for i, v := range c.Vertices {
			vs[i] = shape.Point{X: v[0], Y: v[1]}
		}
		return shape.Polygon{Vertices: vs}, nil
	default:
		return nil, fmt.Errorf("%w: %q", shape.ErrUnknownShape, c.Type)
	}
}

// Region builds and validates the specimen region. Geometry warnings are
// returned alongside a usable region.
func (c ShapeConfig) Region() (shape.Region, []string, error) {
	base, err := c.Shape()
	if err != nil {
		return shape.Region{}, nil, err
	}
	holes := make([]shape.Shape, 0, len(c.Holes))
	for i, hc := range c.Holes {
		if !utils.Contains(holeKinds, shape.Kind(strings.ToLower(hc.Type))) {
			return shape.Region{}, nil, fmt.Errorf("hole %d: %w", i, ErrInvalidHole)
		}
		h, err := hc.Shape()
		if err != nil {
			return shape.Region{}, nil, fmt.Errorf("hole %d: %w", i, err)
		}
		holes = append(holes, h)
	}
	r := shape.NewRegion(base, holes...)
	warnings, err := r.Validate()
	if err != nil {
		return shape.Region{}, warnings, err
	}
	return r, warnings, nil
}
