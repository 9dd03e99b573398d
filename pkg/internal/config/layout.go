package config

import (
	"fmt"
	"strings"

	"github.com/joeydtaylor/acoustofield/pkg/internal/layout"
	"github.com/joeydtaylor/acoustofield/pkg/internal/shape"
)

type MarginsSection struct {
	Left   float64 `yaml:"left"`
	Right  float64 `yaml:"right"`
	Top    float64 `yaml:"top"`
	Bottom float64 `yaml:"bottom"`
}

// GridSection uses Margins when given, otherwise the uniform Margin.
type GridSection struct {
	Rows       int             `yaml:"rows"`
	Cols       int             `yaml:"cols"`
	RowSpacing []float64       `yaml:"row_spacing"`
	ColSpacing []float64       `yaml:"col_spacing"`
	Margin     float64         `yaml:"margin"`
	Margins    *MarginsSection `yaml:"margins"`
}

type PolarSection struct {
	CenterX       *float64  `yaml:"center_x"`
	CenterY       *float64  `yaml:"center_y"`
	RadiusMin     float64   `yaml:"radius_min"`
	RadiusMax     float64   `yaml:"radius_max"`
	RingCount     int       `yaml:"ring_count"`
	RadiusStep    float64   `yaml:"radius_step"`
	RadiusSteps   []float64 `yaml:"radius_steps"`
	AngleStart    float64   `yaml:"angle_start"`
	AngleEnd      float64   `yaml:"angle_end"`
	AngleStep     float64   `yaml:"angle_step"`
	PointsPerRing int       `yaml:"points_per_ring"`
	RingPoints    []int     `yaml:"ring_points"`
	IncludeCenter bool      `yaml:"include_center"`
}

type DenseRegionSection struct {
	X             float64 `yaml:"x"`
	Y             float64 `yaml:"y"`
	Radius        float64 `yaml:"radius"`
	DensityFactor float64 `yaml:"density_factor"`
}

type AdaptiveSection struct {
	BaseSpacing  float64              `yaml:"base_spacing"`
	MinSpacing   float64              `yaml:"min_spacing"`
	Margin       float64              `yaml:"margin"`
	DenseRegions []DenseRegionSection `yaml:"dense_regions"`
}

type CustomSection struct {
	File string `yaml:"file"`
}

// LayoutConfig selects a generator by Type and an ordering strategy.
type LayoutConfig struct {
	Type     string          `yaml:"type"`
	Order    string          `yaml:"order"`
	Grid     GridSection     `yaml:"grid"`
	Polar    PolarSection    `yaml:"polar"`
	Adaptive AdaptiveSection `yaml:"adaptive"`
	Custom   CustomSection   `yaml:"custom"`
}

// Generate places points inside region and orders them. An empty Order keeps
// the generator's order.
func (c LayoutConfig) Generate(region shape.Region) (layout.Layout, layout.PathReport, error) {
	var (
		l   layout.Layout
		err error
	)
	switch layout.Kind(strings.ToLower(c.Type)) {
	case layout.KindGrid, "":
		l, err = layout.Grid(region, c.gridParams())
	case layout.KindPolar:
		l, err = layout.Polar(region, c.polarParams())
	case layout.KindAdaptive:
		l, err = layout.Adaptive(region, c.adaptiveParams())
	case layout.KindCustom:
		l, err = layout.LoadCSV(c.Custom.File, region)
	default:
		err = fmt.Errorf("%w: %q", ErrUnknownLayout, c.Type)
	}
	if err != nil {
		return layout.Layout{}, layout.PathReport{}, err
	}

	strategy := layout.Strategy(strings.ToLower(c.Order))
	if strategy == "" {
		strategy = layout.StrategyNone
	}
	ordered, report, err := layout.Order(l.Points, strategy)
	if err != nil {
		return layout.Layout{}, layout.PathReport{}, err
	}
	l.Points = ordered
	return l, report, nil
}

func (c LayoutConfig) gridParams() layout.GridParams {
	g := c.Grid
	m := layout.Uniform(g.Margin)
	if g.Margins != nil {
		m = layout.Margins{Left: g.Margins.Left, Right: g.Margins.Right, Top: g.Margins.Top, Bottom: g.Margins.Bottom}
	}
	return layout.GridParams{
		Rows:       g.Rows,
		Cols:       g.Cols,
		RowSpacing: g.RowSpacing,
		ColSpacing: g.ColSpacing,
		Margins:    m,
	}
}

func (c LayoutConfig) polarParams() layout.PolarParams {
	p := c.Polar
	out := layout.PolarParams{
		RadiusMin:     p.RadiusMin,
		RadiusMax:     p.RadiusMax,
		RingCount:     p.RingCount,
		RadiusStep:    p.RadiusStep,
		RadiusSteps:   p.RadiusSteps,
		AngleStart:    p.AngleStart,
		AngleEnd:      p.AngleEnd,
		AngleStep:     p.AngleStep,
		PointsPerRing: p.PointsPerRing,
		RingPoints:    p.RingPoints,
		IncludeCenter: p.IncludeCenter,
	}
	if p.CenterX != nil && p.CenterY != nil {
		out.Center = &shape.Point{X: *p.CenterX, Y: *p.CenterY}
	}
	return out
}

func (c LayoutConfig) adaptiveParams() layout.AdaptiveParams {
	a := c.Adaptive
	out := layout.AdaptiveParams{BaseSpacing: a.BaseSpacing, MinSpacing: a.MinSpacing, Margin: a.Margin}
	for _, d := range a.DenseRegions {
		out.DenseRegions = append(out.DenseRegions, layout.DenseRegion{X: d.X, Y: d.Y, Radius: d.Radius, DensityFactor: d.DensityFactor})
	}
	return out
}
