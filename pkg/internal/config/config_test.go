package config_test

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/joeydtaylor/acoustofield/pkg/internal/calibration"
	"github.com/joeydtaylor/acoustofield/pkg/internal/codec"
	"github.com/joeydtaylor/acoustofield/pkg/internal/config"
	"github.com/joeydtaylor/acoustofield/pkg/internal/layout"
	"github.com/joeydtaylor/acoustofield/pkg/internal/shape"
	"github.com/joeydtaylor/acoustofield/pkg/internal/types"
)

const plateYAML = `
name: plate-weld
baseline_point: 3
logging:
  level: debug
conditioner:
  bandpass:
    enabled: false
  denoise:
    wavelet: db4
    level: 4
    threshold_rule: bogus
calibration:
  slope: 2.0e-9
  r_squared: 0.98
  baseline_stress: 50
shape:
  type: rectangle
  width: 200
  height: 100
  holes:
    - type: circle
      center_x: 100
      center_y: 50
      outer_radius: 10
layout:
  type: grid
  order: zigzag
  grid:
    rows: 3
    cols: 4
    margin: 10
interpolation:
  resolution: 50
  method: linear
storage:
  compression: zstd
`

func TestParse_OverlaysDefaults(t *testing.T) {
	cfg, err := config.Parse([]byte(plateYAML))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cfg.Name != "plate-weld" || cfg.BaselinePoint != 3 || cfg.Logging.Level != "debug" {
		t.Fatalf("top-level fields: %+v", cfg)
	}

	bp := cfg.Conditioner.BandpassConfig()
	if bp.Enabled || bp.LowCutHz != 1.5e6 || bp.HighCutHz != 3.5e6 || bp.Order != 6 {
		t.Fatalf("bandpass should keep default cutoffs: %+v", bp)
	}
	dn := cfg.Conditioner.DenoiseConfig()
	if !dn.Enabled || dn.Wavelet != "db4" || dn.Level != 4 || dn.Rule != types.RuleHeurSure || dn.Mode != types.ModeSoft {
		t.Fatalf("denoise: %+v", dn)
	}

	p := cfg.Interpolation.Params()
	if p.Resolution != 50 || p.Method != types.MethodLinear || !p.Smooth || p.SmoothSigma != 1 {
		t.Fatalf("interpolation: %+v", p)
	}
	if l := cfg.Validation.Limits(); l.MaxNeighborDiffMPa != 200 {
		t.Fatalf("limits: %+v", l)
	}
	if c, err := cfg.Storage.WaveformCompression(); err != nil || c != codec.CompressZstd {
		t.Fatalf("compression: %q %v", c, err)
	}
}

func TestParse_EnvOverrides(t *testing.T) {
	t.Setenv(config.EnvLogLevel, "warn")
	t.Setenv(config.EnvGridResolution, "64")
	t.Setenv(config.EnvWaveformDir, "/data/wf")
	t.Setenv(config.EnvCompression, "lz4")

	cfg, err := config.Parse([]byte(plateYAML))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cfg.Logging.Level != "warn" || cfg.Interpolation.Resolution != 64 ||
		cfg.Storage.WaveformDir != "/data/wf" || cfg.Storage.Compression != "lz4" {
		t.Fatalf("env overrides not applied: %+v %+v", cfg.Logging, cfg.Storage)
	}
}

func TestParse_Malformed(t *testing.T) {
	if _, err := config.Parse([]byte("layout: [unterminated")); err == nil {
		t.Fatalf("expected a parse error")
	}
	if _, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("expected a read error")
	}
}

func TestLoad_BuildsRegionAndLayout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "experiment.yaml")
	if err := os.WriteFile(path, []byte(plateYAML), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	region, warnings, err := cfg.Shape.Region()
	if err != nil {
		t.Fatalf("region: %v", err)
	}
	if len(warnings) != 0 {
		t.Fatalf("unexpected warnings %v", warnings)
	}
	if region.IsInside(100, 50) || !region.IsInside(20, 20) {
		t.Fatalf("hole not subtracted")
	}
	if want := 200*100 - math.Pi*100; math.Abs(region.Area()-want) > 1e-6 {
		t.Fatalf("area %v, want %v", region.Area(), want)
	}

	l, report, err := cfg.Layout.Generate(region)
	if err != nil {
		t.Fatalf("layout: %v", err)
	}
	if len(l.Points) != 12 {
		t.Fatalf("expected 12 grid points, got %d", len(l.Points))
	}
	if report.After > report.Before {
		t.Fatalf("zigzag lengthened the path: %+v", report)
	}
	for i, p := range l.Points {
		if p.Index != i+1 {
			t.Fatalf("points must be renumbered in visiting order")
		}
	}

	m, err := cfg.Calibration.Model()
	if err != nil {
		t.Fatalf("model: %v", err)
	}
	if math.Abs(m.K()-0.5) > 1e-12 || m.BaselineStress() != 50 {
		t.Fatalf("model k=%v σ0=%v", m.K(), m.BaselineStress())
	}
}

func TestShapeConfig_Variants(t *testing.T) {
	sector := config.ShapeConfig{Type: "Circle", CenterX: 0, CenterY: 0, OuterRadius: 50, InnerRadius: 10, StartAngle: 0, EndAngle: 90}
	r, _, err := sector.Region()
	if err != nil {
		t.Fatalf("sector: %v", err)
	}
	if !r.IsInside(20, 20) || r.IsInside(-20, 20) {
		t.Fatalf("sector containment wrong")
	}

	tri := config.ShapeConfig{Type: "polygon", Vertices: [][2]float64{{0, 0}, {100, 0}, {0, 100}}}
	if r, _, err := tri.Region(); err != nil || r.Area() != 5000 {
		t.Fatalf("triangle: %v %v", r.Area(), err)
	}

	if _, _, err := (config.ShapeConfig{Type: "hexagon"}).Region(); !errors.Is(err, shape.ErrUnknownShape) {
		t.Fatalf("expected ErrUnknownShape, got %v", err)
	}
	polyHole := config.ShapeConfig{Type: "rectangle", Width: 10, Height: 10, Holes: []config.ShapeConfig{tri}}
	if _, _, err := polyHole.Region(); !errors.Is(err, config.ErrInvalidHole) {
		t.Fatalf("expected ErrInvalidHole, got %v", err)
	}
	if _, _, err := (config.ShapeConfig{Type: "rectangle", Width: -1, Height: 5}).Region(); !errors.Is(err, shape.ErrInvalidDimension) {
		t.Fatalf("expected ErrInvalidDimension, got %v", err)
	}
}

func TestLayoutConfig_Kinds(t *testing.T) {
	region := shape.NewRegion(shape.Circle{Outer: 50})
	cx, cy := 0.0, 0.0
	polar := config.LayoutConfig{
		Type:  "polar",
		Order: "spiral",
		Polar: config.PolarSection{CenterX: &cx, CenterY: &cy, RadiusMin: 0, RadiusMax: 40, RingCount: 3, PointsPerRing: 6, IncludeCenter: true},
	}
	l, _, err := polar.Generate(region)
	if err != nil {
		t.Fatalf("polar: %v", err)
	}
	if len(l.Points) != 13 {
		t.Fatalf("expected centre plus two rings of 6, got %d", len(l.Points))
	}

	csvPath := filepath.Join(t.TempDir(), "points.csv")
	os.WriteFile(csvPath, []byte("x,y\n0,0\n10,0\n0,10\n"), 0o644)
	custom := config.LayoutConfig{Type: "custom", Custom: config.CustomSection{File: csvPath}}
	if l, _, err := custom.Generate(region); err != nil || len(l.Points) != 3 {
		t.Fatalf("custom: %d %v", len(l.Points), err)
	}

	if _, _, err := (config.LayoutConfig{Type: "hex"}).Generate(region); !errors.Is(err, config.ErrUnknownLayout) {
		t.Fatalf("expected ErrUnknownLayout, got %v", err)
	}
	if _, _, err := (config.LayoutConfig{Type: "grid", Order: "random", Grid: config.GridSection{Rows: 2, Cols: 2}}).Generate(region); !errors.Is(err, layout.ErrUnknownStrategy) {
		t.Fatalf("expected ErrUnknownStrategy, got %v", err)
	}
}

func TestCalibrationConfig_Sources(t *testing.T) {
	if (config.CalibrationConfig{}).Configured() {
		t.Fatalf("empty calibration is not configured")
	}
	if _, err := (config.CalibrationConfig{}).Model(); !errors.Is(err, calibration.ErrZeroSlope) {
		t.Fatalf("expected ErrZeroSlope, got %v", err)
	}
	m, err := config.CalibrationConfig{K: 2, BaselineStress: -10}.Model()
	if err != nil || math.Abs(m.K()-2) > 1e-12 || math.Abs(m.Stress(5)) > 1e-9 {
		t.Fatalf("k source: %v %v", m.K(), err)
	}

	path := filepath.Join(t.TempDir(), "coeff.json")
	os.WriteFile(path, []byte(`{"k": 0.25, "r_squared": 0.97}`), 0o644)
	m, err = config.CalibrationConfig{File: path, K: 9}.Model()
	if err != nil || math.Abs(m.K()-0.25) > 1e-12 {
		t.Fatalf("file source should win: %v %v", m.K(), err)
	}
}
