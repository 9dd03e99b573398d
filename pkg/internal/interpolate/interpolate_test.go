package interpolate_test

import (
	"errors"
	"math"
	"testing"

	"github.com/joeydtaylor/acoustofield/pkg/internal/interpolate"
	"github.com/joeydtaylor/acoustofield/pkg/internal/shape"
	"github.com/joeydtaylor/acoustofield/pkg/internal/testutil"
	"github.com/joeydtaylor/acoustofield/pkg/internal/types"
)

func latticeSamples(n int, size float64, f func(x, y float64) float64) []interpolate.Sample {
	var out []interpolate.Sample
	step := size / float64(n-1)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			x, y := float64(j)*step, float64(i)*step
			out = append(out, interpolate.Sample{X: x, Y: y, Value: f(x, y)})
		}
	}
	return out
}

func plane(x, y float64) float64 { return 3*x - y + 5 }

func params(res int, m types.InterpolationMethod) interpolate.Params {
	return interpolate.Params{Resolution: res, Method: m}
}

func TestAutoMethodAndConfidence(t *testing.T) {
	methods := map[int]types.InterpolationMethod{0: types.MethodNone, 2: types.MethodNone, 3: types.MethodLinear, 8: types.MethodLinear, 9: types.MethodCubic, 40: types.MethodCubic}
	for n, want := range methods {
		if got := interpolate.AutoMethod(n); got != want {
			t.Fatalf("AutoMethod(%d) = %s, want %s", n, got, want)
		}
	}
	labels := map[int]types.Confidence{2: types.ConfidenceNone, 3: types.ConfidenceLow, 8: types.ConfidenceLow, 9: types.ConfidenceMedium, 15: types.ConfidenceMedium, 16: types.ConfidenceHigh, 24: types.ConfidenceHigh, 25: types.ConfidenceFull}
	for n, want := range labels {
		if got := interpolate.ConfidenceFor(n); got != want {
			t.Fatalf("ConfidenceFor(%d) = %s, want %s", n, got, want)
		}
	}
}

func TestInterpolate_ReproducesPlane(t *testing.T) {
	region := shape.NewRegion(shape.Rectangle{Width: 100, Height: 100})
	samples := latticeSamples(3, 100, plane)
	for _, m := range []types.InterpolationMethod{types.MethodLinear, types.MethodCubic} {
		g, err := interpolate.Interpolate(samples, region, params(11, m))
		if err != nil {
			t.Fatalf("%s: %v", m, err)
		}
		if g.Method != m || g.Mode != types.ModeContour || g.Stats.ValidCells != 121 {
			t.Fatalf("%s: method=%s mode=%s cells=%d", m, g.Method, g.Mode, g.Stats.ValidCells)
		}
		for r := range g.Zi {
			for c := range g.Zi[r] {
				want := plane(g.Xi[r][c], g.Yi[r][c])
				if math.Abs(g.Zi[r][c]-want) > 1e-6 {
					t.Fatalf("%s: cell (%d,%d) = %v, want %v", m, r, c, g.Zi[r][c], want)
				}
			}
		}
	}
}

func TestInterpolate_MaskConsistency(t *testing.T) {
	region := shape.NewRegion(
		shape.Rectangle{Width: 100, Height: 100},
		shape.Circle{CenterX: 50, CenterY: 50, Outer: 15},
	)
	samples := latticeSamples(4, 100, func(x, y float64) float64 { return x + 2*y })
	for _, m := range []types.InterpolationMethod{types.MethodAuto, types.MethodLinear, types.MethodCubic, types.MethodNearest} {
		p := interpolate.DefaultParams()
		p.Resolution = 21
		p.Method = m
		g, err := interpolate.Interpolate(samples, region, p)
		if err != nil {
			t.Fatalf("%s: %v", m, err)
		}
		for r := range g.Zi {
			for c := range g.Zi[r] {
				inside := region.IsInside(g.Xi[r][c], g.Yi[r][c])
				if !inside && !math.IsNaN(g.Zi[r][c]) {
					t.Fatalf("%s: cell (%v,%v) outside region carries %v", m, g.Xi[r][c], g.Yi[r][c], g.Zi[r][c])
				}
				if inside && math.IsNaN(g.Zi[r][c]) {
					t.Fatalf("%s: cell (%v,%v) inside hull left empty", m, g.Xi[r][c], g.Yi[r][c])
				}
			}
		}
	}
}

func TestInterpolate_HullLimitsLinear(t *testing.T) {
	region := shape.NewRegion(shape.Rectangle{Width: 100, Height: 100})
	samples := []interpolate.Sample{{X: 0, Y: 0, Value: 1}, {X: 100, Y: 0, Value: 2}, {X: 0, Y: 100, Value: 3}}
	g, err := interpolate.Interpolate(samples, region, params(11, types.MethodAuto))
	if err != nil {
		t.Fatalf("interpolate: %v", err)
	}
	if g.Method != types.MethodLinear || g.Confidence != types.ConfidenceLow {
		t.Fatalf("three points should be linear/low, got %s/%s", g.Method, g.Confidence)
	}
	if !math.IsNaN(g.Zi[10][10]) {
		t.Fatalf("corner beyond the hull must be empty")
	}
	if math.Abs(g.Zi[0][0]-1) > 1e-9 {
		t.Fatalf("sample corner should carry its value, got %v", g.Zi[0][0])
	}
}

func TestInterpolate_InsufficientData(t *testing.T) {
	region := shape.NewRegion(shape.Rectangle{Width: 10, Height: 10})
	g, err := interpolate.Interpolate(nil, region, interpolate.DefaultParams())
	if err != nil || g.Mode != types.ModeNoData {
		t.Fatalf("no samples: mode=%s err=%v", g.Mode, err)
	}
	two := []interpolate.Sample{{X: 1, Y: 1, Value: 5}, {X: 8, Y: 8, Value: 6}}
	g, err = interpolate.Interpolate(two, region, params(10, types.MethodCubic))
	if err != nil {
		t.Fatalf("two samples: %v", err)
	}
	if g.Mode != types.ModePointsOnly || g.Confidence != types.ConfidenceNone || g.Message == "" {
		t.Fatalf("two samples should be points-only: %+v", g)
	}
	if len(g.Zi) != 10 || !math.IsNaN(g.Zi[5][5]) {
		t.Fatalf("points-only grid must be all NaN")
	}
}

func TestInterpolate_Errors(t *testing.T) {
	region := shape.NewRegion(shape.Rectangle{Width: 10, Height: 10})
	if _, err := interpolate.Interpolate(nil, region, params(1, types.MethodAuto)); !errors.Is(err, interpolate.ErrInvalidResolution) {
		t.Fatalf("expected ErrInvalidResolution, got %v", err)
	}
	if _, err := interpolate.Interpolate(nil, region, params(10, "spline")); !errors.Is(err, interpolate.ErrUnknownMethod) {
		t.Fatalf("expected ErrUnknownMethod, got %v", err)
	}
	line := []interpolate.Sample{{X: 0, Y: 0, Value: 1}, {X: 5, Y: 5, Value: 2}, {X: 10, Y: 10, Value: 3}}
	g, err := interpolate.Interpolate(line, region, params(10, types.MethodLinear))
	if !errors.Is(err, interpolate.ErrTriangulation) {
		t.Fatalf("expected ErrTriangulation for collinear samples, got %v", err)
	}
	if g.Mode != types.ModePointsOnly {
		t.Fatalf("collinear samples should still return a points-only grid, got %s", g.Mode)
	}
}

func TestInterpolate_CubicFallsBackToLinear(t *testing.T) {
	region := shape.NewRegion(shape.Rectangle{Width: 100, Height: 100})
	samples := latticeSamples(3, 100, plane)
	samples = append(samples, interpolate.Sample{X: 50, Y: 50, Value: 1e3})
	logger, logs := testutil.NewObserverLogger()
	in := interpolate.NewInterpolator(
		interpolate.WithLogger(logger),
		interpolate.WithResolution(11),
		interpolate.WithMethod(types.MethodCubic),
		interpolate.WithSmoothing(false, 0),
	)
	g, err := in.Interpolate(samples, region)
	if err != nil {
		t.Fatalf("interpolate: %v", err)
	}
	if !g.Downgraded || g.Method != types.MethodLinear || g.Confidence != types.ConfidenceLow {
		t.Fatalf("duplicate site should force a linear fallback: %+v", g)
	}
	if logs.FilterMessage("Cubic interpolation fell back to linear").Len() != 1 {
		t.Fatalf("expected fallback log entry")
	}
}

func TestInterpolate_SmoothingKeepsConstantAndMask(t *testing.T) {
	region := shape.NewRegion(shape.Circle{CenterX: 50, CenterY: 50, Outer: 50})
	samples := latticeSamples(5, 100, func(x, y float64) float64 { return 7 })
	g, err := interpolate.Interpolate(samples, region, interpolate.Params{Resolution: 25, Method: types.MethodLinear, Smooth: true, SmoothSigma: 2})
	if err != nil {
		t.Fatalf("interpolate: %v", err)
	}
	if math.Abs(g.Stats.VMin-7) > 1e-9 || math.Abs(g.Stats.VMax-7) > 1e-9 || g.Stats.Std > 1e-9 {
		t.Fatalf("smoothing a constant field must keep it constant: %+v", g.Stats)
	}
	if !math.IsNaN(g.Zi[0][0]) {
		t.Fatalf("corner outside the disk must stay empty after smoothing")
	}
}

func TestStatsAndRangeChanged(t *testing.T) {
	zi := [][]float64{{1, math.NaN()}, {3, 5}}
	s := interpolate.Stats(zi)
	if s.VMin != 1 || s.VMax != 5 || s.Mean != 3 || s.ValidCells != 3 {
		t.Fatalf("unexpected stats %+v", s)
	}
	if want := math.Sqrt(8.0 / 3); math.Abs(s.Std-want) > 1e-12 {
		t.Fatalf("expected population std %v, got %v", want, s.Std)
	}
	if empty := interpolate.Stats([][]float64{{math.NaN()}}); empty != (types.GridStats{}) {
		t.Fatalf("all-empty grid should give zero stats, got %+v", empty)
	}

	old := types.GridStats{VMin: 0, VMax: 100, ValidCells: 10}
	if interpolate.RangeChanged(old, types.GridStats{VMin: 10, VMax: 125, ValidCells: 10}, 0.3) {
		t.Fatalf("15%% change is below threshold")
	}
	if !interpolate.RangeChanged(old, types.GridStats{VMin: 0, VMax: 140, ValidCells: 10}, 0.3) {
		t.Fatalf("40%% change is above threshold")
	}
	if !interpolate.RangeChanged(types.GridStats{VMin: 5, VMax: 5, ValidCells: 1}, old, 0.3) {
		t.Fatalf("flat old range always counts as changed")
	}
}

func TestIndex_ValueAt(t *testing.T) {
	ix := interpolate.NewIndex([]interpolate.Sample{{X: 0, Y: 0, Value: 10}, {X: 10, Y: 0, Value: 20}, {X: 100, Y: 100, Value: 99}})
	if v, ok := ix.ValueAt(0.0005, 0, interpolate.QueryIDW); !ok || v != 10 {
		t.Fatalf("exact hit should return the sample value, got %v %v", v, ok)
	}
	if v, _ := ix.ValueAt(9, 1, interpolate.QueryNearest); v != 20 {
		t.Fatalf("nearest should pick the sample at (10,0), got %v", v)
	}
	v, _ := ix.ValueAt(5, 0, interpolate.QueryIDW)
	if v <= 15 || v >= 16 {
		t.Fatalf("IDW midpoint should be just above the pair average, got %v", v)
	}
	if _, ok := interpolate.NewIndex(nil).ValueAt(1, 1, interpolate.QueryIDW); ok {
		t.Fatalf("empty index must report no value")
	}

	in := interpolate.NewInterpolator()
	points := []types.MeasurementPoint{
		{X: 1, Y: 1, Status: types.PointMeasured, StressMPa: 42},
		{X: 2, Y: 2, Status: types.PointPending, StressMPa: 1000},
	}
	if v, ok := in.ValueAt(points, 5, 5, interpolate.QueryIDW); !ok || math.Abs(v-42) > 1e-9 {
		t.Fatalf("only measured points feed queries, got %v %v", v, ok)
	}
}
