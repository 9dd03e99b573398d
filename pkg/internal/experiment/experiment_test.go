package experiment_test

import (
	"errors"
	"math"
	"math/rand"
	"sync"
	"testing"

	"github.com/joeydtaylor/acoustofield/pkg/internal/calibration"
	"github.com/joeydtaylor/acoustofield/pkg/internal/conditioner"
	"github.com/joeydtaylor/acoustofield/pkg/internal/experiment"
	"github.com/joeydtaylor/acoustofield/pkg/internal/layout"
	"github.com/joeydtaylor/acoustofield/pkg/internal/sensor"
	"github.com/joeydtaylor/acoustofield/pkg/internal/shape"
	"github.com/joeydtaylor/acoustofield/pkg/internal/testutil"
	"github.com/joeydtaylor/acoustofield/pkg/internal/types"
)

const sampleRate = 1e9

// burst is a Gaussian-windowed 10 MHz tone; at 1 GHz one sample of delay is one nanosecond.
func burst(delay float64) types.Waveform {
	v := make([]float64, 1000)
	for k := range v {
		x := float64(k) - 400 - delay
		v[k] = math.Exp(-x*x/(2*80*80)) * math.Sin(2*math.Pi*0.01*x)
	}
	return types.Waveform{Voltages: v, SampleRate: sampleRate}
}

func tone() types.Waveform {
	v := make([]float64, 1000)
	for k := range v {
		v[k] = math.Sin(2 * math.Pi * 0.01 * float64(k))
	}
	return types.Waveform{Voltages: v, SampleRate: sampleRate}
}

func points(n int) []types.MeasurementPoint {
	out := make([]types.MeasurementPoint, n)
	for i := range out {
		out[i] = types.MeasurementPoint{Index: i + 1, X: float64(10 * i), Y: 0}
	}
	return out
}

// k = 0.5 MPa/ns.
func model(t *testing.T) calibration.Model {
	t.Helper()
	m, err := calibration.NewModel(types.CalibrationCoefficient{Slope: 2e-9, RSquared: 0.99})
	if err != nil {
		t.Fatalf("model: %v", err)
	}
	return m
}

// passthrough disables both conditioning stages so clean synthetic bursts are correlated as-is.
func passthrough() *conditioner.Conditioner {
	return conditioner.NewConditioner(
		conditioner.WithBandpass(types.BandpassConfig{Enabled: false}),
		conditioner.WithDenoise(types.DenoiseConfig{Enabled: false}),
	)
}

func newExperiment(t *testing.T, n int, opts ...types.Option[*experiment.Experiment]) *experiment.Experiment {
	t.Helper()
	base := []types.Option[*experiment.Experiment]{
		experiment.WithCalibration(model(t)),
		experiment.WithConditioner(passthrough()),
	}
	return experiment.NewExperiment(points(n), append(base, opts...)...)
}

func near(a, b, tol float64) bool { return math.Abs(a-b) <= tol }

type recordingSink struct {
	mu     sync.Mutex
	points []types.PointResult
	grids  []types.StressGrid
	closed bool
}

func (s *recordingSink) WritePoint(r types.PointResult) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.points = append(s.points, r)
	return nil
}

func (s *recordingSink) WriteGrid(g types.StressGrid) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.grids = append(s.grids, g)
	return nil
}

func (s *recordingSink) Close() error {
	s.closed = true
	return nil
}

func TestCapture_FirstPointBecomesBaseline(t *testing.T) {
	e := newExperiment(t, 3)
	if e.Status() != experiment.StatusCreated {
		t.Fatalf("new experiment should be created, got %s", e.Status())
	}
	if e.ID() == "" {
		t.Fatalf("experiment needs an id")
	}

	res, err := e.Capture(1, burst(0))
	if err != nil {
		t.Fatalf("capture baseline: %v", err)
	}
	if !res.IsBaseline || res.TimeShiftNs != 0 || res.StressMPa != 0 {
		t.Fatalf("baseline capture should have zero shift and baseline stress, got %+v", res)
	}
	if e.Status() != experiment.StatusCollecting {
		t.Fatalf("status should be collecting, got %s", e.Status())
	}
	if e.BaselineIndex() != 1 {
		t.Fatalf("baseline index: %d", e.BaselineIndex())
	}

	res, err = e.Capture(2, burst(50))
	if err != nil {
		t.Fatalf("capture: %v", err)
	}
	if res.IsBaseline || !near(res.TimeShiftNs, 50, 0.5) || !near(res.StressMPa, 25, 0.25) {
		t.Fatalf("expected ~50 ns and ~25 MPa, got %+v", res)
	}
	p, err := e.Point(2)
	if err != nil {
		t.Fatalf("point: %v", err)
	}
	if p.Status != types.PointMeasured || p.MeasuredAt.IsZero() {
		t.Fatalf("point not updated: %+v", p)
	}
}

func TestCapture_DesignatedBaselineMustComeFirst(t *testing.T) {
	e := newExperiment(t, 3, experiment.WithBaselinePoint(2))

	if _, err := e.Capture(1, burst(10)); !errors.Is(err, experiment.ErrNoBaseline) {
		t.Fatalf("expected ErrNoBaseline, got %v", err)
	}
	res, err := e.Capture(2, burst(0))
	if err != nil || !res.IsBaseline {
		t.Fatalf("designated point should become baseline: %+v %v", res, err)
	}
	res, err = e.Capture(1, burst(10))
	if err != nil || !near(res.TimeShiftNs, 10, 0.5) {
		t.Fatalf("expected ~10 ns after baseline, got %+v %v", res, err)
	}
}

func TestCapture_Errors(t *testing.T) {
	e := newExperiment(t, 2)
	if _, err := e.Capture(9, burst(0)); !errors.Is(err, experiment.ErrPointNotFound) {
		t.Fatalf("expected ErrPointNotFound, got %v", err)
	}
	if _, err := e.Capture(1, types.Waveform{SampleRate: sampleRate}); !errors.Is(err, experiment.ErrInvalidWaveform) {
		t.Fatalf("expected ErrInvalidWaveform for empty samples, got %v", err)
	}
	if _, err := e.Capture(1, types.Waveform{Voltages: []float64{1, 2}}); !errors.Is(err, experiment.ErrInvalidWaveform) {
		t.Fatalf("expected ErrInvalidWaveform for missing rate, got %v", err)
	}
	corrupt := burst(0)
	corrupt.Voltages[500] = math.NaN()
	if _, err := e.Capture(1, corrupt); !errors.Is(err, experiment.ErrInvalidWaveform) {
		t.Fatalf("expected ErrInvalidWaveform for a NaN sample, got %v", err)
	}
	if p, _ := e.Point(1); p.Measured() {
		t.Fatalf("rejected capture must leave the point pending")
	}

	uncalibrated := experiment.NewExperiment(points(2), experiment.WithConditioner(passthrough()))
	if _, err := uncalibrated.Capture(1, burst(0)); !errors.Is(err, experiment.ErrNoCalibration) {
		t.Fatalf("expected ErrNoCalibration, got %v", err)
	}
	if got := e.Meter().GetMetricCount(types.MetricCaptureErrorCount); got != 4 {
		t.Fatalf("expected 4 capture errors, got %d", got)
	}
}

func TestCapture_EndToEndDenoised(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	noisy := burst(50)
	for i := range noisy.Voltages {
		noisy.Voltages[i] += rng.NormFloat64() * 0.01
	}
	c := conditioner.NewConditioner(
		conditioner.WithBandpass(types.BandpassConfig{Enabled: false}),
		conditioner.WithDenoise(types.DenoiseConfig{Enabled: true, Wavelet: "sym6", Level: 5}),
	)
	e := experiment.NewExperiment(points(2),
		experiment.WithCalibration(model(t)),
		experiment.WithConditioner(c),
	)
	if _, err := e.Capture(1, burst(0)); err != nil {
		t.Fatalf("baseline: %v", err)
	}
	res, err := e.Capture(2, noisy)
	if err != nil {
		t.Fatalf("capture: %v", err)
	}
	if !near(res.TimeShiftNs, 50, 0.5) {
		t.Fatalf("expected 50 +/- 0.5 ns, got %v", res.TimeShiftNs)
	}
	if res.QualityScore < 0.6 || res.SNR < 15 {
		t.Fatalf("expected acceptable quality, got score %v snr %v", res.QualityScore, res.SNR)
	}
	if !near(res.StressMPa, 25, 0.25) {
		t.Fatalf("expected ~25 MPa, got %v", res.StressMPa)
	}
}

func TestCapture_SuspiciousPointFlagged(t *testing.T) {
	m, err := calibration.FromK(10, 0.99)
	if err != nil {
		t.Fatalf("model: %v", err)
	}
	e := experiment.NewExperiment(points(2),
		experiment.WithCalibration(m),
		experiment.WithConditioner(passthrough()),
	)
	if _, err := e.Capture(1, burst(0)); err != nil {
		t.Fatalf("baseline: %v", err)
	}
	// 50 ns at 10 MPa/ns jumps 500 MPa from the baseline neighbour.
	res, err := e.Capture(2, burst(50))
	if err != nil {
		t.Fatalf("capture: %v", err)
	}
	if !res.Suspicious || len(res.Warnings) == 0 {
		t.Fatalf("expected a suspicious point, got %+v", res)
	}
	if e.Statistics().Suspicious != 1 {
		t.Fatalf("statistics should count the suspicious point")
	}
	if e.Meter().GetMetricCount(types.MetricSuspiciousPointCount) != 1 {
		t.Fatalf("meter should count the suspicious point")
	}
}

func TestRecapture_Overwrites(t *testing.T) {
	e := newExperiment(t, 2)
	e.Capture(1, burst(0))
	e.Capture(2, burst(20))
	res, err := e.Recapture(2, burst(40))
	if err != nil {
		t.Fatalf("recapture: %v", err)
	}
	p, _ := e.Point(2)
	if !near(res.TimeShiftNs, 40, 0.5) || !near(p.TimeShiftNs, 40, 0.5) {
		t.Fatalf("recapture did not overwrite: %+v", p)
	}
}

func TestSetBaselinePoint_RecomputesMeasuredPoints(t *testing.T) {
	e := newExperiment(t, 4)
	e.Capture(1, burst(0))
	e.Capture(2, burst(50))
	e.Capture(3, burst(20))

	n, err := e.SetBaselinePoint(2)
	if err != nil {
		t.Fatalf("set baseline: %v", err)
	}
	if n != 3 {
		t.Fatalf("expected 3 recomputed points, got %d", n)
	}
	want := map[int]float64{1: -50, 2: 0, 3: -30}
	for idx, shift := range want {
		p, _ := e.Point(idx)
		if !near(p.TimeShiftNs, shift, 0.5) {
			t.Fatalf("point %d: expected ~%v ns, got %v", idx, shift, p.TimeShiftNs)
		}
		if !near(p.StressMPa, 0.5*shift, 0.25) {
			t.Fatalf("point %d: expected ~%v MPa, got %v", idx, 0.5*shift, p.StressMPa)
		}
		if p.IsBaseline != (idx == 2) {
			t.Fatalf("point %d: baseline flag %v", idx, p.IsBaseline)
		}
	}
	if e.BaselineIndex() != 2 {
		t.Fatalf("baseline index: %d", e.BaselineIndex())
	}

	res, err := e.Capture(4, burst(50))
	if err != nil || !near(res.TimeShiftNs, 0, 0.5) {
		t.Fatalf("new captures must correlate against the new baseline: %+v %v", res, err)
	}
}

func TestSetBaselinePoint_Refusals(t *testing.T) {
	e := newExperiment(t, 3)
	if _, err := e.SetBaselinePoint(7); !errors.Is(err, experiment.ErrPointNotFound) {
		t.Fatalf("expected ErrPointNotFound, got %v", err)
	}

	// Before any capture the call only designates.
	if n, err := e.SetBaselinePoint(3); err != nil || n != 0 {
		t.Fatalf("designation: %d %v", n, err)
	}
	if _, err := e.Capture(1, burst(0)); !errors.Is(err, experiment.ErrNoBaseline) {
		t.Fatalf("designated point 3 must be captured first, got %v", err)
	}
	e.Capture(3, burst(0))

	if _, err := e.SetBaselinePoint(1); !errors.Is(err, experiment.ErrPointNotMeasured) {
		t.Fatalf("expected ErrPointNotMeasured, got %v", err)
	}

	// A continuous tone has no quiet region, so its SNR is a few dB.
	if _, err := e.Capture(2, tone()); err != nil {
		t.Fatalf("capture tone: %v", err)
	}
	if _, err := e.SetBaselinePoint(2); !errors.Is(err, experiment.ErrPoorBaseline) {
		t.Fatalf("expected ErrPoorBaseline, got %v", err)
	}
	if e.BaselineIndex() != 3 {
		t.Fatalf("refused change must keep baseline 3, got %d", e.BaselineIndex())
	}
}

func TestValidateBaseline(t *testing.T) {
	e := newExperiment(t, 2)
	if _, err := e.ValidateBaseline(); !errors.Is(err, experiment.ErrNoBaseline) {
		t.Fatalf("expected ErrNoBaseline, got %v", err)
	}
	e.Capture(1, burst(0))
	rep, err := e.ValidateBaseline()
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if !rep.Valid || rep.Index != 1 || rep.Quality.SNR < types.SNRGood {
		t.Fatalf("clean burst should be a valid baseline: %+v", rep)
	}
}

func TestSetBaselineStress_ShiftsEveryPoint(t *testing.T) {
	e := newExperiment(t, 3)
	if _, err := experiment.NewExperiment(points(1)).SetBaselineStress(1); !errors.Is(err, experiment.ErrNoCalibration) {
		t.Fatalf("expected ErrNoCalibration, got %v", err)
	}
	e.Capture(1, burst(0))
	e.Capture(2, burst(50))

	n, err := e.SetBaselineStress(100)
	if err != nil || n != 2 {
		t.Fatalf("expected 2 points updated, got %d %v", n, err)
	}
	p1, _ := e.Point(1)
	p2, _ := e.Point(2)
	if p1.StressMPa != 100 || !near(p2.StressMPa, 125, 0.25) {
		t.Fatalf("unexpected stresses %v %v", p1.StressMPa, p2.StressMPa)
	}
	m, ok := e.Calibration()
	if !ok || m.BaselineStress() != 100 {
		t.Fatalf("model baseline stress not updated")
	}
	res, _ := e.Capture(3, burst(10))
	if !near(res.StressMPa, 105, 0.25) {
		t.Fatalf("new captures must use the new offset, got %v", res.StressMPa)
	}
}

func TestSetCalibration_RestressesFromStoredShifts(t *testing.T) {
	e := newExperiment(t, 2)
	e.Capture(1, burst(0))
	e.Capture(2, burst(40))
	m, err := calibration.FromK(1, 0.99)
	if err != nil {
		t.Fatalf("model: %v", err)
	}
	if n := e.SetCalibration(m); n != 2 {
		t.Fatalf("expected 2 points updated, got %d", n)
	}
	p, _ := e.Point(2)
	if !near(p.StressMPa, 40, 0.5) {
		t.Fatalf("expected ~40 MPa at k=1, got %v", p.StressMPa)
	}
}

func TestSkipResetAndStatistics(t *testing.T) {
	e := newExperiment(t, 4)
	e.Capture(1, burst(0))
	e.Capture(2, burst(20))
	e.Capture(3, burst(40))
	if err := e.Skip(4, "surface damage"); err != nil {
		t.Fatalf("skip: %v", err)
	}
	if err := e.Skip(5, ""); !errors.Is(err, experiment.ErrPointNotFound) {
		t.Fatalf("expected ErrPointNotFound, got %v", err)
	}
	p, _ := e.Point(4)
	if p.Status != types.PointSkipped || p.SkipReason != "surface damage" {
		t.Fatalf("skip not recorded: %+v", p)
	}

	s := e.Statistics()
	if s.Total != 4 || s.Measured != 3 || s.Skipped != 1 || s.Pending != 0 {
		t.Fatalf("unexpected counts %+v", s)
	}
	if s.CompletionPct != 75 {
		t.Fatalf("expected 75%% completion, got %v", s.CompletionPct)
	}
	if s.Stress == nil || !near(s.Stress.Mean, 10, 0.3) || !near(s.Stress.Range, 20, 0.3) {
		t.Fatalf("unexpected stress stats %+v", s.Stress)
	}
	if !near(s.Stress.Std, math.Sqrt(200.0/3), 0.3) {
		t.Fatalf("std should be the population deviation, got %v", s.Stress.Std)
	}

	e.Complete()
	if e.Status() != experiment.StatusCompleted {
		t.Fatalf("status: %s", e.Status())
	}
	if err := e.Reset(); err != nil {
		t.Fatalf("reset: %v", err)
	}
	s = e.Statistics()
	if s.Pending != 4 || s.Measured != 0 || s.Stress != nil {
		t.Fatalf("reset should return every point to pending: %+v", s)
	}
	if e.Status() != experiment.StatusCreated {
		t.Fatalf("reset status: %s", e.Status())
	}
	if res, err := e.Capture(2, burst(0)); err != nil || !res.IsBaseline {
		t.Fatalf("first capture after reset should be the baseline: %+v %v", res, err)
	}
}

func TestField_InterpolatesAndForwardsToSinks(t *testing.T) {
	region := shape.NewRegion(shape.Rectangle{Width: 100, Height: 100})
	lay, err := layout.Grid(region, layout.GridParams{Rows: 3, Cols: 3, Margins: layout.Uniform(10)})
	if err != nil {
		t.Fatalf("grid: %v", err)
	}
	sink := &recordingSink{}
	e := experiment.NewExperiment(lay.Points,
		experiment.WithCalibration(model(t)),
		experiment.WithConditioner(passthrough()),
		experiment.WithRegion(region),
		experiment.WithResultSink(sink),
	)

	if _, err := e.Field(); err != nil {
		t.Fatalf("empty field: %v", err)
	}
	for _, p := range lay.Points {
		// Delay grows with x so the field is a ramp; point 1 at x=10 is the baseline.
		if _, err := e.Capture(p.Index, burst(p.X/4)); err != nil {
			t.Fatalf("capture %d: %v", p.Index, err)
		}
	}
	g, err := e.Field()
	if err != nil {
		t.Fatalf("field: %v", err)
	}
	if g.Mode != types.ModeContour || g.NPoints != 9 {
		t.Fatalf("expected a contour over 9 points, got %s %d", g.Mode, g.NPoints)
	}
	if g.Stats.VMax <= g.Stats.VMin {
		t.Fatalf("ramp should span a range: %+v", g.Stats)
	}
	if v, ok := e.ValueAt(90, 50, "nearest"); !ok || !near(v, 0.5*(90-10)/4, 0.5) {
		t.Fatalf("nearest value at the right edge: %v %v", v, ok)
	}

	if len(sink.points) != 9 || len(sink.grids) != 2 {
		t.Fatalf("sink saw %d points and %d grids", len(sink.points), len(sink.grids))
	}
	if err := e.Close(); err != nil || !sink.closed {
		t.Fatalf("close should close sinks: %v", err)
	}
	if e.Meter().GetMetricCount(types.MetricFieldGenerationCount) != 2 {
		t.Fatalf("field generations not counted")
	}

	if _, err := experiment.NewExperiment(nil).Field(); !errors.Is(err, shape.ErrUnknownShape) {
		t.Fatalf("field without region: %v", err)
	}
}

func TestCapture_LogsStructuredResult(t *testing.T) {
	logger, logs := testutil.NewObserverLogger()
	e := newExperiment(t, 2, experiment.WithLogger(logger))
	e.Capture(1, burst(0))
	e.Capture(2, burst(10))

	entries := logs.FilterMessage("Point captured").All()
	if len(entries) != 2 {
		t.Fatalf("expected 2 capture logs, got %d", len(entries))
	}
	ctx := entries[1].ContextMap()
	if ctx["point_index"] != int64(2) || ctx["experiment_id"] != e.ID() || ctx["result"] != "SUCCESS" {
		t.Fatalf("unexpected log context %v", ctx)
	}
	if logs.FilterMessage("Point capture failed").Len() != 0 {
		t.Fatalf("no failures expected")
	}
}

func TestCapture_ConcurrentReadersAndWriters(t *testing.T) {
	e := newExperiment(t, 20)
	if _, err := e.Capture(1, burst(0)); err != nil {
		t.Fatalf("baseline: %v", err)
	}
	var wg sync.WaitGroup
	for i := 2; i <= 20; i++ {
		wg.Add(2)
		go func(idx int) {
			defer wg.Done()
			if _, err := e.Capture(idx, burst(float64(idx))); err != nil {
				t.Errorf("capture %d: %v", idx, err)
			}
		}(i)
		go func() {
			defer wg.Done()
			_ = e.Statistics()
			_ = e.Points()
		}()
	}
	wg.Wait()
	if s := e.Statistics(); s.Measured != 20 {
		t.Fatalf("expected 20 measured points, got %d", s.Measured)
	}
}

func TestEvaluateDenoise(t *testing.T) {
	e := newExperiment(t, 1)
	if _, err := e.EvaluateDenoise(types.Waveform{}); !errors.Is(err, experiment.ErrInvalidWaveform) {
		t.Fatalf("expected ErrInvalidWaveform, got %v", err)
	}
	if _, err := e.EvaluateDenoise(burst(0)); err != nil {
		t.Fatalf("evaluate: %v", err)
	}
}

func TestSensor_ReceivesExperimentEvents(t *testing.T) {
	var (
		captured   []int
		failed     []int
		baselines  []int
		recomputed []int
		skipped    []string
		resets     int
	)
	hooks := sensor.NewSensor(
		sensor.WithOnCaptureFunc(func(c types.ComponentMetadata, r types.PointResult) {
			if c.Type != "EXPERIMENT" {
				t.Errorf("unexpected source %+v", c)
			}
			captured = append(captured, r.Index)
		}),
		sensor.WithOnCaptureErrorFunc(func(c types.ComponentMetadata, index int, err error) { failed = append(failed, index) }),
		sensor.WithOnBaselineChangeFunc(func(c types.ComponentMetadata, index int) { baselines = append(baselines, index) }),
		sensor.WithOnRecomputeFunc(func(c types.ComponentMetadata, n int) { recomputed = append(recomputed, n) }),
		sensor.WithOnSkipFunc(func(c types.ComponentMetadata, index int, reason string) { skipped = append(skipped, reason) }),
		sensor.WithOnResetFunc(func(c types.ComponentMetadata) { resets++ }),
	)
	e := newExperiment(t, 4, experiment.WithSensor(hooks))

	if _, err := e.Capture(9, burst(0)); err == nil {
		t.Fatalf("expected unknown point error")
	}
	e.Capture(1, burst(0))
	e.Capture(2, burst(40))
	if err := e.Skip(3, "clamp in the way"); err != nil {
		t.Fatalf("skip: %v", err)
	}
	if _, err := e.SetBaselinePoint(2); err != nil {
		t.Fatalf("set baseline: %v", err)
	}
	if _, err := e.SetBaselineStress(10); err != nil {
		t.Fatalf("baseline stress: %v", err)
	}
	if err := e.Reset(); err != nil {
		t.Fatalf("reset: %v", err)
	}

	if len(captured) != 2 || captured[0] != 1 || captured[1] != 2 {
		t.Fatalf("captures: %v", captured)
	}
	if len(failed) != 1 || failed[0] != 9 {
		t.Fatalf("failures: %v", failed)
	}
	if len(baselines) != 2 || baselines[0] != 1 || baselines[1] != 2 {
		t.Fatalf("baseline changes: %v", baselines)
	}
	if len(recomputed) != 2 || recomputed[0] != 2 || recomputed[1] != 2 {
		t.Fatalf("recomputes: %v", recomputed)
	}
	if len(skipped) != 1 || skipped[0] != "clamp in the way" || resets != 1 {
		t.Fatalf("skips %v, resets %d", skipped, resets)
	}
}
