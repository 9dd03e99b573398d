package main

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/joeydtaylor/acoustofield/pkg/builder"
)

const (
	sampleRate = 100e6 // 10 ns per sample
	samples    = 2000
	k          = 0.5 // MPa/ns
)

// burst is a 2.5 MHz Gaussian-windowed pulse arriving delayNs after the baseline.
func burst(delayNs float64, rng *rand.Rand) builder.Waveform {
	v := make([]float64, samples)
	shift := delayNs * 1e-9 * sampleRate
	for i := range v {
		x := float64(i) - 600 - shift
		v[i] = math.Exp(-x*x/(2*80*80))*math.Sin(2*math.Pi*0.025*x) + 0.01*rng.NormFloat64()
	}
	return builder.Waveform{Voltages: v, SampleRate: sampleRate}
}

// residualStress is a weld-like profile peaking along the plate's centre line.
func residualStress(x, y float64) float64 {
	return 60 * math.Exp(-math.Pow((y-50)/20, 2)) * (0.6 + 0.4*math.Sin(x/40))
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	logger := builder.NewLogger(builder.LoggerWithLevel("info"))

	region := builder.NewRegion(
		builder.Rectangle{Width: 200, Height: 100},
		builder.Circle{CenterX: 160, CenterY: 20, Outer: 8},
	)
	lay, err := builder.GridLayout(region, builder.GridParams{Rows: 7, Cols: 11, Margins: builder.UniformMargins(10)})
	if err != nil {
		fmt.Printf("Layout failed: %v\n", err)
		return
	}
	points, path, err := builder.OrderPoints(lay.Points, builder.OrderZigzag)
	if err != nil {
		fmt.Printf("Ordering failed: %v\n", err)
		return
	}
	fmt.Printf("%d points, path %.0f mm -> %.0f mm (%.1f%% shorter)\n", len(points), path.Before, path.After, path.ImprovementPct)

	model, err := builder.CalibrationFromK(k, 0.99)
	if err != nil {
		fmt.Printf("Calibration failed: %v\n", err)
		return
	}

	meter := builder.NewMeter(builder.MeterWithLogger(logger), builder.MeterWithMonitorInterval(time.Second))
	go meter.Monitor(ctx)

	hooks := builder.NewSensor(
		builder.SensorWithOnSuspiciousFunc(func(c builder.ComponentMetadata, r builder.PointResult) {
			fmt.Printf("Point %d flagged: %d warnings\n", r.Index, len(r.Warnings))
		}),
		builder.SensorWithOnCaptureErrorFunc(func(c builder.ComponentMetadata, index int, err error) {
			fmt.Printf("Point %d rejected: %v\n", index, err)
		}),
	)

	exp := builder.NewExperiment(points,
		builder.ExperimentWithLogger(logger),
		builder.ExperimentWithName("weld-plate"),
		builder.ExperimentWithRegion(region),
		builder.ExperimentWithCalibration(model),
		builder.ExperimentWithMeter(meter),
		builder.ExperimentWithSensor(hooks),
	)

	rng := rand.New(rand.NewSource(7))
	// The first point is captured unstressed and becomes the baseline.
	base := points[0]
	offset := residualStress(base.X, base.Y)
	for _, p := range points {
		delay := (residualStress(p.X, p.Y) - offset) / k
		if p.Index == base.Index {
			delay = 0
		}
		_, _ = exp.Capture(p.Index, burst(delay, rng))
	}

	report, err := exp.ValidateBaseline()
	if err != nil {
		fmt.Printf("Baseline check failed: %v\n", err)
		return
	}
	fmt.Printf("Baseline point %d: SNR %.1f dB, valid=%v\n", report.Index, report.Quality.SNR, report.Valid)

	grid, err := exp.Field()
	if err != nil {
		fmt.Printf("Field failed: %v\n", err)
		return
	}
	fmt.Printf("Field: method=%s confidence=%s min=%.1f max=%.1f mean=%.1f MPa\n",
		grid.Method, grid.Confidence, grid.Stats.VMin, grid.Stats.VMax, grid.Stats.Mean)

	if v, ok := exp.ValueAt(100, 50, "idw"); ok {
		fmt.Printf("Stress at (100, 50): %.1f MPa (true %.1f)\n", v, residualStress(100, 50)-offset)
	}

	stats := exp.Statistics()
	fmt.Printf("Measured %d/%d (%.0f%%), suspicious %d\n", stats.Measured, stats.Total, stats.CompletionPct, stats.Suspicious)

	exp.Complete()
	snap := meter.Snapshot()
	fmt.Printf("Captures: %d, errors: %d\n", snap.Counts[string(builder.MetricCaptureCount)], snap.Counts[string(builder.MetricCaptureErrorCount)])
	_ = logger.Flush()
}
