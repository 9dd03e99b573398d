package main

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/joeydtaylor/acoustofield/pkg/builder"
)

const sampleRate = 100e6

func burst(delayNs float64, rng *rand.Rand) builder.Waveform {
	v := make([]float64, 2000)
	shift := delayNs * 1e-9 * sampleRate
	for i := range v {
		x := float64(i) - 600 - shift
		v[i] = math.Exp(-x*x/(2*80*80))*math.Sin(2*math.Pi*0.025*x) + 0.01*rng.NormFloat64()
	}
	return builder.Waveform{Voltages: v, SampleRate: sampleRate}
}

// hoopStress falls off with radius like a shrink-fitted hub.
func hoopStress(r float64) float64 {
	return 80 * (1 + 15*15/(r*r)) / 2
}

func main() {
	path := builder.EnvOr("ACOUSTOFIELD_CONFIG", "example/config_example/experiment.yaml")
	cfg, err := builder.LoadConfig(path)
	if err != nil {
		fmt.Printf("Config failed: %v\n", err)
		return
	}

	logger, err := builder.NewLoggerFromConfig(cfg)
	if err != nil {
		fmt.Printf("Logger failed: %v\n", err)
		return
	}
	defer logger.Flush()

	setup, err := builder.NewExperimentFromConfig(cfg, logger)
	if err != nil {
		fmt.Printf("Setup failed: %v\n", err)
		return
	}
	defer setup.Close()

	for _, w := range setup.Warnings {
		fmt.Println("warning:", w)
	}
	fmt.Printf("%d points on %d rings, path %.0f mm\n", len(setup.Layout.Points), cfg.Layout.Polar.RingCount, setup.Path.After)

	exp := setup.Experiment
	rng := rand.New(rand.NewSource(11))
	model, _ := exp.Calibration()
	ref := 0.0
	for i, p := range exp.Points() {
		s := hoopStress(math.Hypot(p.X, p.Y))
		if i == 0 {
			ref = s
		}
		if _, err := exp.Capture(p.Index, burst((s-ref)/model.K(), rng)); err != nil {
			fmt.Printf("Capture %d failed: %v\n", p.Index, err)
		}
	}

	effect, err := exp.EvaluateDenoise(burst(0, rng))
	if err == nil {
		fmt.Printf("Denoise: %.1f dB -> %.1f dB\n", effect.OriginalSNR, effect.DenoisedSNR)
	}

	grid, err := exp.Field()
	if err != nil {
		fmt.Printf("Field failed: %v\n", err)
		return
	}
	fmt.Printf("Field %dx%d via %s, range %.1f to %.1f MPa\n",
		len(grid.Zi), len(grid.Zi), grid.Method, grid.Stats.VMin, grid.Stats.VMax)

	if setup.Sink != nil {
		fmt.Println("Results written to", setup.Sink.Dir())
	}
}
