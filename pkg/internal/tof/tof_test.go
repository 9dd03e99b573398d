package tof_test

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/joeydtaylor/acoustofield/pkg/internal/testutil"
	"github.com/joeydtaylor/acoustofield/pkg/internal/tof"
	"github.com/joeydtaylor/acoustofield/pkg/internal/types"
)

func burst(n int, delay, freq, center, sigma float64) []float64 {
	out := make([]float64, n)
	for k := range out {
		x := float64(k) - center - delay
		out[k] = math.Exp(-x*x/(2*sigma*sigma)) * math.Sin(2*math.Pi*freq*x)
	}
	return out
}

func TestExtract_SubSampleAccuracy(t *testing.T) {
	const delay = 3.37
	baseline := types.Waveform{Voltages: burst(400, 0, 0.05, 150, 25), SampleRate: 1}
	measured := types.Waveform{Voltages: burst(400, delay, 0.05, 150, 25), SampleRate: 1}

	res, err := tof.Extract(baseline, measured)
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if math.Abs(res.LagSamples-delay) > 0.05 {
		t.Fatalf("expected lag %.2f within 0.05 samples, got %.4f", delay, res.LagSamples)
	}
	if res.TimeShiftNs <= 0 {
		t.Fatalf("delayed measurement must report a positive shift, got %v", res.TimeShiftNs)
	}
}

func TestExtract_Antisymmetric(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	a := make([]float64, 256)
	b := make([]float64, 256)
	for i := range a {
		a[i] = rng.NormFloat64()
		b[i] = rng.NormFloat64()
	}
	wa := types.Waveform{Voltages: a, SampleRate: 1e9}
	wb := types.Waveform{Voltages: b, SampleRate: 1e9}

	ab, err := tof.Extract(wa, wb)
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	ba, err := tof.Extract(wb, wa)
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if math.Abs(ab.TimeShiftNs+ba.TimeShiftNs) > 1e-6 {
		t.Fatalf("expected opposite shifts, got %v and %v", ab.TimeShiftNs, ba.TimeShiftNs)
	}
}

func TestExtract_IntegerDelayAtGigahertz(t *testing.T) {
	baseline := types.Waveform{Voltages: burst(1000, 0, 0.01, 400, 80), SampleRate: 1e9}
	measured := types.Waveform{Voltages: burst(1000, 50, 0.01, 400, 80), SampleRate: 1e9}

	res, err := tof.Extract(baseline, measured)
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if math.Abs(res.TimeShiftNs-50) > 0.5 {
		t.Fatalf("expected ~50 ns, got %v", res.TimeShiftNs)
	}
	if res.Samples != 1000 || res.Aligned {
		t.Fatalf("unexpected alignment metadata: %+v", res)
	}
}

func TestExtract_Errors(t *testing.T) {
	if _, err := tof.Extract(types.Waveform{Voltages: []float64{1, 2}}, types.Waveform{Voltages: []float64{1, 2}}); !errors.Is(err, tof.ErrInvalidSampleRate) {
		t.Fatalf("expected ErrInvalidSampleRate, got %v", err)
	}
	if _, err := tof.Extract(types.Waveform{SampleRate: 1}, types.Waveform{Voltages: []float64{1}, SampleRate: 1}); !errors.Is(err, tof.ErrEmptyWaveform) {
		t.Fatalf("expected ErrEmptyWaveform, got %v", err)
	}
}

func TestExtract_RejectsNonFiniteSamples(t *testing.T) {
	baseline := types.Waveform{Voltages: burst(1000, 0, 0.01, 400, 80), SampleRate: 1e9}
	measured := types.Waveform{Voltages: burst(1000, 20, 0.01, 400, 80), SampleRate: 1e9}
	measured.Voltages[500] = math.NaN()

	if _, err := tof.Extract(baseline, measured); !errors.Is(err, tof.ErrNonFiniteSample) {
		t.Fatalf("expected ErrNonFiniteSample for a NaN measurement sample, got %v", err)
	}

	measured.Voltages[500] = 0
	baseline.Voltages[10] = math.Inf(1)
	if _, err := tof.Extract(baseline, measured); !errors.Is(err, tof.ErrNonFiniteSample) {
		t.Fatalf("expected ErrNonFiniteSample for an infinite baseline sample, got %v", err)
	}
}

func TestAlign_UsesOverlappingWindow(t *testing.T) {
	n := 300
	bt := make([]float64, n)
	mt := make([]float64, n)
	bv := make([]float64, n)
	mv := make([]float64, n)
	for i := 0; i < n; i++ {
		bt[i] = float64(i)
		mt[i] = float64(i + 100)
		bv[i] = float64(i)
		mv[i] = float64(i + 100)
	}
	b, m, aligned := tof.Align(types.Waveform{Times: bt, Voltages: bv}, types.Waveform{Times: mt, Voltages: mv})
	if !aligned {
		t.Fatalf("expected alignment to apply")
	}
	if len(b) != 200 || len(m) != 200 {
		t.Fatalf("expected 200 overlapping samples, got %d and %d", len(b), len(m))
	}
	if b[0] != 100 || m[0] != 100 {
		t.Fatalf("expected both windows to start at t=100, got %v and %v", b[0], m[0])
	}
}

func TestAlign_SmallOverlapFallsBackToTruncation(t *testing.T) {
	bt := []float64{0, 1, 2, 3, 4}
	mt := []float64{3, 4, 5}
	b, m, aligned := tof.Align(
		types.Waveform{Times: bt, Voltages: []float64{1, 2, 3, 4, 5}},
		types.Waveform{Times: mt, Voltages: []float64{9, 8, 7}},
	)
	if aligned {
		t.Fatalf("overlap below 100 samples must not align")
	}
	if len(b) != 3 || len(m) != 3 || b[0] != 1 {
		t.Fatalf("expected truncation to 3 samples from the start, got %v %v", b, m)
	}
}

func TestCrossCorrelate_MatchesDirectSum(t *testing.T) {
	m := []float64{1, 3, -2, 0.5, 4}
	b := []float64{0.5, -1, 2, 2, 1}
	got := tof.CrossCorrelate(m, b)

	mean := func(x []float64) float64 {
		var s float64
		for _, v := range x {
			s += v
		}
		return s / float64(len(x))
	}
	mm, bm := mean(m), mean(b)
	n := len(m)
	for lag := -(n - 1); lag < n; lag++ {
		var want float64
		for i := 0; i < n; i++ {
			j := i + lag
			if j >= 0 && j < n {
				want += (m[j] - mm) * (b[i] - bm)
			}
		}
		if math.Abs(got[lag+n-1]-want) > 1e-9 {
			t.Fatalf("lag %d: expected %v, got %v", lag, want, got[lag+n-1])
		}
	}
}

func TestRefinePeak_EdgesAreNotRefined(t *testing.T) {
	idx, refined := tof.RefinePeak([]float64{5, 4, 1, 0, 0})
	if idx != 0 || refined != 0 {
		t.Fatalf("expected unrefined edge peak, got %d %v", idx, refined)
	}
	idx, refined = tof.RefinePeak([]float64{0, 1, 3, 4, 3, 1, 0})
	if idx != 3 || refined != 3 {
		t.Fatalf("symmetric peak should stay at 3, got %d %v", idx, refined)
	}
	_, refined = tof.RefinePeak([]float64{0, 1, 3, 4, 3.5, 1, 0})
	if refined <= 3 || refined >= 3.5 {
		t.Fatalf("expected refinement toward the larger neighbour, got %v", refined)
	}
}

func TestSNR_QuietLeadInAndClamp(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	v := burst(2000, 0, 0.01, 1200, 80)
	for i := range v {
		v[i] += rng.NormFloat64() * 0.01
	}
	snr := tof.SNR(v)
	if snr < 30 || snr > 45 {
		t.Fatalf("expected SNR around 40 dB, got %v", snr)
	}

	clean := burst(2000, 0, 0.01, 1200, 80)
	if got := tof.SNR(clean); got != 60 {
		t.Fatalf("noise-free signal must clamp to 60 dB, got %v", got)
	}
	if got := tof.SNR(make([]float64, 500)); got != 0 {
		t.Fatalf("zero signal must report 0 dB, got %v", got)
	}
}

func TestEvaluateQuality_Penalties(t *testing.T) {
	flat := make([]float64, 1000)
	q := tof.EvaluateQuality(flat)
	// low SNR, tiny amplitude and no variation: 1 - 0.3 - 0.3 - 0.4
	if q.Score != 0 || q.Acceptable || len(q.Issues) != 3 {
		t.Fatalf("unexpected quality for flat signal: %+v", q)
	}

	rng := rand.New(rand.NewSource(5))
	v := burst(2000, 0, 0.01, 1200, 80)
	for i := range v {
		v[i] += rng.NormFloat64() * 0.005
	}
	q = tof.EvaluateQuality(v)
	if !q.Good || q.Score != 1 {
		t.Fatalf("expected perfect score for clean burst, got %+v", q)
	}

	saturated := burst(2000, 0, 0.01, 1200, 80)
	for i := range saturated {
		saturated[i] *= 20
	}
	q = tof.EvaluateQuality(saturated)
	if math.Abs(q.Score-0.8) > 1e-12 {
		t.Fatalf("expected saturation penalty only, got %+v", q)
	}
}

func TestExtractor_LogsFailure(t *testing.T) {
	logger, obs := testutil.NewObserverLogger()
	e := tof.NewExtractor(tof.WithLogger(logger), tof.WithComponentMetadata("tof", "x1"))

	if _, err := e.Extract(types.Waveform{}, types.Waveform{}); err == nil {
		t.Fatalf("expected error")
	}
	entries := obs.FilterMessage("Time shift extraction failed").All()
	if len(entries) != 1 {
		t.Fatalf("expected one failure entry, got %d", len(entries))
	}
	if entries[0].ContextMap()["result"] != "FAILURE" {
		t.Fatalf("expected FAILURE result, got %v", entries[0].ContextMap()["result"])
	}
}
