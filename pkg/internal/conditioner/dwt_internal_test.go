package conditioner

import (
	"math"
	"math/rand"
	"testing"

	"github.com/joeydtaylor/acoustofield/pkg/internal/types"
)

func TestFilterBanksAreOrthonormal(t *testing.T) {
	for name := range waveletTable {
		fb, ok := lookupWavelet(name)
		if !ok {
			t.Fatalf("%s: lookup failed", name)
		}
		var sum, energy float64
		for _, v := range fb.decLo {
			sum += v
			energy += v * v
		}
		if math.Abs(sum-math.Sqrt2) > 1e-9 || math.Abs(energy-1) > 1e-9 {
			t.Fatalf("%s: sum=%v energy=%v", name, sum, energy)
		}
	}
}

func TestWavedecWaverec_PerfectReconstruction(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for _, name := range []string{"db1", "db2", "sym6", "coif1", "sym8"} {
		fb, _ := lookupWavelet(name)
		for _, n := range []int{1000, 37, 64} {
			x := make([]float64, n)
			for i := range x {
				x[i] = rng.NormFloat64()
			}
			level := min(maxLevel(n, fb.length()), 5)
			if level < 1 {
				continue
			}
			rec := fitLength(waverec(wavedec(x, fb, level), fb), n)
			for i := range x {
				if math.Abs(rec[i]-x[i]) > 1e-9 {
					t.Fatalf("%s n=%d: sample %d differs by %g", name, n, i, rec[i]-x[i])
				}
			}
		}
	}
}

func TestWavedec_CoefficientLengths(t *testing.T) {
	fb, _ := lookupWavelet("sym6")
	coeffs := wavedec(make([]float64, 1000), fb, 5)
	want := []int{41, 41, 72, 134, 258, 505}
	for i, c := range coeffs {
		if len(c) != want[i] {
			t.Fatalf("band %d: expected %d coefficients, got %d", i, want[i], len(c))
		}
	}
}

func TestMaxLevel(t *testing.T) {
	if got := maxLevel(1024, 12); got != 6 {
		t.Fatalf("expected 6, got %d", got)
	}
	if got := maxLevel(5, 12); got != 0 {
		t.Fatalf("expected 0 for a signal shorter than the filter, got %d", got)
	}
}

func TestThresholdRules(t *testing.T) {
	c := make([]float64, 64)
	for i := range c {
		c[i] = float64(i%7) - 3
	}
	sigma := 1.0
	if got, want := threshold(c, sigma, types.RuleUniversal), math.Sqrt(2*math.Log(64)); math.Abs(got-want) > 1e-12 {
		t.Fatalf("universal: expected %v, got %v", want, got)
	}
	if got, want := threshold(c, sigma, types.RuleMinimax), 0.3936+0.1829*6; math.Abs(got-want) > 1e-12 {
		t.Fatalf("minimax: expected %v, got %v", want, got)
	}
	if got := minimaxThreshold(sigma, 32); got != 0 {
		t.Fatalf("minimax must be 0 for N <= 32, got %v", got)
	}
	h := threshold(c, sigma, types.RuleHeurSure)
	if sureRisk(c, h, sigma) > sureRisk(c, universalThreshold(sigma, len(c)), sigma) {
		t.Fatalf("heursure picked a threshold riskier than universal")
	}
}

func TestSureStep_BoundsCandidates(t *testing.T) {
	for _, n := range []int{1, 99, 100, 101, 199, 1000, 4097} {
		step := sureStep(n)
		tried := 0
		for i := 0; i < n; i += step {
			tried++
		}
		if tried > sureCandidates {
			t.Fatalf("n=%d: %d candidates tried, limit %d", n, tried, sureCandidates)
		}
		if n <= sureCandidates && tried != n {
			t.Fatalf("n=%d: short inputs should try every magnitude, tried %d", n, tried)
		}
	}
}

func TestShrinkModes(t *testing.T) {
	c := []float64{-3, -1, 0.5, 2}
	soft := shrink(c, 1, types.ModeSoft)
	hard := shrink(c, 1, types.ModeHard)
	wantSoft := []float64{-2, 0, 0, 1}
	wantHard := []float64{-3, -1, 0, 2}
	for i := range c {
		if soft[i] != wantSoft[i] || hard[i] != wantHard[i] {
			t.Fatalf("index %d: soft=%v hard=%v", i, soft[i], hard[i])
		}
	}
}

func TestNoiseSigma(t *testing.T) {
	if got := noiseSigma([]float64{-1, 2, -3, 4}); math.Abs(got-2.5/madScale) > 1e-12 {
		t.Fatalf("unexpected sigma %v", got)
	}
}
