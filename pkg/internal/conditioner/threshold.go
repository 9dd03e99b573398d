package conditioner

import (
	"math"
	"sort"

	"github.com/joeydtaylor/acoustofield/pkg/internal/types"
)

const (
	madScale       = 0.6745
	sigmaFloor     = 1e-10
	sureEpsilon    = 1e-10
	sureCandidates = 100
)

// noiseSigma estimates the noise level of a detail band as median(|c|)/0.6745.
func noiseSigma(c []float64) float64 {
	if len(c) == 0 {
		return 0
	}
	abs := make([]float64, len(c))
	for i, v := range c {
		abs[i] = math.Abs(v)
	}
	sort.Float64s(abs)
	n := len(abs)
	var med float64
	if n%2 == 1 {
		med = abs[n/2]
	} else {
		med = 0.5 * (abs[n/2-1] + abs[n/2])
	}
	return med / madScale
}

func universalThreshold(sigma float64, n int) float64 {
	if n < 2 {
		return 0
	}
	return sigma * math.Sqrt(2*math.Log(float64(n)))
}

func minimaxThreshold(sigma float64, n int) float64 {
	if n <= 32 {
		return 0
	}
	return sigma * (0.3936 + 0.1829*math.Log2(float64(n)))
}

// sureRisk is N - 2*#{|c| < t} + sum(min(|c|, t)^2)/(sigma^2+eps).
func sureRisk(c []float64, t, sigma float64) float64 {
	below := 0
	var acc float64
	for _, v := range c {
		a := math.Abs(v)
		if a < t {
			below++
		}
		m := math.Min(a, t)
		acc += m * m
	}
	return float64(len(c)) - 2*float64(below) + acc/(sigma*sigma+sureEpsilon)
}

// heurSureThreshold searches sorted magnitudes on a coarse grid for the SURE minimiser
// and keeps it only when it beats the universal threshold.
func heurSureThreshold(c []float64, sigma float64) float64 {
	n := len(c)
	universal := universalThreshold(sigma, n)
	if n == 0 {
		return universal
	}
	mags := make([]float64, n)
	for i, v := range c {
		mags[i] = math.Abs(v)
	}
	sort.Float64s(mags)

	step := sureStep(n)
	best, bestRisk := universal, math.Inf(1)
	for i := 0; i < n; i += step {
		if r := sureRisk(c, mags[i], sigma); r < bestRisk {
			best, bestRisk = mags[i], r
		}
	}
	if bestRisk < sureRisk(c, universal, sigma) {
		return best
	}
	return universal
}

// sureStep spaces the SURE search so at most sureCandidates magnitudes are tried.
func sureStep(n int) int {
	if n <= sureCandidates {
		return 1
	}
	return (n + sureCandidates - 1) / sureCandidates
}

func threshold(c []float64, sigma float64, rule types.ThresholdRule) float64 {
	switch rule {
	case types.RuleUniversal:
		return universalThreshold(sigma, len(c))
	case types.RuleMinimax:
		return minimaxThreshold(sigma, len(c))
	default:
		return heurSureThreshold(c, sigma)
	}
}

// shrink applies soft or hard thresholding and returns a new slice.
func shrink(c []float64, t float64, mode types.ThresholdMode) []float64 {
	out := make([]float64, len(c))
	for i, v := range c {
		a := math.Abs(v)
		switch mode {
		case types.ModeHard:
			if a >= t {
				out[i] = v
			}
		default:
			if a > t {
				out[i] = math.Copysign(a-t, v)
			}
		}
	}
	return out
}
