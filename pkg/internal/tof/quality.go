package tof

import (
	"fmt"
	"math"

	"github.com/joeydtaylor/acoustofield/pkg/internal/types"
	"gonum.org/v1/gonum/stat"
)

const (
	snrMaxDB       = 60.0
	noiseRMSFloor  = 1e-10
	minNoiseWindow = 100
)

// SNR returns 20*log10(peak/noiseRMS) clamped to [0, 60] dB. Noise comes from the
// leading 5% of samples (at least 100) when the peak lies well after that region,
// otherwise from the lowest-variance 5%-wide window.
func SNR(v []float64) float64 {
	n := len(v)
	if n == 0 {
		return 0
	}
	peakIdx, peak := 0, 0.0
	for i, x := range v {
		if a := math.Abs(x); a > peak {
			peakIdx, peak = i, a
		}
	}

	noiseEnd := max(n/20, minNoiseWindow)
	var region []float64
	if peakIdx > 2*noiseEnd {
		region = v[:noiseEnd]
	} else {
		region = quietestWindow(v, n/20)
	}

	rms := noiseRMSFloor
	if len(region) > 0 {
		var acc float64
		for _, x := range region {
			acc += x * x
		}
		rms = math.Max(math.Sqrt(acc/float64(len(region))), noiseRMSFloor)
	}
	if peak == 0 {
		return 0
	}
	return math.Max(0, math.Min(snrMaxDB, 20*math.Log10(peak/rms)))
}

// quietestWindow slides a window of size w with half-window hops and returns the
// lowest-variance slice.
func quietestWindow(v []float64, w int) []float64 {
	if w <= 0 {
		return v
	}
	best := v[:w]
	bestVar := math.Inf(1)
	hop := max(w/2, 1)
	for i := 0; i < len(v)-w; i += hop {
		win := v[i : i+w]
		if variance := stat.PopVariance(win, nil); variance < bestVar {
			bestVar = variance
			best = win
		}
	}
	return best
}

// EvaluateQuality scores a conditioned waveform between 0 and 1.
func EvaluateQuality(v []float64) types.Quality {
	q := types.Quality{Score: 1.0, SNR: SNR(v)}
	for _, x := range v {
		q.PeakAmplitude = math.Max(q.PeakAmplitude, math.Abs(x))
	}
	if len(v) > 0 {
		q.StdDev = math.Sqrt(stat.PopVariance(v, nil))
	}

	switch {
	case q.SNR < types.SNRWarning:
		q.Score -= 0.3
		q.Issues = append(q.Issues, fmt.Sprintf("low SNR (%.1f dB)", q.SNR))
	case q.SNR < types.SNRGood:
		q.Score -= 0.1
	}

	switch {
	case q.PeakAmplitude < 0.01:
		q.Score -= 0.3
		q.Issues = append(q.Issues, "signal amplitude too small")
	case q.PeakAmplitude > 10:
		q.Score -= 0.2
		q.Issues = append(q.Issues, "signal amplitude too large, possible saturation")
	}

	if q.StdDev < 0.001 {
		q.Score -= 0.4
		q.Issues = append(q.Issues, "signal variation too small")
	}

	q.Score = math.Max(0, math.Min(1, q.Score))
	q.Good = q.Score >= types.QualityGood
	q.Acceptable = q.Score >= types.QualityAcceptable
	return q
}
