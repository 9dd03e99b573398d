package tof

import (
	"fmt"
	"math"

	"github.com/joeydtaylor/acoustofield/pkg/internal/types"
)

// Extract measures how far measurement lags baseline. A positive TimeShiftNs means the
// measurement arrives later. The sample rate comes from the measurement, falling back
// to the baseline's.
func Extract(baseline, measurement types.Waveform) (types.ToFResult, error) {
	fs := measurement.SampleRate
	if fs <= 0 {
		fs = baseline.SampleRate
	}
	if fs <= 0 {
		return types.ToFResult{}, ErrInvalidSampleRate
	}
	if i := firstNonFinite(baseline.Voltages); i >= 0 {
		return types.ToFResult{}, fmt.Errorf("%w: baseline sample %d", ErrNonFiniteSample, i)
	}
	if i := firstNonFinite(measurement.Voltages); i >= 0 {
		return types.ToFResult{}, fmt.Errorf("%w: measurement sample %d", ErrNonFiniteSample, i)
	}

	b, m, aligned := Align(baseline, measurement)
	n := len(b)
	if n < 2 {
		return types.ToFResult{}, fmt.Errorf("%w: %d overlapping samples", ErrEmptyWaveform, n)
	}

	c := CrossCorrelate(m, b)
	idx, refined := RefinePeak(c)

	lag := refined - float64(n-1)
	limit := float64(n - 1)
	lag = math.Max(-limit, math.Min(limit, lag))

	return types.ToFResult{
		TimeShiftNs:     lag / fs * 1e9,
		LagSamples:      lag,
		CorrelationPeak: c[idx],
		Samples:         n,
		Aligned:         aligned,
	}, nil
}

func firstNonFinite(v []float64) int {
	for i, x := range v {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return i
		}
	}
	return -1
}
