package tof

import "github.com/joeydtaylor/acoustofield/pkg/internal/types"

// minAlignedSamples is the overlap each side must keep for time-axis alignment to apply.
const minAlignedSamples = 100

// Align returns the baseline and measurement samples to correlate. When both waveforms
// carry time axes and their overlapping window keeps at least 100 samples on each side,
// only that window is used. Both results are then truncated to the shorter length.
func Align(baseline, measurement types.Waveform) ([]float64, []float64, bool) {
	b, m := baseline.Voltages, measurement.Voltages
	aligned := false

	if baseline.HasTimes() && measurement.HasTimes() {
		bt, mt := baseline.Times, measurement.Times
		start := max(bt[0], mt[0])
		end := min(bt[len(bt)-1], mt[len(mt)-1])
		if start < end {
			bw := window(bt, b, start, end)
			mw := window(mt, m, start, end)
			if len(bw) >= minAlignedSamples && len(mw) >= minAlignedSamples {
				b, m = bw, mw
				aligned = true
			}
		}
	}

	n := min(len(b), len(m))
	return b[:n], m[:n], aligned
}

func window(t, v []float64, start, end float64) []float64 {
	out := make([]float64, 0, len(v))
	for i, ts := range t {
		if ts >= start && ts <= end {
			out = append(out, v[i])
		}
	}
	return out
}
