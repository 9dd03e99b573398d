package tof

import (
	"github.com/mjibson/go-dsp/dsputils"
	"github.com/mjibson/go-dsp/fft"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// CrossCorrelate returns the full cross-correlation c[k] = sum_n m[n+k]*b[n] of the
// mean-removed inputs, computed by FFT. Index i corresponds to lag i-(N-1), so a
// positive lag means m is delayed relative to b. Inputs must have equal length.
func CrossCorrelate(m, b []float64) []float64 {
	n := len(m)
	if n == 0 || len(b) != n {
		return nil
	}
	mc := demean(m)
	bc := demean(b)

	size := dsputils.NextPowerOf2(2*n - 1)
	fm := fft.FFTReal(dsputils.ZeroPadF(mc, size))
	fb := fft.FFTReal(dsputils.ZeroPadF(bc, size))
	for i := range fm {
		fm[i] *= complex(real(fb[i]), -imag(fb[i]))
	}
	circ := fft.IFFT(fm)

	// negative lags wrap to the tail of the circular result
	out := make([]float64, 2*n-1)
	for lag := -(n - 1); lag < n; lag++ {
		idx := lag
		if idx < 0 {
			idx += size
		}
		out[lag+n-1] = real(circ[idx])
	}
	return out
}

func demean(x []float64) []float64 {
	out := make([]float64, len(x))
	copy(out, x)
	floats.AddConst(-stat.Mean(x, nil), out)
	return out
}

// RefinePeak returns the integer argmax of c and a parabola-refined fractional index.
// Peaks within two samples of either end, and flat neighbourhoods, are not refined.
func RefinePeak(c []float64) (int, float64) {
	if len(c) == 0 {
		return -1, -1
	}
	idx := floats.MaxIdx(c)
	refined := float64(idx)
	if idx > 1 && idx < len(c)-2 {
		y1, y2, y3 := c[idx-1], c[idx], c[idx+1]
		den := y1 - 2*y2 + y3
		if den > 1e-10 || den < -1e-10 {
			refined += 0.5 * (y1 - y3) / den
		}
	}
	return idx, refined
}
