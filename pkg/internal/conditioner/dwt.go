package conditioner

import "math"

// symmetricIndex maps an out-of-range index onto x using half-sample symmetric extension.
func symmetricIndex(n, size int) int {
	for n < 0 || n >= size {
		if n < 0 {
			n = -n - 1
		}
		if n >= size {
			n = 2*size - 1 - n
		}
	}
	return n
}

// dwtStep runs one analysis level and returns approximation and detail coefficients,
// each of length floor((N+F-1)/2).
func dwtStep(x []float64, fb filterBank) ([]float64, []float64) {
	n := len(x)
	f := fb.length()
	m := (n + f - 1) / 2
	approx := make([]float64, m)
	detail := make([]float64, m)
	for i := 0; i < m; i++ {
		var a, d float64
		for j := 0; j < f; j++ {
			v := x[symmetricIndex(2*i+1-j, n)]
			a += fb.decLo[j] * v
			d += fb.decHi[j] * v
		}
		approx[i] = a
		detail[i] = d
	}
	return approx, detail
}

// idwtStep inverts dwtStep, producing 2M-F+2 samples.
func idwtStep(approx, detail []float64, fb filterBank) []float64 {
	f := fb.length()
	m := len(approx)
	size := 2*m - f + 2
	if size <= 0 {
		return nil
	}
	out := make([]float64, size)
	for n := 0; n < size; n++ {
		pos := n + f - 2
		var s float64
		// only i with 0 <= pos-2i < f contribute
		lo := (pos - f + 2) / 2
		if lo < 0 {
			lo = 0
		}
		for i := lo; i < m; i++ {
			k := pos - 2*i
			if k < 0 {
				break
			}
			if k >= f {
				continue
			}
			s += approx[i]*fb.recLo[k] + detail[i]*fb.recHi[k]
		}
		out[n] = s
	}
	return out
}

// maxLevel is the deepest decomposition at which the coarsest level still spans a full filter.
func maxLevel(n, filterLen int) int {
	if filterLen <= 1 || n < filterLen-1 {
		return 0
	}
	return int(math.Floor(math.Log2(float64(n) / float64(filterLen-1))))
}

// wavedec returns [cA_level, cD_level, ..., cD_1].
func wavedec(x []float64, fb filterBank, level int) [][]float64 {
	details := make([][]float64, 0, level)
	approx := x
	for l := 0; l < level; l++ {
		var d []float64
		approx, d = dwtStep(approx, fb)
		details = append(details, d)
	}
	coeffs := make([][]float64, 0, level+1)
	coeffs = append(coeffs, approx)
	for i := len(details) - 1; i >= 0; i-- {
		coeffs = append(coeffs, details[i])
	}
	return coeffs
}

// waverec reconstructs a signal from wavedec output.
func waverec(coeffs [][]float64, fb filterBank) []float64 {
	if len(coeffs) == 0 {
		return nil
	}
	approx := coeffs[0]
	for _, detail := range coeffs[1:] {
		if len(approx) == len(detail)+1 {
			approx = approx[:len(approx)-1]
		}
		approx = idwtStep(approx, detail, fb)
	}
	return approx
}

// fitLength trims or edge-pads x to exactly n samples.
func fitLength(x []float64, n int) []float64 {
	out := make([]float64, n)
	copy(out, x)
	if len(x) < n && len(x) > 0 {
		last := x[len(x)-1]
		for i := len(x); i < n; i++ {
			out[i] = last
		}
	}
	return out
}
