package conditioner

import (
	"math"
	"math/cmplx"
	"sort"
)

// section is one second-order stage: b0, b1, b2, a1, a2 with a0 normalised to 1.
type section struct {
	b0, b1, b2 float64
	a1, a2     float64
}

// designBandpass returns second-order sections of a digital Butterworth band-pass
// with cutoffs given as fractions of Nyquist. The analog prototype is prewarped,
// transformed low-pass to band-pass, then mapped with the bilinear transform.
func designBandpass(order int, low, high float64) []section {
	const fs = 2.0
	wl := 2 * fs * math.Tan(math.Pi*low/fs)
	wh := 2 * fs * math.Tan(math.Pi*high/fs)
	bw := wh - wl
	w0sq := wl * wh

	poles := make([]complex128, 0, 2*order)
	for k := 0; k < order; k++ {
		p := cmplx.Exp(complex(0, math.Pi*float64(2*k+order+1)/float64(2*order)))
		a := p * complex(bw/2, 0)
		d := cmplx.Sqrt(a*a - complex(w0sq, 0))
		poles = append(poles, a+d, a-d)
	}

	fs2 := complex(2*fs, 0)
	den := complex(1, 0)
	zPoles := make([]complex128, len(poles))
	for i, s := range poles {
		den *= fs2 - s
		zPoles[i] = (fs2 + s) / (fs2 - s)
	}
	gain := math.Pow(bw, float64(order)) * real(cmplx.Pow(fs2, complex(float64(order), 0))/den)

	var (
		secs  []section
		reals []float64
	)
	for _, z := range zPoles {
		switch {
		case imag(z) > 1e-14:
			secs = append(secs, section{b0: 1, b2: -1, a1: -2 * real(z), a2: real(z)*real(z) + imag(z)*imag(z)})
		case math.Abs(imag(z)) <= 1e-14:
			reals = append(reals, real(z))
		}
	}
	sort.Float64s(reals)
	for i := 0; i+1 < len(reals); i += 2 {
		r1, r2 := reals[i], reals[i+1]
		secs = append(secs, section{b0: 1, b2: -1, a1: -(r1 + r2), a2: r1 * r2})
	}
	if len(secs) > 0 {
		secs[0].b0 *= gain
		secs[0].b1 *= gain
		secs[0].b2 *= gain
	}
	return secs
}

// steadyState returns the per-section initial state of the filter's step response, scaled by x0.
func steadyState(secs []section, x0 float64) [][2]float64 {
	zi := make([][2]float64, len(secs))
	scale := x0
	for i, s := range secs {
		g := (s.b0 + s.b1 + s.b2) / (1 + s.a1 + s.a2)
		z2 := s.b2 - s.a2*g
		z1 := s.b1 - s.a1*g + z2
		zi[i] = [2]float64{z1 * scale, z2 * scale}
		scale *= g
	}
	return zi
}

// sosFilter runs the cascade in transposed direct form II, in place.
func sosFilter(secs []section, x []float64, zi [][2]float64) {
	for i, s := range secs {
		z1, z2 := zi[i][0], zi[i][1]
		for n, v := range x {
			o := s.b0*v + z1
			z1 = s.b1*v - s.a1*o + z2
			z2 = s.b2*v - s.a2*o
			x[n] = o
		}
	}
}

// sosFiltFilt applies the cascade forward and backward over an odd extension of x,
// giving zero phase and squared magnitude response.
func sosFiltFilt(secs []section, x []float64) []float64 {
	n := len(x)
	pad := 3 * (2*len(secs) + 1)
	if pad > n-1 {
		pad = n - 1
	}

	ext := make([]float64, 0, n+2*pad)
	for i := 0; i < pad; i++ {
		ext = append(ext, 2*x[0]-x[pad-i])
	}
	ext = append(ext, x...)
	for i := 0; i < pad; i++ {
		ext = append(ext, 2*x[n-1]-x[n-2-i])
	}

	sosFilter(secs, ext, steadyState(secs, ext[0]))
	reverse(ext)
	sosFilter(secs, ext, steadyState(secs, ext[0]))
	reverse(ext)

	out := make([]float64, n)
	copy(out, ext[pad:pad+n])
	return out
}

func reverse(x []float64) {
	for i, j := 0, len(x)-1; i < j; i, j = i+1, j-1 {
		x[i], x[j] = x[j], x[i]
	}
}
