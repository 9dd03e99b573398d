package interpolate

import "math"

// DefaultSmoothSigma is the Gaussian width in grid cells.
const DefaultSmoothSigma = 1.0

// smooth applies a normalised Gaussian blur that only draws on finite cells
// and leaves NaN cells NaN.
func smooth(zi [][]float64, sigma float64) [][]float64 {
	if sigma <= 0 || len(zi) == 0 {
		return zi
	}
	radius := int(4*sigma + 0.5)
	kernel := make([]float64, 2*radius+1)
	for k := -radius; k <= radius; k++ {
		kernel[k+radius] = math.Exp(-float64(k*k) / (2 * sigma * sigma))
	}

	rows, cols := len(zi), len(zi[0])
	num := make([][]float64, rows)
	den := make([][]float64, rows)
	for r := range zi {
		num[r] = make([]float64, cols)
		den[r] = make([]float64, cols)
		for c, v := range zi[r] {
			if !math.IsNaN(v) {
				num[r][c] = v
				den[r][c] = 1
			}
		}
	}
	num = convolveColumns(convolveRows(num, kernel), kernel)
	den = convolveColumns(convolveRows(den, kernel), kernel)

	out := make([][]float64, rows)
	for r := range zi {
		out[r] = make([]float64, cols)
		for c, v := range zi[r] {
			if math.IsNaN(v) || den[r][c] == 0 {
				out[r][c] = v
				continue
			}
			out[r][c] = num[r][c] / den[r][c]
		}
	}
	return out
}

func convolveRows(in [][]float64, kernel []float64) [][]float64 {
	radius := len(kernel) / 2
	out := make([][]float64, len(in))
	for r, row := range in {
		out[r] = make([]float64, len(row))
		for c := range row {
			var sum float64
			for k := -radius; k <= radius; k++ {
				if j := c + k; j >= 0 && j < len(row) {
					sum += kernel[k+radius] * row[j]
				}
			}
			out[r][c] = sum
		}
	}
	return out
}

func convolveColumns(in [][]float64, kernel []float64) [][]float64 {
	radius := len(kernel) / 2
	out := make([][]float64, len(in))
	for r := range in {
		out[r] = make([]float64, len(in[r]))
		for c := range in[r] {
			var sum float64
			for k := -radius; k <= radius; k++ {
				if j := r + k; j >= 0 && j < len(in) {
					sum += kernel[k+radius] * in[j][c]
				}
			}
			out[r][c] = sum
		}
	}
	return out
}
