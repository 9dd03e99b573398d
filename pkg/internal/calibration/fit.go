package calibration

import (
	"fmt"

	"github.com/joeydtaylor/acoustofield/pkg/internal/types"
	"gonum.org/v1/gonum/stat"
)

// Fit regresses time shift (seconds) on applied stress (MPa). The unstressed reference
// (0, 0) is always included, so two calibration points are the minimum.
func Fit(stressMPa, shiftSeconds []float64) (types.CalibrationCoefficient, error) {
	if len(stressMPa) != len(shiftSeconds) {
		return types.CalibrationCoefficient{}, fmt.Errorf("calibration: %d stresses but %d shifts", len(stressMPa), len(shiftSeconds))
	}
	if len(stressMPa) < 2 {
		return types.CalibrationCoefficient{}, fmt.Errorf("%w: got %d", ErrInsufficientData, len(stressMPa))
	}

	x := append([]float64{0}, stressMPa...)
	y := append([]float64{0}, shiftSeconds...)

	intercept, slope := stat.LinearRegression(x, y, nil, false)
	coeff := types.CalibrationCoefficient{
		Slope:     slope,
		Intercept: intercept,
		RSquared:  stat.RSquared(x, y, nil, intercept, slope),
		Source:    "fit",
	}
	if slope == 0 {
		return coeff, ErrZeroSlope
	}
	return coeff, nil
}
