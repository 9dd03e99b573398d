package builder

import (
	"github.com/joeydtaylor/acoustofield/pkg/internal/calibration"
	"github.com/joeydtaylor/acoustofield/pkg/internal/types"
)

type CalibrationModel = calibration.Model

type CalibrationCoefficient = types.CalibrationCoefficient

// NewCalibrationModel derives k from a regression coefficient.
func NewCalibrationModel(coeff CalibrationCoefficient) (CalibrationModel, error) {
	return calibration.NewModel(coeff)
}

// CalibrationFromK builds a model from k in MPa/ns.
func CalibrationFromK(k, rSquared float64) (CalibrationModel, error) {
	return calibration.FromK(k, rSquared)
}

// FitCalibration regresses time shift in seconds against applied stress in MPa.
func FitCalibration(stressMPa, shiftSeconds []float64) (CalibrationCoefficient, error) {
	return calibration.Fit(stressMPa, shiftSeconds)
}

// LoadCalibration reads a coefficient from a JSON or CSV file.
func LoadCalibration(path string) (CalibrationCoefficient, error) {
	return calibration.LoadFile(path)
}
