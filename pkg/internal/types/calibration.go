package types

// CalibrationCoefficient is the linear stress/time-shift model fitted during calibration:
// Δt[s] = Slope·σ[MPa] + Intercept. Slope must be non-zero.
type CalibrationCoefficient struct {
	Slope          float64 // seconds per MPa
	Intercept      float64 // seconds
	RSquared       float64
	BaselineStress float64 // MPa, absolute stress of the baseline point
	Source         string
	Direction      string
}
