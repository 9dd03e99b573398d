package calibration

import (
	"fmt"

	"github.com/joeydtaylor/acoustofield/pkg/internal/types"
)

// Physical plausibility bounds for k in MPa/ns, and the minimum acceptable R².
const (
	KMin            = 0.1
	KMax            = 10.0
	RSquaredWarning = 0.95
	nanosPerSecond  = 1e9
)

// Model converts time shifts to stress with σ = σ₀ + k·Δt, where k = 1/(slope·1e9).
// It is immutable; use WithBaselineStress to derive a model with a different offset.
type Model struct {
	coeff types.CalibrationCoefficient
	k     float64
}

// NewModel validates coeff and derives k. A zero slope is a hard failure.
func NewModel(coeff types.CalibrationCoefficient) (Model, error) {
	if coeff.Slope == 0 {
		return Model{}, ErrZeroSlope
	}
	return Model{coeff: coeff, k: 1 / (coeff.Slope * nanosPerSecond)}, nil
}

// FromK builds a model from a stress coefficient given directly in MPa/ns.
func FromK(k, rSquared float64) (Model, error) {
	if k == 0 {
		return Model{}, ErrMissingCoefficient
	}
	return NewModel(types.CalibrationCoefficient{
		Slope:    1 / (k * nanosPerSecond),
		RSquared: rSquared,
	})
}

// K returns the stress coefficient in MPa/ns.
func (m Model) K() float64 { return m.k }

// Coefficient returns the underlying regression result.
func (m Model) Coefficient() types.CalibrationCoefficient { return m.coeff }

// BaselineStress returns σ₀ in MPa.
func (m Model) BaselineStress() float64 { return m.coeff.BaselineStress }

// WithBaselineStress returns a copy of m with a new absolute baseline stress.
func (m Model) WithBaselineStress(stress float64) Model {
	m.coeff.BaselineStress = stress
	return m
}

// Stress converts a time shift in nanoseconds to stress in MPa.
func (m Model) Stress(timeShiftNs float64) float64 {
	return m.coeff.BaselineStress + m.k*timeShiftNs
}

// Warnings lists data-quality concerns that do not block conversion. An unreported
// R² (zero) is not flagged.
func (m Model) Warnings() []string {
	var warnings []string
	if m.k < KMin || m.k > KMax {
		warnings = append(warnings, fmt.Sprintf("stress coefficient k=%.3f MPa/ns outside expected range [%g, %g]", m.k, KMin, KMax))
	}
	if r2 := m.coeff.RSquared; r2 > 0 && r2 < RSquaredWarning {
		warnings = append(warnings, fmt.Sprintf("fit quality R²=%.4f below %g", r2, RSquaredWarning))
	}
	return warnings
}
