package validator

import (
	"fmt"
	"math"

	"github.com/joeydtaylor/acoustofield/pkg/internal/types"
)

// Default limits.
const (
	DefaultMaxTimeShiftNs     = 1000.0
	DefaultStressWindowMPa    = 1000.0
	DefaultMaxNeighborDiffMPa = 200.0
)

// Limits bound plausible per-point results. The stress window is centred on
// the experiment's absolute baseline stress.
type Limits struct {
	MaxTimeShiftNs     float64
	StressWindowMPa    float64
	MaxNeighborDiffMPa float64
}

// DefaultLimits returns ±1000 ns, baseline ±1000 MPa and a 200 MPa neighbour step.
func DefaultLimits() Limits {
	return Limits{
		MaxTimeShiftNs:     DefaultMaxTimeShiftNs,
		StressWindowMPa:    DefaultStressWindowMPa,
		MaxNeighborDiffMPa: DefaultMaxNeighborDiffMPa,
	}
}

// Check runs every rule against p and returns all that fail. Baseline points
// are never checked. points is the experiment's layout in any order; the
// neighbour is the measured point with the highest index below p.Index, or
// the baseline stress when there is none.
func Check(p types.MeasurementPoint, points []types.MeasurementPoint, baselineStress float64, limits Limits) []types.ValidationWarning {
	if p.IsBaseline {
		return nil
	}
	var warnings []types.ValidationWarning

	if math.Abs(p.TimeShiftNs) > limits.MaxTimeShiftNs {
		warnings = append(warnings, types.ValidationWarning{
			Type:     types.WarningTimeShiftRange,
			Severity: types.SeverityError,
			Message:  fmt.Sprintf("time shift %.2f ns outside ±%g ns", p.TimeShiftNs, limits.MaxTimeShiftNs),
			Value:    p.TimeShiftNs,
		})
	}

	lo, hi := baselineStress-limits.StressWindowMPa, baselineStress+limits.StressWindowMPa
	if p.StressMPa < lo || p.StressMPa > hi {
		warnings = append(warnings, types.ValidationWarning{
			Type:     types.WarningStressRange,
			Severity: types.SeverityError,
			Message:  fmt.Sprintf("stress %.1f MPa outside [%g, %g] MPa", p.StressMPa, lo, hi),
			Value:    p.StressMPa,
		})
	}

	neighbor := previousStress(p.Index, points, baselineStress)
	if diff := math.Abs(p.StressMPa - neighbor); diff > limits.MaxNeighborDiffMPa {
		warnings = append(warnings, types.ValidationWarning{
			Type:     types.WarningNeighborDiff,
			Severity: types.SeverityWarning,
			Message:  fmt.Sprintf("stress differs from previous point by %.1f MPa (limit %g)", diff, limits.MaxNeighborDiffMPa),
			Value:    diff,
		})
	}
	return warnings
}

func previousStress(index int, points []types.MeasurementPoint, fallback float64) float64 {
	best := -1
	for i, q := range points {
		if q.Index >= index || !q.Measured() {
			continue
		}
		if best < 0 || q.Index > points[best].Index {
			best = i
		}
	}
	if best < 0 {
		return fallback
	}
	return points[best].StressMPa
}

// HasErrors reports whether any warning has error severity.
func HasErrors(warnings []types.ValidationWarning) bool {
	for _, w := range warnings {
		if w.Severity == types.SeverityError {
			return true
		}
	}
	return false
}
