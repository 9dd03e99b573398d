package experiment

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/joeydtaylor/acoustofield/pkg/internal/types"
	"github.com/joeydtaylor/acoustofield/pkg/internal/utils"
)

// StressStats summarises stress over measured points. Std is the population
// standard deviation.
type StressStats struct {
	Min, Max, Mean, Std, Range float64
}

// Statistics counts points by status and summarises measured stress.
type Statistics struct {
	Total         int
	Measured      int
	Pending       int
	Skipped       int
	Suspicious    int
	CompletionPct float64      // measured / total × 100
	Stress        *StressStats // nil when no point carries a finite stress
}

// Statistics computes the current summary.
func (e *Experiment) Statistics() Statistics {
	e.mu.RLock()
	defer e.mu.RUnlock()

	s := Statistics{Total: len(e.points)}
	var stress []float64
	for _, p := range e.points {
		switch p.Status {
		case types.PointMeasured:
			s.Measured++
			if !math.IsNaN(p.StressMPa) && !math.IsInf(p.StressMPa, 0) {
				stress = append(stress, p.StressMPa)
			}
		case types.PointSkipped:
			s.Skipped++
		default:
			s.Pending++
		}
		if p.Suspicious {
			s.Suspicious++
		}
	}
	if s.Total > 0 {
		s.CompletionPct = 100 * float64(s.Measured) / float64(s.Total)
	}
	if len(stress) > 0 {
		mean, std := stat.PopMeanStdDev(stress, nil)
		lo, hi := utils.MinMax(stress)
		s.Stress = &StressStats{Min: lo, Max: hi, Mean: mean, Std: std, Range: hi - lo}
	}
	return s
}
