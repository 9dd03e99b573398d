package experiment

import (
	"fmt"

	"github.com/joeydtaylor/acoustofield/pkg/internal/calibration"
	"github.com/joeydtaylor/acoustofield/pkg/internal/tof"
	"github.com/joeydtaylor/acoustofield/pkg/internal/types"
	"github.com/joeydtaylor/acoustofield/pkg/logschema"
)

// BaselineReport describes the current baseline waveform.
type BaselineReport struct {
	Index   int
	Quality types.Quality
	Valid   bool // SNR at or above types.SNRGood
}

// BaselineIndex returns the point currently used as baseline, or the designated
// point when none has been captured yet. Zero means neither.
func (e *Experiment) BaselineIndex() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	if e.baselineIndex != 0 {
		return e.baselineIndex
	}
	return e.designatedBaseline
}

// ValidateBaseline scores the current baseline waveform.
func (e *Experiment) ValidateBaseline() (BaselineReport, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	if e.baselineIndex == 0 {
		return BaselineReport{}, ErrNoBaseline
	}
	q := tof.EvaluateQuality(e.baseline.Voltages)
	return BaselineReport{Index: e.baselineIndex, Quality: q, Valid: q.SNR >= types.SNRGood}, nil
}

// SetBaselinePoint makes index the baseline. Before any capture it only
// designates the point. Afterwards the point must be measured and its stored
// waveform must reach types.SNRWarning; every measured point is then
// re-correlated against it and the number of recomputed points is returned.
func (e *Experiment) SetBaselinePoint(index int) (int, error) {
	n, err := e.setBaselinePoint(index)
	if err != nil {
		e.logKV(types.WarnLevel, "Baseline change refused",
			"event", "SetBaselinePoint",
			"result", "FAILURE",
			logschema.FieldExperimentID, e.id,
			logschema.FieldPointIndex, index,
			"error", err,
		)
		return 0, err
	}
	e.meter.AddCount(types.MetricRecomputedPointCount, uint64(n))
	e.logKV(types.InfoLevel, "Baseline point changed",
		"event", "SetBaselinePoint",
		"result", "SUCCESS",
		logschema.FieldExperimentID, e.id,
		logschema.FieldPointIndex, index,
		"recomputed", n,
	)
	if n > 0 {
		for _, s := range e.snapshotSensors() {
			s.InvokeOnBaselineChange(e.componentMetadata, index)
			s.InvokeOnRecompute(e.componentMetadata, n)
		}
	}
	return n, nil
}

func (e *Experiment) setBaselinePoint(index int) (int, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	at, ok := e.pos[index]
	if !ok {
		return 0, fmt.Errorf("point %d: %w", index, ErrPointNotFound)
	}
	if e.baselineIndex == 0 && !e.points[at].Measured() {
		e.designatedBaseline = index
		return 0, nil
	}
	if !e.points[at].Measured() {
		return 0, fmt.Errorf("point %d: %w", index, ErrPointNotMeasured)
	}

	w, err := e.store.LoadPoint(index)
	if err != nil {
		return 0, fmt.Errorf("load point %d: %w", index, err)
	}
	if snr := tof.SNR(w.Voltages); snr < types.SNRWarning {
		return 0, fmt.Errorf("point %d at %.1f dB: %w", index, snr, ErrPoorBaseline)
	}
	if err := e.store.SaveBaseline(index, w); err != nil {
		return 0, fmt.Errorf("save baseline: %w", err)
	}

	e.baseline = w
	e.baselineIndex = index
	e.designatedBaseline = index
	return e.recomputeLocked(), nil
}

// recomputeLocked re-correlates every measured point against the current
// baseline and recomputes stress and validation. Points whose waveform cannot
// be loaded or correlated keep their previous values. Callers hold e.mu.
func (e *Experiment) recomputeLocked() int {
	sigma0 := e.model.BaselineStress()
	n := 0
	for i := range e.points {
		p := &e.points[i]
		if !p.Measured() {
			continue
		}
		if p.Index == e.baselineIndex {
			p.IsBaseline = true
			p.TimeShiftNs = 0
			p.StressMPa = sigma0
			p.Warnings = nil
			p.Suspicious = false
			n++
			continue
		}
		p.IsBaseline = false

		w, err := e.store.LoadPoint(p.Index)
		if err == nil {
			var shift types.ToFResult
			if shift, err = e.extractor.Extract(e.baseline, w); err == nil {
				p.TimeShiftNs = shift.TimeShiftNs
			}
		}
		if err != nil {
			e.logKV(types.WarnLevel, "Point kept previous time shift",
				"event", "Recompute",
				"result", "FAILURE",
				logschema.FieldExperimentID, e.id,
				logschema.FieldPointIndex, p.Index,
				"error", err,
			)
			continue
		}
		p.StressMPa = e.model.Stress(p.TimeShiftNs)
		n++
	}
	e.revalidateLocked()
	return n
}

// revalidateLocked re-runs the point checks in index order.
func (e *Experiment) revalidateLocked() {
	sigma0 := e.model.BaselineStress()
	for i := range e.points {
		p := &e.points[i]
		if !p.Measured() || p.IsBaseline {
			continue
		}
		p.Warnings = e.validator.Validate(*p, e.points, sigma0)
		p.Suspicious = len(p.Warnings) > 0
	}
}

// Calibration returns the current model and whether one is set.
func (e *Experiment) Calibration() (calibration.Model, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	if e.model == nil {
		return calibration.Model{}, false
	}
	return *e.model, true
}

// SetCalibration replaces the model and recomputes stress for measured points
// from their stored time shifts. It returns the number of points updated.
func (e *Experiment) SetCalibration(m calibration.Model) int {
	e.mu.Lock()
	e.model = &m
	n := e.restressLocked()
	e.mu.Unlock()

	for _, w := range m.Warnings() {
		e.logKV(types.WarnLevel, "Calibration warning",
			"event", "SetCalibration",
			"result", "WARNING",
			logschema.FieldExperimentID, e.id,
			"warning", w,
		)
	}
	e.meter.AddCount(types.MetricRecomputedPointCount, uint64(n))
	for _, s := range e.snapshotSensors() {
		s.InvokeOnRecompute(e.componentMetadata, n)
	}
	return n
}

// SetBaselineStress changes σ₀ and recomputes σ = σ₀ + k·Δt for every measured
// point without re-correlating. It returns the number of points updated.
func (e *Experiment) SetBaselineStress(stress float64) (int, error) {
	e.mu.Lock()
	if e.model == nil {
		e.mu.Unlock()
		return 0, ErrNoCalibration
	}
	m := e.model.WithBaselineStress(stress)
	e.model = &m
	n := e.restressLocked()
	e.mu.Unlock()

	e.meter.AddCount(types.MetricRecomputedPointCount, uint64(n))
	e.logKV(types.InfoLevel, "Baseline stress changed",
		"event", "SetBaselineStress",
		"result", "SUCCESS",
		logschema.FieldExperimentID, e.id,
		"baseline_stress", stress,
		"recomputed", n,
	)
	for _, s := range e.snapshotSensors() {
		s.InvokeOnRecompute(e.componentMetadata, n)
	}
	return n, nil
}

func (e *Experiment) restressLocked() int {
	n := 0
	for i := range e.points {
		p := &e.points[i]
		if !p.Measured() {
			continue
		}
		p.StressMPa = e.model.Stress(p.TimeShiftNs)
		n++
	}
	e.revalidateLocked()
	return n
}
