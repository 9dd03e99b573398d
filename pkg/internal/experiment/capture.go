package experiment

import (
	"fmt"
	"math"
	"time"

	"github.com/joeydtaylor/acoustofield/pkg/internal/types"
	"github.com/joeydtaylor/acoustofield/pkg/logschema"
)

// Capture runs one raw waveform through conditioning, quality scoring,
// time-shift extraction, stress conversion and validation, then stores the
// conditioned waveform and updates the point. The first capture becomes the
// baseline unless another point was designated, in which case that point's
// capture does. Capturing an already measured or skipped point overwrites it.
func (e *Experiment) Capture(index int, raw types.Waveform) (types.PointResult, error) {
	return e.capture("Capture", index, raw)
}

// Recapture replaces a previous measurement of a point.
func (e *Experiment) Recapture(index int, raw types.Waveform) (types.PointResult, error) {
	return e.capture("Recapture", index, raw)
}

func (e *Experiment) capture(event string, index int, raw types.Waveform) (types.PointResult, error) {
	res, err := e.captureLocked(index, raw)
	if err != nil {
		e.meter.IncrementCount(types.MetricCaptureErrorCount)
		e.logKV(types.ErrorLevel, "Point capture failed",
			"event", event,
			"result", "FAILURE",
			logschema.FieldExperimentID, e.id,
			logschema.FieldPointIndex, index,
			"error", err,
		)
		for _, s := range e.snapshotSensors() {
			s.InvokeOnCaptureError(e.componentMetadata, index, err)
		}
		return res, err
	}

	e.meter.IncrementCount(types.MetricCaptureCount)
	if res.IsBaseline {
		e.meter.IncrementCount(types.MetricBaselineCaptureCount)
	}
	if res.Suspicious {
		e.meter.IncrementCount(types.MetricSuspiciousPointCount)
	}
	e.emit(res)
	e.logKV(types.InfoLevel, "Point captured",
		"event", event,
		"result", "SUCCESS",
		logschema.FieldExperimentID, e.id,
		logschema.FieldPointIndex, index,
		"time_shift_ns", res.TimeShiftNs,
		"stress_mpa", res.StressMPa,
		"quality_score", res.QualityScore,
		"snr", res.SNR,
		"is_baseline", res.IsBaseline,
		"suspicious", res.Suspicious,
	)
	for _, s := range e.snapshotSensors() {
		s.InvokeOnCapture(e.componentMetadata, res)
		if res.IsBaseline {
			s.InvokeOnBaselineChange(e.componentMetadata, res.Index)
		}
		if res.Suspicious {
			s.InvokeOnSuspicious(e.componentMetadata, res)
		}
	}
	return res, nil
}

func (e *Experiment) captureLocked(index int, raw types.Waveform) (types.PointResult, error) {
	if raw.Len() == 0 || raw.SampleRate <= 0 {
		return types.PointResult{}, ErrInvalidWaveform
	}
	for i, v := range raw.Voltages {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return types.PointResult{}, fmt.Errorf("sample %d is not finite: %w", i, ErrInvalidWaveform)
		}
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	at, ok := e.pos[index]
	if !ok {
		return types.PointResult{}, fmt.Errorf("point %d: %w", index, ErrPointNotFound)
	}
	if e.model == nil {
		return types.PointResult{}, ErrNoCalibration
	}

	stop := e.meter.StartTimer(types.StageCondition)
	conditioned, bpErr := e.conditioner.Condition(raw)
	stop()
	if bpErr != nil {
		e.meter.IncrementCount(types.MetricBandpassFallbackCount)
	}
	quality := e.extractor.Quality(conditioned.Voltages)

	isBaseline := e.baselineIndex == index ||
		(e.baselineIndex == 0 && (e.designatedBaseline == 0 || e.designatedBaseline == index))

	p := pending(e.points[at])
	p.QualityScore = quality.Score
	p.SNR = quality.SNR
	p.MeasuredAt = time.Now()
	p.Status = types.PointMeasured

	if isBaseline {
		p.IsBaseline = true
		p.StressMPa = e.model.BaselineStress()
		if err := e.store.SaveBaseline(index, conditioned); err != nil {
			return types.PointResult{}, fmt.Errorf("save baseline: %w", err)
		}
	} else {
		if e.baselineIndex == 0 {
			return types.PointResult{}, fmt.Errorf("capture point %d before point %d: %w", index, e.designatedBaseline, ErrNoBaseline)
		}
		stop = e.meter.StartTimer(types.StageExtract)
		shift, err := e.extractor.Extract(e.baseline, conditioned)
		stop()
		if err != nil {
			return types.PointResult{}, err
		}
		p.TimeShiftNs = shift.TimeShiftNs
		p.StressMPa = e.model.Stress(shift.TimeShiftNs)

		stop = e.meter.StartTimer(types.StageValidate)
		p.Warnings = e.validator.Validate(p, e.points, e.model.BaselineStress())
		stop()
		p.Suspicious = len(p.Warnings) > 0
	}

	if err := e.store.SavePoint(index, conditioned); err != nil {
		return types.PointResult{}, fmt.Errorf("save point %d: %w", index, err)
	}

	replacingBaseline := isBaseline && e.baselineIndex == index
	if isBaseline {
		e.baseline = conditioned
		e.baselineIndex = index
		if e.status == StatusCreated {
			e.status = StatusCollecting
		}
	}
	e.points[at] = p
	if replacingBaseline {
		e.recomputeLocked()
	}
	return result(p, quality), nil
}

func result(p types.MeasurementPoint, q types.Quality) types.PointResult {
	return types.PointResult{
		Index:        p.Index,
		X:            p.X,
		Y:            p.Y,
		TimeShiftNs:  p.TimeShiftNs,
		StressMPa:    p.StressMPa,
		QualityScore: p.QualityScore,
		SNR:          p.SNR,
		Suspicious:   p.Suspicious,
		IsBaseline:   p.IsBaseline,
		Warnings:     p.Warnings,
		Quality:      q,
	}
}

// emit forwards a result to every sink. Sink failures are logged and never
// fail the capture.
func (e *Experiment) emit(res types.PointResult) {
	for _, s := range e.snapshotSinks() {
		if err := s.WritePoint(res); err != nil {
			e.logKV(types.WarnLevel, "Result sink write failed",
				"event", "WritePoint",
				"result", "FAILURE",
				logschema.FieldExperimentID, e.id,
				logschema.FieldPointIndex, res.Index,
				"error", err,
			)
		}
	}
}

// EvaluateDenoise reports the SNR effect of the configured denoise stage on w
// without touching experiment state.
func (e *Experiment) EvaluateDenoise(w types.Waveform) (types.DenoiseEffect, error) {
	if w.Len() == 0 {
		return types.DenoiseEffect{}, ErrInvalidWaveform
	}
	return e.conditioner.EvaluateDenoise(w), nil
}

