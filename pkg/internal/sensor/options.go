package sensor

import "github.com/joeydtaylor/acoustofield/pkg/internal/types"

// WithLogger adds loggers that record callback panics.
func WithLogger(logger ...types.Logger) types.Option[*Sensor] {
	return func(s *Sensor) {
		s.ConnectLogger(logger...)
	}
}

// WithComponentMetadata overrides the sensor's name and ID.
func WithComponentMetadata(name string, id string) types.Option[*Sensor] {
	return func(s *Sensor) {
		s.componentMetadata.Name = name
		if id != "" {
			s.componentMetadata.ID = id
		}
	}
}

// WithOnCaptureFunc registers callbacks for every successful capture.
func WithOnCaptureFunc(callback ...func(c types.ComponentMetadata, r types.PointResult)) types.Option[*Sensor] {
	return func(s *Sensor) {
		s.RegisterOnCapture(callback...)
	}
}

// WithOnCaptureErrorFunc registers callbacks for rejected captures.
func WithOnCaptureErrorFunc(callback ...func(c types.ComponentMetadata, index int, err error)) types.Option[*Sensor] {
	return func(s *Sensor) {
		s.RegisterOnCaptureError(callback...)
	}
}

// WithOnSuspiciousFunc registers callbacks for captures that failed validation.
func WithOnSuspiciousFunc(callback ...func(c types.ComponentMetadata, r types.PointResult)) types.Option[*Sensor] {
	return func(s *Sensor) {
		s.RegisterOnSuspicious(callback...)
	}
}

// WithOnBaselineChangeFunc registers callbacks for a new baseline waveform.
func WithOnBaselineChangeFunc(callback ...func(c types.ComponentMetadata, index int)) types.Option[*Sensor] {
	return func(s *Sensor) {
		s.RegisterOnBaselineChange(callback...)
	}
}

// WithOnRecomputeFunc registers callbacks receiving the number of recomputed points.
func WithOnRecomputeFunc(callback ...func(c types.ComponentMetadata, count int)) types.Option[*Sensor] {
	return func(s *Sensor) {
		s.RegisterOnRecompute(callback...)
	}
}

func WithOnSkipFunc(callback ...func(c types.ComponentMetadata, index int, reason string)) types.Option[*Sensor] {
	return func(s *Sensor) {
		s.RegisterOnSkip(callback...)
	}
}

func WithOnResetFunc(callback ...func(c types.ComponentMetadata)) types.Option[*Sensor] {
	return func(s *Sensor) {
		s.RegisterOnReset(callback...)
	}
}

// WithOnFieldFunc registers callbacks for every generated stress field.
func WithOnFieldFunc(callback ...func(c types.ComponentMetadata, g types.StressGrid)) types.Option[*Sensor] {
	return func(s *Sensor) {
		s.RegisterOnField(callback...)
	}
}
