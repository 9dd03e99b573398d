package sensor

import (
	"fmt"

	"github.com/joeydtaylor/acoustofield/pkg/internal/types"
)

func (s *Sensor) RegisterOnCapture(callback ...func(types.ComponentMetadata, types.PointResult)) {
	s.callbackLock.Lock()
	s.OnCapture = append(s.OnCapture, callback...)
	s.callbackLock.Unlock()
}

func (s *Sensor) RegisterOnCaptureError(callback ...func(types.ComponentMetadata, int, error)) {
	s.callbackLock.Lock()
	s.OnCaptureError = append(s.OnCaptureError, callback...)
	s.callbackLock.Unlock()
}

func (s *Sensor) RegisterOnSuspicious(callback ...func(types.ComponentMetadata, types.PointResult)) {
	s.callbackLock.Lock()
	s.OnSuspicious = append(s.OnSuspicious, callback...)
	s.callbackLock.Unlock()
}

func (s *Sensor) RegisterOnBaselineChange(callback ...func(types.ComponentMetadata, int)) {
	s.callbackLock.Lock()
	s.OnBaselineChange = append(s.OnBaselineChange, callback...)
	s.callbackLock.Unlock()
}

func (s *Sensor) RegisterOnRecompute(callback ...func(types.ComponentMetadata, int)) {
	s.callbackLock.Lock()
	s.OnRecompute = append(s.OnRecompute, callback...)
	s.callbackLock.Unlock()
}

func (s *Sensor) RegisterOnSkip(callback ...func(types.ComponentMetadata, int, string)) {
	s.callbackLock.Lock()
	s.OnSkip = append(s.OnSkip, callback...)
	s.callbackLock.Unlock()
}

func (s *Sensor) RegisterOnReset(callback ...func(types.ComponentMetadata)) {
	s.callbackLock.Lock()
	s.OnReset = append(s.OnReset, callback...)
	s.callbackLock.Unlock()
}

func (s *Sensor) RegisterOnField(callback ...func(types.ComponentMetadata, types.StressGrid)) {
	s.callbackLock.Lock()
	s.OnField = append(s.OnField, callback...)
	s.callbackLock.Unlock()
}

// guard runs fn and logs a panic instead of propagating it.
func (s *Sensor) guard(event string, c types.ComponentMetadata, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			s.logKV(types.ErrorLevel, "Sensor callback panicked",
				"event", event,
				"result", "FAILURE",
				"source", c,
				"error", fmt.Sprint(r),
			)
		}
	}()
	fn()
}

func (s *Sensor) InvokeOnCapture(c types.ComponentMetadata, r types.PointResult) {
	for _, cb := range snapshotCallbacks(&s.callbackLock, s.OnCapture) {
		if cb == nil {
			continue
		}
		s.guard("OnCapture", c, func() { cb(c, r) })
	}
}

func (s *Sensor) InvokeOnCaptureError(c types.ComponentMetadata, index int, err error) {
	for _, cb := range snapshotCallbacks(&s.callbackLock, s.OnCaptureError) {
		if cb == nil {
			continue
		}
		s.guard("OnCaptureError", c, func() { cb(c, index, err) })
	}
}

func (s *Sensor) InvokeOnSuspicious(c types.ComponentMetadata, r types.PointResult) {
	for _, cb := range snapshotCallbacks(&s.callbackLock, s.OnSuspicious) {
		if cb == nil {
			continue
		}
		s.guard("OnSuspicious", c, func() { cb(c, r) })
	}
}

func (s *Sensor) InvokeOnBaselineChange(c types.ComponentMetadata, index int) {
	for _, cb := range snapshotCallbacks(&s.callbackLock, s.OnBaselineChange) {
		if cb == nil {
			continue
		}
		s.guard("OnBaselineChange", c, func() { cb(c, index) })
	}
}

func (s *Sensor) InvokeOnRecompute(c types.ComponentMetadata, count int) {
	for _, cb := range snapshotCallbacks(&s.callbackLock, s.OnRecompute) {
		if cb == nil {
			continue
		}
		s.guard("OnRecompute", c, func() { cb(c, count) })
	}
}

func (s *Sensor) InvokeOnSkip(c types.ComponentMetadata, index int, reason string) {
	for _, cb := range snapshotCallbacks(&s.callbackLock, s.OnSkip) {
		if cb == nil {
			continue
		}
		s.guard("OnSkip", c, func() { cb(c, index, reason) })
	}
}

func (s *Sensor) InvokeOnReset(c types.ComponentMetadata) {
	for _, cb := range snapshotCallbacks(&s.callbackLock, s.OnReset) {
		if cb == nil {
			continue
		}
		s.guard("OnReset", c, func() { cb(c) })
	}
}

func (s *Sensor) InvokeOnField(c types.ComponentMetadata, g types.StressGrid) {
	for _, cb := range snapshotCallbacks(&s.callbackLock, s.OnField) {
		if cb == nil {
			continue
		}
		s.guard("OnField", c, func() { cb(c, g) })
	}
}
