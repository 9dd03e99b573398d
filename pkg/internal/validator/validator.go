// Package validator flags implausible per-point measurements.
package validator

import (
	"sync"

	"github.com/joeydtaylor/acoustofield/pkg/internal/types"
	"github.com/joeydtaylor/acoustofield/pkg/internal/utils"
	"github.com/joeydtaylor/acoustofield/pkg/logschema"
)

// Validator applies Limits to freshly computed points and logs what it finds.
type Validator struct {
	componentMetadata types.ComponentMetadata
	limits            Limits
	configLock        sync.RWMutex

	loggers     []types.Logger
	loggersLock sync.Mutex
}

// NewValidator constructs a validator with DefaultLimits.
func NewValidator(options ...types.Option[*Validator]) *Validator {
	v := &Validator{
		componentMetadata: types.ComponentMetadata{
			ID:   utils.GenerateUniqueHash(),
			Type: "VALIDATOR",
		},
		limits: DefaultLimits(),
	}
	for _, opt := range options {
		if opt != nil {
			opt(v)
		}
	}
	return v
}

// GetComponentMetadata returns the validator's identity.
func (v *Validator) GetComponentMetadata() types.ComponentMetadata {
	v.configLock.RLock()
	defer v.configLock.RUnlock()
	return v.componentMetadata
}

// Limits returns the active limits.
func (v *Validator) Limits() Limits {
	v.configLock.RLock()
	defer v.configLock.RUnlock()
	return v.limits
}

// SetLimits replaces the active limits.
func (v *Validator) SetLimits(l Limits) {
	v.configLock.Lock()
	v.limits = l
	v.configLock.Unlock()
}

// ConnectLogger registers loggers, ignoring nils.
func (v *Validator) ConnectLogger(loggers ...types.Logger) {
	v.loggersLock.Lock()
	defer v.loggersLock.Unlock()
	for _, l := range loggers {
		if l != nil {
			v.loggers = append(v.loggers, l)
		}
	}
}

// Validate runs Check and logs each failed rule at warn level.
func (v *Validator) Validate(p types.MeasurementPoint, points []types.MeasurementPoint, baselineStress float64) []types.ValidationWarning {
	warnings := Check(p, points, baselineStress, v.Limits())
	for _, w := range warnings {
		v.logKV(types.WarnLevel, "Suspicious point",
			"event", "Validate",
			"result", "WARNING",
			logschema.FieldStage, types.StageValidate,
			logschema.FieldPointIndex, p.Index,
			"check", w.Type,
			"severity", string(w.Severity),
			"value", w.Value,
		)
	}
	return warnings
}

func (v *Validator) logKV(level types.LogLevel, msg string, keysAndValues ...interface{}) {
	v.loggersLock.Lock()
	loggers := append([]types.Logger(nil), v.loggers...)
	v.loggersLock.Unlock()

	fields := append([]interface{}{"component", v.GetComponentMetadata()}, keysAndValues...)
	for _, logger := range loggers {
		if logger.GetLevel() > level {
			continue
		}
		switch level {
		case types.DebugLevel:
			logger.Debug(msg, fields...)
		case types.InfoLevel:
			logger.Info(msg, fields...)
		case types.WarnLevel:
			logger.Warn(msg, fields...)
		default:
			logger.Error(msg, fields...)
		}
	}
}
