// Package sensor provides callback hooks for experiment events. An experiment
// invokes every connected sensor after the event has been applied, outside its
// own lock, so callbacks may query the experiment.
package sensor

import (
	"sync"

	"github.com/joeydtaylor/acoustofield/pkg/internal/types"
	"github.com/joeydtaylor/acoustofield/pkg/internal/utils"
)

// Sensor holds registered callbacks. Each slot may hold several callbacks;
// they run in registration order.
type Sensor struct {
	componentMetadata types.ComponentMetadata

	OnCapture        []func(types.ComponentMetadata, types.PointResult)
	OnCaptureError   []func(types.ComponentMetadata, int, error)
	OnSuspicious     []func(types.ComponentMetadata, types.PointResult)
	OnBaselineChange []func(types.ComponentMetadata, int)
	OnRecompute      []func(types.ComponentMetadata, int)
	OnSkip           []func(types.ComponentMetadata, int, string)
	OnReset          []func(types.ComponentMetadata)
	OnField          []func(types.ComponentMetadata, types.StressGrid)

	callbackLock sync.Mutex
	loggers      []types.Logger
	loggersLock  sync.Mutex
}

// NewSensor constructs a Sensor with optional configuration.
func NewSensor(options ...types.Option[*Sensor]) *Sensor {
	s := &Sensor{
		componentMetadata: types.ComponentMetadata{
			ID:   utils.GenerateUniqueHash(),
			Type: "SENSOR",
		},
	}

	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(s)
	}

	return s
}

// GetComponentMetadata returns the sensor's identity.
func (s *Sensor) GetComponentMetadata() types.ComponentMetadata {
	return s.componentMetadata
}

func snapshotCallbacks[F any](lock *sync.Mutex, callbacks []F) []F {
	lock.Lock()
	defer lock.Unlock()
	if len(callbacks) == 0 {
		return nil
	}
	return append([]F(nil), callbacks...)
}
