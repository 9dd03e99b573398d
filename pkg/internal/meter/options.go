package meter

import (
	"time"

	"github.com/joeydtaylor/acoustofield/pkg/internal/types"
)

// WithLogger attaches loggers.
func WithLogger(logger ...types.Logger) types.Option[*Meter] {
	return func(m *Meter) {
		m.ConnectLogger(logger...)
	}
}

// WithComponentMetadata overrides the generated name and ID.
func WithComponentMetadata(name string, id string) types.Option[*Meter] {
	return func(m *Meter) {
		m.componentMetadata.Name = name
		m.componentMetadata.ID = id
	}
}

// WithMonitorInterval sets how often Monitor samples the host. Non-positive values are ignored.
func WithMonitorInterval(d time.Duration) types.Option[*Meter] {
	return func(m *Meter) {
		if d > 0 {
			m.interval = d
		}
	}
}

// WithInitialMetricCount seeds a counter.
func WithInitialMetricCount(metricName string, count uint64) types.Option[*Meter] {
	return func(m *Meter) {
		m.SetMetricCount(metricName, count)
	}
}
