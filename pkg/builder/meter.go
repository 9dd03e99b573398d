package builder

import (
	"time"

	"github.com/joeydtaylor/acoustofield/pkg/internal/meter"
	"github.com/joeydtaylor/acoustofield/pkg/internal/types"
)

// MetricName is a type alias for metric names used in the Meter.
type MetricName string

type Meter = meter.Meter

type MeterSnapshot = types.MeterSnapshot

type StageTiming = types.StageTiming

// Here we re-export the constants from the types package
const (
	MetricCaptureCount          MetricName = MetricName(types.MetricCaptureCount)
	MetricCaptureErrorCount     MetricName = MetricName(types.MetricCaptureErrorCount)
	MetricBaselineCaptureCount  MetricName = MetricName(types.MetricBaselineCaptureCount)
	MetricSuspiciousPointCount  MetricName = MetricName(types.MetricSuspiciousPointCount)
	MetricSkippedPointCount     MetricName = MetricName(types.MetricSkippedPointCount)
	MetricRecomputedPointCount  MetricName = MetricName(types.MetricRecomputedPointCount)
	MetricFieldGenerationCount  MetricName = MetricName(types.MetricFieldGenerationCount)
	MetricBandpassFallbackCount MetricName = MetricName(types.MetricBandpassFallbackCount)
)

// Pipeline stage names used for timings.
const (
	StageCondition   = types.StageCondition
	StageExtract     = types.StageExtract
	StageValidate    = types.StageValidate
	StageInterpolate = types.StageInterpolate
)

func NewMeter(options ...types.Option[*meter.Meter]) *meter.Meter {
	return meter.NewMeter(options...)
}

func MeterWithLogger(loggers ...types.Logger) types.Option[*meter.Meter] {
	return meter.WithLogger(loggers...)
}

func MeterWithComponentMetadata(name string, id string) types.Option[*meter.Meter] {
	return meter.WithComponentMetadata(name, id)
}

// MeterWithMonitorInterval sets how often Monitor samples host CPU and memory.
func MeterWithMonitorInterval(d time.Duration) types.Option[*meter.Meter] {
	return meter.WithMonitorInterval(d)
}

// Use MetricName for metric name parameters
func MeterWithInitialMetricCount(metricName MetricName, count uint64) types.Option[*meter.Meter] {
	return meter.WithInitialMetricCount(string(metricName), count)
}
