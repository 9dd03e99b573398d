// Package meter counts pipeline events, times pipeline stages and samples
// host load.
package meter

import (
	"sync"
	"time"

	"github.com/joeydtaylor/acoustofield/pkg/internal/types"
	"github.com/joeydtaylor/acoustofield/pkg/internal/utils"
)

const defaultMonitorInterval = 5 * time.Second

// hostSampler returns CPU and memory utilisation in percent.
type hostSampler func() (float64, float64, error)

// Meter is safe for concurrent use by any number of experiments.
type Meter struct {
	componentMetadata types.ComponentMetadata

	counts     map[string]*uint64
	countsLock sync.RWMutex

	stages     map[string]types.StageTiming
	stagesLock sync.Mutex

	cpuPercent    float64
	memoryPercent float64
	sampleHost    hostSampler
	hostLock      sync.Mutex

	interval  time.Duration
	startTime time.Time

	loggers     []types.Logger
	loggersLock sync.Mutex
}

// NewMeter constructs a meter with every pipeline counter registered at zero.
func NewMeter(options ...types.Option[*Meter]) *Meter {
	m := &Meter{
		componentMetadata: types.ComponentMetadata{
			ID:   utils.GenerateUniqueHash(),
			Type: "METER",
		},
		counts:     make(map[string]*uint64),
		stages:     make(map[string]types.StageTiming),
		sampleHost: gopsutilSampler,
		interval:   defaultMonitorInterval,
		startTime:  time.Now(),
	}
	for _, name := range defaultMetricNames {
		m.counts[name] = new(uint64)
	}
	for _, opt := range options {
		if opt != nil {
			opt(m)
		}
	}
	return m
}

var defaultMetricNames = []string{
	types.MetricCaptureCount,
	types.MetricCaptureErrorCount,
	types.MetricBaselineCaptureCount,
	types.MetricSuspiciousPointCount,
	types.MetricSkippedPointCount,
	types.MetricRecomputedPointCount,
	types.MetricFieldGenerationCount,
	types.MetricBandpassFallbackCount,
}
