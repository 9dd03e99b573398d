package meter

import (
	"runtime"
	"sort"
	"sync/atomic"
	"time"

	"github.com/joeydtaylor/acoustofield/pkg/internal/types"
)

// GetComponentMetadata returns the meter's identity.
func (m *Meter) GetComponentMetadata() types.ComponentMetadata {
	return m.componentMetadata
}

func (m *Meter) counter(metricName string) *uint64 {
	m.countsLock.RLock()
	c, ok := m.counts[metricName]
	m.countsLock.RUnlock()
	if ok {
		return c
	}
	m.countsLock.Lock()
	defer m.countsLock.Unlock()
	if c, ok = m.counts[metricName]; !ok {
		c = new(uint64)
		m.counts[metricName] = c
	}
	return c
}

// IncrementCount adds one to a counter, registering it on first use.
func (m *Meter) IncrementCount(metricName string) {
	atomic.AddUint64(m.counter(metricName), 1)
}

// AddCount adds n to a counter.
func (m *Meter) AddCount(metricName string, n uint64) {
	atomic.AddUint64(m.counter(metricName), n)
}

// SetMetricCount overwrites a counter.
func (m *Meter) SetMetricCount(metricName string, count uint64) {
	atomic.StoreUint64(m.counter(metricName), count)
}

// GetMetricCount reads a counter; unknown names read as zero.
func (m *Meter) GetMetricCount(metricName string) uint64 {
	m.countsLock.RLock()
	c, ok := m.counts[metricName]
	m.countsLock.RUnlock()
	if !ok {
		return 0
	}
	return atomic.LoadUint64(c)
}

// GetMetricNames lists registered counters in sorted order.
func (m *Meter) GetMetricNames() []string {
	m.countsLock.RLock()
	names := make([]string, 0, len(m.counts))
	for name := range m.counts {
		names = append(names, name)
	}
	m.countsLock.RUnlock()
	sort.Strings(names)
	return names
}

// ObserveStage records one execution of a pipeline stage.
func (m *Meter) ObserveStage(stage string, d time.Duration) {
	m.stagesLock.Lock()
	defer m.stagesLock.Unlock()
	st := m.stages[stage]
	st.Count++
	st.TotalNs += d.Nanoseconds()
	if d.Nanoseconds() > st.MaxNs {
		st.MaxNs = d.Nanoseconds()
	}
	m.stages[stage] = st
}

// StartTimer returns a function that records the elapsed time for stage when called.
//
//	defer m.StartTimer(types.StageExtract)()
func (m *Meter) StartTimer(stage string) func() time.Duration {
	start := time.Now()
	return func() time.Duration {
		d := time.Since(start)
		m.ObserveStage(stage, d)
		return d
	}
}

// StageTiming returns the aggregate for one stage.
func (m *Meter) StageTiming(stage string) types.StageTiming {
	m.stagesLock.Lock()
	defer m.stagesLock.Unlock()
	return m.stages[stage]
}

// ResetMetrics zeroes every counter and drops stage timings.
func (m *Meter) ResetMetrics() {
	m.countsLock.RLock()
	for _, c := range m.counts {
		atomic.StoreUint64(c, 0)
	}
	m.countsLock.RUnlock()
	m.stagesLock.Lock()
	m.stages = make(map[string]types.StageTiming)
	m.stagesLock.Unlock()
}

// Snapshot copies the current state, including the last host sample.
func (m *Meter) Snapshot() types.MeterSnapshot {
	snap := types.MeterSnapshot{
		Counts:        make(map[string]uint64),
		Stages:        make(map[string]types.StageTiming),
		Goroutines:    runtime.NumGoroutine(),
		UptimeSeconds: time.Since(m.startTime).Seconds(),
	}
	m.countsLock.RLock()
	for name, c := range m.counts {
		snap.Counts[name] = atomic.LoadUint64(c)
	}
	m.countsLock.RUnlock()
	m.stagesLock.Lock()
	for name, st := range m.stages {
		snap.Stages[name] = st
	}
	m.stagesLock.Unlock()
	m.hostLock.Lock()
	snap.CPUPercent, snap.MemoryPercent = m.cpuPercent, m.memoryPercent
	m.hostLock.Unlock()
	return snap
}
