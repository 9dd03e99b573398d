package meter

import (
	"context"
	"time"

	"github.com/joeydtaylor/acoustofield/pkg/internal/types"
)

// Monitor samples the host and logs a snapshot every interval until ctx is
// done, then logs a final report.
func (m *Meter) Monitor(ctx context.Context) {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			m.ReportData()
			return
		case <-ticker.C:
			if err := m.SampleHost(); err != nil {
				m.NotifyLoggers(types.WarnLevel, "Host sampling failed",
					"component", m.GetComponentMetadata(),
					"event", "Monitor",
					"result", "FAILURE",
					"error", err,
				)
			}
			m.logSnapshot(types.DebugLevel, "Pipeline metrics")
		}
	}
}

// ReportData logs the current snapshot at info level.
func (m *Meter) ReportData() {
	m.logSnapshot(types.InfoLevel, "Pipeline metrics report")
}

func (m *Meter) logSnapshot(level types.LogLevel, msg string) {
	snap := m.Snapshot()
	kv := []interface{}{
		"component", m.GetComponentMetadata(),
		"event", "Report",
		"result", "SUCCESS",
		"cpu_percent", snap.CPUPercent,
		"memory_percent", snap.MemoryPercent,
		"goroutines", snap.Goroutines,
		"uptime_s", snap.UptimeSeconds,
	}
	for _, name := range m.GetMetricNames() {
		kv = append(kv, name, snap.Counts[name])
	}
	for stage, st := range snap.Stages {
		if st.Count > 0 {
			kv = append(kv, stage+"_avg_ms", float64(st.TotalNs)/float64(st.Count)/1e6)
		}
	}
	m.NotifyLoggers(level, msg, kv...)
}
