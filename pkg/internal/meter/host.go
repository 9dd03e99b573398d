package meter

import (
	"github.com/shirou/gopsutil/cpu"
	"github.com/shirou/gopsutil/mem"
)

// gopsutilSampler reads CPU usage since the previous call and current
// virtual memory usage.
func gopsutilSampler() (float64, float64, error) {
	pct, err := cpu.Percent(0, false)
	if err != nil {
		return 0, 0, err
	}
	vm, err := mem.VirtualMemory()
	if err != nil {
		return 0, 0, err
	}
	var c float64
	if len(pct) > 0 {
		c = pct[0]
	}
	return c, vm.UsedPercent, nil
}

// SampleHost refreshes the CPU and memory figures reported by Snapshot.
func (m *Meter) SampleHost() error {
	c, mp, err := m.sampleHost()
	if err != nil {
		return err
	}
	m.hostLock.Lock()
	m.cpuPercent, m.memoryPercent = c, mp
	m.hostLock.Unlock()
	return nil
}
