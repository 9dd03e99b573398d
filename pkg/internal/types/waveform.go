package types

// Waveform is one acquired or derived signal. Times is optional; when present it has
// the same length as Voltages and is expressed in seconds.
type Waveform struct {
	Times      []float64
	Voltages   []float64
	SampleRate float64 // Hz
}

// Len returns the number of voltage samples.
func (w Waveform) Len() int { return len(w.Voltages) }

// HasTimes reports whether an explicit, consistent time axis is attached.
func (w Waveform) HasTimes() bool {
	return len(w.Times) > 0 && len(w.Times) == len(w.Voltages)
}

// Duration returns the recorded span in seconds, preferring the explicit time axis.
func (w Waveform) Duration() float64 {
	if w.HasTimes() {
		return w.Times[len(w.Times)-1] - w.Times[0]
	}
	if w.SampleRate <= 0 || len(w.Voltages) == 0 {
		return 0
	}
	return float64(len(w.Voltages)-1) / w.SampleRate
}

// Clone returns a deep copy so processing stages never alias caller data.
func (w Waveform) Clone() Waveform {
	out := Waveform{SampleRate: w.SampleRate}
	if w.Times != nil {
		out.Times = append([]float64(nil), w.Times...)
	}
	if w.Voltages != nil {
		out.Voltages = append([]float64(nil), w.Voltages...)
	}
	return out
}

// WithVoltages returns a copy of w carrying new samples and the same time axis.
func (w Waveform) WithVoltages(v []float64) Waveform {
	out := w.Clone()
	out.Voltages = v
	return out
}
