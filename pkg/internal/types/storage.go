package types

// WaveformStore persists processed waveforms so measured points can be re-correlated
// against a new baseline.
type WaveformStore interface {
	SavePoint(index int, w Waveform) error
	LoadPoint(index int) (Waveform, error)
	SaveBaseline(index int, w Waveform) error
	LoadBaseline() (int, Waveform, error)
	PointIndexes() ([]int, error)
	Clear() error
}

// ResultSink receives per-point results and grids as they are produced.
type ResultSink interface {
	WritePoint(PointResult) error
	WriteGrid(StressGrid) error
	Close() error
}
