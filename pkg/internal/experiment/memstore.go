package experiment

import (
	"fmt"
	"sort"
	"sync"

	"github.com/joeydtaylor/acoustofield/pkg/internal/types"
)

// MemoryStore is the default in-process WaveformStore.
type MemoryStore struct {
	mu            sync.RWMutex
	points        map[int]types.Waveform
	baseline      types.Waveform
	baselineIndex int
}

// NewMemoryStore returns an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{points: make(map[int]types.Waveform)}
}

func (s *MemoryStore) SavePoint(index int, w types.Waveform) error {
	s.mu.Lock()
	s.points[index] = w.Clone()
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) LoadPoint(index int) (types.Waveform, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	w, ok := s.points[index]
	if !ok {
		return types.Waveform{}, fmt.Errorf("point %d: %w", index, ErrPointNotMeasured)
	}
	return w.Clone(), nil
}

func (s *MemoryStore) SaveBaseline(index int, w types.Waveform) error {
	s.mu.Lock()
	s.baseline, s.baselineIndex = w.Clone(), index
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) LoadBaseline() (int, types.Waveform, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.baselineIndex == 0 {
		return 0, types.Waveform{}, ErrNoBaseline
	}
	return s.baselineIndex, s.baseline.Clone(), nil
}

func (s *MemoryStore) PointIndexes() ([]int, error) {
	s.mu.RLock()
	out := make([]int, 0, len(s.points))
	for i := range s.points {
		out = append(out, i)
	}
	s.mu.RUnlock()
	sort.Ints(out)
	return out, nil
}

func (s *MemoryStore) Clear() error {
	s.mu.Lock()
	s.points = make(map[int]types.Waveform)
	s.baseline, s.baselineIndex = types.Waveform{}, 0
	s.mu.Unlock()
	return nil
}
