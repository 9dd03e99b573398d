package codec

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/joeydtaylor/acoustofield/pkg/internal/types"
)

const (
	pointPrefix  = "point_"
	frameExt     = ".afw"
	baselineFile = "baseline" + frameExt
)

// FileStore keeps one frame file per point plus a baseline frame in a
// directory. Files are written to a temporary name and renamed into place.
type FileStore struct {
	dir string
	enc *WaveformEncoder
	dec *WaveformDecoder
	mu  sync.RWMutex
}

// NewFileStore creates dir if needed. key may be empty.
func NewFileStore(dir string, c Compression, key string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("waveform store: %w", err)
	}
	enc, err := NewWaveformEncoder(c, key)
	if err != nil {
		return nil, err
	}
	dec, err := NewWaveformDecoder(key)
	if err != nil {
		return nil, err
	}
	return &FileStore{dir: dir, enc: enc, dec: dec}, nil
}

// Dir returns the store's directory.
func (s *FileStore) Dir() string { return s.dir }

func (s *FileStore) pointPath(index int) string {
	return filepath.Join(s.dir, fmt.Sprintf("%s%04d%s", pointPrefix, index, frameExt))
}

func (s *FileStore) write(path string, f Frame) error {
	tmp, err := os.CreateTemp(s.dir, ".tmp-*")
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(tmp)
	if err = s.enc.Encode(bw, f); err == nil {
		err = bw.Flush()
	}
	if cerr := tmp.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), path)
}

func (s *FileStore) read(path string) (Frame, error) {
	fh, err := os.Open(path)
	if err != nil {
		return Frame{}, err
	}
	defer fh.Close()
	return s.dec.Decode(bufio.NewReader(fh))
}

// SavePoint implements types.WaveformStore.
func (s *FileStore) SavePoint(index int, w types.Waveform) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.write(s.pointPath(index), Frame{Index: index, Waveform: w})
}

// LoadPoint implements types.WaveformStore.
func (s *FileStore) LoadPoint(index int) (types.Waveform, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	f, err := s.read(s.pointPath(index))
	if err != nil {
		return types.Waveform{}, fmt.Errorf("load point %d: %w", index, err)
	}
	return f.Waveform, nil
}

// SaveBaseline implements types.WaveformStore.
func (s *FileStore) SaveBaseline(index int, w types.Waveform) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.write(filepath.Join(s.dir, baselineFile), Frame{Index: index, Waveform: w})
}

// LoadBaseline implements types.WaveformStore.
func (s *FileStore) LoadBaseline() (int, types.Waveform, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	f, err := s.read(filepath.Join(s.dir, baselineFile))
	if err != nil {
		return 0, types.Waveform{}, fmt.Errorf("load baseline: %w", err)
	}
	return f.Index, f.Waveform, nil
}

// PointIndexes lists stored points in ascending order.
func (s *FileStore) PointIndexes() ([]int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, err
	}
	var out []int
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasPrefix(name, pointPrefix) || !strings.HasSuffix(name, frameExt) {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSuffix(strings.TrimPrefix(name, pointPrefix), frameExt))
		if err != nil {
			continue
		}
		out = append(out, n)
	}
	sort.Ints(out)
	return out, nil
}

// Clear removes every frame file. Other files in the directory are left alone.
func (s *FileStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	matches, err := filepath.Glob(filepath.Join(s.dir, "*"+frameExt))
	if err != nil {
		return err
	}
	for _, m := range matches {
		if err := os.Remove(m); err != nil && !os.IsNotExist(err) {
			return err
		}
	}
	return nil
}
