package interpolate

import (
	"math"

	"github.com/joeydtaylor/acoustofield/pkg/internal/types"
	"github.com/joeydtaylor/acoustofield/pkg/internal/utils"
	"gonum.org/v1/gonum/spatial/kdtree"
)

// Sample is one scattered stress value.
type Sample struct {
	X     float64
	Y     float64
	Value float64
}

// SamplesFromPoints keeps measured points with a finite stress.
func SamplesFromPoints(points []types.MeasurementPoint) []Sample {
	usable := utils.Filter(points, func(p types.MeasurementPoint) bool {
		return p.Measured() && !math.IsNaN(p.StressMPa) && !math.IsInf(p.StressMPa, 0)
	})
	return utils.MapTo(usable, func(p types.MeasurementPoint) Sample {
		return Sample{X: p.X, Y: p.Y, Value: p.StressMPa}
	})
}

// site adapts a Sample to the k-d tree.
type site Sample

func (s site) coord(d kdtree.Dim) float64 {
	if d == 0 {
		return s.X
	}
	return s.Y
}

func (s site) Compare(c kdtree.Comparable, d kdtree.Dim) float64 {
	return s.coord(d) - c.(site).coord(d)
}

func (s site) Dims() int { return 2 }

func (s site) Distance(c kdtree.Comparable) float64 {
	q := c.(site)
	dx, dy := s.X-q.X, s.Y-q.Y
	return dx*dx + dy*dy
}

type sites []site

func (s sites) Index(i int) kdtree.Comparable         { return s[i] }
func (s sites) Len() int                              { return len(s) }
func (s sites) Pivot(d kdtree.Dim) int                { return plane{sites: s, dim: d}.Pivot() }
func (s sites) Slice(start, end int) kdtree.Interface { return s[start:end] }

type plane struct {
	sites
	dim kdtree.Dim
}

func (p plane) Less(i, j int) bool                     { return p.sites[i].coord(p.dim) < p.sites[j].coord(p.dim) }
func (p plane) Pivot() int                             { return kdtree.Partition(p, kdtree.MedianOfMedians(p)) }
func (p plane) Slice(start, end int) kdtree.SortSlicer { p.sites = p.sites[start:end]; return p }
func (p plane) Swap(i, j int)                          { p.sites[i], p.sites[j] = p.sites[j], p.sites[i] }

// Index answers nearest-sample queries.
type Index struct {
	tree    *kdtree.Tree
	samples []Sample
}

// NewIndex builds a k-d tree over samples.
func NewIndex(samples []Sample) *Index {
	s := make(sites, len(samples))
	for i, v := range samples {
		s[i] = site(v)
	}
	return &Index{tree: kdtree.New(s, false), samples: samples}
}

// Nearest returns the sample closest to (x, y) and its distance. ok is false
// for an empty index.
func (ix *Index) Nearest(x, y float64) (Sample, float64, bool) {
	c, d2 := ix.tree.Nearest(site{X: x, Y: y})
	if c == nil {
		return Sample{}, math.Inf(1), false
	}
	return Sample(c.(site)), math.Sqrt(d2), true
}

// Query methods for ValueAt.
const (
	QueryIDW     = "idw"
	QueryNearest = "nearest"
)

// exactHit is the distance in mm under which a query returns a sample's value directly.
const exactHit = 0.001

// ValueAt estimates the stress at (x, y) by inverse-distance weighting
// (1/d²) or by the nearest sample. ok is false when there are no samples.
func (ix *Index) ValueAt(x, y float64, method string) (float64, bool) {
	s, d, ok := ix.Nearest(x, y)
	if !ok {
		return 0, false
	}
	if method == QueryNearest || d < exactHit {
		return s.Value, true
	}
	var num, den float64
	for _, p := range ix.samples {
		d2 := (p.X-x)*(p.X-x) + (p.Y-y)*(p.Y-y)
		w := 1 / d2
		num += w * p.Value
		den += w
	}
	return num / den, true
}
