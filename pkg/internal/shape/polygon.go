package shape

import (
	"fmt"
	"math"
)

const edgeTolerance = 1e-9

// Polygon is a simple polygon given by its vertices in order. The closing
// edge from the last vertex back to the first is implicit.
type Polygon struct {
	Vertices []Point
}

func (p Polygon) Kind() Kind { return KindPolygon }

// Contains uses ray casting; points on an edge count as inside.
func (p Polygon) Contains(x, y float64) bool {
	n := len(p.Vertices)
	if n < 3 {
		return false
	}
	inside := false
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		a, b := p.Vertices[i], p.Vertices[j]
		if onSegment(x, y, a, b) {
			return true
		}
		if (a.Y > y) != (b.Y > y) && x < (b.X-a.X)*(y-a.Y)/(b.Y-a.Y)+a.X {
			inside = !inside
		}
	}
	return inside
}

// Area uses the shoelace formula.
func (p Polygon) Area() float64 {
	n := len(p.Vertices)
	if n < 3 {
		return 0
	}
	var sum float64
	for i := range p.Vertices {
		a, b := p.Vertices[i], p.Vertices[(i+1)%n]
		sum += a.X*b.Y - b.X*a.Y
	}
	return math.Abs(sum) / 2
}

func (p Polygon) BoundingBox() BBox {
	if len(p.Vertices) == 0 {
		return BBox{}
	}
	b := BBox{MinX: math.Inf(1), MinY: math.Inf(1), MaxX: math.Inf(-1), MaxY: math.Inf(-1)}
	for _, v := range p.Vertices {
		b.MinX = math.Min(b.MinX, v.X)
		b.MinY = math.Min(b.MinY, v.Y)
		b.MaxX = math.Max(b.MaxX, v.X)
		b.MaxY = math.Max(b.MaxY, v.Y)
	}
	return b
}

// Centroid returns the vertex mean.
func (p Polygon) Centroid() Point {
	if len(p.Vertices) == 0 {
		return Point{}
	}
	var c Point
	for _, v := range p.Vertices {
		c.X += v.X
		c.Y += v.Y
	}
	n := float64(len(p.Vertices))
	return Point{X: c.X / n, Y: c.Y / n}
}

func (p Polygon) validate() ([]string, error) {
	if len(p.Vertices) < 3 {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewVertices, len(p.Vertices))
	}
	if p.selfIntersects() {
		return nil, ErrSelfIntersecting
	}
	return nil, nil
}

// selfIntersects tests every pair of non-adjacent edges.
func (p Polygon) selfIntersects() bool {
	n := len(p.Vertices)
	if n < 4 {
		return false
	}
	for i := 0; i < n; i++ {
		for j := i + 2; j < n; j++ {
			if i == 0 && j == n-1 {
				continue
			}
			if segmentsCross(p.Vertices[i], p.Vertices[(i+1)%n], p.Vertices[j], p.Vertices[(j+1)%n]) {
				return true
			}
		}
	}
	return false
}

func ccw(a, b, c Point) bool {
	return (c.Y-a.Y)*(b.X-a.X) > (b.Y-a.Y)*(c.X-a.X)
}

func segmentsCross(a, b, c, d Point) bool {
	return ccw(a, c, d) != ccw(b, c, d) && ccw(a, b, c) != ccw(a, b, d)
}

func onSegment(x, y float64, a, b Point) bool {
	cross := (b.X-a.X)*(y-a.Y) - (b.Y-a.Y)*(x-a.X)
	if math.Abs(cross) > edgeTolerance*math.Max(1, a.Dist(b)) {
		return false
	}
	return x >= math.Min(a.X, b.X)-edgeTolerance && x <= math.Max(a.X, b.X)+edgeTolerance &&
		y >= math.Min(a.Y, b.Y)-edgeTolerance && y <= math.Max(a.Y, b.Y)+edgeTolerance
}
