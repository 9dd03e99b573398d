package layout

import (
	"fmt"
	"math"
	"slices"
	"sort"

	"github.com/joeydtaylor/acoustofield/pkg/internal/types"
)

// Strategy names a path ordering.
type Strategy string

const (
	StrategyNone    Strategy = "none"
	StrategyZigzag  Strategy = "zigzag"
	StrategyNearest Strategy = "nearest"
	StrategySpiral  Strategy = "spiral"
)

// rowTolerance buckets Y (zigzag) and radius (spiral) values in mm.
const rowTolerance = 0.1

// PathReport compares probe travel before and after ordering.
type PathReport struct {
	Before         float64
	After          float64
	ImprovementPct float64
}

// PathLength is the summed distance between consecutive points.
func PathLength(points []types.MeasurementPoint) float64 {
	var total float64
	for i := 1; i < len(points); i++ {
		total += math.Hypot(points[i].X-points[i-1].X, points[i].Y-points[i-1].Y)
	}
	return total
}

// Order returns a reordered copy of points renumbered from 1. The result is
// always a permutation of the input.
func Order(points []types.MeasurementPoint, s Strategy) ([]types.MeasurementPoint, PathReport, error) {
	out := slices.Clone(points)
	report := PathReport{Before: PathLength(points)}
	switch s {
	case StrategyNone, "":
	case StrategyZigzag:
		zigzag(out)
	case StrategyNearest:
		out = nearest(out)
	case StrategySpiral:
		spiral(out)
	default:
		return nil, PathReport{}, fmt.Errorf("%w: %q", ErrUnknownStrategy, s)
	}
	renumber(out)
	report.After = PathLength(out)
	if report.Before > 0 {
		report.ImprovementPct = (report.Before - report.After) / report.Before * 100
	}
	return out, report, nil
}

// zigzag walks rows bottom to top, alternating left-to-right and right-to-left.
func zigzag(points []types.MeasurementPoint) {
	sort.SliceStable(points, func(i, j int) bool {
		ri, rj := bucket(points[i].Y), bucket(points[j].Y)
		if ri != rj {
			return ri < rj
		}
		return points[i].X < points[j].X
	})
	row := 0
	for start := 0; start < len(points); row++ {
		end := start + 1
		for end < len(points) && bucket(points[end].Y) == bucket(points[start].Y) {
			end++
		}
		if row%2 == 1 {
			slices.Reverse(points[start:end])
		}
		start = end
	}
}

// nearest is a greedy tour starting from the first point.
func nearest(points []types.MeasurementPoint) []types.MeasurementPoint {
	if len(points) < 2 {
		return points
	}
	out := make([]types.MeasurementPoint, 0, len(points))
	remaining := points
	cur := remaining[0]
	remaining = remaining[1:]
	out = append(out, cur)
	for len(remaining) > 0 {
		best, bestDist := 0, math.Inf(1)
		for i, p := range remaining {
			if d := math.Hypot(p.X-cur.X, p.Y-cur.Y); d < bestDist {
				best, bestDist = i, d
			}
		}
		cur = remaining[best]
		out = append(out, cur)
		remaining = append(remaining[:best], remaining[best+1:]...)
	}
	return out
}

type polarKey struct {
	ring  int64
	theta float64
}

// spiral sorts inner rings first. Within a ring the angular direction is the
// opposite of the one the input already follows, so repeated calls alternate
// between counter-clockwise and clockwise.
func spiral(points []types.MeasurementPoint) {
	if len(points) < 2 {
		return
	}
	keys := polarKeys(points)
	clockwise := sweep(keys) > 0

	idx := make([]int, len(points))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		ka, kb := keys[idx[a]], keys[idx[b]]
		if ka.ring != kb.ring {
			return ka.ring < kb.ring
		}
		if clockwise {
			return ka.theta > kb.theta
		}
		return ka.theta < kb.theta
	})
	sorted := make([]types.MeasurementPoint, len(points))
	for i, j := range idx {
		sorted[i] = points[j]
	}
	copy(points, sorted)
}

// polarKeys uses stored polar coordinates when every point has them and
// coordinates about the centroid otherwise. Angles are in [0, 360).
func polarKeys(points []types.MeasurementPoint) []polarKey {
	keys := make([]polarKey, len(points))
	allPolar := true
	var cx, cy float64
	for _, p := range points {
		allPolar = allPolar && p.HasPolar
		cx += p.X
		cy += p.Y
	}
	cx /= float64(len(points))
	cy /= float64(len(points))
	for i, p := range points {
		r, theta := p.R, p.Theta
		if !allPolar {
			r = math.Hypot(p.X-cx, p.Y-cy)
			theta = math.Atan2(p.Y-cy, p.X-cx) * 180 / math.Pi
		}
		theta = math.Mod(theta, 360)
		if theta < 0 {
			theta += 360
		}
		keys[i] = polarKey{ring: bucket(r), theta: theta}
	}
	return keys
}

// sweep sums the signed angular steps between consecutive points that share
// a ring. Positive means the input runs counter-clockwise. A half-turn step
// has no direction, so it only decides the result when nothing else does,
// by whether theta rose or fell.
func sweep(keys []polarKey) float64 {
	var total, halfTurns float64
	for i := 1; i < len(keys); i++ {
		if keys[i].ring != keys[i-1].ring {
			continue
		}
		raw := keys[i].theta - keys[i-1].theta
		d := raw
		if d > 180 {
			d -= 360
		} else if d < -180 {
			d += 360
		}
		if math.Abs(d) == 180 {
			halfTurns += raw
			continue
		}
		total += d
	}
	if total == 0 {
		return halfTurns
	}
	return total
}

func bucket(v float64) int64 {
	return int64(math.Round(v / rowTolerance))
}
