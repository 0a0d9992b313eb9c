package indicators

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/mihai-snyk/moo-quality/pkg/multiobjective/framework"
)

// hvCheckInterval is the number of work items processed between two
// context checks.
const hvCheckInterval = 64

// hvSlice is one pending sub-problem of the slicing decomposition: the
// hypervolume of points restricted to objectives [obj, d), scaled by the
// product of the slice thicknesses already cut along earlier objectives.
type hvSlice struct {
	points []framework.ObjectiveSpacePoint
	obj    int
	depth  float64
}

// Hypervolume returns the volume of the objective-space region dominated by
// the front and bounded above by refPoint. Points that do not strictly
// dominate refPoint contribute nothing.
//
// Fronts with three or more objectives are decomposed by slicing objectives
// one at a time. Sub-problems are kept on an explicit stack rather than the
// call stack, and the context is checked between them.
func Hypervolume(ctx context.Context, front []framework.ObjectiveSpacePoint, refPoint []float64) (float64, error) {
	dim, err := frontDimension(front, "approximation")
	if err != nil {
		return 0, err
	}
	if len(refPoint) != dim {
		return 0, fmt.Errorf("%w: reference point has %d objectives, front has %d",
			framework.ErrDimensionMismatch, len(refPoint), dim)
	}

	var inside []framework.ObjectiveSpacePoint
	for _, p := range front {
		if strictlyBelow(p, refPoint) {
			inside = append(inside, p)
		}
	}
	if len(inside) == 0 {
		return 0, nil
	}

	switch dim {
	case 1:
		best := math.Inf(1)
		for _, p := range inside {
			best = math.Min(best, p[0])
		}
		return refPoint[0] - best, nil
	case 2:
		return sweepArea(inside, refPoint, 0), nil
	}

	total := 0.0
	stack := []hvSlice{{points: nonDominatedFrom(inside, 0), obj: 0, depth: 1}}
	for n := 0; len(stack) > 0; n++ {
		if n%hvCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return 0, err
			}
		}

		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if dim-top.obj == 2 {
			total += top.depth * sweepArea(top.points, refPoint, top.obj)
			continue
		}

		obj := top.obj
		pts := top.points
		sort.Slice(pts, func(i, j int) bool {
			return pts[i][obj] < pts[j][obj]
		})
		for i := range pts {
			upper := refPoint[obj]
			if i+1 < len(pts) {
				upper = pts[i+1][obj]
			}
			thickness := upper - pts[i][obj]
			if thickness <= 0 {
				continue
			}
			stack = append(stack, hvSlice{
				points: nonDominatedFrom(pts[:i+1], obj+1),
				obj:    obj + 1,
				depth:  top.depth * thickness,
			})
		}
	}
	return total, nil
}

// sweepArea computes the two-dimensional area dominated by points on
// objectives obj and obj+1, bounded by refPoint.
func sweepArea(points []framework.ObjectiveSpacePoint, refPoint []float64, obj int) float64 {
	pts := make([]framework.ObjectiveSpacePoint, len(points))
	copy(pts, points)
	sort.Slice(pts, func(i, j int) bool {
		if pts[i][obj] != pts[j][obj] {
			return pts[i][obj] < pts[j][obj]
		}
		return pts[i][obj+1] < pts[j][obj+1]
	})

	area := 0.0
	ceiling := refPoint[obj+1]
	for _, p := range pts {
		if p[obj+1] < ceiling {
			area += (refPoint[obj] - p[obj]) * (ceiling - p[obj+1])
			ceiling = p[obj+1]
		}
	}
	return area
}

// nonDominatedFrom returns a new slice with the points that are not weakly
// dominated on objectives [obj, d) by another point. Of several identical
// points only the first is kept.
func nonDominatedFrom(points []framework.ObjectiveSpacePoint, obj int) []framework.ObjectiveSpacePoint {
	out := make([]framework.ObjectiveSpacePoint, 0, len(points))
	for i, p := range points {
		keep := true
		for j, q := range points {
			if i == j || !weaklyDominatesFrom(q, p, obj) {
				continue
			}
			if !weaklyDominatesFrom(p, q, obj) || j < i {
				keep = false
				break
			}
		}
		if keep {
			out = append(out, p)
		}
	}
	return out
}

func weaklyDominatesFrom(a, b framework.ObjectiveSpacePoint, obj int) bool {
	for k := obj; k < len(a); k++ {
		if a[k] > b[k] {
			return false
		}
	}
	return true
}

func strictlyBelow(p framework.ObjectiveSpacePoint, refPoint []float64) bool {
	for k := range p {
		if p[k] >= refPoint[k] {
			return false
		}
	}
	return true
}

// NadirPoint returns the per-objective maximum of the front shifted by offset.
func NadirPoint(front []framework.ObjectiveSpacePoint, offset float64) ([]float64, error) {
	b, err := ComputeBounds(front)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(b.Max))
	for k, v := range b.Max {
		out[k] = v + offset
	}
	return out, nil
}
