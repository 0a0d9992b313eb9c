package indicators

import (
	"fmt"

	"github.com/mihai-snyk/moo-quality/pkg/multiobjective/framework"
	"gonum.org/v1/gonum/floats"
)

// Bounds holds the per-objective minimum and maximum of a reference front.
type Bounds struct {
	Min []float64
	Max []float64
}

// ComputeBounds derives the normalization bounds from a reference front.
func ComputeBounds(ref []framework.ObjectiveSpacePoint) (Bounds, error) {
	dim, err := frontDimension(ref, "reference")
	if err != nil {
		return Bounds{}, err
	}

	b := Bounds{
		Min: make([]float64, dim),
		Max: make([]float64, dim),
	}
	column := make([]float64, len(ref))
	for k := 0; k < dim; k++ {
		for i, p := range ref {
			column[i] = p[k]
		}
		b.Min[k] = floats.Min(column)
		b.Max[k] = floats.Max(column)
	}
	return b, nil
}

// Dimension returns the number of objectives covered by the bounds.
func (b Bounds) Dimension() int {
	return len(b.Min)
}

// Degenerate returns the objectives whose range is zero.
func (b Bounds) Degenerate() []int {
	var out []int
	for k := range b.Min {
		if b.Max[k] == b.Min[k] {
			out = append(out, k)
		}
	}
	return out
}

// Normalize maps p into the unit range of the bounds: (x - min) / (max - min).
// Objectives with a zero range normalize to 0.
func (b Bounds) Normalize(p []float64) (framework.ObjectiveSpacePoint, error) {
	if len(p) != b.Dimension() {
		return nil, fmt.Errorf("%w: point has %d objectives, bounds have %d", framework.ErrDimensionMismatch, len(p), b.Dimension())
	}

	out := make(framework.ObjectiveSpacePoint, len(p))
	for k, x := range p {
		span := b.Max[k] - b.Min[k]
		if span == 0 {
			continue
		}
		out[k] = (x - b.Min[k]) / span
	}
	return out, nil
}

// NormalizeFront normalizes every point of a front with the same bounds.
func (b Bounds) NormalizeFront(points []framework.ObjectiveSpacePoint) ([]framework.ObjectiveSpacePoint, error) {
	out := make([]framework.ObjectiveSpacePoint, len(points))
	for i, p := range points {
		n, err := b.Normalize(p)
		if err != nil {
			return nil, fmt.Errorf("point %d: %w", i, err)
		}
		out[i] = n
	}
	return out, nil
}

// degenerateWarnings turns zero-range objectives into reportable warnings.
func (b Bounds) degenerateWarnings() []error {
	var warnings []error
	for _, k := range b.Degenerate() {
		warnings = append(warnings, fmt.Errorf("%w: objective %d has a zero range (%g), normalized to 0",
			framework.ErrDegenerateNormalization, k, b.Min[k]))
	}
	return warnings
}
