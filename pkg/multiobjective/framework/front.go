package framework

import "fmt"

// Clone returns a copy of the point that does not share its backing array.
func (p ObjectiveSpacePoint) Clone() ObjectiveSpacePoint {
	out := make(ObjectiveSpacePoint, len(p))
	copy(out, p)
	return out
}

// Dimension returns the number of objectives of the point.
func (p ObjectiveSpacePoint) Dimension() int {
	return len(p)
}

// Front is an ordered, immutable collection of points that all share the
// same number of objectives. Use NewFront to build one.
type Front struct {
	points []ObjectiveSpacePoint
	dim    int
}

// NewFront validates and copies the given points into a Front.
// It fails with ErrEmptyFront when no points are supplied and with
// ErrDimensionMismatch when the points differ in length.
func NewFront(points []ObjectiveSpacePoint) (*Front, error) {
	if len(points) == 0 {
		return nil, ErrEmptyFront
	}

	dim := len(points[0])
	if dim == 0 {
		return nil, fmt.Errorf("%w: point 0 has no objectives", ErrDimensionMismatch)
	}

	cp := make([]ObjectiveSpacePoint, len(points))
	for i, p := range points {
		if len(p) != dim {
			return nil, fmt.Errorf("%w: point %d has %d objectives, want %d", ErrDimensionMismatch, i, len(p), dim)
		}
		cp[i] = p.Clone()
	}

	return &Front{
		points: cp,
		dim:    dim,
	}, nil
}

// MustNewFront is like NewFront but panics on invalid input.
// Meant for tests and static fixtures.
func MustNewFront(points ...ObjectiveSpacePoint) *Front {
	f, err := NewFront(points)
	if err != nil {
		panic(err)
	}
	return f
}

// Dimension returns the number of objectives shared by every point.
func (f *Front) Dimension() int {
	return f.dim
}

// Size returns the number of points in the front.
func (f *Front) Size() int {
	return len(f.points)
}

// Point returns a copy of the i-th point.
func (f *Front) Point(i int) ObjectiveSpacePoint {
	return f.points[i].Clone()
}

// At returns the k-th objective value of the i-th point.
func (f *Front) At(i, k int) float64 {
	return f.points[i][k]
}

// Points returns a deep copy of all points, in order.
func (f *Front) Points() []ObjectiveSpacePoint {
	out := make([]ObjectiveSpacePoint, len(f.points))
	for i, p := range f.points {
		out[i] = p.Clone()
	}
	return out
}
