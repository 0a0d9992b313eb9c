package framework

import "errors"

var (
	// ErrDimensionMismatch is returned when points or fronts disagree on the
	// number of objectives (or constraint vectors on their length).
	ErrDimensionMismatch = errors.New("dimension mismatch")

	// ErrEmptyFront is returned when a front that must hold points has none.
	ErrEmptyFront = errors.New("empty front")

	// ErrDegenerateNormalization marks an objective whose reference range is
	// zero. It is reported as a warning only; the normalized value is 0.
	ErrDegenerateNormalization = errors.New("degenerate normalization")

	// ErrUnsupportedDimensionality is returned by indicators that are only
	// defined for a specific number of objectives.
	ErrUnsupportedDimensionality = errors.New("unsupported dimensionality")

	// ErrUnknownIndicator is returned for an unrecognized indicator identifier.
	ErrUnknownIndicator = errors.New("unknown indicator")
)
