package indicators

// Options tunes an evaluation. The zero value evaluates raw (not
// normalized) fronts with the default parameters of every indicator.
type Options struct {
	// Normalize rescales both fronts with the bounds of the reference front.
	Normalize bool

	// DistancePower is the exponent p of GD and IGD. Zero means 1 (the mean).
	DistancePower float64

	// ReferencePoint bounds the hypervolume. It is given in raw objective
	// space and normalized together with the fronts. When nil, the maximum
	// of the reference front plus ReferencePointOffset is used.
	ReferencePoint []float64
	// ReferencePointOffset shifts the derived hypervolume reference point.
	ReferencePointOffset float64

	// Weights are the R2 weight vectors. When nil, a simplex lattice with
	// Divisions divisions is generated.
	Weights [][]float64
	// Divisions is the simplex lattice resolution; zero picks DefaultDivisions.
	Divisions int

	// Tolerance is the per-objective tolerance of the error ratio.
	Tolerance float64

	// Parallelism bounds the number of indicators evaluated concurrently by
	// EvaluateAll. Zero or less means no limit.
	Parallelism int
}

func (o Options) distancePower() float64 {
	if o.DistancePower == 0 {
		return 1
	}
	return o.DistancePower
}

func (o Options) weights(dim int) [][]float64 {
	if o.Weights != nil {
		return o.Weights
	}
	if o.Divisions > 0 {
		return SimplexLatticeWeights(dim, o.Divisions)
	}
	return DefaultWeights(dim)
}
