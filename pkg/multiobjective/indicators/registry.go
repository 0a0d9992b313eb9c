package indicators

import (
	"context"
	"fmt"
	"slices"

	"github.com/mihai-snyk/moo-quality/pkg/multiobjective/framework"
)

// Indicator identifiers, matched case-sensitively.
const (
	IndicatorGD                = "GD"
	IndicatorIGD               = "IGD"
	IndicatorIGDPlus           = "IGD+"
	IndicatorHypervolume       = "HV"
	IndicatorEpsilon           = "EPSILON"
	IndicatorSpread            = "SPREAD"
	IndicatorGeneralizedSpread = "GSPREAD"
	IndicatorR2                = "R2"
	IndicatorErrorRatio        = "ER"
	IndicatorSetCoverage       = "SC"

	// IndicatorAll selects every indicator plus set coverage in both directions.
	IndicatorAll = "ALL"
)

// Labels of the two set coverage entries reported by EvaluateAll.
const (
	LabelCoverageReferenceOverFront = "SC(refPF, front)"
	LabelCoverageFrontOverReference = "SC(front, refPF)"
)

// evaluation is a validated (reference, approximation) pair in the space the
// indicators are computed in, with every derived parameter resolved.
type evaluation struct {
	ref      []framework.ObjectiveSpacePoint
	front    []framework.ObjectiveSpacePoint
	refPoint []float64
	weights  [][]float64
	opts     Options
}

type scalarIndicator func(ctx context.Context, ev *evaluation) (float64, error)

// registry maps each scalar indicator identifier to its implementation.
// It is never modified after package initialization.
var registry = map[string]scalarIndicator{
	IndicatorEpsilon: func(_ context.Context, ev *evaluation) (float64, error) {
		return AdditiveEpsilon(ev.ref, ev.front)
	},
	IndicatorHypervolume: func(ctx context.Context, ev *evaluation) (float64, error) {
		return Hypervolume(ctx, ev.front, ev.refPoint)
	},
	IndicatorGD: func(_ context.Context, ev *evaluation) (float64, error) {
		return GenerationalDistancePow(ev.ref, ev.front, ev.opts.distancePower())
	},
	IndicatorIGD: func(_ context.Context, ev *evaluation) (float64, error) {
		return InvertedGenerationalDistancePow(ev.ref, ev.front, ev.opts.distancePower())
	},
	IndicatorIGDPlus: func(_ context.Context, ev *evaluation) (float64, error) {
		return InvertedGenerationalDistancePlus(ev.ref, ev.front)
	},
	IndicatorSpread: func(_ context.Context, ev *evaluation) (float64, error) {
		return Spread(ev.ref, ev.front)
	},
	IndicatorGeneralizedSpread: func(_ context.Context, ev *evaluation) (float64, error) {
		return GeneralizedSpread(ev.ref, ev.front)
	},
	IndicatorR2: func(_ context.Context, ev *evaluation) (float64, error) {
		return R2(ev.ref, ev.front, ev.weights)
	},
	IndicatorErrorRatio: func(_ context.Context, ev *evaluation) (float64, error) {
		return ErrorRatio(ev.ref, ev.front, ev.opts.Tolerance)
	},
}

// allOrder is the order in which EvaluateAll reports the scalar indicators.
var allOrder = []string{
	IndicatorEpsilon,
	IndicatorHypervolume,
	IndicatorGD,
	IndicatorIGD,
	IndicatorIGDPlus,
	IndicatorSpread,
	IndicatorGeneralizedSpread,
	IndicatorR2,
	IndicatorErrorRatio,
}

// Names returns every identifier accepted by Run, in report order.
func Names() []string {
	out := slices.Clone(allOrder)
	return append(out, IndicatorSetCoverage, IndicatorAll)
}

// IsKnown reports whether id is accepted by Run.
func IsKnown(id string) bool {
	return slices.Contains(Names(), id)
}

func lookup(id string) (scalarIndicator, error) {
	fn, ok := registry[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %v)", framework.ErrUnknownIndicator, id, Names())
	}
	return fn, nil
}
