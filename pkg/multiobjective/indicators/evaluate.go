package indicators

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mihai-snyk/moo-quality/pkg/multiobjective/framework"
	"golang.org/x/sync/errgroup"
	"k8s.io/klog/v2"
)

// Result is the outcome of a single indicator.
type Result struct {
	Indicator string  `json:"indicator"`
	Value     float64 `json:"value"`

	// Coverage is only set for IndicatorSetCoverage, whose Value is then
	// C(reference, approximation).
	Coverage *Coverage `json:"coverage,omitempty"`
}

// Entry is one labelled line of a report. Err is set when that indicator
// could not be computed; the other entries are unaffected.
type Entry struct {
	Name  string
	Value float64
	Err   error
}

// Report collects the entries of one evaluation request.
type Report struct {
	Entries []Entry

	// Warnings lists handled, non-fatal conditions such as degenerate
	// normalization bounds.
	Warnings []error
}

// Failed returns the entry errors, each prefixed with the entry name.
func (r *Report) Failed() []error {
	var errs []error
	for _, e := range r.Entries {
		if e.Err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", e.Name, e.Err))
		}
	}
	return errs
}

// Evaluate computes the indicator id for the given fronts. IndicatorAll is
// not accepted here; use EvaluateAll or Run.
func Evaluate(ctx context.Context, id string, ref, front *framework.Front, opts Options) (Result, error) {
	res, warnings, err := evaluate(ctx, id, ref, front, opts)
	if err != nil {
		return Result{}, err
	}
	logWarnings(ctx, warnings)
	return res, nil
}

func evaluate(ctx context.Context, id string, ref, front *framework.Front, opts Options) (Result, []error, error) {
	if id == IndicatorAll {
		return Result{}, nil, errors.New("ALL selects several indicators, use EvaluateAll")
	}

	var fn scalarIndicator
	if id != IndicatorSetCoverage {
		var err error
		if fn, err = lookup(id); err != nil {
			return Result{}, nil, err
		}
	}

	ev, warnings, err := prepare(ref, front, opts)
	if err != nil {
		return Result{}, nil, err
	}

	if id == IndicatorSetCoverage {
		c, err := SetCoverageBoth(ev.ref, ev.front)
		if err != nil {
			return Result{}, warnings, err
		}
		return Result{Indicator: id, Value: c.ReferenceOverFront, Coverage: &c}, warnings, nil
	}

	v, err := timed(ctx, id, func() (float64, error) { return fn(ctx, ev) })
	if err != nil {
		return Result{}, warnings, fmt.Errorf("%s: %w", id, err)
	}
	return Result{Indicator: id, Value: v}, warnings, nil
}

// EvaluateAll computes every scalar indicator and set coverage in both
// directions. Indicators run concurrently on the shared, read-only inputs.
// An indicator failure is recorded in its entry and does not stop the
// others. The returned error is non-nil only when the inputs are invalid or
// the context ends before every indicator completed.
func EvaluateAll(ctx context.Context, ref, front *framework.Front, opts Options) (*Report, error) {
	ev, warnings, err := prepare(ref, front, opts)
	if err != nil {
		return nil, err
	}
	logWarnings(ctx, warnings)

	type task struct {
		name string
		run  func() (float64, error)
	}
	tasks := make([]task, 0, len(allOrder)+2)
	for _, id := range allOrder {
		fn := registry[id]
		tasks = append(tasks, task{name: id, run: func() (float64, error) { return fn(ctx, ev) }})
	}
	tasks = append(tasks,
		task{name: LabelCoverageReferenceOverFront, run: func() (float64, error) { return SetCoverage(ev.ref, ev.front) }},
		task{name: LabelCoverageFrontOverReference, run: func() (float64, error) { return SetCoverage(ev.front, ev.ref) }},
	)

	report := &Report{
		Entries:  make([]Entry, len(tasks)),
		Warnings: warnings,
	}

	g := errgroup.Group{}
	if opts.Parallelism > 0 {
		g.SetLimit(opts.Parallelism)
	}
	for i, t := range tasks {
		g.Go(func() error {
			entry := Entry{Name: t.name}
			if err := ctx.Err(); err != nil {
				entry.Err = err
			} else {
				entry.Value, entry.Err = timed(ctx, t.name, t.run)
			}
			report.Entries[i] = entry
			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return report, err
	}
	return report, nil
}

// Run dispatches on id: IndicatorAll evaluates everything, any other known
// identifier yields a report with its entry (two for set coverage).
func Run(ctx context.Context, id string, ref, front *framework.Front, opts Options) (*Report, error) {
	if id == IndicatorAll {
		return EvaluateAll(ctx, ref, front, opts)
	}

	res, warnings, err := evaluate(ctx, id, ref, front, opts)
	if err != nil {
		return nil, err
	}
	logWarnings(ctx, warnings)

	report := &Report{Warnings: warnings}
	if res.Coverage != nil {
		report.Entries = []Entry{
			{Name: LabelCoverageReferenceOverFront, Value: res.Coverage.ReferenceOverFront},
			{Name: LabelCoverageFrontOverReference, Value: res.Coverage.FrontOverReference},
		}
		return report, nil
	}
	report.Entries = []Entry{{Name: res.Indicator, Value: res.Value}}
	return report, nil
}

// prepare validates the pair, applies normalization and resolves the
// hypervolume reference point and the R2 weights.
func prepare(ref, front *framework.Front, opts Options) (*evaluation, []error, error) {
	if ref == nil || ref.Size() == 0 {
		return nil, nil, fmt.Errorf("%w: reference front", framework.ErrEmptyFront)
	}
	if front == nil || front.Size() == 0 {
		return nil, nil, fmt.Errorf("%w: approximation front", framework.ErrEmptyFront)
	}
	if ref.Dimension() != front.Dimension() {
		return nil, nil, fmt.Errorf("%w: reference front has %d objectives, approximation front has %d",
			framework.ErrDimensionMismatch, ref.Dimension(), front.Dimension())
	}
	dim := ref.Dimension()

	ev := &evaluation{
		ref:   ref.Points(),
		front: front.Points(),
		opts:  opts,
	}

	var warnings []error
	var bounds Bounds
	if opts.Normalize {
		var err error
		if bounds, err = ComputeBounds(ev.ref); err != nil {
			return nil, nil, err
		}
		warnings = bounds.degenerateWarnings()
		if ev.ref, err = bounds.NormalizeFront(ev.ref); err != nil {
			return nil, nil, err
		}
		if ev.front, err = bounds.NormalizeFront(ev.front); err != nil {
			return nil, nil, err
		}
	}

	switch {
	case opts.ReferencePoint == nil:
		p, err := NadirPoint(ev.ref, opts.ReferencePointOffset)
		if err != nil {
			return nil, nil, err
		}
		ev.refPoint = p
	case len(opts.ReferencePoint) != dim:
		return nil, nil, fmt.Errorf("%w: hypervolume reference point has %d objectives, fronts have %d",
			framework.ErrDimensionMismatch, len(opts.ReferencePoint), dim)
	case opts.Normalize:
		p, err := bounds.Normalize(opts.ReferencePoint)
		if err != nil {
			return nil, nil, err
		}
		ev.refPoint = p
	default:
		ev.refPoint = append([]float64(nil), opts.ReferencePoint...)
	}

	ev.weights = opts.weights(dim)
	return ev, warnings, nil
}

func timed(ctx context.Context, name string, fn func() (float64, error)) (float64, error) {
	logger := klog.FromContext(ctx)
	start := time.Now()
	v, err := fn()
	if err != nil {
		logger.V(2).Info("Indicator failed", "indicator", name, "err", err)
		return 0, err
	}
	logger.V(4).Info("Indicator evaluated", "indicator", name, "value", v, "duration", time.Since(start))
	return v, nil
}

func logWarnings(ctx context.Context, warnings []error) {
	logger := klog.FromContext(ctx)
	for _, w := range warnings {
		logger.V(1).Info("Normalization warning", "warning", w)
	}
}
