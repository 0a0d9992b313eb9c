package util

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"
	"github.com/mihai-snyk/moo-quality/pkg/multiobjective/framework"
)

// ErrNotPlottable is returned for fronts that are not bi-objective.
var ErrNotPlottable = errors.New("only bi-objective fronts can be plotted")

// PlotFronts renders an HTML scatter plot of the reference front against the
// approximation front. Either front may be empty, but not both.
func PlotFronts(w io.Writer, title string, reference, approximation []framework.ObjectiveSpacePoint) error {
	if len(reference) == 0 && len(approximation) == 0 {
		return fmt.Errorf("nothing to plot for %s", title)
	}
	for _, front := range [][]framework.ObjectiveSpacePoint{reference, approximation} {
		for _, p := range front {
			if len(p) != 2 {
				return fmt.Errorf("%s: %w, got a point with %d objectives", title, ErrNotPlottable, len(p))
			}
		}
	}

	// Create scatter chart
	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title: title,
		}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithInitializationOpts(opts.Initialization{
			Theme: types.ThemeWesteros,
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Name: "f1(x)",
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(true),
			},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name: "f2(x)",
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(true),
			},
		}))

	// Add data series
	scatter.AddSeries("Reference Front", scatterData(reference, "circle")).
		AddSeries("Approximation", scatterData(approximation, "triangle")).
		SetSeriesOptions(
			charts.WithLabelOpts(opts.Label{
				Show: opts.Bool(false),
			}),
			charts.WithEmphasisOpts(opts.Emphasis{}),
		)

	return scatter.Render(w)
}

// PlotFrontsToFile writes the PlotFronts output to path.
func PlotFrontsToFile(path, title string, reference, approximation []framework.ObjectiveSpacePoint) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := PlotFronts(f, title, reference, approximation); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// PlotResults creates a scatter plot comparing the true Pareto front of the given Problem
// with the final population resulted from the algorithm, and writes it under dir.
func PlotResults(dir string, results []framework.ObjectiveSpacePoint, problem framework.Problem, algorithmName string) (string, error) {
	if len(results) == 0 {
		return "", fmt.Errorf("results are empty for %s Benchmark", problem.Name())
	}

	path := filepath.Join(dir, fmt.Sprintf("%s_%s_results.html", problem.Name(), algorithmName))
	title := fmt.Sprintf("%s Results for %s Benchmark", algorithmName, problem.Name())
	return path, PlotFrontsToFile(path, title, problem.TrueParetoFront(100), results)
}

func scatterData(front []framework.ObjectiveSpacePoint, symbol string) []opts.ScatterData {
	data := make([]opts.ScatterData, len(front))
	for i, p := range front {
		data[i] = opts.ScatterData{
			Value:      []float64{p[0], p[1]},
			Symbol:     symbol,
			SymbolSize: 10,
		}
	}
	return data
}
