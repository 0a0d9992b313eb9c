package app

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/mihai-snyk/moo-quality/pkg/multiobjective/indicators"
	"sigs.k8s.io/yaml"
)

const (
	outputText = "text"
	outputYAML = "yaml"
	outputJSON = "json"
)

type entryOutput struct {
	Name  string   `json:"name"`
	Value *float64 `json:"value,omitempty"`
	Error string   `json:"error,omitempty"`
}

type reportOutput struct {
	Indicator string        `json:"indicator"`
	Normalize bool          `json:"normalize"`
	Entries   []entryOutput `json:"entries"`
	Warnings  []string      `json:"warnings,omitempty"`
}

func validateOutput(format string) error {
	switch format {
	case outputText, outputYAML, outputJSON:
		return nil
	}
	return fmt.Errorf("unsupported output format %q, expected one of: text|yaml|json", format)
}

func printReport(w io.Writer, format, id string, normalize bool, report *indicators.Report) error {
	switch format {
	case outputYAML, outputJSON:
		out := toReportOutput(id, normalize, report)
		var data []byte
		var err error
		if format == outputJSON {
			data, err = json.MarshalIndent(out, "", "  ")
			data = append(data, '\n')
		} else {
			data, err = yaml.Marshal(out)
		}
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	}
	return printText(w, id, report)
}

// printText prints a lone scalar for a single indicator, and "NAME: value"
// lines otherwise.
func printText(w io.Writer, id string, report *indicators.Report) error {
	if id != indicators.IndicatorAll && len(report.Entries) == 1 {
		e := report.Entries[0]
		if e.Err != nil {
			return nil
		}
		_, err := fmt.Fprintln(w, formatValue(e.Value))
		return err
	}

	for _, e := range report.Entries {
		line := fmt.Sprintf("%s: %s", e.Name, formatValue(e.Value))
		if e.Err != nil {
			line = fmt.Sprintf("%s: error: %v", e.Name, e.Err)
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func toReportOutput(id string, normalize bool, report *indicators.Report) reportOutput {
	out := reportOutput{
		Indicator: id,
		Normalize: normalize,
		Entries:   make([]entryOutput, 0, len(report.Entries)),
	}
	for _, e := range report.Entries {
		entry := entryOutput{Name: e.Name}
		switch {
		case e.Err != nil:
			entry.Error = e.Err.Error()
		case math.IsNaN(e.Value) || math.IsInf(e.Value, 0):
			entry.Error = formatValue(e.Value)
		default:
			v := e.Value
			entry.Value = &v
		}
		out.Entries = append(out.Entries, entry)
	}
	for _, w := range report.Warnings {
		out.Warnings = append(out.Warnings, w.Error())
	}
	return out
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
