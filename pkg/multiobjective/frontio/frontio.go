// Package frontio reads and writes fronts in the plain text format used by
// reference front files: one point per line, objective values separated by
// whitespace, the same number of columns on every line.
package frontio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/mihai-snyk/moo-quality/pkg/multiobjective/framework"
)

var (
	// ErrRowWidth is wrapped by a ParseError when a line has a different
	// number of columns than the first one.
	ErrRowWidth = errors.New("inconsistent row width")

	// ErrNonFinite is wrapped by a ParseError for NaN or infinite values.
	ErrNonFinite = errors.New("non-finite value")
)

// ParseError reports malformed front data at a given line of a source.
type ParseError struct {
	Source string
	Line   int
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s:%d: %v", e.Source, e.Line, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ReadFront parses a front from r. Blank lines are ignored. source only
// labels errors. An input without points fails with framework.ErrEmptyFront.
func ReadFront(r io.Reader, source string) (*framework.Front, error) {
	var points []framework.ObjectiveSpacePoint
	width := -1

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	line := 0
	for scanner.Scan() {
		line++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		if width == -1 {
			width = len(fields)
		} else if len(fields) != width {
			return nil, &ParseError{
				Source: source,
				Line:   line,
				Err:    fmt.Errorf("%w: got %d columns, want %d", ErrRowWidth, len(fields), width),
			}
		}

		p := make(framework.ObjectiveSpacePoint, len(fields))
		for i, field := range fields {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, &ParseError{Source: source, Line: line, Err: err}
			}
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, &ParseError{
					Source: source,
					Line:   line,
					Err:    fmt.Errorf("%w: column %d is %q", ErrNonFinite, i+1, field),
				}
			}
			p[i] = v
		}
		points = append(points, p)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", source, err)
	}

	if len(points) == 0 {
		return nil, fmt.Errorf("%w: %s has no points", framework.ErrEmptyFront, source)
	}
	return framework.NewFront(points)
}

// LoadFront reads a front from a file.
func LoadFront(path string) (*framework.Front, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ReadFront(f, path)
}

// WriteFront writes points in the same format ReadFront accepts.
func WriteFront(w io.Writer, points []framework.ObjectiveSpacePoint) error {
	bw := bufio.NewWriter(w)
	for _, p := range points {
		for i, v := range p {
			if i > 0 {
				if err := bw.WriteByte(' '); err != nil {
					return err
				}
			}
			if _, err := bw.WriteString(strconv.FormatFloat(v, 'g', -1, 64)); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// SaveFront writes points to a file, replacing it if it exists.
func SaveFront(path string, points []framework.ObjectiveSpacePoint) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteFront(f, points); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
