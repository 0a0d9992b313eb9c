package frontio

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/go-logr/logr"
	"github.com/mihai-snyk/moo-quality/pkg/multiobjective/framework"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadFront(t *testing.T) {
	in := "0.0 1.0\n\n  0.5\t0.5  \n1e0 0\n"
	f, err := ReadFront(strings.NewReader(in), "inline")
	require.NoError(t, err)
	assert.Equal(t, 3, f.Size())
	assert.Equal(t, 2, f.Dimension())
	assert.Equal(t, []framework.ObjectiveSpacePoint{{0, 1}, {0.5, 0.5}, {1, 0}}, f.Points())
}

func TestReadFrontErrors(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		wantLine int
		wantErr  error
	}{
		{
			name:     "inconsistent width",
			in:       "0 1\n1 0 3\n",
			wantLine: 2,
			wantErr:  ErrRowWidth,
		},
		{
			name:     "malformed number",
			in:       "0 1\n\n0.5 abc\n",
			wantLine: 3,
			wantErr:  strconv.ErrSyntax,
		},
		{
			name:     "not a number",
			in:       "NaN 1\n",
			wantLine: 1,
			wantErr:  ErrNonFinite,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadFront(strings.NewReader(tt.in), "front.txt")
			require.Error(t, err)

			var perr *ParseError
			require.True(t, errors.As(err, &perr), "want ParseError, got %T", err)
			assert.Equal(t, "front.txt", perr.Source)
			assert.Equal(t, tt.wantLine, perr.Line)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestReadFrontEmpty(t *testing.T) {
	_, err := ReadFront(strings.NewReader("\n  \n"), "empty.txt")
	assert.ErrorIs(t, err, framework.ErrEmptyFront)
}

func TestWriteFrontRoundTrip(t *testing.T) {
	points := []framework.ObjectiveSpacePoint{{0, 1}, {0.1, 0.7236067977499789}, {1e-9, -3}}

	var buf bytes.Buffer
	require.NoError(t, WriteFront(&buf, points))
	assert.Equal(t, "0 1\n0.1 0.7236067977499789\n1e-09 -3\n", buf.String())

	f, err := ReadFront(&buf, "buffer")
	require.NoError(t, err)
	assert.Equal(t, points, f.Points())
}

func TestLoaderCachesParsedFronts(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ref.txt")
	require.NoError(t, SaveFront(path, []framework.ObjectiveSpacePoint{{0, 1}, {1, 0}}))

	l := NewLoader(logr.Discard(), time.Minute)
	first, err := l.Load(path)
	require.NoError(t, err)
	second, err := l.Load(path)
	require.NoError(t, err)
	assert.Same(t, first, second)
	assert.Equal(t, 1, l.Len())

	// A rewritten file with a different size is parsed again.
	require.NoError(t, SaveFront(path, []framework.ObjectiveSpacePoint{{0, 1}, {0.5, 0.5}, {1, 0}}))
	third, err := l.Load(path)
	require.NoError(t, err)
	assert.NotSame(t, first, third)
	assert.Equal(t, 3, third.Size())
}

func TestLoaderErrors(t *testing.T) {
	l := NewLoader(logr.Discard(), 0)

	_, err := l.Load(filepath.Join(t.TempDir(), "missing.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(t.TempDir(), "bad.txt")
	require.NoError(t, os.WriteFile(bad, []byte("1 2\n3\n"), 0o644))
	_, err = l.Load(bad)
	var perr *ParseError
	assert.True(t, errors.As(err, &perr))
	assert.Equal(t, 0, l.Len())
}
