// pkg/generator/factory_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: in-memory filesystem
// PURPOSE: Test format resolution and output-root rotation

package generator_test

import (
	iofs "io/fs"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/specreport/pkg/errors"
	"github.com/arthur-debert/specreport/pkg/filesystem"
	"github.com/arthur-debert/specreport/pkg/format"
	"github.com/arthur-debert/specreport/pkg/generator"
	"github.com/arthur-debert/specreport/pkg/types"
)

func TestResolveFormats(t *testing.T) {
	tests := []struct {
		name    string
		input   []string
		want    []format.Format
		wantErr bool
	}{
		{
			name:  "html pulls in slides before it",
			input: []string{"html"},
			want:  []format.Format{format.Slides, format.HTML},
		},
		{
			name:  "slides stay where explicitly requested",
			input: []string{"html", "slides"},
			want:  []format.Format{format.HTML, format.Slides},
		},
		{
			name:  "companion inserted immediately before html",
			input: []string{"json", "html", "xml"},
			want:  []format.Format{format.JSON, format.Slides, format.HTML, format.XML},
		},
		{
			name:  "no html no companion",
			input: []string{"json", "markdown"},
			want:  []format.Format{format.JSON, format.Markdown},
		},
		{
			name:  "duplicates dropped",
			input: []string{"json", "json", "xml"},
			want:  []format.Format{format.JSON, format.XML},
		},
		{
			name:  "empty request",
			input: nil,
			want:  nil,
		},
		{
			name:    "unknown format",
			input:   []string{"pdf"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := generator.ResolveFormats(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsErrorCode(err, errors.ErrFormatUnknown))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGeneratorsForNoOutputRoot(t *testing.T) {
	gens, err := generator.GeneratorsFor(types.RunConfig{Formats: []string{"html"}}, generator.Deps{})
	require.NoError(t, err)
	assert.Nil(t, gens, "no output root configured means no generators")
}

func TestGeneratorsForFormatOrder(t *testing.T) {
	fs := filesystem.NewMemory()
	cfg := types.RunConfig{OutputRoot: "out", Formats: []string{"html", "json"}}

	gens, err := generator.GeneratorsFor(cfg, generator.Deps{FS: fs})
	require.NoError(t, err)

	var got []format.Format
	for _, g := range gens {
		got = append(got, g.Format())
	}
	assert.Equal(t, []format.Format{format.Slides, format.HTML, format.JSON}, got)
}

func TestGeneratorsForRotatesExistingRoot(t *testing.T) {
	fs := filesystem.NewMemory()
	require.NoError(t, fs.MkdirAll(filepath.Join("out", "html"), 0755))
	require.NoError(t, fs.WriteFile(filepath.Join("out", "html", "index.html"), []byte("old run"), 0644))

	now := time.UnixMilli(1700000000123)
	cfg := types.RunConfig{OutputRoot: "out", Formats: []string{"json"}}
	deps := generator.Deps{FS: fs, Now: func() time.Time { return now }}

	_, err := generator.GeneratorsFor(cfg, deps)
	require.NoError(t, err)

	// Prior contents live untouched under the timestamped sibling
	rotated := "out-1700000000123"
	data, err := fs.ReadFile(filepath.Join(rotated, "html", "index.html"))
	require.NoError(t, err)
	assert.Equal(t, "old run", string(data))

	// The active root is fresh
	_, err = fs.Stat("out")
	require.NoError(t, err)
	_, err = fs.Stat(filepath.Join("out", "html", "index.html"))
	assert.Error(t, err, "rotation must not copy prior contents into the new root")
}

func TestGeneratorsForFreshRootNoRotation(t *testing.T) {
	fs := filesystem.NewMemory()
	now := time.UnixMilli(42)
	cfg := types.RunConfig{OutputRoot: "out", Formats: []string{"json"}}
	deps := generator.Deps{FS: fs, Now: func() time.Time { return now }}

	_, err := generator.GeneratorsFor(cfg, deps)
	require.NoError(t, err)

	_, err = fs.Stat("out")
	require.NoError(t, err)
	_, err = fs.Stat("out-42")
	assert.Error(t, err, "a fresh root must not be rotated")
}

// statDeniedFS fails every Stat with a permission error, everything else
// behaves like the wrapped filesystem.
type statDeniedFS struct {
	types.FS
}

func (statDeniedFS) Stat(name string) (iofs.FileInfo, error) {
	return nil, &iofs.PathError{Op: "stat", Path: name, Err: iofs.ErrPermission}
}

func TestGeneratorsForStatFailureSurfacesAsRotateError(t *testing.T) {
	fs := statDeniedFS{FS: filesystem.NewMemory()}
	cfg := types.RunConfig{OutputRoot: "out", Formats: []string{"json"}}

	gens, err := generator.GeneratorsFor(cfg, generator.Deps{FS: fs})
	require.Error(t, err)
	assert.Nil(t, gens)
	assert.True(t, errors.IsErrorCode(err, errors.ErrReportRotate),
		"an unreadable root must fail rotation, not masquerade as a missing one")
}

func TestGeneratorsForUnknownFormat(t *testing.T) {
	fs := filesystem.NewMemory()
	cfg := types.RunConfig{OutputRoot: "out", Formats: []string{"pdf"}}

	_, err := generator.GeneratorsFor(cfg, generator.Deps{FS: fs})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrFormatUnknown))
}
