// Package config loads specreport configuration: embedded defaults merged
// with an optional .specreport.toml in the working directory.
package config

import (
	_ "embed"
	"errors"
	"os"
	"path/filepath"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	reperrors "github.com/arthur-debert/specreport/pkg/errors"
	"github.com/arthur-debert/specreport/pkg/types"
)

// ConfigFileName is the per-project configuration file name
const ConfigFileName = ".specreport.toml"

//go:embed embedded/defaults.toml
var defaultConfig []byte

// rawBytesProvider implements koanf provider for raw bytes
type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New("not implemented")
}

// Load merges the embedded defaults with .specreport.toml from dir (the
// working directory when dir is empty) and maps the result onto a
// RunConfig.
func Load(dir string) (types.RunConfig, error) {
	k := koanf.New(".")

	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return types.RunConfig{}, reperrors.Wrap(err, reperrors.ErrConfigLoad, "loading default configuration")
	}

	if dir == "" {
		dir = "."
	}
	path := filepath.Join(dir, ConfigFileName)
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return types.RunConfig{}, reperrors.Wrapf(err, reperrors.ErrConfigParse, "loading %s", path)
		}
	}

	return types.RunConfig{
		OutputRoot: k.String("reports.output"),
		Formats:    k.Strings("reports.formats"),
		Title:      k.String("run.title"),
	}, nil
}

// DefaultContent returns the embedded default configuration, used by the
// gen-config command as a starting point for a project file.
func DefaultContent() string {
	return string(defaultConfig)
}
