// Package config provides the configuration loader for mkdo.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/tidwall/gjson"
	"go.trai.ch/mkdo/internal/core/domain"
	"go.trai.ch/mkdo/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader by searching rc files and package.json.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load searches cwd and every parent directory for a configuration source.
// The first directory holding one wins. An empty Config is returned when
// nothing is found.
func (l *Loader) Load(cwd string) (*domain.Config, error) {
	dir, err := filepath.Abs(cwd)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "cwd", cwd)
	}

	for {
		for _, name := range searchPlaces {
			cfg, found, err := l.loadFile(filepath.Join(dir, name))
			if err != nil {
				return nil, err
			}
			if found {
				return cfg, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return &domain.Config{}, nil
		}
		dir = parent
	}
}

func (l *Loader) loadFile(path string) (*domain.Config, bool, error) {
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) || (err == nil && info.IsDir()) {
		return nil, false, nil
	}

	data, err := os.ReadFile(path) //nolint:gosec // search places are fixed names
	if err != nil {
		return nil, false, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "file", path)
	}

	if filepath.Base(path) == PackageJSON {
		return l.loadPackageJSON(path, data)
	}

	var mf Mkdofile
	if err := yaml.Unmarshal(data, &mf); err != nil {
		return nil, false, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "file", path)
	}
	return mf.toDomain(path), true, nil
}

// loadPackageJSON reads the "mkdo" property. A package.json without it is skipped.
func (l *Loader) loadPackageJSON(path string, data []byte) (*domain.Config, bool, error) {
	if !gjson.ValidBytes(data) {
		return nil, false, zerr.With(domain.ErrConfigParseFailed, "file", path)
	}

	prop := gjson.GetBytes(data, PackageKey)
	if !prop.Exists() {
		return nil, false, nil
	}
	if !prop.IsObject() {
		l.Logger.Warn("ignoring non-object \"" + PackageKey + "\" property in " + path)
		return nil, false, nil
	}

	var mf Mkdofile
	if err := yaml.Unmarshal([]byte(prop.Raw), &mf); err != nil {
		return nil, false, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "file", path)
	}
	return mf.toDomain(path), true, nil
}
