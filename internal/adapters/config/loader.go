// Package config provides the configuration loader for ladder.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/ladder/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct{}

// NewLoader creates a new Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads the configuration file at path. A missing file yields the
// defaults. Relative paths in the file are resolved against its directory.
func (l *Loader) Load(path string) (*domain.Config, error) {
	cfg := domain.DefaultConfig()

	var file Ladderfile
	found, err := readAndUnmarshalYAML(path, &file)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}
	if !found {
		return cfg, nil
	}

	base := filepath.Dir(path)
	if file.Dictionary != "" {
		cfg.DictionaryPath = resolvePath(base, file.Dictionary)
	}
	if file.Cache.Dir != "" {
		cfg.CacheDir = resolvePath(base, file.Cache.Dir)
	}
	if file.Cache.Backend != "" {
		cfg.CacheBackend = file.Cache.Backend
	}
	if file.Search.MaxPaths != nil {
		cfg.Limits.MaxPaths = *file.Search.MaxPaths
	}
	if file.Search.MaxDepth != nil {
		cfg.Limits.MaxDepth = *file.Search.MaxDepth
	}
	if file.Log.Format != "" {
		cfg.LogFormat = file.Log.Format
	}

	if err := validate(cfg); err != nil {
		return nil, zerr.With(err, "path", path)
	}
	return cfg, nil
}

func validate(cfg *domain.Config) error {
	switch cfg.CacheBackend {
	case domain.CacheBackendFile, domain.CacheBackendBadger:
	default:
		return zerr.With(zerr.Wrap(domain.ErrUnknownCacheBackend, domain.ErrConfigParseFailed.Error()), "backend", cfg.CacheBackend)
	}

	switch cfg.LogFormat {
	case domain.LogFormatPretty, domain.LogFormatJSON:
	default:
		return zerr.With(zerr.Wrap(domain.ErrUnknownLogFormat, domain.ErrConfigParseFailed.Error()), "format", cfg.LogFormat)
	}

	if !cfg.Limits.Valid() {
		err := zerr.Wrap(domain.ErrInvalidPathLimits, domain.ErrConfigParseFailed.Error())
		err = zerr.With(err, "max_paths", cfg.Limits.MaxPaths)
		return zerr.With(err, "max_depth", cfg.Limits.MaxDepth)
	}
	return nil
}

// readAndUnmarshalYAML reports false when the file does not exist.
func readAndUnmarshalYAML[T any](configPath string, target *T) (bool, error) {
	// #nosec G304 -- configPath is chosen by the user
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	if parseErr := yaml.Unmarshal(configFile, target); parseErr != nil {
		return false, zerr.Wrap(parseErr, domain.ErrConfigParseFailed.Error())
	}

	return true, nil
}

func resolvePath(base, path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(base, path)
}
