// Package config reads the optional per-project cmake-node.yaml file.
package config

import (
	"bytes"
	"errors"
	"io"
	iofs "io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/cmake-node/internal/core/domain"
	"go.trai.ch/cmake-node/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load reads cmake-node.yaml from root. A missing file yields nil defaults.
func (l *Loader) Load(root string) (*domain.ProjectDefaults, error) {
	path := filepath.Join(root, domain.ProjectFileName)

	data, err := os.ReadFile(path) //nolint:gosec // path is derived from the project root
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(domain.ErrProjectFileReadFailed, err.Error()), "path", path)
	}

	var file ProjectFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return nil, zerr.With(zerr.Wrap(domain.ErrProjectFileParseFailed, err.Error()), "path", path)
	}

	defaults, err := toDefaults(&file)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}

	if l.Logger != nil {
		l.Logger.Info("Using project defaults from " + domain.ProjectFileName)
	}
	return defaults, nil
}

func toDefaults(file *ProjectFile) (*domain.ProjectDefaults, error) {
	defaults := &domain.ProjectDefaults{
		Generator:  strings.TrimSpace(file.Generator),
		CMake:      file.CMake,
		Toolchain:  file.Toolchain,
		WASISDK:    file.WASISDK,
		Production: file.Production,
		Defines:    file.Defines,
	}

	if file.Config != "" {
		bt, err := domain.ParseBuildType(file.Config)
		if err != nil {
			return nil, zerr.Wrap(zerr.With(err, "key", "config"), "Invalid "+domain.ProjectFileName)
		}
		defaults.BuildType = bt
	}

	if file.Arch != "" {
		if !domain.IsKnownArch(file.Arch) {
			return nil, zerr.With(
				zerr.Wrap(domain.ErrInvalidArch, "Invalid architecture: "+file.Arch),
				"key", "arch",
			)
		}
		defaults.Arch = file.Arch
	}

	for name := range file.Defines {
		if name == "" || strings.ContainsAny(name, "= \t") {
			return nil, zerr.With(
				zerr.Wrap(domain.ErrConfig, "Invalid define name: "+name),
				"key", "defines",
			)
		}
	}

	return defaults, nil
}
