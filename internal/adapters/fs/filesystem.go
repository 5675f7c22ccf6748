// Package fs provides the filesystem adapter used by the lifecycle commands.
package fs

import (
	"errors"
	iofs "io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"go.trai.ch/cmake-node/internal/core/domain"
	"go.trai.ch/zerr"
)

const (
	// DefaultRetries is the number of extra attempts made on transient errors.
	DefaultRetries = 5

	retryDelay = 100 * time.Millisecond
)

// FileSystem implements ports.FileSystem on the local disk.
type FileSystem struct {
	retries int
	sleep   func(time.Duration)
}

// New creates a FileSystem with the default retry policy.
func New() *FileSystem {
	return &FileSystem{
		retries: DefaultRetries,
		sleep:   time.Sleep,
	}
}

// Exists reports whether path exists.
func (f *FileSystem) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// MkdirAll creates path and any missing parents.
func (f *FileSystem) MkdirAll(path string) error {
	if err := os.MkdirAll(path, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create directory"), "path", path)
	}
	return nil
}

// WriteFile writes data to path, creating parent directories.
func (f *FileSystem) WriteFile(path string, data []byte) error {
	if err := f.MkdirAll(filepath.Dir(path)); err != nil {
		return err
	}
	if err := os.WriteFile(path, data, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write file"), "path", path)
	}
	return nil
}

// List returns the sorted paths of regular files in dir whose names end in suffix.
// A missing dir yields no entries.
func (f *FileSystem) List(dir, suffix string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to read directory"), "path", dir)
	}

	var paths []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), suffix) {
			continue
		}
		paths = append(paths, filepath.Join(dir, e.Name()))
	}
	slices.Sort(paths)
	return paths, nil
}
