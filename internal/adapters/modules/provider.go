// Package modules ships the CMake modules addons are built with and extracts
// them into the user cache.
package modules

import (
	"context"
	"embed"
	"fmt"
	iofs "io/fs"
	"path/filepath"
	"sync"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/cmake-node/internal/core/domain"
	"go.trai.ch/cmake-node/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	// DefFileName is the bundled N-API definitions file.
	DefFileName = "node.def"

	// IncludeDirName holds the bundled N-API headers.
	IncludeDirName = "include"
)

//go:embed assets
var assets embed.FS

var _ ports.ModuleProvider = (*Provider)(nil)

// Provider implements ports.ModuleProvider. Files are written at most once per
// Provider, into a directory named after the hash of their contents.
type Provider struct {
	fs        ports.FileSystem
	cacheRoot string
	files     iofs.FS

	extract func() (string, error)
}

// NewProvider creates a Provider extracting into cacheRoot.
func NewProvider(fs ports.FileSystem, cacheRoot string) *Provider {
	return newProvider(fs, cacheRoot, mustSub(assets, "assets"))
}

func newProvider(fs ports.FileSystem, cacheRoot string, files iofs.FS) *Provider {
	p := &Provider{fs: fs, cacheRoot: cacheRoot, files: files}
	p.extract = sync.OnceValues(p.materialize)
	return p
}

// Dir returns the directory holding NodeJS.cmake.
func (p *Provider) Dir(_ context.Context) (string, error) {
	return p.extract()
}

// DefFile returns the path of the bundled node.def.
func (p *Provider) DefFile(ctx context.Context) (string, error) {
	dir, err := p.Dir(ctx)
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, DefFileName), nil
}

func (p *Provider) materialize() (string, error) {
	names, err := assetNames(p.files)
	if err != nil {
		return "", zerr.Wrap(err, "failed to list bundled modules")
	}

	contents := make(map[string][]byte, len(names))
	hasher := xxhash.New()
	for _, name := range names {
		data, err := iofs.ReadFile(p.files, name)
		if err != nil {
			return "", zerr.With(zerr.Wrap(err, "failed to read bundled module"), "name", name)
		}
		contents[name] = data

		_, _ = hasher.WriteString(name)
		_, _ = hasher.Write([]byte{0})
		_, _ = hasher.Write(data)
		_, _ = hasher.Write([]byte{0})
	}

	dir := filepath.Join(p.cacheRoot, fmt.Sprintf("%s%016x", domain.ModulesDirPrefix, hasher.Sum64()))
	for _, name := range names {
		path := filepath.Join(dir, filepath.FromSlash(name))
		if p.fs.Exists(path) {
			continue
		}
		if err := p.fs.WriteFile(path, contents[name]); err != nil {
			return "", zerr.With(cacheError(dir), "cause", err.Error())
		}
	}
	return dir, nil
}

// assetNames returns every regular file under files in lexical order.
func assetNames(files iofs.FS) ([]string, error) {
	var names []string
	err := iofs.WalkDir(files, ".", func(name string, d iofs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.Type().IsRegular() {
			names = append(names, name)
		}
		return nil
	})
	return names, err
}

func cacheError(dir string) error {
	return zerr.With(zerr.Wrap(domain.ErrCacheCreateFailed, "Could not create cache directory: "+dir), "path", dir)
}

func mustSub(fsys iofs.FS, dir string) iofs.FS {
	sub, err := iofs.Sub(fsys, dir)
	if err != nil {
		panic(err)
	}
	return sub
}
