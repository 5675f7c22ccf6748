package modules

import (
	iofs "io/fs"

	"go.trai.ch/cmake-node/internal/core/ports"
)

// NewProviderFromFS exposes newProvider for testing with custom assets.
func NewProviderFromFS(fs ports.FileSystem, cacheRoot string, files iofs.FS) *Provider {
	return newProvider(fs, cacheRoot, files)
}
