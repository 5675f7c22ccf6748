package ports

import "context"

// ModuleProvider exposes the CMake modules shipped with the tool.
//
//go:generate mockgen -source=modules.go -destination=mocks/mock_modules.go -package=mocks
type ModuleProvider interface {
	// Dir returns the directory to prepend to CMAKE_MODULE_PATH.
	Dir(ctx context.Context) (string, error)

	// DefFile returns the default module definitions file for the host executable.
	DefFile(ctx context.Context) (string, error)
}
