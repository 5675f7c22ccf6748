package ports

import "context"

// Toolchain locates the external tools a build needs.
//
//go:generate mockgen -source=toolchain.go -destination=mocks/mock_toolchain.go -package=mocks
type Toolchain interface {
	// FindCMake returns a usable cmake executable, falling back to the bare name.
	FindCMake(ctx context.Context) string

	// FindLinker returns the path of lib.exe belonging to the compiler cmake
	// selects by default. ok is false when it cannot be determined.
	FindLinker(ctx context.Context, cmake string) (path string, ok bool)

	// FindWASISDK returns the root of an installed WASI SDK, or "".
	FindWASISDK(ctx context.Context) string

	// LookPath resolves an executable name against PATH.
	LookPath(name string) (string, error)
}
