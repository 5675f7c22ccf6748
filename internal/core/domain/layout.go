package domain

import (
	"path/filepath"
	"regexp"
)

const (
	// ToolName is the name of the executable and of its cache folder.
	ToolName = "cmake-node"

	// BuildDirName is the name of the build tree under the project root.
	BuildDirName = "build"

	// CMakeCacheFileName marks a configured build tree.
	CMakeCacheFileName = "CMakeCache.txt"

	// CMakeListsFileName marks a CMake project root.
	CMakeListsFileName = "CMakeLists.txt"

	// ProjectFileName is the optional per-project defaults file.
	ProjectFileName = "cmake-node.yaml"

	// ImportLibExt is the extension of cached import libraries.
	ImportLibExt = ".lib"

	// ModulesDirPrefix prefixes the directory the bundled CMake modules are extracted to.
	ModulesDirPrefix = "modules-"

	// ABIVersion is the N-API version the bundled definitions file exports.
	ABIVersion = 8

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// productionKeep matches the files a production clean leaves behind.
var productionKeep = regexp.MustCompile(`\.(dll|dylib|node|wasm|so(\.[0-9]+)*)$`)

// IsProductionArtifact reports whether a production clean must keep the file.
func IsProductionArtifact(name string) bool {
	return productionKeep.MatchString(filepath.Base(name))
}

// WASIToolchainFile returns the CMake toolchain file inside a WASI SDK root.
func WASIToolchainFile(sdk string) string {
	return filepath.Join(sdk, "share", "cmake", "wasi-sdk.cmake")
}

// CacheRoot returns the per-user cache directory for the tool.
// getenv and home are injected so the lookup can be tested for every OS.
func CacheRoot(goos string, getenv func(string) string, home string) string {
	var base string
	switch goos {
	case "windows":
		base = getenv("LOCALAPPDATA")
		if base == "" {
			base = getenv("APPDATA")
		}
		if base == "" {
			base = filepath.Join(home, "AppData", "Local")
		}
	case "darwin", "ios":
		base = filepath.Join(home, "Library", "Caches")
	default:
		base = getenv("XDG_CACHE_HOME")
		if base == "" || !filepath.IsAbs(base) {
			base = filepath.Join(home, ".cache")
		}
	}
	return filepath.Join(base, ToolName)
}
