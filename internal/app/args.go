package app

import (
	"maps"
	"path/filepath"
	"slices"
	"strings"

	"go.trai.ch/cmake-node/internal/core/domain"
)

const modulePathVar = "CMAKE_MODULE_PATH"

// nodeDefines are the files handed to NodeJS.cmake.
type nodeDefines struct {
	Def string
	Lib string
}

// configureArgs builds the CMake command line for a configure run.
func configureArgs(cfg *domain.Config, modulesDir string, node nodeDefines) []string {
	userPaths, rest := extractModulePath(cfg.Passthrough)

	args := []string{cfg.Root}
	args = append(args, platformDefines(cfg)...)

	if cfg.Platform == domain.PlatformWin32 && usesVSPlatform(cfg.Generator) {
		if platform, ok := domain.VSPlatform(cfg.Arch); ok {
			args = append(args, "-A", platform)
		}
	}
	if cfg.Generator != "" {
		args = append(args, "-G", cfg.Generator)
	}
	if !cfg.MultiConfig {
		args = append(args, define("CMAKE_BUILD_TYPE", string(cfg.BuildType)))
	}

	modulePath := append([]string{filepath.ToSlash(modulesDir)}, userPaths...)
	args = append(args, define(modulePathVar, strings.Join(modulePath, ";")))

	args = append(args,
		define("NODE_BIN", cfg.NodeBin),
		define("NODE_DEF", filepath.ToSlash(node.Def)),
	)
	if node.Lib != "" {
		args = append(args, define("NODE_LIB", filepath.ToSlash(node.Lib)))
	}
	if cfg.NodeExp != "" {
		args = append(args, define("NODE_EXP", filepath.ToSlash(cfg.NodeExp)))
	}
	args = append(args,
		define("NODE_ARCH", cfg.Arch),
		define("NODE_PLATFORM", string(cfg.Platform)),
	)

	for _, name := range slices.Sorted(maps.Keys(cfg.Defines)) {
		args = append(args, define(name, cfg.Defines[name]))
	}

	if passesToConfigure(cfg.Command) {
		args = append(args, rest...)
	}
	return args
}

func platformDefines(cfg *domain.Config) []string {
	switch cfg.Platform {
	case domain.PlatformGeneric:
		return []string{define("CMAKE_TOOLCHAIN_FILE", filepath.ToSlash(cfg.Toolchain))}
	case domain.PlatformMinGW:
		prefix, _ := domain.MinGWPrefix(cfg.Arch)
		gcc, _ := domain.MinGWTool(cfg.Arch, "gcc")
		gxx, _ := domain.MinGWTool(cfg.Arch, "g++")
		windres, _ := domain.MinGWTool(cfg.Arch, "windres")
		return []string{
			define("CMAKE_SYSTEM_NAME", "Windows"),
			define("CMAKE_SYSTEM_PROCESSOR", prefix),
			define("CMAKE_C_COMPILER", gcc),
			define("CMAKE_CXX_COMPILER", gxx),
			define("CMAKE_RC_COMPILER", windres),
		}
	case domain.PlatformWASI:
		return []string{
			define("CMAKE_TOOLCHAIN_FILE", filepath.ToSlash(domain.WASIToolchainFile(cfg.WASISDK))),
			define("WASI_SDK_PREFIX", filepath.ToSlash(cfg.WASISDK)),
		}
	default:
		return nil
	}
}

// usesVSPlatform reports whether the generator takes a platform via -A.
// An empty generator on Windows means CMake picks Visual Studio.
func usesVSPlatform(generator string) bool {
	return generator == "" || strings.HasPrefix(generator, "Visual Studio")
}

func passesToConfigure(command string) bool {
	return command == "configure" || command == "reconfigure" || command == "rebuild"
}

func define(name, value string) string {
	return "-D" + name + "=" + value
}

// extractModulePath removes CMAKE_MODULE_PATH definitions from args and
// returns their values split on ';' along with the remaining arguments.
// It understands "-D NAME=value", "-DNAME=value" and "-DNAME:TYPE=value".
func extractModulePath(args []string) (paths, rest []string) {
	for i := 0; i < len(args); i++ {
		arg := args[i]

		var def string
		switch {
		case arg == "-D" && i+1 < len(args):
			def = args[i+1]
			if value, ok := modulePathValue(def); ok {
				paths = appendPaths(paths, value)
				i++
				continue
			}
		case strings.HasPrefix(arg, "-D"):
			def = arg[2:]
			if value, ok := modulePathValue(def); ok {
				paths = appendPaths(paths, value)
				continue
			}
		}
		rest = append(rest, arg)
	}
	return paths, rest
}

func modulePathValue(def string) (string, bool) {
	name, value, ok := strings.Cut(def, "=")
	if !ok {
		return "", false
	}
	name, _, _ = strings.Cut(name, ":")
	if name != modulePathVar {
		return "", false
	}
	return value, true
}

func appendPaths(paths []string, value string) []string {
	for _, p := range strings.Split(value, ";") {
		if p != "" {
			paths = append(paths, p)
		}
	}
	return paths
}
