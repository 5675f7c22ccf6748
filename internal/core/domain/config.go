package domain

import (
	"path/filepath"
	"strings"

	"go.trai.ch/zerr"
)

// BuildType is the CMake build configuration.
type BuildType string

const (
	// BuildDebug builds without optimizations and with debug info.
	BuildDebug BuildType = "Debug"
	// BuildRelease builds with optimizations.
	BuildRelease BuildType = "Release"
	// BuildMinSizeRel optimizes for size.
	BuildMinSizeRel BuildType = "MinSizeRel"
	// BuildRelWithDebInfo builds with optimizations and debug info.
	BuildRelWithDebInfo BuildType = "RelWithDebInfo"
)

// BuildTypes lists the accepted build types.
var BuildTypes = []BuildType{BuildDebug, BuildRelease, BuildMinSizeRel, BuildRelWithDebInfo}

// ParseBuildType matches s case-insensitively against the known build types.
func ParseBuildType(s string) (BuildType, error) {
	for _, bt := range BuildTypes {
		if strings.EqualFold(string(bt), s) {
			return bt, nil
		}
	}
	return "", zerr.With(zerr.Wrap(ErrInvalidBuildType, "Invalid build type: "+s), "value", s)
}

// Options holds the partially filled configuration produced by argument parsing.
// Zero values mean "not given".
type Options struct {
	BuildType   BuildType
	CMake       string
	Root        string
	Production  bool
	NodeBin     string
	NodeDef     string
	NodeLib     string
	NodeExp     string
	Platform    Platform
	Toolchain   string
	Generator   string
	Arch        string
	WASISDK     string
	Command     string
	Passthrough []string

	Version bool
	Help    bool
}

// ProjectDefaults are optional per-project values read from cmake-node.yaml.
type ProjectDefaults struct {
	BuildType  BuildType
	Generator  string
	Arch       string
	CMake      string
	Toolchain  string
	WASISDK    string
	Production bool
	Defines    map[string]string
}

// Config is the fully resolved build intent for one invocation.
type Config struct {
	BuildType   BuildType
	CMake       string
	Root        string
	Production  bool
	NodeBin     string
	NodeDef     string
	NodeLib     string
	NodeExp     string
	Platform    Platform
	Toolchain   string
	Generator   string
	MultiConfig bool
	Arch        string
	WASISDK     string
	Command     string
	Passthrough []string
	Defines     map[string]string
}

// BuildRoot is the directory holding every build tree of the project.
func (c *Config) BuildRoot() string {
	return filepath.Join(c.Root, BuildDirName)
}

// BuildDir is the directory CMake is configured in.
// Multi-config generators share one tree; single-config ones get one per build type.
func (c *Config) BuildDir() string {
	if c.MultiConfig {
		return c.BuildRoot()
	}
	return filepath.Join(c.BuildRoot(), string(c.BuildType))
}

// CachePath is the CMake cache file whose presence marks a configured tree.
func (c *Config) CachePath() string {
	return filepath.Join(c.BuildDir(), CMakeCacheFileName)
}

// ListsPath is the CMakeLists.txt expected at the project root.
func (c *Config) ListsPath() string {
	return filepath.Join(c.Root, CMakeListsFileName)
}

// Host describes the machine the tool runs on.
type Host struct {
	GOOS string
	Arch string
	// NodeBin is the basename of the Node.js executable found on PATH.
	NodeBin string
	// Prefix is the install prefix of the running executable.
	Prefix    string
	Cwd       string
	CacheRoot string
}

// Invocation describes one external process to run.
type Invocation struct {
	Name string
	Args []string
	Dir  string
	Env  []string
}
