// Package toolchain locates cmake, lib.exe, MinGW tools and the WASI SDK.
package toolchain

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"slices"

	"go.trai.ch/cmake-node/internal/core/domain"
	"go.trai.ch/cmake-node/internal/core/ports"
)

// Locator implements ports.Toolchain by probing PATH and well-known install
// prefixes.
type Locator struct {
	executor ports.Executor
	fs       ports.FileSystem
	host     domain.Host
	getenv   func(string) string
	lookPath func(string) (string, error)
	home     string
}

// NewLocator creates a Locator for host.
func NewLocator(executor ports.Executor, fs ports.FileSystem, host domain.Host) *Locator {
	home, _ := os.UserHomeDir()
	return &Locator{
		executor: executor,
		fs:       fs,
		host:     host,
		getenv:   os.Getenv,
		lookPath: exec.LookPath,
		home:     home,
	}
}

// WithEnv replaces the environment lookup. This is primarily used for testing.
func (l *Locator) WithEnv(getenv func(string) string, home string) *Locator {
	l.getenv = getenv
	l.home = home
	return l
}

// WithLookPath replaces the PATH lookup. This is primarily used for testing.
func (l *Locator) WithLookPath(lookPath func(string) (string, error)) *Locator {
	l.lookPath = lookPath
	return l
}

// FindCMake returns "cmake" when it runs from PATH, otherwise the first
// install prefix containing it, otherwise the bare name.
func (l *Locator) FindCMake(ctx context.Context) string {
	name := l.exe("cmake")
	if l.runs(ctx, name) {
		return name
	}

	for _, prefix := range l.cmakePrefixes() {
		candidate := filepath.Join(prefix, "bin", name)
		if l.fs.Exists(candidate) {
			return candidate
		}
	}
	return name
}

// LookPath resolves name against PATH.
func (l *Locator) LookPath(name string) (string, error) {
	return l.lookPath(name)
}

// runs reports whether name --version exits cleanly.
func (l *Locator) runs(ctx context.Context, name string) bool {
	_, err := l.executor.Output(ctx, domain.Invocation{Name: name, Args: []string{"--version"}})
	return err == nil
}

func (l *Locator) exe(name string) string {
	if l.host.GOOS == "windows" {
		return name + ".exe"
	}
	return name
}

func (l *Locator) cmakePrefixes() []string {
	var prefixes []string
	if l.host.Prefix != "" {
		prefixes = append(prefixes, l.host.Prefix)
	}
	if l.host.GOOS == "windows" {
		for _, env := range []string{"ProgramW6432", "ProgramFiles", "ProgramFiles(x86)"} {
			if dir := l.getenv(env); dir != "" {
				prefixes = append(prefixes, filepath.Join(dir, "CMake"))
			}
		}
		if dir := l.getenv("LOCALAPPDATA"); dir != "" {
			prefixes = append(prefixes, filepath.Join(dir, "Programs", "CMake"))
		}
		if dir := l.getenv("USERPROFILE"); dir != "" {
			prefixes = append(prefixes, filepath.Join(dir, "scoop", "apps", "cmake", "current"))
		}
	} else {
		prefixes = append(prefixes,
			"/usr/local",
			"/opt/homebrew",
			"/opt/local",
			"/usr",
			"/snap",
		)
	}
	return compact(prefixes)
}

// compact drops duplicates while keeping the first occurrence.
func compact(paths []string) []string {
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		if !slices.Contains(out, p) {
			out = append(out, p)
		}
	}
	return out
}
