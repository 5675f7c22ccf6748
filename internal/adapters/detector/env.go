// Package detector inspects the machine the tool runs on.
package detector

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"go.trai.ch/cmake-node/internal/core/domain"
	"go.trai.ch/zerr"
	"golang.org/x/term"
)

// Probe holds the lookups DetectHost relies on so they can be replaced in tests.
type Probe struct {
	GOOS       string
	GOARCH     string
	Getwd      func() (string, error)
	Executable func() (string, error)
	HomeDir    func() (string, error)
	Getenv     func(string) string
	LookPath   func(string) (string, error)
}

// SystemProbe returns a Probe backed by the running process.
func SystemProbe() Probe {
	return Probe{
		GOOS:       runtime.GOOS,
		GOARCH:     runtime.GOARCH,
		Getwd:      os.Getwd,
		Executable: os.Executable,
		HomeDir:    os.UserHomeDir,
		Getenv:     os.Getenv,
		LookPath:   exec.LookPath,
	}
}

// DetectHost collects the host facts configuration resolution depends on.
func DetectHost(p Probe) (domain.Host, error) {
	cwd, err := p.Getwd()
	if err != nil {
		return domain.Host{}, zerr.Wrap(err, "failed to get working directory")
	}

	home, err := p.HomeDir()
	if err != nil {
		home = cwd
	}

	return domain.Host{
		GOOS:      p.GOOS,
		Arch:      domain.HostArch(p.GOARCH),
		NodeBin:   nodeBinary(p),
		Prefix:    installPrefix(p),
		Cwd:       cwd,
		CacheRoot: domain.CacheRoot(p.GOOS, p.Getenv, home),
	}, nil
}

// nodeBinary returns the basename of the Node.js executable on PATH.
func nodeBinary(p Probe) string {
	if path, err := p.LookPath("node"); err == nil {
		return filepath.Base(path)
	}
	if p.GOOS == "windows" {
		return "node.exe"
	}
	return "node"
}

// installPrefix returns the directory above the one holding the executable,
// e.g. /usr/local for /usr/local/bin/cmake-node.
func installPrefix(p Probe) string {
	exe, err := p.Executable()
	if err != nil {
		return ""
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(filepath.Dir(exe))
}

// IsInteractive reports whether stdin and stdout are attached to a terminal
// outside of CI.
func IsInteractive() bool {
	if ci := os.Getenv("CI"); ci == "true" || ci == "1" {
		return false
	}
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd())) //nolint:gosec // fds fit in int
}
