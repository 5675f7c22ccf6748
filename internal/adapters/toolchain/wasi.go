package toolchain

import (
	"context"
	"path/filepath"

	"go.trai.ch/cmake-node/internal/core/domain"
)

// FindWASISDK returns the first candidate directory that ships the WASI SDK
// CMake toolchain file, or "".
func (l *Locator) FindWASISDK(_ context.Context) string {
	for _, dir := range l.wasiCandidates() {
		if l.fs.Exists(domain.WASIToolchainFile(dir)) {
			return dir
		}
	}
	return ""
}

func (l *Locator) wasiCandidates() []string {
	var dirs []string
	for _, env := range []string{"WASI_SDK_PATH", "WASI_SDK_PREFIX"} {
		if dir := l.getenv(env); dir != "" {
			dirs = append(dirs, dir)
		}
	}

	if l.host.GOOS == "windows" {
		if dir := l.getenv("ProgramFiles"); dir != "" {
			dirs = append(dirs, filepath.Join(dir, "wasi-sdk"))
		}
		if drive := l.getenv("SystemDrive"); drive != "" {
			dirs = append(dirs, filepath.Join(drive+string(filepath.Separator), "wasi-sdk"))
		}
	} else {
		dirs = append(dirs, "/opt/wasi-sdk", "/usr/local/wasi-sdk", "/usr/share/wasi-sdk")
	}

	if l.home != "" {
		dirs = append(dirs, filepath.Join(l.home, "wasi-sdk"))
	}
	if l.host.Prefix != "" {
		dirs = append(dirs, filepath.Join(l.host.Prefix, "share", "wasi-sdk"))
	}
	return compact(dirs)
}
