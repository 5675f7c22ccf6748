package domain

import "slices"

// Platform identifies the target the build is configured for.
type Platform string

const (
	// PlatformWin32 is a native Windows build with the MSVC toolchain.
	PlatformWin32 Platform = "win32"
	// PlatformAIX is a native AIX build.
	PlatformAIX Platform = "aix"
	// PlatformOS390 is a native z/OS build.
	PlatformOS390 Platform = "os390"
	// PlatformMinGW cross-compiles for Windows with a MinGW-w64 toolchain.
	PlatformMinGW Platform = "mingw"
	// PlatformWASI cross-compiles for WebAssembly with the WASI SDK.
	PlatformWASI Platform = "wasi"
	// PlatformGeneric uses a user supplied CMake toolchain file.
	PlatformGeneric Platform = "generic"
	// PlatformNative is any other host platform (Linux, macOS, BSDs).
	PlatformNative Platform = "native"
)

// ArchUnknown is the architecture used when a custom toolchain decides it.
const ArchUnknown = "unknown"

// KnownArchs lists every architecture name accepted on the command line.
var KnownArchs = []string{
	"arm", "arm64", "ia32", "loong64", "mips", "mipsel", "ppc", "ppc64",
	"riscv64", "s390", "s390x", "x32", "x64", "wasm32", "wasm64",
}

var validArchs = map[Platform][]string{
	PlatformWin32: {"ia32", "x64", "arm", "arm64"},
	PlatformAIX:   {"ppc", "ppc64"},
	PlatformMinGW: {"ia32", "x64", "arm", "arm64"},
	PlatformWASI:  {"wasm32"},
}

var mingwPrefixes = map[string]string{
	"ia32":  "i686",
	"x64":   "x86_64",
	"arm":   "armv7",
	"arm64": "aarch64",
}

var dlltoolMachines = map[string]string{
	"ia32":  "i386",
	"x64":   "i386:x86-64",
	"arm":   "arm",
	"arm64": "arm64",
}

var libMachines = map[string]string{
	"ia32":  "X86",
	"x64":   "X64",
	"arm":   "ARM",
	"arm64": "ARM64",
}

var vsPlatforms = map[string]string{
	"ia32":  "Win32",
	"x64":   "x64",
	"arm":   "ARM",
	"arm64": "ARM64",
}

var goArchs = map[string]string{
	"386":      "ia32",
	"amd64":    "x64",
	"arm":      "arm",
	"arm64":    "arm64",
	"loong64":  "loong64",
	"mips":     "mips",
	"mipsle":   "mipsel",
	"ppc64":    "ppc64",
	"ppc64le":  "ppc64",
	"riscv64":  "riscv64",
	"s390x":    "s390x",
	"wasm":     "wasm32",
	"mips64":   "mips",
	"mips64le": "mipsel",
}

// HostPlatform maps a GOOS value to the platform a native build targets.
func HostPlatform(goos string) Platform {
	switch goos {
	case "windows":
		return PlatformWin32
	case "aix":
		return PlatformAIX
	case "zos":
		return PlatformOS390
	default:
		return PlatformNative
	}
}

// HostArch maps a GOARCH value to the architecture naming used by Node.js.
func HostArch(goarch string) string {
	if arch, ok := goArchs[goarch]; ok {
		return arch
	}
	return goarch
}

// IsKnownArch reports whether arch is a recognized architecture name.
func IsKnownArch(arch string) bool {
	return slices.Contains(KnownArchs, arch)
}

// ValidArchs returns the architectures accepted for p, or nil when any is allowed.
func (p Platform) ValidArchs() []string {
	return validArchs[p]
}

// AcceptsArch reports whether arch may be used when targeting p.
func (p Platform) AcceptsArch(arch string) bool {
	valid, restricted := validArchs[p]
	if !restricted {
		return true
	}
	return slices.Contains(valid, arch)
}

// NeedsImportLib reports whether linking an addon requires an import library
// for the host executable.
func (p Platform) NeedsImportLib() bool {
	return p == PlatformWin32 || p == PlatformMinGW
}

// IsCross reports whether p is one of the built-in cross-compilation modes.
func (p Platform) IsCross() bool {
	return p == PlatformMinGW || p == PlatformWASI
}

// MinGWPrefix returns the target triple prefix for a MinGW architecture.
func MinGWPrefix(arch string) (string, bool) {
	prefix, ok := mingwPrefixes[arch]
	return prefix, ok
}

// MinGWTool returns the name of a MinGW-w64 cross tool, e.g. x86_64-w64-mingw32-gcc.
func MinGWTool(arch, tool string) (string, bool) {
	prefix, ok := mingwPrefixes[arch]
	if !ok {
		return "", false
	}
	return prefix + "-w64-mingw32-" + tool, true
}

// DlltoolMachine returns the dlltool -m value for arch.
func DlltoolMachine(arch string) (string, bool) {
	m, ok := dlltoolMachines[arch]
	return m, ok
}

// LibMachine returns the lib.exe /MACHINE value for arch.
func LibMachine(arch string) (string, bool) {
	m, ok := libMachines[arch]
	return m, ok
}

// VSPlatform returns the Visual Studio generator platform (-A) for arch.
func VSPlatform(arch string) (string, bool) {
	p, ok := vsPlatforms[arch]
	return p, ok
}
