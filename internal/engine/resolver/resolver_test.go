package resolver_test

import (
	"context"
	"errors"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/cmake-node/internal/core/domain"
	"go.trai.ch/cmake-node/internal/core/ports/mocks"
	"go.trai.ch/cmake-node/internal/engine/resolver"
	"go.uber.org/mock/gomock"
)

var linuxHost = domain.Host{GOOS: "linux", Arch: "x64", NodeBin: "node", Cwd: "/work/addon"}

var windowsHost = domain.Host{GOOS: "windows", Arch: "x64", NodeBin: "node.exe", Cwd: "/work/addon"}

func newResolver(t *testing.T, host domain.Host) (*resolver.Resolver, *mocks.MockToolchain) {
	t.Helper()
	ctrl := gomock.NewController(t)
	tc := mocks.NewMockToolchain(ctrl)
	return resolver.New(host, tc), tc
}

func TestResolve_LinuxDefaults(t *testing.T) {
	r, _ := newResolver(t, linuxHost)

	cfg, err := r.Resolve(context.Background(), &domain.Options{Command: "build"}, nil)
	require.NoError(t, err)

	assert.Equal(t, domain.BuildRelease, cfg.BuildType)
	assert.Empty(t, cfg.CMake)
	assert.Equal(t, "/work/addon", cfg.Root)
	assert.Equal(t, domain.PlatformNative, cfg.Platform)
	assert.Equal(t, "Unix Makefiles", cfg.Generator)
	assert.False(t, cfg.MultiConfig)
	assert.Equal(t, "x64", cfg.Arch)
	assert.Equal(t, "node", cfg.NodeBin)
	assert.Equal(t, "build", cfg.Command)
	assert.Equal(t, filepath.Join("/work/addon", "build", "Release"), cfg.BuildDir())
}

func TestLocateCMake(t *testing.T) {
	r, tc := newResolver(t, linuxHost)
	tc.EXPECT().FindCMake(gomock.Any()).Return("/usr/bin/cmake").Times(1)

	cfg := &domain.Config{}
	assert.Equal(t, "/usr/bin/cmake", r.LocateCMake(context.Background(), cfg))
	assert.Equal(t, "/usr/bin/cmake", r.LocateCMake(context.Background(), cfg))
	assert.Equal(t, "/usr/bin/cmake", cfg.CMake)

	given := &domain.Config{CMake: "/opt/cmake"}
	assert.Equal(t, "/opt/cmake", r.LocateCMake(context.Background(), given))
}

func TestResolve_Win32ForcesMultiConfig(t *testing.T) {
	r, _ := newResolver(t, windowsHost)

	cfg, err := r.Resolve(context.Background(), &domain.Options{CMake: "cmake", Arch: "ia32"}, nil)
	require.NoError(t, err)

	assert.Equal(t, domain.PlatformWin32, cfg.Platform)
	assert.Empty(t, cfg.Generator)
	assert.True(t, cfg.MultiConfig)
	assert.Equal(t, "node.exe", cfg.NodeBin)
	assert.Equal(t, filepath.Join("/work/addon", "build"), cfg.BuildDir())
}

func TestResolve_Win32RejectsForeignArch(t *testing.T) {
	r, _ := newResolver(t, windowsHost)

	_, err := r.Resolve(context.Background(), &domain.Options{CMake: "cmake", Arch: "ppc64"}, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidArch))
	assert.Contains(t, err.Error(), "Invalid architecture for win32: ppc64")
}

func TestResolve_AIXArch(t *testing.T) {
	r, _ := newResolver(t, domain.Host{GOOS: "aix", Arch: "ppc64", NodeBin: "node", Cwd: "/w"})

	cfg, err := r.Resolve(context.Background(), &domain.Options{CMake: "cmake"}, nil)
	require.NoError(t, err)
	assert.Equal(t, domain.PlatformAIX, cfg.Platform)

	_, err = r.Resolve(context.Background(), &domain.Options{CMake: "cmake", Arch: "x64"}, nil)
	require.ErrorIs(t, err, domain.ErrInvalidArch)
}

func TestResolve_GeneratorDerivesMultiConfig(t *testing.T) {
	tests := []struct {
		generator string
		multi     bool
	}{
		{"Ninja", false},
		{"Unix Makefiles", false},
		{"Ninja Multi-Config", true},
		{"Xcode", true},
		{"Visual Studio 17 2022", true},
	}
	for _, tt := range tests {
		t.Run(tt.generator, func(t *testing.T) {
			r, _ := newResolver(t, linuxHost)
			cfg, err := r.Resolve(context.Background(), &domain.Options{CMake: "cmake", Generator: tt.generator}, nil)
			require.NoError(t, err)
			assert.Equal(t, tt.multi, cfg.MultiConfig)
			assert.Equal(t, tt.generator, cfg.Generator)
		})
	}
}

func TestResolve_MinGW(t *testing.T) {
	r, tc := newResolver(t, linuxHost)
	tc.EXPECT().LookPath("x86_64-w64-mingw32-gcc").Return("/usr/bin/x86_64-w64-mingw32-gcc", nil)
	tc.EXPECT().LookPath("x86_64-w64-mingw32-dlltool").Return("/usr/bin/x86_64-w64-mingw32-dlltool", nil)

	cfg, err := r.Resolve(context.Background(), &domain.Options{CMake: "cmake", Platform: domain.PlatformMinGW}, nil)
	require.NoError(t, err)
	assert.Equal(t, "x64", cfg.Arch)
	assert.Equal(t, "node.exe", cfg.NodeBin)
	assert.Equal(t, "Unix Makefiles", cfg.Generator)
}

func TestResolve_MinGWMissingCompiler(t *testing.T) {
	r, tc := newResolver(t, linuxHost)
	tc.EXPECT().LookPath("aarch64-w64-mingw32-gcc").Return("", exec.ErrNotFound)

	_, err := r.Resolve(context.Background(), &domain.Options{CMake: "cmake", Platform: domain.PlatformMinGW, Arch: "arm64"}, nil)
	require.ErrorIs(t, err, domain.ErrToolNotFound)
	assert.Contains(t, err.Error(), "aarch64-w64-mingw32-gcc")
}

func TestResolve_MinGWInvalidArch(t *testing.T) {
	r, _ := newResolver(t, linuxHost)

	_, err := r.Resolve(context.Background(), &domain.Options{CMake: "cmake", Platform: domain.PlatformMinGW, Arch: "ppc64"}, nil)
	require.ErrorIs(t, err, domain.ErrInvalidArch)
}

func TestResolve_WASI(t *testing.T) {
	r, tc := newResolver(t, linuxHost)
	tc.EXPECT().FindWASISDK(gomock.Any()).Return("/opt/wasi-sdk")

	cfg, err := r.Resolve(context.Background(), &domain.Options{CMake: "cmake", Platform: domain.PlatformWASI}, nil)
	require.NoError(t, err)
	assert.Equal(t, "wasm32", cfg.Arch)
	assert.Equal(t, "node.wasm", cfg.NodeBin)
	assert.Equal(t, "/opt/wasi-sdk", cfg.WASISDK)
}

func TestResolve_WASM64NotSupported(t *testing.T) {
	r, _ := newResolver(t, linuxHost)

	_, err := r.Resolve(context.Background(), &domain.Options{
		CMake: "cmake", Platform: domain.PlatformWASI, Arch: "wasm64", WASISDK: "/sdk",
	}, nil)
	require.ErrorIs(t, err, domain.ErrNotSupported)
	assert.Contains(t, err.Error(), "wasm64 is not yet supported")
}

func TestResolve_Generic(t *testing.T) {
	r, _ := newResolver(t, linuxHost)

	cfg, err := r.Resolve(context.Background(), &domain.Options{
		CMake: "cmake", Platform: domain.PlatformGeneric, Toolchain: "/tc/arm.cmake",
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, domain.ArchUnknown, cfg.Arch)
	assert.Equal(t, "node", cfg.NodeBin)
	assert.Equal(t, "/tc/arm.cmake", cfg.Toolchain)
}

func TestResolve_ProjectDefaults(t *testing.T) {
	r, _ := newResolver(t, linuxHost)

	defaults := &domain.ProjectDefaults{
		BuildType:  domain.BuildDebug,
		Generator:  "Ninja",
		Arch:       "arm64",
		CMake:      "/opt/cmake",
		Toolchain:  "cmake/cross.cmake",
		Production: true,
		Defines:    map[string]string{"FOO": "1"},
	}

	cfg, err := r.Resolve(context.Background(), &domain.Options{Arch: "x64"}, defaults)
	require.NoError(t, err)

	assert.Equal(t, domain.BuildDebug, cfg.BuildType)
	assert.Equal(t, "Ninja", cfg.Generator)
	assert.Equal(t, "x64", cfg.Arch, "command line wins")
	assert.Equal(t, "/opt/cmake", cfg.CMake)
	assert.Equal(t, domain.PlatformGeneric, cfg.Platform)
	assert.Equal(t, filepath.Join("/work/addon", "cmake", "cross.cmake"), cfg.Toolchain)
	assert.True(t, cfg.Production)
	assert.Equal(t, map[string]string{"FOO": "1"}, cfg.Defines)
}

func TestResolve_ExplicitPlatformBeatsProjectToolchain(t *testing.T) {
	r, tc := newResolver(t, linuxHost)
	tc.EXPECT().FindWASISDK(gomock.Any()).Return("")

	cfg, err := r.Resolve(context.Background(), &domain.Options{CMake: "cmake", Platform: domain.PlatformWASI},
		&domain.ProjectDefaults{Toolchain: "/tc.cmake"})
	require.NoError(t, err)
	assert.Equal(t, domain.PlatformWASI, cfg.Platform)
	assert.Empty(t, cfg.Toolchain)
}
