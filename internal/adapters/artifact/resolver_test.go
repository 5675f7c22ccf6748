package artifact_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/cmake-node/internal/adapters/artifact"
	"go.trai.ch/cmake-node/internal/adapters/fs"
	"go.trai.ch/cmake-node/internal/core/domain"
	"go.trai.ch/cmake-node/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	executor  *mocks.MockExecutor
	toolchain *mocks.MockToolchain
	modules   *mocks.MockModuleProvider
	logger    *mocks.MockLogger
	cacheRoot string
	resolver  *artifact.Resolver
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := &fixture{
		executor:  mocks.NewMockExecutor(ctrl),
		toolchain: mocks.NewMockToolchain(ctrl),
		modules:   mocks.NewMockModuleProvider(ctrl),
		logger:    mocks.NewMockLogger(ctrl),
		cacheRoot: filepath.Join(t.TempDir(), "cmake-node"),
	}
	f.resolver = artifact.NewResolver(f.executor, fs.New(), f.toolchain, f.modules, f.logger, f.cacheRoot)
	return f
}

// writeOutput simulates a generator that creates the file named by its output flag.
func writeOutput(t *testing.T, path string) func(context.Context, domain.Invocation) error {
	return func(context.Context, domain.Invocation) error {
		require.NoError(t, os.WriteFile(path, []byte("!<arch>\n"), 0o600))
		return nil
	}
}

func TestKey(t *testing.T) {
	assert.Equal(t, "node-8-x64", artifact.Key("node.exe", "x64"))
	assert.Equal(t, "node-8-arm64", artifact.Key("node", "arm64"))
	assert.Equal(t, "electron-8-ia32", artifact.Key("electron.exe.old", "ia32"))
	assert.NotEqual(t, artifact.Key("node.exe", "x64"), artifact.Key("node.exe", "arm64"))
}

func TestResolve_MinGW(t *testing.T) {
	f := newFixture(t)
	cfg := &domain.Config{Platform: domain.PlatformMinGW, Arch: "x64", NodeBin: "node.exe"}
	want := filepath.Join(f.cacheRoot, "node-8-x64.lib")

	f.modules.EXPECT().DefFile(gomock.Any()).Return("/cache/modules-1/node.def", nil)
	f.executor.EXPECT().Run(gomock.Any(), domain.Invocation{
		Name: "x86_64-w64-mingw32-dlltool",
		Args: []string{"-d", "/cache/modules-1/node.def", "-l", want, "-D", "node.exe", "-m", "i386:x86-64"},
	}).DoAndReturn(writeOutput(t, want)).Times(1)

	got, err := f.resolver.Resolve(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	// Second request is served from the cache.
	got, err = f.resolver.Resolve(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestResolve_Win32(t *testing.T) {
	f := newFixture(t)
	cfg := &domain.Config{
		Platform: domain.PlatformWin32,
		Arch:     "arm64",
		NodeBin:  "node.exe",
		NodeDef:  `C:\addon\node.def`,
		CMake:    "cmake.exe",
	}
	want := filepath.Join(f.cacheRoot, "node-8-arm64.lib")

	f.toolchain.EXPECT().FindLinker(gomock.Any(), "cmake.exe").Return(`C:\VC\bin\lib.exe`, true)
	f.executor.EXPECT().Run(gomock.Any(), domain.Invocation{
		Name: `C:\VC\bin\lib.exe`,
		Args: []string{
			"/NOLOGO",
			`/DEF:C:\addon\node.def`,
			"/OUT:" + want,
			"/NAME:node.exe",
			"/MACHINE:ARM64",
		},
	}).DoAndReturn(writeOutput(t, want))

	got, err := f.resolver.Resolve(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestResolve_Win32LinkerFallback(t *testing.T) {
	f := newFixture(t)
	cfg := &domain.Config{Platform: domain.PlatformWin32, Arch: "x64", NodeBin: "node.exe", NodeDef: "node.def"}

	f.toolchain.EXPECT().FindLinker(gomock.Any(), gomock.Any()).Return("", false)
	f.logger.EXPECT().Warn(gomock.Any())
	f.executor.EXPECT().Run(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, inv domain.Invocation) error {
			assert.Equal(t, "lib.exe", inv.Name)
			return os.WriteFile(f.resolver.Path(cfg), nil, 0o600)
		})

	_, err := f.resolver.Resolve(context.Background(), cfg)
	require.NoError(t, err)
}

func TestResolve_DistinctPerArch(t *testing.T) {
	f := newFixture(t)
	f.modules.EXPECT().DefFile(gomock.Any()).Return("node.def", nil).AnyTimes()
	f.executor.EXPECT().Run(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, inv domain.Invocation) error {
			return os.WriteFile(inv.Args[3], nil, 0o600)
		}).Times(2)

	x64, err := f.resolver.Resolve(context.Background(), &domain.Config{Platform: domain.PlatformMinGW, Arch: "x64", NodeBin: "node.exe"})
	require.NoError(t, err)
	ia32, err := f.resolver.Resolve(context.Background(), &domain.Config{Platform: domain.PlatformMinGW, Arch: "ia32", NodeBin: "node.exe"})
	require.NoError(t, err)

	assert.NotEqual(t, x64, ia32)
	assert.FileExists(t, x64)
	assert.FileExists(t, ia32)
}

func TestResolve_ConcurrentRequestsSynthesizeOnce(t *testing.T) {
	f := newFixture(t)
	cfg := &domain.Config{Platform: domain.PlatformMinGW, Arch: "arm64", NodeBin: "node.exe"}

	release := make(chan struct{})
	f.modules.EXPECT().DefFile(gomock.Any()).Return("node.def", nil)
	f.executor.EXPECT().Run(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, inv domain.Invocation) error {
			<-release
			return os.WriteFile(inv.Args[3], nil, 0o600)
		}).Times(1)

	const callers = 4
	var wg sync.WaitGroup
	results := make([]string, callers)
	errs := make([]error, callers)
	for i := range callers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i], errs[i] = f.resolver.Resolve(context.Background(), cfg)
		}()
	}
	close(release)
	wg.Wait()

	for i := range callers {
		require.NoError(t, errs[i])
		assert.Equal(t, f.resolver.Path(cfg), results[i])
	}
}

func TestResolve_SynthesisFailure(t *testing.T) {
	f := newFixture(t)
	cfg := &domain.Config{Platform: domain.PlatformMinGW, Arch: "x64", NodeBin: "node.exe"}

	f.modules.EXPECT().DefFile(gomock.Any()).Return("node.def", nil)
	f.executor.EXPECT().Run(gomock.Any(), gomock.Any()).Return(&domain.ExitError{Name: "dlltool", Code: 1}).Times(1)

	_, err := f.resolver.Resolve(context.Background(), cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSynthesisFailed)
	assert.Contains(t, err.Error(), "Could not create import library: "+f.resolver.Path(cfg))

	var exitErr *domain.ExitError
	assert.False(t, errors.As(err, &exitErr), "child status must not leak")
}

func TestResolve_NotNeeded(t *testing.T) {
	f := newFixture(t)
	_, err := f.resolver.Resolve(context.Background(), &domain.Config{Platform: domain.PlatformNative, Arch: "x64"})
	assert.ErrorIs(t, err, domain.ErrNotSupported)
}

func TestResolve_DefFileError(t *testing.T) {
	f := newFixture(t)
	boom := errors.New("boom")
	f.modules.EXPECT().DefFile(gomock.Any()).Return("", boom)

	_, err := f.resolver.Resolve(context.Background(), &domain.Config{Platform: domain.PlatformMinGW, Arch: "x64", NodeBin: "node.exe"})
	assert.ErrorIs(t, err, boom)
}
