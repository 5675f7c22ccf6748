package argparse_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/cmake-node/internal/core/domain"
	"go.trai.ch/cmake-node/internal/engine/argparse"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{"cluster", []string{"-abc"}, []string{"-a", "-b", "-c"}},
		{"short flag untouched", []string{"-p"}, []string{"-p"}},
		{"long with value", []string{"--config=Debug"}, []string{"--config", "Debug"}},
		{"split at first equals", []string{"--gen=a=b"}, []string{"--gen", "a=b"}},
		{"empty value kept", []string{"--gen="}, []string{"--gen", ""}},
		{"command untouched", []string{"build"}, []string{"build"}},
		{
			"tail verbatim",
			[]string{"-pv", "configure", "--", "-abc", "--x=y", "--"},
			[]string{"-p", "-v", "configure", "--", "-abc", "--x=y", "--"},
		},
		{"lone dash", []string{"-"}, []string{"-"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, argparse.Normalize(tt.in))
		})
	}
}

func TestParse_Equivalences(t *testing.T) {
	tests := []struct {
		name string
		a, b []string
	}{
		{"cluster", []string{"-pc", "Debug", "build"}, []string{"-p", "-c", "Debug", "build"}},
		{"equals", []string{"--config=Debug", "build"}, []string{"--config", "Debug", "build"}},
		{"short and long", []string{"-A", "x64", "-G", "Ninja"}, []string{"--arch", "x64", "--gen", "Ninja"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := argparse.Parse(tt.a)
			require.NoError(t, err)
			b, err := argparse.Parse(tt.b)
			require.NoError(t, err)
			assert.Equal(t, a, b)
		})
	}
}

func TestParse_Options(t *testing.T) {
	root := t.TempDir()
	def := filepath.Join(root, "node.def")
	require.NoError(t, os.WriteFile(def, []byte("EXPORTS"), 0o600))

	opts, err := argparse.Parse([]string{
		"-c", "debug",
		"-C", "/opt/cmake/bin/cmake",
		"--root", root,
		"--production",
		"--node-bin", "iojs.exe",
		"--node-def=" + def,
		"-A", "arm64",
		"-G", "Visual Studio 17 2022",
		"rebuild",
		"--", "-DFOO=1", "--trace",
	})
	require.NoError(t, err)

	assert.Equal(t, domain.BuildDebug, opts.BuildType)
	assert.Equal(t, "/opt/cmake/bin/cmake", opts.CMake)
	assert.Equal(t, root, opts.Root)
	assert.True(t, opts.Production)
	assert.Equal(t, "iojs.exe", opts.NodeBin)
	assert.Equal(t, def, opts.NodeDef)
	assert.Equal(t, "arm64", opts.Arch)
	assert.Equal(t, "Visual Studio 17 2022", opts.Generator)
	assert.Equal(t, "rebuild", opts.Command)
	assert.Equal(t, []string{"-DFOO=1", "--trace"}, opts.Passthrough)
}

func TestParse_RelativeRootIsAbsolute(t *testing.T) {
	opts, err := argparse.Parse([]string{"-r", ".", "build"})
	require.NoError(t, err)

	cwd, err := os.Getwd()
	require.NoError(t, err)
	assert.Equal(t, cwd, opts.Root)
}

func TestParse_PlatformLastWins(t *testing.T) {
	toolchain := filepath.Join(t.TempDir(), "arm.cmake")
	require.NoError(t, os.WriteFile(toolchain, nil, 0o600))

	opts, err := argparse.Parse([]string{"--mingw", "--toolchain", toolchain, "build"})
	require.NoError(t, err)
	assert.Equal(t, domain.PlatformGeneric, opts.Platform)
	assert.Equal(t, toolchain, opts.Toolchain)

	opts, err = argparse.Parse([]string{"--toolchain", toolchain, "--wasm", "build"})
	require.NoError(t, err)
	assert.Equal(t, domain.PlatformWASI, opts.Platform)
	assert.Empty(t, opts.Toolchain)

	opts, err = argparse.Parse([]string{"--wasm", "--mingw"})
	require.NoError(t, err)
	assert.Equal(t, domain.PlatformMinGW, opts.Platform)
}

func TestParse_EarlyExit(t *testing.T) {
	opts, err := argparse.Parse([]string{"-v", "--bogus", "a", "b"})
	require.NoError(t, err)
	assert.True(t, opts.Version)

	opts, err = argparse.Parse([]string{"build", "--help", "--arch", "nope"})
	require.NoError(t, err)
	assert.True(t, opts.Help)
	assert.Equal(t, "build", opts.Command)

	opts, err = argparse.Parse([]string{"-ph"})
	require.NoError(t, err)
	assert.True(t, opts.Production)
	assert.True(t, opts.Help)
}

func TestParse_Errors(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.def")

	tests := []struct {
		name    string
		args    []string
		target  error
		message string
	}{
		{"unknown long", []string{"--bogus"}, domain.ErrUnknownOption, "Invalid option: --bogus"},
		{"unknown short", []string{"-x"}, domain.ErrUnknownOption, "Invalid option: -x"},
		{"unknown in cluster", []string{"-pq"}, domain.ErrUnknownOption, "Invalid option: -q"},
		{"lone dash", []string{"-"}, domain.ErrUnknownOption, "Invalid option: -"},
		{"missing value", []string{"--config"}, domain.ErrMissingValue, "Invalid option value for --config"},
		{"value looks like flag", []string{"--gen", "-p"}, domain.ErrMissingValue, "Invalid option value for --gen"},
		{"value is separator", []string{"-A", "--", "x"}, domain.ErrMissingValue, "Invalid option value for -A"},
		{"multiple commands", []string{"configure", "build"}, domain.ErrMultipleCommands, "Multiple commands: configure, build"},
		{"bad arch", []string{"-A", "sparc"}, domain.ErrInvalidArch, "Invalid architecture: sparc"},
		{"bad build type", []string{"-c", "Fast"}, domain.ErrInvalidBuildType, "Invalid build type: Fast"},
		{"missing file", []string{"--node-def", missing}, domain.ErrFileNotFound, "File not found: " + missing},
		{"empty generator", []string{"--gen="}, domain.ErrMissingValue, "Empty value for name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := argparse.Parse(tt.args)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.target), "got %v", err)
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestParse_CommandAfterPassthroughIgnored(t *testing.T) {
	opts, err := argparse.Parse([]string{"build", "--", "install"})
	require.NoError(t, err)
	assert.Equal(t, "build", opts.Command)
	assert.Equal(t, []string{"install"}, opts.Passthrough)
}

func TestNewFlagSet_Usage(t *testing.T) {
	var opts domain.Options
	usage := argparse.NewFlagSet(&opts).FlagUsages()

	for _, name := range []string{"--version", "--config", "--cmake", "--root", "--production", "--node-bin",
		"--node-def", "--node-lib", "--node-exp", "--mingw", "--wasm", "--toolchain", "--gen", "--arch",
		"--wasi-sdk", "--help"} {
		assert.True(t, strings.Contains(usage, name), name)
	}
}
