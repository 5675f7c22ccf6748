package toolchain

import (
	"context"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"go.trai.ch/cmake-node/internal/core/domain"
)

const probeLists = `cmake_minimum_required(VERSION 3.13)
project(cmake_node_probe C)
message(STATUS "CMAKE_NODE_COMPILER=${CMAKE_C_COMPILER}")
`

var compilerMarker = regexp.MustCompile(`(?m)^-- CMAKE_NODE_COMPILER=(.+?)\r?$`)

// FindLinker configures a throwaway project with cmake to learn which C
// compiler it picks, then looks for lib.exe next to that compiler.
func (l *Locator) FindLinker(ctx context.Context, cmake string) (string, bool) {
	dir, err := os.MkdirTemp("", "cmake-node-probe-")
	if err != nil {
		return "", false
	}
	defer func() { _ = l.fs.RemoveAll(dir) }()

	if err := l.fs.WriteFile(filepath.Join(dir, domain.CMakeListsFileName), []byte(probeLists)); err != nil {
		return "", false
	}

	out, err := l.executor.Output(ctx, domain.Invocation{
		Name: cmake,
		Args: []string{"-S", dir, "-B", filepath.Join(dir, domain.BuildDirName)},
		Dir:  dir,
	})
	if err != nil {
		return "", false
	}

	return l.linkerFromOutput(out)
}

func (l *Locator) linkerFromOutput(out string) (string, bool) {
	m := compilerMarker.FindStringSubmatch(out)
	if m == nil {
		return "", false
	}

	compiler := filepath.FromSlash(strings.TrimSpace(m[1]))
	linker := filepath.Join(filepath.Dir(compiler), "lib.exe")
	if !l.fs.Exists(linker) {
		return "", false
	}
	return linker, true
}
