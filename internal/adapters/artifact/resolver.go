// Package artifact synthesizes and caches the import library addons link
// against on Windows targets.
package artifact

import (
	"context"
	"errors"
	"path/filepath"
	"strconv"
	"strings"

	"go.trai.ch/cmake-node/internal/core/domain"
	"go.trai.ch/cmake-node/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/singleflight"
)

// fallbackLinker is used when the MSVC linker cannot be discovered.
const fallbackLinker = "lib.exe"

// Resolver implements ports.ImportLibraryResolver.
type Resolver struct {
	executor  ports.Executor
	fs        ports.FileSystem
	toolchain ports.Toolchain
	modules   ports.ModuleProvider
	logger    ports.Logger
	cacheRoot string

	group singleflight.Group
}

// NewResolver creates a Resolver storing libraries under cacheRoot.
func NewResolver(
	executor ports.Executor,
	fs ports.FileSystem,
	toolchain ports.Toolchain,
	modules ports.ModuleProvider,
	logger ports.Logger,
	cacheRoot string,
) *Resolver {
	return &Resolver{
		executor:  executor,
		fs:        fs,
		toolchain: toolchain,
		modules:   modules,
		logger:    logger,
		cacheRoot: cacheRoot,
	}
}

// Key returns the cache identity of the import library for a host binary and
// architecture, e.g. "node-8-x64".
func Key(nodeBin, arch string) string {
	base := filepath.Base(nodeBin)
	if i := strings.IndexByte(base, '.'); i >= 0 {
		base = base[:i]
	}
	return base + "-" + strconv.Itoa(domain.ABIVersion) + "-" + arch
}

// Path returns where the import library for cfg is cached.
func (r *Resolver) Path(cfg *domain.Config) string {
	return filepath.Join(r.cacheRoot, Key(cfg.NodeBin, cfg.Arch)+domain.ImportLibExt)
}

// Resolve returns the cached import library for cfg, generating it on first use.
// An existing file is trusted as is.
func (r *Resolver) Resolve(ctx context.Context, cfg *domain.Config) (string, error) {
	if !cfg.Platform.NeedsImportLib() {
		return "", zerr.With(
			zerr.Wrap(domain.ErrNotSupported, "Import libraries are not used on "+string(cfg.Platform)),
			"platform", string(cfg.Platform),
		)
	}

	path := r.Path(cfg)
	if r.fs.Exists(path) {
		return path, nil
	}

	_, err, _ := r.group.Do(path, func() (any, error) {
		if r.fs.Exists(path) {
			return nil, nil
		}
		if err := r.fs.MkdirAll(r.cacheRoot); err != nil {
			return nil, zerr.With(
				zerr.With(zerr.Wrap(domain.ErrCacheCreateFailed, "Could not create cache directory: "+r.cacheRoot), "path", r.cacheRoot),
				"cause", err.Error(),
			)
		}
		return nil, r.synthesize(ctx, cfg, path)
	})
	if err != nil {
		return "", err
	}
	return path, nil
}

func (r *Resolver) synthesize(ctx context.Context, cfg *domain.Config, out string) error {
	def, err := r.defFile(ctx, cfg)
	if err != nil {
		return err
	}

	var inv domain.Invocation
	switch cfg.Platform {
	case domain.PlatformWin32:
		inv, err = r.libInvocation(ctx, cfg, def, out)
	default:
		inv, err = dlltoolInvocation(cfg, def, out)
	}
	if err != nil {
		return err
	}

	if err := r.executor.Run(ctx, inv); err != nil {
		return synthesisError(out, inv.Name, err)
	}
	return nil
}

func (r *Resolver) defFile(ctx context.Context, cfg *domain.Config) (string, error) {
	if cfg.NodeDef != "" {
		return cfg.NodeDef, nil
	}
	return r.modules.DefFile(ctx)
}

func (r *Resolver) libInvocation(ctx context.Context, cfg *domain.Config, def, out string) (domain.Invocation, error) {
	machine, ok := domain.LibMachine(cfg.Arch)
	if !ok {
		return domain.Invocation{}, invalidArch(cfg)
	}

	linker, found := r.toolchain.FindLinker(ctx, cfg.CMake)
	if !found {
		r.logger.Warn("Could not find lib.exe, trying " + fallbackLinker + " from PATH")
		linker = fallbackLinker
	}

	return domain.Invocation{
		Name: linker,
		Args: []string{
			"/NOLOGO",
			"/DEF:" + def,
			"/OUT:" + out,
			"/NAME:" + cfg.NodeBin,
			"/MACHINE:" + machine,
		},
	}, nil
}

func dlltoolInvocation(cfg *domain.Config, def, out string) (domain.Invocation, error) {
	tool, ok := domain.MinGWTool(cfg.Arch, "dlltool")
	if !ok {
		return domain.Invocation{}, invalidArch(cfg)
	}
	machine, _ := domain.DlltoolMachine(cfg.Arch)

	return domain.Invocation{
		Name: tool,
		Args: []string{"-d", def, "-l", out, "-D", cfg.NodeBin, "-m", machine},
	}, nil
}

func invalidArch(cfg *domain.Config) error {
	return zerr.With(
		zerr.Wrap(domain.ErrInvalidArch, "Invalid architecture for "+string(cfg.Platform)+": "+cfg.Arch),
		"arch", cfg.Arch,
	)
}

// synthesisError reports a failed generator run without exposing the child's
// exit status to the caller, so it is handled like any other fatal error.
func synthesisError(path, tool string, cause error) error {
	err := zerr.With(zerr.Wrap(domain.ErrSynthesisFailed, "Could not create import library: "+path), "tool", tool)
	var exitErr *domain.ExitError
	if errors.As(cause, &exitErr) {
		return zerr.With(err, "exit_code", exitErr.Code)
	}
	return zerr.With(err, "cause", cause.Error())
}
