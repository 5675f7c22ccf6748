// Package resolver derives a complete domain.Config from parsed options,
// project defaults and host facts.
package resolver

import (
	"context"
	"maps"
	"path/filepath"
	"strings"

	"go.trai.ch/cmake-node/internal/core/domain"
	"go.trai.ch/cmake-node/internal/core/ports"
	"go.trai.ch/zerr"
)

// Resolver applies defaults and validates the combination of options.
type Resolver struct {
	host      domain.Host
	toolchain ports.Toolchain
}

// New creates a Resolver for the given host.
func New(host domain.Host, toolchain ports.Toolchain) *Resolver {
	return &Resolver{host: host, toolchain: toolchain}
}

// Resolve fills every field of the configuration except the cmake executable,
// which LocateCMake finds on demand. Project defaults only apply to fields the
// command line left empty. Resolve never starts a subprocess.
func (r *Resolver) Resolve(ctx context.Context, opts *domain.Options, defaults *domain.ProjectDefaults) (*domain.Config, error) {
	cfg := &domain.Config{
		BuildType:   opts.BuildType,
		CMake:       opts.CMake,
		Root:        opts.Root,
		Production:  opts.Production,
		NodeBin:     opts.NodeBin,
		NodeDef:     opts.NodeDef,
		NodeLib:     opts.NodeLib,
		NodeExp:     opts.NodeExp,
		Platform:    opts.Platform,
		Toolchain:   opts.Toolchain,
		Generator:   opts.Generator,
		Arch:        opts.Arch,
		WASISDK:     opts.WASISDK,
		Command:     opts.Command,
		Passthrough: opts.Passthrough,
	}

	if cfg.Root == "" {
		cfg.Root = r.host.Cwd
	}
	applyDefaults(cfg, defaults)

	if cfg.BuildType == "" {
		cfg.BuildType = domain.BuildRelease
	}
	if cfg.Platform == "" {
		cfg.Platform = domain.HostPlatform(r.host.GOOS)
	}

	r.resolveGenerator(cfg)

	if cfg.Arch == "" {
		cfg.Arch = r.defaultArch(cfg.Platform)
	}
	if cfg.NodeBin == "" {
		cfg.NodeBin = r.defaultNodeBin(cfg.Platform)
	}
	if cfg.Platform == domain.PlatformWASI && cfg.WASISDK == "" {
		cfg.WASISDK = r.toolchain.FindWASISDK(ctx)
	}

	if err := r.validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LocateCMake sets cfg.CMake when neither the command line nor the project
// file named one. Discovery may run cmake, so callers defer it until the
// command is about to use it.
func (r *Resolver) LocateCMake(ctx context.Context, cfg *domain.Config) string {
	if cfg.CMake == "" {
		cfg.CMake = r.toolchain.FindCMake(ctx)
	}
	return cfg.CMake
}

// applyDefaults copies project file values into fields that are still empty.
func applyDefaults(cfg *domain.Config, defaults *domain.ProjectDefaults) {
	if defaults == nil {
		return
	}

	if cfg.BuildType == "" {
		cfg.BuildType = defaults.BuildType
	}
	if cfg.Generator == "" {
		cfg.Generator = defaults.Generator
	}
	if cfg.Arch == "" {
		cfg.Arch = defaults.Arch
	}
	if cfg.CMake == "" {
		cfg.CMake = defaults.CMake
	}
	if cfg.WASISDK == "" {
		cfg.WASISDK = defaults.WASISDK
	}
	if cfg.Platform == "" && defaults.Toolchain != "" {
		cfg.Platform = domain.PlatformGeneric
		cfg.Toolchain = defaults.Toolchain
		if !filepath.IsAbs(cfg.Toolchain) {
			cfg.Toolchain = filepath.Join(cfg.Root, cfg.Toolchain)
		}
	}
	cfg.Production = cfg.Production || defaults.Production
	if len(defaults.Defines) > 0 {
		cfg.Defines = maps.Clone(defaults.Defines)
	}
}

func (r *Resolver) resolveGenerator(cfg *domain.Config) {
	if cfg.Generator != "" {
		cfg.MultiConfig = IsMultiConfig(cfg.Generator)
		return
	}

	if cfg.Platform == domain.PlatformWin32 {
		cfg.MultiConfig = true
		return
	}

	if r.host.GOOS == "windows" {
		cfg.Generator = "MinGW Makefiles"
	} else {
		cfg.Generator = "Unix Makefiles"
	}
}

// IsMultiConfig reports whether a CMake generator builds every configuration
// from one tree.
func IsMultiConfig(generator string) bool {
	return strings.HasPrefix(generator, "Visual Studio") ||
		generator == "Xcode" ||
		generator == "Ninja Multi-Config"
}

func (r *Resolver) defaultArch(p domain.Platform) string {
	switch p {
	case domain.PlatformGeneric:
		return domain.ArchUnknown
	case domain.PlatformMinGW:
		return "x64"
	case domain.PlatformWASI:
		return "wasm32"
	default:
		return r.host.Arch
	}
}

func (r *Resolver) defaultNodeBin(p domain.Platform) string {
	switch p {
	case domain.PlatformGeneric:
		return "node"
	case domain.PlatformMinGW:
		return "node.exe"
	case domain.PlatformWASI:
		return "node.wasm"
	default:
		return r.host.NodeBin
	}
}

func (r *Resolver) validate(cfg *domain.Config) error {
	if cfg.Platform == domain.PlatformWASI && cfg.Arch == "wasm64" {
		return zerr.With(zerr.Wrap(domain.ErrNotSupported, "wasm64 is not yet supported"), "arch", cfg.Arch)
	}

	if !cfg.Platform.AcceptsArch(cfg.Arch) {
		return zerr.With(
			zerr.Wrap(domain.ErrInvalidArch, "Invalid architecture for "+string(cfg.Platform)+": "+cfg.Arch),
			"valid", cfg.Platform.ValidArchs(),
		)
	}

	if cfg.Platform == domain.PlatformMinGW {
		for _, tool := range []string{"gcc", "dlltool"} {
			name, _ := domain.MinGWTool(cfg.Arch, tool)
			if _, err := r.toolchain.LookPath(name); err != nil {
				return zerr.With(zerr.Wrap(domain.ErrToolNotFound, "MinGW tool not found: "+name), "tool", name)
			}
		}
	}

	return nil
}
