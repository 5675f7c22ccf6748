package app

import (
	"context"
	"path/filepath"
	"slices"

	"go.trai.ch/cmake-node/internal/core/domain"
	"go.trai.ch/zerr"
)

type command func(*App, context.Context, *domain.Config) error

var commands = map[string]command{
	"install":     (*App).install,
	"list":        (*App).list,
	"clear":       (*App).clear,
	"configure":   (*App).configure,
	"build":       (*App).build,
	"clean":       (*App).clean,
	"reconfigure": (*App).reconfigure,
	"rebuild":     (*App).rebuild,
	"ui":          (*App).ui,
}

func lookup(name string) (command, bool) {
	cmd, ok := commands[name]
	return cmd, ok
}

// Commands returns the names of all commands, sorted.
func Commands() []string {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func (a *App) install(ctx context.Context, cfg *domain.Config) error {
	if !cfg.Platform.NeedsImportLib() {
		a.logger.Info("No import library is required for " + string(cfg.Platform))
		return nil
	}

	a.resolver.LocateCMake(ctx, cfg)
	path, err := a.artifacts.Resolve(ctx, cfg)
	if err != nil {
		return err
	}
	a.printf("%s\n", path)
	return nil
}

func (a *App) list(_ context.Context, _ *domain.Config) error {
	files, err := a.fs.List(a.host.CacheRoot, domain.ImportLibExt)
	if err != nil {
		return err
	}
	for _, file := range files {
		a.printf("%s\n", file)
	}
	return nil
}

func (a *App) clear(_ context.Context, _ *domain.Config) error {
	return a.fs.RemoveAll(a.host.CacheRoot)
}

func (a *App) configure(ctx context.Context, cfg *domain.Config) error {
	if !a.fs.Exists(cfg.ListsPath()) {
		return zerr.With(
			zerr.Wrap(domain.ErrInvalidRoot, "Invalid CMake root: "+cfg.Root),
			"path", cfg.ListsPath(),
		)
	}
	if cfg.Platform == domain.PlatformWASI && cfg.WASISDK == "" {
		return zerr.Wrap(domain.ErrToolNotFound, "WASI SDK not found")
	}
	a.resolver.LocateCMake(ctx, cfg)

	modulesDir, err := a.modules.Dir(ctx)
	if err != nil {
		return err
	}

	node := nodeDefines{Lib: cfg.NodeLib, Def: cfg.NodeDef}
	if node.Def == "" {
		if node.Def, err = a.modules.DefFile(ctx); err != nil {
			return err
		}
	}
	if node.Lib == "" && cfg.Platform.NeedsImportLib() {
		if node.Lib, err = a.artifacts.Resolve(ctx, cfg); err != nil {
			return err
		}
	}

	if err := a.fs.MkdirAll(cfg.BuildDir()); err != nil {
		return err
	}

	return a.executor.Run(ctx, domain.Invocation{
		Name: cfg.CMake,
		Args: configureArgs(cfg, modulesDir, node),
		Dir:  cfg.BuildDir(),
	})
}

func (a *App) build(ctx context.Context, cfg *domain.Config) error {
	if err := a.requireConfigured(cfg); err != nil {
		return err
	}
	a.resolver.LocateCMake(ctx, cfg)

	args := []string{"--build", cfg.BuildDir(), "--config", string(cfg.BuildType)}
	if cfg.Command == "build" {
		args = append(args, cfg.Passthrough...)
	}

	return a.executor.Run(ctx, domain.Invocation{
		Name: cfg.CMake,
		Args: args,
		Dir:  cfg.BuildDir(),
	})
}

func (a *App) clean(_ context.Context, cfg *domain.Config) error {
	if cfg.Production {
		return a.fs.RemoveAllExcept(cfg.BuildRoot(), domain.IsProductionArtifact)
	}
	return a.fs.RemoveAll(cfg.BuildRoot())
}

func (a *App) reconfigure(ctx context.Context, cfg *domain.Config) error {
	if err := a.fs.RemoveAll(cfg.CachePath()); err != nil {
		return err
	}
	return a.configure(ctx, cfg)
}

func (a *App) rebuild(ctx context.Context, cfg *domain.Config) error {
	if err := a.clean(ctx, cfg); err != nil {
		return err
	}
	if err := a.configure(ctx, cfg); err != nil {
		return err
	}
	return a.build(ctx, cfg)
}

func (a *App) ui(ctx context.Context, cfg *domain.Config) error {
	if err := a.requireConfigured(cfg); err != nil {
		return err
	}

	tool := "ccmake"
	if a.host.GOOS == "windows" {
		tool = "cmake-gui.exe"
	} else if !a.interactive() {
		return zerr.Wrap(domain.ErrNotSupported, "ccmake requires an interactive terminal")
	}
	if dir := filepath.Dir(a.resolver.LocateCMake(ctx, cfg)); dir != "." {
		tool = filepath.Join(dir, tool)
	}

	return a.executor.Run(ctx, domain.Invocation{
		Name: tool,
		Args: []string{cfg.BuildDir()},
		Dir:  cfg.BuildDir(),
	})
}

func (a *App) requireConfigured(cfg *domain.Config) error {
	if !a.fs.Exists(cfg.CachePath()) {
		return zerr.With(zerr.Wrap(domain.ErrNotConfigured, "Project is not configured."), "path", cfg.CachePath())
	}
	return nil
}
