package argparse

import (
	"os"
	"path/filepath"

	"go.trai.ch/cmake-node/internal/core/domain"
	"go.trai.ch/zerr"
)

// buildTypeValue implements pflag.Value for -c/--config.
type buildTypeValue struct{ target *domain.BuildType }

func (v buildTypeValue) String() string { return string(*v.target) }
func (v buildTypeValue) Type() string   { return "type" }

func (v buildTypeValue) Set(s string) error {
	bt, err := domain.ParseBuildType(s)
	if err != nil {
		return err
	}
	*v.target = bt
	return nil
}

// archValue implements pflag.Value for -A/--arch.
type archValue struct{ target *string }

func (v archValue) String() string { return *v.target }
func (v archValue) Type() string   { return "arch" }

func (v archValue) Set(s string) error {
	if !domain.IsKnownArch(s) {
		return zerr.With(zerr.Wrap(domain.ErrInvalidArch, "Invalid architecture: "+s), "arch", s)
	}
	*v.target = s
	return nil
}

// pathValue implements pflag.Value for options naming an existing file or
// directory. The stored path is absolute.
type pathValue struct {
	target *string
	dir    bool
}

func (v pathValue) String() string { return *v.target }

func (v pathValue) Type() string {
	if v.dir {
		return "dir"
	}
	return "path"
}

func (v pathValue) Set(s string) error {
	abs, err := filepath.Abs(s)
	if err != nil {
		return zerr.Wrap(err, "failed to resolve path")
	}

	info, err := os.Stat(abs)
	if err != nil {
		return zerr.With(zerr.Wrap(domain.ErrFileNotFound, "File not found: "+abs), "path", abs)
	}
	if v.dir && !info.IsDir() {
		return zerr.With(zerr.Wrap(domain.ErrFileNotFound, "Not a directory: "+abs), "path", abs)
	}

	*v.target = abs
	return nil
}

// stringValue implements pflag.Value for free-form options that must not be empty.
type stringValue struct {
	target *string
	kind   string
}

func (v stringValue) String() string { return *v.target }
func (v stringValue) Type() string   { return v.kind }

func (v stringValue) Set(s string) error {
	if s == "" {
		return zerr.With(zerr.Wrap(domain.ErrMissingValue, "Empty value for "+v.kind), "kind", v.kind)
	}
	*v.target = s
	return nil
}

// platformValue implements pflag.Value for --mingw and --wasm. The last of
// --mingw, --wasm and --toolchain on the command line wins.
type platformValue struct {
	opts     *domain.Options
	platform domain.Platform
}

func (v platformValue) String() string {
	return boolString(v.opts.Platform == v.platform)
}

func (v platformValue) Type() string { return "bool" }

func (v platformValue) Set(string) error {
	v.opts.Platform = v.platform
	v.opts.Toolchain = ""
	return nil
}

// toolchainValue implements pflag.Value for --toolchain.
type toolchainValue struct{ opts *domain.Options }

func (v toolchainValue) String() string { return v.opts.Toolchain }
func (v toolchainValue) Type() string   { return "file" }

func (v toolchainValue) Set(s string) error {
	var path string
	if err := (pathValue{target: &path}).Set(s); err != nil {
		return err
	}
	v.opts.Platform = domain.PlatformGeneric
	v.opts.Toolchain = path
	return nil
}

// switchValue implements pflag.Value for plain boolean switches.
type switchValue struct{ target *bool }

func (v switchValue) String() string { return boolString(*v.target) }
func (v switchValue) Type() string   { return "bool" }

func (v switchValue) Set(string) error {
	*v.target = true
	return nil
}

func boolString(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
