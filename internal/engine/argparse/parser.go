package argparse

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"go.trai.ch/cmake-node/internal/core/domain"
	"go.trai.ch/zerr"
)

// NewFlagSet declares every option and binds it to opts.
func NewFlagSet(opts *domain.Options) *pflag.FlagSet {
	flags := pflag.NewFlagSet(domain.ToolName, pflag.ContinueOnError)
	flags.SortFlags = false

	value := func(v pflag.Value, name, short, usage string) {
		flags.VarPF(v, name, short, usage)
	}
	toggle := func(v pflag.Value, name, short, usage string) {
		flags.VarPF(v, name, short, usage).NoOptDefVal = "true"
	}

	toggle(switchValue{&opts.Version}, "version", "v", "output version number")
	value(buildTypeValue{&opts.BuildType}, "config", "c", "build type (Debug, Release, MinSizeRel, RelWithDebInfo)")
	value(stringValue{&opts.CMake, "path"}, "cmake", "C", "path to cmake binary")
	value(pathValue{target: &opts.Root, dir: true}, "root", "r", "project root (default: current directory)")
	toggle(switchValue{&opts.Production}, "production", "p", "clean for production (keep built binaries)")
	value(stringValue{&opts.NodeBin, "name"}, "node-bin", "", "name of the node executable")
	value(pathValue{target: &opts.NodeDef}, "node-def", "", "node.def file for windows")
	value(pathValue{target: &opts.NodeLib}, "node-lib", "", "node.lib import library for windows")
	value(pathValue{target: &opts.NodeExp}, "node-exp", "", "node.exp export file for aix")
	toggle(platformValue{opts, domain.PlatformMinGW}, "mingw", "", "cross-compile for windows with mingw-w64")
	toggle(platformValue{opts, domain.PlatformWASI}, "wasm", "", "cross-compile for webassembly with the wasi sdk")
	value(toolchainValue{opts}, "toolchain", "", "cmake toolchain file")
	value(stringValue{&opts.Generator, "name"}, "gen", "G", "cmake generator")
	value(archValue{&opts.Arch}, "arch", "A", "target architecture")
	value(pathValue{target: &opts.WASISDK, dir: true}, "wasi-sdk", "", "path to the wasi sdk")
	toggle(switchValue{&opts.Help}, "help", "h", "output usage information")

	return flags
}

// Parse folds args (without the program name) into Options. Parsing stops at
// the first --version or --help.
func Parse(args []string) (domain.Options, error) {
	var opts domain.Options
	flags := NewFlagSet(&opts)
	tokens := Normalize(args)

	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]

		if tok == "--" {
			opts.Passthrough = append([]string{}, tokens[i+1:]...)
			break
		}

		if !strings.HasPrefix(tok, "-") {
			if opts.Command != "" {
				return opts, zerr.With(
					zerr.Wrap(domain.ErrMultipleCommands, fmt.Sprintf("Multiple commands: %s, %s", opts.Command, tok)),
					"commands", []string{opts.Command, tok},
				)
			}
			opts.Command = tok
			continue
		}

		flag := lookup(flags, tok)
		if flag == nil {
			return opts, zerr.With(zerr.Wrap(domain.ErrUnknownOption, "Invalid option: "+tok), "option", tok)
		}

		arg := flag.NoOptDefVal
		if arg == "" {
			if i+1 >= len(tokens) || strings.HasPrefix(tokens[i+1], "-") {
				return opts, zerr.With(zerr.Wrap(domain.ErrMissingValue, "Invalid option value for "+tok), "option", tok)
			}
			i++
			arg = tokens[i]
		}

		if err := flag.Value.Set(arg); err != nil {
			return opts, err
		}
		flag.Changed = true

		if opts.Version || opts.Help {
			return opts, nil
		}
	}

	return opts, nil
}

func lookup(flags *pflag.FlagSet, tok string) *pflag.Flag {
	if name, ok := strings.CutPrefix(tok, "--"); ok {
		return flags.Lookup(name)
	}
	short := tok[1:]
	if len(short) != 1 {
		return nil
	}
	return flags.ShorthandLookup(short)
}
