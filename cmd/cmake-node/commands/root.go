// Package commands implements the command line interface of cmake-node.
package commands

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.trai.ch/cmake-node/internal/build"
	"go.trai.ch/cmake-node/internal/core/domain"
	"go.trai.ch/cmake-node/internal/engine/argparse"
)

// CLI represents the command line interface for cmake-node.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Run(ctx context.Context, opts *domain.Options) error
}

// New creates a new CLI instance with the given app. commandNames lists the
// commands shown in the help output.
func New(a Application, commandNames []string) *CLI {
	c := &CLI{app: a}

	rootCmd := &cobra.Command{
		Use:   domain.ToolName + " [options] [command] [-- cmake args...]",
		Short: "CMake front end for Node.js addons",
		Long: "CMake front end for Node.js addons.\n\nCommands:\n  " +
			strings.Join(commandNames, "\n  "),
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		RunE:               c.run,
	}
	rootCmd.Flags().AddFlagSet(argparse.NewFlagSet(&domain.Options{}))

	c.rootCmd = rootCmd
	return c
}

func (c *CLI) run(cmd *cobra.Command, args []string) error {
	opts, err := argparse.Parse(args)
	if err != nil {
		return err
	}

	switch {
	case opts.Version:
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s version %s (commit: %s, date: %s)\n",
			domain.ToolName, build.Version, build.Commit, build.Date)
		return nil
	case opts.Help || opts.Command == "":
		return cmd.Help()
	}

	return c.app.Run(cmd.Context(), &opts)
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. A nil slice means no
// arguments; cobra would otherwise fall back to os.Args.
func (c *CLI) SetArgs(args []string) {
	if args == nil {
		args = []string{}
	}
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}
