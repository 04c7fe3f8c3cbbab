package terminal

import (
	"context"
	"io"
	"os"

	"github.com/de-tools/bureau-dashboard/pkg/runtime/terminal/commands"
	"github.com/de-tools/bureau-dashboard/pkg/runtime/terminal/export"
	"github.com/spf13/cobra"
)

// CLI represents the command-line interface
type CLI struct {
	open     commands.ControllerFactory
	output   io.Writer
	reporter *export.Reporter
	rootCmd  *cobra.Command
}

// Options contain configuration for the CLI
type Options struct {
	Open   commands.ControllerFactory
	Output io.Writer
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	cli := &CLI{
		open:     opts.Open,
		output:   opts.Output,
		reporter: export.NewReporter(opts.Output),
	}

	cli.rootCmd = cli.newRootCmd()
	return cli
}

func (cli *CLI) Execute(ctx context.Context) error {
	return cli.rootCmd.ExecuteContext(ctx)
}

// SetArgs overrides os.Args for the root command.
func (cli *CLI) SetArgs(args []string) {
	cli.rootCmd.SetArgs(args)
}

func (cli *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "dashboard",
		Short:         "Bureau scrub lending dashboard",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.SetOut(cli.output)

	cmd.AddCommand(commands.NewRenderCmd(cli.open, cli.reporter))
	cmd.AddCommand(commands.NewTabsCmd(cli.output))

	return cmd
}

// Root exposes the root command so callers can attach persistent flags.
func (cli *CLI) Root() *cobra.Command {
	return cli.rootCmd
}
