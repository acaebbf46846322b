package terminal

import (
	"io"
	"os"

	"github.com/de-tools/trend-atlas/pkg/runtime/terminal/commands"
	"github.com/de-tools/trend-atlas/pkg/runtime/terminal/export"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// CLI represents the command-line interface
type CLI struct {
	logger   zerolog.Logger
	reporter *export.Reporter
	rootCmd  *cobra.Command
}

// Options contain configuration for the CLI
type Options struct {
	Output io.Writer // report output, defaults to stdout
	Logs   io.Writer // log output, defaults to stderr
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.Logs == nil {
		opts.Logs = os.Stderr
	}

	cli := &CLI{
		logger:   zerolog.New(opts.Logs).With().Timestamp().Logger(),
		reporter: export.NewReporter(opts.Output),
	}

	cli.rootCmd = cli.newRootCmd()
	return cli
}

func (cli *CLI) Execute() error {
	return cli.rootCmd.Execute()
}

func (cli *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "trend-atlas",
		Short: "Recursive decadal trend comparison tool",
	}

	cmd.AddCommand(commands.NewAnalyzeCmd(cli.logger, cli.reporter))
	cmd.AddCommand(commands.NewScenariosCmd(cli.logger, cli.reporter))

	return cmd
}
