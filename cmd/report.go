package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

// reportCmd holds the flags for the 'report' subcommand.
type reportCmd struct {
	outputFlags
	rows int
}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "display the holdings of a 13F filing" }
func (*reportCmd) Usage() string {
	return `f13 report [-n <rows>] [-o <file>] [-format <format>] <filing.xml>

  Displays the holdings table of a 13F information table, largest first,
  followed by the firm statistics and its top holding.
`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {
	c.setFlags(f)
	f.IntVar(&c.rows, "n", c.defaults.RowLimit, "Number of holdings to display, all if 0")
}

func (c *reportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, status := c.config(f)
	if status != subcommands.ExitSuccess {
		return status
	}
	cfg.RowLimit = c.rows
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	if err := Run(cfg, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error reporting %q: %v\n", cfg.InputPath, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
