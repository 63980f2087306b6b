package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/thirteenf/renderer"
	"github.com/google/subcommands"
)

type statsCmd struct {
	outputFlags
}

func (*statsCmd) Name() string     { return "stats" }
func (*statsCmd) Synopsis() string { return "display the statistics of a 13F filing" }
func (*statsCmd) Usage() string {
	return `f13 stats [-o <file>] <filing.xml>

  Displays the total firm AUM, the number of unique and total positions, and
  the top holding of a 13F information table.
`
}

func (c *statsCmd) SetFlags(f *flag.FlagSet) { c.setFlags(f) }

func (c *statsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, status := c.config(f)
	if status != subcommands.ExitSuccess {
		return status
	}

	firm, err := LoadFirm(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading %q: %v\n", cfg.InputPath, err)
		return subcommands.ExitFailure
	}

	if err := RunMarkdown(cfg, os.Stdout, renderer.SummaryMarkdown(firm)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
