package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/thirteenf/renderer"
	"github.com/google/subcommands"
)

// holdingCmd holds the flags for the 'holding' subcommand.
type holdingCmd struct {
	outputFlags
	cusip string
}

func (*holdingCmd) Name() string     { return "holding" }
func (*holdingCmd) Synopsis() string { return "display the positions of a security in a 13F filing" }
func (*holdingCmd) Usage() string {
	return `f13 holding -cusip <cusip> <filing.xml>

  Displays every position reported under a CUSIP: a firm can hold the same
  security in several share classes, or as options.
`
}

func (c *holdingCmd) SetFlags(f *flag.FlagSet) {
	c.setFlags(f)
	f.StringVar(&c.cusip, "cusip", "", "CUSIP of the security, as reported in the filing")
}

func (c *holdingCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.cusip == "" {
		fmt.Fprintln(os.Stderr, "Error: -cusip is required")
		return subcommands.ExitUsageError
	}
	cfg, status := c.config(f)
	if status != subcommands.ExitSuccess {
		return status
	}

	firm, err := LoadFirm(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading %q: %v\n", cfg.InputPath, err)
		return subcommands.ExitFailure
	}

	holdings := firm.Lookup(c.cusip)
	if len(holdings) == 0 {
		fmt.Fprintf(os.Stderr, "No holding with CUSIP %q in %q\n", c.cusip, cfg.InputPath)
		return subcommands.ExitFailure
	}

	if err := RunMarkdown(cfg, os.Stdout, renderer.HoldingsMarkdown(firm, holdings)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
