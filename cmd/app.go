// Package cmd implements the f13 command-line application.
package cmd

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
)

// Register the subcommands, their flags defaulting to defaults.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander, defaults Config) {
	c.Register(&reportCmd{outputFlags: outputFlags{defaults: defaults}}, "filings")
	c.Register(&statsCmd{outputFlags: outputFlags{defaults: defaults}}, "filings")
	c.Register(&holdingCmd{outputFlags: outputFlags{defaults: defaults}}, "filings")
	c.Register(&topicCmd{outputFlags: outputFlags{defaults: defaults}}, "help")
}

// outputFlags are the flags shared by the commands printing a document.
type outputFlags struct {
	defaults Config
	output   string
	format   string
	firm     string
	style    string
	width    int
}

func (o *outputFlags) setFlags(f *flag.FlagSet) {
	f.StringVar(&o.output, "o", o.defaults.OutputPath, "Output file, the standard output if empty")
	f.StringVar(&o.format, "format", o.defaults.Format, "Output format: "+strings.Join(Formats, ", ")+". Inferred from the output file extension if empty")
	f.StringVar(&o.firm, "firm", o.defaults.FirmName, "Name of the filing firm")
	f.StringVar(&o.style, "style", o.defaults.Style, "Terminal style: auto, dark, light, notty...")
	f.IntVar(&o.width, "width", o.defaults.Width, "Terminal word wrap width")
}

// config returns the run configuration for the filing in args.
func (o *outputFlags) config(f *flag.FlagSet) (Config, subcommands.ExitStatus) {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expecting exactly one filing path")
		return Config{}, subcommands.ExitUsageError
	}
	cfg := o.defaults
	cfg.InputPath = f.Arg(0)
	cfg.SetOutput(o.output)
	cfg.Format = o.format
	cfg.FirmName = o.firm
	cfg.Style = o.style
	cfg.Width = o.width
	return cfg, subcommands.ExitSuccess
}
