package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/thirteenf/docs"
	"github.com/google/subcommands"
)

type topicCmd struct {
	outputFlags
}

func (*topicCmd) Name() string     { return "topic" }
func (*topicCmd) Synopsis() string { return "show documentation" }
func (*topicCmd) Usage() string {
	return `f13 topic [<topic>...]

Show documentation for the given topics, '*' for all of them.
`
}

func (c *topicCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.style, "style", c.defaults.Style, "Terminal style: auto, dark, light, notty...")
	f.IntVar(&c.width, "width", c.defaults.Width, "Terminal word wrap width")
}

func (c *topicCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	topics := f.Args()
	if len(topics) == 0 {
		topics = []string{"readme"}
	}

	doc, err := docs.GetTopics(topics...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading doc: %v\n", err)
		return subcommands.ExitFailure
	}

	cfg := Config{Destination: Stdout, Format: FormatTerminal, Style: c.style, Width: c.width}
	if err := RunMarkdown(cfg, os.Stdout, doc); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
