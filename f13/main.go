package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path"

	"github.com/etnz/thirteenf/cmd"
	"github.com/google/subcommands"
)

func main() {
	// answers shell completion requests, and exits, when called by the shell.
	cmd.Completion().Complete("f13")

	defaults, err := cmd.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(int(subcommands.ExitFailure))
	}

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	cmd.Register(commander, defaults)

	verbose := flag.Bool("v", false, "log the steps of the run and their timing")
	flag.Parse()
	if !*verbose {
		log.SetOutput(io.Discard)
	}
	os.Exit(int(commander.Execute(context.Background())))
}
