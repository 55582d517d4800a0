package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"

	"github.com/carson-networks/budget-reconciler/internal/cli"
)

func main() {
	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")

	cli.Register(commander, &cli.App{
		Open: cli.EnvOpener,
		Out:  os.Stdout,
		Err:  os.Stderr,
	})

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
