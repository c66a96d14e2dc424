package main

import (
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Simulate SimulateCmd      `cmd:"" help:"Run many seeded matches and report per-player statistics"`
	Play     PlayCmd          `cmd:"" help:"Play an interactive match against built-in strategies"`
	Replay   ReplayCmd        `cmd:"" help:"Decode a serialized match record and optionally finish the match"`
	Inspect  InspectCmd       `cmd:"" help:"Print game facts and the action table"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("airseats"),
		kong.Description("Airline seats pricing game simulator"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}

func newLogger(verbose bool) *log.Logger {
	level := log.InfoLevel
	if verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(os.Stderr, log.Options{Level: level})
}
