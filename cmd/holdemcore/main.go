package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Replay   ReplayCmd        `cmd:"" help:"Replay PHH hand history files through the engine"`
	Simulate SimulateCmd      `cmd:"" help:"Run a bot-vs-bot session from an HCL config"`
	Deal     DealCmd          `cmd:"" help:"Deal a hand and show each seat's evaluation"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("holdemcore"),
		kong.Description("No-limit hold'em hand engine: replay, simulate and inspect hands"),
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
