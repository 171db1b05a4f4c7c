package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version kong.VersionFlag `short:"v" help:"Show version"`
	Judge   JudgeCmd         `cmd:"" help:"Rank five-card hands and print the winners"`
	Serve   ServeCmd         `cmd:"" help:"Run the WebSocket judge service"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("showdown"),
		kong.Description("Five-card poker hand ranking and winner selection"),
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
