package main

import (
	"github.com/MichaelVerdegaal/tsplot/internal/commands"
	"github.com/alecthomas/kong"
)

func main() {
	var cli commands.CLI
	ctx := kong.Parse(&cli,
		kong.Name("tsplot"),
		kong.Description("Time-series plotting helpers: styled figures, derived time ranges, and the pong7 colormap."),
	)
	err := ctx.Run(&commands.Context{Timeout: cli.Timeout})
	ctx.FatalIfErrorf(err)
}
