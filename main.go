package main

import (
	"log/slog"
	"os"

	"lineart/lines"
	"lineart/parallel"

	"github.com/alecthomas/kong"
)

type cli struct {
	Workers int  `help:"Number of parallel workers. 0 uses all CPUs" default:"0"`
	Verbose bool `help:"Log debug messages" short:"v"`

	Lines lines.CLICmd `cmd:"" help:"Rasterize straight lines onto an image"`
}

func main() {
	var c cli
	kctx := kong.Parse(&c,
		kong.Name("lineart"),
		kong.Description("Draw pixel lines with Bresenham's algorithm"),
		kong.UsageOnError(),
	)

	if c.Verbose {
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}
	slog.Debug("running", "command", kctx.Command(), "workers", c.Workers)

	pool := parallel.Start(c.Workers)
	err := kctx.Run(kctx.Selected().Name, pool.Do, pool.Wait)
	pool.Wait(true)
	if err != nil {
		slog.Error("command failed", "command", kctx.Command(), "error", err)
		os.Exit(1)
	}
}
