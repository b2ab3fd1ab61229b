package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
)

var (
	version = "0.1.0"
)

// Globals are flags shared by every command.
type Globals struct {
	Debug   bool             `help:"Enable debug logging"`
	LogFile string           `type:"path" help:"Write logs to this file instead of stderr"`
	Version kong.VersionFlag `short:"v" help:"Show version information"`

	out    io.Writer    `kong:"-"`
	logger *slog.Logger `kong:"-"`
}

// CLI defines the command-line interface
type CLI struct {
	Globals

	Play     PlayCmd     `cmd:"" help:"Play a scene or audio file"`
	Info     InfoCmd     `cmd:"" help:"Describe the graph a scene or audio file builds"`
	Spectrum SpectrumCmd `cmd:"" help:"Print the loudest spectrum peaks around a position"`
}

func main() {
	cliArgs := &CLI{}
	ctx := kong.Parse(cliArgs,
		kong.Name("waves"),
		kong.Description("Audio graph player"),
		kong.UsageOnError(),
		kong.Vars{
			"version": version,
		},
	)

	closeLog, err := cliArgs.setup(os.Stdout, os.Stderr)
	if err != nil {
		PrintError(err.Error())
		os.Exit(1)
	}
	defer closeLog()

	if err := ctx.Run(&cliArgs.Globals); err != nil {
		PrintError(err.Error())
		closeLog()
		os.Exit(1)
	}
}

// setup wires the output writer and the logger.
func (g *Globals) setup(stdout, stderr io.Writer) (func(), error) {
	g.out = stdout

	level := slog.LevelInfo
	if g.Debug {
		level = slog.LevelDebug
	}

	w, closeFn := stderr, func() {}
	if g.LogFile != "" {
		f, err := os.OpenFile(g.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		w, closeFn = f, func() { _ = f.Close() }
	}

	g.logger = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(g.logger)

	return closeFn, nil
}
