package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Zahr1729/Iron/dsp/spectrum"
	"github.com/Zahr1729/Iron/internal/tui"
	"github.com/Zahr1729/Iron/player"
	"github.com/Zahr1729/Iron/player/portaudio"
)

// PlayCmd plays a graph on the default output device.
type PlayCmd struct {
	Path     string        `arg:"" type:"existingfile" help:"Scene (.json) or audio file"`
	Null     bool          `help:"Render without audio hardware"`
	Rate     float64       `help:"Stream sample rate (0 uses the first track's rate)" default:"0"`
	Channels int           `help:"Output channels" default:"2"`
	Frames   int           `help:"Frames per hardware buffer" default:"1024"`
	FFT      int           `name:"fft" help:"Spectrum size, a power of two (0 disables the spectrum)" default:"2048"`
	Start    time.Duration `help:"Start position" default:"0s"`
	NoUI     bool          `name:"no-ui" help:"Play without the terminal view"`
	For      time.Duration `name:"for" help:"With --no-ui, stop after this long (0 plays until interrupted)" default:"0s"`
}

// Run builds the graph, opens the device and hands control to the
// terminal view.
func (c *PlayCmd) Run(g *Globals) error {
	logger := g.logger
	if !c.NoUI && g.LogFile == "" {
		// Anything written to stderr would tear the alt screen.
		logger = slog.New(slog.DiscardHandler)
	}

	s, err := openSession(c.Path, c.Rate, logger)
	if err != nil {
		return err
	}

	var device player.Device = &player.NullDevice{}
	if !c.Null {
		dev := portaudio.New(logger)
		if err := dev.Open(); err != nil {
			return err
		}
		defer func() {
			if err := dev.Close(); err != nil {
				logger.Warn("close device", "err", err)
			}
		}()
		device = dev
	}

	p := player.New(device,
		player.WithLogger(logger),
		player.WithSampleRate(s.rate),
		player.WithChannels(c.Channels),
		player.WithFramesPerBuffer(c.Frames),
	)
	defer p.Close()

	start := int(c.Start.Seconds() * s.rate)

	if c.NoUI {
		return c.playHeadless(g, p, s, start)
	}

	var analyzer *spectrum.Analyzer
	if c.FFT > 0 {
		analyzer, err = spectrum.NewAnalyzer(c.FFT, spectrum.WithHann(), spectrum.WithChannels(c.Channels))
		if err != nil {
			return err
		}
	}

	model := tui.NewModel(tui.Config{
		Title:      filepath.Base(c.Path),
		Transport:  p,
		Root:       s.graph.Root(),
		Wave:       s.wave(),
		Frames:     s.frames(),
		SampleRate: s.rate,
		Analyzer:   analyzer,
		Logger:     logger,
	})
	if start > 0 {
		if err := p.Send(player.RelocateTo{Root: s.graph.Root(), Sample: start}); err != nil {
			return err
		}
	}

	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("ui: %w", err)
	}
	return nil
}

func (c *PlayCmd) playHeadless(g *Globals, p *player.Player, s *session, start int) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if c.For > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.For)
		defer cancel()
	}

	if err := p.Exec(ctx, player.PlayFrom{Root: s.graph.Root(), Start: start}); err != nil {
		return err
	}
	g.logger.Info("playing", "path", c.Path, "sampleRate", s.rate, "start", start)

	<-ctx.Done()

	if err := p.Exec(context.Background(), player.Stop{}); err != nil {
		return err
	}

	last, ok := p.Latest()
	if !ok {
		last = start
	}
	fmt.Fprintln(g.out, keyValue("Stopped at", formatPosition(last, s.rate)))
	return nil
}

func formatPosition(frame int, rate float64) string {
	d := time.Duration(float64(frame) / rate * float64(time.Second))
	return fmt.Sprintf("%s (frame %d)", d.Round(time.Millisecond), frame)
}
