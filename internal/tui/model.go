// Package tui provides the Bubbletea transport view for waves: play state,
// playhead, a waveform overview and a live spectrum.
package tui

import (
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Zahr1729/Iron/dsp/effect"
	"github.com/Zahr1729/Iron/dsp/spectrum"
	"github.com/Zahr1729/Iron/player"
)

const (
	defaultWidth      = 64
	spectrumRows      = 6
	defaultSeek       = 5 * time.Second
	defaultSampleRate = 48000.0
)

// Transport is the control side of a render thread.
type Transport interface {
	Send(cmd player.Command) error
	Updates() <-chan player.Update
}

// Config describes what the view plays and how.
type Config struct {
	Title      string
	Transport  Transport
	Root       effect.Effect
	Frames     int
	SampleRate float64

	// Wave supplies the waveform overview. It defaults to Root when Root
	// can plot.
	Wave effect.Plotter

	// Analyzer is optional. Without it no spectrum is drawn.
	Analyzer *spectrum.Analyzer

	// Seek is the relocation step for the arrow keys.
	Seek time.Duration

	Logger *slog.Logger
}

// Model is the Bubbletea model for the transport view.
type Model struct {
	cfg    Config
	logger *slog.Logger

	Playing  bool
	Position int
	Err      error

	wave     []float64
	spectrum []float64

	Width  int
	Height int
}

// NewModel returns a stopped model positioned at frame 0.
func NewModel(cfg Config) Model {
	if cfg.SampleRate <= 0 {
		cfg.SampleRate = defaultSampleRate
	}
	if cfg.Seek <= 0 {
		cfg.Seek = defaultSeek
	}
	if p, ok := cfg.Root.(effect.Plotter); ok && cfg.Wave == nil {
		cfg.Wave = p
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	m := Model{cfg: cfg, logger: logger.With("component", "tui")}
	m.wave = waveform(cfg.Wave, cfg.Frames, m.columns())
	m.refreshSpectrum()
	return m
}

// Init starts listening for render thread updates.
func (m Model) Init() tea.Cmd {
	return waitForUpdate(m.cfg.Transport.Updates())
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.wave = waveform(m.cfg.Wave, m.cfg.Frames, m.columns())

	case UpdateMsg:
		moved := false
		for _, u := range msg.Updates {
			switch u := u.(type) {
			case player.CurrentSample:
				m.Position = u.Sample
				moved = true
			case player.DeviceFailure:
				m.Playing = false
				m.Err = u.Err
			}
		}
		if moved {
			m.refreshSpectrum()
		}
		return m, waitForUpdate(m.cfg.Transport.Updates())

	case closedMsg:
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		if m.Playing {
			m.send(player.Stop{})
			m.Playing = false
		}
		return m, tea.Quit

	case " ", "space", "p":
		if m.Playing {
			m.send(player.Stop{})
			m.Playing = false
		} else {
			m.Err = nil
			m.Playing = m.send(player.PlayFrom{Root: m.cfg.Root, Start: m.Position})
		}

	case "left", "h":
		m.relocate(m.Position - m.seekFrames())

	case "right", "l":
		m.relocate(m.Position + m.seekFrames())

	case "home", "0":
		m.relocate(0)
	}

	return m, nil
}

func (m *Model) relocate(sample int) {
	sample = max(sample, 0)
	if m.cfg.Frames > 0 {
		sample = min(sample, m.cfg.Frames)
	}
	if m.send(player.RelocateTo{Root: m.cfg.Root, Sample: sample}) {
		m.Position = sample
		m.refreshSpectrum()
	}
}

func (m *Model) send(cmd player.Command) bool {
	if err := m.cfg.Transport.Send(cmd); err != nil {
		m.logger.Error("send failed", "err", err)
		m.Err = err
		return false
	}
	return true
}

func (m *Model) refreshSpectrum() {
	if m.cfg.Analyzer == nil || m.cfg.Root == nil {
		return
	}
	mag, err := m.cfg.Analyzer.Frame(m.cfg.Root, m.Position)
	if err != nil {
		m.logger.Warn("spectrum frame failed", "err", err)
		m.spectrum = nil
		return
	}
	m.spectrum = spectrum.CurveDB(mag)
}

func (m Model) seekFrames() int {
	return int(m.cfg.Seek.Seconds() * m.cfg.SampleRate)
}

func (m Model) columns() int {
	if m.Width > 4 {
		return m.Width - 2
	}
	return defaultWidth
}

// View renders the UI
func (m Model) View() string {
	return renderTransportView(m)
}

func waitForUpdate(ch <-chan player.Update) tea.Cmd {
	return func() tea.Msg {
		u, ok := <-ch
		if !ok {
			return closedMsg{}
		}
		return UpdateMsg{Updates: drain(ch, []player.Update{u})}
	}
}

// drain appends whatever is queued on ch without blocking, keeping only
// the newest of consecutive CurrentSample updates.
func drain(ch <-chan player.Update, batch []player.Update) []player.Update {
	for {
		select {
		case u, ok := <-ch:
			if !ok {
				return batch
			}
			if _, sample := u.(player.CurrentSample); sample {
				if _, prev := batch[len(batch)-1].(player.CurrentSample); prev {
					batch[len(batch)-1] = u
					continue
				}
			}
			batch = append(batch, u)
		default:
			return batch
		}
	}
}
